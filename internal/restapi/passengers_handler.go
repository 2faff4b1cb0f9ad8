package restapi

import (
	"net/http"

	"steerage.maritimedata.org/internal/models"
	"steerage.maritimedata.org/internal/titanic"
	"steerage.maritimedata.org/internal/titanicdb"
	"steerage.maritimedata.org/internal/utils"
)

const (
	defaultPageSize = 100
	maxPageSize     = 500
)

func (api *RestAPI) passengersHandler(w http.ResponseWriter, r *http.Request) {
	params := r.URL.Query()

	limit, fieldErrors := utils.ParseIntParam(params, "limit", defaultPageSize, nil)
	offset, fieldErrors := utils.ParseIntParam(params, "offset", 0, fieldErrors)
	if len(fieldErrors) > 0 {
		api.validationErrorResponse(w, r, fieldErrors)
		return
	}

	if limit > maxPageSize {
		limit = maxPageSize
	}

	if api.Dataset.State() != titanic.StateReady || api.Dataset.DB == nil {
		api.dataUnavailableResponse(w, r)
		return
	}

	ctx := r.Context()

	passengers, err := api.Dataset.DB.Queries.ListPassengers(ctx, titanicdb.ListPassengersParams{
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		api.serverErrorResponse(w, r, err)
		return
	}

	list := make([]models.Passenger, 0, len(passengers))
	for _, p := range passengers {
		list = append(list, passengerModel(p))
	}

	api.sendResponse(w, r, models.NewListResponse(list))
}
