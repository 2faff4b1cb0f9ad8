package restapi

import (
	"database/sql"
	"errors"
	"net/http"
	"strconv"

	"steerage.maritimedata.org/internal/models"
	"steerage.maritimedata.org/internal/titanic"
	"steerage.maritimedata.org/internal/titanicdb"
	"steerage.maritimedata.org/internal/utils"
)

func (api *RestAPI) passengerHandler(w http.ResponseWriter, r *http.Request) {
	queryParamID := utils.ExtractIDFromParams(r, "id")

	if err := utils.ValidateID(queryParamID); err != nil {
		fieldErrors := map[string][]string{
			"id": {err.Error()},
		}
		api.validationErrorResponse(w, r, fieldErrors)
		return
	}

	if api.Dataset.State() != titanic.StateReady || api.Dataset.DB == nil {
		api.dataUnavailableResponse(w, r)
		return
	}

	id, err := strconv.ParseInt(queryParamID, 10, 64)
	if err != nil {
		api.serverErrorResponse(w, r, err)
		return
	}

	ctx := r.Context()

	passenger, err := api.Dataset.DB.Queries.GetPassenger(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		api.sendNotFound(w, r)
		return
	}
	if err != nil {
		api.serverErrorResponse(w, r, err)
		return
	}

	api.sendResponse(w, r, models.NewEntryResponse(passengerModel(passenger)))
}

func passengerModel(p titanicdb.Passenger) models.Passenger {
	return models.NewPassenger(
		int(p.ID),
		int(p.Survived),
		int(p.Pclass),
		p.Name,
		p.Sex,
		nullFloatPtr(p.Age),
		int(p.SibSp),
		int(p.Parch),
		p.Ticket,
		nullFloatPtr(p.Fare),
		p.Cabin,
		p.Embarked,
	)
}

func nullFloatPtr(nf sql.NullFloat64) *float64 {
	if !nf.Valid {
		return nil
	}
	f := nf.Float64
	return &f
}
