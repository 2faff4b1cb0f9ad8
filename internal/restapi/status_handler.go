package restapi

import (
	"net/http"

	"steerage.maritimedata.org/internal/models"
)

// statusHandler reports the one-shot load state. It always answers 200 so
// operators can observe a failed load instead of getting an opaque error.
func (api *RestAPI) statusHandler(w http.ResponseWriter, r *http.Request) {
	status := models.NewLoadStatus(
		api.Dataset.State().String(),
		len(api.Dataset.Records()),
		api.Dataset.LastUpdated(),
	)

	api.sendResponse(w, r, models.NewEntryResponse(status))
}
