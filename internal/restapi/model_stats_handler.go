package restapi

import (
	"net/http"

	"steerage.maritimedata.org/internal/models"
)

func (api *RestAPI) modelStatsHandler(w http.ResponseWriter, r *http.Request) {
	summary, ok := api.Dataset.Summary()
	if !ok {
		api.dataUnavailableResponse(w, r)
		return
	}

	stats := models.NewModelStats(summary.Accuracy, summary.Total, summary.Survived, summary.Deaths)
	api.sendResponse(w, r, models.NewEntryResponse(stats))
}
