package restapi

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
)

type handlerFunc func(w http.ResponseWriter, r *http.Request)

func validateAPIKey(api *RestAPI, finalHandler handlerFunc) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if api.RequestHasInvalidAPIKey(r) {
			api.invalidAPIKeyResponse(w, r)
			return
		}
		finalHandler(w, r)
	})
}

// protect wraps a handler in API key validation and, when configured,
// per-key rate limiting.
func (api *RestAPI) protect(finalHandler handlerFunc) http.Handler {
	handler := validateAPIKey(api, finalHandler)
	if api.rateLimiter != nil {
		handler = api.rateLimiter(handler)
	}
	return handler
}

func (api *RestAPI) SetRoutes(router *httprouter.Router) {
	router.Handler(http.MethodGet, "/api/steerage/model-stats.json", api.protect(api.modelStatsHandler))
	router.Handler(http.MethodGet, "/api/steerage/predict.json", api.protect(api.predictHandler))
	router.Handler(http.MethodGet, "/api/steerage/passengers.json", api.protect(api.passengersHandler))
	router.Handler(http.MethodGet, "/api/steerage/passenger/:id", api.protect(api.passengerHandler))
	router.Handler(http.MethodGet, "/api/steerage/status.json", api.protect(api.statusHandler))
}
