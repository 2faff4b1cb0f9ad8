package webui

import (
	"net/http"

	"steerage.maritimedata.org/internal/app"
)

// WebUI serves the operator-facing debug pages.
type WebUI struct {
	*app.Application
}

func NewWebUI(app *app.Application) *WebUI {
	return &WebUI{Application: app}
}

func (webUI *WebUI) SetWebUIRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /debug/", webUI.debugIndexHandler)
}
