package webui

import (
	"embed"
	"html/template"
	"net/http"

	"github.com/davecgh/go-spew/spew"
)

//go:embed debug_index.html
var templateFS embed.FS

type debugData struct {
	Title string
	Pre   string
}

func writeDebugData(w http.ResponseWriter, title string, data interface{}) {
	content := spew.Sdump(data)
	w.Header().Set("Content-Type", "text/html")
	tmpl, err := template.ParseFS(templateFS, "debug_index.html")
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	dataStruct := debugData{
		Title: title,
		Pre:   content,
	}

	err = tmpl.Execute(w, dataStruct)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (webUI *WebUI) debugIndexHandler(w http.ResponseWriter, r *http.Request) {
	dataType := r.URL.Query().Get("dataType")

	var data interface{}
	var title string

	switch dataType {
	case "records":
		data = webUI.Dataset.Records()
		title = "Manifest - Records"
	case "summary":
		summary, ok := webUI.Dataset.Summary()
		if !ok {
			data = webUI.Dataset.State().String()
		} else {
			data = summary
		}
		title = "Manifest - Summary"
	case "config":
		data = webUI.DataConfig
		title = "Manifest - Config"
	default:
		data = map[string]string{
			"state":       webUI.Dataset.State().String(),
			"dataTypes":   "records, summary, config",
			"lastUpdated": webUI.Dataset.LastUpdated().String(),
		}
		title = "Debug Index"
	}

	writeDebugData(w, title, data)
}
