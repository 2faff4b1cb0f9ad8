package restapi

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/julienschmidt/httprouter"
	"github.com/stretchr/testify/require"
	"steerage.maritimedata.org/internal/app"
	"steerage.maritimedata.org/internal/appconf"
	"steerage.maritimedata.org/internal/logging"
	"steerage.maritimedata.org/internal/models"
	"steerage.maritimedata.org/internal/titanic"
)

// createTestApi creates a new RestAPI instance with a dataset manager
// initialized from the manifest fixture for use in tests.
func createTestApi(t *testing.T) *RestAPI {
	dataConfig := titanic.Config{
		DatasetURL: filepath.Join("../../testdata", "passengers.csv"),
		DataPath:   ":memory:",
		Env:        appconf.Test,
	}
	manager, err := titanic.InitManager(dataConfig)
	require.NoError(t, err)
	t.Cleanup(manager.Shutdown)

	app := &app.Application{
		Config: appconf.Config{
			Env:     appconf.EnvFlagToEnvironment("test"),
			ApiKeys: []string{"TEST"},
		},
		DataConfig: dataConfig,
		Logger:     logging.NewStructuredLogger(io.Discard, slog.LevelError),
		Dataset:    manager,
	}

	return &RestAPI{Application: app}
}

// createFailedDatasetApi creates a RestAPI whose dataset load failed, for
// exercising the degraded paths.
func createFailedDatasetApi(t *testing.T) *RestAPI {
	dataConfig := titanic.Config{
		DatasetURL: filepath.Join("../../testdata", "does-not-exist.csv"),
		DataPath:   ":memory:",
		Env:        appconf.Test,
	}
	manager, err := titanic.InitManager(dataConfig)
	require.Error(t, err)
	t.Cleanup(manager.Shutdown)

	app := &app.Application{
		Config: appconf.Config{
			Env:     appconf.EnvFlagToEnvironment("test"),
			ApiKeys: []string{"TEST"},
		},
		DataConfig: dataConfig,
		Logger:     logging.NewStructuredLogger(io.Discard, slog.LevelError),
		Dataset:    manager,
	}

	return &RestAPI{Application: app}
}

// serveAndRetrieveEndpoint sets up a test server, makes a request to the
// specified endpoint, and returns the response and decoded model.
func serveAndRetrieveEndpoint(t *testing.T, endpoint string) (*RestAPI, *http.Response, models.ResponseModel) {
	api := createTestApi(t)
	resp, model := serveApiAndRetrieveEndpoint(t, api, endpoint)
	return api, resp, model
}

func serveApiAndRetrieveEndpoint(t *testing.T, api *RestAPI, endpoint string) (*http.Response, models.ResponseModel) {
	router := httprouter.New()
	api.SetRoutes(router)
	server := httptest.NewServer(router)
	defer server.Close()

	resp, err := http.Get(server.URL + endpoint)
	require.NoError(t, err)
	defer logging.SafeCloseWithLogging(resp.Body,
		slog.Default().With(slog.String("component", "test")),
		"http_response_body")

	var response models.ResponseModel
	err = json.NewDecoder(resp.Body).Decode(&response)
	require.NoError(t, err)

	return resp, response
}

// entryFromResponse digs the entry object out of a decoded envelope.
func entryFromResponse(t *testing.T, model models.ResponseModel) map[string]interface{} {
	data, ok := model.Data.(map[string]interface{})
	require.True(t, ok, "response data should be a map")

	entry, ok := data["entry"].(map[string]interface{})
	require.True(t, ok, "response data should contain an entry")
	return entry
}
