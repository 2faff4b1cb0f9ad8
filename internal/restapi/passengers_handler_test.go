package restapi

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func listFromResponse(t *testing.T, model interface{}) []interface{} {
	data, ok := model.(map[string]interface{})
	require.True(t, ok, "response data should be a map")

	list, ok := data["list"].([]interface{})
	require.True(t, ok, "response data should contain a list")
	return list
}

func TestPassengersHandler(t *testing.T) {
	_, resp, model := serveAndRetrieveEndpoint(t, "/api/steerage/passengers.json?key=TEST")

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	list := listFromResponse(t, model.Data)
	assert.Len(t, list, 10)

	first, ok := list[0].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, float64(1), first["id"])
	assert.Equal(t, "Braund, Mr. Owen Harris", first["name"])
}

func TestPassengersHandlerPagination(t *testing.T) {
	api := createTestApi(t)

	_, model := serveApiAndRetrieveEndpoint(t, api, "/api/steerage/passengers.json?key=TEST&limit=3&offset=3")

	list := listFromResponse(t, model.Data)
	require.Len(t, list, 3)

	first, ok := list[0].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, float64(4), first["id"])
}

func TestPassengersHandlerWhenLoadFailed(t *testing.T) {
	api := createFailedDatasetApi(t)

	resp, model := serveApiAndRetrieveEndpoint(t, api, "/api/steerage/passengers.json?key=TEST")

	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
	assert.Equal(t, "dataset unavailable", model.Text)
}

func TestPassengersHandlerInvalidParams(t *testing.T) {
	api := createTestApi(t)

	resp, _ := serveApiAndRetrieveEndpoint(t, api, "/api/steerage/passengers.json?key=TEST&limit=abc")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, _ = serveApiAndRetrieveEndpoint(t, api, "/api/steerage/passengers.json?key=TEST&offset=-1")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
