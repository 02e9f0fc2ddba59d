package restapi

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRouteHandler(t *testing.T) {
	resp, envelope := getEndpoint(t, "/api/v1/route/ATL/LAX")
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	entry, ok := envelope.Data.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "ATL", entry["origin"])
	assert.Equal(t, "LAX", entry["dest"])
	assert.Equal(t, 1946.0, entry["distance"])
}

func TestRouteHandlerUnknownPair(t *testing.T) {
	// SEA-DEN was never observed, and there is no fallback estimate.
	resp, envelope := getEndpoint(t, "/api/v1/route/SEA/DEN")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Contains(t, envelope.Text, "SEA-DEN")
}

func TestCurrentTimeHandler(t *testing.T) {
	resp, envelope := getEndpoint(t, "/api/v1/current-time")
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	entry, ok := envelope.Data.(map[string]interface{})
	require.True(t, ok)
	assert.NotEmpty(t, entry["readableTime"])
	assert.Greater(t, entry["time"].(float64), 0.0)
}
