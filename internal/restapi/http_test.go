package restapi

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/julienschmidt/httprouter"
	"github.com/stretchr/testify/require"

	"delaycast.arrivals.org/internal/app"
	"delaycast.arrivals.org/internal/appconf"
	"delaycast.arrivals.org/internal/classifier"
	"delaycast.arrivals.org/internal/logging"
	"delaycast.arrivals.org/internal/models"
	"delaycast.arrivals.org/internal/reference"
)

// createTestApi creates a RestAPI with the testdata reference tables and
// model artifact loaded.
func createTestApi(t *testing.T) *RestAPI {
	t.Helper()

	testdata := filepath.Join("..", "..", "testdata")
	refs, err := reference.InitManager(testdata)
	require.NoError(t, err)

	model, err := classifier.LoadModel(filepath.Join(testdata, "model.json"))
	require.NoError(t, err)

	application := &app.Application{
		Config: appconf.Config{
			Env:     appconf.Test,
			DataDir: testdata,
		},
		Logger: logging.NewStructuredLogger(io.Discard, slog.LevelInfo),
		Refs:   refs,
		Model:  model,
	}

	return NewRestAPI(application)
}

func startTestServer(t *testing.T, api *RestAPI) *httptest.Server {
	t.Helper()
	router := httprouter.New()
	api.SetRoutes(router)
	server := httptest.NewServer(router)
	t.Cleanup(server.Close)
	return server
}

// getEndpoint makes a GET request and decodes the envelope.
func getEndpoint(t *testing.T, endpoint string) (*http.Response, models.ResponseModel) {
	t.Helper()
	server := startTestServer(t, createTestApi(t))

	resp, err := http.Get(server.URL + endpoint)
	require.NoError(t, err)
	defer resp.Body.Close() // nolint:errcheck

	var model models.ResponseModel
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&model))
	return resp, model
}

func jsonReader(s string) io.Reader {
	return bytes.NewReader([]byte(s))
}

// postJSON posts a JSON body and returns the raw response with its bytes.
func postJSON(t *testing.T, endpoint string, body any) (*http.Response, []byte) {
	t.Helper()
	server := startTestServer(t, createTestApi(t))

	payload, err := json.Marshal(body)
	require.NoError(t, err)

	resp, err := http.Post(server.URL+endpoint, "application/json", bytes.NewReader(payload))
	require.NoError(t, err)
	defer resp.Body.Close() // nolint:errcheck

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, raw
}
