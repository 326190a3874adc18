package httpserver_test

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"moviecatalog/httpserver"
	"moviecatalog/pkg/config"

	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	return &config.Config{AppEnv: config.EnvTesting}
}

func decodeJSON(t *testing.T, rec *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), v), "body: %s", rec.Body.String())
}

func decodeErrorResponse(t *testing.T, rec *httptest.ResponseRecorder) httpserver.ErrorResponse {
	t.Helper()
	var resp httpserver.ErrorResponse
	decodeJSON(t, rec, &resp)
	return resp
}

func decodeValidationError(t *testing.T, rec *httptest.ResponseRecorder) httpserver.ValidationError {
	t.Helper()
	var resp httpserver.ValidationError
	decodeJSON(t, rec, &resp)
	return resp
}
