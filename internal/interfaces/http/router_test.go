package http_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealth_OK(t *testing.T) {
	env := newTestEnv(t)

	resp := do(t, env.app, http.MethodGet, "/health", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "ok", decode(t, resp)["status"])
}

func TestHealth_BaseCaida503(t *testing.T) {
	env := newTestEnv(t)
	env.db.err = errors.New("connection refused")

	resp := do(t, env.app, http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
	assert.Equal(t, "degraded", decode(t, resp)["status"])
}

func TestRutaInexistente404ConEnvelope(t *testing.T) {
	env := newTestEnv(t)

	resp := do(t, env.app, http.MethodGet, "/no-existe", "", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	body := decode(t, resp)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "NOT_FOUND", body["code"])
}

func TestRequestID_SeGeneraYSeRespeta(t *testing.T) {
	env := newTestEnv(t)

	resp := do(t, env.app, http.MethodGet, "/health", "", nil)
	resp.Body.Close()
	assert.Len(t, resp.Header.Get("X-Request-ID"), 36, "uuid generado")

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("X-Request-ID", "abc-123")
	resp, err := env.app.Test(req, -1)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, "abc-123", resp.Header.Get("X-Request-ID"))
}

func TestCORS_OrigenPermitido(t *testing.T) {
	env := newTestEnv(t)

	req := httptest.NewRequest(http.MethodOptions, "/api/juguetes", nil)
	req.Header.Set("Origin", testOrigin)
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	resp, err := env.app.Test(req, -1)
	require.NoError(t, err)
	resp.Body.Close()

	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	assert.Equal(t, testOrigin, resp.Header.Get("Access-Control-Allow-Origin"))
}

func TestCORS_OrigenNoPermitido(t *testing.T) {
	env := newTestEnv(t)

	req := httptest.NewRequest(http.MethodOptions, "/api/juguetes", nil)
	req.Header.Set("Origin", "https://otro.example")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	resp, err := env.app.Test(req, -1)
	require.NoError(t, err)
	resp.Body.Close()

	assert.Empty(t, resp.Header.Get("Access-Control-Allow-Origin"))
}

func TestMetrics_ExponeContadores(t *testing.T) {
	env := newTestEnv(t)
	registerAna(t, env)

	login := do(t, env.app, http.MethodPost, "/api/auth/login", "", map[string]string{"username": "ana", "password": "mala"})
	login.Body.Close()

	raw := readAll(t, do(t, env.app, http.MethodGet, "/metrics", "", nil))
	assert.Contains(t, raw, `auth_login_total{result="invalid_credentials"} 1`)
	assert.Contains(t, raw, `http_requests_total{method="POST",route="/api/auth/register",status="201"} 1`)
	assert.Contains(t, raw, "http_request_duration_seconds_bucket")
}

// Las labels registradas no cambian con las peticiones posteriores.
func TestMetrics_LabelsEstablesEntrePeticiones(t *testing.T) {
	env := newTestEnv(t)
	token := bearer(t, 1, "Administrador")

	created := decode(t, do(t, env.app, http.MethodPost, "/api/juguetes", token, map[string]any{"nombre_juguete": "Trompo"}))
	id := created["data"].(map[string]interface{})["id_juguete"].(string)
	for _, method := range []string{http.MethodGet, http.MethodDelete, http.MethodGet} {
		path := "/api/juguetes"
		if method == http.MethodDelete {
			path += "/" + id
		}
		resp := do(t, env.app, method, path, token, nil)
		resp.Body.Close()
	}

	raw := readAll(t, do(t, env.app, http.MethodGet, "/metrics", "", nil))
	assert.Contains(t, raw, `http_requests_total{method="POST",route="/api/juguetes`)
	assert.Contains(t, raw, `http_requests_total{method="DELETE",route="/api/juguetes/:id",status="200"} 1`)
	assert.Contains(t, raw, `http_requests_total{method="GET",route="/api/juguetes`)
	assert.NotContains(t, raw, `method="GETT"`)
	assert.NotContains(t, raw, `method="DELETET"`)
}
