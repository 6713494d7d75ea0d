package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/juguetes-api/internal/application/auth"
	"github.com/jhoicas/juguetes-api/internal/application/usecase"
	apphttp "github.com/jhoicas/juguetes-api/internal/interfaces/http"
	"github.com/jhoicas/juguetes-api/internal/testutil/memrepo"
	pkgjwt "github.com/jhoicas/juguetes-api/pkg/jwt"
	"github.com/jhoicas/juguetes-api/pkg/logger"
	"github.com/jhoicas/juguetes-api/pkg/password"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const (
	testJWTSecret = "test-secret-key-for-unit-tests"
	testIssuer    = "juguetes-api-test"
	testOrigin    = "http://localhost:5173"
)

type testEnv struct {
	app     *fiber.App
	store   *memrepo.Store
	metrics *apphttp.Metrics
	db      *fakePinger
}

type appOption func(*auth.Config)

// withSkipDuplicates activa la política skip para usernames repetidos.
func withSkipDuplicates() appOption {
	return func(c *auth.Config) { c.SkipDuplicateUsername = true }
}

// newTestEnv monta el router completo sobre repositorios en memoria.
func newTestEnv(t *testing.T, opts ...appOption) *testEnv {
	t.Helper()
	store := memrepo.New()
	cfg := auth.Config{JWT: auth.JWTConfig{Secret: testJWTSecret, TTL: time.Hour, Issuer: testIssuer}}
	for _, o := range opts {
		o(&cfg)
	}
	metrics := apphttp.NewMetrics(false)
	db := &fakePinger{}

	app := fiber.New(fiber.Config{ErrorHandler: apphttp.ErrorHandler})
	apphttp.Router(app, apphttp.RouterDeps{
		AuthUC:      auth.NewAuthUseCase(store.Users(), password.New(4), cfg),
		ToyUC:       usecase.NewToyUseCase(store.Toys()),
		CatalogUC:   usecase.NewCatalogUseCase(store.Categories(), store.Materials()),
		JWTSecret:   testJWTSecret,
		ServiceName: "juguetes-api-test",
		CORSOrigins: []string{testOrigin},
		Logger:      logger.Nop(),
		Metrics:     metrics,
		DB:          db,
	})
	return &testEnv{app: app, store: store, metrics: metrics, db: db}
}

type fakePinger struct{ err error }

func (p *fakePinger) Ping(context.Context) error { return p.err }

// bearer genera un header Authorization válido.
func bearer(t *testing.T, id int64, rol string) string {
	t.Helper()
	tok, err := pkgjwt.Generate(testJWTSecret, id, rol, testIssuer, time.Hour)
	require.NoError(t, err, "debe generarse un token JWT válido")
	return "Bearer " + tok
}

// do lanza la petición; body se serializa a JSON si no es nil.
func do(t *testing.T, app *fiber.App, method, path, authHeader string, body any) *http.Response {
	t.Helper()
	var r io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		r = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, r)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// decode lee el cuerpo JSON de la respuesta como mapa.
func decode(t *testing.T, resp *http.Response) map[string]interface{} {
	t.Helper()
	defer resp.Body.Close()
	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body
}

func readAll(t *testing.T, resp *http.Response) string {
	t.Helper()
	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return string(raw)
}
