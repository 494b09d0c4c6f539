package handlers_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/grocery-prices/internal/api/handlers"
)

type pingFunc func(context.Context) error

func (f pingFunc) Ping(ctx context.Context) error { return f(ctx) }

func serve(t *testing.T, h *handlers.HealthHandler, path string) *httptest.ResponseRecorder {
	t.Helper()

	e := echo.New()
	handlers.RegisterHealthRoutes(e, h)

	req := httptest.NewRequest(http.MethodGet, path, http.NoBody)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestRoot(t *testing.T) {
	t.Parallel()

	rec := serve(t, handlers.NewHealthHandler(nil), "/")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"OK"`)
	assert.Contains(t, rec.Body.String(), `"timestamp":`)
}

func TestHealthz(t *testing.T) {
	t.Parallel()

	rec := serve(t, handlers.NewHealthHandler(nil), "/healthz")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestReadyz(t *testing.T) {
	t.Parallel()

	ok := pingFunc(func(context.Context) error { return nil })
	down := pingFunc(func(context.Context) error { return errors.New("connection refused") })

	tests := []struct {
		name       string
		checks     map[string]handlers.Pinger
		wantStatus int
		wantBody   string
	}{
		{
			name:       "no remote dependencies",
			wantStatus: http.StatusOK,
			wantBody:   `{"status":"ready"}`,
		},
		{
			name:       "all dependencies answer",
			checks:     map[string]handlers.Pinger{"offer_store": ok, "token_store": ok},
			wantStatus: http.StatusOK,
			wantBody:   `{"status":"ready"}`,
		},
		{
			name:       "token store down",
			checks:     map[string]handlers.Pinger{"offer_store": ok, "token_store": down},
			wantStatus: http.StatusServiceUnavailable,
			wantBody:   `{"status":"unavailable","failed":{"token_store":"connection refused"}}`,
		},
		{
			name:       "nil pinger ignored",
			checks:     map[string]handlers.Pinger{"offer_store": nil},
			wantStatus: http.StatusOK,
			wantBody:   `{"status":"ready"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			rec := serve(t, handlers.NewHealthHandler(tt.checks), "/readyz")
			require.Equal(t, tt.wantStatus, rec.Code)
			assert.JSONEq(t, tt.wantBody, rec.Body.String())
		})
	}
}
