package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	handlers "github.com/ateet0254/mukesh-dairy-api/api/handlers"
	"github.com/ateet0254/mukesh-dairy-api/internal/dbrepo"
)

// routerApp builds an application whose routes can be probed without a
// database; token-less requests never reach a handler.
func routerApp() *application {
	app := testApp()
	app.Handlers = handlers.NewHandlerRepo(dbrepo.NewDBRepository(nil), app.config.JWT, app.infoLog, app.errorLog)
	return app
}

func TestRoutesPingIsPublic(t *testing.T) {
	app := routerApp()

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	rec := httptest.NewRecorder()
	app.routes().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRoutesRequireToken(t *testing.T) {
	app := routerApp()

	// 401 (not 404 or 405) proves the route is registered behind the
	// auth middleware.
	cases := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/api/v1/customers"},
		{http.MethodGet, "/api/v1/entries/rate"},
		{http.MethodGet, "/api/v1/entries/summary/daily"},
		{http.MethodGet, "/api/v1/payments/7"},
		{http.MethodGet, "/api/v1/rates"},
		{http.MethodPost, "/api/v1/auth/change-password"},
	}

	for _, tc := range cases {
		req := httptest.NewRequest(tc.method, tc.path, nil)
		rec := httptest.NewRecorder()
		app.routes().ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code, "%s %s", tc.method, tc.path)
	}
}
