// Copyright (c) 2026 SomaliTag. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package api_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/somalitag/internal/api"
	"github.com/taibuivan/somalitag/internal/catalog"
	"github.com/taibuivan/somalitag/internal/directory"
	"github.com/taibuivan/somalitag/internal/platform/config"
	"github.com/taibuivan/somalitag/internal/preference"
	"github.com/taibuivan/somalitag/internal/profile"
	"github.com/taibuivan/somalitag/internal/web"
)

func newServer(t *testing.T, checks ...api.Check) http.Handler {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	c, err := catalog.New(catalog.Shipped())
	require.NoError(t, err)
	controller := directory.NewController(c)

	webHandler, err := web.NewHandler(controller, preference.CookieBackend{TTL: time.Hour}, logger)
	require.NoError(t, err)

	liveness, readiness := api.NewHealthHandlers(api.HealthDependencies{Checks: checks}, logger)

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	server := api.NewServer(ctx, &config.Config{ServerPort: "0", Environment: "development"}, logger, api.Handlers{
		Liveness:  liveness,
		Readiness: readiness,
		Web:       webHandler,
		Profile:   profile.NewHandler(profile.NewService(controller, logger)),
	})
	return server.Handler()
}

func do(handler http.Handler, method, target string, headers map[string]string) *httptest.ResponseRecorder {
	request := httptest.NewRequest(method, target, nil)
	for name, value := range headers {
		request.Header.Set(name, value)
	}

	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, request)
	return recorder
}

/*
TestServer_Routes verifies every route group is mounted behind the middleware chain.
*/
func TestServer_Routes(t *testing.T) {
	server := newServer(t)

	tests := []struct {
		name   string
		target string
		status int
	}{
		{"liveness", "/health", http.StatusOK},
		{"readiness", "/ready", http.StatusOK},
		{"metrics", "/metrics", http.StatusOK},
		{"api list", "/api/v1/profiles", http.StatusOK},
		{"api detail", "/api/v1/profiles/1", http.StatusOK},
		{"api unknown", "/api/v1/nothing", http.StatusNotFound},
		{"ui", "/", http.StatusOK},
		{"ui unknown", "/nothing", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := do(server, http.MethodGet, tt.target, nil)

			assert.Equal(t, tt.status, recorder.Code)
			assert.NotEmpty(t, recorder.Header().Get("X-Request-ID"))
		})
	}
}

/*
TestServer_CORS verifies the JSON API answers preflight requests.
*/
func TestServer_CORS(t *testing.T) {
	server := newServer(t)

	recorder := do(server, http.MethodOptions, "/api/v1/profiles", map[string]string{"Origin": "https://example.org"})

	assert.Equal(t, http.StatusNoContent, recorder.Code)
	assert.Equal(t, "https://example.org", recorder.Header().Get("Access-Control-Allow-Origin"))
}

/*
TestReadiness verifies a failing dependency degrades the probe.
*/
func TestReadiness(t *testing.T) {
	healthy := api.Check{Name: "catalog", Run: func(context.Context) error { return nil }}
	broken := api.Check{Name: "redis", Run: func(context.Context) error { return errors.New("connection refused") }}

	recorder := do(newServer(t, healthy), http.MethodGet, "/ready", nil)
	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), `"status":"ready"`)

	recorder = do(newServer(t, healthy, broken), http.MethodGet, "/ready", nil)
	assert.Equal(t, http.StatusServiceUnavailable, recorder.Code)
	assert.Contains(t, recorder.Body.String(), `"status":"degraded"`)
	assert.Contains(t, recorder.Body.String(), "connection refused")
}
