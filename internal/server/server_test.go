package server

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"clinic/internal/config"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func testConfig() *config.Config {
	return &config.Config{
		Port:            "127.0.0.1:0",
		ShutdownTimeout: time.Second,
		CORS:            config.CORSConfig{AllowOrigins: []string{"http://localhost:3000"}},
	}
}

func testLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewJSONHandler(buf, nil))
}

func serve(s *Server, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	return rec
}

func TestServer_Health(t *testing.T) {
	t.Run("no check", func(t *testing.T) {
		s := New(testConfig(), testLogger(&bytes.Buffer{}))

		rec := serve(s, httptest.NewRequest(http.MethodGet, "/health", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
	})

	t.Run("failing check", func(t *testing.T) {
		s := New(testConfig(), testLogger(&bytes.Buffer{}), WithHealthCheck(func(context.Context) error {
			return errors.New("connection refused")
		}))

		rec := serve(s, httptest.NewRequest(http.MethodGet, "/health", nil))

		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
		assert.JSONEq(t, `{"status":"unavailable"}`, rec.Body.String())
	})
}

func TestServer_RequestID(t *testing.T) {
	var buf bytes.Buffer
	s := New(testConfig(), testLogger(&buf))

	t.Run("generated", func(t *testing.T) {
		rec := serve(s, httptest.NewRequest(http.MethodGet, "/health", nil))

		_, err := uuid.Parse(rec.Header().Get(RequestIDHeader))
		assert.NoError(t, err)
	})

	t.Run("propagated", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		req.Header.Set(RequestIDHeader, "abc-123")

		rec := serve(s, req)

		assert.Equal(t, "abc-123", rec.Header().Get(RequestIDHeader))
		assert.Contains(t, buf.String(), `"request_id":"abc-123"`)
		assert.Contains(t, buf.String(), `"path":"/health"`)
	})
}

func TestServer_MountedRoutes(t *testing.T) {
	s := New(testConfig(), testLogger(&bytes.Buffer{}))
	s.Router().GET("/doctors", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, []string{})
	})

	rec := serve(s, httptest.NewRequest(http.MethodGet, "/doctors", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestServer_CORS(t *testing.T) {
	s := New(testConfig(), testLogger(&bytes.Buffer{}))

	t.Run("allowed origin", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		req.Header.Set("Origin", "http://localhost:3000")

		rec := serve(s, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "http://localhost:3000", rec.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("preflight", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodOptions, "/doctors/1", nil)
		req.Header.Set("Origin", "http://localhost:3000")
		req.Header.Set("Access-Control-Request-Method", http.MethodPut)

		rec := serve(s, req)

		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Contains(t, rec.Header().Get("Access-Control-Allow-Methods"), http.MethodPut)
	})

	t.Run("foreign origin", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		req.Header.Set("Origin", "http://evil.example")

		rec := serve(s, req)

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("wildcard", func(t *testing.T) {
		cfg := testConfig()
		cfg.CORS.AllowOrigins = []string{"*"}
		s := New(cfg, testLogger(&bytes.Buffer{}))

		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		req.Header.Set("Origin", "http://anything.example")

		rec := serve(s, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	})
}

func TestServer_Run(t *testing.T) {
	t.Run("stops when context is done", func(t *testing.T) {
		s := New(testConfig(), testLogger(&bytes.Buffer{}))

		ctx, cancel := context.WithCancel(context.Background())
		errCh := make(chan error, 1)
		go func() { errCh <- s.Run(ctx) }()

		time.Sleep(50 * time.Millisecond)
		cancel()

		select {
		case err := <-errCh:
			assert.NoError(t, err)
		case <-time.After(5 * time.Second):
			t.Fatal("server did not stop")
		}
	})

	t.Run("listen error", func(t *testing.T) {
		cfg := testConfig()
		cfg.Port = "127.0.0.1:-1"
		s := New(cfg, testLogger(&bytes.Buffer{}))

		err := s.Run(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "server.Run()")
	})
}
