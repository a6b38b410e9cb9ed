package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"catalog/config"
	deliverycontext "catalog/internal/delivery/context"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(buf *bytes.Buffer, debug bool, h echo.HandlerFunc) *echo.Echo {
	logger := slog.New(slog.NewJSONHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	cfg := &config.Config{}
	cfg.Env.Debug = debug

	e := echo.New()
	e.Use(NewRequestIDMiddleware(logger).Process)
	e.Use(NewLoggerMiddleware(logger, cfg).Handle)
	e.GET("/", h)

	return e
}

func TestRequestIDMiddleware(t *testing.T) {
	var buf bytes.Buffer
	var seen string
	e := newTestServer(&buf, false, func(c echo.Context) error {
		seen = deliverycontext.GetRequestIDFromContext(c.Request().Context())

		return c.NoContent(http.StatusOK)
	})

	t.Run("generates an id", func(t *testing.T) {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		require.NotEmpty(t, seen)
		assert.Equal(t, seen, rec.Header().Get(deliverycontext.HeaderXRequestID))
	})

	t.Run("reuses the caller's id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(deliverycontext.HeaderXRequestID, "abc")
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, "abc", seen)
		assert.Equal(t, "abc", rec.Header().Get(deliverycontext.HeaderXRequestID))
	})
}

func TestLoggerMiddleware_LevelByStatus(t *testing.T) {
	tests := []struct {
		name   string
		status int
		debug  bool
		want   string
		logged bool
	}{
		{name: "success hidden outside debug", status: http.StatusOK},
		{name: "success in debug", status: http.StatusOK, debug: true, want: `"level":"INFO"`, logged: true},
		{name: "client error", status: http.StatusNotFound, want: `"level":"WARN"`, logged: true},
		{name: "server error", status: http.StatusInternalServerError, want: `"level":"ERROR"`, logged: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			e := newTestServer(&buf, tt.debug, func(c echo.Context) error {
				return c.NoContent(tt.status)
			})

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.Header.Set(deliverycontext.HeaderXRequestID, "req-9")
			e.ServeHTTP(httptest.NewRecorder(), req)

			if !tt.logged {
				assert.NotContains(t, buf.String(), "HTTP Request")

				return
			}
			assert.Contains(t, buf.String(), tt.want)
			assert.Contains(t, buf.String(), `"request_id":"req-9"`)
		})
	}
}

func TestLoggerMiddleware_RendersHandlerError(t *testing.T) {
	var buf bytes.Buffer
	e := newTestServer(&buf, false, func(echo.Context) error {
		return echo.NewHTTPError(http.StatusTeapot, "short and stout")
	})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusTeapot, rec.Code)
	assert.Contains(t, buf.String(), `"status":418`)
}
