// Package middleware contains the HTTP-specific middleware of the catalog API.
package middleware

import (
	"log/slog"
	"net/http"

	"catalog/config"
	deliverycontext "catalog/internal/delivery/context"
	"catalog/internal/delivery/http/response"
	domainerrors "catalog/internal/domain/errors"
	"catalog/internal/errors"

	"github.com/labstack/echo/v4"
)

// ErrorMiddleware renders every handler error as a JSON body.
type ErrorMiddleware struct {
	logger *slog.Logger
	realm  string
}

// NewErrorMiddleware creates a new error handling middleware
func NewErrorMiddleware(logger *slog.Logger, cfg *config.Config) *ErrorMiddleware {
	return &ErrorMiddleware{
		logger: logger,
		realm:  realmFromConfig(cfg),
	}
}

// HandleHTTPError handles errors as Echo's HTTPErrorHandler
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	var validationErr *domainerrors.ValidationError
	if errors.As(err, &validationErr) {
		_ = response.ValidationFailed(c, validationErr.Fields)

		return
	}

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		m.renderStatus(c, err, appErr.HTTPCode(), appErr.Message())

		return
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		// Unmatched paths and methods share one body.
		if httpErr.Code == http.StatusNotFound || httpErr.Code == http.StatusMethodNotAllowed {
			_ = response.Error(c, http.StatusNotFound, domainerrors.ErrRouteNotFound.Message(), nil)

			return
		}
		message := http.StatusText(httpErr.Code)
		if msg, ok := httpErr.Message.(string); ok && msg != "" {
			message = msg
		}
		if httpErr.Code == http.StatusBadRequest {
			_ = response.ValidationFailed(c, []string{message})

			return
		}
		m.renderStatus(c, err, httpErr.Code, message)

		return
	}

	m.renderStatus(c, err, http.StatusInternalServerError, "")
}

func (m *ErrorMiddleware) renderStatus(c echo.Context, err error, code int, message string) {
	switch {
	case code == http.StatusUnauthorized:
		_ = response.Unauthorized(c, m.realm, domainerrors.ErrInvalidCredentials.Message())
	case code >= http.StatusInternalServerError:
		deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger).Error("Unhandled error",
			slog.Any("error", err),
			slog.String("path", c.Request().URL.Path),
			slog.String("method", c.Request().Method),
		)
		_ = response.InternalServerError(c, domainerrors.ErrInternalError.Message())
	default:
		_ = response.Error(c, code, message, nil)
	}
}

func realmFromConfig(cfg *config.Config) string {
	if cfg != nil && cfg.Auth != nil && cfg.Auth.Realm != "" {
		return cfg.Auth.Realm
	}

	return "catalog"
}
