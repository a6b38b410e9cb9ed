package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Root greets clients hitting the API root.
func Root(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"message": "Welcome to the course catalog REST API",
	})
}

// HealthCheck reports liveness.
func HealthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
