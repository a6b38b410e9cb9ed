// Package response writes the JSON bodies of the catalog API.
package response

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// ErrorBody is the body of every non-2xx response. Errors is only set on 400.
type ErrorBody struct {
	Message string   `json:"message"`
	Errors  []string `json:"errors,omitempty"`
}

// JSON writes a 200 body.
func JSON(c echo.Context, data any) error {
	return c.JSON(http.StatusOK, data)
}

// Created answers 201 with an empty body and a Location header.
func Created(c echo.Context, location string) error {
	c.Response().Header().Set(echo.HeaderLocation, location)

	return c.NoContent(http.StatusCreated)
}

// NoContent answers 204.
func NoContent(c echo.Context) error {
	return c.NoContent(http.StatusNoContent)
}

// Error writes an error body. Field errors are dropped for anything but 400.
func Error(c echo.Context, statusCode int, message string, errs []string) error {
	if statusCode != http.StatusBadRequest {
		errs = nil
	}

	return c.JSON(statusCode, ErrorBody{Message: message, Errors: errs})
}

// ValidationFailed answers 400 with the ordered field complaints.
func ValidationFailed(c echo.Context, errs []string) error {
	return Error(c, http.StatusBadRequest, "Validation failed", errs)
}

// Unauthorized answers 401 with a Basic challenge for realm.
func Unauthorized(c echo.Context, realm, message string) error {
	c.Response().Header().Set(echo.HeaderWWWAuthenticate, `Basic realm="`+realm+`"`)

	return Error(c, http.StatusUnauthorized, message, nil)
}

// InternalServerError answers 500 without internal details.
func InternalServerError(c echo.Context, message string) error {
	return Error(c, http.StatusInternalServerError, message, nil)
}
