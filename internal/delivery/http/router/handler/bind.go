package handler

import (
	domainerrors "catalog/internal/domain/errors"

	"github.com/labstack/echo/v4"
)

type normalizer interface {
	Normalize()
}

// bindAndValidate is the first pipeline stage: decode, trim, validate.
// A body that does not decode is a single-entry validation failure.
func bindAndValidate(c echo.Context, req normalizer) error {
	if err := (&echo.DefaultBinder{}).BindBody(c, req); err != nil {
		return domainerrors.NewValidationError(domainerrors.MsgMalformedBody)
	}
	req.Normalize()

	return c.Validate(req)
}
