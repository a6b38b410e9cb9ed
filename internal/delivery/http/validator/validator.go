// Package validator adapts go-playground/validator to echo and renders
// failures as ordered, human-readable field complaints.
package validator

import (
	"fmt"
	"reflect"

	domainerrors "catalog/internal/domain/errors"
	"catalog/internal/errors"

	"github.com/go-playground/validator/v10"
)

// CustomValidator implements echo.Validator.
type CustomValidator struct {
	validate *validator.Validate
}

// New returns a validator that names fields by their `label` tag.
func New() *CustomValidator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		if label := field.Tag.Get("label"); label != "" {
			return label
		}

		return field.Name
	})

	return &CustomValidator{validate: v}
}

// Validate returns nil or a *domainerrors.ValidationError with one entry per
// failing field, in struct field order.
func (cv *CustomValidator) Validate(i any) error {
	err := cv.validate.Struct(i)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return errors.Wrap(err, "validate request")
	}

	messages := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		messages = append(messages, message(fe))
	}

	return domainerrors.NewValidationError(messages...)
}

func message(fe validator.FieldError) string {
	label := fe.Field()
	switch fe.Tag() {
	case "required":
		return domainerrors.RequiredField(label)
	case "email":
		return domainerrors.InvalidEmail(label)
	case "max":
		return fmt.Sprintf("%q must be at most %s characters", label, fe.Param())
	default:
		return fmt.Sprintf("Please provide a valid value for %q", label)
	}
}
