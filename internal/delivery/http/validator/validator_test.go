package validator

import (
	"testing"

	domainerrors "catalog/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type signUp struct {
	FirstName    string `validate:"required" label:"First Name"`
	LastName     string `validate:"required" label:"Last Name"`
	EmailAddress string `validate:"required,email" label:"Email Address"`
	Password     string `validate:"required" label:"Password"`
}

func TestCustomValidator_Valid(t *testing.T) {
	v := New()

	err := v.Validate(&signUp{FirstName: "Joe", LastName: "Smith", EmailAddress: "joe@smith.com", Password: "x"})
	assert.NoError(t, err)
}

func TestCustomValidator_OrderedMessages(t *testing.T) {
	v := New()

	err := v.Validate(&signUp{LastName: "Smith", EmailAddress: "not-an-email"})

	var validationErr *domainerrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, []string{
		`Please provide a value for "First Name"`,
		`Please provide a valid email address for "Email Address"`,
		`Please provide a value for "Password"`,
	}, validationErr.Fields)
}

func TestCustomValidator_RequiredWinsOverEmail(t *testing.T) {
	v := New()

	err := v.Validate(&signUp{FirstName: "a", LastName: "b", Password: "c"})

	var validationErr *domainerrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, []string{`Please provide a value for "Email Address"`}, validationErr.Fields)
}

func TestCustomValidator_FallsBackToFieldName(t *testing.T) {
	v := New()

	type unlabeled struct {
		Title string `validate:"required"`
	}

	err := v.Validate(&unlabeled{})

	var validationErr *domainerrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, []string{`Please provide a value for "Title"`}, validationErr.Fields)
}

func TestCustomValidator_NonStruct(t *testing.T) {
	err := New().Validate("nope")

	require.Error(t, err)
	var validationErr *domainerrors.ValidationError
	assert.NotErrorAs(t, err, &validationErr)
}
