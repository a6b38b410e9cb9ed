package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"catalog/config"
	deliverycontext "catalog/internal/delivery/context"
	"catalog/internal/domain/entity"
	domainerrors "catalog/internal/domain/errors"
	mockUC "catalog/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newAuthContext(setup func(r *http.Request)) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodGet, "/api/users", nil)
	if setup != nil {
		setup(req)
	}
	rec := httptest.NewRecorder()

	return echo.New().NewContext(req, rec), rec
}

func TestAuthMiddleware_Authenticate_Success(t *testing.T) {
	credentialUC := mockUC.NewMockCredentialUsecase(t)
	m := NewAuthMiddleware(credentialUC, &config.Config{})
	user := &entity.User{ID: uuid.New(), EmailAddress: "joe@smith.com"}

	credentialUC.EXPECT().Verify(mock.Anything, "joe@smith.com", "joepassword").Return(user, nil).Once()

	c, _ := newAuthContext(func(r *http.Request) { r.SetBasicAuth("joe@smith.com", "joepassword") })

	var seen *entity.User
	err := m.Authenticate(func(c echo.Context) error {
		seen, _ = deliverycontext.GetIdentity(c)

		return nil
	})(c)

	require.NoError(t, err)
	assert.Same(t, user, seen)

	// A second Identify reuses the verified identity.
	again, err := m.Identify(c)
	require.NoError(t, err)
	assert.Same(t, user, again)
}

func TestAuthMiddleware_MissingOrMalformedHeader(t *testing.T) {
	tests := []struct {
		name  string
		setup func(r *http.Request)
	}{
		{name: "missing", setup: nil},
		{name: "bearer", setup: func(r *http.Request) { r.Header.Set("Authorization", "Bearer abc") }},
		{name: "bad base64", setup: func(r *http.Request) { r.Header.Set("Authorization", "Basic !!!") }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			credentialUC := mockUC.NewMockCredentialUsecase(t)
			m := NewAuthMiddleware(credentialUC, &config.Config{})
			c, _ := newAuthContext(tt.setup)

			called := false
			err := m.Authenticate(func(echo.Context) error {
				called = true

				return nil
			})(c)

			assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
			assert.False(t, called)
		})
	}
}

func TestAuthMiddleware_WrongCredentials(t *testing.T) {
	credentialUC := mockUC.NewMockCredentialUsecase(t)
	m := NewAuthMiddleware(credentialUC, &config.Config{})

	credentialUC.EXPECT().Verify(mock.Anything, "joe@smith.com", "wrong").Return(nil, domainerrors.ErrInvalidCredentials)

	c, _ := newAuthContext(func(r *http.Request) { r.SetBasicAuth("joe@smith.com", "wrong") })

	user, err := m.Identify(c)
	assert.Nil(t, user)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)

	_, ok := deliverycontext.GetIdentity(c)
	assert.False(t, ok)
}
