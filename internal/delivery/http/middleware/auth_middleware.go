package middleware

import (
	"catalog/config"
	deliverycontext "catalog/internal/delivery/context"
	"catalog/internal/domain/entity"
	domainerrors "catalog/internal/domain/errors"
	"catalog/internal/usecase"

	"github.com/labstack/echo/v4"
)

// AuthMiddleware proves HTTP Basic credentials on every request. No session
// or token is issued.
type AuthMiddleware struct {
	credentialUC usecase.CredentialUsecase
	realm        string
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(credentialUC usecase.CredentialUsecase, cfg *config.Config) *AuthMiddleware {
	return &AuthMiddleware{
		credentialUC: credentialUC,
		realm:        realmFromConfig(cfg),
	}
}

// Authenticate rejects the request with 401 unless its Basic credentials verify.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if _, err := m.Identify(c); err != nil {
			return err
		}

		return next(c)
	}
}

// Identify verifies the request's credentials from inside a handler, for
// routes that must validate the body before authenticating. A missing or
// malformed header is reported exactly like a wrong secret.
func (m *AuthMiddleware) Identify(c echo.Context) (*entity.User, error) {
	if user, ok := deliverycontext.GetIdentity(c); ok {
		return user, nil
	}

	email, secret, ok := c.Request().BasicAuth()
	if !ok {
		return nil, domainerrors.ErrInvalidCredentials
	}

	user, err := m.credentialUC.Verify(c.Request().Context(), email, secret)
	if err != nil {
		return nil, err
	}
	deliverycontext.SetIdentity(c, user)

	return user, nil
}
