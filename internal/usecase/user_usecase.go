// Package usecase defines the application's business operations as interfaces.
package usecase

import (
	"context"

	"catalog/internal/domain/entity"
)

// RegisterUserInput is the validated payload of a sign-up request.
type RegisterUserInput struct {
	FirstName    string
	LastName     string
	EmailAddress string
	Password     string
}

// UserUsecase defines the user account operations.
type UserUsecase interface {
	// RegisterUser creates a new account. A duplicate email address is a validation error.
	RegisterUser(ctx context.Context, input *RegisterUserInput) (*entity.User, error)
}

// CredentialUsecase proves the identity behind a pair of Basic credentials.
type CredentialUsecase interface {
	// Verify returns the user when the secret matches the stored hash. Unknown
	// identities and wrong secrets both yield ErrInvalidCredentials.
	Verify(ctx context.Context, emailAddress, secret string) (*entity.User, error)
}
