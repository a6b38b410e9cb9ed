// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	deliverycontext "catalog/internal/delivery/context"
	"catalog/internal/domain/entity"
	domainerrors "catalog/internal/domain/errors"
	"catalog/internal/domain/repository"
	"catalog/internal/domain/service"
	"catalog/internal/errors"
	"catalog/internal/usecase"

	"go.uber.org/fx"
)

// userService implements the UserUsecase interface.
type userService struct {
	txManager repository.TransactionManager
	hasher    service.PasswordHasher
	logger    *slog.Logger
}

// UserServiceParams holds dependencies for UserService, injected by Fx.
type UserServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	Hasher    service.PasswordHasher
	Logger    *slog.Logger
}

// NewUserService is the constructor for userService.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		txManager: params.TxManager,
		hasher:    params.Hasher,
		logger:    params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// RegisterUser hashes the password and stores the account. The email check and
// insert share a transaction; the unique index catches concurrent sign-ups.
func (srv *userService) RegisterUser(ctx context.Context, input *usecase.RegisterUserInput) (*entity.User, error) {
	email := entity.NormalizeEmail(input.EmailAddress)

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during registration", slog.Any("error", err))

		return nil, domainerrors.ErrPasswordHashFailed.WrapMessage(err.Error())
	}

	newUser := &entity.User{
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		EmailAddress: email,
		PasswordHash: hashedPassword,
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		existing, err := userRepo.FindByEmail(ctx, email)
		if err != nil && !errors.Is(err, repository.ErrUserNotFound) {
			return errors.Wrap(err, "failed to check email address")
		}
		if existing != nil {
			return domainerrors.NewValidationError(domainerrors.MsgDuplicateEmail)
		}

		if err := userRepo.Create(ctx, newUser); err != nil {
			if errors.Is(err, repository.ErrEmailTaken) {
				return domainerrors.NewValidationError(domainerrors.MsgDuplicateEmail)
			}

			return errors.Wrap(err, "failed to create user")
		}

		return nil
	})
	if err != nil {
		var validationErr *domainerrors.ValidationError
		if errors.As(err, &validationErr) {
			srv.log(ctx).Info("Registration rejected", slog.String("reason", validationErr.Details()))

			return nil, validationErr
		}
		srv.log(ctx).Error("Failed to execute registration transaction", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute user registration transaction")
	}

	srv.log(ctx).Debug("Registration completed", slog.Any("userID", newUser.ID))

	return newUser, nil
}
