package impl

import (
	"context"
	"log/slog"
	"strings"
	"sync"

	deliverycontext "catalog/internal/delivery/context"
	"catalog/internal/domain/entity"
	domainerrors "catalog/internal/domain/errors"
	"catalog/internal/domain/repository"
	"catalog/internal/domain/service"
	"catalog/internal/errors"
	"catalog/internal/usecase"

	"go.uber.org/fx"
)

// dummySecret is hashed once and compared against when the identity is unknown,
// so both failure paths cost one bcrypt comparison.
const dummySecret = "catalog-dummy-secret"

type credentialService struct {
	userRepo repository.UserRepository
	hasher   service.PasswordHasher
	logger   *slog.Logger

	dummyOnce sync.Once
	dummyHash string
}

// CredentialServiceParams holds dependencies for CredentialService, injected by Fx.
type CredentialServiceParams struct {
	fx.In

	UserRepo repository.UserRepository
	Hasher   service.PasswordHasher
	Logger   *slog.Logger
}

// NewCredentialService is the constructor for credentialService.
func NewCredentialService(params CredentialServiceParams) usecase.CredentialUsecase {
	return &credentialService{
		userRepo: params.UserRepo,
		hasher:   params.Hasher,
		logger:   params.Logger,
	}
}

func (srv *credentialService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Verify checks a Basic credential pair against the stored bcrypt hash.
func (srv *credentialService) Verify(ctx context.Context, emailAddress, secret string) (*entity.User, error) {
	email := entity.NormalizeEmail(emailAddress)
	if email == "" {
		srv.compareDummy(secret)

		return nil, domainerrors.ErrInvalidCredentials
	}

	user, err := srv.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			srv.compareDummy(secret)
			srv.log(ctx).Info("Authentication failed: unknown identity", slog.String("email", maskEmail(email)))

			return nil, domainerrors.ErrInvalidCredentials
		}

		return nil, errors.Wrap(err, "failed to find user by email")
	}

	if !srv.hasher.Check(secret, user.PasswordHash) {
		srv.log(ctx).Info("Authentication failed: wrong secret", slog.Any("userID", user.ID))

		return nil, domainerrors.ErrInvalidCredentials
	}

	return user, nil
}

func (srv *credentialService) compareDummy(secret string) {
	srv.dummyOnce.Do(func() {
		hash, err := srv.hasher.Hash(dummySecret)
		if err != nil {
			srv.logger.Warn("Failed to prepare dummy hash", slog.Any("error", err))

			return
		}
		srv.dummyHash = hash
	})
	if srv.dummyHash != "" {
		srv.hasher.Check(secret, srv.dummyHash)
	}
}

// maskEmail keeps the domain and the first character of the local part.
func maskEmail(email string) string {
	local, domain, ok := strings.Cut(email, "@")
	if !ok || local == "" {
		return "***"
	}

	return local[:1] + "***@" + domain
}
