package impl

import (
	"context"
	"testing"

	"catalog/internal/domain/entity"
	domainerrors "catalog/internal/domain/errors"
	"catalog/internal/domain/repository"
	mockRepo "catalog/internal/mocks/repository"
	mockSvc "catalog/internal/mocks/service"
	"catalog/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type credentialServiceFixtures struct {
	service  usecase.CredentialUsecase
	userRepo *mockRepo.MockUserRepository
	hasher   *mockSvc.MockPasswordHasher
}

func createTestCredentialService(t *testing.T) credentialServiceFixtures {
	userRepo := mockRepo.NewMockUserRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)

	return credentialServiceFixtures{
		service: NewCredentialService(CredentialServiceParams{
			UserRepo: userRepo,
			Hasher:   hasher,
			Logger:   newDiscardLogger(),
		}),
		userRepo: userRepo,
		hasher:   hasher,
	}
}

func TestCredentialService_Verify_Success(t *testing.T) {
	fx := createTestCredentialService(t)
	ctx := context.Background()
	stored := &entity.User{ID: uuid.New(), EmailAddress: "joe@smith.com", PasswordHash: "hash"}

	fx.userRepo.EXPECT().FindByEmail(ctx, "joe@smith.com").Return(stored, nil)
	fx.hasher.EXPECT().Check("joepassword", "hash").Return(true)

	user, err := fx.service.Verify(ctx, "JOE@smith.com", "joepassword")

	require.NoError(t, err)
	assert.Equal(t, stored, user)
}

func TestCredentialService_Verify_WrongSecret(t *testing.T) {
	fx := createTestCredentialService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().FindByEmail(ctx, "joe@smith.com").Return(&entity.User{ID: uuid.New(), PasswordHash: "hash"}, nil)
	fx.hasher.EXPECT().Check("nope", "hash").Return(false)

	user, err := fx.service.Verify(ctx, "joe@smith.com", "nope")

	assert.Nil(t, user)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestCredentialService_Verify_UnknownIdentityComparesDummyHash(t *testing.T) {
	fx := createTestCredentialService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().FindByEmail(ctx, "ghost@example.com").Return(nil, repository.ErrUserNotFound).Twice()
	fx.hasher.EXPECT().Hash(dummySecret).Return("dummy-hash", nil).Once()
	fx.hasher.EXPECT().Check("secret", "dummy-hash").Return(false).Twice()

	for range 2 {
		user, err := fx.service.Verify(ctx, "ghost@example.com", "secret")
		assert.Nil(t, user)
		assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	}
}

func TestCredentialService_Verify_SameErrorForBothFailures(t *testing.T) {
	fx := createTestCredentialService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().FindByEmail(ctx, "ghost@example.com").Return(nil, repository.ErrUserNotFound)
	fx.userRepo.EXPECT().FindByEmail(ctx, "joe@smith.com").Return(&entity.User{PasswordHash: "hash"}, nil)
	fx.hasher.EXPECT().Hash(dummySecret).Return("dummy-hash", nil)
	fx.hasher.EXPECT().Check("x", "dummy-hash").Return(false)
	fx.hasher.EXPECT().Check("x", "hash").Return(false)

	_, unknownErr := fx.service.Verify(ctx, "ghost@example.com", "x")
	_, wrongErr := fx.service.Verify(ctx, "joe@smith.com", "x")

	assert.Equal(t, unknownErr, wrongErr)
}

func TestCredentialService_Verify_EmptyEmail(t *testing.T) {
	fx := createTestCredentialService(t)

	fx.hasher.EXPECT().Hash(dummySecret).Return("dummy-hash", nil)
	fx.hasher.EXPECT().Check("", "dummy-hash").Return(false)

	_, err := fx.service.Verify(context.Background(), "   ", "")

	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestCredentialService_Verify_StoreFailure(t *testing.T) {
	fx := createTestCredentialService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().FindByEmail(ctx, "joe@smith.com").Return(nil, errors.New("db down"))

	_, err := fx.service.Verify(ctx, "joe@smith.com", "x")

	require.Error(t, err)
	assert.NotErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestMaskEmail(t *testing.T) {
	assert.Equal(t, "j***@smith.com", maskEmail("joe@smith.com"))
	assert.Equal(t, "***", maskEmail("invalid"))
	assert.Equal(t, "***", maskEmail("@smith.com"))
}
