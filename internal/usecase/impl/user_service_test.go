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
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// userServiceFixtures holds all test dependencies for user service tests.
type userServiceFixtures struct {
	service   usecase.UserUsecase
	txManager *mockRepo.MockTransactionManager
	hasher    *mockSvc.MockPasswordHasher
}

func createTestUserService(t *testing.T) userServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	hasher := mockSvc.NewMockPasswordHasher(t)

	service := NewUserService(UserServiceParams{
		TxManager: txManager,
		Hasher:    hasher,
		Logger:    newDiscardLogger(),
	})

	return userServiceFixtures{
		service:   service,
		txManager: txManager,
		hasher:    hasher,
	}
}

func registerInput() *usecase.RegisterUserInput {
	return &usecase.RegisterUserInput{
		FirstName:    "Joe",
		LastName:     "Smith",
		EmailAddress: "  Joe@Smith.com ",
		Password:     "joepassword",
	}
}

func TestUserService_RegisterUser_Success(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()
	input := registerInput()

	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)

	userRepo := mockRepo.NewMockUserRepository(t)
	expectTx(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		factory.EXPECT().UserRepo().Return(userRepo)
	})

	userRepo.EXPECT().FindByEmail(ctx, "joe@smith.com").Return(nil, repository.ErrUserNotFound)
	userRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		Run(func(_ context.Context, user *entity.User) {
			user.ID = uuid.New()
		}).
		Return(nil)

	user, err := fx.service.RegisterUser(ctx, input)

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, user.ID)
	assert.Equal(t, "joe@smith.com", user.EmailAddress)
	assert.Equal(t, "hashed_password", user.PasswordHash)
	assert.Equal(t, "Joe Smith", user.FullName())
}

func TestUserService_RegisterUser_DuplicateEmail(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()
	input := registerInput()

	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)

	userRepo := mockRepo.NewMockUserRepository(t)
	expectTx(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		factory.EXPECT().UserRepo().Return(userRepo)
	})
	userRepo.EXPECT().FindByEmail(ctx, "joe@smith.com").Return(&entity.User{ID: uuid.New()}, nil)

	user, err := fx.service.RegisterUser(ctx, input)

	assert.Nil(t, user)
	var validationErr *domainerrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, []string{domainerrors.MsgDuplicateEmail}, validationErr.Fields)
}

func TestUserService_RegisterUser_ConcurrentDuplicate(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()
	input := registerInput()

	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)

	userRepo := mockRepo.NewMockUserRepository(t)
	expectTx(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		factory.EXPECT().UserRepo().Return(userRepo)
	})
	userRepo.EXPECT().FindByEmail(ctx, "joe@smith.com").Return(nil, repository.ErrUserNotFound)
	userRepo.EXPECT().Create(ctx, mock.Anything).Return(repository.ErrEmailTaken)

	_, err := fx.service.RegisterUser(ctx, input)

	var validationErr *domainerrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, []string{domainerrors.MsgDuplicateEmail}, validationErr.Fields)
}

func TestUserService_RegisterUser_HashFailure(t *testing.T) {
	fx := createTestUserService(t)
	input := registerInput()

	fx.hasher.EXPECT().Hash(input.Password).Return("", errors.New("bcrypt: password length exceeds 72 bytes"))

	user, err := fx.service.RegisterUser(context.Background(), input)

	assert.Nil(t, user)
	assert.ErrorIs(t, err, domainerrors.ErrPasswordHashFailed)
}

func TestUserService_RegisterUser_StoreFailure(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()
	input := registerInput()

	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)

	userRepo := mockRepo.NewMockUserRepository(t)
	expectTx(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		factory.EXPECT().UserRepo().Return(userRepo)
	})
	userRepo.EXPECT().FindByEmail(ctx, "joe@smith.com").Return(nil, errors.New("connection reset"))

	_, err := fx.service.RegisterUser(ctx, input)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "connection reset")
	var validationErr *domainerrors.ValidationError
	assert.False(t, errors.As(err, &validationErr))
}
