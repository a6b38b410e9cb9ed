package impl

import (
	"context"
	"testing"

	deliverycontext "catalog/internal/delivery/context"
	"catalog/internal/domain/entity"
	domainerrors "catalog/internal/domain/errors"
	"catalog/internal/domain/repository"
	"catalog/internal/domain/service"
	mockRepo "catalog/internal/mocks/repository"
	mockSvc "catalog/internal/mocks/service"
	"catalog/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type courseServiceFixtures struct {
	service    usecase.CourseUsecase
	txManager  *mockRepo.MockTransactionManager
	courseRepo *mockRepo.MockCourseRepository
	publisher  *mockSvc.MockEventPublisher
	qrService  *mockSvc.MockQRCodeService
}

func createTestCourseService(t *testing.T) courseServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	courseRepo := mockRepo.NewMockCourseRepository(t)
	publisher := mockSvc.NewMockEventPublisher(t)
	qrService := mockSvc.NewMockQRCodeService(t)

	return courseServiceFixtures{
		service: NewCourseService(CourseServiceParams{
			TxManager:  txManager,
			CourseRepo: courseRepo,
			Publisher:  publisher,
			QRService:  qrService,
			Logger:     newDiscardLogger(),
		}),
		txManager:  txManager,
		courseRepo: courseRepo,
		publisher:  publisher,
		qrService:  qrService,
	}
}

func courseInput() *usecase.CourseInput {
	return &usecase.CourseInput{
		Title:           "Build a Basic Bookcase",
		Description:     "High-end furniture projects are great to dream about.",
		EstimatedTime:   "12 hours",
		MaterialsNeeded: "* 1/2 x 3/4 inch parting strip",
	}
}

func ownedCourse(owner uuid.UUID) *entity.Course {
	return &entity.Course{
		ID:          uuid.New(),
		Title:       "Learn How to Program",
		Description: "In this course, you'll learn how to write code.",
		OwnerID:     owner,
	}
}

func TestCourseService_ListCourses(t *testing.T) {
	fx := createTestCourseService(t)
	ctx := context.Background()
	courses := []*entity.Course{ownedCourse(uuid.New()), ownedCourse(uuid.New())}

	fx.courseRepo.EXPECT().List(ctx).Return(courses, nil)

	got, err := fx.service.ListCourses(ctx)
	require.NoError(t, err)
	assert.Equal(t, courses, got)
}

func TestCourseService_GetCourse_NotFound(t *testing.T) {
	fx := createTestCourseService(t)
	ctx := context.Background()
	id := uuid.New()

	fx.courseRepo.EXPECT().FindByID(ctx, id).Return(nil, repository.ErrCourseNotFound)

	_, err := fx.service.GetCourse(ctx, id)
	assert.ErrorIs(t, err, domainerrors.ErrCourseNotFound)
}

func TestCourseService_CreateCourse_OwnerIsActor(t *testing.T) {
	fx := createTestCourseService(t)
	ctx := deliverycontext.WithRequestID(context.Background(), "req-1")
	actor := &entity.User{ID: uuid.New(), FirstName: "Joe", LastName: "Smith"}

	courseRepo := mockRepo.NewMockCourseRepository(t)
	expectTx(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		factory.EXPECT().CourseRepo().Return(courseRepo)
	})
	courseRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Course")).
		Run(func(_ context.Context, course *entity.Course) {
			course.ID = uuid.New()
		}).
		Return(nil)

	fx.publisher.EXPECT().
		PublishCourseEvent(ctx, mock.MatchedBy(func(event *service.CourseEvent) bool {
			return event.Type == service.CourseCreated &&
				event.OwnerID == actor.ID.String() &&
				event.RequestID == "req-1"
		})).
		Return(nil)

	course, err := fx.service.CreateCourse(ctx, actor, courseInput())

	require.NoError(t, err)
	assert.Equal(t, actor.ID, course.OwnerID)
	assert.Equal(t, actor, course.Owner)
	assert.Equal(t, "Build a Basic Bookcase", course.Title)
}

func TestCourseService_CreateCourse_RequiresActor(t *testing.T) {
	fx := createTestCourseService(t)

	_, err := fx.service.CreateCourse(context.Background(), nil, courseInput())
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestCourseService_CreateCourse_PublishFailureIsNotSurfaced(t *testing.T) {
	fx := createTestCourseService(t)
	ctx := context.Background()
	actor := &entity.User{ID: uuid.New()}

	courseRepo := mockRepo.NewMockCourseRepository(t)
	expectTx(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		factory.EXPECT().CourseRepo().Return(courseRepo)
	})
	courseRepo.EXPECT().Create(ctx, mock.Anything).Return(nil)
	fx.publisher.EXPECT().PublishCourseEvent(ctx, mock.Anything).Return(errors.New("broker down"))

	_, err := fx.service.CreateCourse(ctx, actor, courseInput())
	assert.NoError(t, err)
}

func TestCourseService_UpdateCourse_Owner(t *testing.T) {
	fx := createTestCourseService(t)
	ctx := context.Background()
	actor := &entity.User{ID: uuid.New()}
	existing := ownedCourse(actor.ID)

	courseRepo := mockRepo.NewMockCourseRepository(t)
	expectTx(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		factory.EXPECT().CourseRepo().Return(courseRepo)
	})
	courseRepo.EXPECT().FindByID(ctx, existing.ID).Return(existing, nil)
	courseRepo.EXPECT().
		Update(ctx, mock.MatchedBy(func(c *entity.Course) bool {
			return c.Title == "Build a Basic Bookcase" && c.OwnerID == actor.ID
		})).
		Return(nil)
	fx.publisher.EXPECT().PublishCourseEvent(ctx, mock.Anything).Return(nil)

	err := fx.service.UpdateCourse(ctx, actor, existing.ID, courseInput())
	require.NoError(t, err)
}

func TestCourseService_UpdateCourse_NonOwnerIsForbidden(t *testing.T) {
	fx := createTestCourseService(t)
	ctx := context.Background()
	actor := &entity.User{ID: uuid.New()}
	existing := ownedCourse(uuid.New())

	courseRepo := mockRepo.NewMockCourseRepository(t)
	expectTx(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		factory.EXPECT().CourseRepo().Return(courseRepo)
	})
	courseRepo.EXPECT().FindByID(ctx, existing.ID).Return(existing, nil)

	err := fx.service.UpdateCourse(ctx, actor, existing.ID, courseInput())

	assert.ErrorIs(t, err, domainerrors.ErrCourseForbidden)
	courseRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	fx.publisher.AssertNotCalled(t, "PublishCourseEvent", mock.Anything, mock.Anything)
}

func TestCourseService_UpdateCourse_Missing(t *testing.T) {
	fx := createTestCourseService(t)
	ctx := context.Background()
	id := uuid.New()

	courseRepo := mockRepo.NewMockCourseRepository(t)
	expectTx(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		factory.EXPECT().CourseRepo().Return(courseRepo)
	})
	courseRepo.EXPECT().FindByID(ctx, id).Return(nil, repository.ErrCourseNotFound)

	err := fx.service.UpdateCourse(ctx, &entity.User{ID: uuid.New()}, id, courseInput())
	assert.ErrorIs(t, err, domainerrors.ErrCourseNotFound)
}

func TestCourseService_DeleteCourse_Owner(t *testing.T) {
	fx := createTestCourseService(t)
	ctx := context.Background()
	actor := &entity.User{ID: uuid.New()}
	existing := ownedCourse(actor.ID)

	courseRepo := mockRepo.NewMockCourseRepository(t)
	expectTx(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		factory.EXPECT().CourseRepo().Return(courseRepo)
	})
	courseRepo.EXPECT().FindByID(ctx, existing.ID).Return(existing, nil)
	courseRepo.EXPECT().Delete(ctx, existing.ID).Return(nil)
	fx.publisher.EXPECT().
		PublishCourseEvent(ctx, mock.MatchedBy(func(event *service.CourseEvent) bool {
			return event.Type == service.CourseDeleted && event.CourseID == existing.ID.String()
		})).
		Return(nil)

	require.NoError(t, fx.service.DeleteCourse(ctx, actor, existing.ID))
}

func TestCourseService_DeleteCourse_NonOwnerIsForbidden(t *testing.T) {
	fx := createTestCourseService(t)
	ctx := context.Background()
	existing := ownedCourse(uuid.New())

	courseRepo := mockRepo.NewMockCourseRepository(t)
	expectTx(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		factory.EXPECT().CourseRepo().Return(courseRepo)
	})
	courseRepo.EXPECT().FindByID(ctx, existing.ID).Return(existing, nil)

	err := fx.service.DeleteCourse(ctx, &entity.User{ID: uuid.New()}, existing.ID)

	assert.ErrorIs(t, err, domainerrors.ErrCourseForbidden)
	courseRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestCourseService_DeleteCourse_StoreFailure(t *testing.T) {
	fx := createTestCourseService(t)
	ctx := context.Background()
	actor := &entity.User{ID: uuid.New()}
	existing := ownedCourse(actor.ID)

	courseRepo := mockRepo.NewMockCourseRepository(t)
	expectTx(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		factory.EXPECT().CourseRepo().Return(courseRepo)
	})
	courseRepo.EXPECT().FindByID(ctx, existing.ID).Return(existing, nil)
	courseRepo.EXPECT().Delete(ctx, existing.ID).Return(domainerrors.NewDatabaseExecuteError(errors.New("deadlock"), "failed to delete course"))

	err := fx.service.DeleteCourse(ctx, actor, existing.ID)

	require.Error(t, err)
	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 500, appErr.HTTPCode())
}

func TestCourseService_CourseQRCode(t *testing.T) {
	fx := createTestCourseService(t)
	ctx := context.Background()
	existing := ownedCourse(uuid.New())

	fx.courseRepo.EXPECT().FindByID(ctx, existing.ID).Return(existing, nil)
	fx.qrService.EXPECT().GenerateCourseQR(existing.ID).Return([]byte{0x89, 'P', 'N', 'G'}, nil)

	png, err := fx.service.CourseQRCode(ctx, existing.ID)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, png)
}

func TestCourseService_CourseQRCode_NotFound(t *testing.T) {
	fx := createTestCourseService(t)
	ctx := context.Background()
	id := uuid.New()

	fx.courseRepo.EXPECT().FindByID(ctx, id).Return(nil, repository.ErrCourseNotFound)

	_, err := fx.service.CourseQRCode(ctx, id)
	assert.ErrorIs(t, err, domainerrors.ErrCourseNotFound)
}
