package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "catalog/internal/delivery/context"
	"catalog/internal/domain/entity"
	domainerrors "catalog/internal/domain/errors"
	"catalog/internal/domain/policy"
	"catalog/internal/domain/repository"
	"catalog/internal/domain/service"
	"catalog/internal/errors"
	"catalog/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

type courseService struct {
	txManager  repository.TransactionManager
	courseRepo repository.CourseRepository
	publisher  service.EventPublisher
	qrService  service.QRCodeService
	logger     *slog.Logger
}

// CourseServiceParams holds dependencies for CourseService, injected by Fx.
type CourseServiceParams struct {
	fx.In

	TxManager  repository.TransactionManager
	CourseRepo repository.CourseRepository
	Publisher  service.EventPublisher
	QRService  service.QRCodeService
	Logger     *slog.Logger
}

// NewCourseService is the constructor for courseService.
func NewCourseService(params CourseServiceParams) usecase.CourseUsecase {
	return &courseService{
		txManager:  params.TxManager,
		courseRepo: params.CourseRepo,
		publisher:  params.Publisher,
		qrService:  params.QRService,
		logger:     params.Logger,
	}
}

func (srv *courseService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListCourses returns every course with its owner.
func (srv *courseService) ListCourses(ctx context.Context) ([]*entity.Course, error) {
	courses, err := srv.courseRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list courses")
	}

	return courses, nil
}

// GetCourse returns one course with its owner.
func (srv *courseService) GetCourse(ctx context.Context, courseID uuid.UUID) (*entity.Course, error) {
	course, err := srv.courseRepo.FindByID(ctx, courseID)
	if err != nil {
		return nil, mapCourseError(err, "failed to find course")
	}

	return course, nil
}

// CreateCourse stores the course with actor as owner.
func (srv *courseService) CreateCourse(ctx context.Context, actor *entity.User, input *usecase.CourseInput) (*entity.Course, error) {
	if actor == nil {
		return nil, domainerrors.ErrInvalidCredentials
	}

	course := &entity.Course{OwnerID: actor.ID}
	course.Apply(input.Content())

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return repoFactory.CourseRepo().Create(ctx, course)
	})
	if err != nil {
		srv.log(ctx).Error("Failed to create course", slog.Any("ownerID", actor.ID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create course")
	}
	course.Owner = actor

	srv.publish(ctx, service.CourseCreated, course)

	return course, nil
}

// UpdateCourse loads the course, checks ownership and writes the new content.
func (srv *courseService) UpdateCourse(ctx context.Context, actor *entity.User, courseID uuid.UUID, input *usecase.CourseInput) error {
	if actor == nil {
		return domainerrors.ErrInvalidCredentials
	}

	var updated *entity.Course
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		courseRepo := repoFactory.CourseRepo()

		course, err := srv.loadOwned(ctx, courseRepo, actor, courseID)
		if err != nil {
			return err
		}

		course.Apply(input.Content())
		if err := courseRepo.Update(ctx, course); err != nil {
			return mapCourseError(err, "failed to update course")
		}
		updated = course

		return nil
	})
	if err != nil {
		return err
	}

	srv.publish(ctx, service.CourseUpdated, updated)

	return nil
}

// DeleteCourse removes the course when actor owns it.
func (srv *courseService) DeleteCourse(ctx context.Context, actor *entity.User, courseID uuid.UUID) error {
	if actor == nil {
		return domainerrors.ErrInvalidCredentials
	}

	var deleted *entity.Course
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		courseRepo := repoFactory.CourseRepo()

		course, err := srv.loadOwned(ctx, courseRepo, actor, courseID)
		if err != nil {
			return err
		}

		if err := courseRepo.Delete(ctx, course.ID); err != nil {
			return mapCourseError(err, "failed to delete course")
		}
		deleted = course

		return nil
	})
	if err != nil {
		return err
	}

	srv.publish(ctx, service.CourseDeleted, deleted)

	return nil
}

// CourseQRCode renders a share code for an existing course.
func (srv *courseService) CourseQRCode(ctx context.Context, courseID uuid.UUID) ([]byte, error) {
	course, err := srv.GetCourse(ctx, courseID)
	if err != nil {
		return nil, err
	}

	png, err := srv.qrService.GenerateCourseQR(course.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate course QR code")
	}

	return png, nil
}

// loadOwned fetches the course and applies the ownership policy.
func (srv *courseService) loadOwned(ctx context.Context, courseRepo repository.CourseRepository, actor *entity.User, courseID uuid.UUID) (*entity.Course, error) {
	course, err := courseRepo.FindByID(ctx, courseID)
	if err != nil {
		return nil, mapCourseError(err, "failed to find course")
	}

	if policy.Authorize(actor.ID, course) != policy.Allowed {
		srv.log(ctx).Warn("Course modification denied",
			slog.Any("courseID", courseID),
			slog.Any("actorID", actor.ID),
		)

		return nil, domainerrors.ErrCourseForbidden
	}

	return course, nil
}

// publish emits a course event after commit. Failures are logged only.
func (srv *courseService) publish(ctx context.Context, eventType service.CourseEventType, course *entity.Course) {
	if srv.publisher == nil || course == nil {
		return
	}

	event := &service.CourseEvent{
		Type:       eventType,
		RequestID:  deliverycontext.GetRequestIDFromContext(ctx),
		CourseID:   course.ID.String(),
		OwnerID:    course.OwnerID.String(),
		OccurredAt: time.Now().UTC(),
	}
	if err := srv.publisher.PublishCourseEvent(ctx, event); err != nil {
		srv.log(ctx).Warn("Failed to publish course event",
			slog.String("type", string(eventType)),
			slog.String("courseID", event.CourseID),
			slog.Any("error", err),
		)
	}
}

func mapCourseError(err error, msg string) error {
	if errors.Is(err, repository.ErrCourseNotFound) {
		return domainerrors.ErrCourseNotFound
	}

	return errors.Wrap(err, msg)
}
