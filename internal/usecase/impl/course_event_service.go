package impl

import (
	"context"
	"log/slog"

	deliverycontext "catalog/internal/delivery/context"
	"catalog/internal/domain/repository"
	"catalog/internal/domain/service"
	"catalog/internal/errors"
	"catalog/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// courseEventService writes an audit line per course event, enriched with
// the course's current title when it still exists.
type courseEventService struct {
	courseRepo repository.CourseRepository
	logger     *slog.Logger
}

// CourseEventServiceParams holds dependencies for courseEventService, injected by Fx.
type CourseEventServiceParams struct {
	fx.In

	CourseRepo repository.CourseRepository
	Logger     *slog.Logger
}

// NewCourseEventService is the constructor for courseEventService.
func NewCourseEventService(params CourseEventServiceParams) usecase.CourseEventUsecase {
	return &courseEventService{
		courseRepo: params.CourseRepo,
		logger:     params.Logger,
	}
}

func (srv *courseEventService) HandleCourseEvent(ctx context.Context, event *service.CourseEvent) error {
	logger := deliverycontext.GetLoggerOrDefault(ctx, srv.logger)

	courseID, err := uuid.Parse(event.CourseID)
	if err != nil {
		return errors.Wrapf(usecase.ErrMalformedEvent, "course_id %q", event.CourseID)
	}
	if _, err := uuid.Parse(event.OwnerID); err != nil {
		return errors.Wrapf(usecase.ErrMalformedEvent, "owner_id %q", event.OwnerID)
	}

	attrs := []any{
		slog.String("event_type", string(event.Type)),
		slog.String("course_id", event.CourseID),
		slog.String("owner_id", event.OwnerID),
		slog.Time("occurred_at", event.OccurredAt),
	}

	switch event.Type {
	case service.CourseDeleted:
		logger.InfoContext(ctx, "Course audit", attrs...)

		return nil
	case service.CourseCreated, service.CourseUpdated:
	default:
		return errors.Wrapf(usecase.ErrMalformedEvent, "type %q", event.Type)
	}

	course, err := srv.courseRepo.FindByID(ctx, courseID)
	if errors.Is(err, repository.ErrCourseNotFound) {
		// deleted before the event arrived
		logger.InfoContext(ctx, "Course audit", append(attrs, slog.Bool("course_gone", true))...)

		return nil
	}
	if err != nil {
		return errors.Wrap(err, "load course for audit")
	}

	logger.InfoContext(ctx, "Course audit", append(attrs, slog.String("title", course.Title))...)

	return nil
}
