package usecase

import (
	"context"

	"catalog/internal/domain/service"
	"catalog/internal/errors"
)

// ErrMalformedEvent marks an event that can never be processed. Push
// consumers acknowledge it instead of asking for redelivery.
var ErrMalformedEvent = errors.New("malformed course event")

// CourseEventUsecase consumes course lifecycle events delivered by Pub/Sub.
type CourseEventUsecase interface {
	// HandleCourseEvent records one event. Errors other than
	// ErrMalformedEvent are transient.
	HandleCourseEvent(ctx context.Context, event *service.CourseEvent) error
}
