package repository

import (
	"context"

	"catalog/internal/domain/entity"
	"catalog/internal/errors"

	"github.com/google/uuid"
)

// ErrCourseNotFound is returned when no course row matches the given ID.
var ErrCourseNotFound = errors.New("course not found")

// CourseRepository persists courses. Every method touches at most one row,
// except List.
type CourseRepository interface {
	// List returns all courses with their owners, oldest first.
	List(ctx context.Context) ([]*entity.Course, error)

	// FindByID returns a course with its owner.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Course, error)

	// Create inserts a course and fills in the generated ID and timestamps.
	Create(ctx context.Context, course *entity.Course) error

	// Update writes the mutable fields of an existing course. The owner column is never written.
	Update(ctx context.Context, course *entity.Course) error

	// Delete removes a course. Returns ErrCourseNotFound when nothing was deleted.
	Delete(ctx context.Context, id uuid.UUID) error
}
