package usecase

import (
	"context"

	"catalog/internal/domain/entity"

	"github.com/google/uuid"
)

// CourseInput is the validated content of a create or update request.
type CourseInput struct {
	Title           string
	Description     string
	EstimatedTime   string
	MaterialsNeeded string
}

// Content converts the input to the entity's mutable fields.
func (in *CourseInput) Content() entity.CourseContent {
	return entity.CourseContent{
		Title:           in.Title,
		Description:     in.Description,
		EstimatedTime:   in.EstimatedTime,
		MaterialsNeeded: in.MaterialsNeeded,
	}
}

// CourseUsecase defines the course catalog operations. Mutations take the
// authenticated actor and only succeed for the course owner.
type CourseUsecase interface {
	ListCourses(ctx context.Context) ([]*entity.Course, error)
	GetCourse(ctx context.Context, courseID uuid.UUID) (*entity.Course, error)

	// CreateCourse stores a new course owned by actor. Any owner in the request is ignored.
	CreateCourse(ctx context.Context, actor *entity.User, input *CourseInput) (*entity.Course, error)
	UpdateCourse(ctx context.Context, actor *entity.User, courseID uuid.UUID, input *CourseInput) error
	DeleteCourse(ctx context.Context, actor *entity.User, courseID uuid.UUID) error

	// CourseQRCode renders a share code for an existing course.
	CourseQRCode(ctx context.Context, courseID uuid.UUID) ([]byte, error)
}
