package postgres

import (
	"context"

	"catalog/internal/domain/entity"
	domainerrors "catalog/internal/domain/errors"
	"catalog/internal/domain/repository"
	"catalog/internal/errors"
	"catalog/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// courseRepository implements repository.CourseRepository using GORM.
type courseRepository struct {
	db *gorm.DB
}

// NewCourseRepository is the constructor for courseRepository.
func NewCourseRepository(db *gorm.DB) repository.CourseRepository {
	return &courseRepository{db: db}
}

// List returns every course with its owner, oldest first.
func (repo *courseRepository) List(ctx context.Context) ([]*entity.Course, error) {
	var rows []*model.CourseModel
	err := repo.db.WithContext(ctx).
		Preload("Owner").
		Order("created_at ASC").
		Find(&rows).Error
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list courses")
	}

	courses := make([]*entity.Course, 0, len(rows))
	for _, row := range rows {
		courses = append(courses, toCourseDomain(row))
	}

	return courses, nil
}

// FindByID returns a course with its owner.
func (repo *courseRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Course, error) {
	var courseM model.CourseModel
	err := repo.db.WithContext(ctx).
		Preload("Owner").
		Where("id = ?", id).
		First(&courseM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCourseNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find course by id")
	}

	return toCourseDomain(&courseM), nil
}

// Create inserts the course. The owner must already exist.
func (repo *courseRepository) Create(ctx context.Context, course *entity.Course) error {
	if course.ID == uuid.Nil {
		course.ID = uuid.New()
	}
	courseM := fromCourseDomain(course)

	if err := repo.db.WithContext(ctx).Omit("Owner").Create(courseM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.NewDatabaseExecuteError(err, "course owner does not exist")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create course")
	}

	course.CreatedAt = courseM.CreatedAt
	course.UpdatedAt = courseM.UpdatedAt

	return nil
}

// Update writes the content columns only; owner_id is never part of the statement.
func (repo *courseRepository) Update(ctx context.Context, course *entity.Course) error {
	result := repo.db.WithContext(ctx).
		Model(&model.CourseModel{}).
		Where("id = ?", course.ID).
		Select("title", "description", "estimated_time", "materials_needed").
		Updates(map[string]any{
			"title":            course.Title,
			"description":      course.Description,
			"estimated_time":   course.EstimatedTime,
			"materials_needed": course.MaterialsNeeded,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update course")
	}
	if result.RowsAffected == 0 {
		return repository.ErrCourseNotFound
	}

	return nil
}

// Delete removes the course row.
func (repo *courseRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.CourseModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete course")
	}
	if result.RowsAffected == 0 {
		return repository.ErrCourseNotFound
	}

	return nil
}

func toCourseDomain(data *model.CourseModel) *entity.Course {
	if data == nil {
		return nil
	}

	return &entity.Course{
		ID:              data.ID,
		Title:           data.Title,
		Description:     data.Description,
		EstimatedTime:   data.EstimatedTime,
		MaterialsNeeded: data.MaterialsNeeded,
		OwnerID:         data.OwnerID,
		Owner:           toUserDomain(data.Owner),
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}
}

func fromCourseDomain(data *entity.Course) *model.CourseModel {
	return &model.CourseModel{
		ID:              data.ID,
		Title:           data.Title,
		Description:     data.Description,
		EstimatedTime:   data.EstimatedTime,
		MaterialsNeeded: data.MaterialsNeeded,
		OwnerID:         data.OwnerID,
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}
}
