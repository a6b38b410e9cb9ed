package http

import (
	"context"
	"slices"
	"sync"
	"time"

	"catalog/internal/domain/entity"
	"catalog/internal/domain/repository"

	"github.com/google/uuid"
)

// memoryStore is an in-memory stand-in for the GORM repositories.
type memoryStore struct {
	mu      sync.Mutex
	users   []*entity.User
	courses []*entity.Course
	listErr error
}

func newMemoryStore() *memoryStore {
	return &memoryStore{}
}

func (s *memoryStore) Execute(_ context.Context, fn func(repository.RepositoryFactory) error) error {
	return fn(s)
}

func (s *memoryStore) UserRepo() repository.UserRepository     { return (*memoryUsers)(s) }
func (s *memoryStore) CourseRepo() repository.CourseRepository { return (*memoryCourses)(s) }

func (s *memoryStore) courseCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.courses)
}

func (s *memoryStore) userCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.users)
}

type memoryUsers memoryStore

func (r *memoryUsers) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.users {
		if u.ID == id {
			clone := *u

			return &clone, nil
		}
	}

	return nil, repository.ErrUserNotFound
}

func (r *memoryUsers) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.users {
		if u.EmailAddress == entity.NormalizeEmail(email) {
			clone := *u

			return &clone, nil
		}
	}

	return nil, repository.ErrUserNotFound
}

func (r *memoryUsers) Create(_ context.Context, user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.users {
		if u.EmailAddress == user.EmailAddress {
			return repository.ErrEmailTaken
		}
	}
	user.ID = uuid.New()
	user.CreatedAt = time.Now()
	clone := *user
	r.users = append(r.users, &clone)

	return nil
}

type memoryCourses memoryStore

func (r *memoryCourses) owner(id uuid.UUID) *entity.User {
	for _, u := range r.users {
		if u.ID == id {
			clone := *u

			return &clone
		}
	}

	return nil
}

func (r *memoryCourses) List(_ context.Context) ([]*entity.Course, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.listErr != nil {
		return nil, r.listErr
	}

	out := make([]*entity.Course, 0, len(r.courses))
	for _, c := range r.courses {
		clone := *c
		clone.Owner = r.owner(c.OwnerID)
		out = append(out, &clone)
	}

	return out, nil
}

func (r *memoryCourses) FindByID(_ context.Context, id uuid.UUID) (*entity.Course, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, c := range r.courses {
		if c.ID == id {
			clone := *c
			clone.Owner = r.owner(c.OwnerID)

			return &clone, nil
		}
	}

	return nil, repository.ErrCourseNotFound
}

func (r *memoryCourses) Create(_ context.Context, course *entity.Course) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	course.ID = uuid.New()
	course.CreatedAt = time.Now()
	clone := *course
	clone.Owner = nil
	r.courses = append(r.courses, &clone)

	return nil
}

func (r *memoryCourses) Update(_ context.Context, course *entity.Course) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, c := range r.courses {
		if c.ID == course.ID {
			c.Apply(entity.CourseContent{
				Title:           course.Title,
				Description:     course.Description,
				EstimatedTime:   course.EstimatedTime,
				MaterialsNeeded: course.MaterialsNeeded,
			})

			return nil
		}
	}

	return repository.ErrCourseNotFound
}

func (r *memoryCourses) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := slices.IndexFunc(r.courses, func(c *entity.Course) bool { return c.ID == id })
	if idx < 0 {
		return repository.ErrCourseNotFound
	}
	r.courses = slices.Delete(r.courses, idx, idx+1)

	return nil
}
