package handler

import (
	"strings"

	"catalog/internal/domain/entity"
	"catalog/internal/usecase"

	"github.com/google/uuid"
)

// UserResponse is the public view of a user. The password hash is never serialised.
type UserResponse struct {
	ID           uuid.UUID `json:"id"`
	FirstName    string    `json:"firstName"`
	LastName     string    `json:"lastName"`
	EmailAddress string    `json:"emailAddress"`
}

// CourseResponse embeds the owner's public fields.
type CourseResponse struct {
	ID              uuid.UUID     `json:"id"`
	Title           string        `json:"title"`
	Description     string        `json:"description"`
	EstimatedTime   string        `json:"estimatedTime"`
	MaterialsNeeded string        `json:"materialsNeeded"`
	UserID          uuid.UUID     `json:"userId"`
	User            *UserResponse `json:"user,omitempty"`
}

// CourseRequest is the body of POST and PUT /api/courses. Owner fields are not accepted.
type CourseRequest struct {
	Title           string `json:"title" validate:"required" label:"Title"`
	Description     string `json:"description" validate:"required" label:"Description"`
	EstimatedTime   string `json:"estimatedTime"`
	MaterialsNeeded string `json:"materialsNeeded"`
}

// RegisterUserRequest is the body of POST /api/users.
type RegisterUserRequest struct {
	FirstName    string `json:"firstName" validate:"required" label:"First Name"`
	LastName     string `json:"lastName" validate:"required" label:"Last Name"`
	EmailAddress string `json:"emailAddress" validate:"required,email" label:"Email Address"`
	Password     string `json:"password" validate:"required" label:"Password"`
}

// Normalize trims every field so whitespace-only values fail "required".
func (r *CourseRequest) Normalize() {
	r.Title = strings.TrimSpace(r.Title)
	r.Description = strings.TrimSpace(r.Description)
	r.EstimatedTime = strings.TrimSpace(r.EstimatedTime)
	r.MaterialsNeeded = strings.TrimSpace(r.MaterialsNeeded)
}

// Normalize trims the name and email fields. Passwords are kept verbatim
// but a whitespace-only password counts as missing.
func (r *RegisterUserRequest) Normalize() {
	r.FirstName = strings.TrimSpace(r.FirstName)
	r.LastName = strings.TrimSpace(r.LastName)
	r.EmailAddress = strings.TrimSpace(r.EmailAddress)
	if strings.TrimSpace(r.Password) == "" {
		r.Password = ""
	}
}

func (r *CourseRequest) toInput() *usecase.CourseInput {
	return &usecase.CourseInput{
		Title:           r.Title,
		Description:     r.Description,
		EstimatedTime:   r.EstimatedTime,
		MaterialsNeeded: r.MaterialsNeeded,
	}
}

func toUserResponse(user *entity.User) *UserResponse {
	if user == nil {
		return nil
	}

	return &UserResponse{
		ID:           user.ID,
		FirstName:    user.FirstName,
		LastName:     user.LastName,
		EmailAddress: user.EmailAddress,
	}
}

func toCourseResponse(course *entity.Course) *CourseResponse {
	return &CourseResponse{
		ID:              course.ID,
		Title:           course.Title,
		Description:     course.Description,
		EstimatedTime:   course.EstimatedTime,
		MaterialsNeeded: course.MaterialsNeeded,
		UserID:          course.OwnerID,
		User:            toUserResponse(course.Owner),
	}
}
