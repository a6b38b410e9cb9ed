package api

import (
	"github.com/google/uuid"
)

// Credentials is the Basic auth pair attached to authenticated requests.
type Credentials struct {
	EmailAddress string
	Password     string
}

// User is the public profile returned by the server.
type User struct {
	ID           uuid.UUID `json:"id"`
	FirstName    string    `json:"firstName"`
	LastName     string    `json:"lastName"`
	EmailAddress string    `json:"emailAddress"`
}

// FullName joins first and last name.
func (u User) FullName() string {
	return u.FirstName + " " + u.LastName
}

// Course as served by GET /courses and GET /courses/:id.
type Course struct {
	ID              uuid.UUID `json:"id"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	EstimatedTime   string    `json:"estimatedTime"`
	MaterialsNeeded string    `json:"materialsNeeded"`
	UserID          uuid.UUID `json:"userId"`
	User            *User     `json:"user,omitempty"`
}

// CourseInput is the body of create and update.
type CourseInput struct {
	Title           string `json:"title"`
	Description     string `json:"description"`
	EstimatedTime   string `json:"estimatedTime"`
	MaterialsNeeded string `json:"materialsNeeded"`
}

// NewUser is the body of registration.
type NewUser struct {
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	EmailAddress string `json:"emailAddress"`
	Password     string `json:"password"`
}

type errorBody struct {
	Message string   `json:"message"`
	Errors  []string `json:"errors"`
}
