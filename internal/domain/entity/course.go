package entity

import (
	"time"

	"github.com/google/uuid"
)

// Course is a catalog record owned by exactly one user.
// OwnerID is assigned at creation and never changes.
type Course struct {
	ID              uuid.UUID
	Title           string
	Description     string
	EstimatedTime   string
	MaterialsNeeded string
	OwnerID         uuid.UUID
	Owner           *User // populated on reads
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// CourseContent is the mutable part of a course.
type CourseContent struct {
	Title           string
	Description     string
	EstimatedTime   string
	MaterialsNeeded string
}

// Apply overwrites the mutable fields. The owner is left untouched.
func (c *Course) Apply(content CourseContent) {
	c.Title = content.Title
	c.Description = content.Description
	c.EstimatedTime = content.EstimatedTime
	c.MaterialsNeeded = content.MaterialsNeeded
}
