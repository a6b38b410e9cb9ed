package service

import (
	"context"
	"time"
)

// CourseEventType names a course lifecycle transition.
type CourseEventType string

const (
	CourseCreated CourseEventType = "course.created"
	CourseUpdated CourseEventType = "course.updated"
	CourseDeleted CourseEventType = "course.deleted"
)

// CourseEvent is published after a course mutation has been committed.
type CourseEvent struct {
	Type       CourseEventType `json:"type"`
	RequestID  string          `json:"request_id,omitempty"` // For distributed tracing
	CourseID   string          `json:"course_id"`
	OwnerID    string          `json:"owner_id"`
	OccurredAt time.Time       `json:"occurred_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishCourseEvent publishes a course change event
	PublishCourseEvent(ctx context.Context, event *CourseEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
