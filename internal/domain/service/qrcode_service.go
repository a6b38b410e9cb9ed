package service

import (
	"github.com/google/uuid"
)

// QRCodeService renders share codes for courses.
type QRCodeService interface {
	// GenerateCourseQR returns a PNG QR code pointing at the course.
	GenerateCourseQR(courseID uuid.UUID) ([]byte, error)

	// ParseCourseQR extracts the course ID from decoded QR content.
	ParseCourseQR(qrData string) (uuid.UUID, error)
}
