// Package qrcode renders course share codes.
package qrcode

import (
	"encoding/json"
	"net/url"
	"path"
	"strings"

	"catalog/config"
	"catalog/internal/domain/service"
	"catalog/internal/errors"

	"github.com/google/uuid"
	"github.com/skip2/go-qrcode"
)

const courseCodeType = "course"

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
	baseURL              string
}

// CourseCode is the payload encoded when no public base URL is configured.
type CourseCode struct {
	CourseID string `json:"course_id"`
	Type     string `json:"type"`
}

// New builds the service from the qrcode section of the configuration.
func New(cfg *config.Config) service.QRCodeService {
	qc := cfg.QRCode
	if qc == nil {
		qc = &config.QRCodeConfig{}
	}

	return NewQRCodeService(qc.Size, qc.ErrorCorrectionLevel, qc.BaseURL)
}

// NewQRCodeService creates a QR code service. With a baseURL the code holds
// "<baseURL>/courses/<id>", otherwise a JSON CourseCode.
func NewQRCodeService(size int, errorCorrectionLevel, baseURL string) service.QRCodeService {
	if size <= 0 {
		size = 256
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: recoveryLevel(errorCorrectionLevel),
		baseURL:              strings.TrimRight(baseURL, "/"),
	}
}

func recoveryLevel(level string) qrcode.RecoveryLevel {
	switch strings.ToUpper(level) {
	case "L":
		return qrcode.Low
	case "Q":
		return qrcode.High
	case "H":
		return qrcode.Highest
	default:
		return qrcode.Medium
	}
}

// GenerateCourseQR returns a PNG QR code for the course.
func (s *qrcodeService) GenerateCourseQR(courseID uuid.UUID) ([]byte, error) {
	content, err := s.content(courseID)
	if err != nil {
		return nil, err
	}

	code, err := qrcode.New(content, s.errorCorrectionLevel)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create QR code")
	}

	png, err := code.PNG(s.size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate PNG")
	}

	return png, nil
}

func (s *qrcodeService) content(courseID uuid.UUID) (string, error) {
	if s.baseURL != "" {
		return s.baseURL + "/courses/" + courseID.String(), nil
	}

	data, err := json.Marshal(CourseCode{CourseID: courseID.String(), Type: courseCodeType})
	if err != nil {
		return "", errors.Wrap(err, "failed to marshal QR code data")
	}

	return string(data), nil
}

// ParseCourseQR accepts either a course URL or a JSON CourseCode.
func (s *qrcodeService) ParseCourseQR(qrData string) (uuid.UUID, error) {
	qrData = strings.TrimSpace(qrData)
	if strings.HasPrefix(qrData, "{") {
		var data CourseCode
		if err := json.Unmarshal([]byte(qrData), &data); err != nil {
			return uuid.Nil, errors.Wrap(err, "failed to unmarshal QR code data")
		}
		if data.Type != courseCodeType {
			return uuid.Nil, errors.Errorf("invalid QR code type: %s", data.Type)
		}

		return parseID(data.CourseID)
	}

	u, err := url.Parse(qrData)
	if err != nil {
		return uuid.Nil, errors.Wrap(err, "failed to parse QR code URL")
	}
	if path.Base(path.Dir(u.Path)) != "courses" {
		return uuid.Nil, errors.Errorf("QR code does not link to a course: %s", qrData)
	}

	return parseID(path.Base(u.Path))
}

func parseID(raw string) (uuid.UUID, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, errors.Wrap(err, "failed to parse course ID")
	}

	return id, nil
}
