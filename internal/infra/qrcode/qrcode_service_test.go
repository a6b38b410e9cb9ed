package qrcode

import (
	"encoding/json"
	"testing"

	"catalog/config"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assertPNG(t *testing.T, data []byte) {
	t.Helper()
	require.GreaterOrEqual(t, len(data), 4)
	assert.Equal(t, []byte{0x89, 0x50, 0x4E, 0x47}, data[:4])
}

func TestRecoveryLevel(t *testing.T) {
	for _, level := range []string{"L", "m", "Q", "H", "invalid", ""} {
		t.Run(level, func(t *testing.T) {
			svc := NewQRCodeService(128, level, "")
			png, err := svc.GenerateCourseQR(uuid.New())
			require.NoError(t, err)
			assertPNG(t, png)
		})
	}
}

func TestNew_FromConfig(t *testing.T) {
	svc := New(&config.Config{QRCode: &config.QRCodeConfig{Size: 128, ErrorCorrectionLevel: "H", BaseURL: "https://catalog.example.com/"}})

	impl, ok := svc.(*qrcodeService)
	require.True(t, ok)
	assert.Equal(t, 128, impl.size)
	assert.Equal(t, "https://catalog.example.com", impl.baseURL)

	assert.NotNil(t, New(&config.Config{}))
}

func TestQRCodeService_JSONRoundTrip(t *testing.T) {
	svc := NewQRCodeService(256, "M", "")
	courseID := uuid.New()

	png, err := svc.GenerateCourseQR(courseID)
	require.NoError(t, err)
	assertPNG(t, png)

	content, err := svc.(*qrcodeService).content(courseID)
	require.NoError(t, err)

	parsed, err := svc.ParseCourseQR(content)
	require.NoError(t, err)
	assert.Equal(t, courseID, parsed)
}

func TestQRCodeService_URLRoundTrip(t *testing.T) {
	svc := NewQRCodeService(256, "M", "https://catalog.example.com")
	courseID := uuid.New()

	content, err := svc.(*qrcodeService).content(courseID)
	require.NoError(t, err)
	assert.Equal(t, "https://catalog.example.com/courses/"+courseID.String(), content)

	parsed, err := svc.ParseCourseQR(content)
	require.NoError(t, err)
	assert.Equal(t, courseID, parsed)
}

func TestQRCodeService_ParseCourseQR_Invalid(t *testing.T) {
	svc := NewQRCodeService(256, "M", "")

	wrongType, _ := json.Marshal(CourseCode{CourseID: uuid.NewString(), Type: "user"})
	badID, _ := json.Marshal(CourseCode{CourseID: "not-a-uuid", Type: courseCodeType})

	tests := []struct {
		name string
		data string
	}{
		{"malformed json", `{"course_id":`},
		{"wrong type", string(wrongType)},
		{"bad id", string(badID)},
		{"url without courses segment", "https://catalog.example.com/users/" + uuid.NewString()},
		{"url with bad id", "https://catalog.example.com/courses/abc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.ParseCourseQR(tt.data)
			assert.Error(t, err)
		})
	}
}
