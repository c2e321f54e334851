package utils

import (
	"mime/multipart"
	"net/textproto"
	"regexp"
	"testing"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateTicket(t *testing.T) {
	u := New()
	pattern := regexp.MustCompile(`^([A-Z][0-9]){6}$`)

	for i := 0; i < 50; i++ {
		ticket, err := u.GenerateTicket()
		require.NoError(t, err)
		assert.Regexp(t, pattern, ticket)
	}
}

func TestGenerateOTP(t *testing.T) {
	otp, err := New().GenerateOTP()

	require.NoError(t, err)
	assert.Regexp(t, `^[0-9A-F]{6}$`, otp)
}

func TestNewULIDFromTimestamp(t *testing.T) {
	now := time.Now()

	id, err := New().NewULIDFromTimestamp(now)
	require.NoError(t, err)

	parsed, err := ulid.Parse(id)
	require.NoError(t, err)
	assert.Equal(t, ulid.Timestamp(now), parsed.Time())
}

func imageHeader(size int64, contentType string) *multipart.FileHeader {
	h := textproto.MIMEHeader{}
	h.Set("Content-Type", contentType)
	return &multipart.FileHeader{Filename: "photo.jpg", Size: size, Header: h}
}

func TestValidateImageFile(t *testing.T) {
	u := New()

	assert.ErrorIs(t, u.ValidateImageFile(nil), ErrNoFile)
	assert.ErrorIs(t, u.ValidateImageFile(imageHeader(6*1024*1024, "image/png")), ErrFileTooLarge)
	assert.ErrorIs(t, u.ValidateImageFile(imageHeader(1024, "application/pdf")), ErrNotAnImage)
	assert.NoError(t, u.ValidateImageFile(imageHeader(1024, "image/jpeg")))
}

func TestValidateGallery(t *testing.T) {
	u := New()

	files := make([]*multipart.FileHeader, 0, MaxGallerySize+1)
	for i := 0; i < MaxGallerySize+1; i++ {
		files = append(files, imageHeader(1024, "image/png"))
	}

	assert.ErrorIs(t, u.ValidateGallery(files), ErrTooManyImages)
	assert.NoError(t, u.ValidateGallery(files[:MaxGallerySize]))
	assert.NoError(t, u.ValidateGallery(nil))
}
