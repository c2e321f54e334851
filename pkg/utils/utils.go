package utils

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"math/big"
	"mime/multipart"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"
)

var (
	ErrNoFile        = errors.New("no file uploaded")
	ErrFileTooLarge  = errors.New("file size exceeds limit")
	ErrNotAnImage    = errors.New("uploaded file is not an image")
	ErrTooManyImages = errors.New("too many images uploaded")
)

const (
	TicketLength   = 12
	MaxGallerySize = 5
)

type IUtils interface {
	NewULIDFromTimestamp(t time.Time) (string, error)
	ValidateImageFile(file *multipart.FileHeader) error
	ValidateGallery(files []*multipart.FileHeader) error
	GenerateTicket() (string, error)
	GenerateOTP() (string, error)
}

type utils struct {
	maxFileSize int64
}

func New() IUtils {
	return &utils{
		maxFileSize: 5 * 1024 * 1024,
	}
}

func (u *utils) NewULIDFromTimestamp(t time.Time) (string, error) {
	ms := ulid.Timestamp(t)
	entropy := ulid.Monotonic(rand.Reader, 0)

	id, err := ulid.New(ms, entropy)
	if err != nil {
		return "", err
	}

	return id.String(), nil
}

func (u *utils) ValidateImageFile(file *multipart.FileHeader) error {
	if file == nil {
		return ErrNoFile
	}

	if file.Size > u.maxFileSize {
		return ErrFileTooLarge
	}

	contentType := file.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "image/") {
		return ErrNotAnImage
	}

	return nil
}

func (u *utils) ValidateGallery(files []*multipart.FileHeader) error {
	if len(files) > MaxGallerySize {
		return ErrTooManyImages
	}
	for _, f := range files {
		if err := u.ValidateImageFile(f); err != nil {
			return err
		}
	}
	return nil
}

// GenerateTicket returns a public reference like "K3B7Q0X2M9C4": letters on
// even positions, digits on odd ones.
func (u *utils) GenerateTicket() (string, error) {
	var sb strings.Builder
	sb.Grow(TicketLength)

	for i := 0; i < TicketLength; i++ {
		if i%2 == 0 {
			n, err := rand.Int(rand.Reader, big.NewInt(26))
			if err != nil {
				return "", err
			}
			sb.WriteByte(byte('A' + n.Int64()))
			continue
		}

		n, err := rand.Int(rand.Reader, big.NewInt(10))
		if err != nil {
			return "", err
		}
		sb.WriteByte(byte('0' + n.Int64()))
	}

	return sb.String(), nil
}

// GenerateOTP returns six uppercase hex characters.
func (u *utils) GenerateOTP() (string, error) {
	buf := make([]byte, 3)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return strings.ToUpper(hex.EncodeToString(buf)), nil
}
