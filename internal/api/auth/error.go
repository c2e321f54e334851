package auth

import (
	"CitizenVoice/pkg/response"
	"net/http"
)

var (
	ErrEmailAlreadyExists     = response.NewError(http.StatusConflict, "user already exists")
	ErrInvalidEmailOrPassword = response.NewError(http.StatusBadRequest, "email or password is wrong")
	ErrUserNotFound           = response.NewError(http.StatusNotFound, "user not found")
	ErrInvalidOTP             = response.NewError(http.StatusBadRequest, "invalid or expired otp")
	ErrInvalidRole            = response.NewError(http.StatusBadRequest, "invalid role")
	ErrInvalidFileType        = response.NewError(http.StatusBadRequest, "invalid file type")
	ErrFileTooLarge           = response.NewError(http.StatusBadRequest, "file too large")
	ErrFailedToUploadFile     = response.NewError(http.StatusInternalServerError, "failed to upload file")
	ErrCreateUser             = response.NewError(http.StatusInternalServerError, "failed to create user")
	ErrSendEmail              = response.NewError(http.StatusInternalServerError, "failed to send email")
)
