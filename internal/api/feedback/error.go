package feedback

import (
	"CitizenVoice/pkg/response"
	"net/http"
)

var (
	ErrFeedbackNotFound = response.NewError(http.StatusNotFound, "feedback not found")
	ErrNotFeedbackOwner = response.NewError(http.StatusForbidden, "feedback does not belong to user")
	ErrCreateFeedback   = response.NewError(http.StatusInternalServerError, "failed to create feedback")
	ErrUpdateFeedback   = response.NewError(http.StatusInternalServerError, "failed to update feedback")
	ErrDeleteFeedback   = response.NewError(http.StatusInternalServerError, "failed to delete feedback")
	ErrRouting          = response.NewError(http.StatusInternalServerError, "failed to load organizations for routing")
	ErrInvalidFileType  = response.NewError(http.StatusBadRequest, "invalid file type")
	ErrFileTooLarge     = response.NewError(http.StatusBadRequest, "file too large")
	ErrTooManyImages    = response.NewError(http.StatusBadRequest, "too many gallery images")
	ErrFailedToUpload   = response.NewError(http.StatusInternalServerError, "failed to upload file")
)
