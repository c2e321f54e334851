package responses

import (
	"CitizenVoice/pkg/response"
	"net/http"
)

var (
	ErrResponseNotFound = response.NewError(http.StatusNotFound, "response not found")
	ErrNotRoutedToOrg   = response.NewError(http.StatusForbidden, "feedback is not routed to this organization")
	ErrNotResponseOwner = response.NewError(http.StatusForbidden, "response does not belong to organization")
	ErrFeedbackClosed   = response.NewError(http.StatusConflict, "feedback has been closed")
	ErrCreateResponse   = response.NewError(http.StatusInternalServerError, "failed to create response")
	ErrDeleteResponse   = response.NewError(http.StatusInternalServerError, "failed to delete response")
	ErrInvalidFileType  = response.NewError(http.StatusBadRequest, "invalid file type")
	ErrFileTooLarge     = response.NewError(http.StatusBadRequest, "file too large")
	ErrFailedToUpload   = response.NewError(http.StatusInternalServerError, "failed to upload file")
)
