package organization

import (
	"CitizenVoice/pkg/response"
	"net/http"
)

var (
	ErrOrganizationNotFound = response.NewError(http.StatusNotFound, "organization not found")
	ErrCreateOrganization   = response.NewError(http.StatusInternalServerError, "failed to create organization")
	ErrUpdateOrganization   = response.NewError(http.StatusInternalServerError, "failed to update organization")
	ErrDeleteOrganization   = response.NewError(http.StatusInternalServerError, "failed to delete organization")
)
