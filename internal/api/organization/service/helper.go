package organizationService

import (
	"CitizenVoice/internal/api/organization"
	"CitizenVoice/internal/entity"
	"strings"
	"time"
)

func GetOrganizationDifferenceData(current entity.Organization, req organization.UpdateOrganizationRequest) entity.Organization {
	result := current

	if req.Name != "" {
		result.Name = req.Name
	}

	if req.Category != "" {
		result.Category = req.Category
	}

	if req.Address != "" {
		result.Address = req.Address
	}

	if req.Tags != nil {
		result.Tags = normalizeTags(*req.Tags)
	}

	result.UpdatedAt = time.Now()

	return result
}

// normalizeTags trims and drops blank or repeated tags, keeping order.
func normalizeTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	seen := make(map[string]struct{}, len(tags))
	for _, t := range tags {
		t = strings.TrimSpace(t)
		if t == "" {
			continue
		}
		if _, dup := seen[t]; dup {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	return out
}

func MakeOrganizationResponse(org entity.Organization) organization.OrganizationResponse {
	return organization.OrganizationResponse{
		ID:        org.ID,
		UserID:    org.UserID,
		Name:      org.Name,
		Category:  org.Category,
		Address:   org.Address,
		Tags:      org.Tags,
		CreatedAt: org.CreatedAt,
		UpdatedAt: org.UpdatedAt,
	}
}
