package responseService

import (
	responses "CitizenVoice/internal/api/response"
	"CitizenVoice/internal/entity"
)

func MakeResponseResponse(res entity.Response) responses.ResponseResponse {
	return responses.ResponseResponse{
		ID:             res.ID,
		Subject:        res.Subject,
		FeedbackID:     res.FeedbackID,
		OrganizationID: res.OrganizationID,
		Description:    res.Description,
		Photo:          res.Photo,
		CreatedAt:      res.CreatedAt,
		UpdatedAt:      res.UpdatedAt,
	}
}
