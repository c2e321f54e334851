package feedbackService

import (
	"CitizenVoice/internal/api/feedback"
	"CitizenVoice/internal/entity"
	"time"
)

func GetFeedbackDifferenceData(current entity.Feedback, req feedback.UpdateFeedbackRequest) entity.Feedback {
	result := current

	if req.Category != "" {
		result.Category = req.Category
	}

	if req.Description != "" {
		result.Description = req.Description
	}

	if req.Location != "" {
		result.Location = req.Location
	}

	if req.PhoneNumber != "" {
		result.PhoneNumber = req.PhoneNumber
	}

	result.UpdatedAt = time.Now()

	return result
}

func MakeFeedbackResponse(fb entity.Feedback, responses []entity.Response) feedback.FeedbackResponse {
	items := make([]feedback.ResponseItem, 0, len(responses))
	for _, r := range responses {
		items = append(items, feedback.ResponseItem{
			ID:             r.ID,
			Subject:        r.Subject,
			OrganizationID: r.OrganizationID,
			Description:    r.Description,
			Photo:          r.Photo,
			CreatedAt:      r.CreatedAt,
		})
	}

	return feedback.FeedbackResponse{
		ID:              fb.ID,
		UserID:          fb.UserID,
		Category:        fb.Category,
		Description:     fb.Description,
		Location:        fb.Location,
		Ticket:          fb.Ticket,
		GalleryImages:   fb.GalleryImages,
		PhoneNumber:     fb.PhoneNumber,
		OrganizationIDs: fb.OrganizationIDs,
		FeedbackStatus:  string(fb.FeedbackStatus),
		ResponseStatus:  string(fb.ResponseStatus),
		Responses:       items,
		CreatedAt:       fb.CreatedAt,
		UpdatedAt:       fb.UpdatedAt,
	}
}
