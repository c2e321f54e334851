package responses

import "time"

type CreateResponseRequest struct {
	FeedbackID  string `json:"feedback_id" form:"feedback_id" validate:"required"`
	Subject     string `json:"subject" form:"subject" validate:"required,min=3,max=255"`
	Description string `json:"description" form:"description" validate:"required,min=3,max=5000"`
}

type ResponseResponse struct {
	ID             string    `json:"id"`
	Subject        string    `json:"subject"`
	FeedbackID     string    `json:"feedback_id"`
	OrganizationID string    `json:"organization_id"`
	Description    string    `json:"description"`
	Photo          string    `json:"photo,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}
