package feedback

import "time"

type CreateFeedbackRequest struct {
	Category    string `json:"category" form:"category" validate:"required,max=100"`
	Description string `json:"description" form:"description" validate:"required,min=10,max=5000"`
	Location    string `json:"location" form:"location" validate:"required,max=500"`
	PhoneNumber string `json:"phone_number" form:"phone_number" validate:"omitempty,min=10,max=15"`
}

type UpdateFeedbackRequest struct {
	Category    string `json:"category" validate:"omitempty,max=100"`
	Description string `json:"description" validate:"omitempty,min=10,max=5000"`
	Location    string `json:"location" validate:"omitempty,max=500"`
	PhoneNumber string `json:"phone_number" validate:"omitempty,min=10,max=15"`
}

type MatchRequest struct {
	Category    string `json:"category" validate:"required,max=100"`
	Description string `json:"description" validate:"required,max=5000"`
	TopN        int    `json:"top_n" validate:"omitempty,min=1,max=20"`
}

type MatchResult struct {
	OrganizationID string   `json:"organization_id"`
	Name           string   `json:"name"`
	Category       string   `json:"category"`
	Score          float64  `json:"score"`
	Matches        []string `json:"matches"`
}

type MatchResponse struct {
	Tags    []string      `json:"tags"`
	Matches []MatchResult `json:"matches"`
}

type ResponseItem struct {
	ID             string    `json:"id"`
	Subject        string    `json:"subject"`
	OrganizationID string    `json:"organization_id"`
	Description    string    `json:"description"`
	Photo          string    `json:"photo,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

type FeedbackResponse struct {
	ID              string         `json:"id"`
	UserID          string         `json:"user_id"`
	Category        string         `json:"category"`
	Description     string         `json:"description"`
	Location        string         `json:"location"`
	Ticket          string         `json:"ticket"`
	GalleryImages   []string       `json:"gallery_images"`
	PhoneNumber     string         `json:"phone_number,omitempty"`
	OrganizationIDs []string       `json:"organization_ids"`
	FeedbackStatus  string         `json:"feedback_status"`
	ResponseStatus  string         `json:"response_status"`
	Responses       []ResponseItem `json:"responses"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
}
