package entity

import "time"

type FeedbackStatus string

const (
	FeedbackUnresolved FeedbackStatus = "UNRESOLVED"
	FeedbackResolved   FeedbackStatus = "RESOLVED"
)

type ResponseStatus string

const (
	ResponsePending  ResponseStatus = "PENDING"
	ResponseAnswered ResponseStatus = "ANSWERED"
	ResponseClosed   ResponseStatus = "CLOSED"
)

type Feedback struct {
	ID              string         `json:"id"`
	UserID          string         `json:"user_id"`
	Category        string         `json:"category"`
	Description     string         `json:"description"`
	Location        string         `json:"location"`
	Ticket          string         `json:"ticket"`
	GalleryImages   []string       `json:"gallery_images"`
	PhoneNumber     string         `json:"phone_number"`
	OrganizationIDs []string       `json:"organization_ids"`
	FeedbackStatus  FeedbackStatus `json:"feedback_status"`
	ResponseStatus  ResponseStatus `json:"response_status"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
}

// IsRoutedTo reports whether organizationID is one of the routing targets.
func (f Feedback) IsRoutedTo(organizationID string) bool {
	for _, id := range f.OrganizationIDs {
		if id == organizationID {
			return true
		}
	}
	return false
}

type Response struct {
	ID             string    `json:"id"`
	Subject        string    `json:"subject"`
	FeedbackID     string    `json:"feedback_id"`
	OrganizationID string    `json:"organization_id"`
	Description    string    `json:"description"`
	Photo          string    `json:"photo"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}
