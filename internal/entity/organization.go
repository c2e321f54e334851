package entity

import (
	"CitizenVoice/pkg/matching"
	"time"
)

type Organization struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Name      string    `json:"name"`
	Category  string    `json:"category"`
	Address   string    `json:"address"`
	Tags      []string  `json:"tags"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// MatchCandidate projects the organization onto the routing engine input.
func (o Organization) MatchCandidate() matching.Candidate {
	return matching.Candidate{
		ID:       o.ID,
		Category: o.Category,
		Tags:     o.Tags,
	}
}
