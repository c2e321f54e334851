package organization

import "time"

type CreateOrganizationRequest struct {
	Email       string   `json:"email" validate:"required,email"`
	Password    string   `json:"password" validate:"required,min=8,max=64"`
	FirstName   string   `json:"first_name" validate:"required,min=2,max=100"`
	LastName    string   `json:"last_name" validate:"required,min=2,max=100"`
	PhoneNumber string   `json:"phone_number" validate:"omitempty,min=10,max=15"`
	Name        string   `json:"name" validate:"required,min=3,max=255"`
	Category    string   `json:"category" validate:"required,max=100"`
	Address     string   `json:"address" validate:"omitempty"`
	Tags        []string `json:"tags" validate:"omitempty,dive,required,max=50"`
}

// UpdateOrganizationRequest leaves a field untouched when it is empty; Tags
// is replaced whenever it is present in the body, so [] clears it.
type UpdateOrganizationRequest struct {
	Name     string    `json:"name" validate:"omitempty,min=3,max=255"`
	Category string    `json:"category" validate:"omitempty,max=100"`
	Address  string    `json:"address" validate:"omitempty"`
	Tags     *[]string `json:"tags" validate:"omitempty,dive,required,max=50"`
}

type OrganizationResponse struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Name      string    `json:"name"`
	Category  string    `json:"category"`
	Address   string    `json:"address"`
	Tags      []string  `json:"tags"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
