package auth

import "time"

type RegisterRequest struct {
	Email       string `json:"email" form:"email" validate:"required,email"`
	Password    string `json:"password" form:"password" validate:"required,min=8,max=64"`
	FirstName   string `json:"first_name" form:"first_name" validate:"required,min=2,max=100"`
	LastName    string `json:"last_name" form:"last_name" validate:"required,min=2,max=100"`
	PhoneNumber string `json:"phone_number" form:"phone_number" validate:"omitempty,min=10,max=15"`
}

type CreateUserRequest struct {
	RegisterRequest
	Role string `json:"role" form:"role" validate:"required,oneof=ADMIN ORGANIZATION CITIZEN"`
}

type UpdateUserRequest struct {
	FirstName string `json:"first_name" validate:"omitempty,min=2,max=100"`
	LastName  string `json:"last_name" validate:"omitempty,min=2,max=100"`
	Email     string `json:"email" validate:"omitempty,email"`
	Role      string `json:"role" validate:"omitempty,oneof=ADMIN ORGANIZATION CITIZEN"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type ForgotPasswordRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type ResetPasswordRequest struct {
	Email    string `json:"email" validate:"required,email"`
	OTP      string `json:"otp" validate:"required,len=6"`
	Password string `json:"password" validate:"required,min=8,max=64"`
}

type UserResponse struct {
	ID          string    `json:"id"`
	Email       string    `json:"email"`
	FirstName   string    `json:"first_name"`
	LastName    string    `json:"last_name"`
	PhoneNumber string    `json:"phone_number,omitempty"`
	Photo       string    `json:"photo,omitempty"`
	Roles       []string  `json:"roles"`
	CreatedAt   time.Time `json:"created_at"`
}

type LoginResponse struct {
	AccessToken      string       `json:"access_token"`
	ExpiresInMinutes float64      `json:"expires_in_minutes"`
	User             UserResponse `json:"user"`
}

type PhotoResponse struct {
	ID    string `json:"id"`
	Photo string `json:"photo"`
}
