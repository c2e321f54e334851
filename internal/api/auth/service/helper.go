package authService

import (
	"CitizenVoice/internal/api/auth"
	authRepository "CitizenVoice/internal/api/auth/repository"
	"CitizenVoice/internal/entity"
	"CitizenVoice/pkg/bcrypt"
	"CitizenVoice/pkg/utils"
	"time"

	"golang.org/x/net/context"
)

// NewUser hashes the password and builds a user holding a single role.
// It is shared with the organization service, which creates logins too.
func NewUser(req auth.RegisterRequest, role entity.Role, b bcrypt.IBcrypt, u utils.IUtils) (entity.User, error) {
	hashed, err := b.HashPassword(req.Password)
	if err != nil {
		return entity.User{}, err
	}

	now := time.Now()
	id, err := u.NewULIDFromTimestamp(now)
	if err != nil {
		return entity.User{}, err
	}

	return entity.User{
		ID:          id,
		Email:       req.Email,
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Password:    hashed,
		PhoneNumber: req.PhoneNumber,
		Roles:       []entity.Role{role},
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}

// PersistUser writes the user row and its role rows through users.
func PersistUser(c context.Context, users authRepository.Users, u utils.IUtils, user entity.User) error {
	if err := users.CreateUser(c, user); err != nil {
		return err
	}

	for _, role := range user.Roles {
		roleID, err := u.NewULIDFromTimestamp(time.Now())
		if err != nil {
			return err
		}
		if err := users.AssignRole(c, roleID, user.ID, role); err != nil {
			return err
		}
	}

	return nil
}

func GetUserDifferenceData(dbUser entity.User, req auth.UpdateUserRequest) entity.User {
	result := dbUser

	if req.FirstName != "" && req.FirstName != dbUser.FirstName {
		result.FirstName = req.FirstName
	}

	if req.LastName != "" && req.LastName != dbUser.LastName {
		result.LastName = req.LastName
	}

	if req.Email != "" && req.Email != dbUser.Email {
		result.Email = req.Email
	}

	if req.Role != "" {
		result.Roles = []entity.Role{entity.Role(req.Role)}
	}

	result.UpdatedAt = time.Now()

	return result
}

func MakeUserResponse(user entity.User) auth.UserResponse {
	roles := make([]string, 0, len(user.Roles))
	for _, r := range user.Roles {
		roles = append(roles, string(r))
	}

	return auth.UserResponse{
		ID:          user.ID,
		Email:       user.Email,
		FirstName:   user.FirstName,
		LastName:    user.LastName,
		PhoneNumber: user.PhoneNumber,
		Photo:       user.Photo,
		Roles:       roles,
		CreatedAt:   user.CreatedAt,
	}
}
