package entity

import "time"

type Role string

const (
	RoleAdmin        Role = "ADMIN"
	RoleOrganization Role = "ORGANIZATION"
	RoleCitizen      Role = "CITIZEN"
)

func IsValidRole(role string) bool {
	switch Role(role) {
	case RoleAdmin, RoleOrganization, RoleCitizen:
		return true
	default:
		return false
	}
}

type User struct {
	ID          string    `db:"id"`
	Email       string    `db:"email"`
	FirstName   string    `db:"first_name"`
	LastName    string    `db:"last_name"`
	Password    string    `db:"password"`
	PhoneNumber string    `db:"phone_number"`
	Photo       string    `db:"photo"`
	Roles       []Role    `db:"-"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}

func (u User) FullName() string {
	switch {
	case u.FirstName == "":
		return u.LastName
	case u.LastName == "":
		return u.FirstName
	default:
		return u.FirstName + " " + u.LastName
	}
}

func (u User) LoginData() UserLoginData {
	return UserLoginData{
		ID:    u.ID,
		Email: u.Email,
		Name:  u.FullName(),
		Roles: u.Roles,
	}
}

type UserLoginData struct {
	ID    string
	Email string
	Name  string
	Roles []Role
}

func (u UserLoginData) HasRole(roles ...Role) bool {
	for _, have := range u.Roles {
		for _, want := range roles {
			if have == want {
				return true
			}
		}
	}
	return false
}
