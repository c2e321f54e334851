package jwtPkg

import (
	"CitizenVoice/internal/entity"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus"
)

const (
	AccessTokenSecret = "JWT_ACCESS_TOKEN_SECRET"
	UserLocalsKey     = "user"
)

var (
	ErrEmptyHeader   = errors.New("empty Authorization header")
	ErrInvalidFormat = errors.New("invalid Authorization format")
	ErrNoSecret      = errors.New("JWT secret not configured")
	ErrInvalidClaims = errors.New("token claims are missing required fields")
)

// Sign issues an HS256 access token carrying the user's identity and roles.
func Sign(user entity.UserLoginData, expiresIn time.Duration) (string, int64, error) {
	expiredAt := time.Now().Add(expiresIn).Unix()

	secret := os.Getenv(AccessTokenSecret)
	if secret == "" {
		return "", 0, ErrNoSecret
	}

	roles := make([]string, 0, len(user.Roles))
	for _, r := range user.Roles {
		roles = append(roles, string(r))
	}

	claims := jwt.MapClaims{
		"exp":   expiredAt,
		"id":    user.ID,
		"email": user.Email,
		"name":  user.Name,
		"roles": roles,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	accessToken, err := token.SignedString([]byte(secret))
	if err != nil {
		logrus.WithError(err).Error("Failed to sign token")
		return "", 0, err
	}

	return accessToken, expiredAt, nil
}

func VerifyTokenHeader(c *fiber.Ctx, secretEnvKey string) (*jwt.Token, error) {
	header := c.Get("Authorization")
	if header == "" {
		return nil, ErrEmptyHeader
	}

	accessToken, found := strings.CutPrefix(header, "Bearer ")
	accessToken = strings.TrimSpace(accessToken)
	if !found || accessToken == "" {
		return nil, ErrInvalidFormat
	}

	secret := os.Getenv(secretEnvKey)
	if secret == "" {
		return nil, ErrNoSecret
	}

	return jwt.Parse(accessToken, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(secret), nil
	})
}

// ClaimsToUser rebuilds the login data stored in a verified token.
func ClaimsToUser(claims jwt.MapClaims) (entity.UserLoginData, error) {
	id, _ := claims["id"].(string)
	email, _ := claims["email"].(string)
	name, _ := claims["name"].(string)
	if id == "" || email == "" {
		return entity.UserLoginData{}, ErrInvalidClaims
	}

	user := entity.UserLoginData{ID: id, Email: email, Name: name}

	rawRoles, _ := claims["roles"].([]interface{})
	for _, r := range rawRoles {
		if s, ok := r.(string); ok {
			user.Roles = append(user.Roles, entity.Role(s))
		}
	}

	return user, nil
}

func GetUserLoginData(c *fiber.Ctx) (entity.UserLoginData, error) {
	user, ok := c.Locals(UserLocalsKey).(entity.UserLoginData)
	if !ok {
		return entity.UserLoginData{}, fiber.ErrUnauthorized
	}

	return user, nil
}
