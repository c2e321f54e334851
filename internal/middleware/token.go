package middleware

import (
	"CitizenVoice/internal/entity"
	jwtPkg "CitizenVoice/pkg/jwt"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus"
)

func (m *middleware) unauthorized(ctx *fiber.Ctx, reason string) error {
	m.log.WithFields(logrus.Fields{
		"request_id": m.GetRequestID(ctx),
		"path":       ctx.Path(),
		"client_ip":  ctx.IP(),
		"error":      reason,
	}).Warn("Authentication failed")

	return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
		"error": "Unauthorized, access token invalid or expired",
	})
}

func (m *middleware) NewTokenMiddleware(ctx *fiber.Ctx) error {
	userToken, err := jwtPkg.VerifyTokenHeader(ctx, jwtPkg.AccessTokenSecret)
	if err != nil {
		return m.unauthorized(ctx, err.Error())
	}

	claims, ok := userToken.Claims.(jwt.MapClaims)
	if !ok {
		return m.unauthorized(ctx, "invalid token claims")
	}

	user, err := jwtPkg.ClaimsToUser(claims)
	if err != nil {
		return m.unauthorized(ctx, err.Error())
	}

	ctx.Locals(jwtPkg.UserLocalsKey, user)
	ctx.Locals("user_id", user.ID)

	m.log.WithFields(logrus.Fields{
		"request_id": m.GetRequestID(ctx),
		"user_id":    user.ID,
	}).Debug("Authentication successful")

	return ctx.Next()
}

// RequireRoles must run after NewTokenMiddleware. The caller passes when it
// holds any of roles.
func (m *middleware) RequireRoles(roles ...entity.Role) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		user, err := jwtPkg.GetUserLoginData(ctx)
		if err != nil {
			return m.unauthorized(ctx, "missing login data")
		}

		if !user.HasRole(roles...) {
			m.log.WithFields(logrus.Fields{
				"request_id": m.GetRequestID(ctx),
				"user_id":    user.ID,
				"required":   roles,
				"held":       user.Roles,
			}).Warn("Role check failed")

			return ctx.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"error": "Forbidden, insufficient role",
			})
		}

		return ctx.Next()
	}
}
