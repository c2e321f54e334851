package middleware

import (
	"CitizenVoice/internal/entity"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
)

type Middleware interface {
	NewRateLimiter(ctx *fiber.Ctx) error
	NewTokenMiddleware(ctx *fiber.Ctx) error
	NewRequestIDMiddleware() fiber.Handler
	NewLoggingMiddleware() fiber.Handler
	RequireRoles(roles ...entity.Role) fiber.Handler
	GetRequestID(ctx *fiber.Ctx) string
}

type Config struct {
	RequestsPerSecond rate.Limit
	Burst             int
}

func DefaultConfig() Config {
	return Config{RequestsPerSecond: 50, Burst: 100}
}

type middleware struct {
	rateLimitter        *rateLimiter
	requestIDMiddleware fiber.Handler
	log                 *logrus.Logger
}

func New(logger *logrus.Logger) Middleware {
	return NewWithConfig(logger, DefaultConfig())
}

func NewWithConfig(logger *logrus.Logger, cfg Config) Middleware {
	return &middleware{
		rateLimitter:        newRateLimiter(cfg.RequestsPerSecond, cfg.Burst),
		requestIDMiddleware: NewRequestIDMiddleware(),
		log:                 logger,
	}
}

func (m *middleware) GetRequestID(ctx *fiber.Ctx) string {
	requestID, ok := ctx.Locals(RequestIDKey).(string)
	if !ok || requestID == "" {
		return "unknown"
	}
	return requestID
}

func (m *middleware) NewRequestIDMiddleware() fiber.Handler {
	return m.requestIDMiddleware
}
