package authHandler

import (
	authService "CitizenVoice/internal/api/auth/service"
	"CitizenVoice/internal/entity"
	"CitizenVoice/internal/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type AuthHandler struct {
	log         *logrus.Logger
	validator   *validator.Validate
	middleware  middleware.Middleware
	authService authService.AuthService
}

func New(
	log *logrus.Logger,
	validate *validator.Validate,
	middleware middleware.Middleware,
	as authService.AuthService,
) *AuthHandler {
	return &AuthHandler{
		log:         log,
		validator:   validate,
		middleware:  middleware,
		authService: as,
	}
}

func (h *AuthHandler) Start(srv fiber.Router) {
	authGroup := srv.Group("/auth")

	authGroup.Post("/register", h.Register)
	authGroup.Post("/login", h.Login)
	authGroup.Get("/me", h.middleware.NewTokenMiddleware, h.Me)
	authGroup.Post("/password/forgot", h.ForgotPassword)
	authGroup.Post("/password/reset", h.ResetPassword)

	users := srv.Group("/users", h.middleware.NewTokenMiddleware)

	// any signed-in user
	users.Put("/me/photo", h.UpdatePhoto)

	admin := h.middleware.RequireRoles(entity.RoleAdmin)
	users.Get("", admin, h.GetUsers)
	users.Post("", admin, h.CreateUser)
	users.Get("/:id", admin, h.GetUserByID)
	users.Put("/:id", admin, h.UpdateUser)
	users.Delete("/:id", admin, h.DeleteUser)
}
