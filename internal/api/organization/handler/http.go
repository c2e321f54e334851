package organizationHandler

import (
	organizationService "CitizenVoice/internal/api/organization/service"
	"CitizenVoice/internal/entity"
	"CitizenVoice/internal/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type OrganizationHandler struct {
	log                 *logrus.Logger
	validator           *validator.Validate
	middleware          middleware.Middleware
	organizationService organizationService.IOrganizationService
}

func New(
	log *logrus.Logger,
	validate *validator.Validate,
	middleware middleware.Middleware,
	os organizationService.IOrganizationService,
) *OrganizationHandler {
	return &OrganizationHandler{
		log:                 log,
		validator:           validate,
		middleware:          middleware,
		organizationService: os,
	}
}

func (h *OrganizationHandler) Start(srv fiber.Router) {
	organizations := srv.Group("/organizations", h.middleware.NewTokenMiddleware)

	organizations.Post("", h.middleware.RequireRoles(entity.RoleAdmin), h.CreateOrganization)
	organizations.Put("/me", h.middleware.RequireRoles(entity.RoleOrganization), h.UpdateOwnOrganization)
	organizations.Get("", h.GetOrganizations)
	organizations.Get("/:id", h.GetOrganizationByID)
	organizations.Delete("/:id", h.middleware.RequireRoles(entity.RoleAdmin), h.DeleteOrganization)
}
