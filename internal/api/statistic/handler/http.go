package statisticHandler

import (
	statisticService "CitizenVoice/internal/api/statistic/service"
	"CitizenVoice/internal/entity"
	"CitizenVoice/internal/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type StatisticHandler struct {
	log              *logrus.Logger
	validator        *validator.Validate
	middleware       middleware.Middleware
	statisticService statisticService.IStatisticService
}

func New(
	log *logrus.Logger,
	validate *validator.Validate,
	middleware middleware.Middleware,
	ss statisticService.IStatisticService,
) *StatisticHandler {
	return &StatisticHandler{
		log:              log,
		validator:        validate,
		middleware:       middleware,
		statisticService: ss,
	}
}

func (h *StatisticHandler) Start(srv fiber.Router) {
	stats := srv.Group("/statistics", h.middleware.NewTokenMiddleware)

	stats.Get("/admin", h.middleware.RequireRoles(entity.RoleAdmin), h.GetAdminStatistics)
	stats.Get("/citizen", h.middleware.RequireRoles(entity.RoleCitizen), h.GetCitizenStatistics)
	stats.Get("/organization", h.middleware.RequireRoles(entity.RoleOrganization), h.GetOrganizationStatistics)
}
