package responseHandler

import (
	responseService "CitizenVoice/internal/api/response/service"
	"CitizenVoice/internal/entity"
	"CitizenVoice/internal/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

const photoField = "photo"

type ResponseHandler struct {
	log             *logrus.Logger
	validator       *validator.Validate
	middleware      middleware.Middleware
	responseService responseService.IResponseService
}

func New(
	log *logrus.Logger,
	validate *validator.Validate,
	middleware middleware.Middleware,
	rs responseService.IResponseService,
) *ResponseHandler {
	return &ResponseHandler{
		log:             log,
		validator:       validate,
		middleware:      middleware,
		responseService: rs,
	}
}

func (h *ResponseHandler) Start(srv fiber.Router) {
	res := srv.Group("/responses", h.middleware.NewTokenMiddleware)

	res.Post("", h.middleware.RequireRoles(entity.RoleOrganization), h.CreateResponse)
	res.Get("", h.middleware.RequireRoles(entity.RoleAdmin), h.GetResponses)
	res.Get("/:id", h.GetResponseByID)
	res.Delete("/:id", h.middleware.RequireRoles(entity.RoleAdmin, entity.RoleOrganization), h.DeleteResponse)
}
