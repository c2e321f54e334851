package feedbackHandler

import (
	feedbackService "CitizenVoice/internal/api/feedback/service"
	"CitizenVoice/internal/entity"
	"CitizenVoice/internal/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

const galleryField = "gallery_images"

type FeedbackHandler struct {
	log             *logrus.Logger
	validator       *validator.Validate
	middleware      middleware.Middleware
	feedbackService feedbackService.IFeedbackService
}

func New(
	log *logrus.Logger,
	validate *validator.Validate,
	middleware middleware.Middleware,
	fs feedbackService.IFeedbackService,
) *FeedbackHandler {
	return &FeedbackHandler{
		log:             log,
		validator:       validate,
		middleware:      middleware,
		feedbackService: fs,
	}
}

func (h *FeedbackHandler) Start(srv fiber.Router) {
	feedbacks := srv.Group("/feedbacks", h.middleware.NewTokenMiddleware)

	feedbacks.Post("", h.middleware.RequireRoles(entity.RoleCitizen), h.CreateFeedback)
	feedbacks.Post("/match", h.Match)

	feedbacks.Get("", h.middleware.RequireRoles(entity.RoleAdmin), h.GetFeedbacks)
	feedbacks.Get("/me", h.middleware.RequireRoles(entity.RoleCitizen), h.GetMyFeedbacks)
	feedbacks.Get("/organization", h.middleware.RequireRoles(entity.RoleOrganization), h.GetOrganizationFeedbacks)
	feedbacks.Get("/:id", h.GetFeedbackByID)

	feedbacks.Put("/:id", h.UpdateFeedback)
	feedbacks.Patch("/:id/cancel", h.CancelFeedback)
	feedbacks.Delete("/:id", h.DeleteFeedback)
}
