package feedbackHandler

import (
	"CitizenVoice/internal/api/feedback"
	feedbackService "CitizenVoice/internal/api/feedback/service"
	contextPkg "CitizenVoice/pkg/context"
	"CitizenVoice/pkg/handlerUtil"
	jwtPkg "CitizenVoice/pkg/jwt"
	"CitizenVoice/pkg/log"
	"mime/multipart"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/net/context"
)

func (h *FeedbackHandler) CreateFeedback(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 30*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"path":       ctx.Path(),
	}).Debug("Processing create feedback request")

	userData, err := jwtPkg.GetUserLoginData(ctx)
	if err != nil {
		return errHandler.HandleUnauthorized(ctx, requestID, "Unauthorized")
	}

	var req feedback.CreateFeedbackRequest
	if err := ctx.BodyParser(&req); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	if err := h.validator.Struct(req); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	// gallery is optional and only present on multipart bodies
	var gallery []*multipart.FileHeader
	if strings.HasPrefix(string(ctx.Request().Header.ContentType()), fiber.MIMEMultipartForm) {
		form, err := ctx.MultipartForm()
		if err != nil {
			return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
		}
		gallery = form.File[galleryField]
	}

	fb, err := h.feedbackService.CreateFeedback(c, userData, req, gallery)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "create_feedback")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusCreated, feedbackService.MakeFeedbackResponse(fb, nil))
	}
}

func (h *FeedbackHandler) Match(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	var req feedback.MatchRequest
	if err := ctx.BodyParser(&req); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	if err := h.validator.Struct(req); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	res, err := h.feedbackService.Match(c, req)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "match_feedback")
	}

	return errHandler.HandleDone(ctx, c, fiber.StatusOK, res)
}

func (h *FeedbackHandler) GetFeedbacks(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	res, err := h.feedbackService.GetFeedbacks(c)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "get_feedbacks")
	}

	return errHandler.HandleDone(ctx, c, fiber.StatusOK, res)
}

func (h *FeedbackHandler) GetMyFeedbacks(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	userData, err := jwtPkg.GetUserLoginData(ctx)
	if err != nil {
		return errHandler.HandleUnauthorized(ctx, requestID, "Unauthorized")
	}

	res, err := h.feedbackService.GetMyFeedbacks(c, userData.ID)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "get_my_feedbacks")
	}

	return errHandler.HandleDone(ctx, c, fiber.StatusOK, res)
}

func (h *FeedbackHandler) GetOrganizationFeedbacks(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	userData, err := jwtPkg.GetUserLoginData(ctx)
	if err != nil {
		return errHandler.HandleUnauthorized(ctx, requestID, "Unauthorized")
	}

	res, err := h.feedbackService.GetOrganizationFeedbacks(c, userData.ID)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "get_organization_feedbacks")
	}

	return errHandler.HandleDone(ctx, c, fiber.StatusOK, res)
}

func (h *FeedbackHandler) GetFeedbackByID(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	userData, err := jwtPkg.GetUserLoginData(ctx)
	if err != nil {
		return errHandler.HandleUnauthorized(ctx, requestID, "Unauthorized")
	}

	res, err := h.feedbackService.GetFeedbackByID(c, userData, ctx.Params("id"))
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "get_feedback")
	}

	return errHandler.HandleDone(ctx, c, fiber.StatusOK, res)
}

func (h *FeedbackHandler) UpdateFeedback(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	userData, err := jwtPkg.GetUserLoginData(ctx)
	if err != nil {
		return errHandler.HandleUnauthorized(ctx, requestID, "Unauthorized")
	}

	var req feedback.UpdateFeedbackRequest
	if err := ctx.BodyParser(&req); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	if err := h.validator.Struct(req); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	fb, err := h.feedbackService.UpdateFeedback(c, userData, ctx.Params("id"), req)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "update_feedback")
	}

	return errHandler.HandleDone(ctx, c, fiber.StatusOK, feedbackService.MakeFeedbackResponse(fb, nil))
}

func (h *FeedbackHandler) CancelFeedback(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	userData, err := jwtPkg.GetUserLoginData(ctx)
	if err != nil {
		return errHandler.HandleUnauthorized(ctx, requestID, "Unauthorized")
	}

	fb, err := h.feedbackService.CancelFeedback(c, userData, ctx.Params("id"))
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "cancel_feedback")
	}

	return errHandler.HandleDone(ctx, c, fiber.StatusOK, feedbackService.MakeFeedbackResponse(fb, nil))
}

func (h *FeedbackHandler) DeleteFeedback(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	userData, err := jwtPkg.GetUserLoginData(ctx)
	if err != nil {
		return errHandler.HandleUnauthorized(ctx, requestID, "Unauthorized")
	}

	if err := h.feedbackService.DeleteFeedback(c, userData, ctx.Params("id")); err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "delete_feedback")
	}

	return errHandler.HandleDone(ctx, c, fiber.StatusOK, fiber.Map{
		"message": "Feedback deleted successfully",
	})
}
