package responseHandler

import (
	responses "CitizenVoice/internal/api/response"
	contextPkg "CitizenVoice/pkg/context"
	"CitizenVoice/pkg/handlerUtil"
	jwtPkg "CitizenVoice/pkg/jwt"
	"mime/multipart"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

func (h *ResponseHandler) CreateResponse(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 30*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	userData, err := jwtPkg.GetUserLoginData(ctx)
	if err != nil {
		return errHandler.HandleUnauthorized(ctx, requestID, "Unauthorized")
	}

	var req responses.CreateResponseRequest
	if err := ctx.BodyParser(&req); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	if err := h.validator.Struct(req); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	var photo *multipart.FileHeader
	if strings.HasPrefix(string(ctx.Request().Header.ContentType()), fiber.MIMEMultipartForm) {
		if file, err := ctx.FormFile(photoField); err == nil {
			photo = file
		}
	}

	res, err := h.responseService.CreateResponse(c, userData, req, photo)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "create_response")
	}

	h.log.WithFields(logrus.Fields{
		"request_id":  requestID,
		"response_id": res.ID,
	}).Info("Response submitted")

	return errHandler.HandleDone(ctx, c, fiber.StatusCreated, res)
}

func (h *ResponseHandler) GetResponses(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	res, err := h.responseService.GetResponses(c)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "get_responses")
	}

	return errHandler.HandleDone(ctx, c, fiber.StatusOK, res)
}

func (h *ResponseHandler) GetResponseByID(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	res, err := h.responseService.GetResponseByID(c, ctx.Params("id"))
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "get_response")
	}

	return errHandler.HandleDone(ctx, c, fiber.StatusOK, res)
}

func (h *ResponseHandler) DeleteResponse(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	userData, err := jwtPkg.GetUserLoginData(ctx)
	if err != nil {
		return errHandler.HandleUnauthorized(ctx, requestID, "Unauthorized")
	}

	if err := h.responseService.DeleteResponse(c, userData, ctx.Params("id")); err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "delete_response")
	}

	return errHandler.HandleDone(ctx, c, fiber.StatusOK, fiber.Map{
		"message": "Response deleted successfully",
	})
}
