package authHandler

import (
	"CitizenVoice/internal/api/auth"
	contextPkg "CitizenVoice/pkg/context"
	"CitizenVoice/pkg/handlerUtil"
	"time"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/net/context"
)

func (h *AuthHandler) ForgotPassword(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 15*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	var req auth.ForgotPasswordRequest
	if err := ctx.BodyParser(&req); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	if err := h.validator.Struct(req); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	if err := h.authService.Password().ForgotPassword(c, req); err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "forgot_password")
	}

	return errHandler.HandleDone(ctx, c, fiber.StatusOK, fiber.Map{
		"message": "OTP sent to email",
	})
}

func (h *AuthHandler) ResetPassword(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	var req auth.ResetPasswordRequest
	if err := ctx.BodyParser(&req); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	if err := h.validator.Struct(req); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	if err := h.authService.Password().ResetPassword(c, req); err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "reset_password")
	}

	return errHandler.HandleDone(ctx, c, fiber.StatusOK, fiber.Map{
		"message": "Password updated successfully",
	})
}
