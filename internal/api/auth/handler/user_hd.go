package authHandler

import (
	"CitizenVoice/internal/api/auth"
	authService "CitizenVoice/internal/api/auth/service"
	contextPkg "CitizenVoice/pkg/context"
	"CitizenVoice/pkg/handlerUtil"
	jwtPkg "CitizenVoice/pkg/jwt"
	"time"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/net/context"
)

func (h *AuthHandler) CreateUser(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	var req auth.CreateUserRequest
	if err := ctx.BodyParser(&req); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	if err := h.validator.Struct(req); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	user, err := h.authService.User().CreateUser(c, req)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "create_user")
	}

	return errHandler.HandleDone(ctx, c, fiber.StatusCreated, authService.MakeUserResponse(user))
}

func (h *AuthHandler) GetUsers(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	users, err := h.authService.User().GetUsers(c)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "get_users")
	}

	res := make([]auth.UserResponse, 0, len(users))
	for _, u := range users {
		res = append(res, authService.MakeUserResponse(u))
	}

	return errHandler.HandleDone(ctx, c, fiber.StatusOK, res)
}

func (h *AuthHandler) GetUserByID(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	user, err := h.authService.User().GetUserByID(c, ctx.Params("id"))
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "get_user")
	}

	return errHandler.HandleDone(ctx, c, fiber.StatusOK, authService.MakeUserResponse(user))
}

func (h *AuthHandler) UpdateUser(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	var req auth.UpdateUserRequest
	if err := ctx.BodyParser(&req); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	if err := h.validator.Struct(req); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	user, err := h.authService.User().UpdateUser(c, ctx.Params("id"), req)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "update_user")
	}

	return errHandler.HandleDone(ctx, c, fiber.StatusOK, authService.MakeUserResponse(user))
}

func (h *AuthHandler) DeleteUser(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	if err := h.authService.User().DeleteUser(c, ctx.Params("id")); err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "delete_user")
	}

	return errHandler.HandleDone(ctx, c, fiber.StatusOK, fiber.Map{
		"message": "User deleted successfully",
	})
}

func (h *AuthHandler) UpdatePhoto(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 30*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	userData, err := jwtPkg.GetUserLoginData(ctx)
	if err != nil {
		return errHandler.HandleUnauthorized(ctx, requestID, "Unauthorized")
	}

	photo, err := ctx.FormFile("photo")
	if err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	res, err := h.authService.User().UpdatePhoto(c, userData.ID, photo)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "update_photo")
	}

	return errHandler.HandleDone(ctx, c, fiber.StatusOK, res)
}
