package organizationHandler

import (
	"CitizenVoice/internal/api/organization"
	organizationService "CitizenVoice/internal/api/organization/service"
	contextPkg "CitizenVoice/pkg/context"
	"CitizenVoice/pkg/handlerUtil"
	jwtPkg "CitizenVoice/pkg/jwt"
	"CitizenVoice/pkg/log"
	"time"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/net/context"
)

func (h *OrganizationHandler) CreateOrganization(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"path":       ctx.Path(),
	}).Debug("Processing create organization request")

	var req organization.CreateOrganizationRequest
	if err := ctx.BodyParser(&req); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	if err := h.validator.Struct(req); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	org, err := h.organizationService.CreateOrganization(c, req)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "create_organization")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusCreated, organizationService.MakeOrganizationResponse(org))
	}
}

func (h *OrganizationHandler) UpdateOwnOrganization(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	userData, err := jwtPkg.GetUserLoginData(ctx)
	if err != nil {
		return errHandler.HandleUnauthorized(ctx, requestID, "Unauthorized")
	}

	var req organization.UpdateOrganizationRequest
	if err := ctx.BodyParser(&req); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	if err := h.validator.Struct(req); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	org, err := h.organizationService.UpdateOwnOrganization(c, userData.ID, req)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "update_organization")
	}

	return errHandler.HandleDone(ctx, c, fiber.StatusOK, organizationService.MakeOrganizationResponse(org))
}

func (h *OrganizationHandler) GetOrganizations(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	orgs, err := h.organizationService.GetOrganizations(c)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "get_organizations")
	}

	res := make([]organization.OrganizationResponse, 0, len(orgs))
	for _, org := range orgs {
		res = append(res, organizationService.MakeOrganizationResponse(org))
	}

	return errHandler.HandleDone(ctx, c, fiber.StatusOK, res)
}

func (h *OrganizationHandler) GetOrganizationByID(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	org, err := h.organizationService.GetOrganizationByID(c, ctx.Params("id"))
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "get_organization")
	}

	return errHandler.HandleDone(ctx, c, fiber.StatusOK, organizationService.MakeOrganizationResponse(org))
}

func (h *OrganizationHandler) DeleteOrganization(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	if err := h.organizationService.DeleteOrganization(c, ctx.Params("id")); err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "delete_organization")
	}

	return errHandler.HandleDone(ctx, c, fiber.StatusOK, fiber.Map{
		"message": "Organization deleted successfully",
	})
}
