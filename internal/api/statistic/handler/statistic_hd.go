package statisticHandler

import (
	"CitizenVoice/internal/api/statistic"
	contextPkg "CitizenVoice/pkg/context"
	"CitizenVoice/pkg/handlerUtil"
	jwtPkg "CitizenVoice/pkg/jwt"
	"time"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/net/context"
)

// year reads the optional year query param, defaulting to the current UTC year.
func (h *StatisticHandler) year(ctx *fiber.Ctx) (int, error) {
	var q statistic.YearQuery
	if err := ctx.QueryParser(&q); err != nil {
		return 0, err
	}
	if err := h.validator.Struct(q); err != nil {
		return 0, err
	}
	if q.Year == 0 {
		return time.Now().UTC().Year(), nil
	}
	return q.Year, nil
}

func (h *StatisticHandler) GetAdminStatistics(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	year, err := h.year(ctx)
	if err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	res, err := h.statisticService.GetAdminStatistics(c, year)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "get_admin_statistics")
	}

	return errHandler.HandleDone(ctx, c, fiber.StatusOK, res)
}

func (h *StatisticHandler) GetCitizenStatistics(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	userData, err := jwtPkg.GetUserLoginData(ctx)
	if err != nil {
		return errHandler.HandleUnauthorized(ctx, requestID, "Unauthorized")
	}

	year, err := h.year(ctx)
	if err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	res, err := h.statisticService.GetCitizenStatistics(c, userData.ID, year)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "get_citizen_statistics")
	}

	return errHandler.HandleDone(ctx, c, fiber.StatusOK, res)
}

func (h *StatisticHandler) GetOrganizationStatistics(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	userData, err := jwtPkg.GetUserLoginData(ctx)
	if err != nil {
		return errHandler.HandleUnauthorized(ctx, requestID, "Unauthorized")
	}

	year, err := h.year(ctx)
	if err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	res, err := h.statisticService.GetOrganizationStatistics(c, userData.ID, year)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "get_organization_statistics")
	}

	return errHandler.HandleDone(ctx, c, fiber.StatusOK, res)
}
