package controller

import (
	"strconv"

	"registration-sheets-be/internal/dto"
	"registration-sheets-be/internal/pkg/serverutils"
	"registration-sheets-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ISheetController interface {
	RegisterRoutes(r fiber.Router)
	Generate(ctx *fiber.Ctx) error
	Phases(ctx *fiber.Ctx) error
}

type sheetController struct {
	sheetService service.ISheetService
}

func NewSheetController(sheetService service.ISheetService) ISheetController {
	return &sheetController{
		sheetService: sheetService,
	}
}

func (c *sheetController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/sheet/v1")
	h.Post("opportunity/:id/generate", c.Generate)
	h.Get("opportunity/:id/phases", c.Phases)
}

func (c *sheetController) Generate(ctx *fiber.Ctx) error {
	opportunityId, err := strconv.ParseInt(ctx.Params("id"), 10, 64)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid opportunity id")
	}

	req := dto.GenerateSheetsRequest{OpportunityId: opportunityId}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.sheetService.GenerateSheets(ctx.Context(), req.OpportunityId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success generate registration sheets", res))
}

func (c *sheetController) Phases(ctx *fiber.Ctx) error {
	opportunityId, err := strconv.ParseInt(ctx.Params("id"), 10, 64)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid opportunity id")
	}

	phases, err := c.sheetService.ResolvePhases(ctx.Context(), opportunityId)
	if err != nil {
		return err
	}

	res := make([]dto.PhaseResponse, len(phases))
	for i, p := range phases {
		res[i] = dto.PhaseResponse{
			Id:       p.Id,
			Name:     p.Name,
			ParentId: p.ParentId,
		}
	}

	return ctx.JSON(serverutils.SuccessResponse("Success resolve phases", res))
}
