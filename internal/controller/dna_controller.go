package controller

import (
	"getunlocked-be/internal/dto"
	"getunlocked-be/internal/pkg/serverutils"
	"getunlocked-be/internal/service"
	"getunlocked-be/pkg/dna"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IDNAController interface {
	RegisterRoutes(r fiber.Router)
	AnalyzeProfile(ctx *fiber.Ctx) error
	AnalyzeCompatibility(ctx *fiber.Ctx) error
	GenerateInsights(ctx *fiber.Ctx) error
	GetProfile(ctx *fiber.Ctx) error
	GetCompatibility(ctx *fiber.Ctx) error
	GetInsights(ctx *fiber.Ctx) error
	MarkInsightRead(ctx *fiber.Ctx) error
	DismissInsight(ctx *fiber.Ctx) error
}

type dnaController struct {
	dnaService service.IDNAService
}

func NewDNAController(dnaService service.IDNAService) IDNAController {
	return &dnaController{dnaService: dnaService}
}

func (c *dnaController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/dna")
	h.Use(serverutils.JwtMiddleware)
	h.Post("/analyze-profile", c.AnalyzeProfile)
	h.Post("/analyze-compatibility", c.AnalyzeCompatibility)
	h.Post("/insights/generate", c.GenerateInsights)
	h.Get("/profile", c.GetProfile)
	h.Get("/compatibility/:userId", c.GetCompatibility)
	h.Get("/insights", c.GetInsights)
	h.Put("/insights/:id/read", c.MarkInsightRead)
	h.Put("/insights/:id/dismiss", c.DismissInsight)
}

// analysisError maps the analysis failure kinds onto HTTP statuses.
func analysisError(ctx *fiber.Ctx, err error) error {
	ae, ok := err.(*dna.AnalysisError)
	if !ok {
		return err
	}

	status := fiber.StatusInternalServerError
	switch ae.Kind {
	case dna.Unauthorized:
		status = fiber.StatusForbidden
	case dna.MissingPrerequisite:
		status = fiber.StatusBadRequest
	case dna.ServiceUnavailable:
		status = fiber.StatusServiceUnavailable
	}

	return ctx.Status(status).JSON(dto.AnalysisErrorBodyFrom(ae))
}

func (c *dnaController) AnalyzeProfile(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	profile, err := c.dnaService.AnalyzeProfile(ctx.Context(), userId)
	if err != nil {
		return analysisError(ctx, err)
	}

	return ctx.JSON(serverutils.SuccessResponse("Profile analyzed", dto.DNAProfileResponseFrom(profile)))
}

func (c *dnaController) AnalyzeCompatibility(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	var req dto.AnalyzeCompatibilityRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	compat, err := c.dnaService.AnalyzeCompatibility(ctx.Context(), userId, req.TargetUserId)
	if err != nil {
		return analysisError(ctx, err)
	}

	return ctx.JSON(serverutils.SuccessResponse("Compatibility analyzed", dto.CompatibilityResponseFrom(compat)))
}

func (c *dnaController) GenerateInsights(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	insights, err := c.dnaService.GenerateInsights(ctx.Context(), userId)
	if err != nil {
		return analysisError(ctx, err)
	}

	return ctx.JSON(serverutils.SuccessResponse("Insights generated", dto.GenerateInsightsResponse{
		Insights: dto.InsightResponsesFrom(insights),
	}))
}

func (c *dnaController) GetProfile(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	profile, err := c.dnaService.GetProfile(ctx.Context(), userId)
	if err != nil {
		return err
	}
	if profile == nil {
		return ctx.Status(fiber.StatusNotFound).JSON(serverutils.ErrorResponse(404, "no analysis yet"))
	}

	return ctx.JSON(serverutils.SuccessResponse("Success fetching analysis", dto.DNAProfileResponseFrom(profile)))
}

func (c *dnaController) GetCompatibility(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	otherId, err := uuid.Parse(ctx.Params("userId"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "invalid user id"))
	}

	compat, err := c.dnaService.GetCompatibility(ctx.Context(), userId, otherId)
	if err != nil {
		return err
	}
	if compat == nil {
		return ctx.Status(fiber.StatusNotFound).JSON(serverutils.ErrorResponse(404, "no compatibility analysis yet"))
	}

	return ctx.JSON(serverutils.SuccessResponse("Success fetching compatibility", dto.CompatibilityResponseFrom(compat)))
}

func (c *dnaController) GetInsights(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	insights, err := c.dnaService.GetInsights(ctx.Context(), userId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success fetching insights", dto.InsightResponsesFrom(insights)))
}

func (c *dnaController) MarkInsightRead(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	insightId, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "invalid insight id"))
	}

	if err := c.dnaService.MarkInsightRead(ctx.Context(), userId, insightId); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Insight marked read", nil))
}

func (c *dnaController) DismissInsight(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	insightId, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "invalid insight id"))
	}

	if err := c.dnaService.DismissInsight(ctx.Context(), userId, insightId); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Insight dismissed", nil))
}
