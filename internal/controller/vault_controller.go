package controller

import (
	"getunlocked-be/internal/dto"
	"getunlocked-be/internal/pkg/serverutils"
	"getunlocked-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IVaultController interface {
	RegisterRoutes(r fiber.Router)
	SaveMatch(ctx *fiber.Ctx) error
	ListMatches(ctx *fiber.Ctx) error
	DeleteMatch(ctx *fiber.Ctx) error
	SavePrompt(ctx *fiber.Ctx) error
	ListPrompts(ctx *fiber.Ctx) error
	DeletePrompt(ctx *fiber.Ctx) error
	SaveMoment(ctx *fiber.Ctx) error
	ListMoments(ctx *fiber.Ctx) error
	DeleteMoment(ctx *fiber.Ctx) error
	Counts(ctx *fiber.Ctx) error
}

type vaultController struct {
	vaultService service.IVaultService
}

func NewVaultController(vaultService service.IVaultService) IVaultController {
	return &vaultController{vaultService: vaultService}
}

func (c *vaultController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/vault")
	h.Use(serverutils.JwtMiddleware)
	h.Get("/counts", c.Counts)
	h.Post("/matches", c.SaveMatch)
	h.Get("/matches", c.ListMatches)
	h.Delete("/matches/:id", c.DeleteMatch)
	h.Post("/prompts", c.SavePrompt)
	h.Get("/prompts", c.ListPrompts)
	h.Delete("/prompts/:id", c.DeletePrompt)
	h.Post("/moments", c.SaveMoment)
	h.Get("/moments", c.ListMoments)
	h.Delete("/moments/:id", c.DeleteMoment)
}

func (c *vaultController) SaveMatch(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	var req dto.SaveVaultMatchRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	v, err := c.vaultService.SaveMatch(ctx.Context(), userId, req.MatchName, req.MatchUserId, req.Note)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Match saved", dto.VaultMatchResponseFrom(v)))
}

func (c *vaultController) ListMatches(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	items, err := c.vaultService.ListMatches(ctx.Context(), userId)
	if err != nil {
		return err
	}
	out := make([]dto.VaultMatchResponse, 0, len(items))
	for _, v := range items {
		out = append(out, dto.VaultMatchResponseFrom(v))
	}
	return ctx.JSON(serverutils.SuccessResponse("Success fetching saved matches", out))
}

func (c *vaultController) DeleteMatch(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "invalid id"))
	}

	if err := c.vaultService.DeleteMatch(ctx.Context(), userId, id); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Match deleted", nil))
}

func (c *vaultController) SavePrompt(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	var req dto.SaveVaultPromptRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	v, err := c.vaultService.SavePrompt(ctx.Context(), userId, req.PromptText, req.Response)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Prompt saved", dto.VaultPromptResponseFrom(v)))
}

func (c *vaultController) ListPrompts(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	items, err := c.vaultService.ListPrompts(ctx.Context(), userId)
	if err != nil {
		return err
	}
	out := make([]dto.VaultPromptResponse, 0, len(items))
	for _, v := range items {
		out = append(out, dto.VaultPromptResponseFrom(v))
	}
	return ctx.JSON(serverutils.SuccessResponse("Success fetching prompts", out))
}

func (c *vaultController) DeletePrompt(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "invalid id"))
	}

	if err := c.vaultService.DeletePrompt(ctx.Context(), userId, id); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Prompt deleted", nil))
}

func (c *vaultController) SaveMoment(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	var req dto.SaveVaultMomentRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	v, err := c.vaultService.SaveMoment(ctx.Context(), userId, req.Title, req.Description, req.MomentDate)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Moment saved", dto.VaultMomentResponseFrom(v)))
}

func (c *vaultController) ListMoments(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	items, err := c.vaultService.ListMoments(ctx.Context(), userId)
	if err != nil {
		return err
	}
	out := make([]dto.VaultMomentResponse, 0, len(items))
	for _, v := range items {
		out = append(out, dto.VaultMomentResponseFrom(v))
	}
	return ctx.JSON(serverutils.SuccessResponse("Success fetching moments", out))
}

func (c *vaultController) DeleteMoment(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "invalid id"))
	}

	if err := c.vaultService.DeleteMoment(ctx.Context(), userId, id); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Moment deleted", nil))
}

func (c *vaultController) Counts(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	counts, err := c.vaultService.Counts(ctx.Context(), userId)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success fetching counts", dto.VaultCountsResponse{
		Matches: counts.Matches,
		Prompts: counts.Prompts,
		Moments: counts.Moments,
	}))
}
