package controller

import (
	"getunlocked-be/internal/dto"
	"getunlocked-be/internal/pkg/serverutils"
	"getunlocked-be/internal/service"
	"getunlocked-be/pkg/dna"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IDigestController interface {
	RegisterRoutes(r fiber.Router)
	Generate(ctx *fiber.Ctx) error
	Today(ctx *fiber.Ctx) error
	Latest(ctx *fiber.Ctx) error
}

type digestController struct {
	digestService service.IDigestService
}

func NewDigestController(digestService service.IDigestService) IDigestController {
	return &digestController{digestService: digestService}
}

func (c *digestController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/digest")
	h.Use(serverutils.JwtMiddleware)
	h.Post("/generate", c.Generate)
	h.Get("/today", c.Today)
	h.Get("/latest", c.Latest)
}

func (c *digestController) Generate(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	digest, err := c.digestService.GenerateDigest(ctx.Context(), userId)
	if err != nil {
		if ae, ok := err.(*dna.AnalysisError); ok && ae.Kind == dna.Unauthorized {
			return ctx.Status(fiber.StatusForbidden).JSON(dto.AnalysisErrorBodyFrom(ae))
		}
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Digest generated", dto.DigestResponseFrom(digest)))
}

func (c *digestController) Today(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	digest, err := c.digestService.GetTodayDigest(ctx.Context(), userId)
	if err != nil {
		return err
	}
	if digest == nil {
		return ctx.Status(fiber.StatusNotFound).JSON(serverutils.ErrorResponse(404, "no digest for today"))
	}
	return ctx.JSON(serverutils.SuccessResponse("Success fetching digest", dto.DigestResponseFrom(digest)))
}

func (c *digestController) Latest(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	digest, err := c.digestService.GetLatestDigest(ctx.Context(), userId)
	if err != nil {
		return err
	}
	if digest == nil {
		return ctx.Status(fiber.StatusNotFound).JSON(serverutils.ErrorResponse(404, "no digest yet"))
	}
	return ctx.JSON(serverutils.SuccessResponse("Success fetching digest", dto.DigestResponseFrom(digest)))
}
