package controller

import (
	"getunlocked-be/internal/dto"
	"getunlocked-be/internal/entity"
	"getunlocked-be/internal/pkg/serverutils"
	"getunlocked-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IMatchController interface {
	RegisterRoutes(r fiber.Router)
	Generate(ctx *fiber.Ctx) error
	List(ctx *fiber.Ctx) error
	React(ctx *fiber.Ctx) error
}

type matchController struct {
	matchingService service.IMatchingService
	profileService  service.IProfileService
}

func NewMatchController(matchingService service.IMatchingService, profileService service.IProfileService) IMatchController {
	return &matchController{
		matchingService: matchingService,
		profileService:  profileService,
	}
}

func (c *matchController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/matches")
	h.Use(serverutils.JwtMiddleware)
	h.Post("/generate", c.Generate)
	h.Get("", c.List)
	h.Post(":id/react", c.React)
}

func (c *matchController) matchResponses(ctx *fiber.Ctx, matches []*entity.Match) []dto.MatchResponse {
	out := make([]dto.MatchResponse, 0, len(matches))
	for _, m := range matches {
		name, age := "", 0
		if p, err := c.profileService.Get(ctx.Context(), m.MatchedUserId); err == nil {
			name, age = p.Name, p.Age
		}
		out = append(out, dto.MatchResponseFrom(m, name, age))
	}
	return out
}

func (c *matchController) Generate(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	matches, err := c.matchingService.GenerateMatches(ctx.Context(), userId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Matches generated", dto.GenerateMatchesResponse{
		Matches: c.matchResponses(ctx, matches),
	}))
}

func (c *matchController) List(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	matches, err := c.matchingService.GetMatches(ctx.Context(), userId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success fetching matches", c.matchResponses(ctx, matches)))
}

func (c *matchController) React(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	matchId, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "invalid match id"))
	}

	var req dto.ReactToMatchRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	match, err := c.matchingService.ReactToMatch(ctx.Context(), userId, matchId, req.Action)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, err.Error()))
	}

	name, age := "", 0
	if p, perr := c.profileService.Get(ctx.Context(), match.MatchedUserId); perr == nil {
		name, age = p.Name, p.Age
	}
	return ctx.JSON(serverutils.SuccessResponse("Reaction recorded", dto.MatchResponseFrom(match, name, age)))
}
