package controller

import (
	"errors"
	"strconv"

	"getunlocked-be/internal/dto"
	"getunlocked-be/internal/pkg/serverutils"
	"getunlocked-be/internal/service"
	"getunlocked-be/pkg/quota"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IMessageController interface {
	RegisterRoutes(r fiber.Router)
	Send(ctx *fiber.Ctx) error
	Conversation(ctx *fiber.Ctx) error
	MarkRead(ctx *fiber.Ctx) error
	Limits(ctx *fiber.Ctx) error
}

type messageController struct {
	messageService service.IMessageService
}

func NewMessageController(messageService service.IMessageService) IMessageController {
	return &messageController{messageService: messageService}
}

func (c *messageController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/messages")
	h.Use(serverutils.JwtMiddleware)
	h.Post("", c.Send)
	h.Get("/limits", c.Limits)
	h.Get(":userId", c.Conversation)
	h.Put(":userId/read", c.MarkRead)
}

func (c *messageController) Send(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	var req dto.SendMessageRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	msg, err := c.messageService.Send(ctx.Context(), userId, req.RecipientId, req.MatchId, req.Content)
	if err != nil {
		if errors.Is(err, quota.ErrQuotaExceeded) {
			return ctx.Status(fiber.StatusTooManyRequests).JSON(serverutils.ErrorResponse(429, err.Error()))
		}
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, err.Error()))
	}

	return ctx.JSON(serverutils.SuccessResponse("Message sent", dto.MessageResponseFrom(msg)))
}

func (c *messageController) Conversation(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	otherId, err := uuid.Parse(ctx.Params("userId"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "invalid user id"))
	}

	limit, _ := strconv.Atoi(ctx.Query("limit", "50"))

	messages, err := c.messageService.GetConversation(ctx.Context(), userId, otherId, limit)
	if err != nil {
		return err
	}

	out := make([]dto.MessageResponse, 0, len(messages))
	for _, m := range messages {
		out = append(out, dto.MessageResponseFrom(m))
	}
	return ctx.JSON(serverutils.SuccessResponse("Success fetching conversation", out))
}

func (c *messageController) MarkRead(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	otherId, err := uuid.Parse(ctx.Params("userId"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "invalid user id"))
	}

	if err := c.messageService.MarkConversationRead(ctx.Context(), userId, otherId); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Conversation marked read", nil))
}

func (c *messageController) Limits(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	unlimited, limit, used, err := c.messageService.Limits(ctx.Context(), userId)
	if err != nil {
		return err
	}

	res := dto.MessageLimitsResponse{
		Unlimited: unlimited,
		Limit:     limit,
		Used:      used,
	}
	if !unlimited {
		res.Remaining = limit - used
		if res.Remaining < 0 {
			res.Remaining = 0
		}
	}
	return ctx.JSON(serverutils.SuccessResponse("Success fetching limits", res))
}
