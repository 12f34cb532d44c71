package controller

import (
	"getunlocked-be/internal/dto"
	"getunlocked-be/internal/pkg/serverutils"
	"getunlocked-be/internal/service"
	"getunlocked-be/pkg/paypal"
	"getunlocked-be/pkg/ratelimit"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IPaymentController interface {
	RegisterRoutes(r fiber.Router)
	Checkout(ctx *fiber.Ctx) error
	Capture(ctx *fiber.Ctx) error
	Webhook(ctx *fiber.Ctx) error
	Status(ctx *fiber.Ctx) error
	Entitlement(ctx *fiber.Ctx) error
	History(ctx *fiber.Ctx) error
}

type paymentController struct {
	paymentService     service.IPaymentService
	entitlementService service.IEntitlementService
	webhookLimiter     ratelimit.Limiter
}

func NewPaymentController(paymentService service.IPaymentService, entitlementService service.IEntitlementService, webhookLimiter ratelimit.Limiter) IPaymentController {
	return &paymentController{
		paymentService:     paymentService,
		entitlementService: entitlementService,
		webhookLimiter:     webhookLimiter,
	}
}

func (c *paymentController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/payments")
	h.Post("/paypal/webhook", c.Webhook)

	h.Post("/checkout", serverutils.JwtMiddleware, c.Checkout)
	h.Post("/capture", serverutils.JwtMiddleware, c.Capture)
	h.Get("/status", serverutils.JwtMiddleware, c.Status)
	h.Get("/entitlement", serverutils.JwtMiddleware, c.Entitlement)
	h.Get("/history", serverutils.JwtMiddleware, c.History)
}

func (c *paymentController) Checkout(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	var req dto.CreatePaymentRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.paymentService.CreatePayment(ctx.Context(), userId, req.PlanName)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, err.Error()))
	}
	return ctx.JSON(serverutils.SuccessResponse("Payment created", res))
}

func (c *paymentController) Capture(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	var req dto.CapturePaymentRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.paymentService.CapturePayment(ctx.Context(), userId, req.OrderId)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, err.Error()))
	}
	return ctx.JSON(serverutils.SuccessResponse("Payment captured", res))
}

func (c *paymentController) Webhook(ctx *fiber.Ctx) error {
	// Webhook deliveries are unauthenticated, so throttle by source IP
	// before doing any signature work.
	allowed, err := c.webhookLimiter.Allow(ctx.Context(), ctx.IP())
	if err == nil && !allowed {
		return ctx.Status(fiber.StatusTooManyRequests).JSON(serverutils.ErrorResponse(429, "too many requests"))
	}

	headers := paypal.WebhookHeadersFromRequest(func(key string) string { return ctx.Get(key) })
	body := make([]byte, len(ctx.Body()))
	copy(body, ctx.Body())

	if err := c.paymentService.HandleWebhook(ctx.Context(), headers, body); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, err.Error()))
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("ok", nil))
}

func (c *paymentController) Status(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	res, err := c.paymentService.CheckSubscription(ctx.Context(), userId)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success fetching subscription status", res))
}

func (c *paymentController) Entitlement(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	ent := c.entitlementService.Resolve(ctx.Context(), userId)
	return ctx.JSON(serverutils.SuccessResponse("Success fetching entitlement", dto.EntitlementResponse{
		Tier:              string(ent.Tier),
		Subscribed:        ent.Subscribed,
		SubscriptionEnd:   ent.SubscriptionEnd,
		CanUseDNA:         ent.CanUseDNA(),
		CanUseDigest:      ent.CanUseDigest(),
		UnlimitedMessages: ent.UnlimitedMessages(),
	}))
}

func (c *paymentController) History(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	payments, err := c.paymentService.ListPayments(ctx.Context(), userId)
	if err != nil {
		return err
	}

	out := make([]dto.PaymentResponse, 0, len(payments))
	for _, p := range payments {
		out = append(out, dto.PaymentResponseFrom(p))
	}
	return ctx.JSON(serverutils.SuccessResponse("Success fetching payments", out))
}
