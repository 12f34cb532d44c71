package controller

import (
	"strconv"

	"getunlocked-be/internal/dto"
	"getunlocked-be/internal/pkg/serverutils"
	"getunlocked-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IEventController interface {
	RegisterRoutes(r fiber.Router)
	Track(ctx *fiber.Ctx) error
	List(ctx *fiber.Ctx) error
	ProcessJourneys(ctx *fiber.Ctx) error
}

type eventController struct {
	eventService    service.IEventService
	recorderService service.IRecorderService
	journeyService  service.IJourneyService
}

func NewEventController(eventService service.IEventService, recorderService service.IRecorderService, journeyService service.IJourneyService) IEventController {
	return &eventController{
		eventService:    eventService,
		recorderService: recorderService,
		journeyService:  journeyService,
	}
}

func (c *eventController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/events")
	h.Post("", serverutils.JwtMiddleware, c.Track)
	h.Get("", serverutils.JwtMiddleware, c.List)

	// Invoked by the scheduler, not end users.
	r.Post("/journeys/process", c.ProcessJourneys)
}

func (c *eventController) Track(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	var req dto.TrackEventRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	if err := c.eventService.Track(ctx.Context(), userId, req.EventType, req.EventData); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, err.Error()))
	}

	// Behavioral events also feed the analysis pipeline.
	_ = c.recorderService.Record(ctx.Context(), userId, service.InteractionDescriptor{
		Type: req.EventType,
		Data: req.EventData,
	})

	return ctx.JSON(serverutils.SuccessResponse[any]("Event recorded", nil))
}

func (c *eventController) List(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	limit, _ := strconv.Atoi(ctx.Query("limit", "50"))

	eventsList, err := c.eventService.List(ctx.Context(), userId, limit)
	if err != nil {
		return err
	}

	out := make([]dto.UserEventResponse, 0, len(eventsList))
	for _, e := range eventsList {
		out = append(out, dto.UserEventResponseFrom(e))
	}
	return ctx.JSON(serverutils.SuccessResponse("Success fetching events", out))
}

func (c *eventController) ProcessJourneys(ctx *fiber.Ctx) error {
	processed, sent, err := c.journeyService.ProcessEvents(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Journeys processed", dto.ProcessJourneysResponse{
		Processed: processed,
		Sent:      sent,
	}))
}
