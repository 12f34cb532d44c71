package service

import (
	"context"
	"fmt"
	"time"

	"getunlocked-be/internal/entity"
	"getunlocked-be/internal/repository/specification"
	"getunlocked-be/internal/repository/unitofwork"
	"getunlocked-be/pkg/events"
	pktNats "getunlocked-be/pkg/nats"

	"github.com/google/uuid"
)

type IEventService interface {
	Track(ctx context.Context, userId uuid.UUID, eventType string, data map[string]interface{}) error
	List(ctx context.Context, userId uuid.UUID, limit int) ([]*entity.UserEvent, error)
}

type eventService struct {
	uowFactory     unitofwork.RepositoryFactory
	eventPublisher *pktNats.Publisher
}

func NewEventService(uowFactory unitofwork.RepositoryFactory, eventPublisher *pktNats.Publisher) IEventService {
	return &eventService{
		uowFactory:     uowFactory,
		eventPublisher: eventPublisher,
	}
}

func (s *eventService) Track(ctx context.Context, userId uuid.UUID, eventType string, data map[string]interface{}) error {
	if eventType == "" {
		return fmt.Errorf("event type is required")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	event := &entity.UserEvent{
		Id:        uuid.New(),
		UserId:    userId,
		EventType: eventType,
		EventData: data,
		CreatedAt: time.Now(),
	}
	if err := uow.EngagementRepository().CreateEvent(ctx, event); err != nil {
		return err
	}

	if s.eventPublisher != nil {
		busEvent := events.BaseEvent{
			Type: events.TypeUserEventRecorded,
			Data: map[string]interface{}{
				"user_id":    userId,
				"event_type": eventType,
			},
			OccurredAt: time.Now(),
		}
		if err := s.eventPublisher.Publish(ctx, busEvent); err != nil {
			fmt.Printf("[WARN] Failed to publish %s event: %v\n", events.TypeUserEventRecorded, err)
		}
	}

	return nil
}

func (s *eventService) List(ctx context.Context, userId uuid.UUID, limit int) ([]*entity.UserEvent, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	return uow.EngagementRepository().FindEvents(ctx,
		specification.UserOwnedBy{UserID: userId},
		specification.OrderBy{Field: "created_at", Desc: true},
		specification.Pagination{Limit: limit},
	)
}
