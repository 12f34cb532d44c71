package service

import (
	"context"
	"fmt"
	"time"

	"getunlocked-be/internal/entity"
	"getunlocked-be/internal/pkg/logger"
	"getunlocked-be/internal/repository/unitofwork"
	"getunlocked-be/pkg/quota"

	"github.com/google/uuid"
)

type IMessageService interface {
	// Send enforces the free-tier daily quota atomically before the
	// message row is written. Premium tiers bypass the counter entirely.
	Send(ctx context.Context, senderId, recipientId uuid.UUID, matchId *uuid.UUID, content string) (*entity.Message, error)

	GetConversation(ctx context.Context, userId, otherId uuid.UUID, limit int) ([]*entity.Message, error)
	MarkConversationRead(ctx context.Context, userId, otherId uuid.UUID) error
	Limits(ctx context.Context, userId uuid.UUID) (unlimited bool, limit, used int64, err error)
}

type messageService struct {
	uowFactory         unitofwork.RepositoryFactory
	entitlementService IEntitlementService
	recorderService    IRecorderService
	eventService       IEventService
	quotaCounter       quota.Counter
	freeDailyLimit     int64
	logger             logger.ILogger
}

func NewMessageService(
	uowFactory unitofwork.RepositoryFactory,
	entitlementService IEntitlementService,
	recorderService IRecorderService,
	eventService IEventService,
	quotaCounter quota.Counter,
	freeDailyLimit int64,
	sysLogger logger.ILogger,
) IMessageService {
	return &messageService{
		uowFactory:         uowFactory,
		entitlementService: entitlementService,
		recorderService:    recorderService,
		eventService:       eventService,
		quotaCounter:       quotaCounter,
		freeDailyLimit:     freeDailyLimit,
		logger:             sysLogger,
	}
}

func (s *messageService) Send(ctx context.Context, senderId, recipientId uuid.UUID, matchId *uuid.UUID, content string) (*entity.Message, error) {
	if content == "" {
		return nil, fmt.Errorf("message content is required")
	}
	if senderId == recipientId {
		return nil, fmt.Errorf("cannot message yourself")
	}

	ent := s.entitlementService.Resolve(ctx, senderId)
	if !ent.UnlimitedMessages() {
		if _, err := s.quotaCounter.Consume(ctx, senderId.String(), s.freeDailyLimit); err != nil {
			return nil, err
		}
	}

	message := &entity.Message{
		Id:          uuid.New(),
		SenderId:    senderId,
		RecipientId: recipientId,
		MatchId:     matchId,
		Content:     content,
		CreatedAt:   time.Now(),
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.MessageRepository().Create(ctx, message); err != nil {
		return nil, err
	}

	// Engagement tracking and analysis are ambient; their failures never
	// fail the send.
	if err := s.eventService.Track(ctx, senderId, entity.EventMessageSent, map[string]interface{}{
		"recipient_id": recipientId,
		"length":       len(content),
	}); err != nil {
		s.logger.Warn("message", "Failed to track message_sent event", map[string]interface{}{
			"user_id": senderId,
			"error":   err.Error(),
		})
	}
	_ = s.recorderService.RecordMessage(ctx, senderId, &recipientId, len(content), nil)

	return message, nil
}

func (s *messageService) GetConversation(ctx context.Context, userId, otherId uuid.UUID, limit int) ([]*entity.Message, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	uow := s.uowFactory.NewUnitOfWork(ctx)
	return uow.MessageRepository().FindConversation(ctx, userId, otherId, limit)
}

func (s *messageService) MarkConversationRead(ctx context.Context, userId, otherId uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	return uow.MessageRepository().MarkRead(ctx, userId, otherId, time.Now())
}

func (s *messageService) Limits(ctx context.Context, userId uuid.UUID) (bool, int64, int64, error) {
	ent := s.entitlementService.Resolve(ctx, userId)
	if ent.UnlimitedMessages() {
		return true, 0, 0, nil
	}

	used, err := s.quotaCounter.Used(ctx, userId.String())
	if err != nil {
		return false, s.freeDailyLimit, 0, err
	}
	return false, s.freeDailyLimit, used, nil
}
