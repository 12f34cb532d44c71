package service

import (
	"context"
	"encoding/json"
	"fmt"

	"getunlocked-be/internal/dto"
	"getunlocked-be/internal/pkg/logger"

	"github.com/google/uuid"
)

// InteractionDescriptor describes one analyzable interaction.
type InteractionDescriptor struct {
	Type                string
	OtherUserId         *uuid.UUID
	Data                map[string]interface{}
	MessageLength       int
	ResponseTimeSeconds *int
}

// IRecorderService is the fire-and-forget entry into the analysis
// pipeline. Record returns nil regardless of downstream outcome; the
// consumer service picks the message up asynchronously.
type IRecorderService interface {
	Record(ctx context.Context, userId uuid.UUID, descriptor InteractionDescriptor) error

	RecordMessage(ctx context.Context, userId uuid.UUID, otherUserId *uuid.UUID, messageLength int, responseTimeSeconds *int) error
	RecordProfileView(ctx context.Context, userId uuid.UUID, viewedUserId uuid.UUID) error
	RecordMatchReaction(ctx context.Context, userId uuid.UUID, matchedUserId uuid.UUID, reaction string) error
	RecordQuizResponse(ctx context.Context, userId uuid.UUID, question string, answer interface{}) error
}

type recorderService struct {
	entitlementService IEntitlementService
	publisherService   IPublisherService
	logger             logger.ILogger
}

func NewRecorderService(
	entitlementService IEntitlementService,
	publisherService IPublisherService,
	sysLogger logger.ILogger,
) IRecorderService {
	return &recorderService{
		entitlementService: entitlementService,
		publisherService:   publisherService,
		logger:             sysLogger,
	}
}

func (s *recorderService) Record(ctx context.Context, userId uuid.UUID, descriptor InteractionDescriptor) error {
	if descriptor.Type == "" {
		return fmt.Errorf("interaction type is required")
	}

	// Analysis is a premium pipeline; free users' interactions are not queued.
	ent := s.entitlementService.Resolve(ctx, userId)
	if !ent.CanUseDNA() {
		return nil
	}

	payload := dto.AnalyzeInteractionMessage{
		UserId:              userId,
		InteractionType:     descriptor.Type,
		OtherUserId:         descriptor.OtherUserId,
		InteractionData:     descriptor.Data,
		MessageLength:       descriptor.MessageLength,
		ResponseTimeSeconds: descriptor.ResponseTimeSeconds,
	}

	payloadJson, err := json.Marshal(payload)
	if err != nil {
		s.logger.Error("recorder", "Failed to marshal interaction payload", map[string]interface{}{
			"user_id": userId,
			"error":   err.Error(),
		})
		return nil
	}

	if err := s.publisherService.Publish(ctx, payloadJson); err != nil {
		s.logger.Warn("recorder", "Failed to queue interaction analysis", map[string]interface{}{
			"user_id": userId,
			"type":    descriptor.Type,
			"error":   err.Error(),
		})
	}
	return nil
}

func (s *recorderService) RecordMessage(ctx context.Context, userId uuid.UUID, otherUserId *uuid.UUID, messageLength int, responseTimeSeconds *int) error {
	return s.Record(ctx, userId, InteractionDescriptor{
		Type:                "message",
		OtherUserId:         otherUserId,
		MessageLength:       messageLength,
		ResponseTimeSeconds: responseTimeSeconds,
	})
}

func (s *recorderService) RecordProfileView(ctx context.Context, userId uuid.UUID, viewedUserId uuid.UUID) error {
	return s.Record(ctx, userId, InteractionDescriptor{
		Type:        "profile_view",
		OtherUserId: &viewedUserId,
	})
}

func (s *recorderService) RecordMatchReaction(ctx context.Context, userId uuid.UUID, matchedUserId uuid.UUID, reaction string) error {
	return s.Record(ctx, userId, InteractionDescriptor{
		Type:        "match_reaction",
		OtherUserId: &matchedUserId,
		Data:        map[string]interface{}{"reaction": reaction},
	})
}

func (s *recorderService) RecordQuizResponse(ctx context.Context, userId uuid.UUID, question string, answer interface{}) error {
	return s.Record(ctx, userId, InteractionDescriptor{
		Type: "quiz_response",
		Data: map[string]interface{}{"question": question, "answer": answer},
	})
}
