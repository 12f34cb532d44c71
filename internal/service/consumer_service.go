package service

import (
	"context"
	"encoding/json"
	"log"

	"getunlocked-be/internal/dto"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

// consumerService drains the in-process interaction-analysis topic and
// hands each message to the orchestrator. Failures are logged, never
// retried: the pipeline is fire-and-forget by contract.
type consumerService struct {
	pubSub     *gochannel.GoChannel
	topicName  string
	dnaService IDNAService
}

func NewConsumerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	dnaService IDNAService,
) IConsumerService {
	return &consumerService{
		pubSub:     pubSub,
		topicName:  topicName,
		dnaService: dnaService,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(ctx, msg)
		}
	}()

	return nil
}

func (cs *consumerService) processMessage(ctx context.Context, msg *message.Message) {
	var payload dto.AnalyzeInteractionMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		log.Printf("[ERROR] Failed to unmarshal interaction message: %v", err)
		msg.Ack() // Ack invalid messages to prevent infinite retry
		return
	}

	log.Printf("[INFO] Processing interaction analysis for user %s (%s)", payload.UserId, payload.InteractionType)

	_, err := cs.dnaService.AnalyzeInteraction(ctx, payload.UserId, InteractionDescriptor{
		Type:                payload.InteractionType,
		OtherUserId:         payload.OtherUserId,
		Data:                payload.InteractionData,
		MessageLength:       payload.MessageLength,
		ResponseTimeSeconds: payload.ResponseTimeSeconds,
	})
	if err != nil {
		log.Printf("[ERROR] Interaction analysis failed for user %s: %v", payload.UserId, err)
	}

	msg.Ack()
}
