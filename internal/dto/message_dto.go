package dto

import (
	"time"

	"github.com/google/uuid"

	"getunlocked-be/internal/entity"
)

type SendMessageRequest struct {
	RecipientId uuid.UUID  `json:"recipient_id" validate:"required"`
	MatchId     *uuid.UUID `json:"match_id"`
	Content     string     `json:"content" validate:"required,max=4000"`
}

type MessageResponse struct {
	Id          uuid.UUID  `json:"id"`
	SenderId    uuid.UUID  `json:"sender_id"`
	RecipientId uuid.UUID  `json:"recipient_id"`
	MatchId     *uuid.UUID `json:"match_id,omitempty"`
	Content     string     `json:"content"`
	ReadAt      *time.Time `json:"read_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

type MessageLimitsResponse struct {
	Unlimited bool  `json:"unlimited"`
	Limit     int64 `json:"limit"`
	Used      int64 `json:"used"`
	Remaining int64 `json:"remaining"`
}

func MessageResponseFrom(m *entity.Message) MessageResponse {
	return MessageResponse{
		Id:          m.Id,
		SenderId:    m.SenderId,
		RecipientId: m.RecipientId,
		MatchId:     m.MatchId,
		Content:     m.Content,
		ReadAt:      m.ReadAt,
		CreatedAt:   m.CreatedAt,
	}
}
