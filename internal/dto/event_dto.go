package dto

import (
	"time"

	"github.com/google/uuid"

	"getunlocked-be/internal/entity"
)

type TrackEventRequest struct {
	EventType string                 `json:"event_type" validate:"required"`
	EventData map[string]interface{} `json:"event_data"`
}

type UserEventResponse struct {
	Id        uuid.UUID              `json:"id"`
	EventType string                 `json:"event_type"`
	EventData map[string]interface{} `json:"event_data"`
	CreatedAt time.Time              `json:"created_at"`
}

type ProcessJourneysResponse struct {
	Processed int `json:"processed"`
	Sent      int `json:"sent"`
}

func UserEventResponseFrom(e *entity.UserEvent) UserEventResponse {
	return UserEventResponse{
		Id:        e.Id,
		EventType: e.EventType,
		EventData: e.EventData,
		CreatedAt: e.CreatedAt,
	}
}
