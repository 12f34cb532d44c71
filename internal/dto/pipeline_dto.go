package dto

import "github.com/google/uuid"

// AnalyzeInteractionMessage is the payload published on the in-process
// interaction-analysis topic.
type AnalyzeInteractionMessage struct {
	UserId              uuid.UUID              `json:"user_id"`
	InteractionType     string                 `json:"interaction_type"`
	OtherUserId         *uuid.UUID             `json:"other_user_id,omitempty"`
	InteractionData     map[string]interface{} `json:"interaction_data,omitempty"`
	MessageLength       int                    `json:"message_length,omitempty"`
	ResponseTimeSeconds *int                   `json:"response_time_seconds,omitempty"`
}
