package dto

import (
	"time"

	"github.com/google/uuid"

	"getunlocked-be/internal/entity"
)

type SaveVaultMatchRequest struct {
	MatchName   string     `json:"match_name" validate:"required"`
	MatchUserId *uuid.UUID `json:"match_user_id"`
	Note        string     `json:"note"`
}

type VaultMatchResponse struct {
	Id          uuid.UUID  `json:"id"`
	MatchName   string     `json:"match_name"`
	MatchUserId *uuid.UUID `json:"match_user_id,omitempty"`
	Note        string     `json:"note"`
	SavedAt     time.Time  `json:"saved_at"`
}

type SaveVaultPromptRequest struct {
	PromptText string `json:"prompt_text" validate:"required"`
	Response   string `json:"response" validate:"required"`
}

type VaultPromptResponse struct {
	Id         uuid.UUID `json:"id"`
	PromptText string    `json:"prompt_text"`
	Response   string    `json:"response"`
	CreatedAt  time.Time `json:"created_at"`
}

type SaveVaultMomentRequest struct {
	Title       string     `json:"title" validate:"required"`
	Description string     `json:"description"`
	MomentDate  *time.Time `json:"moment_date"`
}

type VaultMomentResponse struct {
	Id          uuid.UUID  `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	MomentDate  *time.Time `json:"moment_date,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

type VaultCountsResponse struct {
	Matches int64 `json:"matches"`
	Prompts int64 `json:"prompts"`
	Moments int64 `json:"moments"`
}

func VaultMatchResponseFrom(v *entity.VaultMatch) VaultMatchResponse {
	return VaultMatchResponse{
		Id:          v.Id,
		MatchName:   v.MatchName,
		MatchUserId: v.MatchUserId,
		Note:        v.Note,
		SavedAt:     v.SavedAt,
	}
}

func VaultPromptResponseFrom(v *entity.VaultPrompt) VaultPromptResponse {
	return VaultPromptResponse{
		Id:         v.Id,
		PromptText: v.PromptText,
		Response:   v.Response,
		CreatedAt:  v.CreatedAt,
	}
}

func VaultMomentResponseFrom(v *entity.VaultMoment) VaultMomentResponse {
	return VaultMomentResponse{
		Id:          v.Id,
		Title:       v.Title,
		Description: v.Description,
		MomentDate:  v.MomentDate,
		CreatedAt:   v.CreatedAt,
	}
}
