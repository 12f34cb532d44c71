package entity

import (
	"time"

	"github.com/google/uuid"
)

// Memory Vault stores keepsakes from meaningful connections.

type VaultMatch struct {
	Id          uuid.UUID
	UserId      uuid.UUID
	MatchName   string
	MatchUserId *uuid.UUID
	Note        string
	SavedAt     time.Time
	CreatedAt   time.Time
}

type VaultPrompt struct {
	Id         uuid.UUID
	UserId     uuid.UUID
	PromptText string
	Response   string
	CreatedAt  time.Time
}

type VaultMoment struct {
	Id          uuid.UUID
	UserId      uuid.UUID
	Title       string
	Description string
	MomentDate  *time.Time
	CreatedAt   time.Time
}
