package model

import (
	"time"

	"github.com/google/uuid"
)

type VaultMatch struct {
	Id          uuid.UUID  `gorm:"type:uuid;primaryKey"`
	UserId      uuid.UUID  `gorm:"type:uuid;not null;index"`
	MatchName   string     `gorm:"type:varchar(255);not null"`
	MatchUserId *uuid.UUID `gorm:"type:uuid"`
	Note        string     `gorm:"type:text"`
	SavedAt     time.Time  `gorm:"not null"`
	CreatedAt   time.Time  `gorm:"autoCreateTime"`
}

func (VaultMatch) TableName() string {
	return "memory_vault_matches"
}

type VaultPrompt struct {
	Id         uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserId     uuid.UUID `gorm:"type:uuid;not null;index"`
	PromptText string    `gorm:"type:text;not null"`
	Response   string    `gorm:"type:text"`
	CreatedAt  time.Time `gorm:"autoCreateTime"`
}

func (VaultPrompt) TableName() string {
	return "memory_vault_prompts"
}

type VaultMoment struct {
	Id          uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserId      uuid.UUID `gorm:"type:uuid;not null;index"`
	Title       string    `gorm:"type:varchar(255);not null"`
	Description string    `gorm:"type:text"`
	MomentDate  *time.Time
	CreatedAt   time.Time `gorm:"autoCreateTime"`
}

func (VaultMoment) TableName() string {
	return "memory_vault_moments"
}
