package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type Match struct {
	Id                     uuid.UUID      `gorm:"type:uuid;primaryKey"`
	UserId                 uuid.UUID      `gorm:"type:uuid;not null;index"`
	MatchedUserId          uuid.UUID      `gorm:"type:uuid;not null;index"`
	CompatibilityScore     float64        `gorm:"type:decimal(5,2);default:0"`
	Explanation            string         `gorm:"type:text"`
	CompatibilityBreakdown datatypes.JSON `gorm:"type:jsonb"`
	Strengths              datatypes.JSON `gorm:"type:jsonb"`
	PotentialChallenges    datatypes.JSON `gorm:"type:jsonb"`
	SharedInterests        datatypes.JSON `gorm:"type:jsonb"`
	ConversationStarters   datatypes.JSON `gorm:"type:jsonb"`
	RelationshipPrediction string         `gorm:"type:text"`
	QuizBoostApplied       bool           `gorm:"default:false"`
	Status                 string         `gorm:"type:varchar(20);not null;default:'suggested'"`
	CreatedAt              time.Time      `gorm:"autoCreateTime"`
	UpdatedAt              time.Time      `gorm:"autoUpdateTime"`
}

func (Match) TableName() string {
	return "matches"
}

type Message struct {
	Id          uuid.UUID  `gorm:"type:uuid;primaryKey"`
	SenderId    uuid.UUID  `gorm:"type:uuid;not null;index:idx_messages_sender_created,priority:1"`
	RecipientId uuid.UUID  `gorm:"type:uuid;not null;index"`
	MatchId     *uuid.UUID `gorm:"type:uuid;index"`
	Content     string     `gorm:"type:text;not null"`
	ReadAt      *time.Time
	CreatedAt   time.Time `gorm:"autoCreateTime;index:idx_messages_sender_created,priority:2"`
}

func (Message) TableName() string {
	return "messages"
}
