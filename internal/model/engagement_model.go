package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type UserEvent struct {
	Id        uuid.UUID      `gorm:"type:uuid;primaryKey"`
	UserId    uuid.UUID      `gorm:"type:uuid;not null;index:idx_user_events_user_created,priority:1"`
	EventType string         `gorm:"type:varchar(50);not null;index"`
	EventData datatypes.JSON `gorm:"type:jsonb"`
	CreatedAt time.Time      `gorm:"autoCreateTime;index:idx_user_events_user_created,priority:2"`
}

func (UserEvent) TableName() string {
	return "user_events"
}

type EmailJourney struct {
	Id          uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserId      uuid.UUID `gorm:"type:uuid;not null;index:idx_email_journeys_user_type,priority:1"`
	JourneyType string    `gorm:"type:varchar(50);not null;index:idx_email_journeys_user_type,priority:2"`
	EmailSentAt time.Time `gorm:"not null"`
	CreatedAt   time.Time `gorm:"autoCreateTime"`
}

func (EmailJourney) TableName() string {
	return "email_journeys"
}

type CompatibilityDigest struct {
	Id         uuid.UUID      `gorm:"type:uuid;primaryKey"`
	UserId     uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex:idx_digests_user_date,priority:1"`
	DigestDate time.Time      `gorm:"type:date;not null;uniqueIndex:idx_digests_user_date,priority:2"`
	Greeting   string         `gorm:"type:text"`
	Insights   datatypes.JSON `gorm:"type:jsonb"`
	Starters   datatypes.JSON `gorm:"type:jsonb"`
	Motivation string         `gorm:"type:text"`
	CreatedAt  time.Time      `gorm:"autoCreateTime"`
}

func (CompatibilityDigest) TableName() string {
	return "compatibility_digests"
}
