package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type Profile struct {
	Id                         uuid.UUID      `gorm:"type:uuid;primaryKey"`
	UserId                     uuid.UUID      `gorm:"type:uuid;uniqueIndex;not null"`
	Name                       string         `gorm:"type:varchar(255)"`
	Age                        int            `gorm:"default:0"`
	Bio                        string         `gorm:"type:text"`
	Location                   string         `gorm:"type:varchar(255)"`
	Occupation                 string         `gorm:"type:varchar(255)"`
	Education                  string         `gorm:"type:varchar(255)"`
	Interests                  datatypes.JSON `gorm:"type:jsonb"`
	QuizResults                datatypes.JSON `gorm:"type:jsonb"`
	QuizCompleted              bool           `gorm:"default:false"`
	UnlockedBeyondBadgeEnabled bool           `gorm:"default:false"`
	VideoChatEnabled           bool           `gorm:"default:false"`
	LastOnline                 *time.Time     `gorm:"index"`
	CreatedAt                  time.Time      `gorm:"autoCreateTime"`
	UpdatedAt                  time.Time      `gorm:"autoUpdateTime"`
}

func (Profile) TableName() string {
	return "profiles"
}
