package entity

import (
	"time"

	"github.com/google/uuid"
)

// Profile is the dating profile, created lazily on first access.
type Profile struct {
	Id         uuid.UUID
	UserId     uuid.UUID
	Name       string
	Age        int
	Bio        string
	Location   string
	Occupation string
	Education  string
	Interests  []string

	// Quiz results drive both AI matching and the compatibility boost.
	QuizResults   map[string]interface{}
	QuizCompleted bool

	// Premium feature flags, reconciled asynchronously by payment webhooks.
	UnlockedBeyondBadgeEnabled bool
	VideoChatEnabled           bool

	LastOnline *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}
