package entity

import (
	"time"

	"github.com/google/uuid"
)

// Interaction event types accepted by the recorder.
const (
	EventMessageSent   = "message_sent"
	EventProfileViewed = "profile_viewed"
	EventMatchReaction = "match_reaction"
	EventQuizAnswered  = "quiz_answered"
	EventQuizCompleted = "quiz_completed"
	EventLogin         = "login"
	EventSignup        = "signup"
)

// UserEvent is a raw engagement event, recorded best-effort.
type UserEvent struct {
	Id        uuid.UUID
	UserId    uuid.UUID
	EventType string
	EventData map[string]interface{}
	CreatedAt time.Time
}

// Email journey types.
const (
	JourneyWelcome            = "welcome"
	JourneyQuizCompleted      = "quiz_completed"
	JourneyMatchVelocitySlow  = "match_velocity_slow"
	JourneySubscriptionThanks = "subscription_thanks"
)

// EmailJourney records one journey email sent to a user, used to avoid
// re-sending the same journey step.
type EmailJourney struct {
	Id          uuid.UUID
	UserId      uuid.UUID
	JourneyType string
	EmailSentAt time.Time
	CreatedAt   time.Time
}

// CompatibilityDigest is the persisted daily AI digest for a user.
type CompatibilityDigest struct {
	Id         uuid.UUID
	UserId     uuid.UUID
	DigestDate time.Time
	Greeting   string
	Insights   []string
	Starters   []DigestStarter
	Motivation string
	CreatedAt  time.Time
}

type DigestStarter struct {
	MatchId string `json:"matchId"`
	Name    string `json:"name"`
	Starter string `json:"starter"`
}
