package entity

import (
	"time"

	"github.com/google/uuid"
)

type MatchStatus string

const (
	MatchStatusSuggested MatchStatus = "suggested"
	MatchStatusLiked     MatchStatus = "liked"
	MatchStatusPassed    MatchStatus = "passed"
	MatchStatusMutual    MatchStatus = "mutual"
)

// Match is one AI-scored candidate suggestion for a user.
type Match struct {
	Id                     uuid.UUID
	UserId                 uuid.UUID
	MatchedUserId          uuid.UUID
	CompatibilityScore     float64
	Explanation            string
	CompatibilityBreakdown map[string]float64
	Strengths              []string
	PotentialChallenges    []string
	SharedInterests        []string
	ConversationStarters   []string
	RelationshipPrediction string
	QuizBoostApplied       bool
	Status                 MatchStatus
	CreatedAt              time.Time
	UpdatedAt              time.Time
}

// Message is one chat message between matched users. Free-tier sends are
// quota limited per day.
type Message struct {
	Id          uuid.UUID
	SenderId    uuid.UUID
	RecipientId uuid.UUID
	MatchId     *uuid.UUID
	Content     string
	ReadAt      *time.Time
	CreatedAt   time.Time
}
