package dto

import (
	"time"

	"github.com/google/uuid"

	"getunlocked-be/internal/entity"
)

type MatchResponse struct {
	Id                     uuid.UUID          `json:"id"`
	MatchedUserId          uuid.UUID          `json:"matched_user_id"`
	Name                   string             `json:"name"`
	Age                    int                `json:"age"`
	CompatibilityScore     float64            `json:"compatibility_score"`
	Explanation            string             `json:"explanation"`
	CompatibilityBreakdown map[string]float64 `json:"compatibility_breakdown"`
	Strengths              []string           `json:"strengths"`
	PotentialChallenges    []string           `json:"potential_challenges"`
	SharedInterests        []string           `json:"shared_interests"`
	ConversationStarters   []string           `json:"conversation_starters"`
	RelationshipPrediction string             `json:"relationship_prediction"`
	QuizBoostApplied       bool               `json:"quiz_boost_applied"`
	Status                 string             `json:"status"`
	CreatedAt              time.Time          `json:"created_at"`
}

type GenerateMatchesResponse struct {
	Matches []MatchResponse `json:"matches"`
}

type ReactToMatchRequest struct {
	Action string `json:"action" validate:"required,oneof=like pass"`
}

func MatchResponseFrom(m *entity.Match, name string, age int) MatchResponse {
	return MatchResponse{
		Id:                     m.Id,
		MatchedUserId:          m.MatchedUserId,
		Name:                   name,
		Age:                    age,
		CompatibilityScore:     m.CompatibilityScore,
		Explanation:            m.Explanation,
		CompatibilityBreakdown: m.CompatibilityBreakdown,
		Strengths:              m.Strengths,
		PotentialChallenges:    m.PotentialChallenges,
		SharedInterests:        m.SharedInterests,
		ConversationStarters:   m.ConversationStarters,
		RelationshipPrediction: m.RelationshipPrediction,
		QuizBoostApplied:       m.QuizBoostApplied,
		Status:                 string(m.Status),
		CreatedAt:              m.CreatedAt,
	}
}
