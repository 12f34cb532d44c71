package dto

import (
	"time"

	"github.com/google/uuid"

	"getunlocked-be/internal/entity"
	"getunlocked-be/pkg/dna"
)

type AnalyzeCompatibilityRequest struct {
	TargetUserId uuid.UUID `json:"target_user_id" validate:"required"`
}

type RecordInteractionRequest struct {
	InteractionType     string                 `json:"interaction_type" validate:"required"`
	OtherUserId         *uuid.UUID             `json:"other_user_id"`
	InteractionData     map[string]interface{} `json:"interaction_data"`
	MessageLength       int                    `json:"message_length"`
	ResponseTimeSeconds *int                   `json:"response_time_seconds"`
}

type DNAProfileResponse struct {
	UserId                     uuid.UUID              `json:"user_id"`
	EmotionalIntelligenceScore float64                `json:"emotional_intelligence_score"`
	InteractionQualityScore    float64                `json:"interaction_quality_score"`
	EmpathyScore               float64                `json:"empathy_score"`
	VulnerabilityComfort       float64                `json:"vulnerability_comfort"`
	CommunicationStyle         map[string]interface{} `json:"communication_style"`
	EmotionalPatterns          map[string]interface{} `json:"emotional_patterns"`
	PersonalityMarkers         map[string]interface{} `json:"personality_markers"`
	LoveLanguagePrimary        string                 `json:"love_language_primary"`
	LoveLanguageSecondary      string                 `json:"love_language_secondary"`
	ConflictResolutionStyle    string                 `json:"conflict_resolution_style"`
	LastAnalysisAt             *time.Time             `json:"last_analysis_at"`
}

type CompatibilityResponse struct {
	UserId1                    uuid.UUID              `json:"user_id_1"`
	UserId2                    uuid.UUID              `json:"user_id_2"`
	OverallCompatibilityScore  float64                `json:"overall_compatibility_score"`
	EmotionalSyncScore         float64                `json:"emotional_sync_score"`
	CommunicationCompatibility float64                `json:"communication_compatibility"`
	PersonalityMatchScore      float64                `json:"personality_match_score"`
	SharedValuesScore          float64                `json:"shared_values_score"`
	GrowthPotentialScore       float64                `json:"growth_potential_score"`
	ConflictHarmonyScore       float64                `json:"conflict_harmony_score"`
	DetailedAnalysis           map[string]interface{} `json:"detailed_analysis"`
	Strengths                  []string               `json:"strengths"`
	GrowthAreas                []string               `json:"growth_areas"`
	ConversationStarters       []string               `json:"conversation_starters"`
	DateIdeas                  []string               `json:"date_ideas"`
	AnalysisConfidence         float64                `json:"analysis_confidence"`
	LastAnalyzedAt             *time.Time             `json:"last_analyzed_at"`
}

type InsightResponse struct {
	Id              uuid.UUID  `json:"id"`
	InsightType     string     `json:"insight_type"`
	Title           string     `json:"title"`
	Description     string     `json:"description"`
	ActionableSteps []string   `json:"actionable_steps"`
	PriorityLevel   string     `json:"priority_level"`
	ConfidenceScore float64    `json:"confidence_score"`
	IsRead          bool       `json:"is_read"`
	ExpiresAt       *time.Time `json:"expires_at"`
	CreatedAt       time.Time  `json:"created_at"`
}

type GenerateInsightsResponse struct {
	Insights []InsightResponse `json:"insights"`
}

// AnalysisErrorBody is the error payload shape the analysis endpoints
// return, carrying the failure kind alongside the message.
type AnalysisErrorBody struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

func AnalysisErrorBodyFrom(err *dna.AnalysisError) AnalysisErrorBody {
	return AnalysisErrorBody{
		Kind:    err.Kind.String(),
		Message: err.Error(),
	}
}

func DNAProfileResponseFrom(p *entity.DNAProfile) *DNAProfileResponse {
	return &DNAProfileResponse{
		UserId:                     p.UserId,
		EmotionalIntelligenceScore: p.EmotionalIntelligenceScore,
		InteractionQualityScore:    p.InteractionQualityScore,
		EmpathyScore:               p.EmpathyScore,
		VulnerabilityComfort:       p.VulnerabilityComfort,
		CommunicationStyle:         p.CommunicationStyle,
		EmotionalPatterns:          p.EmotionalPatterns,
		PersonalityMarkers:         p.PersonalityMarkers,
		LoveLanguagePrimary:        p.LoveLanguagePrimary,
		LoveLanguageSecondary:      p.LoveLanguageSecondary,
		ConflictResolutionStyle:    p.ConflictResolutionStyle,
		LastAnalysisAt:             p.LastAnalysisAt,
	}
}

func CompatibilityResponseFrom(c *entity.DNACompatibility) *CompatibilityResponse {
	return &CompatibilityResponse{
		UserId1:                    c.UserId1,
		UserId2:                    c.UserId2,
		OverallCompatibilityScore:  c.OverallCompatibilityScore,
		EmotionalSyncScore:         c.EmotionalSyncScore,
		CommunicationCompatibility: c.CommunicationCompatibility,
		PersonalityMatchScore:      c.PersonalityMatchScore,
		SharedValuesScore:          c.SharedValuesScore,
		GrowthPotentialScore:       c.GrowthPotentialScore,
		ConflictHarmonyScore:       c.ConflictHarmonyScore,
		DetailedAnalysis:           c.DetailedAnalysis,
		Strengths:                  c.Strengths,
		GrowthAreas:                c.GrowthAreas,
		ConversationStarters:       c.ConversationStarters,
		DateIdeas:                  c.DateIdeas,
		AnalysisConfidence:         c.AnalysisConfidence,
		LastAnalyzedAt:             c.LastAnalyzedAt,
	}
}

func InsightResponseFrom(i *entity.DNAInsight) InsightResponse {
	return InsightResponse{
		Id:              i.Id,
		InsightType:     i.InsightType,
		Title:           i.Title,
		Description:     i.Description,
		ActionableSteps: i.ActionableSteps,
		PriorityLevel:   i.PriorityLevel,
		ConfidenceScore: i.ConfidenceScore,
		IsRead:          i.IsRead,
		ExpiresAt:       i.ExpiresAt,
		CreatedAt:       i.CreatedAt,
	}
}

func InsightResponsesFrom(insights []*entity.DNAInsight) []InsightResponse {
	out := make([]InsightResponse, 0, len(insights))
	for _, i := range insights {
		out = append(out, InsightResponseFrom(i))
	}
	return out
}
