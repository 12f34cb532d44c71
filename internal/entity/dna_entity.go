package entity

import (
	"time"

	"github.com/google/uuid"
)

// DNAProfile holds the per-user emotional intelligence scores produced by
// profile analysis. One row per user, overwritten on every re-analysis.
type DNAProfile struct {
	Id                         uuid.UUID
	UserId                     uuid.UUID
	EmotionalIntelligenceScore float64
	InteractionQualityScore    float64
	EmpathyScore               float64
	VulnerabilityComfort       float64
	CommunicationStyle         map[string]interface{}
	EmotionalPatterns          map[string]interface{}
	PersonalityMarkers         map[string]interface{}
	LoveLanguagePrimary        string
	LoveLanguageSecondary      string
	ConflictResolutionStyle    string
	LastAnalysisAt             *time.Time
	CreatedAt                  time.Time
	UpdatedAt                  time.Time
}

// DNAInteraction is one analyzed interaction. Append-only: every analysis
// inserts a new row, fallback scores included.
type DNAInteraction struct {
	Id                  uuid.UUID
	UserId              uuid.UUID
	OtherUserId         *uuid.UUID
	InteractionType     string
	InteractionData     map[string]interface{}
	EmotionalMarkers    []string
	SentimentScore      float64
	VulnerabilityLevel  float64
	EngagementScore     float64
	EmpathyIndicators   []string
	ResponseTimeSeconds *int
	MessageLength       int
	CreatedAt           time.Time
}

// DNACompatibility scores one user pair. The pair is not canonicalized in
// storage, so lookups must check both column orderings.
type DNACompatibility struct {
	Id                         uuid.UUID
	UserId1                    uuid.UUID
	UserId2                    uuid.UUID
	OverallCompatibilityScore  float64
	EmotionalSyncScore         float64
	CommunicationCompatibility float64
	PersonalityMatchScore      float64
	SharedValuesScore          float64
	GrowthPotentialScore       float64
	ConflictHarmonyScore       float64
	DetailedAnalysis           map[string]interface{}
	Strengths                  []string
	GrowthAreas                []string
	ConversationStarters       []string
	DateIdeas                  []string
	AnalysisConfidence         float64
	LastAnalyzedAt             *time.Time
	CreatedAt                  time.Time
	UpdatedAt                  time.Time
}

// DNAInsight is one coaching recommendation. Append-only with a fixed
// expiry; repeated generation accumulates rows until they expire.
type DNAInsight struct {
	Id              uuid.UUID
	UserId          uuid.UUID
	InsightType     string
	Title           string
	Description     string
	ActionableSteps []string
	PriorityLevel   string
	ConfidenceScore float64
	IsRead          bool
	IsDismissed     bool
	ExpiresAt       *time.Time
	CreatedAt       time.Time
}
