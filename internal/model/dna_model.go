package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type DNAProfile struct {
	Id                         uuid.UUID      `gorm:"type:uuid;primaryKey"`
	UserId                     uuid.UUID      `gorm:"type:uuid;uniqueIndex;not null"`
	EmotionalIntelligenceScore float64        `gorm:"type:decimal(5,2);default:0"`
	InteractionQualityScore    float64        `gorm:"type:decimal(5,2);default:0"`
	EmpathyScore               float64        `gorm:"type:decimal(5,2);default:0"`
	VulnerabilityComfort       float64        `gorm:"type:decimal(5,2);default:0"`
	CommunicationStyle         datatypes.JSON `gorm:"type:jsonb"`
	EmotionalPatterns          datatypes.JSON `gorm:"type:jsonb"`
	PersonalityMarkers         datatypes.JSON `gorm:"type:jsonb"`
	LoveLanguagePrimary        string         `gorm:"type:varchar(100)"`
	LoveLanguageSecondary      string         `gorm:"type:varchar(100)"`
	ConflictResolutionStyle    string         `gorm:"type:varchar(100)"`
	LastAnalysisAt             *time.Time
	CreatedAt                  time.Time `gorm:"autoCreateTime"`
	UpdatedAt                  time.Time `gorm:"autoUpdateTime"`
}

func (DNAProfile) TableName() string {
	return "connection_dna_profiles"
}

type DNAInteraction struct {
	Id                  uuid.UUID      `gorm:"type:uuid;primaryKey"`
	UserId              uuid.UUID      `gorm:"type:uuid;not null;index"`
	OtherUserId         *uuid.UUID     `gorm:"type:uuid;index"`
	InteractionType     string         `gorm:"type:varchar(50);not null"`
	InteractionData     datatypes.JSON `gorm:"type:jsonb"`
	EmotionalMarkers    datatypes.JSON `gorm:"type:jsonb"`
	SentimentScore      float64        `gorm:"type:decimal(4,3);default:0"`
	VulnerabilityLevel  float64        `gorm:"type:decimal(4,3);default:0"`
	EngagementScore     float64        `gorm:"type:decimal(4,3);default:0"`
	EmpathyIndicators   datatypes.JSON `gorm:"type:jsonb"`
	ResponseTimeSeconds *int
	MessageLength       int       `gorm:"default:0"`
	CreatedAt           time.Time `gorm:"autoCreateTime;index"`
}

func (DNAInteraction) TableName() string {
	return "connection_dna_interactions"
}

type DNACompatibility struct {
	Id                         uuid.UUID      `gorm:"type:uuid;primaryKey"`
	UserId1                    uuid.UUID      `gorm:"column:user_id_1;type:uuid;not null;uniqueIndex:idx_dna_compat_pair,priority:1"`
	UserId2                    uuid.UUID      `gorm:"column:user_id_2;type:uuid;not null;uniqueIndex:idx_dna_compat_pair,priority:2"`
	OverallCompatibilityScore  float64        `gorm:"type:decimal(5,2);default:0"`
	EmotionalSyncScore         float64        `gorm:"type:decimal(5,2);default:0"`
	CommunicationCompatibility float64        `gorm:"type:decimal(5,2);default:0"`
	PersonalityMatchScore      float64        `gorm:"type:decimal(5,2);default:0"`
	SharedValuesScore          float64        `gorm:"type:decimal(5,2);default:0"`
	GrowthPotentialScore       float64        `gorm:"type:decimal(5,2);default:0"`
	ConflictHarmonyScore       float64        `gorm:"type:decimal(5,2);default:0"`
	DetailedAnalysis           datatypes.JSON `gorm:"type:jsonb"`
	Strengths                  datatypes.JSON `gorm:"type:jsonb"`
	GrowthAreas                datatypes.JSON `gorm:"type:jsonb"`
	ConversationStarters       datatypes.JSON `gorm:"type:jsonb"`
	DateIdeas                  datatypes.JSON `gorm:"type:jsonb"`
	AnalysisConfidence         float64        `gorm:"type:decimal(4,3);default:0"`
	LastAnalyzedAt             *time.Time
	CreatedAt                  time.Time `gorm:"autoCreateTime"`
	UpdatedAt                  time.Time `gorm:"autoUpdateTime"`
}

func (DNACompatibility) TableName() string {
	return "connection_dna_compatibility"
}

type DNAInsight struct {
	Id              uuid.UUID      `gorm:"type:uuid;primaryKey"`
	UserId          uuid.UUID      `gorm:"type:uuid;not null;index"`
	InsightType     string         `gorm:"type:varchar(50);not null"`
	Title           string         `gorm:"type:varchar(255);not null"`
	Description     string         `gorm:"type:text"`
	ActionableSteps datatypes.JSON `gorm:"type:jsonb"`
	PriorityLevel   string         `gorm:"type:varchar(20);default:'medium'"`
	ConfidenceScore float64        `gorm:"type:decimal(4,3);default:0"`
	IsRead          bool           `gorm:"default:false"`
	IsDismissed     bool           `gorm:"default:false"`
	ExpiresAt       *time.Time     `gorm:"index"`
	CreatedAt       time.Time      `gorm:"autoCreateTime"`
}

func (DNAInsight) TableName() string {
	return "connection_dna_insights"
}
