package mapper

import (
	"getunlocked-be/internal/entity"
	"getunlocked-be/internal/model"
)

type DNAMapper struct{}

func NewDNAMapper() *DNAMapper {
	return &DNAMapper{}
}

func (m *DNAMapper) ProfileToEntity(p *model.DNAProfile) *entity.DNAProfile {
	if p == nil {
		return nil
	}
	return &entity.DNAProfile{
		Id:                         p.Id,
		UserId:                     p.UserId,
		EmotionalIntelligenceScore: p.EmotionalIntelligenceScore,
		InteractionQualityScore:    p.InteractionQualityScore,
		EmpathyScore:               p.EmpathyScore,
		VulnerabilityComfort:       p.VulnerabilityComfort,
		CommunicationStyle:         jsonToMap(p.CommunicationStyle),
		EmotionalPatterns:          jsonToMap(p.EmotionalPatterns),
		PersonalityMarkers:         jsonToMap(p.PersonalityMarkers),
		LoveLanguagePrimary:        p.LoveLanguagePrimary,
		LoveLanguageSecondary:      p.LoveLanguageSecondary,
		ConflictResolutionStyle:    p.ConflictResolutionStyle,
		LastAnalysisAt:             p.LastAnalysisAt,
		CreatedAt:                  p.CreatedAt,
		UpdatedAt:                  p.UpdatedAt,
	}
}

func (m *DNAMapper) ProfileToModel(p *entity.DNAProfile) *model.DNAProfile {
	if p == nil {
		return nil
	}
	return &model.DNAProfile{
		Id:                         p.Id,
		UserId:                     p.UserId,
		EmotionalIntelligenceScore: p.EmotionalIntelligenceScore,
		InteractionQualityScore:    p.InteractionQualityScore,
		EmpathyScore:               p.EmpathyScore,
		VulnerabilityComfort:       p.VulnerabilityComfort,
		CommunicationStyle:         toJSON(p.CommunicationStyle),
		EmotionalPatterns:          toJSON(p.EmotionalPatterns),
		PersonalityMarkers:         toJSON(p.PersonalityMarkers),
		LoveLanguagePrimary:        p.LoveLanguagePrimary,
		LoveLanguageSecondary:      p.LoveLanguageSecondary,
		ConflictResolutionStyle:    p.ConflictResolutionStyle,
		LastAnalysisAt:             p.LastAnalysisAt,
		CreatedAt:                  p.CreatedAt,
		UpdatedAt:                  p.UpdatedAt,
	}
}

func (m *DNAMapper) InteractionToEntity(i *model.DNAInteraction) *entity.DNAInteraction {
	if i == nil {
		return nil
	}
	return &entity.DNAInteraction{
		Id:                  i.Id,
		UserId:              i.UserId,
		OtherUserId:         i.OtherUserId,
		InteractionType:     i.InteractionType,
		InteractionData:     jsonToMap(i.InteractionData),
		EmotionalMarkers:    jsonToStrings(i.EmotionalMarkers),
		SentimentScore:      i.SentimentScore,
		VulnerabilityLevel:  i.VulnerabilityLevel,
		EngagementScore:     i.EngagementScore,
		EmpathyIndicators:   jsonToStrings(i.EmpathyIndicators),
		ResponseTimeSeconds: i.ResponseTimeSeconds,
		MessageLength:       i.MessageLength,
		CreatedAt:           i.CreatedAt,
	}
}

func (m *DNAMapper) InteractionToModel(i *entity.DNAInteraction) *model.DNAInteraction {
	if i == nil {
		return nil
	}
	return &model.DNAInteraction{
		Id:                  i.Id,
		UserId:              i.UserId,
		OtherUserId:         i.OtherUserId,
		InteractionType:     i.InteractionType,
		InteractionData:     toJSON(i.InteractionData),
		EmotionalMarkers:    toJSON(i.EmotionalMarkers),
		SentimentScore:      i.SentimentScore,
		VulnerabilityLevel:  i.VulnerabilityLevel,
		EngagementScore:     i.EngagementScore,
		EmpathyIndicators:   toJSON(i.EmpathyIndicators),
		ResponseTimeSeconds: i.ResponseTimeSeconds,
		MessageLength:       i.MessageLength,
		CreatedAt:           i.CreatedAt,
	}
}

func (m *DNAMapper) InteractionsToEntities(items []*model.DNAInteraction) []*entity.DNAInteraction {
	entities := make([]*entity.DNAInteraction, len(items))
	for i, it := range items {
		entities[i] = m.InteractionToEntity(it)
	}
	return entities
}

func (m *DNAMapper) CompatibilityToEntity(c *model.DNACompatibility) *entity.DNACompatibility {
	if c == nil {
		return nil
	}
	return &entity.DNACompatibility{
		Id:                         c.Id,
		UserId1:                    c.UserId1,
		UserId2:                    c.UserId2,
		OverallCompatibilityScore:  c.OverallCompatibilityScore,
		EmotionalSyncScore:         c.EmotionalSyncScore,
		CommunicationCompatibility: c.CommunicationCompatibility,
		PersonalityMatchScore:      c.PersonalityMatchScore,
		SharedValuesScore:          c.SharedValuesScore,
		GrowthPotentialScore:       c.GrowthPotentialScore,
		ConflictHarmonyScore:       c.ConflictHarmonyScore,
		DetailedAnalysis:           jsonToMap(c.DetailedAnalysis),
		Strengths:                  jsonToStrings(c.Strengths),
		GrowthAreas:                jsonToStrings(c.GrowthAreas),
		ConversationStarters:       jsonToStrings(c.ConversationStarters),
		DateIdeas:                  jsonToStrings(c.DateIdeas),
		AnalysisConfidence:         c.AnalysisConfidence,
		LastAnalyzedAt:             c.LastAnalyzedAt,
		CreatedAt:                  c.CreatedAt,
		UpdatedAt:                  c.UpdatedAt,
	}
}

func (m *DNAMapper) CompatibilityToModel(c *entity.DNACompatibility) *model.DNACompatibility {
	if c == nil {
		return nil
	}
	return &model.DNACompatibility{
		Id:                         c.Id,
		UserId1:                    c.UserId1,
		UserId2:                    c.UserId2,
		OverallCompatibilityScore:  c.OverallCompatibilityScore,
		EmotionalSyncScore:         c.EmotionalSyncScore,
		CommunicationCompatibility: c.CommunicationCompatibility,
		PersonalityMatchScore:      c.PersonalityMatchScore,
		SharedValuesScore:          c.SharedValuesScore,
		GrowthPotentialScore:       c.GrowthPotentialScore,
		ConflictHarmonyScore:       c.ConflictHarmonyScore,
		DetailedAnalysis:           toJSON(c.DetailedAnalysis),
		Strengths:                  toJSON(c.Strengths),
		GrowthAreas:                toJSON(c.GrowthAreas),
		ConversationStarters:       toJSON(c.ConversationStarters),
		DateIdeas:                  toJSON(c.DateIdeas),
		AnalysisConfidence:         c.AnalysisConfidence,
		LastAnalyzedAt:             c.LastAnalyzedAt,
		CreatedAt:                  c.CreatedAt,
		UpdatedAt:                  c.UpdatedAt,
	}
}

func (m *DNAMapper) InsightToEntity(i *model.DNAInsight) *entity.DNAInsight {
	if i == nil {
		return nil
	}
	return &entity.DNAInsight{
		Id:              i.Id,
		UserId:          i.UserId,
		InsightType:     i.InsightType,
		Title:           i.Title,
		Description:     i.Description,
		ActionableSteps: jsonToStrings(i.ActionableSteps),
		PriorityLevel:   i.PriorityLevel,
		ConfidenceScore: i.ConfidenceScore,
		IsRead:          i.IsRead,
		IsDismissed:     i.IsDismissed,
		ExpiresAt:       i.ExpiresAt,
		CreatedAt:       i.CreatedAt,
	}
}

func (m *DNAMapper) InsightToModel(i *entity.DNAInsight) *model.DNAInsight {
	if i == nil {
		return nil
	}
	return &model.DNAInsight{
		Id:              i.Id,
		UserId:          i.UserId,
		InsightType:     i.InsightType,
		Title:           i.Title,
		Description:     i.Description,
		ActionableSteps: toJSON(i.ActionableSteps),
		PriorityLevel:   i.PriorityLevel,
		ConfidenceScore: i.ConfidenceScore,
		IsRead:          i.IsRead,
		IsDismissed:     i.IsDismissed,
		ExpiresAt:       i.ExpiresAt,
		CreatedAt:       i.CreatedAt,
	}
}

func (m *DNAMapper) InsightsToEntities(items []*model.DNAInsight) []*entity.DNAInsight {
	entities := make([]*entity.DNAInsight, len(items))
	for i, it := range items {
		entities[i] = m.InsightToEntity(it)
	}
	return entities
}
