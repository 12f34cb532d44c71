package service

import (
	"context"
	"fmt"
	"time"

	"getunlocked-be/internal/entity"
	"getunlocked-be/internal/pkg/logger"
	"getunlocked-be/internal/repository/specification"
	"getunlocked-be/internal/repository/unitofwork"
	"getunlocked-be/pkg/dna"
	"getunlocked-be/pkg/events"
	"getunlocked-be/pkg/llm"
	pktNats "getunlocked-be/pkg/nats"

	"github.com/google/uuid"
)

const (
	profileAnalysisInteractions  = 50
	insightsAnalysisInteractions = 20
	insightExpiryDays            = 30
	insightConfidence            = 0.8
)

// IDNAService orchestrates every compatibility analysis. All four write
// operations gate on entitlement before any model call, and persist
// fallback content when the model answer cannot be parsed.
type IDNAService interface {
	AnalyzeProfile(ctx context.Context, userId uuid.UUID) (*entity.DNAProfile, error)
	AnalyzeInteraction(ctx context.Context, userId uuid.UUID, descriptor InteractionDescriptor) (*entity.DNAInteraction, error)
	AnalyzeCompatibility(ctx context.Context, userId, targetId uuid.UUID) (*entity.DNACompatibility, error)
	GenerateInsights(ctx context.Context, userId uuid.UUID) ([]*entity.DNAInsight, error)

	GetProfile(ctx context.Context, userId uuid.UUID) (*entity.DNAProfile, error)
	GetCompatibility(ctx context.Context, userId, otherId uuid.UUID) (*entity.DNACompatibility, error)
	GetInsights(ctx context.Context, userId uuid.UUID) ([]*entity.DNAInsight, error)
	MarkInsightRead(ctx context.Context, userId, insightId uuid.UUID) error
	DismissInsight(ctx context.Context, userId, insightId uuid.UUID) error
}

type dnaService struct {
	uowFactory         unitofwork.RepositoryFactory
	llmProvider        llm.LLMProvider
	entitlementService IEntitlementService
	eventPublisher     *pktNats.Publisher
	logger             logger.ILogger
}

func NewDNAService(
	uowFactory unitofwork.RepositoryFactory,
	llmProvider llm.LLMProvider,
	entitlementService IEntitlementService,
	eventPublisher *pktNats.Publisher,
	sysLogger logger.ILogger,
) IDNAService {
	return &dnaService{
		uowFactory:         uowFactory,
		llmProvider:        llmProvider,
		entitlementService: entitlementService,
		eventPublisher:     eventPublisher,
		logger:             sysLogger,
	}
}

// checkEntitlement returns the Unauthorized analysis error for callers
// without DNA access. It runs before any model or database write.
func (s *dnaService) checkEntitlement(ctx context.Context, userId uuid.UUID) *dna.AnalysisError {
	ent := s.entitlementService.Resolve(ctx, userId)
	if !ent.CanUseDNA() {
		return dna.NewError(dna.Unauthorized, fmt.Errorf("user %s is not entitled to compatibility analysis", userId))
	}
	return nil
}

func (s *dnaService) complete(ctx context.Context, messages []llm.Message, opts ...llm.Option) (string, *dna.AnalysisError) {
	content, err := s.llmProvider.Chat(ctx, messages, opts...)
	if err != nil {
		return "", dna.NewError(dna.ServiceUnavailable, err)
	}
	return content, nil
}

func (s *dnaService) AnalyzeProfile(ctx context.Context, userId uuid.UUID) (*entity.DNAProfile, error) {
	if aerr := s.checkEntitlement(ctx, userId); aerr != nil {
		return nil, aerr
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	profile, err := uow.ProfileRepository().FindByUserId(ctx, userId)
	if err != nil {
		return nil, err
	}

	interactions, err := uow.DNARepository().FindInteractions(ctx,
		specification.UserOwnedBy{UserID: userId},
		specification.OrderBy{Field: "created_at", Desc: true},
		specification.Pagination{Limit: profileAnalysisInteractions},
	)
	if err != nil {
		return nil, err
	}

	var quizResults map[string]interface{}
	if profile != nil {
		quizResults = profile.QuizResults
	}

	messages := dna.ProfileAnalysisMessages(profile, interactions, quizResults)
	content, aerr := s.complete(ctx, messages, llm.WithTemperature(0.7), llm.WithMaxTokens(2000))
	if aerr != nil {
		return nil, aerr
	}

	analysis, parseErr := dna.ParseProfileAnalysis(content)
	if parseErr != nil {
		s.logger.Warn("dna", "Profile analysis parse failed, persisting fallback", map[string]interface{}{
			"user_id": userId,
			"error":   parseErr.Error(),
		})
	}

	now := time.Now()
	dnaProfile := &entity.DNAProfile{
		UserId:                     userId,
		EmotionalIntelligenceScore: analysis.EmotionalIntelligenceScore,
		InteractionQualityScore:    analysis.InteractionQualityScore,
		EmpathyScore:               analysis.EmpathyScore,
		VulnerabilityComfort:       analysis.VulnerabilityComfort,
		CommunicationStyle:         analysis.CommunicationStyle,
		EmotionalPatterns:          analysis.EmotionalPatterns,
		PersonalityMarkers:         analysis.PersonalityMarkers,
		LoveLanguagePrimary:        analysis.LoveLanguagePrimary,
		LoveLanguageSecondary:      analysis.LoveLanguageSecondary,
		ConflictResolutionStyle:    analysis.ConflictResolutionStyle,
		LastAnalysisAt:             &now,
	}

	if err := uow.DNARepository().UpsertProfile(ctx, dnaProfile); err != nil {
		return nil, err
	}
	return dnaProfile, nil
}

func (s *dnaService) AnalyzeInteraction(ctx context.Context, userId uuid.UUID, descriptor InteractionDescriptor) (*entity.DNAInteraction, error) {
	if descriptor.Type == "" {
		return nil, fmt.Errorf("interaction type is required")
	}
	if aerr := s.checkEntitlement(ctx, userId); aerr != nil {
		return nil, aerr
	}

	messages := dna.InteractionAnalysisMessages(map[string]interface{}{
		"interaction_type":      descriptor.Type,
		"interaction_data":      descriptor.Data,
		"message_length":        descriptor.MessageLength,
		"response_time_seconds": descriptor.ResponseTimeSeconds,
	})
	content, aerr := s.complete(ctx, messages, llm.WithTemperature(0.7), llm.WithMaxTokens(2000))
	if aerr != nil {
		return nil, aerr
	}

	analysis, parseErr := dna.ParseInteractionAnalysis(content)
	if parseErr != nil {
		s.logger.Warn("dna", "Interaction analysis parse failed, persisting fallback", map[string]interface{}{
			"user_id": userId,
			"error":   parseErr.Error(),
		})
	}

	interaction := &entity.DNAInteraction{
		UserId:              userId,
		OtherUserId:         descriptor.OtherUserId,
		InteractionType:     descriptor.Type,
		InteractionData:     descriptor.Data,
		EmotionalMarkers:    analysis.EmotionalMarkers,
		SentimentScore:      analysis.SentimentScore,
		VulnerabilityLevel:  analysis.VulnerabilityLevel,
		EngagementScore:     analysis.EngagementScore,
		EmpathyIndicators:   analysis.EmpathyIndicators,
		ResponseTimeSeconds: descriptor.ResponseTimeSeconds,
		MessageLength:       descriptor.MessageLength,
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.DNARepository().CreateInteraction(ctx, interaction); err != nil {
		return nil, err
	}
	return interaction, nil
}

func (s *dnaService) AnalyzeCompatibility(ctx context.Context, userId, targetId uuid.UUID) (*entity.DNACompatibility, error) {
	if aerr := s.checkEntitlement(ctx, userId); aerr != nil {
		return nil, aerr
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	profile1, err := uow.DNARepository().FindProfile(ctx, userId)
	if err != nil {
		return nil, err
	}
	profile2, err := uow.DNARepository().FindProfile(ctx, targetId)
	if err != nil {
		return nil, err
	}
	if profile1 == nil || profile2 == nil {
		return nil, dna.NewError(dna.MissingPrerequisite, fmt.Errorf("both users need an analyzed profile before compatibility"))
	}

	messages := dna.CompatibilityAnalysisMessages(profile1, profile2)
	content, aerr := s.complete(ctx, messages, llm.WithTemperature(0.7), llm.WithMaxTokens(2000))
	if aerr != nil {
		return nil, aerr
	}

	analysis, parseErr := dna.ParseCompatibilityAnalysis(content)
	if parseErr != nil {
		s.logger.Warn("dna", "Compatibility analysis parse failed, persisting fallback", map[string]interface{}{
			"user_id":   userId,
			"target_id": targetId,
			"error":     parseErr.Error(),
		})
	}

	// Reuse the stored column order when a row already exists, so the
	// upsert hits the existing pair instead of creating a mirror row.
	userId1, userId2 := userId, targetId
	if existing, err := uow.DNARepository().FindCompatibility(ctx, userId, targetId); err == nil && existing != nil {
		userId1, userId2 = existing.UserId1, existing.UserId2
	}

	now := time.Now()
	compatibility := &entity.DNACompatibility{
		UserId1:                    userId1,
		UserId2:                    userId2,
		OverallCompatibilityScore:  analysis.OverallCompatibilityScore,
		EmotionalSyncScore:         analysis.EmotionalSyncScore,
		CommunicationCompatibility: analysis.CommunicationCompatibility,
		PersonalityMatchScore:      analysis.PersonalityMatchScore,
		SharedValuesScore:          analysis.SharedValuesScore,
		GrowthPotentialScore:       analysis.GrowthPotentialScore,
		ConflictHarmonyScore:       analysis.ConflictHarmonyScore,
		DetailedAnalysis:           analysis.DetailedAnalysis,
		Strengths:                  analysis.Strengths,
		GrowthAreas:                analysis.GrowthAreas,
		ConversationStarters:       analysis.ConversationStarters,
		DateIdeas:                  analysis.DateIdeas,
		AnalysisConfidence:         analysis.AnalysisConfidence,
		LastAnalyzedAt:             &now,
	}

	if err := uow.DNARepository().UpsertCompatibility(ctx, compatibility); err != nil {
		return nil, err
	}
	return compatibility, nil
}

func (s *dnaService) GenerateInsights(ctx context.Context, userId uuid.UUID) ([]*entity.DNAInsight, error) {
	if aerr := s.checkEntitlement(ctx, userId); aerr != nil {
		return nil, aerr
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	dnaProfile, err := uow.DNARepository().FindProfile(ctx, userId)
	if err != nil {
		return nil, err
	}

	interactions, err := uow.DNARepository().FindInteractions(ctx,
		specification.UserOwnedBy{UserID: userId},
		specification.OrderBy{Field: "created_at", Desc: true},
		specification.Pagination{Limit: insightsAnalysisInteractions},
	)
	if err != nil {
		return nil, err
	}

	messages := dna.InsightsMessages(dnaProfile, interactions)
	content, aerr := s.complete(ctx, messages, llm.WithTemperature(0.7), llm.WithMaxTokens(2000))
	if aerr != nil {
		return nil, aerr
	}

	parsed, parseErr := dna.ParseInsights(content)
	if parseErr != nil {
		s.logger.Warn("dna", "Insights parse failed, persisting fallback", map[string]interface{}{
			"user_id": userId,
			"error":   parseErr.Error(),
		})
	}

	expiresAt := time.Now().AddDate(0, 0, insightExpiryDays)
	insights := make([]*entity.DNAInsight, 0, len(parsed))
	for _, p := range parsed {
		insight := &entity.DNAInsight{
			UserId:          userId,
			InsightType:     "recommendation",
			Title:           p.Title,
			Description:     p.Description,
			ActionableSteps: p.ActionableSteps,
			PriorityLevel:   p.PriorityLevel,
			ConfidenceScore: insightConfidence,
			ExpiresAt:       &expiresAt,
		}
		if err := uow.DNARepository().CreateInsight(ctx, insight); err != nil {
			return nil, err
		}
		insights = append(insights, insight)
	}

	if s.eventPublisher != nil {
		event := events.BaseEvent{
			Type: events.TypeInsightsGenerated,
			Data: map[string]interface{}{
				"user_id": userId,
				"count":   len(insights),
			},
			OccurredAt: time.Now(),
		}
		if err := s.eventPublisher.Publish(ctx, event); err != nil {
			s.logger.Warn("dna", "Failed to publish insights event", map[string]interface{}{
				"user_id": userId,
				"error":   err.Error(),
			})
		}
	}

	return insights, nil
}

func (s *dnaService) GetProfile(ctx context.Context, userId uuid.UUID) (*entity.DNAProfile, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	return uow.DNARepository().FindProfile(ctx, userId)
}

func (s *dnaService) GetCompatibility(ctx context.Context, userId, otherId uuid.UUID) (*entity.DNACompatibility, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	return uow.DNARepository().FindCompatibility(ctx, userId, otherId)
}

func (s *dnaService) GetInsights(ctx context.Context, userId uuid.UUID) ([]*entity.DNAInsight, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	return uow.DNARepository().FindInsights(ctx,
		specification.UserOwnedBy{UserID: userId},
		specification.NotDismissed{},
		specification.Unexpired{Now: time.Now()},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
}

func (s *dnaService) MarkInsightRead(ctx context.Context, userId, insightId uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	return uow.DNARepository().MarkInsightRead(ctx, userId, insightId)
}

func (s *dnaService) DismissInsight(ctx context.Context, userId, insightId uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	return uow.DNARepository().DismissInsight(ctx, userId, insightId)
}
