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
	"getunlocked-be/pkg/llm"

	"github.com/google/uuid"
)

const digestMatchSample = 5

type IDigestService interface {
	// GenerateDigest builds today's digest for an entitled user. A second
	// call the same day overwrites the existing row.
	GenerateDigest(ctx context.Context, userId uuid.UUID) (*entity.CompatibilityDigest, error)

	GetTodayDigest(ctx context.Context, userId uuid.UUID) (*entity.CompatibilityDigest, error)
	GetLatestDigest(ctx context.Context, userId uuid.UUID) (*entity.CompatibilityDigest, error)
}

type digestService struct {
	uowFactory         unitofwork.RepositoryFactory
	llmProvider        llm.LLMProvider
	entitlementService IEntitlementService
	logger             logger.ILogger
}

func NewDigestService(
	uowFactory unitofwork.RepositoryFactory,
	llmProvider llm.LLMProvider,
	entitlementService IEntitlementService,
	sysLogger logger.ILogger,
) IDigestService {
	return &digestService{
		uowFactory:         uowFactory,
		llmProvider:        llmProvider,
		entitlementService: entitlementService,
		logger:             sysLogger,
	}
}

func (s *digestService) GenerateDigest(ctx context.Context, userId uuid.UUID) (*entity.CompatibilityDigest, error) {
	ent := s.entitlementService.Resolve(ctx, userId)
	if !ent.CanUseDigest() {
		return nil, dna.NewError(dna.Unauthorized, fmt.Errorf("daily digest requires an active subscription"))
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	profile, err := uow.ProfileRepository().FindByUserId(ctx, userId)
	if err != nil {
		return nil, err
	}

	recentMatches, err := uow.MatchRepository().FindAll(ctx,
		specification.UserOwnedBy{UserID: userId},
		specification.OrderBy{Field: "created_at", Desc: true},
		specification.Pagination{Limit: digestMatchSample},
	)
	if err != nil {
		return nil, err
	}

	messages := dna.DigestMessages(profile, recentMatches)
	content, err := s.llmProvider.Chat(ctx, messages, llm.WithTemperature(0.8), llm.WithMaxTokens(1000))

	var parsed *dna.DigestContent
	if err != nil {
		s.logger.Warn("digest", "Digest completion failed, using fallback content", map[string]interface{}{
			"user_id": userId,
			"error":   err.Error(),
		})
		parsed = dna.FallbackDigestContent()
	} else {
		var parseErr *dna.AnalysisError
		parsed, parseErr = dna.ParseDigestContent(content)
		if parseErr != nil {
			s.logger.Warn("digest", "Digest parse failed, using fallback content", map[string]interface{}{
				"user_id": userId,
				"error":   parseErr.Error(),
			})
		}
	}

	starters := make([]entity.DigestStarter, 0, len(parsed.ConversationStarters))
	for _, st := range parsed.ConversationStarters {
		starters = append(starters, entity.DigestStarter{
			MatchId: st.MatchID,
			Name:    st.Name,
			Starter: st.Starter,
		})
	}

	// Midnight-truncated so the per-day unique constraint collapses
	// repeated generations into one row.
	now := time.Now()
	digest := &entity.CompatibilityDigest{
		UserId:     userId,
		DigestDate: time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()),
		Greeting:   parsed.Greeting,
		Insights:   parsed.Insights,
		Starters:   starters,
		Motivation: parsed.Motivation,
	}

	if err := uow.EngagementRepository().UpsertDigest(ctx, digest); err != nil {
		return nil, err
	}
	return digest, nil
}

func (s *digestService) GetTodayDigest(ctx context.Context, userId uuid.UUID) (*entity.CompatibilityDigest, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	return uow.EngagementRepository().FindDigest(ctx, userId, time.Now())
}

func (s *digestService) GetLatestDigest(ctx context.Context, userId uuid.UUID) (*entity.CompatibilityDigest, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	return uow.EngagementRepository().FindLatestDigest(ctx, userId)
}
