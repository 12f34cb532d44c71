package service

import (
	"context"
	"fmt"
	"sort"

	"getunlocked-be/internal/entity"
	"getunlocked-be/internal/pkg/logger"
	"getunlocked-be/internal/repository/specification"
	"getunlocked-be/internal/repository/unitofwork"
	"getunlocked-be/pkg/dna"
	"getunlocked-be/pkg/llm"

	"github.com/google/uuid"
)

const (
	matchCandidatePool = 50
	matchScoreLimit    = 12
	matchResultLimit   = 8
	quizBoost          = 5.0
)

type IMatchingService interface {
	// GenerateMatches scores candidates against the model and replaces the
	// caller's suggested matches with the top ranked batch.
	GenerateMatches(ctx context.Context, userId uuid.UUID) ([]*entity.Match, error)

	GetMatches(ctx context.Context, userId uuid.UUID) ([]*entity.Match, error)
	ReactToMatch(ctx context.Context, userId, matchId uuid.UUID, action string) (*entity.Match, error)
}

type matchingService struct {
	uowFactory      unitofwork.RepositoryFactory
	llmProvider     llm.LLMProvider
	recorderService IRecorderService
	logger          logger.ILogger
}

func NewMatchingService(
	uowFactory unitofwork.RepositoryFactory,
	llmProvider llm.LLMProvider,
	recorderService IRecorderService,
	sysLogger logger.ILogger,
) IMatchingService {
	return &matchingService{
		uowFactory:      uowFactory,
		llmProvider:     llmProvider,
		recorderService: recorderService,
		logger:          sysLogger,
	}
}

func candidateSummary(p *entity.Profile) dna.CandidateSummary {
	summary := dna.CandidateSummary{
		Name:       p.Name,
		Age:        p.Age,
		Bio:        p.Bio,
		Location:   p.Location,
		Occupation: p.Occupation,
		Education:  p.Education,
		Interests:  p.Interests,
	}
	if p.QuizCompleted {
		summary.QuizSummary = dna.QuizSummaryFromResults(p.QuizResults)
	}
	return summary
}

// scoredCandidate pairs a candidate with its boosted score for ranking.
type scoredCandidate struct {
	profile *entity.Profile
	score   *dna.MatchScore
	boosted float64
	quiz    bool
}

// boostScore applies the quiz-completion boost, capped at 100.
func boostScore(raw float64, quizCompleted bool) float64 {
	if !quizCompleted {
		return raw
	}
	boosted := raw + quizBoost
	if boosted > 100 {
		return 100
	}
	return boosted
}

// rankCandidates sorts by boosted score descending and truncates to the
// result limit.
func rankCandidates(scored []scoredCandidate) []scoredCandidate {
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].boosted > scored[j].boosted
	})
	if len(scored) > matchResultLimit {
		scored = scored[:matchResultLimit]
	}
	return scored
}

func (s *matchingService) GenerateMatches(ctx context.Context, userId uuid.UUID) ([]*entity.Match, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	profile, err := uow.ProfileRepository().FindByUserId(ctx, userId)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, fmt.Errorf("profile not found for user %s", userId)
	}

	candidates, err := uow.ProfileRepository().FindCandidates(ctx, userId, matchCandidatePool)
	if err != nil {
		return nil, err
	}

	// Every score is a model call, so only the first matchScoreLimit
	// candidates get scored per run.
	if len(candidates) > matchScoreLimit {
		candidates = candidates[:matchScoreLimit]
	}

	caller := candidateSummary(profile)

	var scored []scoredCandidate
	for _, candidate := range candidates {
		score := s.scoreCandidate(ctx, caller, candidate)
		if score == nil {
			continue
		}
		scored = append(scored, scoredCandidate{
			profile: candidate,
			score:   score,
			boosted: boostScore(score.CompatibilityScore, candidate.QuizCompleted),
			quiz:    candidate.QuizCompleted,
		})
	}

	ranked := rankCandidates(scored)

	matches := make([]*entity.Match, 0, len(ranked))
	for _, sc := range ranked {
		matches = append(matches, &entity.Match{
			Id:                     uuid.New(),
			UserId:                 userId,
			MatchedUserId:          sc.profile.UserId,
			CompatibilityScore:     sc.boosted,
			Explanation:            sc.score.Explanation,
			CompatibilityBreakdown: sc.score.CompatibilityBreakdown,
			Strengths:              sc.score.Strengths,
			PotentialChallenges:    sc.score.PotentialChallenges,
			SharedInterests:        sc.score.SharedInterests,
			ConversationStarters:   sc.score.ConversationStarters,
			RelationshipPrediction: sc.score.RelationshipPrediction,
			QuizBoostApplied:       sc.quiz,
			Status:                 entity.MatchStatusSuggested,
		})
	}

	if err := uow.MatchRepository().ReplaceSuggestions(ctx, userId, matches); err != nil {
		return nil, err
	}
	return matches, nil
}

// scoreCandidate asks the model for one candidate's score. A failed call or
// unparseable answer skips the candidate instead of failing the run.
func (s *matchingService) scoreCandidate(ctx context.Context, caller dna.CandidateSummary, candidate *entity.Profile) *dna.MatchScore {
	messages := dna.MatchScoringMessages(caller, candidateSummary(candidate))

	content, err := s.llmProvider.Chat(ctx, messages, llm.WithTemperature(0.3), llm.WithMaxTokens(500))
	if err != nil {
		s.logger.Warn("matching", "Scoring call failed, skipping candidate", map[string]interface{}{
			"candidate": candidate.UserId,
			"error":     err.Error(),
		})
		return nil
	}

	score, parseErr := dna.ParseMatchScore(content)
	if parseErr != nil {
		s.logger.Warn("matching", "Score parse failed, skipping candidate", map[string]interface{}{
			"candidate": candidate.UserId,
			"error":     parseErr.Error(),
		})
		return nil
	}
	return score
}

func (s *matchingService) GetMatches(ctx context.Context, userId uuid.UUID) ([]*entity.Match, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	return uow.MatchRepository().FindAll(ctx,
		specification.UserOwnedBy{UserID: userId},
		specification.OrderBy{Field: "compatibility_score", Desc: true},
	)
}

func (s *matchingService) ReactToMatch(ctx context.Context, userId, matchId uuid.UUID, action string) (*entity.Match, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	match, err := uow.MatchRepository().FindOne(ctx,
		specification.ByID{ID: matchId},
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return nil, err
	}
	if match == nil {
		return nil, fmt.Errorf("match not found")
	}

	var status entity.MatchStatus
	switch action {
	case "like":
		status = entity.MatchStatusLiked
	case "pass":
		status = entity.MatchStatusPassed
	default:
		return nil, fmt.Errorf("unknown reaction %q", action)
	}

	// Liking someone who already liked us back makes the match mutual.
	if status == entity.MatchStatusLiked {
		reverse, err := uow.MatchRepository().FindOne(ctx,
			specification.UserOwnedBy{UserID: match.MatchedUserId},
			specification.FilterBy{Field: "matched_user_id", Value: userId},
			specification.FilterBy{Field: "status", Value: string(entity.MatchStatusLiked)},
		)
		if err == nil && reverse != nil {
			status = entity.MatchStatusMutual
			if err := uow.MatchRepository().UpdateStatus(ctx, reverse.Id, entity.MatchStatusMutual); err != nil {
				s.logger.Warn("matching", "Failed to update reverse match status", map[string]interface{}{
					"match_id": reverse.Id,
					"error":    err.Error(),
				})
			}
		}
	}

	if err := uow.MatchRepository().UpdateStatus(ctx, match.Id, status); err != nil {
		return nil, err
	}
	match.Status = status

	// Reactions feed the analysis pipeline best-effort.
	_ = s.recorderService.RecordMatchReaction(ctx, userId, match.MatchedUserId, action)

	return match, nil
}
