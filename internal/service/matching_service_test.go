package service

import (
	"context"
	"fmt"
	"testing"

	"getunlocked-be/internal/entity"
	"getunlocked-be/internal/model"
	"getunlocked-be/pkg/dna"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestBoostScore(t *testing.T) {
	assert.InDelta(t, 65, boostScore(65, false), 0.001)
	assert.InDelta(t, 70, boostScore(65, true), 0.001)
	assert.InDelta(t, 100, boostScore(98, true), 0.001, "boost is capped at 100")
	assert.InDelta(t, 100, boostScore(100, true), 0.001)
}

func TestRankCandidates(t *testing.T) {
	var scored []scoredCandidate
	for i := 0; i < 12; i++ {
		scored = append(scored, scoredCandidate{
			profile: &entity.Profile{UserId: uuid.New()},
			score:   &dna.MatchScore{},
			boosted: float64(i * 5),
		})
	}

	ranked := rankCandidates(scored)

	require.Len(t, ranked, matchResultLimit)
	assert.InDelta(t, 55, ranked[0].boosted, 0.001)
	for i := 1; i < len(ranked); i++ {
		assert.GreaterOrEqual(t, ranked[i-1].boosted, ranked[i].boosted)
	}
}

func newMatchingTestService(t *testing.T, provider *fakeLLM) (IMatchingService, *gorm.DB, uuid.UUID) {
	factory, db := newTestFactory(t)
	entitlements := NewEntitlementService(factory, testLogger)
	recorder := NewRecorderService(entitlements, &fakePublisher{}, testLogger)
	svc := NewMatchingService(factory, provider, recorder, testLogger)

	userId := seedUser(t, db, "matcher@example.com")
	seedProfile(t, db, userId, "Matcher")

	return svc, db, userId
}

func matchScoreJSON(score float64) string {
	return fmt.Sprintf(`{"compatibility_score": %g, "explanation": "shared wavelength"}`, score)
}

func TestMatchingService_GenerateMatchesRanksAndStores(t *testing.T) {
	provider := &fakeLLM{responses: []string{
		matchScoreJSON(40),
		matchScoreJSON(90),
		matchScoreJSON(70),
	}}
	svc, db, userId := newMatchingTestService(t, provider)

	for i := 0; i < 3; i++ {
		candidateId := seedUser(t, db, fmt.Sprintf("candidate%d@example.com", i))
		seedProfile(t, db, candidateId, fmt.Sprintf("Candidate %d", i))
	}

	matches, err := svc.GenerateMatches(context.Background(), userId)

	require.NoError(t, err)
	require.Len(t, matches, 3)
	assert.Equal(t, 3, provider.calls)
	assert.InDelta(t, 90, matches[0].CompatibilityScore, 0.001)
	assert.InDelta(t, 70, matches[1].CompatibilityScore, 0.001)
	assert.InDelta(t, 40, matches[2].CompatibilityScore, 0.001)
	for _, m := range matches {
		assert.Equal(t, entity.MatchStatusSuggested, m.Status)
		assert.Equal(t, userId, m.UserId)
		assert.Equal(t, "shared wavelength", m.Explanation)
	}

	var count int64
	require.NoError(t, db.Model(&model.Match{}).Where("user_id = ?", userId).Count(&count).Error)
	assert.EqualValues(t, 3, count)
}

func TestMatchingService_GenerateMatchesCapsScoredPool(t *testing.T) {
	provider := &fakeLLM{responses: []string{matchScoreJSON(60)}}
	svc, db, userId := newMatchingTestService(t, provider)

	for i := 0; i < matchScoreLimit+3; i++ {
		candidateId := seedUser(t, db, fmt.Sprintf("pool%d@example.com", i))
		seedProfile(t, db, candidateId, fmt.Sprintf("Pool %d", i))
	}

	matches, err := svc.GenerateMatches(context.Background(), userId)

	require.NoError(t, err)
	assert.Equal(t, matchScoreLimit, provider.calls, "only the capped pool is scored")
	assert.Len(t, matches, matchResultLimit)
}

func TestMatchingService_GenerateMatchesReplacesSuggestions(t *testing.T) {
	provider := &fakeLLM{responses: []string{matchScoreJSON(60)}}
	svc, db, userId := newMatchingTestService(t, provider)

	candidateId := seedUser(t, db, "candidate@example.com")
	seedProfile(t, db, candidateId, "Candidate")

	_, err := svc.GenerateMatches(context.Background(), userId)
	require.NoError(t, err)
	_, err = svc.GenerateMatches(context.Background(), userId)
	require.NoError(t, err)

	var count int64
	require.NoError(t, db.Model(&model.Match{}).
		Where("user_id = ? AND status = ?", userId, string(entity.MatchStatusSuggested)).
		Count(&count).Error)
	assert.EqualValues(t, 1, count, "old suggestions are replaced, not accumulated")
}

func TestMatchingService_GenerateMatchesSkipsUnparseableScores(t *testing.T) {
	provider := &fakeLLM{responses: []string{
		"no JSON here",
		matchScoreJSON(55),
	}}
	svc, db, userId := newMatchingTestService(t, provider)

	for i := 0; i < 2; i++ {
		candidateId := seedUser(t, db, fmt.Sprintf("skip%d@example.com", i))
		seedProfile(t, db, candidateId, fmt.Sprintf("Skip %d", i))
	}

	matches, err := svc.GenerateMatches(context.Background(), userId)

	require.NoError(t, err)
	assert.Len(t, matches, 1)
}

func TestMatchingService_GenerateMatchesRequiresProfile(t *testing.T) {
	provider := &fakeLLM{}
	factory, db := newTestFactory(t)
	entitlements := NewEntitlementService(factory, testLogger)
	recorder := NewRecorderService(entitlements, &fakePublisher{}, testLogger)
	svc := NewMatchingService(factory, provider, recorder, testLogger)

	userId := seedUser(t, db, "noprofile@example.com")

	_, err := svc.GenerateMatches(context.Background(), userId)

	require.Error(t, err)
	assert.Zero(t, provider.calls)
}

func TestMatchingService_ReactToMatchLikeAndMutual(t *testing.T) {
	provider := &fakeLLM{}
	svc, db, userId := newMatchingTestService(t, provider)

	otherId := seedUser(t, db, "other@example.com")
	seedProfile(t, db, otherId, "Other")

	forward := &model.Match{
		Id:            uuid.New(),
		UserId:        userId,
		MatchedUserId: otherId,
		Status:        string(entity.MatchStatusSuggested),
	}
	reverse := &model.Match{
		Id:            uuid.New(),
		UserId:        otherId,
		MatchedUserId: userId,
		Status:        string(entity.MatchStatusLiked),
	}
	require.NoError(t, db.Create(forward).Error)
	require.NoError(t, db.Create(reverse).Error)

	updated, err := svc.ReactToMatch(context.Background(), userId, forward.Id, "like")

	require.NoError(t, err)
	assert.Equal(t, entity.MatchStatusMutual, updated.Status)

	var reverseRow model.Match
	require.NoError(t, db.First(&reverseRow, "id = ?", reverse.Id).Error)
	assert.Equal(t, string(entity.MatchStatusMutual), reverseRow.Status)
}

func TestMatchingService_ReactToMatchPass(t *testing.T) {
	provider := &fakeLLM{}
	svc, db, userId := newMatchingTestService(t, provider)

	otherId := seedUser(t, db, "passed@example.com")
	match := &model.Match{
		Id:            uuid.New(),
		UserId:        userId,
		MatchedUserId: otherId,
		Status:        string(entity.MatchStatusSuggested),
	}
	require.NoError(t, db.Create(match).Error)

	updated, err := svc.ReactToMatch(context.Background(), userId, match.Id, "pass")

	require.NoError(t, err)
	assert.Equal(t, entity.MatchStatusPassed, updated.Status)
}

func TestMatchingService_ReactToMatchRejectsUnknownAction(t *testing.T) {
	provider := &fakeLLM{}
	svc, db, userId := newMatchingTestService(t, provider)

	otherId := seedUser(t, db, "weird@example.com")
	match := &model.Match{
		Id:            uuid.New(),
		UserId:        userId,
		MatchedUserId: otherId,
		Status:        string(entity.MatchStatusSuggested),
	}
	require.NoError(t, db.Create(match).Error)

	_, err := svc.ReactToMatch(context.Background(), userId, match.Id, "superlike")

	require.Error(t, err)
}

func TestMatchingService_ReactToMatchForeignMatchNotFound(t *testing.T) {
	provider := &fakeLLM{}
	svc, db, userId := newMatchingTestService(t, provider)

	otherId := seedUser(t, db, "foreign@example.com")
	match := &model.Match{
		Id:            uuid.New(),
		UserId:        otherId,
		MatchedUserId: userId,
		Status:        string(entity.MatchStatusSuggested),
	}
	require.NoError(t, db.Create(match).Error)

	_, err := svc.ReactToMatch(context.Background(), userId, match.Id, "like")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}
