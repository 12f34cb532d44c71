package service

import (
	"context"
	"testing"
	"time"

	"getunlocked-be/internal/model"
	"getunlocked-be/pkg/dna"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

const profileAnalysisResponse = `{
	"emotional_intelligence_score": 88,
	"interaction_quality_score": 72,
	"empathy_score": 91,
	"vulnerability_comfort": 60,
	"communication_style": {"primary": "direct"},
	"love_language_primary": "words_of_affirmation",
	"conflict_resolution_style": "collaborative"
}`

const compatibilityResponse = `{
	"overall_compatibility_score": 84,
	"emotional_sync_score": 80,
	"communication_compatibility": 85,
	"personality_match_score": 82,
	"shared_values_score": 79,
	"growth_potential_score": 88,
	"conflict_harmony_score": 77,
	"strengths": ["humor"],
	"analysis_confidence": 0.9
}`

func newDNATestService(t *testing.T, provider *fakeLLM) (IDNAService, *gorm.DB, uuid.UUID) {
	factory, db := newTestFactory(t)
	entitlements := NewEntitlementService(factory, testLogger)
	svc := NewDNAService(factory, provider, entitlements, nil, testLogger)

	userId := seedUser(t, db, "dna@example.com")
	seedProfile(t, db, userId, "DNA User")
	seedSubscriber(t, db, userId, "unlocked-plus")

	return svc, db, userId
}

func TestDNAService_AnalyzeProfileRequiresEntitlement(t *testing.T) {
	provider := &fakeLLM{responses: []string{profileAnalysisResponse}}
	factory, db := newTestFactory(t)
	entitlements := NewEntitlementService(factory, testLogger)
	svc := NewDNAService(factory, provider, entitlements, nil, testLogger)

	userId := seedUser(t, db, "free-dna@example.com")
	seedProfile(t, db, userId, "Free User")

	_, err := svc.AnalyzeProfile(context.Background(), userId)

	require.Error(t, err)
	assert.True(t, dna.IsKind(err, dna.Unauthorized))
	assert.Zero(t, provider.calls, "model must not be called for unentitled users")

	var count int64
	require.NoError(t, db.Model(&model.DNAProfile{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestDNAService_AnalyzeProfilePersistsScores(t *testing.T) {
	provider := &fakeLLM{responses: []string{profileAnalysisResponse}}
	svc, db, userId := newDNATestService(t, provider)

	result, err := svc.AnalyzeProfile(context.Background(), userId)

	require.NoError(t, err)
	assert.Equal(t, 1, provider.calls)
	assert.InDelta(t, 88, result.EmotionalIntelligenceScore, 0.01)
	assert.Equal(t, "words_of_affirmation", result.LoveLanguagePrimary)

	var row model.DNAProfile
	require.NoError(t, db.Where("user_id = ?", userId).First(&row).Error)
	assert.InDelta(t, 91, row.EmpathyScore, 0.01)
	assert.NotNil(t, row.LastAnalysisAt)
}

func TestDNAService_AnalyzeProfilePersistsFallbackOnGarbage(t *testing.T) {
	provider := &fakeLLM{responses: []string{"I'm sorry, I cannot answer that."}}
	svc, db, userId := newDNATestService(t, provider)

	result, err := svc.AnalyzeProfile(context.Background(), userId)

	require.NoError(t, err)
	assert.InDelta(t, 75, result.EmotionalIntelligenceScore, 0.01)

	var count int64
	require.NoError(t, db.Model(&model.DNAProfile{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestDNAService_AnalyzeProfileUpserts(t *testing.T) {
	provider := &fakeLLM{responses: []string{profileAnalysisResponse}}
	svc, db, userId := newDNATestService(t, provider)

	_, err := svc.AnalyzeProfile(context.Background(), userId)
	require.NoError(t, err)
	_, err = svc.AnalyzeProfile(context.Background(), userId)
	require.NoError(t, err)

	var count int64
	require.NoError(t, db.Model(&model.DNAProfile{}).Where("user_id = ?", userId).Count(&count).Error)
	assert.EqualValues(t, 1, count, "re-analysis must update the existing row")
}

func TestDNAService_AnalyzeInteractionInserts(t *testing.T) {
	provider := &fakeLLM{responses: []string{
		`{"sentiment_score": 0.8, "vulnerability_level": 0.4, "engagement_score": 0.9}`,
	}}
	svc, db, userId := newDNATestService(t, provider)

	descriptor := InteractionDescriptor{Type: "message", MessageLength: 42}

	_, err := svc.AnalyzeInteraction(context.Background(), userId, descriptor)
	require.NoError(t, err)
	_, err = svc.AnalyzeInteraction(context.Background(), userId, descriptor)
	require.NoError(t, err)

	var count int64
	require.NoError(t, db.Model(&model.DNAInteraction{}).Where("user_id = ?", userId).Count(&count).Error)
	assert.EqualValues(t, 2, count, "every interaction gets its own row")
}

func TestDNAService_AnalyzeInteractionRequiresType(t *testing.T) {
	provider := &fakeLLM{}
	svc, _, userId := newDNATestService(t, provider)

	_, err := svc.AnalyzeInteraction(context.Background(), userId, InteractionDescriptor{})

	require.Error(t, err)
	assert.Zero(t, provider.calls)
}

func TestDNAService_AnalyzeCompatibilityNeedsBothProfiles(t *testing.T) {
	provider := &fakeLLM{responses: []string{compatibilityResponse}}
	svc, db, userId := newDNATestService(t, provider)

	targetId := seedUser(t, db, "target@example.com")
	seedProfile(t, db, targetId, "Target User")

	_, err := svc.AnalyzeCompatibility(context.Background(), userId, targetId)

	require.Error(t, err)
	assert.True(t, dna.IsKind(err, dna.MissingPrerequisite))
	assert.Zero(t, provider.calls)
}

func TestDNAService_GenerateInsightsPersistsAndFilters(t *testing.T) {
	provider := &fakeLLM{responses: []string{
		`[{"title": "Open up sooner", "description": "Share more early on.", "actionable_steps": ["Lead with a story"], "priority_level": "high", "category": "vulnerability"}]`,
	}}
	svc, db, userId := newDNATestService(t, provider)

	generated, err := svc.GenerateInsights(context.Background(), userId)

	require.NoError(t, err)
	require.Len(t, generated, 1)
	assert.Equal(t, "Open up sooner", generated[0].Title)
	assert.Equal(t, "high", generated[0].PriorityLevel)
	require.NotNil(t, generated[0].ExpiresAt)
	assert.WithinDuration(t, time.Now().AddDate(0, 0, 30), *generated[0].ExpiresAt, time.Minute,
		"insights expire 30 days after creation")

	insights, err := svc.GetInsights(context.Background(), userId)
	require.NoError(t, err)
	require.Len(t, insights, 1)

	// Dismissed insights drop out of the feed.
	require.NoError(t, svc.DismissInsight(context.Background(), userId, insights[0].Id))
	insights, err = svc.GetInsights(context.Background(), userId)
	require.NoError(t, err)
	assert.Empty(t, insights)

	var total int64
	require.NoError(t, db.Model(&model.DNAInsight{}).Where("user_id = ?", userId).Count(&total).Error)
	assert.EqualValues(t, 1, total, "dismissal hides, never deletes")
}

func TestDNAService_GetInsightsFiltersExpired(t *testing.T) {
	provider := &fakeLLM{}
	svc, db, userId := newDNATestService(t, provider)

	past := time.Now().Add(-time.Hour)
	require.NoError(t, db.Create(&model.DNAInsight{
		Id:          uuid.New(),
		UserId:      userId,
		InsightType: "recommendation",
		Title:       "Old advice",
		ExpiresAt:   &past,
	}).Error)

	insights, err := svc.GetInsights(context.Background(), userId)

	require.NoError(t, err)
	assert.Empty(t, insights, "expired insights stay in the table but out of the feed")
}

func TestDNAService_MarkInsightRead(t *testing.T) {
	provider := &fakeLLM{responses: []string{
		`[{"title": "Ask follow-ups", "description": "Dig one layer deeper.", "actionable_steps": [], "priority_level": "low", "category": "communication"}]`,
	}}
	svc, db, userId := newDNATestService(t, provider)

	generated, err := svc.GenerateInsights(context.Background(), userId)
	require.NoError(t, err)
	require.Len(t, generated, 1)

	require.NoError(t, svc.MarkInsightRead(context.Background(), userId, generated[0].Id))

	var row model.DNAInsight
	require.NoError(t, db.First(&row, "id = ?", generated[0].Id).Error)
	assert.True(t, row.IsRead)
}

func TestDNAService_AnalyzeCompatibilityReusesPairOrder(t *testing.T) {
	provider := &fakeLLM{responses: []string{compatibilityResponse}}
	svc, db, userId := newDNATestService(t, provider)

	targetId := seedUser(t, db, "target@example.com")
	seedProfile(t, db, targetId, "Target User")
	seedSubscriber(t, db, targetId, "unlocked-plus")

	require.NoError(t, db.Create(&model.DNAProfile{Id: uuid.New(), UserId: userId}).Error)
	require.NoError(t, db.Create(&model.DNAProfile{Id: uuid.New(), UserId: targetId}).Error)

	first, err := svc.AnalyzeCompatibility(context.Background(), userId, targetId)
	require.NoError(t, err)

	// Re-analyzing from the other side must hit the same row, not mirror it.
	second, err := svc.AnalyzeCompatibility(context.Background(), targetId, userId)
	require.NoError(t, err)
	assert.Equal(t, first.UserId1, second.UserId1)
	assert.Equal(t, first.UserId2, second.UserId2)

	var count int64
	require.NoError(t, db.Model(&model.DNACompatibility{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}
