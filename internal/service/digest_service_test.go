package service

import (
	"context"
	"testing"

	"getunlocked-be/internal/model"
	"getunlocked-be/pkg/dna"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

const digestResponse = `{
	"greeting": "Good morning, Digest User!",
	"insights": ["Your matches love your honesty"],
	"conversation_starters": [{"matchId": "m-1", "name": "Sam", "starter": "Ask about the trip"}],
	"motivation": "Keep showing up as yourself."
}`

func newDigestTestService(t *testing.T, provider *fakeLLM) (IDigestService, *gorm.DB, uuid.UUID) {
	factory, db := newTestFactory(t)
	entitlements := NewEntitlementService(factory, testLogger)
	svc := NewDigestService(factory, provider, entitlements, testLogger)

	userId := seedUser(t, db, "digest@example.com")
	seedProfile(t, db, userId, "Digest User")
	seedSubscriber(t, db, userId, "unlocked-plus")

	return svc, db, userId
}

func TestDigestService_GenerateRequiresEntitlement(t *testing.T) {
	provider := &fakeLLM{responses: []string{digestResponse}}
	factory, db := newTestFactory(t)
	entitlements := NewEntitlementService(factory, testLogger)
	svc := NewDigestService(factory, provider, entitlements, testLogger)

	userId := seedUser(t, db, "free-digest@example.com")
	seedProfile(t, db, userId, "Free User")

	_, err := svc.GenerateDigest(context.Background(), userId)

	require.Error(t, err)
	assert.True(t, dna.IsKind(err, dna.Unauthorized))
	assert.Zero(t, provider.calls)
}

func TestDigestService_GenerateAndReadBack(t *testing.T) {
	provider := &fakeLLM{responses: []string{digestResponse}}
	svc, _, userId := newDigestTestService(t, provider)

	digest, err := svc.GenerateDigest(context.Background(), userId)

	require.NoError(t, err)
	assert.Equal(t, "Good morning, Digest User!", digest.Greeting)
	require.Len(t, digest.Starters, 1)
	assert.Equal(t, "Sam", digest.Starters[0].Name)

	today, err := svc.GetTodayDigest(context.Background(), userId)
	require.NoError(t, err)
	require.NotNil(t, today)
	assert.Equal(t, digest.Greeting, today.Greeting)

	latest, err := svc.GetLatestDigest(context.Background(), userId)
	require.NoError(t, err)
	require.NotNil(t, latest)
}

func TestDigestService_RegenerateSameDayOverwrites(t *testing.T) {
	provider := &fakeLLM{responses: []string{digestResponse}}
	svc, db, userId := newDigestTestService(t, provider)

	_, err := svc.GenerateDigest(context.Background(), userId)
	require.NoError(t, err)
	_, err = svc.GenerateDigest(context.Background(), userId)
	require.NoError(t, err)

	var count int64
	require.NoError(t, db.Model(&model.CompatibilityDigest{}).Where("user_id = ?", userId).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestDigestService_FallbackOnModelFailure(t *testing.T) {
	provider := &fakeLLM{err: assert.AnError}
	svc, _, userId := newDigestTestService(t, provider)

	digest, err := svc.GenerateDigest(context.Background(), userId)

	require.NoError(t, err)
	assert.NotEmpty(t, digest.Greeting, "fallback content fills the digest")
}

func TestDigestService_TodayDigestNilWhenAbsent(t *testing.T) {
	provider := &fakeLLM{}
	svc, _, userId := newDigestTestService(t, provider)

	today, err := svc.GetTodayDigest(context.Background(), userId)

	require.NoError(t, err)
	assert.Nil(t, today)
}
