package service

import (
	"context"
	"testing"
	"time"

	"getunlocked-be/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newVaultTestService(t *testing.T) (IVaultService, *gorm.DB, uuid.UUID) {
	factory, db := newTestFactory(t)
	svc := NewVaultService(factory)
	userId := seedUser(t, db, "vault@example.com")
	return svc, db, userId
}

func TestVaultService_SaveAndListMatches(t *testing.T) {
	svc, _, userId := newVaultTestService(t)

	matchUserId := uuid.New()
	saved, err := svc.SaveMatch(context.Background(), userId, "Sam", &matchUserId, "great first chat")
	require.NoError(t, err)
	assert.Equal(t, "Sam", saved.MatchName)

	matches, err := svc.ListMatches(context.Background(), userId)
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, saved.Id, matches[0].Id)
}

func TestVaultService_DeleteMatchScopedToOwner(t *testing.T) {
	svc, db, userId := newVaultTestService(t)

	saved, err := svc.SaveMatch(context.Background(), userId, "Sam", nil, "")
	require.NoError(t, err)

	strangerId := seedUser(t, db, "stranger@example.com")

	// A delete by someone else must not touch the row.
	_ = svc.DeleteMatch(context.Background(), strangerId, saved.Id)
	var count int64
	require.NoError(t, db.Model(&model.VaultMatch{}).Where("id = ?", saved.Id).Count(&count).Error)
	assert.EqualValues(t, 1, count)

	require.NoError(t, svc.DeleteMatch(context.Background(), userId, saved.Id))
	require.NoError(t, db.Model(&model.VaultMatch{}).Where("id = ?", saved.Id).Count(&count).Error)
	assert.Zero(t, count)
}

func TestVaultService_PromptsAndMoments(t *testing.T) {
	svc, _, userId := newVaultTestService(t)

	prompt, err := svc.SavePrompt(context.Background(), userId, "Perfect Sunday?", "Coffee and a long walk")
	require.NoError(t, err)
	assert.Equal(t, "Perfect Sunday?", prompt.PromptText)

	momentDate := time.Date(2026, 6, 14, 0, 0, 0, 0, time.UTC)
	moment, err := svc.SaveMoment(context.Background(), userId, "First date", "The rooftop place", &momentDate)
	require.NoError(t, err)
	assert.Equal(t, "First date", moment.Title)

	prompts, err := svc.ListPrompts(context.Background(), userId)
	require.NoError(t, err)
	assert.Len(t, prompts, 1)

	moments, err := svc.ListMoments(context.Background(), userId)
	require.NoError(t, err)
	assert.Len(t, moments, 1)
}

func TestVaultService_CountsPerUser(t *testing.T) {
	svc, db, userId := newVaultTestService(t)

	_, err := svc.SaveMatch(context.Background(), userId, "Sam", nil, "")
	require.NoError(t, err)
	_, err = svc.SavePrompt(context.Background(), userId, "q", "a")
	require.NoError(t, err)
	_, err = svc.SavePrompt(context.Background(), userId, "q2", "a2")
	require.NoError(t, err)

	otherId := seedUser(t, db, "othervault@example.com")
	_, err = svc.SaveMoment(context.Background(), otherId, "t", "d", nil)
	require.NoError(t, err)

	counts, err := svc.Counts(context.Background(), userId)

	require.NoError(t, err)
	assert.EqualValues(t, 1, counts.Matches)
	assert.EqualValues(t, 2, counts.Prompts)
	assert.EqualValues(t, 0, counts.Moments)
}
