package service

import (
	"context"
	"testing"

	"getunlocked-be/internal/dto"
	"getunlocked-be/internal/entity"
	"getunlocked-be/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newProfileTestService(t *testing.T) (IProfileService, *gorm.DB, uuid.UUID) {
	factory, db := newTestFactory(t)
	entitlements := NewEntitlementService(factory, testLogger)
	recorder := NewRecorderService(entitlements, &fakePublisher{}, testLogger)
	events := NewEventService(factory, nil)
	svc := NewProfileService(factory, events, recorder, testLogger)

	userId := seedUser(t, db, "profile@example.com")
	return svc, db, userId
}

func TestProfileService_GetCreatesLazily(t *testing.T) {
	svc, db, userId := newProfileTestService(t)

	profile, err := svc.Get(context.Background(), userId)

	require.NoError(t, err)
	assert.Equal(t, userId, profile.UserId)

	var count int64
	require.NoError(t, db.Model(&model.Profile{}).Where("user_id = ?", userId).Count(&count).Error)
	assert.EqualValues(t, 1, count)

	// Subsequent reads return the same row.
	again, err := svc.Get(context.Background(), userId)
	require.NoError(t, err)
	assert.Equal(t, profile.Id, again.Id)
}

func TestProfileService_UpdateKeepsUnsetFields(t *testing.T) {
	svc, _, userId := newProfileTestService(t)

	_, err := svc.Update(context.Background(), userId, &dto.UpdateProfileRequest{
		Name: "Alex",
		Age:  29,
		Bio:  "hiker",
	})
	require.NoError(t, err)

	updated, err := svc.Update(context.Background(), userId, &dto.UpdateProfileRequest{
		Location: "Lisbon",
	})
	require.NoError(t, err)

	assert.Equal(t, "Alex", updated.Name)
	assert.Equal(t, 29, updated.Age)
	assert.Equal(t, "hiker", updated.Bio)
	assert.Equal(t, "Lisbon", updated.Location)
}

func TestProfileService_SubmitQuizMarksCompletedAndTracks(t *testing.T) {
	svc, db, userId := newProfileTestService(t)

	results := map[string]interface{}{"q1": "a", "q2": "b"}

	profile, err := svc.SubmitQuiz(context.Background(), userId, results)

	require.NoError(t, err)
	assert.True(t, profile.QuizCompleted)

	var row model.Profile
	require.NoError(t, db.Where("user_id = ?", userId).First(&row).Error)
	assert.True(t, row.QuizCompleted)

	var events int64
	require.NoError(t, db.Model(&model.UserEvent{}).
		Where("user_id = ? AND event_type = ?", userId, entity.EventQuizCompleted).
		Count(&events).Error)
	assert.EqualValues(t, 1, events)
}

func TestProfileService_HeartbeatStampsLastOnline(t *testing.T) {
	svc, db, userId := newProfileTestService(t)

	_, err := svc.Get(context.Background(), userId)
	require.NoError(t, err)

	svc.Heartbeat(context.Background(), userId)

	var row model.Profile
	require.NoError(t, db.Where("user_id = ?", userId).First(&row).Error)
	require.NotNil(t, row.LastOnline)
}
