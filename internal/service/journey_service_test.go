package service

import (
	"context"
	"testing"
	"time"

	"getunlocked-be/internal/entity"
	"getunlocked-be/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newJourneyTestService(t *testing.T) (IJourneyService, *fakeMailer, *gorm.DB) {
	factory, db := newTestFactory(t)
	mailer := &fakeMailer{}
	svc := NewJourneyService(factory, mailer, testLogger)
	return svc, mailer, db
}

func seedEvent(t *testing.T, db *gorm.DB, userId uuid.UUID, eventType string, at time.Time) {
	t.Helper()
	require.NoError(t, db.Create(&model.UserEvent{
		Id:        uuid.New(),
		UserId:    userId,
		EventType: eventType,
		CreatedAt: at,
	}).Error)
}

func TestJourneyService_WelcomeSentOncePerUser(t *testing.T) {
	svc, mailer, db := newJourneyTestService(t)

	userId := seedUser(t, db, "newbie@example.com")
	seedProfile(t, db, userId, "Newbie")
	seedEvent(t, db, userId, entity.EventSignup, time.Now().Add(-time.Hour))

	processed, sent, err := svc.ProcessEvents(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 3, processed)
	assert.Equal(t, 1, sent)
	require.Len(t, mailer.welcomes, 1)
	assert.Equal(t, "newbie@example.com", mailer.welcomes[0])

	// A second run finds the recorded send and stays quiet.
	_, sent, err = svc.ProcessEvents(context.Background())
	require.NoError(t, err)
	assert.Zero(t, sent)
	assert.Len(t, mailer.welcomes, 1)
}

func TestJourneyService_IgnoresEventsOutsideLookback(t *testing.T) {
	svc, mailer, db := newJourneyTestService(t)

	userId := seedUser(t, db, "stale@example.com")
	seedProfile(t, db, userId, "Stale")
	seedEvent(t, db, userId, entity.EventSignup, time.Now().Add(-10*24*time.Hour))

	_, sent, err := svc.ProcessEvents(context.Background())

	require.NoError(t, err)
	assert.Zero(t, sent)
	assert.Empty(t, mailer.welcomes)
}

func TestJourneyService_QuizCompletedJourney(t *testing.T) {
	svc, mailer, db := newJourneyTestService(t)

	userId := seedUser(t, db, "quizzer@example.com")
	seedProfile(t, db, userId, "Quizzer")
	seedEvent(t, db, userId, entity.EventQuizCompleted, time.Now().Add(-2*time.Hour))
	// Duplicate trigger events within the window still mean one email.
	seedEvent(t, db, userId, entity.EventQuizCompleted, time.Now().Add(-time.Hour))

	_, sent, err := svc.ProcessEvents(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 1, sent)
	assert.Len(t, mailer.quizzes, 1)
}

func TestJourneyService_MatchVelocityForQuietUsers(t *testing.T) {
	svc, mailer, db := newJourneyTestService(t)

	quietId := seedUser(t, db, "quiet@example.com")
	quietAt := time.Now().Add(-10 * 24 * time.Hour)
	require.NoError(t, db.Create(&model.Profile{
		Id:         uuid.New(),
		UserId:     quietId,
		Name:       "Quiet",
		LastOnline: &quietAt,
	}).Error)

	activeId := seedUser(t, db, "active@example.com")
	activeAt := time.Now().Add(-time.Hour)
	require.NoError(t, db.Create(&model.Profile{
		Id:         uuid.New(),
		UserId:     activeId,
		Name:       "Active",
		LastOnline: &activeAt,
	}).Error)

	_, sent, err := svc.ProcessEvents(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 1, sent)
	require.Len(t, mailer.velocity, 1)
	assert.Equal(t, "quiet@example.com", mailer.velocity[0])
}

func TestJourneyService_MatchVelocityRepeatsAfterLookback(t *testing.T) {
	svc, mailer, db := newJourneyTestService(t)

	userId := seedUser(t, db, "repeat@example.com")
	lastOnline := time.Now().Add(-10 * 24 * time.Hour)
	require.NoError(t, db.Create(&model.Profile{
		Id:         uuid.New(),
		UserId:     userId,
		Name:       "Repeat",
		LastOnline: &lastOnline,
	}).Error)

	// The previous nudge is older than the lookback, so a fresh one goes out.
	require.NoError(t, db.Create(&model.EmailJourney{
		Id:          uuid.New(),
		UserId:      userId,
		JourneyType: entity.JourneyMatchVelocitySlow,
		EmailSentAt: time.Now().Add(-8 * 24 * time.Hour),
	}).Error)

	_, sent, err := svc.ProcessEvents(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 1, sent)
	assert.Len(t, mailer.velocity, 1)
}

func TestJourneyService_MatchVelocitySuppressedWithinLookback(t *testing.T) {
	svc, mailer, db := newJourneyTestService(t)

	userId := seedUser(t, db, "nudged@example.com")
	lastOnline := time.Now().Add(-10 * 24 * time.Hour)
	require.NoError(t, db.Create(&model.Profile{
		Id:         uuid.New(),
		UserId:     userId,
		Name:       "Nudged",
		LastOnline: &lastOnline,
	}).Error)

	require.NoError(t, db.Create(&model.EmailJourney{
		Id:          uuid.New(),
		UserId:      userId,
		JourneyType: entity.JourneyMatchVelocitySlow,
		EmailSentAt: time.Now().Add(-2 * 24 * time.Hour),
	}).Error)

	_, sent, err := svc.ProcessEvents(context.Background())

	require.NoError(t, err)
	assert.Zero(t, sent)
	assert.Empty(t, mailer.velocity)
}

func TestJourneyService_FailedSendIsNotRecorded(t *testing.T) {
	factory, db := newTestFactory(t)
	mailer := &fakeMailer{failSends: true}
	svc := NewJourneyService(factory, mailer, testLogger)

	userId := seedUser(t, db, "unlucky@example.com")
	seedProfile(t, db, userId, "Unlucky")
	seedEvent(t, db, userId, entity.EventSignup, time.Now().Add(-time.Hour))

	_, sent, err := svc.ProcessEvents(context.Background())

	require.NoError(t, err)
	assert.Zero(t, sent)

	var count int64
	require.NoError(t, db.Model(&model.EmailJourney{}).Count(&count).Error)
	assert.Zero(t, count, "failed sends must stay eligible for the next run")
}

func TestJourneyService_UsesProfileNameOverFullName(t *testing.T) {
	factory, db := newTestFactory(t)

	userId := seedUser(t, db, "named@example.com")
	seedProfile(t, db, userId, "Preferred Name")
	seedEvent(t, db, userId, entity.EventSignup, time.Now().Add(-time.Hour))

	recorder := &nameRecordingMailer{}
	svc := NewJourneyService(factory, recorder, testLogger)

	_, _, err := svc.ProcessEvents(context.Background())

	require.NoError(t, err)
	require.Len(t, recorder.names, 1)
	assert.Equal(t, "Preferred Name", recorder.names[0])
}

// nameRecordingMailer captures the display name passed to welcome sends.
type nameRecordingMailer struct {
	fakeMailer
	names []string
}

func (m *nameRecordingMailer) SendWelcome(toEmail, name string) error {
	m.names = append(m.names, name)
	return m.fakeMailer.SendWelcome(toEmail, name)
}
