package service

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"getunlocked-be/internal/entity"
	"getunlocked-be/internal/model"
	"getunlocked-be/internal/pkg/logger"
	"getunlocked-be/internal/repository/unitofwork"
	"getunlocked-be/pkg/llm"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&model.User{},
		&model.PasswordResetToken{},
		&model.EmailVerificationToken{},
		&model.UserRefreshToken{},
		&model.Profile{},
		&model.DNAProfile{},
		&model.DNAInteraction{},
		&model.DNACompatibility{},
		&model.DNAInsight{},
		&model.Subscriber{},
		&model.PayPalPayment{},
		&model.Match{},
		&model.Message{},
		&model.UserEvent{},
		&model.EmailJourney{},
		&model.CompatibilityDigest{},
		&model.VaultMatch{},
		&model.VaultPrompt{},
		&model.VaultMoment{},
		&model.NotificationType{},
		&model.Notification{},
		&model.UserNotificationPreference{},
	))

	return db
}

func newTestFactory(t *testing.T) (unitofwork.RepositoryFactory, *gorm.DB) {
	db := newTestDB(t)
	return unitofwork.NewRepositoryFactory(db), db
}

// noopLogger keeps service logging quiet during tests.
type noopLogger struct{}

func (noopLogger) Debug(string, string, map[string]interface{}) {}
func (noopLogger) Info(string, string, map[string]interface{})  {}
func (noopLogger) Warn(string, string, map[string]interface{})  {}
func (noopLogger) Error(string, string, map[string]interface{}) {}
func (noopLogger) Sync() error                                  { return nil }

var testLogger logger.ILogger = noopLogger{}

// fakeLLM replays canned responses and counts calls.
type fakeLLM struct {
	responses []string
	err       error
	calls     int
}

func (f *fakeLLM) Chat(_ context.Context, _ []llm.Message, _ ...llm.Option) (string, error) {
	f.calls++
	if f.err != nil {
		return "", f.err
	}
	if len(f.responses) == 0 {
		return "", fmt.Errorf("fakeLLM: no responses left")
	}
	resp := f.responses[0]
	if len(f.responses) > 1 {
		f.responses = f.responses[1:]
	}
	return resp, nil
}

func (f *fakeLLM) Generate(ctx context.Context, prompt string, options ...llm.Option) (string, error) {
	return f.Chat(ctx, []llm.Message{{Role: "user", Content: prompt}}, options...)
}

// fakePublisher collects queued analysis payloads.
type fakePublisher struct {
	payloads [][]byte
}

func (p *fakePublisher) Publish(_ context.Context, payload []byte) error {
	p.payloads = append(p.payloads, payload)
	return nil
}

// fakeMailer records journey sends instead of dialing SMTP. Some email
// sends happen on goroutines, so access is locked.
type fakeMailer struct {
	mu        sync.Mutex
	welcomes  []string
	quizzes   []string
	velocity  []string
	thanks    []string
	otps      []string
	resets    []string
	failSends bool
}

func (m *fakeMailer) send(bucket *[]string, toEmail string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failSends {
		return fmt.Errorf("smtp unavailable")
	}
	*bucket = append(*bucket, toEmail)
	return nil
}

func (m *fakeMailer) SendOTP(toEmail, _ string) error        { return m.send(&m.otps, toEmail) }
func (m *fakeMailer) SendResetToken(toEmail, _ string) error { return m.send(&m.resets, toEmail) }
func (m *fakeMailer) SendWelcome(toEmail, _ string) error    { return m.send(&m.welcomes, toEmail) }
func (m *fakeMailer) SendQuizCompleted(toEmail, _ string) error {
	return m.send(&m.quizzes, toEmail)
}
func (m *fakeMailer) SendMatchVelocitySlow(toEmail, _ string) error {
	return m.send(&m.velocity, toEmail)
}
func (m *fakeMailer) SendSubscriptionThanks(toEmail, _, _ string) error {
	return m.send(&m.thanks, toEmail)
}

func seedUser(t *testing.T, db *gorm.DB, email string) uuid.UUID {
	t.Helper()
	id := uuid.New()
	require.NoError(t, db.Create(&model.User{
		Id:       id,
		Email:    email,
		FullName: "Test User",
		Role:     string(entity.UserRoleUser),
		Status:   string(entity.UserStatusActive),
	}).Error)
	return id
}

func seedProfile(t *testing.T, db *gorm.DB, userId uuid.UUID, name string) {
	t.Helper()
	require.NoError(t, db.Create(&model.Profile{
		Id:     uuid.New(),
		UserId: userId,
		Name:   name,
		Age:    30,
	}).Error)
}

func seedSubscriber(t *testing.T, db *gorm.DB, userId uuid.UUID, tier string) {
	t.Helper()
	now := time.Now()
	require.NoError(t, db.Create(&model.Subscriber{
		Id:                uuid.New(),
		UserId:            userId,
		Subscribed:        true,
		SubscriptionTier:  tier,
		SubscriptionStart: &now,
	}).Error)
}
