package service

import (
	"context"
	"testing"
	"time"

	"getunlocked-be/internal/entity"
	"getunlocked-be/internal/model"
	"getunlocked-be/internal/repository"
	"getunlocked-be/internal/repository/implementation"
	"getunlocked-be/pkg/events"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// fakeDelivery records what the hub would have pushed.
type fakeDelivery struct {
	sends      []model.Notification
	broadcasts []model.Notification
}

func (d *fakeDelivery) Send(_ uuid.UUID, n model.Notification) {
	d.sends = append(d.sends, n)
}

func (d *fakeDelivery) Broadcast(n model.Notification) {
	d.broadcasts = append(d.broadcasts, n)
}

func newNotificationTestService(t *testing.T) (*NotificationService, repository.NotificationRepository, *fakeDelivery, *gorm.DB) {
	t.Helper()
	db := newTestDB(t)
	repo := implementation.NewNotificationRepository(db)
	delivery := &fakeDelivery{}
	svc := NewNotificationService(repo, nil, delivery, testLogger)
	return svc, repo, delivery, db
}

func seedNotificationType(t *testing.T, db *gorm.DB, code, target, template string, active bool) {
	t.Helper()
	require.NoError(t, db.Create(&model.NotificationType{
		Code:        code,
		DisplayName: "Test " + code,
		Template:    template,
		TargetType:  target,
		Priority:    "MEDIUM",
		Channels:    datatypes.JSON([]byte(`["web"]`)),
		IsActive:    active,
	}).Error)
}

func busEvent(code string, data map[string]interface{}) events.BaseEvent {
	return events.BaseEvent{Type: code, Data: data, OccurredAt: time.Now()}
}

func TestNotificationService_DropsEventWithoutRegistryRow(t *testing.T) {
	svc, _, delivery, db := newNotificationTestService(t)
	userId := seedUser(t, db, "quiet@example.com")

	err := svc.handleEvent(context.Background(), busEvent(events.TypeSubscriptionActivated, map[string]interface{}{
		"user_id": userId.String(),
	}))

	require.NoError(t, err, "unknown codes are skipped, not retried")
	var count int64
	require.NoError(t, db.Model(&model.Notification{}).Count(&count).Error)
	assert.Zero(t, count)
	assert.Empty(t, delivery.sends)
}

func TestNotificationService_PersistsAndDeliversSelfNotification(t *testing.T) {
	svc, _, delivery, db := newNotificationTestService(t)
	userId := seedUser(t, db, "subscriber@example.com")
	seedNotificationType(t, db, events.TypeSubscriptionActivated, "SELF", "Your {plan} subscription is active.", true)

	err := svc.handleEvent(context.Background(), busEvent(events.TypeSubscriptionActivated, map[string]interface{}{
		"user_id": userId.String(),
		"plan":    "unlocked-plus",
	}))

	require.NoError(t, err)

	var rows []model.Notification
	require.NoError(t, db.Where("user_id = ?", userId).Find(&rows).Error)
	require.Len(t, rows, 1)
	assert.Equal(t, events.TypeSubscriptionActivated, rows[0].TypeCode)
	assert.Equal(t, "Your unlocked-plus subscription is active.", rows[0].Message)
	assert.False(t, rows[0].IsRead)

	require.Len(t, delivery.sends, 1)
	assert.Equal(t, userId, delivery.sends[0].UserID)
}

func TestNotificationService_StripsSubjectPrefixFromEventType(t *testing.T) {
	svc, _, _, db := newNotificationTestService(t)
	userId := seedUser(t, db, "prefixed@example.com")
	seedNotificationType(t, db, events.TypeInsightsGenerated, "SELF", "You have {count} new insights.", true)

	err := svc.handleEvent(context.Background(), busEvent("events."+events.TypeInsightsGenerated, map[string]interface{}{
		"user_id": userId.String(),
		"count":   3,
	}))

	require.NoError(t, err)
	var row model.Notification
	require.NoError(t, db.First(&row, "user_id = ?", userId).Error)
	assert.Equal(t, "You have 3 new insights.", row.Message)
}

func TestNotificationService_SkipsInactiveType(t *testing.T) {
	svc, _, delivery, db := newNotificationTestService(t)
	userId := seedUser(t, db, "inactive@example.com")
	seedNotificationType(t, db, events.TypeInsightsGenerated, "SELF", "ignored", false)

	err := svc.handleEvent(context.Background(), busEvent(events.TypeInsightsGenerated, map[string]interface{}{
		"user_id": userId.String(),
	}))

	require.NoError(t, err)
	var count int64
	require.NoError(t, db.Model(&model.Notification{}).Count(&count).Error)
	assert.Zero(t, count)
	assert.Empty(t, delivery.sends)
}

func TestNotificationService_BroadcastTypesAreNotPersisted(t *testing.T) {
	svc, _, delivery, db := newNotificationTestService(t)
	seedNotificationType(t, db, "SYSTEM_BROADCAST", "BROADCAST", "{message}", true)

	err := svc.handleEvent(context.Background(), busEvent("SYSTEM_BROADCAST", map[string]interface{}{
		"message": "Scheduled maintenance tonight",
	}))

	require.NoError(t, err)
	require.Len(t, delivery.broadcasts, 1)
	assert.Equal(t, "Scheduled maintenance tonight", delivery.broadcasts[0].Message)

	var count int64
	require.NoError(t, db.Model(&model.Notification{}).Count(&count).Error)
	assert.Zero(t, count, "broadcasts are push-only")
}

func TestNotificationService_AdminTargetFansOutToAdmins(t *testing.T) {
	svc, _, delivery, db := newNotificationTestService(t)
	seedNotificationType(t, db, events.TypeUserEventRecorded, "ADMIN", "User {user_id} recorded {event_type}.", true)

	regularId := seedUser(t, db, "member@example.com")
	adminIds := make([]uuid.UUID, 0, 2)
	for _, email := range []string{"admin1@example.com", "admin2@example.com"} {
		id := uuid.New()
		require.NoError(t, db.Create(&model.User{
			Id:       id,
			Email:    email,
			FullName: "Admin User",
			Role:     string(entity.UserRoleAdmin),
			Status:   string(entity.UserStatusActive),
		}).Error)
		adminIds = append(adminIds, id)
	}

	err := svc.handleEvent(context.Background(), busEvent(events.TypeUserEventRecorded, map[string]interface{}{
		"user_id":    regularId.String(),
		"event_type": "quiz_completed",
	}))

	require.NoError(t, err)
	var count int64
	require.NoError(t, db.Model(&model.Notification{}).Where("user_id IN ?", adminIds).Count(&count).Error)
	assert.EqualValues(t, 2, count)

	var regularCount int64
	require.NoError(t, db.Model(&model.Notification{}).Where("user_id = ?", regularId).Count(&regularCount).Error)
	assert.Zero(t, regularCount, "the acting user is not a recipient of admin notifications")
	assert.Len(t, delivery.sends, 2)
}

func TestNotificationService_MutedTypeSkipsUser(t *testing.T) {
	svc, _, delivery, db := newNotificationTestService(t)
	userId := seedUser(t, db, "muted@example.com")
	seedNotificationType(t, db, events.TypeInsightsGenerated, "SELF", "You have {count} new insights.", true)

	require.NoError(t, db.Create(&model.UserNotificationPreference{
		UserID:       userId,
		MutedTypes:   datatypes.JSONSlice[string]{events.TypeInsightsGenerated},
		EmailEnabled: true,
		PushEnabled:  true,
	}).Error)

	err := svc.handleEvent(context.Background(), busEvent(events.TypeInsightsGenerated, map[string]interface{}{
		"user_id": userId.String(),
		"count":   1,
	}))

	require.NoError(t, err)
	var count int64
	require.NoError(t, db.Model(&model.Notification{}).Where("user_id = ?", userId).Count(&count).Error)
	assert.Zero(t, count)
	assert.Empty(t, delivery.sends)
}

func TestNotificationService_PushDisabledStillPersists(t *testing.T) {
	svc, _, delivery, db := newNotificationTestService(t)
	userId := seedUser(t, db, "nopush@example.com")
	seedNotificationType(t, db, events.TypeSubscriptionActivated, "SELF", "Your {plan} subscription is active.", true)

	require.NoError(t, db.Create(&model.UserNotificationPreference{
		UserID:       userId,
		EmailEnabled: true,
		PushEnabled:  false,
	}).Error)

	err := svc.handleEvent(context.Background(), busEvent(events.TypeSubscriptionActivated, map[string]interface{}{
		"user_id": userId.String(),
		"plan":    "unlocked-beyond",
	}))

	require.NoError(t, err)
	var count int64
	require.NoError(t, db.Model(&model.Notification{}).Where("user_id = ?", userId).Count(&count).Error)
	assert.EqualValues(t, 1, count, "the inbox entry survives the push opt-out")
	assert.Empty(t, delivery.sends)
}

func TestNotificationService_PreferencesRoundTrip(t *testing.T) {
	svc, _, _, db := newNotificationTestService(t)
	userId := seedUser(t, db, "prefs@example.com")

	pref, err := svc.GetPreferences(context.Background(), userId)
	require.NoError(t, err)
	assert.True(t, pref.PushEnabled, "defaults are all-on before any save")
	assert.True(t, pref.EmailEnabled)
	assert.Empty(t, pref.MutedTypes)

	_, err = svc.UpdatePreferences(context.Background(), userId, []string{events.TypeUserEventRecorded}, true, false)
	require.NoError(t, err)

	pref, err = svc.GetPreferences(context.Background(), userId)
	require.NoError(t, err)
	assert.False(t, pref.PushEnabled)
	assert.True(t, pref.HasMuted(events.TypeUserEventRecorded))
	assert.False(t, pref.HasMuted(events.TypeInsightsGenerated))

	// A second update replaces, not appends.
	_, err = svc.UpdatePreferences(context.Background(), userId, nil, true, true)
	require.NoError(t, err)
	pref, err = svc.GetPreferences(context.Background(), userId)
	require.NoError(t, err)
	assert.True(t, pref.PushEnabled)
	assert.Empty(t, []string(pref.MutedTypes))
}

func TestNotificationService_InboxReadFlow(t *testing.T) {
	svc, _, _, db := newNotificationTestService(t)
	userId := seedUser(t, db, "inbox@example.com")
	seedNotificationType(t, db, events.TypeInsightsGenerated, "SELF", "You have {count} new insights.", true)

	for i := 0; i < 2; i++ {
		require.NoError(t, svc.handleEvent(context.Background(), busEvent(events.TypeInsightsGenerated, map[string]interface{}{
			"user_id": userId.String(),
			"count":   i + 1,
		})))
	}

	unread, err := svc.GetUnreadCount(context.Background(), userId)
	require.NoError(t, err)
	assert.EqualValues(t, 2, unread)

	notifications, total, err := svc.GetNotifications(context.Background(), userId, 10, 0)
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)
	require.Len(t, notifications, 2)

	require.NoError(t, svc.MarkAsRead(context.Background(), notifications[0].ID))
	unread, err = svc.GetUnreadCount(context.Background(), userId)
	require.NoError(t, err)
	assert.EqualValues(t, 1, unread)

	require.NoError(t, svc.MarkAllAsRead(context.Background(), userId))
	unread, err = svc.GetUnreadCount(context.Background(), userId)
	require.NoError(t, err)
	assert.Zero(t, unread)
}
