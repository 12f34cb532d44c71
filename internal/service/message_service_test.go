package service

import (
	"context"
	"fmt"
	"testing"

	"getunlocked-be/internal/model"
	"getunlocked-be/pkg/quota"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newMessageTestService(t *testing.T, freeLimit int64) (IMessageService, *gorm.DB, uuid.UUID, uuid.UUID) {
	factory, db := newTestFactory(t)
	entitlements := NewEntitlementService(factory, testLogger)
	recorder := NewRecorderService(entitlements, &fakePublisher{}, testLogger)
	events := NewEventService(factory, nil)
	svc := NewMessageService(factory, entitlements, recorder, events, quota.NewMemoryCounter(), freeLimit, testLogger)

	senderId := seedUser(t, db, "sender@example.com")
	seedProfile(t, db, senderId, "Sender")
	recipientId := seedUser(t, db, "recipient@example.com")
	seedProfile(t, db, recipientId, "Recipient")

	return svc, db, senderId, recipientId
}

func TestMessageService_SendStoresMessage(t *testing.T) {
	svc, db, senderId, recipientId := newMessageTestService(t, 5)

	msg, err := svc.Send(context.Background(), senderId, recipientId, nil, "hey there")

	require.NoError(t, err)
	assert.Equal(t, senderId, msg.SenderId)
	assert.Equal(t, recipientId, msg.RecipientId)

	var row model.Message
	require.NoError(t, db.First(&row, "id = ?", msg.Id).Error)
	assert.Equal(t, "hey there", row.Content)
}

func TestMessageService_SendEnforcesFreeQuota(t *testing.T) {
	svc, db, senderId, recipientId := newMessageTestService(t, 5)

	for i := 0; i < 5; i++ {
		_, err := svc.Send(context.Background(), senderId, recipientId, nil, fmt.Sprintf("msg %d", i))
		require.NoError(t, err)
	}

	_, err := svc.Send(context.Background(), senderId, recipientId, nil, "one too many")

	require.ErrorIs(t, err, quota.ErrQuotaExceeded)

	// The rejected send must not leave a row behind.
	var count int64
	require.NoError(t, db.Model(&model.Message{}).Where("sender_id = ?", senderId).Count(&count).Error)
	assert.EqualValues(t, 5, count)
}

func TestMessageService_PremiumBypassesQuota(t *testing.T) {
	svc, db, senderId, recipientId := newMessageTestService(t, 2)
	seedSubscriber(t, db, senderId, "unlocked-plus")

	for i := 0; i < 10; i++ {
		_, err := svc.Send(context.Background(), senderId, recipientId, nil, fmt.Sprintf("msg %d", i))
		require.NoError(t, err)
	}
}

func TestMessageService_SendRejectsEmptyContent(t *testing.T) {
	svc, _, senderId, recipientId := newMessageTestService(t, 5)

	_, err := svc.Send(context.Background(), senderId, recipientId, nil, "")

	require.Error(t, err)
}

func TestMessageService_SendRejectsSelf(t *testing.T) {
	svc, _, senderId, _ := newMessageTestService(t, 5)

	_, err := svc.Send(context.Background(), senderId, senderId, nil, "talking to myself")

	require.Error(t, err)
}

func TestMessageService_Limits(t *testing.T) {
	svc, _, senderId, recipientId := newMessageTestService(t, 5)

	_, err := svc.Send(context.Background(), senderId, recipientId, nil, "first")
	require.NoError(t, err)
	_, err = svc.Send(context.Background(), senderId, recipientId, nil, "second")
	require.NoError(t, err)

	unlimited, limit, used, err := svc.Limits(context.Background(), senderId)

	require.NoError(t, err)
	assert.False(t, unlimited)
	assert.EqualValues(t, 5, limit)
	assert.EqualValues(t, 2, used)
}

func TestMessageService_LimitsUnlimitedForPremium(t *testing.T) {
	svc, db, senderId, _ := newMessageTestService(t, 5)
	seedSubscriber(t, db, senderId, "unlocked-beyond")

	unlimited, _, _, err := svc.Limits(context.Background(), senderId)

	require.NoError(t, err)
	assert.True(t, unlimited)
}

func TestMessageService_GetConversationClampsLimit(t *testing.T) {
	svc, _, senderId, recipientId := newMessageTestService(t, 100)

	for i := 0; i < 3; i++ {
		_, err := svc.Send(context.Background(), senderId, recipientId, nil, fmt.Sprintf("msg %d", i))
		require.NoError(t, err)
	}

	messages, err := svc.GetConversation(context.Background(), senderId, recipientId, -1)

	require.NoError(t, err)
	assert.Len(t, messages, 3)
}
