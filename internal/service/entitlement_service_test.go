package service

import (
	"context"
	"testing"

	"getunlocked-be/internal/entity"
	"getunlocked-be/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEntitlementService_ResolveFreeByDefault(t *testing.T) {
	factory, db := newTestFactory(t)
	svc := NewEntitlementService(factory, testLogger)

	userId := seedUser(t, db, "free@example.com")
	seedProfile(t, db, userId, "Free User")

	ent := svc.Resolve(context.Background(), userId)

	assert.Equal(t, entity.TierFree, ent.Tier)
	assert.False(t, ent.Subscribed)
	assert.False(t, ent.CanUseDNA())
	assert.False(t, ent.UnlimitedMessages())
}

func TestEntitlementService_ResolvePlusSubscriber(t *testing.T) {
	factory, db := newTestFactory(t)
	svc := NewEntitlementService(factory, testLogger)

	userId := seedUser(t, db, "plus@example.com")
	seedProfile(t, db, userId, "Plus User")
	seedSubscriber(t, db, userId, "unlocked-plus")

	ent := svc.Resolve(context.Background(), userId)

	assert.Equal(t, entity.TierPlus, ent.Tier)
	assert.True(t, ent.Subscribed)
	assert.True(t, ent.CanUseDNA())
	assert.True(t, ent.CanUseDigest())
	assert.True(t, ent.UnlimitedMessages())
}

func TestEntitlementService_ResolveBeyondFromTierName(t *testing.T) {
	factory, db := newTestFactory(t)
	svc := NewEntitlementService(factory, testLogger)

	userId := seedUser(t, db, "beyond@example.com")
	seedProfile(t, db, userId, "Beyond User")
	seedSubscriber(t, db, userId, "Unlocked-Beyond")

	ent := svc.Resolve(context.Background(), userId)

	assert.Equal(t, entity.TierBeyond, ent.Tier)
	assert.True(t, ent.Subscribed)
}

func TestEntitlementService_BeyondBadgeWithoutSubscription(t *testing.T) {
	factory, db := newTestFactory(t)
	svc := NewEntitlementService(factory, testLogger)

	userId := seedUser(t, db, "badge@example.com")
	require.NoError(t, db.Create(&model.Profile{
		Id:                         uuid.New(),
		UserId:                     userId,
		Name:                       "Badge User",
		UnlockedBeyondBadgeEnabled: true,
	}).Error)

	ent := svc.Resolve(context.Background(), userId)

	assert.Equal(t, entity.TierBeyond, ent.Tier)
	assert.False(t, ent.Subscribed)
	assert.True(t, ent.CanUseDNA())
}

func TestEntitlementService_FailsClosedOnReadError(t *testing.T) {
	factory, db := newTestFactory(t)
	svc := NewEntitlementService(factory, testLogger)

	userId := seedUser(t, db, "broken@example.com")
	require.NoError(t, db.Migrator().DropTable(&model.Subscriber{}))

	ent := svc.Resolve(context.Background(), userId)

	assert.Equal(t, entity.TierFree, ent.Tier)
	assert.False(t, ent.CanUseDNA())
}

func TestEntitlementService_InvalidateDropsCache(t *testing.T) {
	factory, db := newTestFactory(t)
	svc := NewEntitlementService(factory, testLogger)

	userId := seedUser(t, db, "cache@example.com")
	seedProfile(t, db, userId, "Cache User")

	ent := svc.Resolve(context.Background(), userId)
	require.Equal(t, entity.TierFree, ent.Tier)

	// A subscription landing after the first resolve is invisible until
	// the cache entry is invalidated.
	seedSubscriber(t, db, userId, "unlocked-plus")
	ent = svc.Resolve(context.Background(), userId)
	assert.Equal(t, entity.TierFree, ent.Tier)

	svc.Invalidate(userId)
	ent = svc.Resolve(context.Background(), userId)
	assert.Equal(t, entity.TierPlus, ent.Tier)
}
