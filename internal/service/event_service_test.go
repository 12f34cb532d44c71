package service

import (
	"context"
	"testing"

	"getunlocked-be/internal/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEventService_TrackAndList(t *testing.T) {
	factory, db := newTestFactory(t)
	svc := NewEventService(factory, nil)

	userId := seedUser(t, db, "events@example.com")

	require.NoError(t, svc.Track(context.Background(), userId, entity.EventProfileViewed, map[string]interface{}{
		"viewed_user": "someone",
	}))
	require.NoError(t, svc.Track(context.Background(), userId, entity.EventLogin, nil))

	events, err := svc.List(context.Background(), userId, 10)

	require.NoError(t, err)
	require.Len(t, events, 2)
}

func TestEventService_TrackRequiresType(t *testing.T) {
	factory, db := newTestFactory(t)
	svc := NewEventService(factory, nil)

	userId := seedUser(t, db, "notype@example.com")

	err := svc.Track(context.Background(), userId, "", nil)

	require.Error(t, err)
}

func TestEventService_ListScopedToUser(t *testing.T) {
	factory, db := newTestFactory(t)
	svc := NewEventService(factory, nil)

	userId := seedUser(t, db, "mine@example.com")
	otherId := seedUser(t, db, "theirs@example.com")

	require.NoError(t, svc.Track(context.Background(), userId, entity.EventLogin, nil))
	require.NoError(t, svc.Track(context.Background(), otherId, entity.EventLogin, nil))

	events, err := svc.List(context.Background(), userId, 10)

	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, userId, events[0].UserId)
}
