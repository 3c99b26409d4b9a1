package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ltg-admin/internal/model"
	"ltg-admin/internal/store"
)

func TestNotifyAndList(t *testing.T) {
	st := store.NewMemoryStore()
	svc := NewNotificationService(st)
	ctx := context.Background()

	svc.Notify(ctx, "info", "First", "first message", "task", "t1")
	svc.Notify(ctx, "success", "Second", "second message", "intern", "i1")

	items := svc.List(ctx, 0)
	require.Len(t, items, 2)
	for _, n := range items {
		assert.False(t, n.Read)
		assert.NotEmpty(t, n.Timestamp)
	}
}

func TestNotificationListLimit(t *testing.T) {
	st := store.NewMemoryStore()
	svc := NewNotificationService(st)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		svc.Notify(ctx, "info", "n", "m", "task", "")
	}
	assert.Len(t, svc.List(ctx, 3), 3)
	assert.Len(t, svc.List(ctx, 0), 5)
}

func TestMarkReadIsIdempotent(t *testing.T) {
	st := store.NewMemoryStore()
	svc := NewNotificationService(st)
	ctx := context.Background()

	svc.Notify(ctx, "info", "n", "m", "task", "")
	id := svc.List(ctx, 0)[0].ObjectID

	require.NoError(t, svc.MarkRead(ctx, id))
	assert.True(t, svc.List(ctx, 0)[0].Read)

	// second mark is a no-op, not an error
	require.NoError(t, svc.MarkRead(ctx, id))
}

func TestMarkReadMissing(t *testing.T) {
	svc := NewNotificationService(store.NewMemoryStore())
	assert.ErrorIs(t, svc.MarkRead(context.Background(), "nope"), store.ErrNotFound)
}

func TestMarkAllRead(t *testing.T) {
	st := store.NewMemoryStore()
	svc := NewNotificationService(st)
	ctx := context.Background()

	for i := 0; i < 4; i++ {
		svc.Notify(ctx, "info", "n", "m", "task", "")
	}
	require.NoError(t, svc.MarkAllRead(ctx))

	var items []model.Notification
	require.NoError(t, st.Find(ctx, store.Notifications, &items))
	for _, n := range items {
		assert.True(t, n.Read)
	}

	// all already read: still fine
	require.NoError(t, svc.MarkAllRead(ctx))
}
