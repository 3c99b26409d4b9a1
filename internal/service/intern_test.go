package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ltg-admin/internal/model"
	"ltg-admin/internal/store"
)

func newInternService() (*InternService, *store.MemoryStore) {
	st := store.NewMemoryStore()
	return NewInternService(st, NewNotificationService(st)), st
}

func TestInternCreateDefaultsStatusAndNotifies(t *testing.T) {
	svc, st := newInternService()
	ctx := context.Background()

	in := &model.Intern{Name: "Sarah Chen", Department: "Engineering"}
	require.NoError(t, svc.Create(ctx, in))

	assert.NotEmpty(t, in.ObjectID)
	assert.Equal(t, "pending", in.Status)

	var ns []model.Notification
	require.NoError(t, st.Find(ctx, store.Notifications, &ns))
	require.Len(t, ns, 1)
	assert.Equal(t, "New Intern Added", ns[0].Title)
	assert.Equal(t, "Sarah Chen has been added to Engineering", ns[0].Message)
}

func TestInternCreateIgnoresClientObjectID(t *testing.T) {
	svc, _ := newInternService()
	in := &model.Intern{Base: model.Base{ObjectID: "client-picked"}, Name: "X"}
	require.NoError(t, svc.Create(context.Background(), in))
	assert.NotEqual(t, "client-picked", in.ObjectID)
}

func TestInternUpdateRoundTrip(t *testing.T) {
	svc, _ := newInternService()
	ctx := context.Background()

	in := &model.Intern{Name: "Sarah", Status: "active", Progress: 40}
	require.NoError(t, svc.Create(ctx, in))

	in.Progress = 55
	require.NoError(t, svc.Update(ctx, in))

	got := svc.List(ctx)
	require.Len(t, got, 1)
	assert.Equal(t, 55, got[0].Progress)
	assert.Equal(t, in.ObjectID, got[0].ObjectID)
}

func TestInternUpdateRequiresID(t *testing.T) {
	svc, _ := newInternService()
	assert.Error(t, svc.Update(context.Background(), &model.Intern{Name: "X"}))
}

func TestInternDelete(t *testing.T) {
	svc, st := newInternService()
	ctx := context.Background()

	in := &model.Intern{Name: "Sarah"}
	require.NoError(t, svc.Create(ctx, in))
	require.NoError(t, svc.Delete(ctx, in.ObjectID))
	assert.Equal(t, 0, st.Len(store.Interns))

	assert.ErrorIs(t, svc.Delete(ctx, in.ObjectID), store.ErrNotFound)
}
