package service

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ltg-admin/internal/model"
	"ltg-admin/internal/store"
)

func TestFileVisitedStoreRoundTrip(t *testing.T) {
	vs := NewFileVisitedStore(filepath.Join(t.TempDir(), "visited.json"))
	ctx := context.Background()

	ok, err := vs.Visited(ctx, "/interns")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, vs.MarkVisited(ctx, "/interns"))
	require.NoError(t, vs.MarkVisited(ctx, "/tasks"))
	// marking twice is a no-op
	require.NoError(t, vs.MarkVisited(ctx, "/interns"))

	ok, err = vs.Visited(ctx, "/interns")
	require.NoError(t, err)
	assert.True(t, ok)

	all, err := vs.All(ctx)
	require.NoError(t, err)
	assert.Equal(t, map[string]bool{"/interns": true, "/tasks": true}, all)
}

func TestFileVisitedStoreClear(t *testing.T) {
	vs := NewFileVisitedStore(filepath.Join(t.TempDir(), "visited.json"))
	ctx := context.Background()

	require.NoError(t, vs.MarkVisited(ctx, "/dashboard"))
	require.NoError(t, vs.Clear(ctx))

	all, err := vs.All(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)

	// clearing an already-missing file is fine
	require.NoError(t, vs.Clear(ctx))
}

func TestFileVisitedStoreCorruptFileResets(t *testing.T) {
	path := filepath.Join(t.TempDir(), "visited.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	vs := NewFileVisitedStore(path)
	all, err := vs.All(context.Background())
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestNavigationCounts(t *testing.T) {
	st := store.NewMemoryStore()
	notify := NewNotificationService(st)
	interns := NewInternService(st, notify)
	tasks := NewTaskService(st, notify)
	certs := NewCertificateService(st, notify)
	ctx := context.Background()

	require.NoError(t, interns.Create(ctx, &model.Intern{Name: "a"}))
	require.NoError(t, interns.Create(ctx, &model.Intern{Name: "b"}))
	require.NoError(t, tasks.Create(ctx, &model.Task{Title: "t"}, nil))

	nav := NewNavigationService(NewFileVisitedStore(filepath.Join(t.TempDir(), "v.json")), interns, tasks, certs)
	c := nav.Counts(ctx)
	assert.Equal(t, model.NavigationCounts{Interns: 2, Tasks: 1, Certificates: 0}, c)
}

func TestNavigationVisitedPagesDegradesToEmpty(t *testing.T) {
	st := store.NewMemoryStore()
	notify := NewNotificationService(st)
	nav := NewNavigationService(
		NewFileVisitedStore(filepath.Join(t.TempDir(), "v.json")),
		NewInternService(st, notify), NewTaskService(st, notify), NewCertificateService(st, notify),
	)
	m := nav.VisitedPages(context.Background())
	assert.NotNil(t, m)
	assert.Empty(t, m)
}
