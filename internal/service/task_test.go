package service

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ltg-admin/internal/model"
	"ltg-admin/internal/store"
)

func newTaskService() (*TaskService, *store.MemoryStore) {
	st := store.NewMemoryStore()
	return NewTaskService(st, NewNotificationService(st)), st
}

func TestTaskCreateDefaultsAndNotifies(t *testing.T) {
	svc, st := newTaskService()
	ctx := context.Background()

	task := &model.Task{Title: "Design system", AssignedTo: "Sarah Chen"}
	require.NoError(t, svc.Create(ctx, task, nil))

	assert.NotEmpty(t, task.ObjectID)
	assert.Equal(t, "todo", task.Status)
	assert.NotEmpty(t, task.CreatedAt)
	assert.Equal(t, task.CreatedAt, task.UpdatedAt)

	var ns []model.Notification
	require.NoError(t, st.Find(ctx, store.Notifications, &ns))
	require.Len(t, ns, 1)
	assert.Equal(t, "New Task Created", ns[0].Title)
	assert.Contains(t, ns[0].Message, "Design system")
}

func TestTaskCreateUploadsAttachments(t *testing.T) {
	svc, _ := newTaskService()
	files := []FileUpload{
		{Filename: "spec.pdf", Reader: strings.NewReader("a")},
		{Filename: "mock.png", Reader: strings.NewReader("b")},
	}
	task := &model.Task{Title: "With files"}
	require.NoError(t, svc.Create(context.Background(), task, files))

	require.Len(t, task.AttachmentURLs, 2)
	assert.Contains(t, task.AttachmentURLs[0], "spec.pdf")
	assert.Contains(t, task.AttachmentURLs[1], "mock.png")
}

func TestTaskUpdateCompletionConvention(t *testing.T) {
	svc, _ := newTaskService()
	ctx := context.Background()

	task := &model.Task{Title: "Report", Status: "in-progress", Progress: 40}
	require.NoError(t, svc.Create(ctx, task, nil))

	task.Status = "completed"
	require.NoError(t, svc.Update(ctx, task))
	assert.Equal(t, 100, task.Progress)
	assert.NotEmpty(t, task.CompletedDate)
}

func TestTaskUpdateKeepsExplicitCompletedDate(t *testing.T) {
	svc, _ := newTaskService()
	ctx := context.Background()

	task := &model.Task{Title: "Report", Status: "in-progress"}
	require.NoError(t, svc.Create(ctx, task, nil))

	task.Status = "completed"
	task.CompletedDate = "2026-08-01"
	require.NoError(t, svc.Update(ctx, task))
	assert.Equal(t, "2026-08-01", task.CompletedDate)
}

func TestTaskUpdateRequiresID(t *testing.T) {
	svc, _ := newTaskService()
	assert.Error(t, svc.Update(context.Background(), &model.Task{Title: "X"}))
}

func TestTaskBulkSetStatus(t *testing.T) {
	svc, _ := newTaskService()
	ctx := context.Background()

	var ids []string
	for _, title := range []string{"a", "b", "c"} {
		task := &model.Task{Title: title, Status: "todo"}
		require.NoError(t, svc.Create(ctx, task, nil))
		ids = append(ids, task.ObjectID)
	}

	res, err := svc.Bulk(ctx, model.BulkRequest{Action: model.BulkSetStatus, IDs: ids, Status: "completed"})
	require.NoError(t, err)
	assert.True(t, res.AllOK())
	assert.Len(t, res.Succeeded, 3)

	for _, task := range svc.List(ctx) {
		assert.Equal(t, "completed", task.Status)
		assert.Equal(t, 100, task.Progress)
	}
}

func TestTaskBulkReassign(t *testing.T) {
	svc, _ := newTaskService()
	ctx := context.Background()

	task := &model.Task{Title: "a", AssignedTo: "Sarah Chen"}
	require.NoError(t, svc.Create(ctx, task, nil))

	res, err := svc.Bulk(ctx, model.BulkRequest{Action: model.BulkReassign, IDs: []string{task.ObjectID}, AssignedTo: "James Okafor"})
	require.NoError(t, err)
	assert.True(t, res.AllOK())
	assert.Equal(t, "James Okafor", svc.List(ctx)[0].AssignedTo)
}

func TestTaskBulkDelete(t *testing.T) {
	svc, st := newTaskService()
	ctx := context.Background()

	task := &model.Task{Title: "a"}
	require.NoError(t, svc.Create(ctx, task, nil))

	res, err := svc.Bulk(ctx, model.BulkRequest{Action: model.BulkDelete, IDs: []string{task.ObjectID}})
	require.NoError(t, err)
	assert.True(t, res.AllOK())
	assert.Equal(t, 0, st.Len(store.Tasks))
}

func TestTaskBulkDropsDuplicateIDs(t *testing.T) {
	svc, _ := newTaskService()
	ctx := context.Background()

	task := &model.Task{Title: "a", Status: "todo"}
	require.NoError(t, svc.Create(ctx, task, nil))

	// the same id repeated many times must update the record once, not
	// hand it to concurrent writers
	ids := make([]string, 64)
	for i := range ids {
		ids[i] = task.ObjectID
	}
	res, err := svc.Bulk(ctx, model.BulkRequest{Action: model.BulkSetStatus, IDs: ids, Status: "completed"})
	require.NoError(t, err)
	assert.True(t, res.AllOK())
	assert.Equal(t, []string{task.ObjectID}, res.Succeeded)
	assert.Equal(t, "completed", svc.List(ctx)[0].Status)
}

func TestTaskBulkDeleteDuplicateIDsIsNotAFailure(t *testing.T) {
	svc, st := newTaskService()
	ctx := context.Background()

	task := &model.Task{Title: "a"}
	require.NoError(t, svc.Create(ctx, task, nil))

	res, err := svc.Bulk(ctx, model.BulkRequest{
		Action: model.BulkDelete,
		IDs:    []string{task.ObjectID, task.ObjectID},
	})
	require.NoError(t, err)
	assert.True(t, res.AllOK())
	assert.Equal(t, []string{task.ObjectID}, res.Succeeded)
	assert.Equal(t, 0, st.Len(store.Tasks))
}

func TestTaskBulkPartialFailureIsReported(t *testing.T) {
	svc, _ := newTaskService()
	ctx := context.Background()

	task := &model.Task{Title: "a", Status: "todo"}
	require.NoError(t, svc.Create(ctx, task, nil))

	res, err := svc.Bulk(ctx, model.BulkRequest{
		Action: model.BulkSetStatus,
		IDs:    []string{task.ObjectID, "missing-id"},
		Status: "review",
	})
	require.NoError(t, err)
	assert.False(t, res.AllOK())
	assert.Equal(t, []string{task.ObjectID}, res.Succeeded)
	assert.Contains(t, res.Failed, "missing-id")
}

func TestTaskDeleteMissing(t *testing.T) {
	svc, _ := newTaskService()
	err := svc.Delete(context.Background(), "nope")
	assert.ErrorIs(t, err, store.ErrNotFound)
}
