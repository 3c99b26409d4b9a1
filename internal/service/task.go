package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"ltg-admin/internal/logger"
	"ltg-admin/internal/model"
	"ltg-admin/internal/store"

	"gorm.io/datatypes"
)

// bulkConcurrency bounds the fan-out of bulk operations. N is already bounded
// by how many rows a human selected, this just keeps the store polite.
const bulkConcurrency = 8

type TaskService struct {
	store  store.Store
	notify *NotificationService
}

func NewTaskService(st store.Store, notify *NotificationService) *TaskService {
	return &TaskService{store: st, notify: notify}
}

func (s *TaskService) List(ctx context.Context) []model.Task {
	var tasks []model.Task
	if err := s.store.Find(ctx, store.Tasks, &tasks); err != nil {
		logger.Err("task.list failed", err)
		return []model.Task{}
	}
	return tasks
}

// Create stores a new task, uploading any attachments first with one
// concurrent upload per file, all-or-nothing.
func (s *TaskService) Create(ctx context.Context, t *model.Task, files []FileUpload) error {
	now := time.Now()
	t.ObjectID = ""
	if t.Status == "" {
		t.Status = "todo"
	}
	t.CreatedAt = now.Format(time.RFC3339)
	t.UpdatedAt = t.CreatedAt

	if len(files) > 0 {
		urls, err := s.uploadAll(ctx, files)
		if err != nil {
			return fmt.Errorf("upload task attachments: %w", err)
		}
		t.AttachmentURLs = datatypes.JSONSlice[string](urls)
	}

	if err := s.store.Save(ctx, store.Tasks, t); err != nil {
		return fmt.Errorf("create task: %w", err)
	}
	logger.Info("task.create.ok", "id", t.ObjectID, "title", t.Title)
	s.notify.Notify(ctx, "info", "New Task Created",
		fmt.Sprintf("Task %q assigned to %s", t.Title, t.AssignedTo), "task", t.ObjectID)
	return nil
}

// Update saves an edited task. Completing a task applies the completion
// convention at this moment only: progress pinned to 100 and completedDate
// filled if the form left it empty. Nothing re-validates it later.
func (s *TaskService) Update(ctx context.Context, t *model.Task) error {
	if t.ObjectID == "" {
		return fmt.Errorf("update task: missing objectId")
	}
	if t.Status == "completed" {
		t.Progress = 100
		if t.CompletedDate == "" {
			t.CompletedDate = time.Now().Format(dateLayout)
		}
	}
	t.UpdatedAt = time.Now().Format(time.RFC3339)
	if err := s.store.Save(ctx, store.Tasks, t); err != nil {
		return fmt.Errorf("update task %s: %w", t.ObjectID, err)
	}
	logger.Info("task.update.ok", "id", t.ObjectID, "status", t.Status)
	return nil
}

func (s *TaskService) Delete(ctx context.Context, id string) error {
	if err := s.store.Remove(ctx, store.Tasks, id); err != nil {
		return fmt.Errorf("delete task %s: %w", id, err)
	}
	logger.Info("task.delete.ok", "id", id)
	return nil
}

// Bulk applies one action to each selected task with a bounded concurrent
// fan-out and waits for all. The result reports success and failure per
// record: a partial failure is returned as such, never as full success, so
// the caller can keep the selection and retry.
func (s *TaskService) Bulk(ctx context.Context, req model.BulkRequest) (model.BulkResult, error) {
	tasks := s.List(ctx)
	byID := make(map[string]*model.Task, len(tasks))
	for i := range tasks {
		byID[tasks[i].ObjectID] = &tasks[i]
	}

	// Drop repeated ids: a duplicate would hand the same record to two
	// goroutines at once.
	ids := make([]string, 0, len(req.IDs))
	seen := make(map[string]struct{}, len(req.IDs))
	for _, id := range req.IDs {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}

	type outcome struct {
		id  string
		err error
	}
	results := make([]outcome, len(ids))
	sem := make(chan struct{}, bulkConcurrency)
	var wg sync.WaitGroup
	for i, id := range ids {
		wg.Add(1)
		sem <- struct{}{}
		go func(i int, id string) {
			defer wg.Done()
			defer func() { <-sem }()
			results[i] = outcome{id, s.bulkOne(ctx, req, byID[id], id)}
		}(i, id)
	}
	wg.Wait()

	res := model.BulkResult{Succeeded: []string{}}
	for _, o := range results {
		if o.err != nil {
			if res.Failed == nil {
				res.Failed = map[string]string{}
			}
			res.Failed[o.id] = o.err.Error()
			continue
		}
		res.Succeeded = append(res.Succeeded, o.id)
	}
	logger.Info("task.bulk.done", "action", req.Action, "ok", len(res.Succeeded), "failed", len(res.Failed))
	return res, nil
}

func (s *TaskService) bulkOne(ctx context.Context, req model.BulkRequest, t *model.Task, id string) error {
	if req.Action == model.BulkDelete {
		return s.store.Remove(ctx, store.Tasks, id)
	}
	if t == nil {
		return store.ErrNotFound
	}
	switch req.Action {
	case model.BulkSetStatus:
		t.Status = req.Status
	case model.BulkReassign:
		t.AssignedTo = req.AssignedTo
	default:
		return fmt.Errorf("unknown bulk action %q", req.Action)
	}
	if t.Status == "completed" {
		t.Progress = 100
		if t.CompletedDate == "" {
			t.CompletedDate = time.Now().Format(dateLayout)
		}
	}
	t.UpdatedAt = time.Now().Format(time.RFC3339)
	return s.store.Save(ctx, store.Tasks, t)
}

func (s *TaskService) uploadAll(ctx context.Context, files []FileUpload) ([]string, error) {
	urls := make([]string, len(files))
	errs := make([]error, len(files))
	prefix := fmt.Sprintf("task_%d", time.Now().UnixMilli())
	var wg sync.WaitGroup
	for i, f := range files {
		wg.Add(1)
		go func(i int, f FileUpload) {
			defer wg.Done()
			urls[i], errs[i] = s.store.Upload(ctx, "tasks", prefix+"_"+f.Filename, f.Reader)
		}(i, f)
	}
	wg.Wait()
	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return urls, nil
}
