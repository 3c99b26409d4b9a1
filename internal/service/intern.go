package service

import (
	"context"
	"fmt"
	"io"

	"ltg-admin/internal/logger"
	"ltg-admin/internal/model"
	"ltg-admin/internal/store"
)

// FileUpload is one file attached to a create request.
type FileUpload struct {
	Filename string
	Reader   io.Reader
}

type InternService struct {
	store  store.Store
	notify *NotificationService
}

func NewInternService(st store.Store, notify *NotificationService) *InternService {
	return &InternService{store: st, notify: notify}
}

// List returns the full collection; a read failure degrades to an empty list.
func (s *InternService) List(ctx context.Context) []model.Intern {
	var interns []model.Intern
	if err := s.store.Find(ctx, store.Interns, &interns); err != nil {
		logger.Err("intern.list failed", err)
		return []model.Intern{}
	}
	return interns
}

func (s *InternService) Create(ctx context.Context, in *model.Intern) error {
	in.ObjectID = ""
	if in.Status == "" {
		in.Status = "pending"
	}
	if err := s.store.Save(ctx, store.Interns, in); err != nil {
		return fmt.Errorf("create intern: %w", err)
	}
	logger.Info("intern.create.ok", "id", in.ObjectID, "name", in.Name)
	s.notify.Notify(ctx, "success", "New Intern Added",
		fmt.Sprintf("%s has been added to %s", in.Name, in.Department), "intern", in.ObjectID)
	return nil
}

func (s *InternService) Update(ctx context.Context, in *model.Intern) error {
	if in.ObjectID == "" {
		return fmt.Errorf("update intern: missing objectId")
	}
	if err := s.store.Save(ctx, store.Interns, in); err != nil {
		return fmt.Errorf("update intern %s: %w", in.ObjectID, err)
	}
	logger.Info("intern.update.ok", "id", in.ObjectID)
	return nil
}

// Delete removes an intern by id. No cascade: tasks and certificates that
// reference the intern by name keep their snapshot.
func (s *InternService) Delete(ctx context.Context, id string) error {
	if err := s.store.Remove(ctx, store.Interns, id); err != nil {
		return fmt.Errorf("delete intern %s: %w", id, err)
	}
	logger.Info("intern.delete.ok", "id", id)
	return nil
}
