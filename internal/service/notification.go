package service

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"ltg-admin/internal/logger"
	"ltg-admin/internal/model"
	"ltg-admin/internal/store"
)

type NotificationService struct {
	store store.Store
}

func NewNotificationService(st store.Store) *NotificationService {
	return &NotificationService{store: st}
}

// List returns notifications newest first, truncated to limit. A read failure
// degrades to an empty list: the bell just shows nothing.
func (s *NotificationService) List(ctx context.Context, limit int) []model.Notification {
	var items []model.Notification
	if err := s.store.Find(ctx, store.Notifications, &items); err != nil {
		logger.Err("notification.list failed", err)
		return []model.Notification{}
	}
	sort.SliceStable(items, func(i, j int) bool { return items[i].Created.After(items[j].Created) })
	if limit > 0 && len(items) > limit {
		items = items[:limit]
	}
	return items
}

// Notify appends a best-effort notification record. Failures are logged and
// swallowed so they can never fail the primary write that triggered them.
func (s *NotificationService) Notify(ctx context.Context, typ, title, message, entityType, entityID string) {
	n := model.Notification{
		Title:      title,
		Message:    message,
		Type:       typ,
		EntityType: entityType,
		EntityID:   entityID,
		Timestamp:  time.Now().Format(time.RFC3339),
		Read:       false,
	}
	if err := s.store.Save(ctx, store.Notifications, &n); err != nil {
		logger.Warn("notification.create failed", "entity", entityType, "title", title, "err", err)
	}
}

// MarkRead flips a notification to read. Marking an already-read notification
// again is a no-op, not an error.
func (s *NotificationService) MarkRead(ctx context.Context, id string) error {
	var items []model.Notification
	if err := s.store.Find(ctx, store.Notifications, &items); err != nil {
		return fmt.Errorf("load notifications: %w", err)
	}
	for i := range items {
		if items[i].ObjectID != id {
			continue
		}
		if items[i].Read {
			return nil
		}
		items[i].Read = true
		if err := s.store.Save(ctx, store.Notifications, &items[i]); err != nil {
			return fmt.Errorf("mark read %s: %w", id, err)
		}
		return nil
	}
	return store.ErrNotFound
}

// MarkAllRead marks every unread notification, one store call per record,
// waiting for all before reporting.
func (s *NotificationService) MarkAllRead(ctx context.Context) error {
	var items []model.Notification
	if err := s.store.Find(ctx, store.Notifications, &items); err != nil {
		return fmt.Errorf("load notifications: %w", err)
	}

	var wg sync.WaitGroup
	errs := make([]error, len(items))
	for i := range items {
		if items[i].Read {
			continue
		}
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			items[i].Read = true
			errs[i] = s.store.Save(ctx, store.Notifications, &items[i])
		}(i)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return fmt.Errorf("mark all read: %w", err)
		}
	}
	return nil
}
