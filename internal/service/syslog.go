package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"ltg-admin/internal/logger"
	"ltg-admin/internal/model"
	"ltg-admin/internal/store"
)

type SystemLogService struct {
	store    store.Store
	demoSeed bool
}

// NewSystemLogService creates the log reader. With demoSeed set, an empty
// collection is populated with a canned fixture on first read so the
// maintenance page has something to show in demos. Production deployments
// leave it off.
func NewSystemLogService(st store.Store, demoSeed bool) *SystemLogService {
	return &SystemLogService{store: st, demoSeed: demoSeed}
}

func (s *SystemLogService) List(ctx context.Context, limit int) []model.SystemLog {
	var logs []model.SystemLog
	if err := s.store.Find(ctx, store.SystemLogs, &logs); err != nil {
		logger.Err("systemlog.list failed", err)
		return []model.SystemLog{}
	}
	if len(logs) == 0 && s.demoSeed {
		s.seed(ctx)
		if err := s.store.Find(ctx, store.SystemLogs, &logs); err != nil {
			logger.Err("systemlog.list after seed failed", err)
			return []model.SystemLog{}
		}
	}
	sort.SliceStable(logs, func(i, j int) bool { return logs[i].Timestamp > logs[j].Timestamp })
	if limit > 0 && len(logs) > limit {
		logs = logs[:limit]
	}
	return logs
}

// Add appends a log record, best-effort.
func (s *SystemLogService) Add(ctx context.Context, level, message, source, details string) {
	l := model.SystemLog{
		Timestamp: time.Now().Format(time.RFC3339),
		Level:     level,
		Message:   message,
		Source:    source,
		Details:   details,
	}
	if err := s.store.Save(ctx, store.SystemLogs, &l); err != nil {
		logger.Warn("systemlog.add failed", "source", source, "err", err)
	}
}

func (s *SystemLogService) seed(ctx context.Context) {
	now := time.Now()
	stamp := func(minAgo int) string { return now.Add(-time.Duration(minAgo) * time.Minute).Format(time.RFC3339) }
	fixtures := []model.SystemLog{
		{Timestamp: stamp(5), Level: "INFO", Message: "Daily backup completed successfully",
			Source: "BackupService", Details: "Backup size: 2.3GB, Duration: 45 minutes"},
		{Timestamp: stamp(10), Level: "WARN", Message: "High memory usage detected: 82%",
			Source: "SystemMonitor", Details: "Memory threshold exceeded, consider optimization"},
		{Timestamp: stamp(15), Level: "INFO", Message: "User authentication successful",
			Source: "AuthService", UserID: "user123", IPAddress: "192.168.1.100", Details: "Login from dashboard"},
		{Timestamp: stamp(20), Level: "ERROR", Message: "Failed to send notification email",
			Source: "EmailService", Details: "SMTP connection timeout after 30 seconds"},
	}
	for i := range fixtures {
		if err := s.store.Save(ctx, store.SystemLogs, &fixtures[i]); err != nil {
			logger.Warn("systemlog.seed failed", "err", fmt.Errorf("fixture %d: %w", i, err))
			return
		}
	}
	logger.Info("systemlog.seeded", "count", len(fixtures))
}
