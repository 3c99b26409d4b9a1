package service

import (
	"context"
	"sync"
	"time"

	"ltg-admin/internal/insight"
	"ltg-admin/internal/logger"
	"ltg-admin/internal/model"
)

var certificateStatusOrder = []string{"issued", "pending", "revoked", "expired"}

// DashboardService assembles the overview snapshot from the three core
// collections. A cached copy is kept so the periodic refresher (and the 30s
// client polling it serves) doesn't hammer the store on every hit.
type DashboardService struct {
	interns *InternService
	tasks   *TaskService
	certs   *CertificateService

	mu       sync.RWMutex
	cached   *model.Dashboard
	cachedAt time.Time
	ttl      time.Duration
}

func NewDashboardService(interns *InternService, tasks *TaskService, certs *CertificateService) *DashboardService {
	return &DashboardService{interns: interns, tasks: tasks, certs: certs, ttl: 30 * time.Second}
}

// Snapshot recomputes the dashboard from full collection reads, loading the
// three collections concurrently. Each load degrades to empty independently.
func (s *DashboardService) Snapshot(ctx context.Context) model.Dashboard {
	var (
		interns []model.Intern
		tasks   []model.Task
		certs   []model.Certificate
		wg      sync.WaitGroup
	)
	wg.Add(3)
	go func() { defer wg.Done(); interns = s.interns.List(ctx) }()
	go func() { defer wg.Done(); tasks = s.tasks.List(ctx) }()
	go func() { defer wg.Done(); certs = s.certs.List(ctx) }()
	wg.Wait()

	now := time.Now()
	certStats := insight.CertificateStats(certs)
	return model.Dashboard{
		Interns:           insight.InternStats(interns),
		Tasks:             insight.TaskStats(tasks, now),
		Certificates:      certStats,
		Departments:       insight.DepartmentDistribution(interns),
		CertificateStatus: insight.StatusDistribution(certStats.ByStatus, certificateStatusOrder),
		WeeklyCompletion:  insight.WeeklyCompletion(tasks, now),
		RecentActivity:    insight.RecentActivity(interns, tasks, certs, insight.ActivityLimit),
		GeneratedAt:       now.Format(time.RFC3339),
	}
}

// Cached serves the warm snapshot when fresh, recomputing otherwise.
func (s *DashboardService) Cached(ctx context.Context) model.Dashboard {
	s.mu.RLock()
	if s.cached != nil && time.Since(s.cachedAt) < s.ttl {
		d := *s.cached
		s.mu.RUnlock()
		return d
	}
	s.mu.RUnlock()
	return s.Refresh(ctx)
}

// Refresh recomputes and stores the snapshot. The cron refresher calls this
// on its fixed schedule.
func (s *DashboardService) Refresh(ctx context.Context) model.Dashboard {
	d := s.Snapshot(ctx)
	s.mu.Lock()
	s.cached = &d
	s.cachedAt = time.Now()
	s.mu.Unlock()
	logger.Debug("dashboard.refreshed", "interns", d.Interns.Total, "tasks", d.Tasks.Total, "certificates", d.Certificates.Total)
	return d
}
