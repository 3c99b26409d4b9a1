package insight

import (
	"sort"
	"time"

	"ltg-admin/internal/model"
)

// ActivityLimit is how many feed entries the dashboard shows.
const ActivityLimit = 5

// Per-status action text and severity for the activity feed.
var internActivity = map[string][2]string{
	"active":    {"joined the program", "success"},
	"completed": {"completed their internship", "success"},
	"pending":   {"is awaiting onboarding", "warning"},
	"paused":    {"paused their internship", "warning"},
}

var taskActivity = map[string][2]string{
	"todo":        {"was created", "info"},
	"in-progress": {"is in progress", "info"},
	"review":      {"moved to review", "warning"},
	"completed":   {"was completed", "success"},
	"cancelled":   {"was cancelled", "error"},
}

var certificateActivity = map[string][2]string{
	"issued":  {"was issued", "success"},
	"pending": {"is pending issuance", "warning"},
	"revoked": {"was revoked", "error"},
	"expired": {"has expired", "warning"},
}

// RecentActivity synthesizes the dashboard feed from the three collections.
// Each collection contributes its most recent records by creation time (not
// array order, which depends on how the store returns rows), then the merged
// feed is sorted by timestamp descending and truncated to limit.
func RecentActivity(interns []model.Intern, tasks []model.Task, certs []model.Certificate, limit int) []model.Activity {
	var feed []model.Activity

	for _, in := range lastCreated(interns, func(i model.Intern) time.Time { return i.Created }, limit) {
		act, sev := lookup(internActivity, in.Status)
		feed = append(feed, model.Activity{
			EntityType: "intern",
			EntityID:   in.ObjectID,
			Title:      in.Name,
			Message:    in.Name + " " + act,
			Severity:   sev,
			Timestamp:  in.Created.Format(time.RFC3339),
		})
	}
	for _, t := range lastCreated(tasks, func(t model.Task) time.Time { return t.Created }, limit) {
		act, sev := lookup(taskActivity, t.Status)
		feed = append(feed, model.Activity{
			EntityType: "task",
			EntityID:   t.ObjectID,
			Title:      t.Title,
			Message:    "Task \"" + t.Title + "\" " + act,
			Severity:   sev,
			Timestamp:  t.Created.Format(time.RFC3339),
		})
	}
	for _, c := range lastCreated(certs, func(c model.Certificate) time.Time { return c.Created }, limit) {
		act, sev := lookup(certificateActivity, c.Status)
		feed = append(feed, model.Activity{
			EntityType: "certificate",
			EntityID:   c.ObjectID,
			Title:      c.CourseName,
			Message:    "Certificate for " + c.InternName + " " + act,
			Severity:   sev,
			Timestamp:  c.Created.Format(time.RFC3339),
		})
	}

	sort.SliceStable(feed, func(i, j int) bool { return feed[i].Timestamp > feed[j].Timestamp })
	if len(feed) > limit {
		feed = feed[:limit]
	}
	return feed
}

func lookup(table map[string][2]string, status string) (action, severity string) {
	if e, ok := table[status]; ok {
		return e[0], e[1]
	}
	return "was updated", "info"
}

// lastCreated returns up to n records ordered newest first by creation time,
// without mutating the input.
func lastCreated[T any](items []T, created func(T) time.Time, n int) []T {
	sorted := make([]T, len(items))
	copy(sorted, items)
	sort.SliceStable(sorted, func(i, j int) bool { return created(sorted[i]).After(created(sorted[j])) })
	if len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted
}
