package insight

import (
	"time"

	"ltg-admin/internal/model"
)

const dateLayout = "2006-01-02"

// Grade maps a completion score to a letter grade. Total over [0,100]; the
// caller clamps out-of-range scores before grading.
func Grade(score int) string {
	switch {
	case score >= 97:
		return "A+"
	case score >= 93:
		return "A"
	case score >= 87:
		return "B+"
	case score >= 83:
		return "B"
	case score >= 77:
		return "C+"
	case score >= 70:
		return "C"
	default:
		return "F"
	}
}

// ClampScore bounds a completion score to [0,100].
func ClampScore(score int) int {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}

// Overdue reports whether a task is past due and not completed. Unparseable
// due dates never count as overdue.
func Overdue(t model.Task, now time.Time) bool {
	if t.Status == "completed" || t.DueDate == "" {
		return false
	}
	due, err := time.Parse(dateLayout, t.DueDate)
	if err != nil {
		return false
	}
	return due.Before(now.Truncate(24 * time.Hour))
}

func InternStats(interns []model.Intern) model.InternStats {
	s := model.InternStats{Total: len(interns), ByStatus: map[string]int{}}
	var progress, rating float64
	for _, in := range interns {
		s.ByStatus[in.Status]++
		progress += float64(in.Progress)
		rating += in.Rating
	}
	s.AverageProgress = avg(progress, len(interns))
	s.AverageRating = avg(rating, len(interns))
	return s
}

func TaskStats(tasks []model.Task, now time.Time) model.TaskStats {
	s := model.TaskStats{Total: len(tasks), ByStatus: map[string]int{}}
	var progress float64
	for _, t := range tasks {
		s.ByStatus[t.Status]++
		progress += float64(t.Progress)
		if Overdue(t, now) {
			s.Overdue++
		}
	}
	s.AverageProgress = avg(progress, len(tasks))
	return s
}

func CertificateStats(certs []model.Certificate) model.CertificateStats {
	s := model.CertificateStats{Total: len(certs), ByStatus: map[string]int{}}
	var score float64
	for _, c := range certs {
		s.ByStatus[c.Status]++
		score += float64(c.CompletionScore)
	}
	s.AverageScore = avg(score, len(certs))
	return s
}

// avg guards the empty collection: 0, never NaN.
func avg(sum float64, n int) float64 {
	if n == 0 {
		return 0
	}
	return sum / float64(n)
}

var placeholderDepartments = []string{"Engineering", "Design", "Marketing", "Analytics"}

// DepartmentDistribution groups interns by department. An empty grouping is
// replaced by the fixed placeholder set so the chart never renders blank.
func DepartmentDistribution(interns []model.Intern) []model.ChartPoint {
	counts := map[string]int{}
	var order []string
	for _, in := range interns {
		if in.Department == "" {
			continue
		}
		if _, seen := counts[in.Department]; !seen {
			order = append(order, in.Department)
		}
		counts[in.Department]++
	}

	if len(order) == 0 {
		out := make([]model.ChartPoint, 0, len(placeholderDepartments))
		for _, d := range placeholderDepartments {
			out = append(out, model.ChartPoint{Name: d, Value: 0})
		}
		return out
	}

	out := make([]model.ChartPoint, 0, len(order))
	for _, d := range order {
		out = append(out, model.ChartPoint{Name: d, Value: counts[d]})
	}
	return out
}

// StatusDistribution turns a by-status count map into chart points in a fixed
// status order, skipping absent statuses.
func StatusDistribution(byStatus map[string]int, statusOrder []string) []model.ChartPoint {
	out := make([]model.ChartPoint, 0, len(statusOrder))
	for _, s := range statusOrder {
		if n, ok := byStatus[s]; ok {
			out = append(out, model.ChartPoint{Name: s, Value: n})
		}
	}
	return out
}

// WeeklyCompletion buckets tasks into the current week's days: tasks
// completed on that day vs tasks still due that day.
func WeeklyCompletion(tasks []model.Task, now time.Time) []model.WeekdayPoint {
	weekStart := now.Truncate(24*time.Hour).AddDate(0, 0, -int(now.Weekday()-time.Monday))
	if now.Weekday() == time.Sunday {
		weekStart = weekStart.AddDate(0, 0, -7)
	}

	points := make([]model.WeekdayPoint, 7)
	for i := range points {
		points[i].Name = weekStart.AddDate(0, 0, i).Format("Mon")
	}
	dayIndex := func(date string) int {
		d, err := time.Parse(dateLayout, date)
		if err != nil {
			return -1
		}
		idx := int(d.Sub(weekStart).Hours() / 24)
		if idx < 0 || idx > 6 {
			return -1
		}
		return idx
	}
	for _, t := range tasks {
		if t.Status == "completed" {
			if i := dayIndex(t.CompletedDate); i >= 0 {
				points[i].Completed++
			}
			continue
		}
		if i := dayIndex(t.DueDate); i >= 0 {
			points[i].Pending++
		}
	}
	return points
}
