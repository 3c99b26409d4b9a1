package insight

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"ltg-admin/internal/model"
)

func sampleInterns() []model.Intern {
	return []model.Intern{
		{Name: "Sarah Chen", Email: "sarah@example.com", Department: "Engineering", Status: "active", Progress: 45, StartDate: "2026-06-01"},
		{Name: "James Okafor", Email: "james@example.com", Department: "Analytics", Status: "active", Progress: 60, StartDate: "2026-05-01"},
		{Name: "Lena Fischer", Email: "lena@example.com", Department: "Design", Status: "completed", Progress: 100, StartDate: "2026-03-01"},
	}
}

func TestFilterInternsNoConstraintsReturnsAll(t *testing.T) {
	interns := sampleInterns()
	assert.Len(t, FilterInterns(interns, model.ListQuery{}), 3)
	// "all" means the same as empty
	assert.Len(t, FilterInterns(interns, model.ListQuery{Status: "all", Department: "all"}), 3)
}

func TestFilterInternsSearchIsCaseInsensitive(t *testing.T) {
	got := FilterInterns(sampleInterns(), model.ListQuery{Search: "SARAH"})
	assert.Len(t, got, 1)
	assert.Equal(t, "Sarah Chen", got[0].Name)
}

func TestFilterInternsCombinesConstraints(t *testing.T) {
	got := FilterInterns(sampleInterns(), model.ListQuery{Status: "active", Department: "Analytics"})
	assert.Len(t, got, 1)
	assert.Equal(t, "James Okafor", got[0].Name)

	got = FilterInterns(sampleInterns(), model.ListQuery{Status: "completed", Department: "Analytics"})
	assert.Empty(t, got)
}

func TestFilterIsIdempotent(t *testing.T) {
	q := model.ListQuery{Status: "active"}
	once := FilterInterns(sampleInterns(), q)
	twice := FilterInterns(once, q)
	assert.Equal(t, once, twice)
}

func TestFilterTasks(t *testing.T) {
	tasks := []model.Task{
		{Title: "Design system", Status: "in-progress", Priority: "high", Department: "Engineering", Category: "development"},
		{Title: "Funnel report", Status: "review", Priority: "medium", Department: "Analytics", Category: "reporting"},
	}
	got := FilterTasks(tasks, model.ListQuery{Priority: "high"})
	assert.Len(t, got, 1)
	assert.Equal(t, "Design system", got[0].Title)

	got = FilterTasks(tasks, model.ListQuery{Search: "funnel", Category: "reporting"})
	assert.Len(t, got, 1)
	assert.Equal(t, "Funnel report", got[0].Title)
}

func TestFilterCertificatesMatchesCertificateID(t *testing.T) {
	certs := []model.Certificate{
		{InternName: "Lena Fischer", CertificateID: "LTG-2026-001", Status: "issued", Priority: "medium"},
		{InternName: "James Okafor", CertificateID: "LTG-2026-002", Status: "pending", Priority: "low"},
	}
	got := FilterCertificates(certs, model.ListQuery{Search: "ltg-2026-002"})
	assert.Len(t, got, 1)
	assert.Equal(t, "James Okafor", got[0].InternName)
}

func TestSortInterns(t *testing.T) {
	interns := sampleInterns()
	SortInterns(interns, "name", "asc")
	assert.Equal(t, "James Okafor", interns[0].Name)
	assert.Equal(t, "Sarah Chen", interns[2].Name)

	SortInterns(interns, "progress", "desc")
	assert.Equal(t, 100, interns[0].Progress)
	assert.Equal(t, 45, interns[2].Progress)

	// unknown sortBy falls back to startDate
	SortInterns(interns, "", "asc")
	assert.Equal(t, "Lena Fischer", interns[0].Name)
}

func TestSortTasksByDueDateDefault(t *testing.T) {
	tasks := []model.Task{
		{Title: "b", DueDate: "2026-09-10"},
		{Title: "a", DueDate: "2026-09-01"},
	}
	SortTasks(tasks, "", "asc")
	assert.Equal(t, "a", tasks[0].Title)

	SortTasks(tasks, "title", "desc")
	assert.Equal(t, "b", tasks[0].Title)
}

func TestSortCertificatesByScore(t *testing.T) {
	certs := []model.Certificate{
		{CompletionScore: 70}, {CompletionScore: 95}, {CompletionScore: 88},
	}
	SortCertificates(certs, "completionScore", "desc")
	assert.Equal(t, 95, certs[0].CompletionScore)
	assert.Equal(t, 70, certs[2].CompletionScore)
}
