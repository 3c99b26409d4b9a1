// Package insight holds the pure derived-state computers: everything the
// dashboard and page views show is recomputed from full collection snapshots
// here, never stored.
package insight

import (
	"sort"
	"strings"

	"ltg-admin/internal/model"
)

// matches reports whether the search term appears (case-insensitive) in any
// of the given text fields. An empty term matches everything.
func matches(term string, fields ...string) bool {
	if term == "" {
		return true
	}
	term = strings.ToLower(term)
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), term) {
			return true
		}
	}
	return false
}

// wants reports whether a categorical filter accepts the value. Empty and
// "all" mean no constraint.
func wants(filter, value string) bool {
	return filter == "" || filter == "all" || filter == value
}

func FilterInterns(interns []model.Intern, q model.ListQuery) []model.Intern {
	out := make([]model.Intern, 0, len(interns))
	for _, in := range interns {
		if !matches(q.Search, in.Name, in.Email, in.Position, in.Department, in.Supervisor, in.Location) {
			continue
		}
		if !wants(q.Status, in.Status) || !wants(q.Department, in.Department) {
			continue
		}
		out = append(out, in)
	}
	return out
}

func FilterTasks(tasks []model.Task, q model.ListQuery) []model.Task {
	out := make([]model.Task, 0, len(tasks))
	for _, t := range tasks {
		if !matches(q.Search, t.Title, t.Description, t.AssignedTo, t.AssignedBy, t.Department, t.Category) {
			continue
		}
		if !wants(q.Status, t.Status) || !wants(q.Priority, t.Priority) ||
			!wants(q.Department, t.Department) || !wants(q.Category, t.Category) {
			continue
		}
		out = append(out, t)
	}
	return out
}

func FilterCertificates(certs []model.Certificate, q model.ListQuery) []model.Certificate {
	out := make([]model.Certificate, 0, len(certs))
	for _, c := range certs {
		if !matches(q.Search, c.InternName, c.InternEmail, c.CourseName, c.Instructor, c.Department, c.CertificateID) {
			continue
		}
		if !wants(q.Status, c.Status) || !wants(q.Priority, c.Priority) ||
			!wants(q.Department, c.Department) || !wants(q.Category, c.CourseCategory) {
			continue
		}
		out = append(out, c)
	}
	return out
}

func SortInterns(interns []model.Intern, sortBy, order string) {
	less := func(a, b model.Intern) bool {
		switch sortBy {
		case "name":
			return a.Name < b.Name
		case "progress":
			return a.Progress < b.Progress
		case "rating":
			return a.Rating < b.Rating
		default: // startDate
			return a.StartDate < b.StartDate
		}
	}
	stableSort(interns, less, order)
}

func SortTasks(tasks []model.Task, sortBy, order string) {
	less := func(a, b model.Task) bool {
		switch sortBy {
		case "title":
			return a.Title < b.Title
		case "progress":
			return a.Progress < b.Progress
		case "createdAt":
			return a.CreatedAt < b.CreatedAt
		default: // dueDate
			return a.DueDate < b.DueDate
		}
	}
	stableSort(tasks, less, order)
}

func SortCertificates(certs []model.Certificate, sortBy, order string) {
	less := func(a, b model.Certificate) bool {
		switch sortBy {
		case "internName":
			return a.InternName < b.InternName
		case "completionScore":
			return a.CompletionScore < b.CompletionScore
		default: // issueDate
			return a.IssueDate < b.IssueDate
		}
	}
	stableSort(certs, less, order)
}

func stableSort[T any](items []T, less func(a, b T) bool, order string) {
	if order == "desc" {
		sort.SliceStable(items, func(i, j int) bool { return less(items[j], items[i]) })
		return
	}
	sort.SliceStable(items, func(i, j int) bool { return less(items[i], items[j]) })
}
