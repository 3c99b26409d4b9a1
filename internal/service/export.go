package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"ltg-admin/internal/model"
)

// ExportService renders the three core collections into one spreadsheet,
// one sheet per collection.
type ExportService struct {
	interns *InternService
	tasks   *TaskService
	certs   *CertificateService
}

func NewExportService(interns *InternService, tasks *TaskService, certs *CertificateService) *ExportService {
	return &ExportService{interns: interns, tasks: tasks, certs: certs}
}

func (s *ExportService) Workbook(ctx context.Context) (*excelize.File, error) {
	f := excelize.NewFile()

	if err := writeSheet(f, "Interns", internHeader, internRows(s.interns.List(ctx))); err != nil {
		return nil, err
	}
	if err := writeSheet(f, "Tasks", taskHeader, taskRows(s.tasks.List(ctx))); err != nil {
		return nil, err
	}
	if err := writeSheet(f, "Certificates", certHeader, certRows(s.certs.List(ctx))); err != nil {
		return nil, err
	}

	f.DeleteSheet("Sheet1")
	return f, nil
}

var internHeader = []string{"Name", "Email", "Phone", "Position", "Department", "Supervisor", "Location", "Start Date", "End Date", "Status", "Progress", "Rating", "Tasks Completed", "Total Tasks"}

func internRows(interns []model.Intern) [][]any {
	rows := make([][]any, 0, len(interns))
	for _, in := range interns {
		rows = append(rows, []any{in.Name, in.Email, in.Phone, in.Position, in.Department, in.Supervisor,
			in.Location, in.StartDate, in.EndDate, in.Status, in.Progress, in.Rating, in.TasksCompleted, in.TotalTasks})
	}
	return rows
}

var taskHeader = []string{"Title", "Assigned To", "Assigned By", "Department", "Category", "Priority", "Status", "Progress", "Start Date", "Due Date", "Completed Date", "Estimated Hours", "Actual Hours", "Tags"}

func taskRows(tasks []model.Task) [][]any {
	rows := make([][]any, 0, len(tasks))
	for _, t := range tasks {
		rows = append(rows, []any{t.Title, t.AssignedTo, t.AssignedBy, t.Department, t.Category, t.Priority,
			t.Status, t.Progress, t.StartDate, t.DueDate, t.CompletedDate, t.EstimatedHours, t.ActualHours,
			strings.Join(t.Tags, ", ")})
	}
	return rows
}

var certHeader = []string{"Certificate ID", "Intern", "Email", "Course", "Category", "Instructor", "Department", "Issue Date", "Expiry Date", "Status", "Score", "Grade", "Verification Code"}

func certRows(certs []model.Certificate) [][]any {
	rows := make([][]any, 0, len(certs))
	for _, c := range certs {
		rows = append(rows, []any{c.CertificateID, c.InternName, c.InternEmail, c.CourseName, c.CourseCategory,
			c.Instructor, c.Department, c.IssueDate, c.ExpiryDate, c.Status, c.CompletionScore, c.Grade, c.VerificationCode})
	}
	return rows
}

func writeSheet(f *excelize.File, name string, header []string, rows [][]any) error {
	if _, err := f.NewSheet(name); err != nil {
		return fmt.Errorf("sheet %s: %w", name, err)
	}
	cell, _ := excelize.CoordinatesToCellName(1, 1)
	if err := f.SetSheetRow(name, cell, &header); err != nil {
		return fmt.Errorf("sheet %s header: %w", name, err)
	}
	for i, row := range rows {
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		if err := f.SetSheetRow(name, cell, &row); err != nil {
			return fmt.Errorf("sheet %s row %d: %w", name, i, err)
		}
	}
	return nil
}
