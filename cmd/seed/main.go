// Command seed loads a demo dataset into the configured store so the admin
// panel has something to show on a fresh install.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"
	"gorm.io/datatypes"

	"ltg-admin/internal/config"
	applog "ltg-admin/internal/logger"
	"ltg-admin/internal/model"
	"ltg-admin/internal/service"
	"ltg-admin/internal/store"
)

func main() {
	configFile := flag.String("config", "", "config file path")
	flag.Parse()

	godotenv.Load()
	cfg := config.Load(*configFile)
	applog.Init(cfg.Log)

	st, err := openStore(cfg)
	if err != nil {
		slog.Error("store init failed", "err", err)
		os.Exit(1)
	}
	defer st.Close()

	ctx := context.Background()
	notifySvc := service.NewNotificationService(st)
	internSvc := service.NewInternService(st, notifySvc)
	taskSvc := service.NewTaskService(st, notifySvc)
	certSvc := service.NewCertificateService(st, notifySvc)

	if n := len(internSvc.List(ctx)); n > 0 {
		slog.Info("store already has data, nothing to do", "interns", n)
		return
	}

	today := time.Now()
	date := func(daysFromNow int) string { return today.AddDate(0, 0, daysFromNow).Format("2006-01-02") }

	interns := []model.Intern{
		{Name: "Sarah Chen", Email: "sarah.chen@example.com", Phone: "+1-555-0101", Position: "Frontend Developer",
			Department: "Engineering", StartDate: date(-60), EndDate: date(120), Status: "active", Progress: 45,
			Location: "San Francisco", Supervisor: "Mike Torres", TasksCompleted: 9, TotalTasks: 20, Rating: 4.2},
		{Name: "James Okafor", Email: "james.okafor@example.com", Phone: "+1-555-0102", Position: "Data Analyst",
			Department: "Analytics", StartDate: date(-90), EndDate: date(90), Status: "active", Progress: 60,
			Location: "Remote", Supervisor: "Priya Nair", TasksCompleted: 12, TotalTasks: 20, Rating: 4.6},
		{Name: "Lena Fischer", Email: "lena.fischer@example.com", Phone: "+1-555-0103", Position: "UX Designer",
			Department: "Design", StartDate: date(-150), EndDate: date(-10), Status: "completed", Progress: 100,
			Location: "Berlin", Supervisor: "Tom Adler", TasksCompleted: 18, TotalTasks: 18, Rating: 4.8},
		{Name: "Diego Ramos", Email: "diego.ramos@example.com", Phone: "+1-555-0104", Position: "Marketing Assistant",
			Department: "Marketing", StartDate: date(14), EndDate: date(194), Status: "pending", Progress: 0,
			Location: "Austin", Supervisor: "Kate Lin", TasksCompleted: 0, TotalTasks: 0, Rating: 0},
	}
	for i := range interns {
		if err := internSvc.Create(ctx, &interns[i]); err != nil {
			fail("intern", err)
		}
	}

	tasks := []model.Task{
		{Title: "Design system implementation", Description: "Apply the new component library to the settings pages",
			AssignedTo: "Sarah Chen", AssignedEmail: "sarah.chen@example.com", AssignedBy: "Mike Torres",
			Department: "Engineering", Category: "development", Priority: "high", Status: "in-progress", Progress: 55,
			StartDate: date(-7), DueDate: date(7), EstimatedHours: 24, ActualHours: 14,
			Tags: datatypes.JSONSlice[string]{"frontend", "ui"}},
		{Title: "Quarterly funnel report", Description: "Prepare the Q3 acquisition funnel breakdown",
			AssignedTo: "James Okafor", AssignedEmail: "james.okafor@example.com", AssignedBy: "Priya Nair",
			Department: "Analytics", Category: "reporting", Priority: "medium", Status: "review", Progress: 90,
			StartDate: date(-14), DueDate: date(-1), EstimatedHours: 16, ActualHours: 18,
			Tags: datatypes.JSONSlice[string]{"reporting"}},
		{Title: "Onboarding survey redesign", Description: "Rework the intern onboarding questionnaire",
			AssignedTo: "Lena Fischer", AssignedEmail: "lena.fischer@example.com", AssignedBy: "Tom Adler",
			Department: "Design", Category: "research", Priority: "low", Status: "completed", Progress: 100,
			StartDate: date(-30), DueDate: date(-14), CompletedDate: date(-15), EstimatedHours: 8, ActualHours: 6},
	}
	for i := range tasks {
		if err := taskSvc.Create(ctx, &tasks[i], nil); err != nil {
			fail("task", err)
		}
	}

	certs := []model.Certificate{
		{InternName: "Lena Fischer", InternEmail: "lena.fischer@example.com", InternPhone: "+1-555-0103",
			CourseName: "UX Research Fundamentals", CourseCategory: "design", Instructor: "Tom Adler",
			Department: "Design", CompletionScore: 95, Status: "issued", Priority: "medium"},
		{InternName: "James Okafor", InternEmail: "james.okafor@example.com", InternPhone: "+1-555-0102",
			CourseName: "SQL for Analysts", CourseCategory: "analytics", Instructor: "Priya Nair",
			Department: "Analytics", CompletionScore: 88, Status: "pending", Priority: "low"},
	}
	for i := range certs {
		if err := certSvc.Create(ctx, &certs[i], nil); err != nil {
			fail("certificate", err)
		}
	}

	slog.Info("seed done", "interns", len(interns), "tasks", len(tasks), "certificates", len(certs))
}

func fail(what string, err error) {
	slog.Error(fmt.Sprintf("seed %s failed", what), "err", err)
	os.Exit(1)
}

func openStore(cfg *config.Config) (store.Store, error) {
	switch cfg.Store.Driver {
	case "gorm":
		db, err := cfg.OpenGormDB()
		if err != nil {
			return nil, err
		}
		if err := db.AutoMigrate(&model.Intern{}, &model.Task{}, &model.Certificate{},
			&model.Notification{}, &model.SystemLog{}); err != nil {
			return nil, err
		}
		return store.NewGormStore(db, cfg.Store.UploadDir, cfg.Server.PublicURL+"/files"), nil
	case "memory":
		return store.NewMemoryStore(), nil
	default:
		return store.NewRestStore(cfg.Store.BaseURL, cfg.Store.AppID, cfg.Store.APIKey), nil
	}
}
