package main

import (
	"context"
	"flag"
	"log/slog"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"

	"ltg-admin/internal/config"
	"ltg-admin/internal/handler"
	applog "ltg-admin/internal/logger"
	"ltg-admin/internal/model"
	"ltg-admin/internal/service"
	"ltg-admin/internal/store"
)

func main() {
	configFile := flag.String("config", "", "config file path (e.g. etc/config-dev.yaml)")
	flag.Parse()

	godotenv.Load()
	cfg := config.Load(*configFile)
	applog.Init(cfg.Log)

	st, err := openStore(cfg)
	if err != nil {
		slog.Error("store init failed", "driver", cfg.Store.Driver, "err", err)
		os.Exit(1)
	}
	defer st.Close()

	notifySvc := service.NewNotificationService(st)
	internSvc := service.NewInternService(st, notifySvc)
	taskSvc := service.NewTaskService(st, notifySvc)
	certSvc := service.NewCertificateService(st, notifySvc)
	logSvc := service.NewSystemLogService(st, cfg.DemoSeed)
	dashSvc := service.NewDashboardService(internSvc, taskSvc, certSvc)
	exportSvc := service.NewExportService(internSvc, taskSvc, certSvc)

	var visited service.VisitedStore
	if cfg.Navigation.RedisAddr != "" {
		visited = service.NewRedisVisitedStore(cfg.NewRedisClient())
		slog.Info("navigation tracker on redis", "addr", cfg.Navigation.RedisAddr)
	} else {
		visited = service.NewFileVisitedStore(cfg.Navigation.File)
	}
	navSvc := service.NewNavigationService(visited, internSvc, taskSvc, certSvc)

	internH := handler.NewInternHandler(internSvc)
	taskH := handler.NewTaskHandler(taskSvc)
	certH := handler.NewCertificateHandler(certSvc)
	dashH := handler.NewDashboardHandler(dashSvc, notifySvc, logSvc)
	navH := handler.NewNavigationHandler(navSvc, exportSvc)

	if cfg.Dashboard.RefreshEnabled {
		cr := cron.New()
		if _, err := cr.AddFunc(cfg.Dashboard.RefreshSchedule, func() {
			dashSvc.Refresh(context.Background())
		}); err != nil {
			slog.Warn("dashboard refresher disabled", "schedule", cfg.Dashboard.RefreshSchedule, "err", err)
		} else {
			cr.Start()
			defer cr.Stop()
		}
	}

	r := gin.Default()
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	api := r.Group("/api")
	api.GET("/interns", internH.List)
	api.POST("/interns", internH.Create)
	api.PUT("/interns/:id", internH.Update)
	api.DELETE("/interns/:id", internH.Delete)

	api.GET("/tasks", taskH.List)
	api.POST("/tasks", taskH.Create)
	api.PUT("/tasks/:id", taskH.Update)
	api.DELETE("/tasks/:id", taskH.Delete)
	api.POST("/tasks/bulk", taskH.Bulk)

	api.GET("/certificates", certH.List)
	api.POST("/certificates", certH.Create)
	api.PUT("/certificates/:id", certH.Update)
	api.DELETE("/certificates/:id", certH.Delete)

	api.GET("/dashboard", dashH.Overview)
	api.GET("/notifications", dashH.Notifications)
	api.POST("/notifications/:id/read", dashH.MarkRead)
	api.POST("/notifications/read-all", dashH.MarkAllRead)
	api.GET("/logs", dashH.Logs)

	api.GET("/navigation/counts", navH.Counts)
	api.GET("/navigation/visited", navH.Visited)
	api.POST("/navigation/visited", navH.MarkVisited)
	api.DELETE("/navigation/visited", navH.ClearVisited)
	api.GET("/export", navH.Export)

	if cfg.Store.Driver == "gorm" {
		r.Static("/files", cfg.Store.UploadDir)
	}

	slog.Info("server starting", "addr", cfg.Addr(), "store", cfg.Store.Driver)
	if err := r.Run(cfg.Addr()); err != nil {
		slog.Error("server failed", "err", err)
	}
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
