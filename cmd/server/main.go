package main

import (
	"os"
	"os/signal"
	"syscall"

	"absence-tracker/internal/config"
	"absence-tracker/internal/handler"
	"absence-tracker/internal/repository"
	"absence-tracker/internal/service"
	"absence-tracker/pkg/mailer"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func main() {
	logrus.Info("Initializing config...")
	cfg := config.GetAppConfig()
	logrus.Info("Config initialized...")

	db, err := gorm.Open(sqlite.Open(cfg.DatabaseURL), &gorm.Config{})
	if err != nil {
		logrus.Fatal("Failed to connect to database:", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		logrus.Fatal("Failed to get database instance:", err)
	}

	dispatchLogRepo, err := repository.NewGormDispatchLogRepository(db)
	if err != nil {
		logrus.WithError(err).Fatal("Failed to create dispatch log repository")
	}

	recordStore := repository.NewCSVRecordStore(cfg.DataFile, cfg.StoreAllowReset)

	mergeService := service.NewMergeService(recordStore)
	ingestionService := service.NewIngestionService(recordStore, mergeService)
	editorService := service.NewEditorService()
	statsService := service.NewStatsService()

	mailClient := mailer.NewClient(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUsername, cfg.SMTPPassword, cfg.SMTPFrom)
	dispatchService := service.NewDispatchService(mailClient, dispatchLogRepo, ingestionService)

	if set, err := ingestionService.Reload(); err != nil {
		logrus.Infof("Warning: failed to load existing data: %v", err)
	} else {
		logrus.Infof("Loaded %d records from %s", set.Len(), cfg.DataFile)
	}

	app := fiber.New()
	h := handler.NewHandler(ingestionService, editorService, dispatchService, statsService, dispatchLogRepo)
	h.RegisterRoutes(app)

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := app.Listen(cfg.ServerAddr); err != nil {
			logrus.Fatal("Failed to start server:", err)
		}
	}()

	logrus.Infof("Server started on %s. Press Ctrl+C to stop.", cfg.ServerAddr)
	<-stop

	if err := app.Shutdown(); err != nil {
		logrus.Infof("Error shutting down server: %v", err)
	}

	if err := sqlDB.Close(); err != nil {
		logrus.Infof("Error closing database: %v", err)
	}

	logrus.Info("Server stopped gracefully")
}
