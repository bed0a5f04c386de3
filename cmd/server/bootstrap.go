package main

import (
	"github.com/AmanVarshney01/gla-project-tracker/internal/config"
	"github.com/AmanVarshney01/gla-project-tracker/internal/handlers"
	"github.com/AmanVarshney01/gla-project-tracker/internal/models"
	"github.com/AmanVarshney01/gla-project-tracker/internal/services"
	"github.com/AmanVarshney01/gla-project-tracker/internal/utils"
	"github.com/AmanVarshney01/gla-project-tracker/pkg/logger"
)

// appServices holds all initialized services and handlers needed by the application.
type appServices struct {
	cfg              *config.Config
	taskQueue        services.TaskQueue
	worker           *services.Worker
	cleanupScheduler *services.CleanupScheduler
	activityService  *services.ActivityService

	authHandler      *handlers.AuthHandler
	projectHandler   *handlers.ProjectHandler
	settingsHandler  *handlers.SettingsHandler
	memberHandler    *handlers.MemberHandler
	resourceHandler  *handlers.ResourceHandler
	dashboardHandler *handlers.DashboardHandler
	activityHandler  *handlers.ActivityHandler
	healthHandler    *handlers.HealthHandler
}

// bootstrap initializes all application dependencies: database, services, schedulers.
func bootstrap(cfg *config.Config) *appServices {
	utils.SetJWTSecret(cfg.JWT.Secret)

	// Initialize database
	if err := models.InitDB(&cfg.Database); err != nil {
		logger.Fatalf("Failed to connect to database: %v", err)
	}

	// Auto migrate database
	if err := models.AutoMigrate(); err != nil {
		logger.Fatalf("Failed to migrate database: %v", err)
	}

	db := models.GetDB()

	// Initialize task queue (uses Redis if enabled, otherwise sync mode)
	taskQueue := services.InitTaskQueue(cfg)
	activityService := services.NewActivityService(db, taskQueue)
	if syncQueue, ok := taskQueue.(*services.SyncQueue); ok {
		syncQueue.SetProcessor(activityService.Write)
	}

	// Start async worker if Redis is enabled
	var worker *services.Worker
	if cfg.Redis.Enabled {
		worker = services.InitWorker(&cfg.Redis)
		if worker != nil {
			worker.SetProcessor(activityService.Write)
			if err := worker.Start(); err != nil {
				logger.Warn().Err(err).Msg("Failed to start async worker")
			}
		}
	}

	// Start nightly retention cleanup
	cleanupScheduler := services.NewCleanupScheduler(db, cfg, activityService)
	cleanupScheduler.Start()

	return &appServices{
		cfg:              cfg,
		taskQueue:        taskQueue,
		worker:           worker,
		cleanupScheduler: cleanupScheduler,
		activityService:  activityService,

		authHandler:      handlers.NewAuthHandler(db, cfg),
		projectHandler:   handlers.NewProjectHandler(db, activityService),
		settingsHandler:  handlers.NewSettingsHandler(db, activityService),
		memberHandler:    handlers.NewMemberHandler(db, activityService),
		resourceHandler:  handlers.NewResourceHandler(db, activityService),
		dashboardHandler: handlers.NewDashboardHandler(db),
		activityHandler:  handlers.NewActivityHandler(activityService),
		healthHandler:    handlers.NewHealthHandler(),
	}
}

// shutdown gracefully stops all services.
func (s *appServices) shutdown() {
	s.cleanupScheduler.Stop()
	logger.Info().Msg("Schedulers stopped")

	if s.worker != nil {
		s.worker.Stop()
	}
	if s.taskQueue != nil {
		s.taskQueue.Close()
	}
}
