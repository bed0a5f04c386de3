package services

import (
	"github.com/AmanVarshney01/gla-project-tracker/internal/config"
	"github.com/AmanVarshney01/gla-project-tracker/pkg/logger"
	"github.com/robfig/cron/v3"
	"gorm.io/gorm"
)

// CleanupScheduler runs nightly housekeeping: trims old activity rows and
// purges dead refresh tokens.
type CleanupScheduler struct {
	cronScheduler *cron.Cron
	activitySvc   *ActivityService
	authSvc       *AuthService
	retentionDays int
}

func NewCleanupScheduler(db *gorm.DB, cfg *config.Config, activitySvc *ActivityService) *CleanupScheduler {
	return &CleanupScheduler{
		activitySvc:   activitySvc,
		authSvc:       NewAuthService(db, &cfg.JWT),
		retentionDays: cfg.Activity.RetentionDays,
	}
}

// Start schedules the cleanup at 03:30 every day.
func (s *CleanupScheduler) Start() {
	s.cronScheduler = cron.New()

	if _, err := s.cronScheduler.AddFunc("30 3 * * *", s.run); err != nil {
		logger.Errorf("[Cleanup] failed to schedule: %v", err)
		return
	}

	s.cronScheduler.Start()
	logger.Infof("[Cleanup] scheduler started, retention: %d days", s.retentionDays)
}

// Stop halts the scheduler.
func (s *CleanupScheduler) Stop() {
	if s.cronScheduler != nil {
		s.cronScheduler.Stop()
	}
}

func (s *CleanupScheduler) run() {
	removed, err := s.activitySvc.Cleanup(s.retentionDays)
	if err != nil {
		logger.Errorf("[Cleanup] activity cleanup failed: %v", err)
	} else if removed > 0 {
		logger.Infof("[Cleanup] removed %d old activity rows", removed)
	}

	removed, err = s.authSvc.CleanupExpiredTokens()
	if err != nil {
		logger.Errorf("[Cleanup] token cleanup failed: %v", err)
	} else if removed > 0 {
		logger.Infof("[Cleanup] removed %d dead refresh tokens", removed)
	}
}
