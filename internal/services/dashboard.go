package services

import (
	"time"

	"github.com/AmanVarshney01/gla-project-tracker/internal/models"
	"github.com/rickar/cal/v2"
	"gorm.io/gorm"
)

type DashboardService struct {
	db       *gorm.DB
	calendar *cal.BusinessCalendar
}

func NewDashboardService(db *gorm.DB) *DashboardService {
	return &DashboardService{
		db:       db,
		calendar: cal.NewBusinessCalendar(),
	}
}

type DashboardStats struct {
	TotalProjects     int64 `json:"total_projects"`
	NotStarted        int64 `json:"not_started"`
	InProgress        int64 `json:"in_progress"`
	Completed         int64 `json:"completed"`
	UpcomingDeadlines int64 `json:"upcoming_deadlines"`
}

type ProjectSchedule struct {
	ProjectID         uint      `json:"project_id"`
	ProjectName       string    `json:"project_name"`
	Status            string    `json:"status"`
	StartDate         time.Time `json:"start_date"`
	EndDate           time.Time `json:"end_date"`
	WorkdaysRemaining int       `json:"workdays_remaining"`
	Overdue           bool      `json:"overdue"`
}

type DashboardResponse struct {
	Stats     DashboardStats    `json:"stats"`
	Schedules []ProjectSchedule `json:"schedules"`
}

// GetStats aggregates the user's projects: status counts, deadlines within
// two weeks, and per-project remaining working days.
func (s *DashboardService) GetStats(userID uint) (*DashboardResponse, error) {
	memberProjects := s.db.Model(&models.ProjectMember{}).
		Select("project_id").
		Where("user_id = ?", userID)

	var projects []models.Project
	if err := s.db.Preload("Detail").
		Where("created_by = ? OR id IN (?)", userID, memberProjects).
		Find(&projects).Error; err != nil {
		return nil, err
	}

	now := time.Now()
	deadlineWindow := now.AddDate(0, 0, 14)

	resp := &DashboardResponse{
		Schedules: make([]ProjectSchedule, 0, len(projects)),
	}
	resp.Stats.TotalProjects = int64(len(projects))

	for _, p := range projects {
		if p.Detail == nil {
			continue
		}

		switch p.Detail.Status {
		case models.StatusNotStarted:
			resp.Stats.NotStarted++
		case models.StatusInProgress:
			resp.Stats.InProgress++
		case models.StatusCompleted:
			resp.Stats.Completed++
		}

		schedule := ProjectSchedule{
			ProjectID:   p.ID,
			ProjectName: p.Name,
			Status:      p.Detail.Status,
			StartDate:   p.Detail.StartDate,
			EndDate:     p.Detail.EndDate,
		}

		if p.Detail.Status != models.StatusCompleted {
			if p.Detail.EndDate.Before(now) {
				schedule.Overdue = true
			} else {
				schedule.WorkdaysRemaining = s.calendar.WorkdaysInRange(now, p.Detail.EndDate)
				if p.Detail.EndDate.Before(deadlineWindow) {
					resp.Stats.UpcomingDeadlines++
				}
			}
		}

		resp.Schedules = append(resp.Schedules, schedule)
	}

	return resp, nil
}
