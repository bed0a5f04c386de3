package services

import (
	"context"
	"encoding/json"
	"time"

	"github.com/AmanVarshney01/gla-project-tracker/internal/models"
	"gorm.io/gorm"
)

// ActivityService records and queries project activity. Writes arrive via
// the task queue so HTTP handlers never wait on the insert.
type ActivityService struct {
	db    *gorm.DB
	queue TaskQueue
}

func NewActivityService(db *gorm.DB, queue TaskQueue) *ActivityService {
	return &ActivityService{db: db, queue: queue}
}

// Record enqueues a project event for asynchronous persistence.
func (s *ActivityService) Record(task *ActivityTask) {
	if s.queue == nil {
		_ = s.Write(context.Background(), task)
		return
	}
	if err := s.queue.Enqueue(task); err != nil {
		// Queue failure must not lose the event
		_ = s.Write(context.Background(), task)
	}
}

// Write persists an activity task. Used as the queue processor.
func (s *ActivityService) Write(ctx context.Context, task *ActivityTask) error {
	var extraStr string
	if task.Extra != nil {
		if b, err := json.Marshal(task.Extra); err == nil {
			extraStr = string(b)
		}
	}

	level := task.Level
	if level == "" {
		level = "info"
	}

	entry := &models.ActivityLog{
		ProjectID: task.ProjectID,
		Level:     level,
		Action:    task.Action,
		Message:   task.Message,
		UserID:    task.UserID,
		IP:        task.IP,
		UserAgent: task.UserAgent,
		Extra:     extraStr,
		CreatedAt: time.Now(),
	}
	return s.db.WithContext(ctx).Create(entry).Error
}

type ActivityListRequest struct {
	Page      int    `form:"page" binding:"min=0"`
	PageSize  int    `form:"page_size" binding:"min=0,max=100"`
	Level     string `form:"level"`
	Action    string `form:"action"`
	StartDate string `form:"start_date"`
	EndDate   string `form:"end_date"`
}

type ActivityListResponse struct {
	Total    int64                `json:"total"`
	Page     int                  `json:"page"`
	PageSize int                  `json:"page_size"`
	Items    []models.ActivityLog `json:"items"`
}

// List returns a project's activity, newest first.
func (s *ActivityService) List(projectID uint, req *ActivityListRequest) (*ActivityListResponse, error) {
	if req.Page == 0 {
		req.Page = 1
	}
	if req.PageSize == 0 {
		req.PageSize = 20
	}

	var logs []models.ActivityLog
	var total int64

	query := s.db.Model(&models.ActivityLog{}).Where("project_id = ?", projectID)

	if req.Level != "" {
		query = query.Where("level = ?", req.Level)
	}
	if req.Action != "" {
		query = query.Where("action LIKE ?", "%"+req.Action+"%")
	}
	if req.StartDate != "" {
		query = query.Where("created_at >= ?", req.StartDate)
	}
	if req.EndDate != "" {
		query = query.Where("created_at <= ?", req.EndDate+" 23:59:59")
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, err
	}

	offset := (req.Page - 1) * req.PageSize
	if err := query.Offset(offset).Limit(req.PageSize).Order("created_at DESC").Find(&logs).Error; err != nil {
		return nil, err
	}

	return &ActivityListResponse{
		Total:    total,
		Page:     req.Page,
		PageSize: req.PageSize,
		Items:    logs,
	}, nil
}

// Cleanup deletes activity older than retentionDays. Returns rows removed.
func (s *ActivityService) Cleanup(retentionDays int) (int64, error) {
	cutoff := time.Now().AddDate(0, 0, -retentionDays)
	result := s.db.Where("created_at < ?", cutoff).Delete(&models.ActivityLog{})
	return result.RowsAffected, result.Error
}
