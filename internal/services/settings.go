package services

import (
	"errors"
	"strings"
	"time"

	"github.com/AmanVarshney01/gla-project-tracker/internal/models"
	"github.com/AmanVarshney01/gla-project-tracker/pkg/response"
	"gorm.io/gorm"
)

// SettingsService implements the project settings update flow. Each field
// of the settings screen submits independently, so every operation here
// performs exactly one targeted write against the project or its details
// row. There is no cross-field transaction: submitting a start date never
// touches the end date, and no start <= end invariant is enforced.
// Concurrent writes to the same field are last-write-wins.
type SettingsService struct {
	db *gorm.DB
}

func NewSettingsService(db *gorm.DB) *SettingsService {
	return &SettingsService{db: db}
}

type UpdateTitleRequest struct {
	Name string `json:"name" binding:"required"`
}

type UpdateDescriptionRequest struct {
	// Long-form text, may be empty.
	Description string `json:"description"`
}

type UpdateStartDateRequest struct {
	StartDate string `json:"start_date" binding:"required"`
}

type UpdateEndDateRequest struct {
	EndDate string `json:"end_date" binding:"required"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=not-started in-progress completed"`
}

type ConnectGithubRequest struct {
	GithubURL string `json:"github_url" binding:"required,url"`
}

// UpdateTitle writes the project name. Re-submitting the same value is a
// no-op on stored state.
func (s *SettingsService) UpdateTitle(projectID uint, req *UpdateTitleRequest) (*models.Project, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, response.NewBadRequest("name must not be empty")
	}

	var project models.Project
	if err := s.db.First(&project, projectID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFound("project not found")
		}
		return nil, err
	}

	if err := s.db.Model(&project).Update("name", name).Error; err != nil {
		return nil, err
	}

	return &project, nil
}

// UpdateDescription writes the details description.
func (s *SettingsService) UpdateDescription(projectID uint, req *UpdateDescriptionRequest) (*models.ProjectDetail, error) {
	detail, err := s.getDetail(projectID)
	if err != nil {
		return nil, err
	}

	if err := s.db.Model(detail).Update("description", req.Description).Error; err != nil {
		return nil, err
	}

	return detail, nil
}

// UpdateStartDate writes the details start_date.
func (s *SettingsService) UpdateStartDate(projectID uint, req *UpdateStartDateRequest) (*models.ProjectDetail, error) {
	startDate, err := time.Parse(DateLayout, req.StartDate)
	if err != nil {
		return nil, response.NewBadRequest("start_date must be a valid date (YYYY-MM-DD)")
	}

	detail, err := s.getDetail(projectID)
	if err != nil {
		return nil, err
	}

	if err := s.db.Model(detail).Update("start_date", startDate).Error; err != nil {
		return nil, err
	}

	return detail, nil
}

// UpdateEndDate writes the details end_date.
func (s *SettingsService) UpdateEndDate(projectID uint, req *UpdateEndDateRequest) (*models.ProjectDetail, error) {
	endDate, err := time.Parse(DateLayout, req.EndDate)
	if err != nil {
		return nil, response.NewBadRequest("end_date must be a valid date (YYYY-MM-DD)")
	}

	detail, err := s.getDetail(projectID)
	if err != nil {
		return nil, err
	}

	if err := s.db.Model(detail).Update("end_date", endDate).Error; err != nil {
		return nil, err
	}

	return detail, nil
}

// UpdateStatus writes the details status.
func (s *SettingsService) UpdateStatus(projectID uint, req *UpdateStatusRequest) (*models.ProjectDetail, error) {
	detail, err := s.getDetail(projectID)
	if err != nil {
		return nil, err
	}

	if err := s.db.Model(detail).Update("status", req.Status).Error; err != nil {
		return nil, err
	}

	return detail, nil
}

// ConnectGithub sets the github_url on the details row.
func (s *SettingsService) ConnectGithub(projectID uint, req *ConnectGithubRequest) (*models.ProjectDetail, error) {
	detail, err := s.getDetail(projectID)
	if err != nil {
		return nil, err
	}

	if err := s.db.Model(detail).Update("github_url", req.GithubURL).Error; err != nil {
		return nil, err
	}

	return detail, nil
}

// DisconnectGithub clears the github_url (stored NULL).
func (s *SettingsService) DisconnectGithub(projectID uint) (*models.ProjectDetail, error) {
	detail, err := s.getDetail(projectID)
	if err != nil {
		return nil, err
	}

	if err := s.db.Model(detail).Update("github_url", nil).Error; err != nil {
		return nil, err
	}
	detail.GithubURL = nil

	return detail, nil
}

// getDetail resolves the details row for a project, checking both levels of
// existence: the project itself and its one-to-one details record.
func (s *SettingsService) getDetail(projectID uint) (*models.ProjectDetail, error) {
	var project models.Project
	if err := s.db.First(&project, projectID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFound("project not found")
		}
		return nil, err
	}

	var detail models.ProjectDetail
	if err := s.db.Where("project_id = ?", projectID).First(&detail).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFound("project details not found")
		}
		return nil, err
	}

	return &detail, nil
}
