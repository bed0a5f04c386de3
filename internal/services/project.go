package services

import (
	"errors"
	"strings"
	"time"

	"github.com/AmanVarshney01/gla-project-tracker/internal/models"
	"github.com/AmanVarshney01/gla-project-tracker/pkg/response"
	"gorm.io/gorm"
)

// DateLayout is the wire format for project dates.
const DateLayout = "2006-01-02"

type ProjectService struct {
	db *gorm.DB
}

func NewProjectService(db *gorm.DB) *ProjectService {
	return &ProjectService{db: db}
}

type ProjectListRequest struct {
	Page     int    `form:"page" binding:"min=0"`
	PageSize int    `form:"page_size" binding:"min=0,max=100"`
	Name     string `form:"name"`
	Status   string `form:"status"`
}

type ProjectListItem struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	Status    string    `json:"status"`
	EndDate   time.Time `json:"end_date"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

type ProjectListResponse struct {
	Total    int64             `json:"total"`
	Page     int               `json:"page"`
	PageSize int               `json:"page_size"`
	Items    []ProjectListItem `json:"items"`
}

type CreateProjectRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	StartDate   string `json:"start_date" binding:"required"`
	EndDate     string `json:"end_date" binding:"required"`
	Status      string `json:"status" binding:"omitempty,oneof=not-started in-progress completed"`
}

// ProjectOverview is the denormalized read projection consumed by the
// dashboard and used as the settings screen's initial snapshot.
type ProjectOverview struct {
	ID              uint             `json:"id"`
	Name            string           `json:"name"`
	Owner           OwnerInfo        `json:"owner"`
	Description     string           `json:"description"`
	StartDate       time.Time        `json:"start_date"`
	EndDate         time.Time        `json:"end_date"`
	Status          string           `json:"status"`
	GithubURL       *string          `json:"github_url"`
	GithubConnected bool             `json:"github_connected"`
	Members         []MemberOverview `json:"members"`
}

type OwnerInfo struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

type MemberOverview struct {
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  string `json:"role"`
}

// List returns the projects the user owns or is a member of, paginated.
func (s *ProjectService) List(userID uint, req *ProjectListRequest) (*ProjectListResponse, error) {
	if req.Page == 0 {
		req.Page = 1
	}
	if req.PageSize == 0 {
		req.PageSize = 10
	}

	memberProjects := s.db.Model(&models.ProjectMember{}).
		Select("project_id").
		Where("user_id = ?", userID)

	query := s.db.Model(&models.Project{}).
		Where("created_by = ? OR id IN (?)", userID, memberProjects)

	if req.Name != "" {
		query = query.Where("name LIKE ?", "%"+req.Name+"%")
	}
	if req.Status != "" {
		// Filter in SQL so total and pagination see the same row set.
		// A project without a details row never matches a status filter.
		statusMatches := s.db.Model(&models.ProjectDetail{}).
			Select("project_id").
			Where("status = ?", req.Status)
		query = query.Where("id IN (?)", statusMatches)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, err
	}

	var projects []models.Project
	offset := (req.Page - 1) * req.PageSize
	if err := query.Preload("Detail").
		Offset(offset).Limit(req.PageSize).
		Order("created_at DESC").
		Find(&projects).Error; err != nil {
		return nil, err
	}

	items := make([]ProjectListItem, 0, len(projects))
	for _, p := range projects {
		item := ProjectListItem{
			ID:        p.ID,
			Name:      p.Name,
			Role:      models.RoleViewer,
			CreatedAt: p.CreatedAt,
		}
		if p.CreatedBy == userID {
			item.Role = models.RoleOwner
		} else {
			var member models.ProjectMember
			if err := s.db.Where("project_id = ? AND user_id = ?", p.ID, userID).
				First(&member).Error; err == nil {
				item.Role = member.Role
			}
		}
		if p.Detail != nil {
			item.Status = p.Detail.Status
			item.EndDate = p.Detail.EndDate
		}
		items = append(items, item)
	}

	return &ProjectListResponse{
		Total:    total,
		Page:     req.Page,
		PageSize: req.PageSize,
		Items:    items,
	}, nil
}

// Create creates a project and its details row in one transaction so the
// one-to-one invariant holds from the start.
func (s *ProjectService) Create(req *CreateProjectRequest, userID uint) (*models.Project, error) {
	startDate, err := time.Parse(DateLayout, req.StartDate)
	if err != nil {
		return nil, response.NewBadRequest("start_date must be a valid date (YYYY-MM-DD)")
	}
	endDate, err := time.Parse(DateLayout, req.EndDate)
	if err != nil {
		return nil, response.NewBadRequest("end_date must be a valid date (YYYY-MM-DD)")
	}

	status := req.Status
	if status == "" {
		status = models.StatusNotStarted
	}

	project := models.Project{
		Name:      strings.TrimSpace(req.Name),
		CreatedBy: userID,
	}

	if err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&project).Error; err != nil {
			return err
		}
		detail := models.ProjectDetail{
			ProjectID:   project.ID,
			Description: req.Description,
			StartDate:   startDate,
			EndDate:     endDate,
			Status:      status,
		}
		return tx.Create(&detail).Error
	}); err != nil {
		return nil, err
	}

	return &project, nil
}

// GetOverview returns the joined projection of a project: owner, details
// and members with display names. The details row is a presence-checked
// one-to-one, never an indexed-into collection.
func (s *ProjectService) GetOverview(projectID uint) (*ProjectOverview, error) {
	var project models.Project
	err := s.db.Preload("Owner").
		Preload("Detail").
		Preload("Members").
		Preload("Members.User").
		First(&project, projectID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFound("project not found")
		}
		return nil, err
	}

	if project.Detail == nil {
		return nil, response.NewNotFound("project details not found")
	}

	overview := &ProjectOverview{
		ID:              project.ID,
		Name:            project.Name,
		Description:     project.Detail.Description,
		StartDate:       project.Detail.StartDate,
		EndDate:         project.Detail.EndDate,
		Status:          project.Detail.Status,
		GithubURL:       project.Detail.GithubURL,
		GithubConnected: project.Detail.GithubURL != nil,
		Members:         make([]MemberOverview, 0, len(project.Members)),
	}

	if project.Owner != nil {
		overview.Owner = OwnerInfo{Name: project.Owner.Name, Email: project.Owner.Email}
	}

	for _, m := range project.Members {
		member := MemberOverview{
			Email: m.MemberEmail,
			Role:  m.Role,
		}
		if m.User != nil {
			member.Name = m.User.Name
		}
		overview.Members = append(overview.Members, member)
	}

	return overview, nil
}

// Delete removes a project together with its details, members and
// resources.
func (s *ProjectService) Delete(projectID uint) error {
	var project models.Project
	if err := s.db.First(&project, projectID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NewNotFound("project not found")
		}
		return err
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("project_id = ?", projectID).Delete(&models.ProjectDetail{}).Error; err != nil {
			return err
		}
		if err := tx.Where("project_id = ?", projectID).Delete(&models.ProjectMember{}).Error; err != nil {
			return err
		}
		if err := tx.Where("project_id = ?", projectID).Delete(&models.Resource{}).Error; err != nil {
			return err
		}
		return tx.Delete(&project).Error
	})
}
