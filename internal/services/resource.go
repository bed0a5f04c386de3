package services

import (
	"errors"
	"strings"

	"github.com/AmanVarshney01/gla-project-tracker/internal/models"
	"github.com/AmanVarshney01/gla-project-tracker/pkg/response"
	"gorm.io/gorm"
)

type ResourceService struct {
	db *gorm.DB
}

func NewResourceService(db *gorm.DB) *ResourceService {
	return &ResourceService{db: db}
}

type CreateResourceRequest struct {
	Name string `json:"name" binding:"required"`
	URL  string `json:"url" binding:"required,url"`
}

type UpdateResourceRequest struct {
	Name string `json:"name" binding:"required"`
	URL  string `json:"url" binding:"required,url"`
}

// List returns a project's resources, newest first.
func (s *ResourceService) List(projectID uint) ([]models.Resource, error) {
	var resources []models.Resource
	if err := s.db.Where("project_id = ?", projectID).
		Order("created_at DESC").
		Find(&resources).Error; err != nil {
		return nil, err
	}
	return resources, nil
}

// Create attaches a new link to a project.
func (s *ResourceService) Create(projectID uint, req *CreateResourceRequest) (*models.Resource, error) {
	var project models.Project
	if err := s.db.First(&project, projectID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFound("project not found")
		}
		return nil, err
	}

	resource := models.Resource{
		ProjectID: projectID,
		Name:      strings.TrimSpace(req.Name),
		URL:       req.URL,
	}

	if err := s.db.Create(&resource).Error; err != nil {
		return nil, err
	}

	return &resource, nil
}

// Update renames or repoints an existing resource.
func (s *ResourceService) Update(projectID, resourceID uint, req *UpdateResourceRequest) (*models.Resource, error) {
	var resource models.Resource
	if err := s.db.Where("project_id = ?", projectID).First(&resource, resourceID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFound("resource not found")
		}
		return nil, err
	}

	updates := map[string]interface{}{
		"name": strings.TrimSpace(req.Name),
		"url":  req.URL,
	}
	if err := s.db.Model(&resource).Updates(updates).Error; err != nil {
		return nil, err
	}

	return &resource, nil
}

// Delete removes a resource from a project.
func (s *ResourceService) Delete(projectID, resourceID uint) error {
	var resource models.Resource
	if err := s.db.Where("project_id = ?", projectID).First(&resource, resourceID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NewNotFound("resource not found")
		}
		return err
	}

	return s.db.Delete(&resource).Error
}
