package services

import (
	"errors"
	"strings"

	"github.com/AmanVarshney01/gla-project-tracker/internal/models"
	"github.com/AmanVarshney01/gla-project-tracker/pkg/response"
	"gorm.io/gorm"
)

type MemberService struct {
	db *gorm.DB
}

func NewMemberService(db *gorm.DB) *MemberService {
	return &MemberService{db: db}
}

type AddMemberRequest struct {
	Email string `json:"email" binding:"required,email"`
	Role  string `json:"role" binding:"required,oneof=owner editor viewer"`
}

type UpdateMemberRequest struct {
	Role string `json:"role" binding:"required,oneof=owner editor viewer"`
}

// List returns all members of a project with their display names.
func (s *MemberService) List(projectID uint) ([]models.ProjectMember, error) {
	var members []models.ProjectMember
	if err := s.db.Where("project_id = ?", projectID).
		Preload("User").
		Order("created_at ASC").
		Find(&members).Error; err != nil {
		return nil, err
	}
	return members, nil
}

// Add adds a registered user to a project by email.
func (s *MemberService) Add(projectID uint, req *AddMemberRequest) (*models.ProjectMember, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	var project models.Project
	if err := s.db.First(&project, projectID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFound("project not found")
		}
		return nil, err
	}

	var user models.User
	if err := s.db.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFound("no registered user with that email")
		}
		return nil, err
	}

	if user.ID == project.CreatedBy {
		return nil, response.NewConflict("the project owner is already a member")
	}

	var existing models.ProjectMember
	if err := s.db.Where("project_id = ? AND member_email = ?", projectID, email).
		First(&existing).Error; err == nil {
		return nil, response.NewConflict("user is already a member of this project")
	}

	member := models.ProjectMember{
		ProjectID:   projectID,
		MemberEmail: email,
		UserID:      user.ID,
		Role:        req.Role,
	}

	if err := s.db.Create(&member).Error; err != nil {
		return nil, err
	}

	s.db.Preload("User").First(&member, member.ID)
	return &member, nil
}

// UpdateRole changes a member's role.
func (s *MemberService) UpdateRole(projectID, memberID uint, req *UpdateMemberRequest) (*models.ProjectMember, error) {
	var member models.ProjectMember
	if err := s.db.Where("project_id = ?", projectID).First(&member, memberID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFound("member not found")
		}
		return nil, err
	}

	if err := s.db.Model(&member).Update("role", req.Role).Error; err != nil {
		return nil, err
	}

	s.db.Preload("User").First(&member, member.ID)
	return &member, nil
}

// Remove removes a member from a project.
func (s *MemberService) Remove(projectID, memberID uint) error {
	var member models.ProjectMember
	if err := s.db.Where("project_id = ?", projectID).First(&member, memberID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NewNotFound("member not found")
		}
		return err
	}

	return s.db.Delete(&member).Error
}
