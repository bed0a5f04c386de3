package models

import (
	"time"

	"gorm.io/gorm"
)

// Member roles within a project.
const (
	RoleOwner  = "owner"
	RoleEditor = "editor"
	RoleViewer = "viewer"
)

// ProjectMember links a user to a project by email with a role label.
// The email is the membership key (a project cannot have the same member
// twice); UserID is resolved from the users table when the member is added
// so listings can show a display name.
type ProjectMember struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	ProjectID   uint           `gorm:"uniqueIndex:idx_project_member;not null" json:"project_id"`
	MemberEmail string         `gorm:"uniqueIndex:idx_project_member;size:255;not null" json:"member_email"`
	UserID      uint           `gorm:"index;not null" json:"user_id"`
	User        *User          `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Role        string         `gorm:"size:50;default:viewer" json:"role"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

func (ProjectMember) TableName() string { return "project_members" }

// ValidRole reports whether r is one of the accepted member roles.
func ValidRole(r string) bool {
	return r == RoleOwner || r == RoleEditor || r == RoleViewer
}
