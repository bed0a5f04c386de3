package models

import (
	"time"

	"gorm.io/gorm"
)

// Resource is a named external link attached to a project.
type Resource struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	ProjectID uint           `gorm:"index;not null" json:"project_id"`
	Name      string         `gorm:"size:200;not null" json:"name"`
	URL       string         `gorm:"size:500;not null" json:"url"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Resource) TableName() string { return "resources" }
