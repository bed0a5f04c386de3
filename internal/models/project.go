package models

import (
	"time"

	"gorm.io/gorm"
)

// Project is the top-level organizational entity. Descriptive state lives in
// the one-to-one ProjectDetail row, which is created alongside the project
// and never outlives it.
type Project struct {
	ID        uint            `gorm:"primaryKey" json:"id"`
	Name      string          `gorm:"size:200;not null" json:"name"`
	CreatedBy uint            `gorm:"index;not null" json:"created_by"`
	Owner     *User           `gorm:"foreignKey:CreatedBy" json:"owner,omitempty"`
	Detail    *ProjectDetail  `gorm:"foreignKey:ProjectID" json:"detail,omitempty"`
	Members   []ProjectMember `gorm:"foreignKey:ProjectID" json:"members,omitempty"`
	Resources []Resource      `gorm:"foreignKey:ProjectID" json:"resources,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
	DeletedAt gorm.DeletedAt  `gorm:"index" json:"-"`
}

func (Project) TableName() string { return "projects" }
