package models

import "time"

// Project status values stored in project_details.status.
const (
	StatusNotStarted = "not-started"
	StatusInProgress = "in-progress"
	StatusCompleted  = "completed"
)

// ProjectDetail holds the mutable descriptive record of a project.
// Exactly one row exists per project; each field is independently mutable
// through its own targeted update, so there is no cross-field transaction
// (start_date <= end_date is deliberately not enforced).
type ProjectDetail struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	ProjectID   uint      `gorm:"uniqueIndex;not null" json:"project_id"`
	Description string    `gorm:"type:text" json:"description"`
	StartDate   time.Time `gorm:"type:date" json:"start_date"`
	EndDate     time.Time `gorm:"type:date" json:"end_date"`
	Status      string    `gorm:"size:50;default:not-started" json:"status"`
	GithubURL   *string   `gorm:"size:500" json:"github_url"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (ProjectDetail) TableName() string { return "project_details" }

// ValidStatus reports whether s is one of the accepted status values.
func ValidStatus(s string) bool {
	return s == StatusNotStarted || s == StatusInProgress || s == StatusCompleted
}
