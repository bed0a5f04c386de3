package services

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/AmanVarshney01/gla-project-tracker/internal/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB opens a fresh in-memory database with the full schema. The
// database is named after the test so pooled connections see the same
// tables while tests stay isolated from each other.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}
	err = db.AutoMigrate(
		&models.User{},
		&models.Project{},
		&models.ProjectDetail{},
		&models.ProjectMember{},
		&models.Resource{},
		&models.RefreshToken{},
		&models.ActivityLog{},
	)
	if err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	return db
}

func mustDate(t *testing.T, value string) time.Time {
	t.Helper()
	d, err := time.Parse(DateLayout, value)
	if err != nil {
		t.Fatalf("bad date %q: %v", value, err)
	}
	return d
}

// seedProject creates a user, a project owned by that user and its details
// row, returning the project.
func seedProject(t *testing.T, db *gorm.DB, name string) *models.Project {
	t.Helper()
	user := models.User{Name: "Owner", Email: strings.ToLower(name) + "-owner@example.com", Password: "x"}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("failed to create user: %v", err)
	}
	project := models.Project{Name: name, CreatedBy: user.ID}
	if err := db.Create(&project).Error; err != nil {
		t.Fatalf("failed to create project: %v", err)
	}
	detail := models.ProjectDetail{
		ProjectID:   project.ID,
		Description: "Old",
		StartDate:   mustDate(t, "2024-01-01"),
		EndDate:     mustDate(t, "2024-06-01"),
		Status:      models.StatusNotStarted,
	}
	if err := db.Create(&detail).Error; err != nil {
		t.Fatalf("failed to create project detail: %v", err)
	}
	return &project
}
