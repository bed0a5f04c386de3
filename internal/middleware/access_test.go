package middleware

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/AmanVarshney01/gla-project-tracker/internal/models"
	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupAccessDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}
	if err := db.AutoMigrate(&models.Project{}, &models.ProjectMember{}); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	return db
}

func accessRouter(db *gorm.DB, userID uint, extra ...gin.HandlerFunc) *gin.Engine {
	router := gin.New()
	router.Use(func(c *gin.Context) {
		c.Set(ContextUserID, userID)
		c.Next()
	})
	handlers := []gin.HandlerFunc{ProjectAccessRequired(db)}
	handlers = append(handlers, extra...)
	handlers = append(handlers, func(c *gin.Context) {
		c.JSON(200, gin.H{"role": GetProjectRole(c), "project_id": GetProjectID(c)})
	})
	router.GET("/projects/:id", handlers...)
	return router
}

func TestProjectAccessRequired_InvalidID(t *testing.T) {
	db := setupAccessDB(t)
	router := accessRouter(db, 1)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/projects/abc", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected status %d, got %d", http.StatusBadRequest, w.Code)
	}
}

func TestProjectAccessRequired_NotFound(t *testing.T) {
	db := setupAccessDB(t)
	router := accessRouter(db, 1)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/projects/999", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("expected status %d, got %d", http.StatusNotFound, w.Code)
	}
}

func TestProjectAccessRequired_OwnerRole(t *testing.T) {
	db := setupAccessDB(t)
	project := models.Project{Name: "Alpha", CreatedBy: 1}
	db.Create(&project)

	router := accessRouter(db, 1)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", fmt.Sprintf("/projects/%d", project.ID), nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, w.Code)
	}
}

func TestProjectAccessRequired_NonMember(t *testing.T) {
	db := setupAccessDB(t)
	project := models.Project{Name: "Alpha", CreatedBy: 1}
	db.Create(&project)

	router := accessRouter(db, 2)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", fmt.Sprintf("/projects/%d", project.ID), nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusForbidden {
		t.Errorf("expected status %d, got %d", http.StatusForbidden, w.Code)
	}
}

func TestProjectAccessRequired_MemberRole(t *testing.T) {
	db := setupAccessDB(t)
	project := models.Project{Name: "Alpha", CreatedBy: 1}
	db.Create(&project)
	db.Create(&models.ProjectMember{
		ProjectID:   project.ID,
		MemberEmail: "bob@example.com",
		UserID:      2,
		Role:        models.RoleEditor,
	})

	router := accessRouter(db, 2)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", fmt.Sprintf("/projects/%d", project.ID), nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, w.Code)
	}
}

func TestProjectWriteRequired_ViewerRejected(t *testing.T) {
	db := setupAccessDB(t)
	project := models.Project{Name: "Alpha", CreatedBy: 1}
	db.Create(&project)
	db.Create(&models.ProjectMember{
		ProjectID:   project.ID,
		MemberEmail: "bob@example.com",
		UserID:      2,
		Role:        models.RoleViewer,
	})

	router := accessRouter(db, 2, ProjectWriteRequired())

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", fmt.Sprintf("/projects/%d", project.ID), nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusForbidden {
		t.Errorf("expected status %d, got %d", http.StatusForbidden, w.Code)
	}
}

func TestProjectWriteRequired_EditorAllowed(t *testing.T) {
	db := setupAccessDB(t)
	project := models.Project{Name: "Alpha", CreatedBy: 1}
	db.Create(&project)
	db.Create(&models.ProjectMember{
		ProjectID:   project.ID,
		MemberEmail: "bob@example.com",
		UserID:      2,
		Role:        models.RoleEditor,
	})

	router := accessRouter(db, 2, ProjectWriteRequired())

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", fmt.Sprintf("/projects/%d", project.ID), nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected status %d, got %d", http.StatusOK, w.Code)
	}
}

func TestProjectOwnerRequired_EditorRejected(t *testing.T) {
	db := setupAccessDB(t)
	project := models.Project{Name: "Alpha", CreatedBy: 1}
	db.Create(&project)
	db.Create(&models.ProjectMember{
		ProjectID:   project.ID,
		MemberEmail: "bob@example.com",
		UserID:      2,
		Role:        models.RoleEditor,
	})

	router := accessRouter(db, 2, ProjectOwnerRequired())

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", fmt.Sprintf("/projects/%d", project.ID), nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusForbidden {
		t.Errorf("expected status %d, got %d", http.StatusForbidden, w.Code)
	}
}

func TestProjectOwnerRequired_OwnerAllowed(t *testing.T) {
	db := setupAccessDB(t)
	project := models.Project{Name: "Alpha", CreatedBy: 1}
	db.Create(&project)

	router := accessRouter(db, 1, ProjectOwnerRequired())

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", fmt.Sprintf("/projects/%d", project.ID), nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected status %d, got %d", http.StatusOK, w.Code)
	}
}
