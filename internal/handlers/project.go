package handlers

import (
	"github.com/AmanVarshney01/gla-project-tracker/internal/middleware"
	"github.com/AmanVarshney01/gla-project-tracker/internal/services"
	"github.com/AmanVarshney01/gla-project-tracker/pkg/response"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type ProjectHandler struct {
	projectService *services.ProjectService
	activity       *services.ActivityService
}

func NewProjectHandler(db *gorm.DB, activity *services.ActivityService) *ProjectHandler {
	return &ProjectHandler{
		projectService: services.NewProjectService(db),
		activity:       activity,
	}
}

// List returns the requester's projects
// GET /api/projects
func (h *ProjectHandler) List(c *gin.Context) {
	var req services.ProjectListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	resp, err := h.projectService.List(middleware.GetUserID(c), &req)
	if err != nil {
		response.ServerError(c, err.Error())
		return
	}

	response.Success(c, resp)
}

// Create creates a project and its details row
// POST /api/projects
func (h *ProjectHandler) Create(c *gin.Context) {
	var req services.CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	userID := middleware.GetUserID(c)
	project, err := h.projectService.Create(&req, userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	h.activity.Record(&services.ActivityTask{
		ProjectID: &project.ID,
		Action:    "project.created",
		Message:   "project " + project.Name + " created",
		UserID:    &userID,
		IP:        c.ClientIP(),
		UserAgent: c.Request.UserAgent(),
	})

	response.Created(c, project)
}

// GetOverview returns the denormalized project projection
// GET /api/projects/:id
func (h *ProjectHandler) GetOverview(c *gin.Context) {
	overview, err := h.projectService.GetOverview(middleware.GetProjectID(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, overview)
}

// Delete removes a project and everything attached to it
// DELETE /api/projects/:id
func (h *ProjectHandler) Delete(c *gin.Context) {
	projectID := middleware.GetProjectID(c)
	userID := middleware.GetUserID(c)

	if err := h.projectService.Delete(projectID); err != nil {
		response.Error(c, err)
		return
	}

	h.activity.Record(&services.ActivityTask{
		Action:    "project.deleted",
		Message:   "project deleted",
		UserID:    &userID,
		IP:        c.ClientIP(),
		UserAgent: c.Request.UserAgent(),
	})

	response.Success(c, gin.H{"message": "project deleted successfully"})
}
