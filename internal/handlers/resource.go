package handlers

import (
	"strconv"

	"github.com/AmanVarshney01/gla-project-tracker/internal/middleware"
	"github.com/AmanVarshney01/gla-project-tracker/internal/services"
	"github.com/AmanVarshney01/gla-project-tracker/pkg/response"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type ResourceHandler struct {
	resourceService *services.ResourceService
	activity        *services.ActivityService
}

func NewResourceHandler(db *gorm.DB, activity *services.ActivityService) *ResourceHandler {
	return &ResourceHandler{
		resourceService: services.NewResourceService(db),
		activity:        activity,
	}
}

// List returns a project's resources
// GET /api/projects/:id/resources
func (h *ResourceHandler) List(c *gin.Context) {
	resources, err := h.resourceService.List(middleware.GetProjectID(c))
	if err != nil {
		response.ServerError(c, err.Error())
		return
	}

	response.Success(c, resources)
}

// Create attaches a link to the project
// POST /api/projects/:id/resources
func (h *ResourceHandler) Create(c *gin.Context) {
	var req services.CreateResourceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	projectID := middleware.GetProjectID(c)
	resource, err := h.resourceService.Create(projectID, &req)
	if err != nil {
		response.Error(c, err)
		return
	}

	userID := middleware.GetUserID(c)
	h.activity.Record(&services.ActivityTask{
		ProjectID: &projectID,
		Action:    "resource.created",
		Message:   "resource " + resource.Name + " added",
		UserID:    &userID,
		IP:        c.ClientIP(),
		UserAgent: c.Request.UserAgent(),
	})

	response.Created(c, resource)
}

// Update renames or repoints a resource
// PUT /api/projects/:id/resources/:resourceID
func (h *ResourceHandler) Update(c *gin.Context) {
	resourceID, err := strconv.ParseUint(c.Param("resourceID"), 10, 32)
	if err != nil {
		response.BadRequest(c, "invalid resource id")
		return
	}

	var req services.UpdateResourceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	resource, err := h.resourceService.Update(middleware.GetProjectID(c), uint(resourceID), &req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, resource)
}

// Delete removes a resource
// DELETE /api/projects/:id/resources/:resourceID
func (h *ResourceHandler) Delete(c *gin.Context) {
	resourceID, err := strconv.ParseUint(c.Param("resourceID"), 10, 32)
	if err != nil {
		response.BadRequest(c, "invalid resource id")
		return
	}

	if err := h.resourceService.Delete(middleware.GetProjectID(c), uint(resourceID)); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, gin.H{"message": "resource deleted"})
}
