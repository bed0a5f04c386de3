package handlers

import (
	"github.com/AmanVarshney01/gla-project-tracker/internal/middleware"
	"github.com/AmanVarshney01/gla-project-tracker/internal/services"
	"github.com/AmanVarshney01/gla-project-tracker/pkg/response"
	"github.com/gin-gonic/gin"
)

type ActivityHandler struct {
	activityService *services.ActivityService
}

func NewActivityHandler(activityService *services.ActivityService) *ActivityHandler {
	return &ActivityHandler{activityService: activityService}
}

// List returns a project's activity feed
// GET /api/projects/:id/activity
func (h *ActivityHandler) List(c *gin.Context) {
	var req services.ActivityListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	resp, err := h.activityService.List(middleware.GetProjectID(c), &req)
	if err != nil {
		response.ServerError(c, err.Error())
		return
	}

	response.Success(c, resp)
}
