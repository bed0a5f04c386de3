package handlers

import (
	"github.com/AmanVarshney01/gla-project-tracker/internal/middleware"
	"github.com/AmanVarshney01/gla-project-tracker/internal/services"
	"github.com/AmanVarshney01/gla-project-tracker/pkg/response"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SettingsHandler exposes the settings screen's field updates as four
// independent endpoints. Each maps to exactly one targeted write; none of
// them locks or revalidates the others.
type SettingsHandler struct {
	settingsService *services.SettingsService
	activity        *services.ActivityService
}

func NewSettingsHandler(db *gorm.DB, activity *services.ActivityService) *SettingsHandler {
	return &SettingsHandler{
		settingsService: services.NewSettingsService(db),
		activity:        activity,
	}
}

// UpdateTitle writes the project name
// PATCH /api/projects/:id/title
func (h *SettingsHandler) UpdateTitle(c *gin.Context) {
	var req services.UpdateTitleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	project, err := h.settingsService.UpdateTitle(middleware.GetProjectID(c), &req)
	if err != nil {
		response.Error(c, err)
		return
	}

	h.recordChange(c, "settings.title_updated", "project title updated")
	response.Success(c, gin.H{"id": project.ID, "name": project.Name})
}

// UpdateDescription writes the details description
// PATCH /api/projects/:id/description
func (h *SettingsHandler) UpdateDescription(c *gin.Context) {
	var req services.UpdateDescriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	detail, err := h.settingsService.UpdateDescription(middleware.GetProjectID(c), &req)
	if err != nil {
		response.Error(c, err)
		return
	}

	h.recordChange(c, "settings.description_updated", "project description updated")
	response.Success(c, detail)
}

// UpdateStartDate writes the details start_date
// PATCH /api/projects/:id/start-date
func (h *SettingsHandler) UpdateStartDate(c *gin.Context) {
	var req services.UpdateStartDateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	detail, err := h.settingsService.UpdateStartDate(middleware.GetProjectID(c), &req)
	if err != nil {
		response.Error(c, err)
		return
	}

	h.recordChange(c, "settings.start_date_updated", "project start date updated")
	response.Success(c, detail)
}

// UpdateEndDate writes the details end_date
// PATCH /api/projects/:id/end-date
func (h *SettingsHandler) UpdateEndDate(c *gin.Context) {
	var req services.UpdateEndDateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	detail, err := h.settingsService.UpdateEndDate(middleware.GetProjectID(c), &req)
	if err != nil {
		response.Error(c, err)
		return
	}

	h.recordChange(c, "settings.end_date_updated", "project end date updated")
	response.Success(c, detail)
}

// UpdateStatus writes the details status
// PATCH /api/projects/:id/status
func (h *SettingsHandler) UpdateStatus(c *gin.Context) {
	var req services.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	detail, err := h.settingsService.UpdateStatus(middleware.GetProjectID(c), &req)
	if err != nil {
		response.Error(c, err)
		return
	}

	h.recordChange(c, "settings.status_updated", "project status set to "+req.Status)
	response.Success(c, detail)
}

// ConnectGithub sets the github_url
// PUT /api/projects/:id/github
func (h *SettingsHandler) ConnectGithub(c *gin.Context) {
	var req services.ConnectGithubRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	detail, err := h.settingsService.ConnectGithub(middleware.GetProjectID(c), &req)
	if err != nil {
		response.Error(c, err)
		return
	}

	h.recordChange(c, "settings.github_connected", "github repository connected")
	response.Success(c, detail)
}

// DisconnectGithub clears the github_url
// DELETE /api/projects/:id/github
func (h *SettingsHandler) DisconnectGithub(c *gin.Context) {
	detail, err := h.settingsService.DisconnectGithub(middleware.GetProjectID(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	h.recordChange(c, "settings.github_disconnected", "github repository disconnected")
	response.Success(c, detail)
}

func (h *SettingsHandler) recordChange(c *gin.Context, action, message string) {
	projectID := middleware.GetProjectID(c)
	userID := middleware.GetUserID(c)
	h.activity.Record(&services.ActivityTask{
		ProjectID: &projectID,
		Action:    action,
		Message:   message,
		UserID:    &userID,
		IP:        c.ClientIP(),
		UserAgent: c.Request.UserAgent(),
	})
}
