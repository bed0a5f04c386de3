package handlers

import (
	"strconv"

	"github.com/AmanVarshney01/gla-project-tracker/internal/middleware"
	"github.com/AmanVarshney01/gla-project-tracker/internal/services"
	"github.com/AmanVarshney01/gla-project-tracker/pkg/response"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type MemberHandler struct {
	memberService *services.MemberService
	activity      *services.ActivityService
}

func NewMemberHandler(db *gorm.DB, activity *services.ActivityService) *MemberHandler {
	return &MemberHandler{
		memberService: services.NewMemberService(db),
		activity:      activity,
	}
}

// List returns all members of a project
// GET /api/projects/:id/members
func (h *MemberHandler) List(c *gin.Context) {
	members, err := h.memberService.List(middleware.GetProjectID(c))
	if err != nil {
		response.ServerError(c, err.Error())
		return
	}

	response.Success(c, members)
}

// Add adds a registered user to the project by email
// POST /api/projects/:id/members
func (h *MemberHandler) Add(c *gin.Context) {
	var req services.AddMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	projectID := middleware.GetProjectID(c)
	member, err := h.memberService.Add(projectID, &req)
	if err != nil {
		response.Error(c, err)
		return
	}

	userID := middleware.GetUserID(c)
	h.activity.Record(&services.ActivityTask{
		ProjectID: &projectID,
		Action:    "member.added",
		Message:   member.MemberEmail + " joined as " + member.Role,
		UserID:    &userID,
		IP:        c.ClientIP(),
		UserAgent: c.Request.UserAgent(),
	})

	response.Created(c, member)
}

// UpdateRole changes a member's role
// PUT /api/projects/:id/members/:memberID
func (h *MemberHandler) UpdateRole(c *gin.Context) {
	memberID, err := strconv.ParseUint(c.Param("memberID"), 10, 32)
	if err != nil {
		response.BadRequest(c, "invalid member id")
		return
	}

	var req services.UpdateMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	member, err := h.memberService.UpdateRole(middleware.GetProjectID(c), uint(memberID), &req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, member)
}

// Remove removes a member from the project
// DELETE /api/projects/:id/members/:memberID
func (h *MemberHandler) Remove(c *gin.Context) {
	memberID, err := strconv.ParseUint(c.Param("memberID"), 10, 32)
	if err != nil {
		response.BadRequest(c, "invalid member id")
		return
	}

	projectID := middleware.GetProjectID(c)
	if err := h.memberService.Remove(projectID, uint(memberID)); err != nil {
		response.Error(c, err)
		return
	}

	userID := middleware.GetUserID(c)
	h.activity.Record(&services.ActivityTask{
		ProjectID: &projectID,
		Action:    "member.removed",
		Message:   "member removed from project",
		UserID:    &userID,
		IP:        c.ClientIP(),
		UserAgent: c.Request.UserAgent(),
	})

	response.Success(c, gin.H{"message": "member removed"})
}
