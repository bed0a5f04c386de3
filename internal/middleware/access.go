package middleware

import (
	"errors"
	"strconv"

	"github.com/AmanVarshney01/gla-project-tracker/internal/models"
	"github.com/AmanVarshney01/gla-project-tracker/pkg/response"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const (
	ContextProjectID   = "project_id"
	ContextProjectRole = "project_role"
)

// ProjectAccessRequired resolves the :id route parameter to an existing
// project and verifies the requester is its owner or a member. The project
// id and the requester's role are stored in the context for handlers.
// Must run after AuthRequired.
func ProjectAccessRequired(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		projectID, err := strconv.ParseUint(c.Param("id"), 10, 32)
		if err != nil {
			response.BadRequest(c, "invalid project id")
			c.Abort()
			return
		}

		var project models.Project
		if err := db.First(&project, projectID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				response.NotFound(c, "project not found")
			} else {
				response.ServerError(c, err.Error())
			}
			c.Abort()
			return
		}

		userID := GetUserID(c)
		role := ""
		if project.CreatedBy == userID {
			role = models.RoleOwner
		} else {
			var member models.ProjectMember
			err := db.Where("project_id = ? AND user_id = ?", project.ID, userID).
				First(&member).Error
			if err != nil {
				response.Forbidden(c, "not a member of this project")
				c.Abort()
				return
			}
			role = member.Role
		}

		c.Set(ContextProjectID, project.ID)
		c.Set(ContextProjectRole, role)
		c.Next()
	}
}

// ProjectWriteRequired rejects requesters whose project role is read-only.
// Must run after ProjectAccessRequired.
func ProjectWriteRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		role := GetProjectRole(c)
		if role != models.RoleOwner && role != models.RoleEditor {
			response.Forbidden(c, "write access required")
			c.Abort()
			return
		}
		c.Next()
	}
}

// ProjectOwnerRequired restricts a route to the project owner.
// Must run after ProjectAccessRequired.
func ProjectOwnerRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		if GetProjectRole(c) != models.RoleOwner {
			response.Forbidden(c, "owner access required")
			c.Abort()
			return
		}
		c.Next()
	}
}

// GetProjectID gets the resolved project ID from context.
func GetProjectID(c *gin.Context) uint {
	if id, exists := c.Get(ContextProjectID); exists {
		return id.(uint)
	}
	return 0
}

// GetProjectRole gets the requester's role in the resolved project.
func GetProjectRole(c *gin.Context) string {
	if role, exists := c.Get(ContextProjectRole); exists {
		return role.(string)
	}
	return ""
}
