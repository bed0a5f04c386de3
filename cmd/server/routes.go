package main

import (
	"github.com/gin-gonic/gin"

	"github.com/AmanVarshney01/gla-project-tracker/internal/middleware"
	"github.com/AmanVarshney01/gla-project-tracker/internal/models"
	"github.com/AmanVarshney01/gla-project-tracker/pkg/logger"
)

// registerRoutes sets up all HTTP routes on the given Gin engine.
func registerRoutes(r *gin.Engine, svc *appServices) {
	// Middleware
	r.Use(middleware.RequestID())
	r.Use(logger.GinLogger(), logger.GinRecovery())
	r.RedirectTrailingSlash = false
	r.RedirectFixedPath = false
	r.Use(middleware.CORS())

	// Rate limiter for credential endpoints
	authLimiter := middleware.NewRateLimiter(5, 10)

	// Health check
	r.GET("/health", svc.healthHandler.CheckHealth)

	// API routes
	api := r.Group("/api")
	{
		// Auth routes (public, rate limited)
		auth := api.Group("/auth", authLimiter.Middleware())
		{
			auth.POST("/register", svc.authHandler.Register)
			auth.POST("/login", svc.authHandler.Login)
			auth.POST("/refresh", svc.authHandler.Refresh)
		}

		// Protected routes
		protected := api.Group("")
		protected.Use(middleware.AuthRequired())
		{
			// Auth
			protected.GET("/auth/me", svc.authHandler.GetCurrentUser)
			protected.POST("/auth/logout", svc.authHandler.Logout)

			// Dashboard
			protected.GET("/dashboard/stats", svc.dashboardHandler.GetStats)

			// Projects
			protected.GET("/projects", svc.projectHandler.List)
			protected.POST("/projects", svc.projectHandler.Create)

			// Project-scoped routes (membership checked per project)
			project := protected.Group("/projects/:id")
			project.Use(middleware.ProjectAccessRequired(models.GetDB()))
			{
				// Read for any member
				project.GET("", svc.projectHandler.GetOverview)
				project.GET("/members", svc.memberHandler.List)
				project.GET("/resources", svc.resourceHandler.List)
				project.GET("/activity", svc.activityHandler.List)

				// Write for owner or editor
				write := project.Group("")
				write.Use(middleware.ProjectWriteRequired())
				{
					write.PATCH("/title", svc.settingsHandler.UpdateTitle)
					write.PATCH("/description", svc.settingsHandler.UpdateDescription)
					write.PATCH("/start-date", svc.settingsHandler.UpdateStartDate)
					write.PATCH("/end-date", svc.settingsHandler.UpdateEndDate)
					write.PATCH("/status", svc.settingsHandler.UpdateStatus)
					write.PUT("/github", svc.settingsHandler.ConnectGithub)
					write.DELETE("/github", svc.settingsHandler.DisconnectGithub)

					write.POST("/resources", svc.resourceHandler.Create)
					write.PUT("/resources/:resourceID", svc.resourceHandler.Update)
					write.DELETE("/resources/:resourceID", svc.resourceHandler.Delete)
				}

				// Owner only
				owner := project.Group("")
				owner.Use(middleware.ProjectOwnerRequired())
				{
					owner.DELETE("", svc.projectHandler.Delete)
					owner.POST("/members", svc.memberHandler.Add)
					owner.PUT("/members/:memberID", svc.memberHandler.UpdateRole)
					owner.DELETE("/members/:memberID", svc.memberHandler.Remove)
				}
			}
		}
	}
}
