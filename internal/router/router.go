package router

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/teamtrack/backend/internal/handler"
	"github.com/teamtrack/backend/internal/middleware"
)

type Deps struct {
	DB                  *gorm.DB
	JWTSecret           string
	UploadDir           string
	AuthHandler         *handler.AuthHandler
	UserHandler         *handler.UserHandler
	ProjectHandler      *handler.ProjectHandler
	TaskHandler         *handler.TaskHandler
	NotificationHandler *handler.NotificationHandler
	DashboardHandler    *handler.DashboardHandler
	ChatHandler         *handler.ChatHandler
	UploadHandler       *handler.UploadHandler
}

func Setup(r *gin.Engine, deps Deps) {
	r.Use(middleware.CORSMiddleware())

	// Uploaded files are served statically.
	r.Static("/uploads", deps.UploadDir)

	api := r.Group("/api")

	// Public routes (no auth)
	auth := api.Group("/auth")
	{
		auth.POST("/signup", deps.AuthHandler.Signup)
		auth.POST("/login", deps.AuthHandler.Login)
	}

	// Authenticated routes
	authed := api.Group("")
	authed.Use(middleware.AuthMiddleware(deps.JWTSecret, deps.DB))
	{
		authed.GET("/users/search", deps.UserHandler.SearchUsers)
		authed.GET("/profile", deps.UserHandler.GetProfile)
		authed.GET("/dashboard", deps.UserHandler.GetHome)

		authed.GET("/notifications", deps.NotificationHandler.List)
		authed.PUT("/notifications/:id/read", deps.NotificationHandler.MarkRead)

		authed.PUT("/tasks/:taskId", deps.TaskHandler.UpdateStatus)

		projects := authed.Group("/projects")
		{
			projects.POST("", deps.ProjectHandler.Create)
			projects.GET("/:id", deps.ProjectHandler.GetDetail)
			projects.DELETE("/:id", deps.ProjectHandler.Delete)

			projects.PUT("/:id/accept", deps.ProjectHandler.AcceptInvite)
			projects.PUT("/:id/reject", deps.ProjectHandler.RejectInvite)
			projects.POST("/:id/manager-setup", deps.ProjectHandler.ManagerSetup)
			projects.PUT("/:id/team/accept", deps.ProjectHandler.AcceptTeamInvite)
			projects.PUT("/:id/team/reject", deps.ProjectHandler.RejectTeamInvite)

			projects.GET("/:id/dashboard", deps.DashboardHandler.ProjectDashboard)
			projects.GET("/:id/members", deps.DashboardHandler.Members)
			projects.GET("/:id/members/:memberId/detail", deps.DashboardHandler.MemberDetail)

			projects.GET("/:id/chat", deps.ChatHandler.History)
			projects.POST("/:id/chat", deps.ChatHandler.Send)

			projects.POST("/:id/member/uploads", deps.UploadHandler.Upload)
			projects.GET("/:id/member/dashboard", deps.UploadHandler.MemberDashboard)
		}
	}
}
