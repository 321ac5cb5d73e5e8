package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/teamtrack/backend/internal/middleware"
	"github.com/teamtrack/backend/internal/service"
)

type UserHandler struct {
	authService      *service.AuthService
	dashboardService *service.DashboardService
}

func NewUserHandler(authService *service.AuthService, dashboardService *service.DashboardService) *UserHandler {
	return &UserHandler{authService: authService, dashboardService: dashboardService}
}

// GET /api/users/search
func (h *UserHandler) SearchUsers(c *gin.Context) {
	query := c.Query("query")
	users, err := h.authService.SearchUsers(query)
	if err != nil {
		InternalError(c, err.Error())
		return
	}
	Success(c, users)
}

// GET /api/profile
func (h *UserHandler) GetProfile(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)
	profile, err := h.dashboardService.Profile(userID)
	if err != nil {
		ServiceError(c, err)
		return
	}
	Success(c, profile)
}

// GET /api/dashboard
func (h *UserHandler) GetHome(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)
	home, err := h.dashboardService.Home(userID)
	if err != nil {
		ServiceError(c, err)
		return
	}
	Success(c, home)
}
