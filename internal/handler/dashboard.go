package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/teamtrack/backend/internal/middleware"
	"github.com/teamtrack/backend/internal/service"
	"github.com/teamtrack/backend/internal/storage"
)

type DashboardHandler struct {
	dashboardService *service.DashboardService
	baseURL          string
}

func NewDashboardHandler(dashboardService *service.DashboardService, baseURL string) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService, baseURL: baseURL}
}

// GET /api/projects/:id/dashboard
func (h *DashboardHandler) ProjectDashboard(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)
	dash, err := h.dashboardService.ProjectDashboard(parseID(c.Param("id")), userID)
	if err != nil {
		ServiceError(c, err)
		return
	}
	Success(c, dash)
}

// GET /api/projects/:id/members
func (h *DashboardHandler) Members(c *gin.Context) {
	members, err := h.dashboardService.Roster(parseID(c.Param("id")))
	if err != nil {
		ServiceError(c, err)
		return
	}
	Success(c, members)
}

// GET /api/projects/:id/members/:memberId/detail
func (h *DashboardHandler) MemberDetail(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)
	detail, err := h.dashboardService.MemberDetail(
		parseID(c.Param("id")), parseID(c.Param("memberId")), userID,
		func(path string) string { return storage.FileURL(h.baseURL, path) },
	)
	if err != nil {
		ServiceError(c, err)
		return
	}
	Success(c, detail)
}
