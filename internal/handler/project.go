package handler

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/teamtrack/backend/internal/middleware"
	"github.com/teamtrack/backend/internal/service"
	"github.com/teamtrack/backend/internal/storage"
)

type ProjectHandler struct {
	projectService *service.ProjectService
	store          *storage.DiskStore
	baseURL        string
}

func NewProjectHandler(projectService *service.ProjectService, store *storage.DiskStore, baseURL string) *ProjectHandler {
	return &ProjectHandler{projectService: projectService, store: store, baseURL: baseURL}
}

// POST /api/projects
// Multipart: title, description, managerEmail, optional requirementFile.
func (h *ProjectHandler) Create(c *gin.Context) {
	title := c.PostForm("title")
	description := c.PostForm("description")
	managerEmail := c.PostForm("managerEmail")
	if title == "" || managerEmail == "" {
		BadRequest(c, 40001, "title and managerEmail are required")
		return
	}

	var requirementFile string
	if fh, err := c.FormFile("requirementFile"); err == nil {
		path, err := h.store.Save(fh)
		if err != nil {
			ServiceError(c, err)
			return
		}
		requirementFile = path
	}

	ownerID := middleware.GetCurrentUserID(c)
	project, err := h.projectService.Create(ownerID, title, description, managerEmail, requirementFile)
	if err != nil {
		ServiceError(c, err)
		return
	}
	Success(c, gin.H{
		"message":    "Project created and manager invited",
		"project_id": project.ID,
	})
}

// GET /api/projects/:id
func (h *ProjectHandler) GetDetail(c *gin.Context) {
	project, err := h.projectService.GetByID(parseID(c.Param("id")))
	if err != nil {
		ServiceError(c, err)
		return
	}

	data := gin.H{
		"id":                   project.ID,
		"title":                project.Title,
		"description":          project.Description,
		"status":               project.Status,
		"manager_status":       project.ManagerStatus,
		"deadline":             project.Deadline,
		"created_at":           project.CreatedAt,
		"requirement_file_url": nil,
	}
	if project.RequirementFile != "" {
		data["requirement_file_url"] = storage.FileURL(h.baseURL, project.RequirementFile)
	}
	if project.Owner != nil {
		data["owner"] = project.Owner.Brief()
	}
	if project.Manager != nil {
		data["manager"] = project.Manager.Brief()
	}
	Success(c, data)
}

// PUT /api/projects/:id/accept
func (h *ProjectHandler) AcceptInvite(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)
	if err := h.projectService.AcceptManagerInvite(parseID(c.Param("id")), userID); err != nil {
		ServiceError(c, err)
		return
	}
	Success(c, gin.H{"message": "Project accepted"})
}

// PUT /api/projects/:id/reject
func (h *ProjectHandler) RejectInvite(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)
	if err := h.projectService.DeclineManagerInvite(parseID(c.Param("id")), userID); err != nil {
		ServiceError(c, err)
		return
	}
	Success(c, gin.H{"message": "Project rejected"})
}

// DELETE /api/projects/:id
func (h *ProjectHandler) Delete(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)
	if err := h.projectService.Delete(parseID(c.Param("id")), userID); err != nil {
		ServiceError(c, err)
		return
	}
	Success(c, gin.H{"message": "Project deleted"})
}

// POST /api/projects/:id/manager-setup
func (h *ProjectHandler) ManagerSetup(c *gin.Context) {
	var req struct {
		ProjectDeadline *time.Time `json:"project_deadline"`
		TeamMembers     []struct {
			Email string `json:"email" binding:"required,email"`
			Role  string `json:"role" binding:"required,oneof=SCRUM_MASTER TEAM_MEMBER"`
		} `json:"team_members" binding:"required"`
		Tasks []struct {
			Title         string     `json:"title" binding:"required"`
			Description   string     `json:"description"`
			AssigneeEmail string     `json:"assignee_email" binding:"required,email"`
			Deadline      *time.Time `json:"deadline"`
		} `json:"tasks"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, 40001, "Invalid request: "+err.Error())
		return
	}

	members := make([]service.SetupMember, 0, len(req.TeamMembers))
	for _, m := range req.TeamMembers {
		members = append(members, service.SetupMember{Email: m.Email, Role: m.Role})
	}
	tasks := make([]service.SetupTask, 0, len(req.Tasks))
	for _, t := range req.Tasks {
		tasks = append(tasks, service.SetupTask{
			Title:         t.Title,
			Description:   t.Description,
			AssigneeEmail: t.AssigneeEmail,
			Deadline:      t.Deadline,
		})
	}

	userID := middleware.GetCurrentUserID(c)
	if err := h.projectService.ManagerSetup(parseID(c.Param("id")), userID, req.ProjectDeadline, members, tasks); err != nil {
		ServiceError(c, err)
		return
	}
	Success(c, gin.H{"message": "Manager setup completed"})
}

// PUT /api/projects/:id/team/accept
func (h *ProjectHandler) AcceptTeamInvite(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)
	if err := h.projectService.AcceptTeamInvite(parseID(c.Param("id")), userID); err != nil {
		ServiceError(c, err)
		return
	}
	Success(c, gin.H{"message": "Team invite accepted"})
}

// PUT /api/projects/:id/team/reject
func (h *ProjectHandler) RejectTeamInvite(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)
	if err := h.projectService.DeclineTeamInvite(parseID(c.Param("id")), userID); err != nil {
		ServiceError(c, err)
		return
	}
	Success(c, gin.H{"message": "Team invite rejected"})
}
