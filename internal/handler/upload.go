package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/teamtrack/backend/internal/middleware"
	"github.com/teamtrack/backend/internal/service"
	"github.com/teamtrack/backend/internal/storage"
)

type UploadHandler struct {
	uploadService  *service.UploadService
	projectService *service.ProjectService
	baseURL        string
}

func NewUploadHandler(uploadService *service.UploadService, projectService *service.ProjectService, baseURL string) *UploadHandler {
	return &UploadHandler{uploadService: uploadService, projectService: projectService, baseURL: baseURL}
}

// POST /api/projects/:id/member/uploads
// Multipart: file, optional sprintLabel and note.
func (h *UploadHandler) Upload(c *gin.Context) {
	fh, err := c.FormFile("file")
	if err != nil {
		BadRequest(c, 40006, "No file uploaded")
		return
	}

	userID := middleware.GetCurrentUserID(c)
	upload, err := h.uploadService.Save(parseID(c.Param("id")), userID,
		fh, c.PostForm("sprintLabel"), c.PostForm("note"))
	if err != nil {
		ServiceError(c, err)
		return
	}
	Success(c, gin.H{
		"message":   "Upload successful",
		"upload_id": upload.ID,
		"url":       storage.FileURL(h.baseURL, upload.FilePath),
	})
}

// GET /api/projects/:id/member/dashboard
// The caller's own upload view for one project.
func (h *UploadHandler) MemberDashboard(c *gin.Context) {
	projectID := parseID(c.Param("id"))
	project, err := h.projectService.GetByID(projectID)
	if err != nil {
		ServiceError(c, err)
		return
	}

	userID := middleware.GetCurrentUserID(c)
	uploads, err := h.uploadService.ListForMember(projectID, userID)
	if err != nil {
		InternalError(c, err.Error())
		return
	}

	list := make([]gin.H, 0, len(uploads))
	for _, u := range uploads {
		list = append(list, gin.H{
			"id":           u.ID,
			"file_name":    u.FileName,
			"sprint_label": u.SprintLabel,
			"note":         u.Note,
			"created_at":   u.CreatedAt,
			"url":          storage.FileURL(h.baseURL, u.FilePath),
		})
	}
	Success(c, gin.H{
		"project": gin.H{
			"title":       project.Title,
			"description": project.Description,
		},
		"uploads": list,
	})
}
