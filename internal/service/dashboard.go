package service

import (
	"fmt"
	"math"
	"time"

	"gorm.io/gorm"

	"github.com/teamtrack/backend/internal/model"
)

// DashboardService builds the read-only projections: the per-project
// dashboard, the roster, member detail, and the caller-centric profile and
// home views. Everything is recomputed in full on every call.
type DashboardService struct {
	db *gorm.DB
}

func NewDashboardService(db *gorm.DB) *DashboardService {
	return &DashboardService{db: db}
}

type ProjectSummary struct {
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Status      string     `json:"status"`
	StartDate   time.Time  `json:"start_date"`
	Deadline    *time.Time `json:"deadline"`
	LastUpdated time.Time  `json:"last_updated"`
}

type MemberProgress struct {
	ID              uint   `json:"id"`
	Name            string `json:"name"`
	Email           string `json:"email"`
	Role            Role   `json:"role"`
	TotalTasks      int    `json:"total_tasks"`
	DoneTasks       int    `json:"done_tasks"`
	OverdueTasks    int    `json:"overdue_tasks"`
	ProgressPercent int    `json:"progress_percent"`
}

type TaskSummary struct {
	ID         uint       `json:"id"`
	Title      string     `json:"title"`
	Status     string     `json:"status"`
	Deadline   *time.Time `json:"deadline"`
	LastUpdate time.Time  `json:"last_update"`
	AssigneeID uint       `json:"assignee_id"`
}

type DashboardStats struct {
	TotalTasks        int `json:"total_tasks"`
	CompletedTasks    int `json:"completed_tasks"`
	OverdueTasks      int `json:"overdue_tasks"`
	ActiveMembers     int `json:"active_members"`
	CompletionPercent int `json:"completion_percent"`
	AvgProgress       int `json:"avg_progress"`
}

type ProjectDashboard struct {
	Project ProjectSummary      `json:"project"`
	Stats   DashboardStats      `json:"stats"`
	Tasks   []TaskSummary       `json:"tasks"`
	Members []MemberProgress    `json:"members"`
	Chat    []model.ChatMessage `json:"chat"`
}

// ProjectDashboard joins project, tasks, users and the chat tail into the
// aggregated view. Any resolved role may read it; strangers get denied.
// Pending team members never appear, but tasks already assigned to them
// still count toward the project totals.
func (s *DashboardService) ProjectDashboard(projectID, userID uint) (*ProjectDashboard, error) {
	var project model.Project
	if err := s.db.First(&project, projectID).Error; err != nil {
		return nil, fmt.Errorf("40402:Project not found")
	}
	mem, err := projectMembership(s.db, &project, userID)
	if err != nil {
		return nil, err
	}
	if mem.None() {
		return nil, fmt.Errorf("40306:Access denied")
	}

	var tasks []model.Task
	if err := s.db.Where("project_id = ?", projectID).Find(&tasks).Error; err != nil {
		return nil, err
	}

	members, err := s.memberProgress(&project, tasks)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	completed, overdue := 0, 0
	taskList := make([]TaskSummary, 0, len(tasks))
	for _, t := range tasks {
		if t.Status == model.TaskDone {
			completed++
		}
		if t.Overdue(now) {
			overdue++
		}
		taskList = append(taskList, TaskSummary{
			ID:         t.ID,
			Title:      t.Title,
			Status:     t.Status,
			Deadline:   t.Deadline,
			LastUpdate: t.UpdatedAt,
			AssigneeID: t.AssignedTo,
		})
	}

	var chat []model.ChatMessage
	if err := s.db.Preload("Sender").Where("project_id = ?", projectID).
		Order("created_at asc").Limit(50).Find(&chat).Error; err != nil {
		return nil, err
	}

	return &ProjectDashboard{
		Project: ProjectSummary{
			Title:       project.Title,
			Description: project.Description,
			Status:      project.Status,
			StartDate:   project.CreatedAt,
			Deadline:    project.Deadline,
			LastUpdated: project.UpdatedAt,
		},
		Stats: DashboardStats{
			TotalTasks:        len(tasks),
			CompletedTasks:    completed,
			OverdueTasks:      overdue,
			ActiveMembers:     len(members),
			CompletionPercent: percent(completed, len(tasks)),
			AvgProgress:       averageProgress(members),
		},
		Tasks:   taskList,
		Members: members,
		Chat:    chat,
	}, nil
}

// Roster lists the owner, the manager and the accepted team members with
// their task progress.
func (s *DashboardService) Roster(projectID uint) ([]MemberProgress, error) {
	var project model.Project
	if err := s.db.First(&project, projectID).Error; err != nil {
		return nil, fmt.Errorf("40402:Project not found")
	}
	var tasks []model.Task
	if err := s.db.Where("project_id = ?", projectID).Find(&tasks).Error; err != nil {
		return nil, err
	}
	return s.memberProgress(&project, tasks)
}

// memberProgress builds the member list: owner and manager first with a
// fixed 100% bar, then the accepted team members with real task counts.
func (s *DashboardService) memberProgress(project *model.Project, tasks []model.Task) ([]MemberProgress, error) {
	members := make([]MemberProgress, 0)

	appendUser := func(id uint, role Role) {
		var user model.User
		if err := s.db.First(&user, id).Error; err != nil {
			return
		}
		members = append(members, MemberProgress{
			ID:              user.ID,
			Name:            user.Name,
			Email:           user.Email,
			Role:            role,
			ProgressPercent: 100,
		})
	}
	appendUser(project.OwnerID, RoleOwner)
	if project.ManagerID != project.OwnerID {
		appendUser(project.ManagerID, RoleManager)
	}

	var team []model.ProjectMember
	if err := s.db.Preload("User").
		Where("project_id = ? AND status = ?", project.ID, model.InviteAccepted).
		Find(&team).Error; err != nil {
		return nil, err
	}

	now := time.Now()
	for _, m := range team {
		if m.User == nil {
			continue
		}
		total, done, overdue := 0, 0, 0
		for _, t := range tasks {
			if t.AssignedTo != m.UserID {
				continue
			}
			total++
			if t.Status == model.TaskDone {
				done++
			}
			if t.Overdue(now) {
				overdue++
			}
		}
		members = append(members, MemberProgress{
			ID:              m.User.ID,
			Name:            m.User.Name,
			Email:           m.User.Email,
			Role:            Role(m.Role),
			TotalTasks:      total,
			DoneTasks:       done,
			OverdueTasks:    overdue,
			ProgressPercent: percent(done, total),
		})
	}
	return members, nil
}

type MemberDetail struct {
	Uploads []MemberUploadView `json:"uploads"`
	Tasks   []TaskSummary      `json:"tasks"`
}

type MemberUploadView struct {
	FileName    string    `json:"file_name"`
	SprintLabel string    `json:"sprint_label,omitempty"`
	Note        string    `json:"note,omitempty"`
	UploadedAt  time.Time `json:"uploaded_at"`
	URL         string    `json:"url"`
}

// MemberDetail is the owner/manager inspection view of one member: their
// uploads and their tasks. urlFor maps a stored path to a client URL.
func (s *DashboardService) MemberDetail(projectID, memberID, userID uint, urlFor func(string) string) (*MemberDetail, error) {
	var project model.Project
	if err := s.db.First(&project, projectID).Error; err != nil {
		return nil, fmt.Errorf("40402:Project not found")
	}
	mem, err := projectMembership(s.db, &project, userID)
	if err != nil {
		return nil, err
	}
	if !mem.CanInspectMembers() {
		return nil, fmt.Errorf("40307:Only owner or manager allowed")
	}

	var uploads []model.MemberUpload
	if err := s.db.Where("project_id = ? AND member_id = ?", projectID, memberID).
		Order("created_at desc").Find(&uploads).Error; err != nil {
		return nil, err
	}
	var tasks []model.Task
	if err := s.db.Where("project_id = ? AND assigned_to = ?", projectID, memberID).
		Find(&tasks).Error; err != nil {
		return nil, err
	}

	detail := &MemberDetail{
		Uploads: make([]MemberUploadView, 0, len(uploads)),
		Tasks:   make([]TaskSummary, 0, len(tasks)),
	}
	for _, u := range uploads {
		detail.Uploads = append(detail.Uploads, MemberUploadView{
			FileName:    u.FileName,
			SprintLabel: u.SprintLabel,
			Note:        u.Note,
			UploadedAt:  u.CreatedAt,
			URL:         urlFor(u.FilePath),
		})
	}
	for _, t := range tasks {
		detail.Tasks = append(detail.Tasks, TaskSummary{
			ID:         t.ID,
			Title:      t.Title,
			Status:     t.Status,
			Deadline:   t.Deadline,
			LastUpdate: t.UpdatedAt,
			AssigneeID: t.AssignedTo,
		})
	}
	return detail, nil
}

type Profile struct {
	Name           string        `json:"name"`
	Email          string        `json:"email"`
	Phone          string        `json:"phone"`
	Role           string        `json:"role"`
	MemberSince    time.Time     `json:"member_since"`
	TasksCompleted int           `json:"tasks_completed"`
	TotalTasks     int           `json:"total_tasks"`
	HoursLogged    int           `json:"hours_logged"`
	RecentActivity []ActivityRow `json:"recent_activity"`
}

type ActivityRow struct {
	Label string    `json:"label"`
	Time  time.Time `json:"time"`
	Meta  string    `json:"meta"`
}

// Profile summarizes the caller across all their projects. The role label is
// a coarse guess: Owner beats Manager beats Team Member.
func (s *DashboardService) Profile(userID uint) (*Profile, error) {
	var user model.User
	if err := s.db.First(&user, userID).Error; err != nil {
		return nil, fmt.Errorf("40401:User not found")
	}

	projects, err := s.projectsInvolving(userID)
	if err != nil {
		return nil, err
	}

	var tasks []model.Task
	if err := s.db.Where("assigned_to = ?", userID).
		Order("updated_at desc").Find(&tasks).Error; err != nil {
		return nil, err
	}

	completed := 0
	for _, t := range tasks {
		if t.Status == model.TaskDone {
			completed++
		}
	}

	role := "Team Member"
	for _, p := range projects {
		if p.OwnerID == userID {
			role = "Owner"
			break
		}
		if p.ManagerID == userID {
			role = "Manager"
		}
	}

	recent := make([]ActivityRow, 0, 5)
	for _, t := range tasks {
		if len(recent) == 5 {
			break
		}
		recent = append(recent, ActivityRow{
			Label: fmt.Sprintf("Task %q marked as %s", t.Title, t.Status),
			Time:  t.UpdatedAt,
			Meta:  "Task update",
		})
	}

	return &Profile{
		Name:           user.Name,
		Email:          user.Email,
		Phone:          user.Phone,
		Role:           role,
		MemberSince:    user.CreatedAt,
		TasksCompleted: completed,
		TotalTasks:     len(tasks),
		HoursLogged:    completed * 2,
		RecentActivity: recent,
	}, nil
}

type HomeSummary struct {
	ActiveProjects    int `json:"active_projects"`
	MyTasks           int `json:"my_tasks"`
	UpcomingDeadlines int `json:"upcoming_deadlines"`
}

type ProjectCard struct {
	ID          uint   `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Role        string `json:"role"`
}

type Home struct {
	User          model.UserBrief      `json:"user"`
	Summary       HomeSummary          `json:"summary"`
	Projects      []ProjectCard        `json:"projects"`
	Notifications []model.Notification `json:"notifications"`
}

// Home is the landing view: the caller's projects, task summary and the
// latest notifications.
func (s *DashboardService) Home(userID uint) (*Home, error) {
	var user model.User
	if err := s.db.First(&user, userID).Error; err != nil {
		return nil, fmt.Errorf("40401:User not found")
	}

	projects, err := s.projectsInvolving(userID)
	if err != nil {
		return nil, err
	}

	var tasks []model.Task
	if err := s.db.Where("assigned_to = ?", userID).Find(&tasks).Error; err != nil {
		return nil, err
	}

	now := time.Now()
	active, upcoming := 0, 0
	for _, p := range projects {
		if p.Status == model.ProjectActive {
			active++
		}
	}
	for _, t := range tasks {
		if t.Deadline != nil && !t.Deadline.Before(now) && t.Status != model.TaskDone {
			upcoming++
		}
	}

	cards := make([]ProjectCard, 0, len(projects))
	for _, p := range projects {
		role := "MEMBER"
		switch userID {
		case p.OwnerID:
			role = string(RoleOwner)
		case p.ManagerID:
			role = string(RoleManager)
		}
		cards = append(cards, ProjectCard{
			ID:          p.ID,
			Title:       p.Title,
			Description: p.Description,
			Role:        role,
		})
	}

	var notifications []model.Notification
	if err := s.db.Where("user_id = ?", userID).
		Order("created_at desc").Limit(20).Find(&notifications).Error; err != nil {
		return nil, err
	}

	return &Home{
		User:          user.Brief(),
		Summary:       HomeSummary{ActiveProjects: active, MyTasks: len(tasks), UpcomingDeadlines: upcoming},
		Projects:      cards,
		Notifications: notifications,
	}, nil
}

// projectsInvolving returns projects where the user is owner, manager, or a
// live team member.
func (s *DashboardService) projectsInvolving(userID uint) ([]model.Project, error) {
	var projects []model.Project
	err := s.db.Where(
		"owner_id = ? OR manager_id = ? OR id IN (SELECT project_id FROM project_members WHERE user_id = ? AND status IN ?)",
		userID, userID, userID, []string{model.InvitePending, model.InviteAccepted},
	).Order("updated_at desc").Find(&projects).Error
	return projects, err
}

func percent(part, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(part) / float64(total) * 100))
}

func averageProgress(members []MemberProgress) int {
	if len(members) == 0 {
		return 0
	}
	sum := 0
	for _, m := range members {
		sum += m.ProgressPercent
	}
	return int(math.Round(float64(sum) / float64(len(members))))
}
