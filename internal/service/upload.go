package service

import (
	"fmt"
	"mime/multipart"

	"gorm.io/gorm"

	"github.com/teamtrack/backend/internal/model"
	"github.com/teamtrack/backend/internal/storage"
)

type UploadService struct {
	db    *gorm.DB
	store *storage.DiskStore
}

func NewUploadService(db *gorm.DB, store *storage.DiskStore) *UploadService {
	return &UploadService{db: db, store: store}
}

// Save stores the sprint artifact on disk and records it in the ledger.
// Members may only upload into projects they belong to.
func (s *UploadService) Save(projectID, memberID uint, fh *multipart.FileHeader, sprintLabel, note string) (*model.MemberUpload, error) {
	var project model.Project
	if err := s.db.First(&project, projectID).Error; err != nil {
		return nil, fmt.Errorf("40402:Project not found")
	}
	mem, err := projectMembership(s.db, &project, memberID)
	if err != nil {
		return nil, err
	}
	if mem.None() {
		return nil, fmt.Errorf("40305:Not a project member")
	}

	path, err := s.store.Save(fh)
	if err != nil {
		return nil, err
	}

	upload := &model.MemberUpload{
		ProjectID:   projectID,
		MemberID:    memberID,
		FileName:    fh.Filename,
		FilePath:    path,
		SprintLabel: sprintLabel,
		Note:        note,
	}
	if err := s.db.Create(upload).Error; err != nil {
		return nil, err
	}
	return upload, nil
}

// ListForMember returns one member's uploads in a project, newest first.
// Plain members see only their own; the member-detail endpoint reuses this
// for owner/manager inspection.
func (s *UploadService) ListForMember(projectID, memberID uint) ([]model.MemberUpload, error) {
	var uploads []model.MemberUpload
	err := s.db.Where("project_id = ? AND member_id = ?", projectID, memberID).
		Order("created_at desc").Find(&uploads).Error
	return uploads, err
}
