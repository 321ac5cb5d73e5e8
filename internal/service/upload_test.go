package service

import (
	"bytes"
	"mime/multipart"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teamtrack/backend/internal/model"
	"github.com/teamtrack/backend/internal/storage"
)

func fileHeader(t *testing.T, name, content string) *multipart.FileHeader {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, err := w.CreateFormFile("file", name)
	require.NoError(t, err)
	_, err = part.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	form, err := multipart.NewReader(&buf, w.Boundary()).ReadForm(1 << 20)
	require.NoError(t, err)
	return form.File["file"][0]
}

func TestUploadSave(t *testing.T) {
	db := newTestDB(t)
	store, err := storage.NewDiskStore(t.TempDir())
	require.NoError(t, err)
	svc := NewUploadService(db, store)

	owner := createUser(t, db, "alice", "alice@example.com")
	manager := createUser(t, db, "bob", "bob@example.com")
	carol := createUser(t, db, "carol", "carol@example.com")
	stranger := createUser(t, db, "dave", "dave@example.com")
	project := createProject(t, db, "apollo", owner.ID, manager.ID)
	addMember(t, db, project.ID, carol.ID, model.RoleTeamMember, model.InviteAccepted)

	upload, err := svc.Save(project.ID, carol.ID, fileHeader(t, "report.py", "print('done')"), "Sprint 1", "weekly report")
	require.NoError(t, err)
	assert.Equal(t, "report.py", upload.FileName)
	assert.Equal(t, "Sprint 1", upload.SprintLabel)

	data, err := os.ReadFile(upload.FilePath)
	require.NoError(t, err)
	assert.Equal(t, "print('done')", string(data))

	_, err = svc.Save(project.ID, stranger.ID, fileHeader(t, "report.py", "x"), "Sprint 1", "")
	require.EqualError(t, err, "40305:Not a project member")

	_, err = svc.Save(project.ID, carol.ID, fileHeader(t, "virus.exe", "x"), "Sprint 1", "")
	require.EqualError(t, err, "40005:File type not allowed")

	_, err = svc.Save(project.ID+99, carol.ID, fileHeader(t, "report.py", "x"), "Sprint 1", "")
	require.EqualError(t, err, "40402:Project not found")
}

func TestUploadListForMember(t *testing.T) {
	db := newTestDB(t)
	store, err := storage.NewDiskStore(t.TempDir())
	require.NoError(t, err)
	svc := NewUploadService(db, store)

	owner := createUser(t, db, "alice", "alice@example.com")
	manager := createUser(t, db, "bob", "bob@example.com")
	carol := createUser(t, db, "carol", "carol@example.com")
	project := createProject(t, db, "apollo", owner.ID, manager.ID)
	addMember(t, db, project.ID, carol.ID, model.RoleTeamMember, model.InviteAccepted)

	for _, name := range []string{"a.txt", "b.txt"} {
		_, err := svc.Save(project.ID, carol.ID, fileHeader(t, name, "x"), "Sprint 1", "")
		require.NoError(t, err)
	}
	require.NoError(t, db.Create(&model.MemberUpload{
		ProjectID: project.ID, MemberID: manager.ID, FileName: "other.txt", FilePath: "other",
	}).Error)

	uploads, err := svc.ListForMember(project.ID, carol.ID)
	require.NoError(t, err)
	require.Len(t, uploads, 2)
	for _, u := range uploads {
		assert.Equal(t, carol.ID, u.MemberID)
	}
}
