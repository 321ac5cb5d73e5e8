package service

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teamtrack/backend/internal/model"
)

func TestNotificationListAndMarkRead(t *testing.T) {
	db := newTestDB(t)
	svc := NewNotificationService(db)

	alice := createUser(t, db, "alice", "alice@example.com")
	bob := createUser(t, db, "bob", "bob@example.com")
	project := createProject(t, db, "Alpha", alice.ID, bob.ID)

	for i := 0; i < 25; i++ {
		require.NoError(t, db.Create(&model.Notification{
			UserID:    alice.ID,
			ProjectID: project.ID,
			Type:      model.NotifyTaskAssign,
			Message:   fmt.Sprintf("task %d", i),
		}).Error)
	}
	require.NoError(t, db.Create(&model.Notification{
		UserID:    bob.ID,
		ProjectID: project.ID,
		Type:      model.NotifyProjectInvite,
		Message:   "invite",
	}).Error)

	list, err := svc.ListForUser(alice.ID, 20)
	require.NoError(t, err)
	// Capped at 20 and scoped to the caller.
	assert.Len(t, list, 20)
	for _, n := range list {
		assert.Equal(t, alice.ID, n.UserID)
		assert.False(t, n.IsRead)
	}

	require.NoError(t, svc.MarkRead(list[0].ID, alice.ID))
	var got model.Notification
	require.NoError(t, db.First(&got, list[0].ID).Error)
	assert.True(t, got.IsRead)

	// Another user's notification is out of reach.
	err = svc.MarkRead(list[1].ID, bob.ID)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "40403:")
}
