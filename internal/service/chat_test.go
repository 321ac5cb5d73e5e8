package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teamtrack/backend/internal/model"
)

func TestChatSendAndHistory(t *testing.T) {
	db := newTestDB(t)
	svc := NewChatService(db)

	owner := createUser(t, db, "alice", "alice@example.com")
	manager := createUser(t, db, "bob", "bob@example.com")
	carol := createUser(t, db, "carol", "carol@example.com")
	stranger := createUser(t, db, "eve", "eve@example.com")

	project := createProject(t, db, "Alpha", owner.ID, manager.ID)
	addMember(t, db, project.ID, carol.ID, model.RoleTeamMember, model.InviteAccepted)

	_, err := svc.Send(project.ID, stranger.ID, "let me in")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "40305:")

	_, err = svc.History(project.ID, stranger.ID)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "40305:")

	_, err = svc.Send(project.ID, carol.ID, "   ")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "40004:")

	first, err := svc.Send(project.ID, carol.ID, "standup at 10")
	require.NoError(t, err)
	require.NotNil(t, first.Sender)
	assert.Equal(t, "carol", first.Sender.Name)

	_, err = svc.Send(project.ID, manager.ID, "ack")
	require.NoError(t, err)

	history, err := svc.History(project.ID, owner.ID)
	require.NoError(t, err)
	require.Len(t, history, 2)
	// Oldest first.
	assert.Equal(t, "standup at 10", history[0].Message)
	assert.Equal(t, "ack", history[1].Message)
}

func TestChatProjectNotFound(t *testing.T) {
	db := newTestDB(t)
	svc := NewChatService(db)
	user := createUser(t, db, "alice", "alice@example.com")

	_, err := svc.History(404, user.ID)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "40402:")
}
