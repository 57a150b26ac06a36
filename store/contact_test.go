package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContactMessageLifecycle(t *testing.T) {
	db := setupTestDB(t)

	msg, err := CreateContactMessage(db, ContactMessageInput{
		Name:    "Visitor",
		Email:   "visitor@example.com",
		Subject: "Opening",
		Message: "Are you hiring PhD students?",
	})
	require.NoError(t, err)
	require.NotEmpty(t, msg.ID)

	msgs, err := ListContactMessages(db)
	require.NoError(t, err)
	require.Len(t, msgs, 1)
	assert.Equal(t, "Opening", msgs[0].Subject)

	deleted, err := DeleteContactMessage(db, msg.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = DeleteContactMessage(db, msg.ID)
	require.NoError(t, err)
	assert.False(t, deleted)
}
