package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateUserStartsUnapproved(t *testing.T) {
	db := setupTestDB(t)

	user, err := CreateUser(db, "alice@example.edu", "Alice", "Kim", "hash")
	require.NoError(t, err)
	require.NotEmpty(t, user.ID)
	assert.False(t, user.IsApproved)
	assert.False(t, user.IsAdmin)
}

func TestFindUserByEmailExactMatch(t *testing.T) {
	db := setupTestDB(t)

	_, err := CreateUser(db, "alice@example.edu", "Alice", "Kim", "hash")
	require.NoError(t, err)

	found, err := FindUserByEmail(db, "alice@example.edu")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "Alice", found.FirstName)

	// no case folding
	missing, err := FindUserByEmail(db, "Alice@example.edu")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestApproveUser(t *testing.T) {
	db := setupTestDB(t)

	user, err := CreateUser(db, "bob@example.edu", "Bob", "Lee", "hash")
	require.NoError(t, err)

	approved, err := ApproveUser(db, user.ID)
	require.NoError(t, err)
	require.NotNil(t, approved)
	assert.True(t, approved.IsApproved)

	pending, err := ListPendingUsers(db)
	require.NoError(t, err)
	assert.Empty(t, pending)
}

func TestApproveUserNotFound(t *testing.T) {
	db := setupTestDB(t)

	approved, err := ApproveUser(db, "missing")
	require.NoError(t, err)
	assert.Nil(t, approved)
}

func TestListPendingUsers(t *testing.T) {
	db := setupTestDB(t)

	a, err := CreateUser(db, "a@example.edu", "A", "A", "hash")
	require.NoError(t, err)
	_, err = CreateUser(db, "b@example.edu", "B", "B", "hash")
	require.NoError(t, err)

	_, err = ApproveUser(db, a.ID)
	require.NoError(t, err)

	pending, err := ListPendingUsers(db)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, "b@example.edu", pending[0].Email)
}
