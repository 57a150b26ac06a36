package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGroupMembersByDegree(t *testing.T) {
	db := setupTestDB(t)

	for _, m := range []MemberInput{
		{Name: "Amy", Degree: "PhD", Status: "current"},
		{Name: "Bo", Degree: "Master of Science", Status: "alumni"},
		{Name: "Cy", Degree: "Undergraduate", Status: "current"},
	} {
		_, err := CreateMember(db, m)
		require.NoError(t, err)
	}

	grouped, err := GroupMembersByDegree(db)
	require.NoError(t, err)

	// alumni status overrides degree
	require.Len(t, grouped.Alumni, 1)
	assert.Equal(t, "Bo", grouped.Alumni[0].Name)

	require.Len(t, grouped.PhD, 1)
	assert.Equal(t, "Amy", grouped.PhD[0].Name)

	// "Undergraduate" does not start with "bachelor"
	require.Len(t, grouped.Other, 1)
	assert.Equal(t, "Cy", grouped.Other[0].Name)

	assert.Empty(t, grouped.Masters)
	assert.Empty(t, grouped.Bachelors)
}

func TestGroupMembersPreservesNameOrder(t *testing.T) {
	db := setupTestDB(t)

	for _, name := range []string{"Zed", "Ada", "Mia"} {
		_, err := CreateMember(db, MemberInput{Name: name, Degree: "phd"})
		require.NoError(t, err)
	}

	grouped, err := GroupMembersByDegree(db)
	require.NoError(t, err)
	require.Len(t, grouped.PhD, 3)
	assert.Equal(t, "Ada", grouped.PhD[0].Name)
	assert.Equal(t, "Mia", grouped.PhD[1].Name)
	assert.Equal(t, "Zed", grouped.PhD[2].Name)
}

func TestClassifyMember(t *testing.T) {
	tests := []struct {
		status string
		degree string
		want   DegreeBucket
		ok     bool
	}{
		{"Alumni", "PhD", BucketAlumni, true},
		{"current", "alumni", BucketAlumni, true},
		{"current", "Ph.D", BucketPhD, true},
		{"current", "Doctor", BucketPhD, true},
		{"current", "Masters", BucketMasters, true},
		{"current", "Master of Engineering", BucketMasters, true},
		{"current", "Bachelor of Arts", BucketBachelors, true},
		{"current", "other", BucketOther, true},
		{"current", "Undergraduate", BucketOther, false},
		{"current", "", BucketOther, false},
	}
	for _, tt := range tests {
		got, ok := classifyMember(tt.status, tt.degree)
		assert.Equal(t, tt.want, got, "status=%q degree=%q", tt.status, tt.degree)
		assert.Equal(t, tt.ok, ok, "status=%q degree=%q", tt.status, tt.degree)
	}
}

func TestCreateMemberDefaultsStatus(t *testing.T) {
	db := setupTestDB(t)

	member, err := CreateMember(db, MemberInput{Name: "Dana", Degree: "phd"})
	require.NoError(t, err)
	assert.Equal(t, "current", member.Status)
}

func TestUpdateMemberPartial(t *testing.T) {
	db := setupTestDB(t)

	member, err := CreateMember(db, MemberInput{
		Name:   "Eli",
		Degree: "masters",
		Bio:    strPtr("first-year student"),
	})
	require.NoError(t, err)

	// empty patch leaves every field unchanged
	same, err := UpdateMember(db, member.ID, MemberUpdate{})
	require.NoError(t, err)
	require.NotNil(t, same)
	assert.Equal(t, "Eli", same.Name)
	assert.Equal(t, "masters", same.Degree)
	require.NotNil(t, same.Bio)
	assert.Equal(t, "first-year student", *same.Bio)

	updated, err := UpdateMember(db, member.ID, MemberUpdate{Status: strPtr("alumni")})
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, "alumni", updated.Status)
	assert.Equal(t, "Eli", updated.Name)
}

func TestUpdateMemberNotFound(t *testing.T) {
	db := setupTestDB(t)

	member, err := UpdateMember(db, "missing", MemberUpdate{Name: strPtr("x")})
	require.NoError(t, err)
	assert.Nil(t, member)
}

func TestDeleteMemberTwice(t *testing.T) {
	db := setupTestDB(t)

	member, err := CreateMember(db, MemberInput{Name: "Fay", Degree: "phd"})
	require.NoError(t, err)

	deleted, err := DeleteMember(db, member.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = DeleteMember(db, member.ID)
	require.NoError(t, err)
	assert.False(t, deleted)
}

func TestListMembersOrderedByName(t *testing.T) {
	db := setupTestDB(t)

	for _, name := range []string{"Cara", "Abe", "Ben"} {
		_, err := CreateMember(db, MemberInput{Name: name, Degree: "phd"})
		require.NoError(t, err)
	}

	members, err := ListMembers(db)
	require.NoError(t, err)
	require.Len(t, members, 3)
	assert.Equal(t, "Abe", members[0].Name)
	assert.Equal(t, "Ben", members[1].Name)
	assert.Equal(t, "Cara", members[2].Name)
}
