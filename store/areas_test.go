package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListResearchAreasOrdered(t *testing.T) {
	db := setupTestDB(t)

	for _, a := range []struct {
		name  string
		order int
	}{
		{"second", 2}, {"first", 1}, {"third", 3},
	} {
		_, err := CreateResearchArea(db, ResearchAreaInput{Name: a.name, Order: intPtr(a.order)})
		require.NoError(t, err)
	}

	areas, err := ListResearchAreas(db)
	require.NoError(t, err)
	require.Len(t, areas, 3)
	assert.Equal(t, "first", areas[0].Name)
	assert.Equal(t, "third", areas[2].Name)
}

func TestListResearchAreasByParent(t *testing.T) {
	db := setupTestDB(t)

	root, err := CreateResearchArea(db, ResearchAreaInput{Name: "Machine Learning"})
	require.NoError(t, err)
	_, err = CreateResearchArea(db, ResearchAreaInput{Name: "Robotics"})
	require.NoError(t, err)
	child, err := CreateResearchArea(db, ResearchAreaInput{Name: "Generative Models", ParentID: &root.ID})
	require.NoError(t, err)

	roots, err := ListResearchAreasByParent(db, nil)
	require.NoError(t, err)
	require.Len(t, roots, 2)

	children, err := ListResearchAreasByParent(db, &root.ID)
	require.NoError(t, err)
	require.Len(t, children, 1)
	assert.Equal(t, child.ID, children[0].ID)

	none, err := ListResearchAreasByParent(db, &child.ID)
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestCreateResearchAreaDefaults(t *testing.T) {
	db := setupTestDB(t)

	area, err := CreateResearchArea(db, ResearchAreaInput{Name: "NLP"})
	require.NoError(t, err)
	assert.True(t, area.IsActive)
	assert.Zero(t, area.Order)
	assert.Nil(t, area.ParentID)
}

func TestFindResearchAreaByID(t *testing.T) {
	db := setupTestDB(t)

	created, err := CreateResearchArea(db, ResearchAreaInput{Name: "Vision"})
	require.NoError(t, err)

	found, err := FindResearchAreaByID(db, created.ID)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "Vision", found.Name)

	missing, err := FindResearchAreaByID(db, "missing")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestUpdateResearchAreaPartial(t *testing.T) {
	db := setupTestDB(t)

	created, err := CreateResearchArea(db, ResearchAreaInput{
		Name:        "Speech",
		Description: strPtr("speech processing"),
	})
	require.NoError(t, err)

	// empty patch is a no-op
	same, err := UpdateResearchArea(db, created.ID, ResearchAreaUpdate{})
	require.NoError(t, err)
	require.NotNil(t, same)
	assert.Equal(t, "Speech", same.Name)
	require.NotNil(t, same.Description)

	off := false
	updated, err := UpdateResearchArea(db, created.ID, ResearchAreaUpdate{
		IsActive: &off,
		Order:    intPtr(5),
	})
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.False(t, updated.IsActive)
	assert.Equal(t, 5, updated.Order)
	assert.Equal(t, "Speech", updated.Name)
}

func TestUpdateResearchAreaNotFound(t *testing.T) {
	db := setupTestDB(t)

	area, err := UpdateResearchArea(db, "missing", ResearchAreaUpdate{Name: strPtr("x")})
	require.NoError(t, err)
	assert.Nil(t, area)
}

func TestDeleteResearchAreaTwice(t *testing.T) {
	db := setupTestDB(t)

	created, err := CreateResearchArea(db, ResearchAreaInput{Name: "HCI"})
	require.NoError(t, err)

	deleted, err := DeleteResearchArea(db, created.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = DeleteResearchArea(db, created.ID)
	require.NoError(t, err)
	assert.False(t, deleted)
}
