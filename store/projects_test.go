package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateAndListResearchProjects(t *testing.T) {
	db := setupTestDB(t)

	for _, p := range []struct {
		title string
		order int
	}{
		{"beta", 2}, {"alpha", 1},
	} {
		_, err := CreateResearchProject(db, ResearchProjectInput{
			Title:          p.title,
			Description:    "desc",
			Category:       "ongoing",
			LeadResearcher: "Prof. Park",
			Order:          intPtr(p.order),
		}, "user-1")
		require.NoError(t, err)
	}

	projects, err := ListResearchProjects(db)
	require.NoError(t, err)
	require.Len(t, projects, 2)
	assert.Equal(t, "alpha", projects[0].Title)
	assert.Equal(t, "beta", projects[1].Title)
	require.NotNil(t, projects[0].AuthorID)
	assert.Equal(t, "user-1", *projects[0].AuthorID)
}

func TestCreateResearchProjectWithoutCreator(t *testing.T) {
	db := setupTestDB(t)

	project, err := CreateResearchProject(db, ResearchProjectInput{Title: "solo"}, "")
	require.NoError(t, err)
	assert.Nil(t, project.AuthorID)
	assert.Zero(t, project.Order)
}
