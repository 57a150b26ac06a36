package store

import (
	"testing"
	"time"

	"github.com/gilab/backend/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListRecentNewsOrdering(t *testing.T) {
	db := setupTestDB(t)

	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	for i, title := range []string{"oldest", "middle", "newest"} {
		news := models.News{
			Title:       title,
			Content:     "content",
			PublishedAt: base.Add(time.Duration(i) * time.Hour),
			IsPublished: true,
			AuthorID:    "user-1",
		}
		require.NoError(t, db.Create(&news).Error)
	}

	recent, err := ListRecentNews(db, 2)
	require.NoError(t, err)
	require.Len(t, recent, 2)
	assert.Equal(t, "newest", recent[0].Title)
	assert.Equal(t, "middle", recent[1].Title)

	all, err := ListNews(db)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "newest", all[0].Title)
	assert.Equal(t, "oldest", all[2].Title)
}

func TestCreateNewsSetsPublication(t *testing.T) {
	db := setupTestDB(t)

	news, err := CreateNews(db, NewsInput{
		Title:   "Paper accepted",
		Content: "Our paper was accepted.",
		Summary: strPtr("accepted"),
	}, "user-1")
	require.NoError(t, err)
	require.NotEmpty(t, news.ID)
	assert.True(t, news.IsPublished)
	assert.False(t, news.PublishedAt.IsZero())
	assert.Equal(t, "user-1", news.AuthorID)
}

func TestFindNewsByID(t *testing.T) {
	db := setupTestDB(t)

	created, err := CreateNews(db, NewsInput{Title: "t", Content: "c"}, "user-1")
	require.NoError(t, err)

	found, err := FindNewsByID(db, created.ID)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "t", found.Title)

	missing, err := FindNewsByID(db, "missing")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestUpdateNewsPartial(t *testing.T) {
	db := setupTestDB(t)

	created, err := CreateNews(db, NewsInput{
		Title:   "Original",
		Content: "body",
		Summary: strPtr("sum"),
	}, "user-1")
	require.NoError(t, err)

	// empty patch is a no-op
	same, err := UpdateNews(db, created.ID, NewsUpdate{})
	require.NoError(t, err)
	require.NotNil(t, same)
	assert.Equal(t, "Original", same.Title)
	require.NotNil(t, same.Summary)
	assert.Equal(t, "sum", *same.Summary)

	updated, err := UpdateNews(db, created.ID, NewsUpdate{Title: strPtr("Revised")})
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, "Revised", updated.Title)
	assert.Equal(t, "body", updated.Content)
}

func TestUpdateNewsNotFound(t *testing.T) {
	db := setupTestDB(t)

	news, err := UpdateNews(db, "missing", NewsUpdate{Title: strPtr("x")})
	require.NoError(t, err)
	assert.Nil(t, news)
}

func TestDeleteNewsTwice(t *testing.T) {
	db := setupTestDB(t)

	created, err := CreateNews(db, NewsInput{Title: "t", Content: "c"}, "user-1")
	require.NoError(t, err)

	deleted, err := DeleteNews(db, created.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = DeleteNews(db, created.ID)
	require.NoError(t, err)
	assert.False(t, deleted)
}
