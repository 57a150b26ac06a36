package store

import (
	"time"

	"github.com/gilab/backend/models"
	"gorm.io/gorm"
)

// NewsInput is the payload for creating a news post.
type NewsInput struct {
	Title    string  `json:"title" binding:"required"`
	Content  string  `json:"content" binding:"required"`
	Summary  *string `json:"summary"`
	ImageURL *string `json:"imageUrl"`
}

// NewsUpdate carries a partial update; only non-nil fields are applied.
type NewsUpdate struct {
	Title    *string `json:"title"`
	Content  *string `json:"content"`
	Summary  *string `json:"summary"`
	ImageURL *string `json:"imageUrl"`
}

func (in NewsUpdate) updates() map[string]interface{} {
	updates := map[string]interface{}{}
	if in.Title != nil {
		updates["title"] = *in.Title
	}
	if in.Content != nil {
		updates["content"] = *in.Content
	}
	if in.Summary != nil {
		updates["summary"] = *in.Summary
	}
	if in.ImageURL != nil {
		updates["image_url"] = *in.ImageURL
	}
	return updates
}

// ListNews returns all posts, newest first by publishedAt.
func ListNews(db *gorm.DB) ([]models.News, error) {
	var news []models.News
	if err := db.Order("published_at DESC").Find(&news).Error; err != nil {
		return nil, err
	}
	return news, nil
}

// ListRecentNews returns the newest posts truncated to limit.
func ListRecentNews(db *gorm.DB, limit int) ([]models.News, error) {
	var news []models.News
	if err := db.Order("published_at DESC").Limit(limit).Find(&news).Error; err != nil {
		return nil, err
	}
	return news, nil
}

// FindNewsByID returns nil if the id does not resolve.
func FindNewsByID(db *gorm.DB, id string) (*models.News, error) {
	var news models.News
	if err := db.First(&news, "id = ?", id).Error; err != nil {
		if isNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return &news, nil
}

// CreateNews persists a post attributed to the given user, published now.
func CreateNews(db *gorm.DB, in NewsInput, authorID string) (*models.News, error) {
	news := models.News{
		Title:       in.Title,
		Content:     in.Content,
		Summary:     in.Summary,
		ImageURL:    in.ImageURL,
		PublishedAt: time.Now(),
		IsPublished: true,
		AuthorID:    authorID,
	}
	if err := db.Create(&news).Error; err != nil {
		return nil, err
	}
	return &news, nil
}

// UpdateNews applies a partial update. Returns nil if the id does not resolve.
func UpdateNews(db *gorm.DB, id string, in NewsUpdate) (*models.News, error) {
	var news models.News
	if err := db.First(&news, "id = ?", id).Error; err != nil {
		if isNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	if updates := in.updates(); len(updates) > 0 {
		if err := db.Model(&news).Updates(updates).Error; err != nil {
			return nil, err
		}
	}
	return &news, nil
}

// DeleteNews returns false if the id does not resolve.
func DeleteNews(db *gorm.DB, id string) (bool, error) {
	var news models.News
	if err := db.First(&news, "id = ?", id).Error; err != nil {
		if isNotFound(err) {
			return false, nil
		}
		return false, err
	}
	if err := db.Delete(&news).Error; err != nil {
		return false, err
	}
	return true, nil
}
