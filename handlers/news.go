package handlers

import (
	"net/http"
	"strconv"

	"github.com/gilab/backend/database"
	"github.com/gilab/backend/store"
	"github.com/gin-gonic/gin"
)

// GetNews handles GET /api/news - List all posts, newest first
func GetNews(c *gin.Context) {
	news, err := store.ListNews(database.DB)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch news"})
		return
	}
	c.JSON(http.StatusOK, news)
}

// GetRecentNews handles GET /api/news/recent
func GetRecentNews(c *gin.Context) {
	limit := 3
	if limitStr := c.Query("limit"); limitStr != "" {
		if parsed, err := strconv.Atoi(limitStr); err == nil && parsed > 0 && parsed <= 50 {
			limit = parsed
		}
	}

	news, err := store.ListRecentNews(database.DB, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch news"})
		return
	}
	c.JSON(http.StatusOK, news)
}

// GetNewsItem handles GET /api/news/:id
func GetNewsItem(c *gin.Context) {
	news, err := store.FindNewsByID(database.DB, c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch news"})
		return
	}
	if news == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "News not found"})
		return
	}
	c.JSON(http.StatusOK, news)
}

// CreateNews handles POST /api/news
func CreateNews(c *gin.Context) {
	var req store.NewsInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	user, _ := currentUser(c)
	news, err := store.CreateNews(database.DB, req, user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create news"})
		return
	}
	c.JSON(http.StatusCreated, news)
}

// UpdateNews handles PUT /api/news/:id
func UpdateNews(c *gin.Context) {
	var req store.NewsUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	news, err := store.UpdateNews(database.DB, c.Param("id"), req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update news"})
		return
	}
	if news == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "News not found"})
		return
	}
	c.JSON(http.StatusOK, news)
}

// DeleteNews handles DELETE /api/news/:id
func DeleteNews(c *gin.Context) {
	deleted, err := store.DeleteNews(database.DB, c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete news"})
		return
	}
	if !deleted {
		c.JSON(http.StatusNotFound, gin.H{"error": "News not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
