package handlers

import (
	"net/http"
	"strconv"

	"github.com/gilab/backend/database"
	"github.com/gilab/backend/store"
	"github.com/gin-gonic/gin"
)

// GetPublications handles GET /api/publications - List all, optionally
// filtered by ?year=
func GetPublications(c *gin.Context) {
	if yearStr := c.Query("year"); yearStr != "" {
		year, err := strconv.Atoi(yearStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid year"})
			return
		}
		pubs, err := store.ListPublicationsByYear(database.DB, year)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch publications"})
			return
		}
		c.JSON(http.StatusOK, pubs)
		return
	}

	pubs, err := store.ListPublicationsWithAuthors(database.DB)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch publications"})
		return
	}
	c.JSON(http.StatusOK, pubs)
}

// GetRecentPublications handles GET /api/publications/recent
func GetRecentPublications(c *gin.Context) {
	limit := 5
	if limitStr := c.Query("limit"); limitStr != "" {
		if parsed, err := strconv.Atoi(limitStr); err == nil && parsed > 0 && parsed <= 50 {
			limit = parsed
		}
	}

	pubs, err := store.ListRecentPublications(database.DB, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch publications"})
		return
	}
	c.JSON(http.StatusOK, pubs)
}

// CreatePublication handles POST /api/publications
func CreatePublication(c *gin.Context) {
	var req struct {
		store.PublicationInput
		Authors []store.AuthorInput `json:"authors"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	user, _ := currentUser(c)
	pub, err := store.CreatePublication(database.DB, req.PublicationInput, user.ID, req.Authors)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create publication"})
		return
	}
	c.JSON(http.StatusCreated, pub)
}

// UpdatePublication handles PUT /api/publications/:id
func UpdatePublication(c *gin.Context) {
	var req store.PublicationUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	pub, err := store.UpdatePublication(database.DB, c.Param("id"), req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update publication"})
		return
	}
	if pub == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Publication not found"})
		return
	}
	c.JSON(http.StatusOK, pub)
}

// UpdatePublicationOrder handles PATCH /api/publications/:id/order
func UpdatePublicationOrder(c *gin.Context) {
	var req struct {
		DisplayOrder *int `json:"displayOrder"`
		Order        *int `json:"order"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || (req.DisplayOrder == nil && req.Order == nil) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "displayOrder is required"})
		return
	}

	order := 0
	if req.DisplayOrder != nil {
		order = *req.DisplayOrder
	} else {
		order = *req.Order
	}

	pub, err := store.UpdatePublicationOrder(database.DB, c.Param("id"), order)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update publication order"})
		return
	}
	if pub == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Publication not found"})
		return
	}
	c.JSON(http.StatusOK, pub)
}

// DeletePublication handles DELETE /api/publications/:id
func DeletePublication(c *gin.Context) {
	deleted, err := store.DeletePublication(database.DB, c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete publication"})
		return
	}
	if !deleted {
		c.JSON(http.StatusNotFound, gin.H{"error": "Publication not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// CreatePublicationAuthor handles POST /api/publications/:id/authors
func CreatePublicationAuthor(c *gin.Context) {
	var req store.AuthorInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	author, err := store.CreateAuthor(database.DB, req, c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create author"})
		return
	}
	c.JSON(http.StatusCreated, author)
}
