package handlers

import (
	"net/http"

	"github.com/gilab/backend/database"
	"github.com/gilab/backend/store"
	"github.com/gin-gonic/gin"
)

// GetResearchAreas handles GET /api/research-areas - List all, or filter by
// parent: ?roots=true selects root-level areas, ?parentId= selects children.
func GetResearchAreas(c *gin.Context) {
	if c.Query("roots") == "true" {
		areas, err := store.ListResearchAreasByParent(database.DB, nil)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch research areas"})
			return
		}
		c.JSON(http.StatusOK, areas)
		return
	}

	if parentID := c.Query("parentId"); parentID != "" {
		areas, err := store.ListResearchAreasByParent(database.DB, &parentID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch research areas"})
			return
		}
		c.JSON(http.StatusOK, areas)
		return
	}

	areas, err := store.ListResearchAreas(database.DB)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch research areas"})
		return
	}
	c.JSON(http.StatusOK, areas)
}

// GetResearchArea handles GET /api/research-areas/:id
func GetResearchArea(c *gin.Context) {
	area, err := store.FindResearchAreaByID(database.DB, c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch research area"})
		return
	}
	if area == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Research area not found"})
		return
	}
	c.JSON(http.StatusOK, area)
}

// CreateResearchArea handles POST /api/research-areas
func CreateResearchArea(c *gin.Context) {
	var req store.ResearchAreaInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	area, err := store.CreateResearchArea(database.DB, req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create research area"})
		return
	}
	c.JSON(http.StatusCreated, area)
}

// UpdateResearchArea handles PUT /api/research-areas/:id
func UpdateResearchArea(c *gin.Context) {
	var req store.ResearchAreaUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	area, err := store.UpdateResearchArea(database.DB, c.Param("id"), req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update research area"})
		return
	}
	if area == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Research area not found"})
		return
	}
	c.JSON(http.StatusOK, area)
}

// DeleteResearchArea handles DELETE /api/research-areas/:id
func DeleteResearchArea(c *gin.Context) {
	deleted, err := store.DeleteResearchArea(database.DB, c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete research area"})
		return
	}
	if !deleted {
		c.JSON(http.StatusNotFound, gin.H{"error": "Research area not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
