package handlers

import (
	"net/http"

	"github.com/gilab/backend/database"
	"github.com/gilab/backend/store"
	"github.com/gin-gonic/gin"
)

// GetLabInfo handles GET /api/lab-info
func GetLabInfo(c *gin.Context) {
	info, err := store.GetLabInfo(database.DB)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch lab info"})
		return
	}
	if info == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Lab info not configured"})
		return
	}
	c.JSON(http.StatusOK, info)
}

// UpsertLabInfo handles PUT /api/lab-info - Create or update the settings row
func UpsertLabInfo(c *gin.Context) {
	var req store.LabInfoInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	info, err := store.UpsertLabInfo(database.DB, req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save lab info"})
		return
	}
	c.JSON(http.StatusOK, info)
}
