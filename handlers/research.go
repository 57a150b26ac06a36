package handlers

import (
	"net/http"

	"github.com/gilab/backend/database"
	"github.com/gilab/backend/store"
	"github.com/gin-gonic/gin"
)

// GetResearchProjects handles GET /api/research
func GetResearchProjects(c *gin.Context) {
	projects, err := store.ListResearchProjects(database.DB)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch research projects"})
		return
	}
	c.JSON(http.StatusOK, projects)
}

// CreateResearchProject handles POST /api/research
func CreateResearchProject(c *gin.Context) {
	var req store.ResearchProjectInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	user, _ := currentUser(c)
	project, err := store.CreateResearchProject(database.DB, req, user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create research project"})
		return
	}
	c.JSON(http.StatusCreated, project)
}
