package handlers

import (
	"net/http"

	"github.com/gilab/backend/database"
	"github.com/gilab/backend/store"
	"github.com/gin-gonic/gin"
)

// GetPendingUsers handles GET /api/admin/users/pending
func GetPendingUsers(c *gin.Context) {
	users, err := store.ListPendingUsers(database.DB)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch pending users"})
		return
	}
	c.JSON(http.StatusOK, users)
}

// ApproveUser handles POST /api/admin/users/:id/approve
func ApproveUser(c *gin.Context) {
	user, err := store.ApproveUser(database.DB, c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to approve user"})
		return
	}
	if user == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}
	c.JSON(http.StatusOK, user)
}
