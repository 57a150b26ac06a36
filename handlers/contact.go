package handlers

import (
	"net/http"

	"github.com/gilab/backend/database"
	"github.com/gilab/backend/store"
	"github.com/gin-gonic/gin"
)

// SubmitContactForm handles POST /api/contact - Public submission endpoint
func SubmitContactForm(c *gin.Context) {
	var req store.ContactMessageInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	if _, err := store.CreateContactMessage(database.DB, req); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save message"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Message sent successfully"})
}

// GetContactMessages handles GET /api/contact - Admin review list
func GetContactMessages(c *gin.Context) {
	msgs, err := store.ListContactMessages(database.DB)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch messages"})
		return
	}
	c.JSON(http.StatusOK, msgs)
}

// DeleteContactMessage handles DELETE /api/contact/:id
func DeleteContactMessage(c *gin.Context) {
	deleted, err := store.DeleteContactMessage(database.DB, c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete message"})
		return
	}
	if !deleted {
		c.JSON(http.StatusNotFound, gin.H{"error": "Message not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
