package handlers

import (
	"net/http"

	"github.com/gilab/backend/database"
	"github.com/gilab/backend/store"
	"github.com/gin-gonic/gin"
)

// GetMembers handles GET /api/members - List all, ordered by name
func GetMembers(c *gin.Context) {
	members, err := store.ListMembers(database.DB)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch members"})
		return
	}
	c.JSON(http.StatusOK, members)
}

// GetGroupedMembers handles GET /api/members/grouped - Members bucketed by
// degree level
func GetGroupedMembers(c *gin.Context) {
	grouped, err := store.GroupMembersByDegree(database.DB)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch members"})
		return
	}
	c.JSON(http.StatusOK, grouped)
}

// CreateMember handles POST /api/members
func CreateMember(c *gin.Context) {
	var req store.MemberInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	member, err := store.CreateMember(database.DB, req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create member"})
		return
	}
	c.JSON(http.StatusCreated, member)
}

// UpdateMember handles PUT /api/members/:id
func UpdateMember(c *gin.Context) {
	var req store.MemberUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	member, err := store.UpdateMember(database.DB, c.Param("id"), req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update member"})
		return
	}
	if member == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Member not found"})
		return
	}
	c.JSON(http.StatusOK, member)
}

// DeleteMember handles DELETE /api/members/:id
func DeleteMember(c *gin.Context) {
	deleted, err := store.DeleteMember(database.DB, c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete member"})
		return
	}
	if !deleted {
		c.JSON(http.StatusNotFound, gin.H{"error": "Member not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
