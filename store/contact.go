package store

import (
	"github.com/gilab/backend/models"
	"gorm.io/gorm"
)

// ContactMessageInput is the payload of a contact-form submission.
type ContactMessageInput struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Subject string `json:"subject" binding:"required"`
	Message string `json:"message" binding:"required"`
}

// CreateContactMessage persists a submission for later review.
func CreateContactMessage(db *gorm.DB, in ContactMessageInput) (*models.ContactMessage, error) {
	msg := models.ContactMessage{
		Name:    in.Name,
		Email:   in.Email,
		Subject: in.Subject,
		Message: in.Message,
	}
	if err := db.Create(&msg).Error; err != nil {
		return nil, err
	}
	return &msg, nil
}

// ListContactMessages returns all submissions, newest first.
func ListContactMessages(db *gorm.DB) ([]models.ContactMessage, error) {
	var msgs []models.ContactMessage
	if err := db.Order("created_at DESC").Find(&msgs).Error; err != nil {
		return nil, err
	}
	return msgs, nil
}

// DeleteContactMessage returns false if the id does not resolve.
func DeleteContactMessage(db *gorm.DB, id string) (bool, error) {
	var msg models.ContactMessage
	if err := db.First(&msg, "id = ?", id).Error; err != nil {
		if isNotFound(err) {
			return false, nil
		}
		return false, err
	}
	if err := db.Delete(&msg).Error; err != nil {
		return false, err
	}
	return true, nil
}
