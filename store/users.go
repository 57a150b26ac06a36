package store

import (
	"github.com/gilab/backend/models"
	"gorm.io/gorm"
)

// FindUserByEmail looks a user up by exact email match.
func FindUserByEmail(db *gorm.DB, email string) (*models.User, error) {
	var user models.User
	if err := db.Where("email = ?", email).First(&user).Error; err != nil {
		if isNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

// CreateUser persists a new account. Accounts always start unapproved and
// non-admin regardless of the input.
func CreateUser(db *gorm.DB, email, firstName, lastName, passwordHash string) (*models.User, error) {
	user := models.User{
		Email:        email,
		PasswordHash: passwordHash,
		FirstName:    firstName,
		LastName:     lastName,
		IsApproved:   false,
		IsAdmin:      false,
	}
	if err := db.Create(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// ListPendingUsers returns all accounts awaiting approval. No ordering is
// guaranteed.
func ListPendingUsers(db *gorm.DB) ([]models.User, error) {
	var users []models.User
	if err := db.Where("is_approved = ?", false).Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// ApproveUser flips isApproved on. Returns nil if the id does not resolve.
func ApproveUser(db *gorm.DB, id string) (*models.User, error) {
	var user models.User
	if err := db.First(&user, "id = ?", id).Error; err != nil {
		if isNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	if err := db.Model(&user).Update("is_approved", true).Error; err != nil {
		return nil, err
	}
	return &user, nil
}
