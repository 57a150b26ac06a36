package store

import (
	"github.com/gilab/backend/models"
	"gorm.io/gorm"
)

// ResearchProjectInput is the payload for creating a research project.
type ResearchProjectInput struct {
	Title          string  `json:"title" binding:"required"`
	Description    string  `json:"description"`
	Category       string  `json:"category"`
	Date           string  `json:"date"`
	LeadResearcher string  `json:"leadResearcher"`
	ImageURL       *string `json:"imageUrl"`
	Order          *int    `json:"order"`
}

// ListResearchProjects returns all projects ordered ascending by order.
func ListResearchProjects(db *gorm.DB) ([]models.ResearchProject, error) {
	var projects []models.ResearchProject
	if err := db.Order("display_order ASC").Find(&projects).Error; err != nil {
		return nil, err
	}
	return projects, nil
}

// CreateResearchProject persists a project attributed to the given user.
func CreateResearchProject(db *gorm.DB, in ResearchProjectInput, authorID string) (*models.ResearchProject, error) {
	project := models.ResearchProject{
		Title:          in.Title,
		Description:    in.Description,
		Category:       in.Category,
		Date:           in.Date,
		LeadResearcher: in.LeadResearcher,
		ImageURL:       in.ImageURL,
	}
	if in.Order != nil {
		project.Order = *in.Order
	}
	if authorID != "" {
		project.AuthorID = &authorID
	}
	if err := db.Create(&project).Error; err != nil {
		return nil, err
	}
	return &project, nil
}
