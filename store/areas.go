package store

import (
	"github.com/gilab/backend/models"
	"gorm.io/gorm"
)

// ResearchAreaInput is the payload for creating a research area.
type ResearchAreaInput struct {
	Name        string  `json:"name" binding:"required"`
	Description *string `json:"description"`
	ParentID    *string `json:"parentId"`
	ImageURL    *string `json:"imageUrl"`
	Order       *int    `json:"order"`
	IsActive    *bool   `json:"isActive"`
}

// ResearchAreaUpdate carries a partial update; only non-nil fields are
// applied. Setting parentId does not check for reference cycles; callers
// must not introduce one.
type ResearchAreaUpdate struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	ParentID    *string `json:"parentId"`
	ImageURL    *string `json:"imageUrl"`
	Order       *int    `json:"order"`
	IsActive    *bool   `json:"isActive"`
}

func (in ResearchAreaUpdate) updates() map[string]interface{} {
	updates := map[string]interface{}{}
	if in.Name != nil {
		updates["name"] = *in.Name
	}
	if in.Description != nil {
		updates["description"] = *in.Description
	}
	if in.ParentID != nil {
		updates["parent_id"] = *in.ParentID
	}
	if in.ImageURL != nil {
		updates["image_url"] = *in.ImageURL
	}
	if in.Order != nil {
		updates["display_order"] = *in.Order
	}
	if in.IsActive != nil {
		updates["is_active"] = *in.IsActive
	}
	return updates
}

// ListResearchAreas returns all areas ordered ascending by order.
func ListResearchAreas(db *gorm.DB) ([]models.ResearchArea, error) {
	var areas []models.ResearchArea
	if err := db.Order("display_order ASC").Find(&areas).Error; err != nil {
		return nil, err
	}
	return areas, nil
}

// ListResearchAreasByParent returns the children of the given area, or the
// root-level areas when parentID is nil. Ordered ascending by order.
func ListResearchAreasByParent(db *gorm.DB, parentID *string) ([]models.ResearchArea, error) {
	var areas []models.ResearchArea
	query := db.Order("display_order ASC")
	if parentID == nil {
		query = query.Where("parent_id IS NULL")
	} else {
		query = query.Where("parent_id = ?", *parentID)
	}
	if err := query.Find(&areas).Error; err != nil {
		return nil, err
	}
	return areas, nil
}

// FindResearchAreaByID returns nil if the id does not resolve.
func FindResearchAreaByID(db *gorm.DB, id string) (*models.ResearchArea, error) {
	var area models.ResearchArea
	if err := db.First(&area, "id = ?", id).Error; err != nil {
		if isNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return &area, nil
}

// CreateResearchArea persists an area. IsActive defaults to true.
func CreateResearchArea(db *gorm.DB, in ResearchAreaInput) (*models.ResearchArea, error) {
	area := models.ResearchArea{
		Name:        in.Name,
		Description: in.Description,
		ParentID:    in.ParentID,
		ImageURL:    in.ImageURL,
		IsActive:    true,
	}
	if in.Order != nil {
		area.Order = *in.Order
	}
	if in.IsActive != nil {
		area.IsActive = *in.IsActive
	}
	if err := db.Create(&area).Error; err != nil {
		return nil, err
	}
	return &area, nil
}

// UpdateResearchArea applies a partial update. Returns nil if the id does
// not resolve.
func UpdateResearchArea(db *gorm.DB, id string, in ResearchAreaUpdate) (*models.ResearchArea, error) {
	var area models.ResearchArea
	if err := db.First(&area, "id = ?", id).Error; err != nil {
		if isNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	if updates := in.updates(); len(updates) > 0 {
		if err := db.Model(&area).Updates(updates).Error; err != nil {
			return nil, err
		}
	}
	return &area, nil
}

// DeleteResearchArea returns false if the id does not resolve.
func DeleteResearchArea(db *gorm.DB, id string) (bool, error) {
	var area models.ResearchArea
	if err := db.First(&area, "id = ?", id).Error; err != nil {
		if isNotFound(err) {
			return false, nil
		}
		return false, err
	}
	if err := db.Delete(&area).Error; err != nil {
		return false, err
	}
	return true, nil
}
