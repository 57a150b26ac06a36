package store

import (
	"github.com/gilab/backend/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// PublicationInput is the payload for creating a publication. The boundary
// field is displayOrder; the legacy "order" alias is still accepted and loses
// to displayOrder when both are present.
type PublicationInput struct {
	Title        string  `json:"title" binding:"required"`
	Journal      *string `json:"journal"`
	Conference   *string `json:"conference"`
	Year         int     `json:"year" binding:"required"`
	Type         string  `json:"type" binding:"required"`
	Abstract     string  `json:"abstract"`
	PDFUrl       *string `json:"pdfUrl"`
	ImageURL     *string `json:"imageUrl"`
	DisplayOrder *int    `json:"displayOrder"`
	Order        *int    `json:"order"`
}

func (in PublicationInput) displayOrder() int {
	if in.DisplayOrder != nil {
		return *in.DisplayOrder
	}
	if in.Order != nil {
		return *in.Order
	}
	return 0
}

// PublicationUpdate carries a partial update; only non-nil fields are applied.
type PublicationUpdate struct {
	Title        *string `json:"title"`
	Journal      *string `json:"journal"`
	Conference   *string `json:"conference"`
	Year         *int    `json:"year"`
	Type         *string `json:"type"`
	Abstract     *string `json:"abstract"`
	PDFUrl       *string `json:"pdfUrl"`
	ImageURL     *string `json:"imageUrl"`
	DisplayOrder *int    `json:"displayOrder"`
	Order        *int    `json:"order"`
}

func (in PublicationUpdate) updates() map[string]interface{} {
	updates := map[string]interface{}{}
	if in.Title != nil {
		updates["title"] = *in.Title
	}
	if in.Journal != nil {
		updates["journal"] = *in.Journal
	}
	if in.Conference != nil {
		updates["conference"] = *in.Conference
	}
	if in.Year != nil {
		updates["year"] = *in.Year
	}
	if in.Type != nil {
		updates["type"] = *in.Type
	}
	if in.Abstract != nil {
		updates["abstract"] = *in.Abstract
	}
	if in.PDFUrl != nil {
		updates["pdf_url"] = *in.PDFUrl
	}
	if in.ImageURL != nil {
		updates["image_url"] = *in.ImageURL
	}
	if in.DisplayOrder != nil {
		updates["display_order"] = *in.DisplayOrder
	} else if in.Order != nil {
		updates["display_order"] = *in.Order
	}
	return updates
}

// AuthorInput is the payload for one publication author. When displayOrder
// (or its "order" alias) is absent, the author's position in the submitted
// list is used instead.
type AuthorInput struct {
	Name         string  `json:"name" binding:"required"`
	Homepage     *string `json:"homepage"`
	DisplayOrder *int    `json:"displayOrder"`
	Order        *int    `json:"order"`
}

func (in AuthorInput) displayOrder(index int) int {
	if in.DisplayOrder != nil {
		return *in.DisplayOrder
	}
	if in.Order != nil {
		return *in.Order
	}
	return index
}

// ListPublicationsWithAuthors returns every publication ordered by
// displayOrder ascending, authors preloaded in their own display order.
func ListPublicationsWithAuthors(db *gorm.DB) ([]models.Publication, error) {
	var pubs []models.Publication
	err := db.Preload("Authors", func(db *gorm.DB) *gorm.DB {
		return db.Order("display_order ASC")
	}).Order("display_order ASC").Find(&pubs).Error
	if err != nil {
		return nil, err
	}
	return pubs, nil
}

// ListPublicationsByYear filters by exact year, displayOrder ascending.
func ListPublicationsByYear(db *gorm.DB, year int) ([]models.Publication, error) {
	var pubs []models.Publication
	err := db.Preload("Authors", func(db *gorm.DB) *gorm.DB {
		return db.Order("display_order ASC")
	}).Where("year = ?", year).Order("display_order ASC").Find(&pubs).Error
	if err != nil {
		return nil, err
	}
	return pubs, nil
}

// ListRecentPublications returns the newest publications: year descending,
// then displayOrder ascending, truncated to limit.
func ListRecentPublications(db *gorm.DB, limit int) ([]models.Publication, error) {
	var pubs []models.Publication
	err := db.Preload("Authors", func(db *gorm.DB) *gorm.DB {
		return db.Order("display_order ASC")
	}).Order("year DESC").Order("display_order ASC").Limit(limit).Find(&pubs).Error
	if err != nil {
		return nil, err
	}
	return pubs, nil
}

// CreatePublication persists a publication and its author rows in one
// transaction. The publication is written first so its generated id is
// available to the author rows.
func CreatePublication(db *gorm.DB, in PublicationInput, authorID string, authors []AuthorInput) (*models.Publication, error) {
	pub := models.Publication{
		Title:        in.Title,
		Journal:      in.Journal,
		Conference:   in.Conference,
		Year:         in.Year,
		Type:         models.PublicationType(in.Type),
		Abstract:     in.Abstract,
		PDFUrl:       in.PDFUrl,
		ImageURL:     in.ImageURL,
		DisplayOrder: in.displayOrder(),
		AuthorID:     authorID,
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&pub).Error; err != nil {
			return err
		}
		for i, a := range authors {
			author := models.Author{
				Name:          a.Name,
				Homepage:      a.Homepage,
				DisplayOrder:  a.displayOrder(i),
				PublicationID: pub.ID,
			}
			if err := tx.Create(&author).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return findPublication(db, pub.ID)
}

// UpdatePublication applies a partial update. Returns nil if the id does not
// resolve.
func UpdatePublication(db *gorm.DB, id string, in PublicationUpdate) (*models.Publication, error) {
	var pub models.Publication
	if err := db.First(&pub, "id = ?", id).Error; err != nil {
		if isNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	if updates := in.updates(); len(updates) > 0 {
		if err := db.Model(&pub).Updates(updates).Error; err != nil {
			return nil, err
		}
	}
	return findPublication(db, id)
}

// UpdatePublicationOrder sets displayOrder directly.
func UpdatePublicationOrder(db *gorm.DB, id string, order int) (*models.Publication, error) {
	var pub models.Publication
	if err := db.First(&pub, "id = ?", id).Error; err != nil {
		if isNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	if err := db.Model(&pub).Update("display_order", order).Error; err != nil {
		return nil, err
	}
	return findPublication(db, id)
}

// DeletePublication removes a publication and its author rows. Returns false
// if the id does not resolve.
func DeletePublication(db *gorm.DB, id string) (bool, error) {
	var pub models.Publication
	if err := db.First(&pub, "id = ?", id).Error; err != nil {
		if isNotFound(err) {
			return false, nil
		}
		return false, err
	}
	if err := db.Select(clause.Associations).Delete(&pub).Error; err != nil {
		return false, err
	}
	return true, nil
}

// CreateAuthor attaches a standalone author to an existing publication.
func CreateAuthor(db *gorm.DB, in AuthorInput, publicationID string) (*models.Author, error) {
	author := models.Author{
		Name:          in.Name,
		Homepage:      in.Homepage,
		PublicationID: publicationID,
	}
	if in.DisplayOrder != nil {
		author.DisplayOrder = *in.DisplayOrder
	} else if in.Order != nil {
		author.DisplayOrder = *in.Order
	}
	if err := db.Create(&author).Error; err != nil {
		return nil, err
	}
	return &author, nil
}

func findPublication(db *gorm.DB, id string) (*models.Publication, error) {
	var pub models.Publication
	err := db.Preload("Authors", func(db *gorm.DB) *gorm.DB {
		return db.Order("display_order ASC")
	}).First(&pub, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &pub, nil
}
