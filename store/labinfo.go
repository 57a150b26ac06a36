package store

import (
	"github.com/gilab/backend/models"
	"gorm.io/gorm"
)

// labSettingsID is the fixed id of the single lab-settings row. Only this
// package knows the key; callers go through GetLabInfo/UpsertLabInfo.
const labSettingsID = "lab_settings"

// LabInfoInput is the payload for creating or updating the lab settings.
type LabInfoInput struct {
	LabName               string  `json:"labName" binding:"required"`
	PrincipalInvestigator string  `json:"principalInvestigator" binding:"required"`
	PITitle               string  `json:"piTitle" binding:"required"`
	PIEmail               *string `json:"piEmail" binding:"omitempty,email"`
	PIPhone               *string `json:"piPhone"`
	PIPhoto               *string `json:"piPhoto"`
	PIBio                 *string `json:"piBio"`
	Description           *string `json:"description"`
	Address               string  `json:"address" binding:"required"`
	Latitude              *string `json:"latitude"`
	Longitude             *string `json:"longitude"`
	Building              *string `json:"building"`
	Room                  *string `json:"room"`
	University            string  `json:"university" binding:"required"`
	Department            string  `json:"department" binding:"required"`
	Website               *string `json:"website"`
	EstablishedYear       *string `json:"establishedYear"`
	ResearchFocus         *string `json:"researchFocus"`
	ContactEmail          string  `json:"contactEmail" binding:"required,email"`
	ContactPhone          *string `json:"contactPhone"`
	OfficeHours           *string `json:"officeHours"`
}

func (in LabInfoInput) updates() map[string]interface{} {
	updates := map[string]interface{}{
		"lab_name":               in.LabName,
		"principal_investigator": in.PrincipalInvestigator,
		"pi_title":               in.PITitle,
		"address":                in.Address,
		"university":             in.University,
		"department":             in.Department,
		"contact_email":          in.ContactEmail,
	}
	if in.PIEmail != nil {
		updates["pi_email"] = *in.PIEmail
	}
	if in.PIPhone != nil {
		updates["pi_phone"] = *in.PIPhone
	}
	if in.PIPhoto != nil {
		updates["pi_photo"] = *in.PIPhoto
	}
	if in.PIBio != nil {
		updates["pi_bio"] = *in.PIBio
	}
	if in.Description != nil {
		updates["description"] = *in.Description
	}
	if in.Latitude != nil {
		updates["latitude"] = *in.Latitude
	}
	if in.Longitude != nil {
		updates["longitude"] = *in.Longitude
	}
	if in.Building != nil {
		updates["building"] = *in.Building
	}
	if in.Room != nil {
		updates["room"] = *in.Room
	}
	if in.Website != nil {
		updates["website"] = *in.Website
	}
	if in.EstablishedYear != nil {
		updates["established_year"] = *in.EstablishedYear
	}
	if in.ResearchFocus != nil {
		updates["research_focus"] = *in.ResearchFocus
	}
	if in.ContactPhone != nil {
		updates["contact_phone"] = *in.ContactPhone
	}
	if in.OfficeHours != nil {
		updates["office_hours"] = *in.OfficeHours
	}
	return updates
}

// GetLabInfo fetches the settings row. Returns nil before first setup.
func GetLabInfo(db *gorm.DB) (*models.LabInfo, error) {
	var info models.LabInfo
	if err := db.First(&info, "id = ?", labSettingsID).Error; err != nil {
		if isNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return &info, nil
}

// UpsertLabInfo updates the settings row if it exists, otherwise creates it.
// Idempotent under repeated calls with the same input.
func UpsertLabInfo(db *gorm.DB, in LabInfoInput) (*models.LabInfo, error) {
	var info models.LabInfo
	err := db.First(&info, "id = ?", labSettingsID).Error
	switch {
	case err == nil:
		if err := db.Model(&info).Updates(in.updates()).Error; err != nil {
			return nil, err
		}
	case isNotFound(err):
		info = models.LabInfo{
			ID:                    labSettingsID,
			LabName:               in.LabName,
			PrincipalInvestigator: in.PrincipalInvestigator,
			PITitle:               in.PITitle,
			PIEmail:               in.PIEmail,
			PIPhone:               in.PIPhone,
			PIPhoto:               in.PIPhoto,
			PIBio:                 in.PIBio,
			Description:           in.Description,
			Address:               in.Address,
			Latitude:              in.Latitude,
			Longitude:             in.Longitude,
			Building:              in.Building,
			Room:                  in.Room,
			University:            in.University,
			Department:            in.Department,
			Website:               in.Website,
			EstablishedYear:       in.EstablishedYear,
			ResearchFocus:         in.ResearchFocus,
			ContactEmail:          in.ContactEmail,
			ContactPhone:          in.ContactPhone,
			OfficeHours:           in.OfficeHours,
		}
		if err := db.Create(&info).Error; err != nil {
			return nil, err
		}
	default:
		return nil, err
	}

	return GetLabInfo(db)
}
