package store

import (
	"log"
	"strings"

	"github.com/gilab/backend/models"
	"gorm.io/gorm"
)

// DegreeBucket is one of the five fixed display groups for lab members.
type DegreeBucket string

const (
	BucketMasters   DegreeBucket = "masters"
	BucketBachelors DegreeBucket = "bachelors"
	BucketPhD       DegreeBucket = "phd"
	BucketOther     DegreeBucket = "other"
	BucketAlumni    DegreeBucket = "alumni"
)

// GroupedMembers holds members classified by degree level, each bucket in
// name-ascending order.
type GroupedMembers struct {
	Masters   []models.Member `json:"masters"`
	Bachelors []models.Member `json:"bachelors"`
	PhD       []models.Member `json:"phd"`
	Other     []models.Member `json:"other"`
	Alumni    []models.Member `json:"alumni"`
}

// MemberInput is the payload for creating a member.
type MemberInput struct {
	Name              string  `json:"name" binding:"required"`
	Degree            string  `json:"degree" binding:"required"`
	Email             *string `json:"email" binding:"omitempty,email"`
	ImageURL          *string `json:"imageUrl"`
	Homepage          *string `json:"homepage"`
	JoinedAt          string  `json:"joinedAt"`
	Status            string  `json:"status"`
	Bio               *string `json:"bio"`
	ResearchInterests *string `json:"researchInterests"`
}

// MemberUpdate carries a partial update; only non-nil fields are applied.
type MemberUpdate struct {
	Name              *string `json:"name"`
	Degree            *string `json:"degree"`
	Email             *string `json:"email" binding:"omitempty,email"`
	ImageURL          *string `json:"imageUrl"`
	Homepage          *string `json:"homepage"`
	JoinedAt          *string `json:"joinedAt"`
	Status            *string `json:"status"`
	Bio               *string `json:"bio"`
	ResearchInterests *string `json:"researchInterests"`
}

func (in MemberUpdate) updates() map[string]interface{} {
	updates := map[string]interface{}{}
	if in.Name != nil {
		updates["name"] = *in.Name
	}
	if in.Degree != nil {
		updates["degree"] = *in.Degree
	}
	if in.Email != nil {
		updates["email"] = *in.Email
	}
	if in.ImageURL != nil {
		updates["image_url"] = *in.ImageURL
	}
	if in.Homepage != nil {
		updates["homepage"] = *in.Homepage
	}
	if in.JoinedAt != nil {
		updates["joined_at"] = *in.JoinedAt
	}
	if in.Status != nil {
		updates["status"] = *in.Status
	}
	if in.Bio != nil {
		updates["bio"] = *in.Bio
	}
	if in.ResearchInterests != nil {
		updates["research_interests"] = *in.ResearchInterests
	}
	return updates
}

// classifyMember maps a member's free-text status/degree onto a bucket.
// Precedence: alumni status wins outright; then an exact bucket name as
// degree; then known doctoral spellings; then master/bachelor prefixes.
// The second return value is false when no rule matched and the member was
// bucketed as "other".
func classifyMember(status, degree string) (DegreeBucket, bool) {
	if strings.EqualFold(status, string(BucketAlumni)) {
		return BucketAlumni, true
	}
	deg := strings.ToLower(degree)
	switch deg {
	case "masters", "bachelors", "phd", "other", "alumni":
		return DegreeBucket(deg), true
	case "ph.d", "doctor":
		return BucketPhD, true
	}
	if strings.HasPrefix(deg, "master") {
		return BucketMasters, true
	}
	if strings.HasPrefix(deg, "bachelor") {
		return BucketBachelors, true
	}
	return BucketOther, false
}

// ListMembers returns all members ordered ascending by name.
func ListMembers(db *gorm.DB) ([]models.Member, error) {
	var members []models.Member
	if err := db.Order("name ASC").Find(&members).Error; err != nil {
		return nil, err
	}
	return members, nil
}

// GroupMembersByDegree fetches all members in name order and classifies each
// into exactly one bucket. Degrees that match no rule land in "other" and are
// logged for follow-up.
func GroupMembersByDegree(db *gorm.DB) (*GroupedMembers, error) {
	members, err := ListMembers(db)
	if err != nil {
		return nil, err
	}

	grouped := &GroupedMembers{
		Masters:   []models.Member{},
		Bachelors: []models.Member{},
		PhD:       []models.Member{},
		Other:     []models.Member{},
		Alumni:    []models.Member{},
	}

	var unclassified []string
	for _, m := range members {
		bucket, ok := classifyMember(m.Status, m.Degree)
		if !ok {
			unclassified = append(unclassified, m.Degree)
		}
		switch bucket {
		case BucketMasters:
			grouped.Masters = append(grouped.Masters, m)
		case BucketBachelors:
			grouped.Bachelors = append(grouped.Bachelors, m)
		case BucketPhD:
			grouped.PhD = append(grouped.PhD, m)
		case BucketAlumni:
			grouped.Alumni = append(grouped.Alumni, m)
		default:
			grouped.Other = append(grouped.Other, m)
		}
	}
	if len(unclassified) > 0 {
		log.Printf("⚠️  %d member degree value(s) matched no classification rule: %q", len(unclassified), unclassified)
	}
	return grouped, nil
}

// CreateMember persists a member. Status defaults to "current".
func CreateMember(db *gorm.DB, in MemberInput) (*models.Member, error) {
	status := in.Status
	if status == "" {
		status = "current"
	}
	member := models.Member{
		Name:              in.Name,
		Degree:            in.Degree,
		Email:             in.Email,
		ImageURL:          in.ImageURL,
		Homepage:          in.Homepage,
		JoinedAt:          in.JoinedAt,
		Status:            status,
		Bio:               in.Bio,
		ResearchInterests: in.ResearchInterests,
	}
	if err := db.Create(&member).Error; err != nil {
		return nil, err
	}
	return &member, nil
}

// UpdateMember applies a partial update. Returns nil if the id does not
// resolve.
func UpdateMember(db *gorm.DB, id string, in MemberUpdate) (*models.Member, error) {
	var member models.Member
	if err := db.First(&member, "id = ?", id).Error; err != nil {
		if isNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	if updates := in.updates(); len(updates) > 0 {
		if err := db.Model(&member).Updates(updates).Error; err != nil {
			return nil, err
		}
	}
	return &member, nil
}

// DeleteMember returns false if the id does not resolve.
func DeleteMember(db *gorm.DB, id string) (bool, error) {
	var member models.Member
	if err := db.First(&member, "id = ?", id).Error; err != nil {
		if isNotFound(err) {
			return false, nil
		}
		return false, err
	}
	if err := db.Delete(&member).Error; err != nil {
		return false, err
	}
	return true, nil
}
