package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PublicationType tag
type PublicationType string

const (
	PublicationJournal    PublicationType = "journal"
	PublicationConference PublicationType = "conference"
)

// ensureID fills in a generated identifier unless one was set by the caller
// (the lab-settings singleton carries a fixed id).
func ensureID(id string) string {
	if id != "" {
		return id
	}
	return uuid.NewString()
}

// Publication model
type Publication struct {
	ID           string          `gorm:"primaryKey" json:"id"`
	Title        string          `gorm:"not null" json:"title"`
	Journal      *string         `json:"journal,omitempty"`
	Conference   *string         `json:"conference,omitempty"`
	Year         int             `gorm:"index" json:"year"`
	Type         PublicationType `json:"type"`
	Abstract     string          `json:"abstract"`
	PDFUrl       *string         `gorm:"column:pdf_url" json:"pdfUrl,omitempty"`
	ImageURL     *string         `gorm:"column:image_url" json:"imageUrl,omitempty"`
	DisplayOrder int             `gorm:"default:0" json:"displayOrder"`
	AuthorID     string          `gorm:"column:author_id" json:"authorId"`
	CreatedAt    time.Time       `json:"createdAt"`

	Authors []Author `gorm:"foreignKey:PublicationID;constraint:OnDelete:CASCADE" json:"authors,omitempty"`
}

func (Publication) TableName() string {
	return "publications"
}

func (p *Publication) BeforeCreate(tx *gorm.DB) error {
	p.ID = ensureID(p.ID)
	return nil
}

// Author is a publication-scoped author entry, deleted with its publication.
type Author struct {
	ID            string  `gorm:"primaryKey" json:"id"`
	Name          string  `gorm:"not null" json:"name"`
	Homepage      *string `json:"homepage,omitempty"`
	DisplayOrder  int     `gorm:"default:0" json:"displayOrder"`
	PublicationID string  `gorm:"column:publication_id;index" json:"publicationId"`
}

func (Author) TableName() string {
	return "authors"
}

func (a *Author) BeforeCreate(tx *gorm.DB) error {
	a.ID = ensureID(a.ID)
	return nil
}

// ResearchProject model
type ResearchProject struct {
	ID             string    `gorm:"primaryKey" json:"id"`
	Title          string    `gorm:"not null" json:"title"`
	Description    string    `json:"description"`
	Category       string    `json:"category"`
	Date           string    `json:"date"`
	LeadResearcher string    `json:"leadResearcher"`
	ImageURL       *string   `gorm:"column:image_url" json:"imageUrl,omitempty"`
	Order          int       `gorm:"column:display_order;default:0" json:"order"`
	AuthorID       *string   `gorm:"column:author_id" json:"authorId,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
}

func (ResearchProject) TableName() string {
	return "research_projects"
}

func (p *ResearchProject) BeforeCreate(tx *gorm.DB) error {
	p.ID = ensureID(p.ID)
	return nil
}

// News model
type News struct {
	ID          string    `gorm:"primaryKey" json:"id"`
	Title       string    `gorm:"not null" json:"title"`
	Content     string    `json:"content"`
	Summary     *string   `json:"summary,omitempty"`
	ImageURL    *string   `gorm:"column:image_url" json:"imageUrl,omitempty"`
	PublishedAt time.Time `gorm:"index" json:"publishedAt"`
	IsPublished bool      `gorm:"default:true" json:"isPublished"`
	AuthorID    string    `gorm:"column:author_id" json:"authorId"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func (News) TableName() string {
	return "news"
}

func (n *News) BeforeCreate(tx *gorm.DB) error {
	n.ID = ensureID(n.ID)
	return nil
}

// Member model. Degree, status and joinedAt are free text; the store layer
// classifies degree/status into display buckets.
type Member struct {
	ID                string  `gorm:"primaryKey" json:"id"`
	Name              string  `gorm:"not null;index" json:"name"`
	Degree            string  `json:"degree"`
	Email             *string `json:"email,omitempty"`
	ImageURL          *string `gorm:"column:image_url" json:"imageUrl,omitempty"`
	Homepage          *string `json:"homepage,omitempty"`
	JoinedAt          string  `gorm:"column:joined_at" json:"joinedAt"`
	Status            string  `gorm:"default:current" json:"status"`
	Bio               *string `json:"bio,omitempty"`
	ResearchInterests *string `gorm:"column:research_interests" json:"researchInterests,omitempty"`
}

func (Member) TableName() string {
	return "members"
}

func (m *Member) BeforeCreate(tx *gorm.DB) error {
	m.ID = ensureID(m.ID)
	return nil
}

// ResearchArea model. ParentID is nullable; null means a root-level area.
// There is no cycle guard on the parent relation, so consumers must bound
// any traversal depth themselves.
type ResearchArea struct {
	ID          string    `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"not null" json:"name"`
	Description *string   `json:"description,omitempty"`
	ParentID    *string   `gorm:"column:parent_id;index" json:"parentId,omitempty"`
	ImageURL    *string   `gorm:"column:image_url" json:"imageUrl,omitempty"`
	Order       int       `gorm:"column:display_order;default:0" json:"order"`
	IsActive    bool      `gorm:"default:true" json:"isActive"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func (ResearchArea) TableName() string {
	return "research_areas"
}

func (a *ResearchArea) BeforeCreate(tx *gorm.DB) error {
	a.ID = ensureID(a.ID)
	return nil
}

// LabInfo holds the lab-wide settings. Exactly one row exists, keyed by a
// fixed sentinel id owned by the store layer.
type LabInfo struct {
	ID                    string    `gorm:"primaryKey" json:"id"`
	LabName               string    `gorm:"not null" json:"labName"`
	PrincipalInvestigator string    `json:"principalInvestigator"`
	PITitle               string    `gorm:"column:pi_title" json:"piTitle"`
	PIEmail               *string   `gorm:"column:pi_email" json:"piEmail,omitempty"`
	PIPhone               *string   `gorm:"column:pi_phone" json:"piPhone,omitempty"`
	PIPhoto               *string   `gorm:"column:pi_photo" json:"piPhoto,omitempty"`
	PIBio                 *string   `gorm:"column:pi_bio" json:"piBio,omitempty"`
	Description           *string   `json:"description,omitempty"`
	Address               string    `json:"address"`
	Latitude              *string   `json:"latitude,omitempty"`
	Longitude             *string   `json:"longitude,omitempty"`
	Building              *string   `json:"building,omitempty"`
	Room                  *string   `json:"room,omitempty"`
	University            string    `json:"university"`
	Department            string    `json:"department"`
	Website               *string   `json:"website,omitempty"`
	EstablishedYear       *string   `gorm:"column:established_year" json:"establishedYear,omitempty"`
	ResearchFocus         *string   `gorm:"column:research_focus" json:"researchFocus,omitempty"`
	ContactEmail          string    `gorm:"column:contact_email" json:"contactEmail"`
	ContactPhone          *string   `gorm:"column:contact_phone" json:"contactPhone,omitempty"`
	OfficeHours           *string   `gorm:"column:office_hours" json:"officeHours,omitempty"`
	CreatedAt             time.Time `json:"createdAt"`
	UpdatedAt             time.Time `json:"updatedAt"`
}

func (LabInfo) TableName() string {
	return "lab_info"
}

// ContactMessage stores a contact-form submission for later review.
type ContactMessage struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"not null" json:"name"`
	Email     string    `gorm:"not null" json:"email"`
	Subject   string    `json:"subject"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"createdAt"`
}

func (ContactMessage) TableName() string {
	return "contact_messages"
}

func (m *ContactMessage) BeforeCreate(tx *gorm.DB) error {
	m.ID = ensureID(m.ID)
	return nil
}
