package model

import (
	"time"

	"github.com/google/uuid"
)

// Organization type constants
const (
	OrgTypeStudent = "student"
	OrgTypeFaculty = "faculty"
	OrgTypeAlumni  = "alumni"
)

// Organization is a school club or body with its own roster and photo gallery.
type Organization struct {
	ID              uuid.UUID            `gorm:"type:uuid;primaryKey" json:"id"`
	Name            string               `gorm:"type:varchar(255);not null" json:"name"`
	Type            string               `gorm:"type:varchar(30);not null" json:"type"`
	Description     string               `gorm:"type:text" json:"description"`
	LogoURL         string               `gorm:"type:text" json:"logo_url"`
	TeacherInCharge string               `gorm:"type:varchar(255)" json:"teacher_in_charge"`
	DisplayOrder    int                  `gorm:"default:0" json:"display_order"`
	IsActive        bool                 `gorm:"default:true;index" json:"is_active"`
	Members         []OrganizationMember `gorm:"foreignKey:OrganizationID;constraint:OnDelete:CASCADE;" json:"members,omitempty"`
	Photos          []OrganizationPhoto  `gorm:"foreignKey:OrganizationID;constraint:OnDelete:CASCADE;" json:"photos,omitempty"`
	CreatedAt       time.Time            `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time            `gorm:"autoUpdateTime" json:"updated_at"`
}

// OrganizationMember is one roster entry, bucketed by MemberCategory
// (e.g. officers, members, advisers).
type OrganizationMember struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	OrganizationID uuid.UUID `gorm:"type:uuid;not null;index" json:"organization_id"`
	Name           string    `gorm:"type:varchar(255);not null" json:"name"`
	Position       string    `gorm:"type:varchar(255)" json:"position"`
	Department     string    `gorm:"type:varchar(100)" json:"department"`
	MemberCategory string    `gorm:"type:varchar(100)" json:"member_category"`
	PhotoURL       string    `gorm:"type:text" json:"photo_url"`
	DisplayOrder   int       `gorm:"default:0" json:"display_order"`
	CreatedAt      time.Time `gorm:"autoCreateTime" json:"created_at"`
}

// OrganizationPhoto is one gallery image for an organization.
type OrganizationPhoto struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	OrganizationID uuid.UUID `gorm:"type:uuid;not null;index" json:"organization_id"`
	PhotoURL       string    `gorm:"type:text;not null" json:"photo_url"`
	Caption        string    `gorm:"type:varchar(255)" json:"caption"`
	DisplayOrder   int       `gorm:"default:0" json:"display_order"`
	CreatedAt      time.Time `gorm:"autoCreateTime" json:"created_at"`
}
