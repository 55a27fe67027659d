package model

import (
	"time"

	"github.com/google/uuid"
)

// Singleton page-content rows. Each table holds exactly one row that the admin
// panel edits in place; the public pages read whatever is there.

// AboutContent backs the About page (history, mission/vision, principals).
type AboutContent struct {
	ID                  uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	History             string    `gorm:"type:text" json:"history"`
	MissionOld          string    `gorm:"type:text" json:"mission_old"`
	MissionNew          string    `gorm:"type:text" json:"mission_new"`
	VisionOld           string    `gorm:"type:text" json:"vision_old"`
	VisionNew           string    `gorm:"type:text" json:"vision_new"`
	CoreValues          string    `gorm:"type:jsonb" json:"core_values"` // JSON array of {title, description}
	JHSPrincipalHistory string    `gorm:"type:text" json:"jhs_principal_history"`
	SHSPrincipalHistory string    `gorm:"type:text" json:"shs_principal_history"`
	CampusMapURL        string    `gorm:"type:text" json:"campus_map_url"`
	UpdatedAt           time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// HomeContent backs the landing page hero and "why choose us" section.
type HomeContent struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	HeroTitle      string    `gorm:"type:varchar(255);not null" json:"hero_title"`
	HeroSubtitle   string    `gorm:"type:varchar(255)" json:"hero_subtitle"`
	HeroImageURL   string    `gorm:"type:text" json:"hero_image_url"`
	WhyChooseTitle string    `gorm:"type:varchar(255)" json:"why_choose_title"`
	WhyChooseItems string    `gorm:"type:jsonb" json:"why_choose_items"` // JSON array of {title, description, icon}
	UpdatedAt      time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// ContactInfo backs the Contact page.
type ContactInfo struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Address         string    `gorm:"type:text" json:"address"`
	Phone           string    `gorm:"type:varchar(50)" json:"phone"`
	Email           string    `gorm:"type:varchar(255)" json:"email"`
	OfficeHours     string    `gorm:"type:varchar(255)" json:"office_hours"`
	GoogleMapsEmbed string    `gorm:"type:text" json:"google_maps_embed"`
	SocialLinks     string    `gorm:"type:jsonb" json:"social_links"` // JSON object {facebook, ...}
	UpdatedAt       time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// EnrollmentContent backs the Enrollment page (steps per student type).
type EnrollmentContent struct {
	ID                   uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	EnrollmentDates      string    `gorm:"type:varchar(255)" json:"enrollment_dates"`
	EntranceExamSchedule string    `gorm:"type:varchar(255)" json:"entrance_exam_schedule"`
	StartOfClasses       string    `gorm:"type:varchar(255)" json:"start_of_classes"`
	NewStudentsSteps     string    `gorm:"type:jsonb" json:"new_students_steps"`      // JSON array of step strings
	IncomingStudentSteps string    `gorm:"type:jsonb" json:"incoming_students_steps"` // JSON array of step strings
	TransfereesSteps     string    `gorm:"type:jsonb" json:"transferees_steps"`       // JSON array of step strings
	ContactNumber        string    `gorm:"type:varchar(50)" json:"contact_number"`
	Notes                string    `gorm:"type:text" json:"notes"`
	UpdatedAt            time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// ImportantDate is one calendar entry shown on the enrollment page.
type ImportantDate struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Event        string    `gorm:"type:varchar(255);not null" json:"event"`
	Date         string    `gorm:"type:varchar(100);not null" json:"date"` // free-form, e.g. "June 2 to 6"
	DisplayOrder int       `gorm:"default:0" json:"display_order"`
	IsActive     bool      `gorm:"default:true;index" json:"is_active"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`
}
