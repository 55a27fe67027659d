package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Scholarship type constants
const (
	ScholarshipTypeAcademic  = "academic"
	ScholarshipTypeAthletic  = "athletic"
	ScholarshipTypeFinancial = "financial"
)

// Scholarship is a tuition discount program shown on the public scholarships page.
type Scholarship struct {
	ID             uuid.UUID       `gorm:"type:uuid;primaryKey" json:"id"`
	Name           string          `gorm:"type:varchar(255);not null" json:"name"`
	Type           string          `gorm:"type:varchar(30);default:'academic'" json:"type"`
	Description    string          `gorm:"type:text" json:"description"`
	DiscountAmount decimal.Decimal `gorm:"type:decimal(10,2)" json:"discount_amount"`
	DiscountNote   string          `gorm:"type:varchar(255)" json:"discount_note"` // e.g. "per semester", "full tuition"
	Eligibility    string          `gorm:"type:text" json:"eligibility"`
	DisplayOrder   int             `gorm:"default:0" json:"display_order"`
	IsActive       bool            `gorm:"default:true;index" json:"is_active"`
	CreatedAt      time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
}

// ScholarshipApplicationInfo is a singleton row describing how to apply.
type ScholarshipApplicationInfo struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Requirements string    `gorm:"type:text" json:"requirements"`
	HowToApply   string    `gorm:"type:text" json:"how_to_apply"`
	DeadlineInfo string    `gorm:"type:text" json:"deadline_info"`
	ContactInfo  string    `gorm:"type:text" json:"contact_info"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}
