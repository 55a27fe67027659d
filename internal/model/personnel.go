package model

import (
	"time"

	"github.com/google/uuid"
)

// Personnel is a current staff member listed in the public directory,
// grouped by department and ordered by DisplayOrder within each group.
type Personnel struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name         string    `gorm:"type:varchar(255);not null" json:"name"`
	Position     string    `gorm:"type:varchar(255);not null" json:"position"`
	Department   string    `gorm:"type:varchar(100);index" json:"department"`
	Email        string    `gorm:"type:varchar(255)" json:"email"`
	Phone        string    `gorm:"type:varchar(30)" json:"phone"`
	PhotoURL     string    `gorm:"type:text" json:"photo_url"`
	Description  string    `gorm:"type:text" json:"description"`
	DisplayOrder int       `gorm:"default:0" json:"display_order"`
	IsActive     bool      `gorm:"default:true;index" json:"is_active"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// HistoricalPersonnel records past principals and other notable staff,
// bucketed by category (e.g. former principals, founders).
type HistoricalPersonnel struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name         string    `gorm:"type:varchar(255);not null" json:"name"`
	Position     string    `gorm:"type:varchar(255);not null" json:"position"`
	Category     string    `gorm:"type:varchar(100);not null;index" json:"category"`
	Years        string    `gorm:"type:varchar(100)" json:"years"` // free-form range, e.g. "1998–2004"
	PhotoURL     string    `gorm:"type:text" json:"photo_url"`
	DisplayOrder int       `gorm:"default:0" json:"display_order"`
	IsActive     bool      `gorm:"default:true;index" json:"is_active"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}
