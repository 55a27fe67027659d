package model

import (
	"time"

	"github.com/google/uuid"
)

// Program is an academic offering (e.g. STEM, ABM, TVL strands) shown on the
// public programs page.
type Program struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Title        string    `gorm:"type:varchar(255);not null" json:"title"`
	Description  string    `gorm:"type:text" json:"description"`
	Details      string    `gorm:"type:text" json:"details"`
	Icon         string    `gorm:"type:varchar(100)" json:"icon"` // icon name rendered by the frontend
	DisplayOrder int       `gorm:"default:0" json:"display_order"`
	IsActive     bool      `gorm:"default:true;index" json:"is_active"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}
