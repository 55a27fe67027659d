package model

import (
	"time"

	"github.com/google/uuid"
)

// Announcement type constants
const (
	AnnouncementTypeGeneral     = "general"
	AnnouncementTypeEvent       = "event"
	AnnouncementTypeEnrollment  = "enrollment"
	AnnouncementTypeAchievement = "achievement"
)

// Announcement is a dated news item shown on the public announcements page.
// Inactive announcements stay in the database but are hidden from the public list.
type Announcement struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Title       string    `gorm:"type:varchar(255);not null" json:"title"`
	Content     string    `gorm:"type:text;not null" json:"content"`
	Date        time.Time `gorm:"not null;index" json:"date"`
	Type        string    `gorm:"type:varchar(30);default:'general'" json:"type"`
	ExternalURL string    `gorm:"type:text" json:"external_url"`
	IsActive    bool      `gorm:"default:true;index" json:"is_active"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}
