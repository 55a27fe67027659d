package model

import (
	"time"

	"github.com/google/uuid"
)

const (
	// Access request workflow actions
	ActionSubmitAccessRequest  = "SUBMIT_ACCESS_REQUEST"
	ActionApproveAccessRequest = "APPROVE_ACCESS_REQUEST"
	ActionRejectAccessRequest  = "REJECT_ACCESS_REQUEST"
	ActionDeleteAccessRequest  = "DELETE_ACCESS_REQUEST"

	// Role management actions
	ActionGrantRole  = "GRANT_ROLE"
	ActionRevokeRole = "REVOKE_ROLE"

	// Content management actions
	ActionCreateContent = "CREATE_CONTENT"
	ActionUpdateContent = "UPDATE_CONTENT"
	ActionDeleteContent = "DELETE_CONTENT"
)

// AuditLog tracks Who, What, and When for admin panel changes
type AuditLog struct {
	ID         uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	UserID     *uuid.UUID `gorm:"type:uuid;index" json:"user_id"` // Nullable for anonymous public submissions
	User       *User      `gorm:"foreignKey:UserID" json:"user"`
	Action     string     `gorm:"type:varchar(50);not null;index" json:"action"`
	EntityID   string     `gorm:"type:varchar(50);index" json:"entity_id"`        // Reference string (uuid/code)
	EntityName string     `gorm:"type:varchar(255)" json:"entity_name,omitempty"` // Human readable name
	Details    string     `gorm:"type:jsonb" json:"details"`                      // Serialized JSON payload of the action
	CreatedAt  time.Time  `gorm:"index" json:"created_at"`
}
