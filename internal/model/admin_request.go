package model

import (
	"time"

	"github.com/google/uuid"
)

// AdminRequest status constants
const (
	RequestStatusPending  = "pending"
	RequestStatusApproved = "approved"
	RequestStatusRejected = "rejected"
)

// AdminRequest represents a public request for admin panel access.
// A request is created pending and moves exactly once to approved or rejected;
// approval provisions an account with the identity provider.
type AdminRequest struct {
	ID         uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	Name       string     `gorm:"type:varchar(255);not null" json:"name"`
	Email      string     `gorm:"type:varchar(255);not null;index;uniqueIndex:uniq_pending_request_email,where:status = 'pending'" json:"email"`
	Reason     string     `gorm:"type:text" json:"reason"`
	Status     string     `gorm:"type:varchar(20);not null;default:'pending';index" json:"status"`
	ReviewedBy *uuid.UUID `gorm:"type:uuid" json:"reviewed_by"`
	Reviewer   *User      `gorm:"foreignKey:ReviewedBy" json:"reviewer,omitempty"`
	ReviewedAt *time.Time `json:"reviewed_at"` // null exactly while pending
	CreatedAt  time.Time  `gorm:"autoCreateTime;index" json:"created_at"`
}

// IsPending reports whether the request still awaits a decision
func (r *AdminRequest) IsPending() bool {
	return r.Status == RequestStatusPending
}
