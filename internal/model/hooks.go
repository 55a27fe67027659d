package model

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// IDs are generated client-side so the schema is portable across databases.

func ensureID(id *uuid.UUID) {
	if *id == uuid.Nil {
		*id = uuid.New()
	}
}

func (u *User) BeforeCreate(tx *gorm.DB) error                       { ensureID(&u.ID); return nil }
func (r *UserRole) BeforeCreate(tx *gorm.DB) error                   { ensureID(&r.ID); return nil }
func (t *RefreshToken) BeforeCreate(tx *gorm.DB) error               { ensureID(&t.ID); return nil }
func (r *AdminRequest) BeforeCreate(tx *gorm.DB) error               { ensureID(&r.ID); return nil }
func (l *AuditLog) BeforeCreate(tx *gorm.DB) error                   { ensureID(&l.ID); return nil }
func (a *Announcement) BeforeCreate(tx *gorm.DB) error               { ensureID(&a.ID); return nil }
func (p *Personnel) BeforeCreate(tx *gorm.DB) error                  { ensureID(&p.ID); return nil }
func (p *HistoricalPersonnel) BeforeCreate(tx *gorm.DB) error        { ensureID(&p.ID); return nil }
func (p *Program) BeforeCreate(tx *gorm.DB) error                    { ensureID(&p.ID); return nil }
func (s *Scholarship) BeforeCreate(tx *gorm.DB) error                { ensureID(&s.ID); return nil }
func (i *ScholarshipApplicationInfo) BeforeCreate(tx *gorm.DB) error { ensureID(&i.ID); return nil }
func (o *Organization) BeforeCreate(tx *gorm.DB) error               { ensureID(&o.ID); return nil }
func (m *OrganizationMember) BeforeCreate(tx *gorm.DB) error         { ensureID(&m.ID); return nil }
func (p *OrganizationPhoto) BeforeCreate(tx *gorm.DB) error          { ensureID(&p.ID); return nil }
func (c *AboutContent) BeforeCreate(tx *gorm.DB) error               { ensureID(&c.ID); return nil }
func (c *HomeContent) BeforeCreate(tx *gorm.DB) error                { ensureID(&c.ID); return nil }
func (c *ContactInfo) BeforeCreate(tx *gorm.DB) error                { ensureID(&c.ID); return nil }
func (c *EnrollmentContent) BeforeCreate(tx *gorm.DB) error          { ensureID(&c.ID); return nil }
func (d *ImportantDate) BeforeCreate(tx *gorm.DB) error              { ensureID(&d.ID); return nil }
