package database

import (
	"log"

	"schoolsite/internal/model"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// NewConnection initializes a new connection pool using GORM
func NewConnection(dsn string) (*gorm.DB, error) {
	// TranslateError turns driver-specific unique-constraint failures into
	// gorm.ErrDuplicatedKey, which the services map to conflict errors.
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, err
	}

	if err := Migrate(db); err != nil {
		log.Println("WARNING: Failed to auto-migrate models:", err)
	}

	return db, nil
}

// Migrate runs auto-migration for every model in the schema. Exposed so tests
// can run it against their own database.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.User{},
		&model.UserRole{},
		&model.RefreshToken{},
		&model.AdminRequest{},
		&model.AuditLog{},
		&model.Announcement{},
		&model.Personnel{},
		&model.HistoricalPersonnel{},
		&model.Program{},
		&model.Scholarship{},
		&model.ScholarshipApplicationInfo{},
		&model.Organization{},
		&model.OrganizationMember{},
		&model.OrganizationPhoto{},
		&model.AboutContent{},
		&model.HomeContent{},
		&model.ContactInfo{},
		&model.EnrollmentContent{},
		&model.ImportantDate{},
	)
}
