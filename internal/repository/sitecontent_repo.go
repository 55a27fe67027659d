package repository

import (
	"context"

	"schoolsite/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SiteContentRepository covers the singleton page-content tables and the
// important-dates calendar.
type SiteContentRepository interface {
	GetAbout(ctx context.Context) (*model.AboutContent, error)
	SaveAbout(ctx context.Context, c *model.AboutContent) error
	GetHome(ctx context.Context) (*model.HomeContent, error)
	SaveHome(ctx context.Context, c *model.HomeContent) error
	GetContact(ctx context.Context) (*model.ContactInfo, error)
	SaveContact(ctx context.Context, c *model.ContactInfo) error
	GetEnrollment(ctx context.Context) (*model.EnrollmentContent, error)
	SaveEnrollment(ctx context.Context, c *model.EnrollmentContent) error

	ListImportantDates(ctx context.Context, activeOnly bool) ([]model.ImportantDate, error)
	CreateImportantDate(ctx context.Context, d *model.ImportantDate) error
	FindImportantDateByID(ctx context.Context, id uuid.UUID) (*model.ImportantDate, error)
	UpdateImportantDate(ctx context.Context, d *model.ImportantDate) error
	DeleteImportantDate(ctx context.Context, id uuid.UUID) error
}

type siteContentRepository struct {
	db *gorm.DB
}

func NewSiteContentRepository(db *gorm.DB) SiteContentRepository {
	return &siteContentRepository{db: db}
}

func (r *siteContentRepository) GetAbout(ctx context.Context) (*model.AboutContent, error) {
	var c model.AboutContent
	if err := GetDB(ctx, r.db).First(&c).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *siteContentRepository) SaveAbout(ctx context.Context, c *model.AboutContent) error {
	return GetDB(ctx, r.db).Save(c).Error
}

func (r *siteContentRepository) GetHome(ctx context.Context) (*model.HomeContent, error) {
	var c model.HomeContent
	if err := GetDB(ctx, r.db).First(&c).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *siteContentRepository) SaveHome(ctx context.Context, c *model.HomeContent) error {
	return GetDB(ctx, r.db).Save(c).Error
}

func (r *siteContentRepository) GetContact(ctx context.Context) (*model.ContactInfo, error) {
	var c model.ContactInfo
	if err := GetDB(ctx, r.db).First(&c).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *siteContentRepository) SaveContact(ctx context.Context, c *model.ContactInfo) error {
	return GetDB(ctx, r.db).Save(c).Error
}

func (r *siteContentRepository) GetEnrollment(ctx context.Context) (*model.EnrollmentContent, error) {
	var c model.EnrollmentContent
	if err := GetDB(ctx, r.db).First(&c).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *siteContentRepository) SaveEnrollment(ctx context.Context, c *model.EnrollmentContent) error {
	return GetDB(ctx, r.db).Save(c).Error
}

func (r *siteContentRepository) ListImportantDates(ctx context.Context, activeOnly bool) ([]model.ImportantDate, error) {
	var dates []model.ImportantDate
	query := GetDB(ctx, r.db).Order("display_order ASC, created_at ASC")
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}
	err := query.Find(&dates).Error
	return dates, err
}

func (r *siteContentRepository) CreateImportantDate(ctx context.Context, d *model.ImportantDate) error {
	return GetDB(ctx, r.db).Create(d).Error
}

func (r *siteContentRepository) FindImportantDateByID(ctx context.Context, id uuid.UUID) (*model.ImportantDate, error) {
	var d model.ImportantDate
	if err := GetDB(ctx, r.db).First(&d, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *siteContentRepository) UpdateImportantDate(ctx context.Context, d *model.ImportantDate) error {
	return GetDB(ctx, r.db).Save(d).Error
}

func (r *siteContentRepository) DeleteImportantDate(ctx context.Context, id uuid.UUID) error {
	return GetDB(ctx, r.db).Where("id = ?", id).Delete(&model.ImportantDate{}).Error
}
