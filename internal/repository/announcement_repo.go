package repository

import (
	"context"

	"schoolsite/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AnnouncementRepository is the data access layer for announcements.
type AnnouncementRepository interface {
	Create(ctx context.Context, a *model.Announcement) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Announcement, error)
	// ListActive returns only active announcements for the public page, newest date first.
	ListActive(ctx context.Context, page, limit int) ([]model.Announcement, int64, error)
	// ListAll returns everything for the admin panel, optionally filtered by type.
	ListAll(ctx context.Context, annType string, page, limit int) ([]model.Announcement, int64, error)
	Update(ctx context.Context, a *model.Announcement) error
	Delete(ctx context.Context, id uuid.UUID) error
	CountActive(ctx context.Context) (int64, error)
}

type announcementRepository struct {
	db *gorm.DB
}

func NewAnnouncementRepository(db *gorm.DB) AnnouncementRepository {
	return &announcementRepository{db: db}
}

func (r *announcementRepository) Create(ctx context.Context, a *model.Announcement) error {
	return GetDB(ctx, r.db).Create(a).Error
}

func (r *announcementRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Announcement, error) {
	var a model.Announcement
	if err := GetDB(ctx, r.db).First(&a, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *announcementRepository) ListActive(ctx context.Context, page, limit int) ([]model.Announcement, int64, error) {
	var items []model.Announcement
	var total int64

	db := GetDB(ctx, r.db)
	if err := db.Model(&model.Announcement{}).Where("is_active = ?", true).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * limit
	if err := db.Where("is_active = ?", true).
		Order("date DESC").Offset(offset).Limit(limit).Find(&items).Error; err != nil {
		return nil, 0, err
	}

	return items, total, nil
}

func (r *announcementRepository) ListAll(ctx context.Context, annType string, page, limit int) ([]model.Announcement, int64, error) {
	var items []model.Announcement
	var total int64

	db := GetDB(ctx, r.db)
	query := db.Model(&model.Announcement{})
	if annType != "" {
		query = query.Where("type = ?", annType)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * limit
	fetchQuery := db.Order("date DESC").Offset(offset).Limit(limit)
	if annType != "" {
		fetchQuery = fetchQuery.Where("type = ?", annType)
	}
	if err := fetchQuery.Find(&items).Error; err != nil {
		return nil, 0, err
	}

	return items, total, nil
}

func (r *announcementRepository) Update(ctx context.Context, a *model.Announcement) error {
	return GetDB(ctx, r.db).Save(a).Error
}

func (r *announcementRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return GetDB(ctx, r.db).Where("id = ?", id).Delete(&model.Announcement{}).Error
}

func (r *announcementRepository) CountActive(ctx context.Context) (int64, error) {
	var total int64
	err := GetDB(ctx, r.db).Model(&model.Announcement{}).Where("is_active = ?", true).Count(&total).Error
	return total, err
}
