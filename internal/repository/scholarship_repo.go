package repository

import (
	"context"

	"schoolsite/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ScholarshipRepository is the data access layer for scholarships and the
// singleton application-info row.
type ScholarshipRepository interface {
	Create(ctx context.Context, s *model.Scholarship) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Scholarship, error)
	List(ctx context.Context, schType string, activeOnly bool) ([]model.Scholarship, error)
	Update(ctx context.Context, s *model.Scholarship) error
	Delete(ctx context.Context, id uuid.UUID) error
	CountActive(ctx context.Context) (int64, error)

	GetApplicationInfo(ctx context.Context) (*model.ScholarshipApplicationInfo, error)
	SaveApplicationInfo(ctx context.Context, info *model.ScholarshipApplicationInfo) error
}

type scholarshipRepository struct {
	db *gorm.DB
}

func NewScholarshipRepository(db *gorm.DB) ScholarshipRepository {
	return &scholarshipRepository{db: db}
}

func (r *scholarshipRepository) Create(ctx context.Context, s *model.Scholarship) error {
	return GetDB(ctx, r.db).Create(s).Error
}

func (r *scholarshipRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Scholarship, error) {
	var s model.Scholarship
	if err := GetDB(ctx, r.db).First(&s, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *scholarshipRepository) List(ctx context.Context, schType string, activeOnly bool) ([]model.Scholarship, error) {
	var items []model.Scholarship
	query := GetDB(ctx, r.db).Order("display_order ASC, name ASC")
	if schType != "" {
		query = query.Where("type = ?", schType)
	}
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}
	err := query.Find(&items).Error
	return items, err
}

func (r *scholarshipRepository) Update(ctx context.Context, s *model.Scholarship) error {
	return GetDB(ctx, r.db).Save(s).Error
}

func (r *scholarshipRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return GetDB(ctx, r.db).Where("id = ?", id).Delete(&model.Scholarship{}).Error
}

func (r *scholarshipRepository) CountActive(ctx context.Context) (int64, error) {
	var total int64
	err := GetDB(ctx, r.db).Model(&model.Scholarship{}).Where("is_active = ?", true).Count(&total).Error
	return total, err
}

func (r *scholarshipRepository) GetApplicationInfo(ctx context.Context) (*model.ScholarshipApplicationInfo, error) {
	var info model.ScholarshipApplicationInfo
	if err := GetDB(ctx, r.db).First(&info).Error; err != nil {
		return nil, err
	}
	return &info, nil
}

func (r *scholarshipRepository) SaveApplicationInfo(ctx context.Context, info *model.ScholarshipApplicationInfo) error {
	return GetDB(ctx, r.db).Save(info).Error
}
