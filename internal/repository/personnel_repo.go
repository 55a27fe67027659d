package repository

import (
	"context"

	"schoolsite/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PersonnelRepository covers both current and historical personnel tables.
type PersonnelRepository interface {
	Create(ctx context.Context, p *model.Personnel) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Personnel, error)
	ListActive(ctx context.Context) ([]model.Personnel, error)
	ListAll(ctx context.Context, department string) ([]model.Personnel, error)
	Update(ctx context.Context, p *model.Personnel) error
	Delete(ctx context.Context, id uuid.UUID) error
	CountActive(ctx context.Context) (int64, error)

	CreateHistorical(ctx context.Context, p *model.HistoricalPersonnel) error
	FindHistoricalByID(ctx context.Context, id uuid.UUID) (*model.HistoricalPersonnel, error)
	ListHistorical(ctx context.Context, category string, activeOnly bool) ([]model.HistoricalPersonnel, error)
	UpdateHistorical(ctx context.Context, p *model.HistoricalPersonnel) error
	DeleteHistorical(ctx context.Context, id uuid.UUID) error
}

type personnelRepository struct {
	db *gorm.DB
}

func NewPersonnelRepository(db *gorm.DB) PersonnelRepository {
	return &personnelRepository{db: db}
}

func (r *personnelRepository) Create(ctx context.Context, p *model.Personnel) error {
	return GetDB(ctx, r.db).Create(p).Error
}

func (r *personnelRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Personnel, error) {
	var p model.Personnel
	if err := GetDB(ctx, r.db).First(&p, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *personnelRepository) ListActive(ctx context.Context) ([]model.Personnel, error) {
	var items []model.Personnel
	err := GetDB(ctx, r.db).
		Where("is_active = ?", true).
		Order("department ASC, display_order ASC, name ASC").
		Find(&items).Error
	return items, err
}

func (r *personnelRepository) ListAll(ctx context.Context, department string) ([]model.Personnel, error) {
	var items []model.Personnel
	query := GetDB(ctx, r.db).Order("department ASC, display_order ASC, name ASC")
	if department != "" {
		query = query.Where("department = ?", department)
	}
	err := query.Find(&items).Error
	return items, err
}

func (r *personnelRepository) Update(ctx context.Context, p *model.Personnel) error {
	return GetDB(ctx, r.db).Save(p).Error
}

func (r *personnelRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return GetDB(ctx, r.db).Where("id = ?", id).Delete(&model.Personnel{}).Error
}

func (r *personnelRepository) CountActive(ctx context.Context) (int64, error) {
	var total int64
	err := GetDB(ctx, r.db).Model(&model.Personnel{}).Where("is_active = ?", true).Count(&total).Error
	return total, err
}

func (r *personnelRepository) CreateHistorical(ctx context.Context, p *model.HistoricalPersonnel) error {
	return GetDB(ctx, r.db).Create(p).Error
}

func (r *personnelRepository) FindHistoricalByID(ctx context.Context, id uuid.UUID) (*model.HistoricalPersonnel, error) {
	var p model.HistoricalPersonnel
	if err := GetDB(ctx, r.db).First(&p, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *personnelRepository) ListHistorical(ctx context.Context, category string, activeOnly bool) ([]model.HistoricalPersonnel, error) {
	var items []model.HistoricalPersonnel
	query := GetDB(ctx, r.db).Order("category ASC, display_order ASC, name ASC")
	if category != "" {
		query = query.Where("category = ?", category)
	}
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}
	err := query.Find(&items).Error
	return items, err
}

func (r *personnelRepository) UpdateHistorical(ctx context.Context, p *model.HistoricalPersonnel) error {
	return GetDB(ctx, r.db).Save(p).Error
}

func (r *personnelRepository) DeleteHistorical(ctx context.Context, id uuid.UUID) error {
	return GetDB(ctx, r.db).Where("id = ?", id).Delete(&model.HistoricalPersonnel{}).Error
}
