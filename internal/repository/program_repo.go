package repository

import (
	"context"

	"schoolsite/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProgramRepository is the data access layer for academic programs.
type ProgramRepository interface {
	Create(ctx context.Context, p *model.Program) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Program, error)
	List(ctx context.Context, activeOnly bool) ([]model.Program, error)
	Update(ctx context.Context, p *model.Program) error
	Delete(ctx context.Context, id uuid.UUID) error
	CountActive(ctx context.Context) (int64, error)
}

type programRepository struct {
	db *gorm.DB
}

func NewProgramRepository(db *gorm.DB) ProgramRepository {
	return &programRepository{db: db}
}

func (r *programRepository) Create(ctx context.Context, p *model.Program) error {
	return GetDB(ctx, r.db).Create(p).Error
}

func (r *programRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Program, error) {
	var p model.Program
	if err := GetDB(ctx, r.db).First(&p, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *programRepository) List(ctx context.Context, activeOnly bool) ([]model.Program, error) {
	var items []model.Program
	query := GetDB(ctx, r.db).Order("display_order ASC, title ASC")
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}
	err := query.Find(&items).Error
	return items, err
}

func (r *programRepository) Update(ctx context.Context, p *model.Program) error {
	return GetDB(ctx, r.db).Save(p).Error
}

func (r *programRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return GetDB(ctx, r.db).Where("id = ?", id).Delete(&model.Program{}).Error
}

func (r *programRepository) CountActive(ctx context.Context) (int64, error) {
	var total int64
	err := GetDB(ctx, r.db).Model(&model.Program{}).Where("is_active = ?", true).Count(&total).Error
	return total, err
}
