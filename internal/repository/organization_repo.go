package repository

import (
	"context"

	"schoolsite/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// OrganizationRepository covers organizations plus their member and photo tables.
type OrganizationRepository interface {
	Create(ctx context.Context, org *model.Organization) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Organization, error)
	// FindByIDWithRelations loads the org with its roster and gallery for the detail page.
	FindByIDWithRelations(ctx context.Context, id uuid.UUID) (*model.Organization, error)
	List(ctx context.Context, orgType string, activeOnly bool) ([]model.Organization, error)
	Update(ctx context.Context, org *model.Organization) error
	Delete(ctx context.Context, id uuid.UUID) error
	CountActive(ctx context.Context) (int64, error)

	AddMember(ctx context.Context, m *model.OrganizationMember) error
	UpdateMember(ctx context.Context, m *model.OrganizationMember) error
	FindMemberByID(ctx context.Context, id uuid.UUID) (*model.OrganizationMember, error)
	RemoveMember(ctx context.Context, id uuid.UUID) error

	AddPhoto(ctx context.Context, p *model.OrganizationPhoto) error
	FindPhotoByID(ctx context.Context, id uuid.UUID) (*model.OrganizationPhoto, error)
	RemovePhoto(ctx context.Context, id uuid.UUID) error
}

type organizationRepository struct {
	db *gorm.DB
}

func NewOrganizationRepository(db *gorm.DB) OrganizationRepository {
	return &organizationRepository{db: db}
}

func (r *organizationRepository) Create(ctx context.Context, org *model.Organization) error {
	return GetDB(ctx, r.db).Create(org).Error
}

func (r *organizationRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Organization, error) {
	var org model.Organization
	if err := GetDB(ctx, r.db).First(&org, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &org, nil
}

func (r *organizationRepository) FindByIDWithRelations(ctx context.Context, id uuid.UUID) (*model.Organization, error) {
	var org model.Organization
	err := GetDB(ctx, r.db).
		Preload("Members", func(db *gorm.DB) *gorm.DB {
			return db.Order("display_order ASC, name ASC")
		}).
		Preload("Photos", func(db *gorm.DB) *gorm.DB {
			return db.Order("display_order ASC, created_at ASC")
		}).
		First(&org, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &org, nil
}

func (r *organizationRepository) List(ctx context.Context, orgType string, activeOnly bool) ([]model.Organization, error) {
	var orgs []model.Organization
	query := GetDB(ctx, r.db).Order("display_order ASC, name ASC")
	if orgType != "" {
		query = query.Where("type = ?", orgType)
	}
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}
	err := query.Find(&orgs).Error
	return orgs, err
}

func (r *organizationRepository) Update(ctx context.Context, org *model.Organization) error {
	return GetDB(ctx, r.db).Save(org).Error
}

func (r *organizationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return GetDB(ctx, r.db).Where("id = ?", id).Delete(&model.Organization{}).Error
}

func (r *organizationRepository) CountActive(ctx context.Context) (int64, error) {
	var total int64
	err := GetDB(ctx, r.db).Model(&model.Organization{}).Where("is_active = ?", true).Count(&total).Error
	return total, err
}

func (r *organizationRepository) AddMember(ctx context.Context, m *model.OrganizationMember) error {
	return GetDB(ctx, r.db).Create(m).Error
}

func (r *organizationRepository) UpdateMember(ctx context.Context, m *model.OrganizationMember) error {
	return GetDB(ctx, r.db).Save(m).Error
}

func (r *organizationRepository) FindMemberByID(ctx context.Context, id uuid.UUID) (*model.OrganizationMember, error) {
	var m model.OrganizationMember
	if err := GetDB(ctx, r.db).First(&m, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *organizationRepository) RemoveMember(ctx context.Context, id uuid.UUID) error {
	return GetDB(ctx, r.db).Where("id = ?", id).Delete(&model.OrganizationMember{}).Error
}

func (r *organizationRepository) AddPhoto(ctx context.Context, p *model.OrganizationPhoto) error {
	return GetDB(ctx, r.db).Create(p).Error
}

func (r *organizationRepository) FindPhotoByID(ctx context.Context, id uuid.UUID) (*model.OrganizationPhoto, error) {
	var p model.OrganizationPhoto
	if err := GetDB(ctx, r.db).First(&p, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *organizationRepository) RemovePhoto(ctx context.Context, id uuid.UUID) error {
	return GetDB(ctx, r.db).Where("id = ?", id).Delete(&model.OrganizationPhoto{}).Error
}
