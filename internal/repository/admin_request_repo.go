package repository

import (
	"context"
	"time"

	"schoolsite/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AdminRequestRepository is the data access layer for admin access requests.
type AdminRequestRepository interface {
	Create(ctx context.Context, req *model.AdminRequest) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.AdminRequest, error)
	FindPendingByEmail(ctx context.Context, email string) (*model.AdminRequest, error)
	List(ctx context.Context, status string, page, limit int) ([]model.AdminRequest, int64, error)
	// UpdateStatus transitions a request out of pending. The update is keyed
	// on the current status so two concurrent decisions cannot both win;
	// it returns the number of rows changed (0 means the guard lost).
	UpdateStatus(ctx context.Context, id uuid.UUID, fromStatus, toStatus string, reviewedBy uuid.UUID, reviewedAt time.Time) (int64, error)
	Delete(ctx context.Context, id uuid.UUID) error
	CountByStatus(ctx context.Context, status string) (int64, error)
}

type adminRequestRepository struct {
	db *gorm.DB
}

func NewAdminRequestRepository(db *gorm.DB) AdminRequestRepository {
	return &adminRequestRepository{db: db}
}

func (r *adminRequestRepository) Create(ctx context.Context, req *model.AdminRequest) error {
	return GetDB(ctx, r.db).Create(req).Error
}

func (r *adminRequestRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.AdminRequest, error) {
	var req model.AdminRequest
	if err := GetDB(ctx, r.db).First(&req, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &req, nil
}

func (r *adminRequestRepository) FindPendingByEmail(ctx context.Context, email string) (*model.AdminRequest, error) {
	var req model.AdminRequest
	err := GetDB(ctx, r.db).
		Where("email = ? AND status = ?", email, model.RequestStatusPending).
		First(&req).Error
	if err != nil {
		return nil, err
	}
	return &req, nil
}

func (r *adminRequestRepository) List(ctx context.Context, status string, page, limit int) ([]model.AdminRequest, int64, error) {
	var requests []model.AdminRequest
	var total int64

	db := GetDB(ctx, r.db)
	query := db.Model(&model.AdminRequest{})
	if status != "" {
		query = query.Where("status = ?", status)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * limit
	fetchQuery := db.Preload("Reviewer")
	if status != "" {
		fetchQuery = fetchQuery.Where("status = ?", status)
	}
	if err := fetchQuery.Order("created_at DESC").Offset(offset).Limit(limit).Find(&requests).Error; err != nil {
		return nil, 0, err
	}

	return requests, total, nil
}

func (r *adminRequestRepository) UpdateStatus(ctx context.Context, id uuid.UUID, fromStatus, toStatus string, reviewedBy uuid.UUID, reviewedAt time.Time) (int64, error) {
	res := GetDB(ctx, r.db).Model(&model.AdminRequest{}).
		Where("id = ? AND status = ?", id, fromStatus).
		Updates(map[string]interface{}{
			"status":      toStatus,
			"reviewed_by": reviewedBy,
			"reviewed_at": reviewedAt,
		})
	return res.RowsAffected, res.Error
}

func (r *adminRequestRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return GetDB(ctx, r.db).Where("id = ?", id).Delete(&model.AdminRequest{}).Error
}

func (r *adminRequestRepository) CountByStatus(ctx context.Context, status string) (int64, error) {
	var total int64
	err := GetDB(ctx, r.db).Model(&model.AdminRequest{}).
		Where("status = ?", status).Count(&total).Error
	return total, err
}
