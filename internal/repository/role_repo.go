package repository

import (
	"context"
	"errors"

	"schoolsite/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RoleRepository reads and mutates the user_roles table. HasRole is the
// admin-gate lookup: (user, role-table) -> bool.
type RoleRepository interface {
	HasRole(ctx context.Context, userID uuid.UUID, role string) (bool, error)
	Grant(ctx context.Context, userID uuid.UUID, role string) error
	Revoke(ctx context.Context, userID uuid.UUID, role string) error
	ListByRole(ctx context.Context, role string) ([]model.UserRole, error)
}

type roleRepository struct {
	db *gorm.DB
}

func NewRoleRepository(db *gorm.DB) RoleRepository {
	return &roleRepository{db: db}
}

func (r *roleRepository) HasRole(ctx context.Context, userID uuid.UUID, role string) (bool, error) {
	var ur model.UserRole
	err := GetDB(ctx, r.db).
		Where("user_id = ? AND role = ?", userID, role).
		First(&ur).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (r *roleRepository) Grant(ctx context.Context, userID uuid.UUID, role string) error {
	// Granting an already-held role is a no-op
	held, err := r.HasRole(ctx, userID, role)
	if err != nil {
		return err
	}
	if held {
		return nil
	}
	return GetDB(ctx, r.db).Create(&model.UserRole{UserID: userID, Role: role}).Error
}

func (r *roleRepository) Revoke(ctx context.Context, userID uuid.UUID, role string) error {
	return GetDB(ctx, r.db).
		Where("user_id = ? AND role = ?", userID, role).
		Delete(&model.UserRole{}).Error
}

func (r *roleRepository) ListByRole(ctx context.Context, role string) ([]model.UserRole, error) {
	var roles []model.UserRole
	err := GetDB(ctx, r.db).Preload("User").
		Where("role = ?", role).
		Order("created_at ASC").
		Find(&roles).Error
	return roles, err
}
