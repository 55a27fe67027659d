package service

import (
	"context"
	"testing"

	"schoolsite/internal/identity"
	"schoolsite/internal/model"
	"schoolsite/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newRoleService(db *gorm.DB) RoleService {
	userRepo := repository.NewUserRepository(db)
	return NewRoleService(
		repository.NewRoleRepository(db),
		userRepo,
		repository.NewAuditRepository(db),
		repository.NewTransactionManager(db),
		identity.NewLocalProvider(userRepo),
	)
}

func TestGrantAndRevokeRole(t *testing.T) {
	db := setupTestDB(t)
	svc := newRoleService(db)
	ctx := context.Background()
	actor := createReviewer(t, db)

	user := &model.User{Email: "staff@school.edu", Name: "Staff", Password: "x"}
	require.NoError(t, db.Create(user).Error)

	t.Run("grant admin", func(t *testing.T) {
		result, err := svc.Grant(ctx, actor.ID.String(), GrantRoleRequest{
			Email: "staff@school.edu",
			Role:  model.RoleAdmin,
		})
		require.NoError(t, err)
		assert.Equal(t, model.RoleAdmin, result.Role)

		has, err := repository.NewRoleRepository(db).HasRole(ctx, user.ID, model.RoleAdmin)
		require.NoError(t, err)
		assert.True(t, has)
	})

	t.Run("grant is idempotent", func(t *testing.T) {
		_, err := svc.Grant(ctx, actor.ID.String(), GrantRoleRequest{
			Email: "staff@school.edu",
			Role:  model.RoleAdmin,
		})
		assert.NoError(t, err)

		var total int64
		db.Model(&model.UserRole{}).Where("user_id = ? AND role = ?", user.ID, model.RoleAdmin).Count(&total)
		assert.EqualValues(t, 1, total)
	})

	t.Run("unknown email", func(t *testing.T) {
		_, err := svc.Grant(ctx, actor.ID.String(), GrantRoleRequest{
			Email: "nobody@school.edu",
			Role:  model.RoleAdmin,
		})
		assert.Error(t, err)
	})

	t.Run("revoke", func(t *testing.T) {
		err := svc.Revoke(ctx, actor.ID.String(), GrantRoleRequest{
			Email: "staff@school.edu",
			Role:  model.RoleAdmin,
		})
		require.NoError(t, err)

		has, err := repository.NewRoleRepository(db).HasRole(ctx, user.ID, model.RoleAdmin)
		require.NoError(t, err)
		assert.False(t, has)
	})

	t.Run("cannot revoke own admin role", func(t *testing.T) {
		require.NoError(t, repository.NewRoleRepository(db).Grant(ctx, actor.ID, model.RoleAdmin))

		err := svc.Revoke(ctx, actor.ID.String(), GrantRoleRequest{
			Email: actor.Email,
			Role:  model.RoleAdmin,
		})
		assert.Error(t, err)

		has, err := repository.NewRoleRepository(db).HasRole(ctx, actor.ID, model.RoleAdmin)
		require.NoError(t, err)
		assert.True(t, has)
	})
}

func TestBootstrapAdmin(t *testing.T) {
	db := setupTestDB(t)
	svc := newRoleService(db)
	ctx := context.Background()

	result, err := svc.BootstrapAdmin(ctx, BootstrapAdminRequest{
		Name:     "First Admin",
		Email:    "first@school.edu",
		Password: "long-enough-password",
	})
	require.NoError(t, err)
	assert.Equal(t, model.RoleAdmin, result.Role)

	admins, err := svc.ListAdmins(ctx)
	require.NoError(t, err)
	require.Len(t, admins, 1)
	assert.Equal(t, "first@school.edu", admins[0].Email)

	_, err = svc.BootstrapAdmin(ctx, BootstrapAdminRequest{
		Name:     "Second",
		Email:    "first@school.edu",
		Password: "another-password",
	})
	assert.Error(t, err)
}
