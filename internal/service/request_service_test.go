package service

import (
	"context"
	"errors"
	"testing"

	"schoolsite/internal/database"
	"schoolsite/internal/identity"
	"schoolsite/internal/model"
	"schoolsite/internal/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("Failed to connect to database: %v", err)
	}

	if err := database.Migrate(db); err != nil {
		t.Fatalf("Failed to migrate database: %v", err)
	}

	return db
}

func newRequestService(t *testing.T, db *gorm.DB) AdminRequestService {
	userRepo := repository.NewUserRepository(db)
	return NewAdminRequestService(
		repository.NewAdminRequestRepository(db),
		repository.NewAuditRepository(db),
		repository.NewTransactionManager(db),
		identity.NewLocalProvider(userRepo),
		nil,
		nil,
	)
}

func createReviewer(t *testing.T, db *gorm.DB) *model.User {
	t.Helper()
	reviewer := &model.User{
		Email:    "reviewer@school.edu",
		Name:     "Reviewer",
		Password: "x",
	}
	require.NoError(t, db.Create(reviewer).Error)
	return reviewer
}

func TestSubmitRequest(t *testing.T) {
	db := setupTestDB(t)
	svc := newRequestService(t, db)
	ctx := context.Background()

	t.Run("creates a pending request", func(t *testing.T) {
		result, err := svc.Submit(ctx, SubmitRequestDTO{
			Name:   "Jamie Cruz",
			Email:  "jamie@school.edu",
			Reason: "Handles announcements",
		})
		require.NoError(t, err)
		assert.Equal(t, model.RequestStatusPending, result.Status)
		assert.Nil(t, result.ReviewedAt)
		assert.Nil(t, result.ReviewedBy)

		var stored model.AdminRequest
		require.NoError(t, db.First(&stored, "email = ?", "jamie@school.edu").Error)
		assert.Equal(t, "Jamie Cruz", stored.Name)
		assert.True(t, stored.IsPending())

		var auditCount int64
		db.Model(&model.AuditLog{}).Where("action = ?", model.ActionSubmitAccessRequest).Count(&auditCount)
		assert.EqualValues(t, 1, auditCount)
	})

	t.Run("rejects a duplicate pending email", func(t *testing.T) {
		_, err := svc.Submit(ctx, SubmitRequestDTO{
			Name:  "Jamie Again",
			Email: "jamie@school.edu",
		})
		assert.ErrorIs(t, err, ErrDuplicatePendingRequest)

		var total int64
		db.Model(&model.AdminRequest{}).Where("email = ?", "jamie@school.edu").Count(&total)
		assert.EqualValues(t, 1, total)
	})

	t.Run("validates before touching the store", func(t *testing.T) {
		_, err := svc.Submit(ctx, SubmitRequestDTO{Name: "", Email: "someone@school.edu"})
		require.Error(t, err)

		_, err = svc.Submit(ctx, SubmitRequestDTO{Name: "Someone", Email: "not-an-email"})
		require.Error(t, err)

		var total int64
		db.Model(&model.AdminRequest{}).Where("email IN ?", []string{"someone@school.edu", "not-an-email"}).Count(&total)
		assert.EqualValues(t, 0, total)
	})

	t.Run("index backstops a duplicate that slips past the pre-check", func(t *testing.T) {
		repo := repository.NewAdminRequestRepository(db)

		first := &model.AdminRequest{Name: "Riley Tan", Email: "riley@school.edu", Status: model.RequestStatusPending}
		require.NoError(t, repo.Create(ctx, first))

		second := &model.AdminRequest{Name: "Riley Tan", Email: "riley@school.edu", Status: model.RequestStatusPending}
		err := repo.Create(ctx, second)
		require.Error(t, err)
		assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)
	})

	t.Run("allows resubmission after a decision", func(t *testing.T) {
		reviewer := createReviewer(t, db)

		var pending model.AdminRequest
		require.NoError(t, db.First(&pending, "email = ?", "jamie@school.edu").Error)
		_, err := svc.Reject(ctx, pending.ID.String(), reviewer.ID.String())
		require.NoError(t, err)

		_, err = svc.Submit(ctx, SubmitRequestDTO{
			Name:  "Jamie Cruz",
			Email: "jamie@school.edu",
		})
		assert.NoError(t, err)
	})
}

func TestApproveRequest(t *testing.T) {
	db := setupTestDB(t)
	svc := newRequestService(t, db)
	ctx := context.Background()
	reviewer := createReviewer(t, db)

	submit := func(t *testing.T, email string) AdminRequestResponse {
		t.Helper()
		result, err := svc.Submit(ctx, SubmitRequestDTO{Name: "Alex Reyes", Email: email})
		require.NoError(t, err)
		return result
	}

	t.Run("marks approved and provisions a confirmed account", func(t *testing.T) {
		submitted := submit(t, "alex@school.edu")

		result, err := svc.Approve(ctx, submitted.ID, reviewer.ID.String())
		require.NoError(t, err)
		assert.Equal(t, model.RequestStatusApproved, result.Status)
		require.NotNil(t, result.ReviewedAt)
		require.NotNil(t, result.ReviewedBy)
		assert.Equal(t, reviewer.ID.String(), *result.ReviewedBy)

		var account model.User
		require.NoError(t, db.First(&account, "email = ?", "alex@school.edu").Error)
		assert.True(t, account.EmailConfirmed)
		assert.NotEmpty(t, account.Password)

		// Approval provisions the account but grants no role
		var roleCount int64
		db.Model(&model.UserRole{}).Where("user_id = ?", account.ID).Count(&roleCount)
		assert.EqualValues(t, 0, roleCount)
	})

	t.Run("existing account is not fatal", func(t *testing.T) {
		submitted := submit(t, "reviewer@school.edu")

		result, err := svc.Approve(ctx, submitted.ID, reviewer.ID.String())
		require.NoError(t, err)
		assert.Equal(t, model.RequestStatusApproved, result.Status)

		var total int64
		db.Model(&model.User{}).Where("email = ?", "reviewer@school.edu").Count(&total)
		assert.EqualValues(t, 1, total)
	})

	t.Run("refuses a second decision", func(t *testing.T) {
		submitted := submit(t, "taylor@school.edu")
		_, err := svc.Approve(ctx, submitted.ID, reviewer.ID.String())
		require.NoError(t, err)

		_, err = svc.Approve(ctx, submitted.ID, reviewer.ID.String())
		assert.ErrorIs(t, err, ErrRequestAlreadyReviewed)
		_, err = svc.Reject(ctx, submitted.ID, reviewer.ID.String())
		assert.ErrorIs(t, err, ErrRequestAlreadyReviewed)
	})

	t.Run("provisioning failure leaves the request pending", func(t *testing.T) {
		submitted := submit(t, "morgan@school.edu")

		failing := NewAdminRequestService(
			repository.NewAdminRequestRepository(db),
			repository.NewAuditRepository(db),
			repository.NewTransactionManager(db),
			failingProvider{},
			nil,
			nil,
		)

		_, err := failing.Approve(ctx, submitted.ID, reviewer.ID.String())
		require.Error(t, err)
		assert.NotErrorIs(t, err, ErrRequestAlreadyReviewed)

		var stored model.AdminRequest
		require.NoError(t, db.First(&stored, "email = ?", "morgan@school.edu").Error)
		assert.True(t, stored.IsPending())
		assert.Nil(t, stored.ReviewedAt)
	})

	t.Run("unknown id", func(t *testing.T) {
		_, err := svc.Approve(ctx, uuid.NewString(), reviewer.ID.String())
		assert.ErrorIs(t, err, ErrRequestNotFound)
	})
}

func TestRejectRequest(t *testing.T) {
	db := setupTestDB(t)
	svc := newRequestService(t, db)
	ctx := context.Background()
	reviewer := createReviewer(t, db)

	submitted, err := svc.Submit(ctx, SubmitRequestDTO{Name: "Sam Ocampo", Email: "sam@school.edu"})
	require.NoError(t, err)

	result, err := svc.Reject(ctx, submitted.ID, reviewer.ID.String())
	require.NoError(t, err)
	assert.Equal(t, model.RequestStatusRejected, result.Status)
	require.NotNil(t, result.ReviewedAt)

	// Rejection never touches the identity provider
	var accounts int64
	db.Model(&model.User{}).Where("email = ?", "sam@school.edu").Count(&accounts)
	assert.EqualValues(t, 0, accounts)

	_, err = svc.Reject(ctx, submitted.ID, reviewer.ID.String())
	assert.ErrorIs(t, err, ErrRequestAlreadyReviewed)
}

func TestDeleteRequest(t *testing.T) {
	db := setupTestDB(t)
	svc := newRequestService(t, db)
	ctx := context.Background()
	reviewer := createReviewer(t, db)

	submitted, err := svc.Submit(ctx, SubmitRequestDTO{Name: "Lee Tan", Email: "lee@school.edu"})
	require.NoError(t, err)
	_, err = svc.Approve(ctx, submitted.ID, reviewer.ID.String())
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, submitted.ID, reviewer.ID.String()))

	var total int64
	db.Model(&model.AdminRequest{}).Where("id = ?", submitted.ID).Count(&total)
	assert.EqualValues(t, 0, total)

	// The provisioned account outlives the deleted request
	var accounts int64
	db.Model(&model.User{}).Where("email = ?", "lee@school.edu").Count(&accounts)
	assert.EqualValues(t, 1, accounts)

	assert.ErrorIs(t, svc.Delete(ctx, submitted.ID, reviewer.ID.String()), ErrRequestNotFound)
}

func TestListRequests(t *testing.T) {
	db := setupTestDB(t)
	svc := newRequestService(t, db)
	ctx := context.Background()
	reviewer := createReviewer(t, db)

	emails := []string{"a@school.edu", "b@school.edu", "c@school.edu"}
	ids := make([]string, 0, len(emails))
	for _, email := range emails {
		result, err := svc.Submit(ctx, SubmitRequestDTO{Name: "Someone", Email: email})
		require.NoError(t, err)
		ids = append(ids, result.ID)
	}
	_, err := svc.Approve(ctx, ids[0], reviewer.ID.String())
	require.NoError(t, err)

	t.Run("newest first", func(t *testing.T) {
		all, total, err := svc.List(ctx, RequestFilter{})
		require.NoError(t, err)
		assert.EqualValues(t, 3, total)
		require.Len(t, all, 3)
		for i := 1; i < len(all); i++ {
			assert.GreaterOrEqual(t, all[i-1].CreatedAt, all[i].CreatedAt)
		}
	})

	t.Run("filter by status", func(t *testing.T) {
		pending, total, err := svc.List(ctx, RequestFilter{Status: model.RequestStatusPending})
		require.NoError(t, err)
		assert.EqualValues(t, 2, total)
		for _, r := range pending {
			assert.Equal(t, model.RequestStatusPending, r.Status)
		}

		approved, total, err := svc.List(ctx, RequestFilter{Status: model.RequestStatusApproved})
		require.NoError(t, err)
		assert.EqualValues(t, 1, total)
		assert.Equal(t, "a@school.edu", approved[0].Email)
	})
}

// failingProvider simulates an identity backend outage.
type failingProvider struct{}

func (failingProvider) CreateAccount(ctx context.Context, in identity.CreateAccountInput) (*identity.Account, error) {
	return nil, errors.New("identity backend unavailable")
}

func (failingProvider) VerifyCredentials(ctx context.Context, email, password string) (*identity.Account, error) {
	return nil, identity.ErrInvalidCredentials
}

func (failingProvider) GetAccount(ctx context.Context, id string) (*identity.Account, error) {
	return nil, errors.New("identity backend unavailable")
}
