package identity

import (
	"context"
	"testing"

	"schoolsite/internal/model"
	"schoolsite/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupProvider(t *testing.T) (Provider, *gorm.DB) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("Failed to connect to database: %v", err)
	}
	if err := db.AutoMigrate(&model.User{}); err != nil {
		t.Fatalf("Failed to migrate database: %v", err)
	}

	return NewLocalProvider(repository.NewUserRepository(db)), db
}

func TestCreateAccount(t *testing.T) {
	provider, db := setupProvider(t)
	ctx := context.Background()

	t.Run("creates a confirmed account with a hashed password", func(t *testing.T) {
		account, err := provider.CreateAccount(ctx, CreateAccountInput{
			Email:         "pat@school.edu",
			Name:          "Pat",
			Password:      "initial-password",
			MarkConfirmed: true,
		})
		require.NoError(t, err)
		assert.True(t, account.EmailConfirmed)

		var stored model.User
		require.NoError(t, db.First(&stored, "email = ?", "pat@school.edu").Error)
		assert.NotEqual(t, "initial-password", stored.Password)
	})

	t.Run("duplicate email returns the sentinel", func(t *testing.T) {
		_, err := provider.CreateAccount(ctx, CreateAccountInput{
			Email:    "pat@school.edu",
			Name:     "Pat Again",
			Password: "other",
		})
		assert.ErrorIs(t, err, ErrAccountExists)
	})

	t.Run("email is required", func(t *testing.T) {
		_, err := provider.CreateAccount(ctx, CreateAccountInput{Name: "Nobody", Password: "x"})
		assert.Error(t, err)
	})
}

func TestVerifyCredentials(t *testing.T) {
	provider, _ := setupProvider(t)
	ctx := context.Background()

	_, err := provider.CreateAccount(ctx, CreateAccountInput{
		Email:    "dana@school.edu",
		Name:     "Dana",
		Password: "correct-horse",
	})
	require.NoError(t, err)

	t.Run("valid credentials", func(t *testing.T) {
		account, err := provider.VerifyCredentials(ctx, "dana@school.edu", "correct-horse")
		require.NoError(t, err)
		assert.Equal(t, "dana@school.edu", account.Email)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := provider.VerifyCredentials(ctx, "dana@school.edu", "wrong")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("unknown email", func(t *testing.T) {
		_, err := provider.VerifyCredentials(ctx, "ghost@school.edu", "whatever")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})
}

func TestGetAccount(t *testing.T) {
	provider, _ := setupProvider(t)
	ctx := context.Background()

	created, err := provider.CreateAccount(ctx, CreateAccountInput{
		Email:    "robin@school.edu",
		Name:     "Robin",
		Password: "secret123",
	})
	require.NoError(t, err)

	account, err := provider.GetAccount(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Robin", account.Name)

	_, err = provider.GetAccount(ctx, "00000000-0000-0000-0000-000000000000")
	assert.Error(t, err)
}
