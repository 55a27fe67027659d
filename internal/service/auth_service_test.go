package service

import (
	"context"
	"testing"

	"schoolsite/internal/identity"
	"schoolsite/internal/middleware"
	"schoolsite/internal/model"
	"schoolsite/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newAuthService(t *testing.T, db *gorm.DB) (AuthService, identity.Provider) {
	t.Helper()
	userRepo := repository.NewUserRepository(db)
	provider := identity.NewLocalProvider(userRepo)
	return NewAuthService(db, provider, repository.NewRoleRepository(db)), provider
}

func createAccount(t *testing.T, provider identity.Provider, email, password string) {
	t.Helper()
	_, err := provider.CreateAccount(context.Background(), identity.CreateAccountInput{
		Email:         email,
		Name:          "Casey Lim",
		Password:      password,
		MarkConfirmed: true,
	})
	require.NoError(t, err)
}

func TestLogin(t *testing.T) {
	t.Setenv("JWT_SECRET", "auth-service-test-secret")
	db := setupTestDB(t)
	svc, provider := newAuthService(t, db)
	ctx := context.Background()
	createAccount(t, provider, "casey@school.edu", "correct-horse")

	t.Run("issues a token the middleware secret verifies", func(t *testing.T) {
		tokens, err := svc.Login(ctx, LoginRequest{Email: "casey@school.edu", Password: "correct-horse"})
		require.NoError(t, err)
		require.NotEmpty(t, tokens.Token)
		require.NotEmpty(t, tokens.RefreshToken)

		parsed, err := jwt.Parse(tokens.Token, func(tok *jwt.Token) (interface{}, error) {
			return middleware.GetJWTSecret(), nil
		})
		require.NoError(t, err)
		require.True(t, parsed.Valid)

		var user model.User
		require.NoError(t, db.First(&user, "email = ?", "casey@school.edu").Error)
		claims, ok := parsed.Claims.(jwt.MapClaims)
		require.True(t, ok)
		assert.Equal(t, user.ID.String(), claims["sub"])
	})

	t.Run("rejects a wrong password", func(t *testing.T) {
		_, err := svc.Login(ctx, LoginRequest{Email: "casey@school.edu", Password: "wrong"})
		assert.Error(t, err)
	})
}

func TestRefreshTokenRotation(t *testing.T) {
	t.Setenv("JWT_SECRET", "auth-service-test-secret")
	db := setupTestDB(t)
	svc, provider := newAuthService(t, db)
	ctx := context.Background()
	createAccount(t, provider, "morgan@school.edu", "correct-horse")

	tokens, err := svc.Login(ctx, LoginRequest{Email: "morgan@school.edu", Password: "correct-horse"})
	require.NoError(t, err)

	t.Run("refresh rotates the token", func(t *testing.T) {
		rotated, err := svc.RefreshToken(ctx, RefreshTokenRequest{RefreshToken: tokens.RefreshToken})
		require.NoError(t, err)
		assert.NotEqual(t, tokens.RefreshToken, rotated.RefreshToken)
	})

	t.Run("a rotated token is single-use", func(t *testing.T) {
		_, err := svc.RefreshToken(ctx, RefreshTokenRequest{RefreshToken: tokens.RefreshToken})
		assert.Error(t, err)
	})

	t.Run("logout revokes the stored token", func(t *testing.T) {
		fresh, err := svc.Login(ctx, LoginRequest{Email: "morgan@school.edu", Password: "correct-horse"})
		require.NoError(t, err)

		require.NoError(t, svc.Logout(ctx, fresh.RefreshToken))

		_, err = svc.RefreshToken(ctx, RefreshTokenRequest{RefreshToken: fresh.RefreshToken})
		assert.Error(t, err)
	})
}
