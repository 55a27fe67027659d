package service

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"time"

	"schoolsite/internal/identity"
	"schoolsite/internal/middleware"
	"schoolsite/internal/model"
	"schoolsite/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	accessTokenTTL  = 24 * time.Hour
	refreshTokenTTL = 7 * 24 * time.Hour
)

// --- DTOs ---

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

type TokenResponse struct {
	Token        string `json:"token"`
	RefreshToken string `json:"refresh_token"`
}

type SessionResponse struct {
	ID      string `json:"id"`
	Email   string `json:"email"`
	Name    string `json:"name"`
	IsAdmin bool   `json:"is_admin"`
}

// AuthService issues and refreshes sessions against the identity provider.
type AuthService interface {
	Login(ctx context.Context, req LoginRequest) (*TokenResponse, error)
	RefreshToken(ctx context.Context, req RefreshTokenRequest) (*TokenResponse, error)
	Logout(ctx context.Context, refreshToken string) error
	CurrentSession(ctx context.Context, userID string) (*SessionResponse, error)
}

type authService struct {
	db       *gorm.DB
	provider identity.Provider
	roles    repository.RoleRepository
}

func NewAuthService(db *gorm.DB, provider identity.Provider, roles repository.RoleRepository) AuthService {
	return &authService{db: db, provider: provider, roles: roles}
}

// --- Implementation ---

func (s *authService) Login(ctx context.Context, req LoginRequest) (*TokenResponse, error) {
	account, err := s.provider.VerifyCredentials(ctx, req.Email, req.Password)
	if err != nil {
		return nil, errors.New("invalid email or password")
	}

	return s.issueTokens(ctx, account.ID)
}

func (s *authService) RefreshToken(ctx context.Context, req RefreshTokenRequest) (*TokenResponse, error) {
	var stored model.RefreshToken
	err := s.db.WithContext(ctx).First(&stored, "token = ?", req.RefreshToken).Error
	if err != nil {
		return nil, errors.New("invalid refresh token")
	}

	if time.Now().After(stored.ExpiresAt) {
		_ = s.db.WithContext(ctx).Delete(&stored).Error
		return nil, errors.New("refresh token expired")
	}

	// Rotate: the presented token is single-use
	if err := s.db.WithContext(ctx).Delete(&stored).Error; err != nil {
		return nil, fmt.Errorf("failed to rotate refresh token: %w", err)
	}

	return s.issueTokens(ctx, stored.UserID.String())
}

func (s *authService) Logout(ctx context.Context, refreshToken string) error {
	if refreshToken == "" {
		return nil
	}
	return s.db.WithContext(ctx).Where("token = ?", refreshToken).Delete(&model.RefreshToken{}).Error
}

func (s *authService) CurrentSession(ctx context.Context, userID string) (*SessionResponse, error) {
	account, err := s.provider.GetAccount(ctx, userID)
	if err != nil {
		return nil, errors.New("user not found")
	}

	uid, err := uuid.Parse(account.ID)
	if err != nil {
		return nil, fmt.Errorf("invalid account id: %w", err)
	}

	isAdmin, err := s.roles.HasRole(ctx, uid, model.RoleAdmin)
	if err != nil {
		return nil, fmt.Errorf("failed to check role: %w", err)
	}

	return &SessionResponse{
		ID:      account.ID,
		Email:   account.Email,
		Name:    account.Name,
		IsAdmin: isAdmin,
	}, nil
}

// --- Helpers ---

func (s *authService) issueTokens(ctx context.Context, userID string) (*TokenResponse, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": userID,
		"exp": time.Now().Add(accessTokenTTL).Unix(),
	})

	// Same secret source as the verification side in middleware, so issued
	// tokens can never diverge from what RequireAuth accepts.
	accessToken, err := token.SignedString(middleware.GetJWTSecret())
	if err != nil {
		return nil, errors.New("failed to generate token")
	}

	uid, err := uuid.Parse(userID)
	if err != nil {
		return nil, fmt.Errorf("invalid user id: %w", err)
	}

	refreshToken := randomToken()
	stored := model.RefreshToken{
		UserID:    uid,
		Token:     refreshToken,
		ExpiresAt: time.Now().Add(refreshTokenTTL),
	}
	if err := s.db.WithContext(ctx).Create(&stored).Error; err != nil {
		return nil, fmt.Errorf("failed to store refresh token: %w", err)
	}

	return &TokenResponse{Token: accessToken, RefreshToken: refreshToken}, nil
}

func randomToken() string {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		panic(err)
	}
	return base64.RawURLEncoding.EncodeToString(buf)
}
