package middleware

import (
	"context"
	"errors"
	"net/http"
	"os"
	"strings"
	"sync"
	"time"

	"schoolsite/internal/model"
	"schoolsite/internal/repository"
	"schoolsite/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

func GetJWTSecret() []byte {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		if os.Getenv("GIN_MODE") == "release" {
			panic("FATAL: JWT_SECRET environment variable is required in production mode")
		}
		secret = "default_super_secret_key" // Development fallback only, DO NOT use in production
	}
	return []byte(secret)
}

// SetTokenCookies sets access_token and refresh_token as HttpOnly cookies
func SetTokenCookies(c *gin.Context, accessToken, refreshToken string) {
	// Production (cross-origin): SameSiteNoneMode + Secure=true
	// Development (same-site):   SameSiteLaxMode  + Secure=false
	sameSite := http.SameSiteLaxMode
	secure := false
	if os.Getenv("GIN_MODE") == "release" {
		sameSite = http.SameSiteNoneMode
		secure = true
	}

	c.SetSameSite(sameSite)
	// access_token: 24h, refresh_token: 7 days
	c.SetCookie("access_token", accessToken, 3600*24, "/", "", secure, true)
	c.SetCookie("refresh_token", refreshToken, 3600*24*7, "/", "", secure, true)
}

// ClearTokenCookies removes access_token and refresh_token cookies
func ClearTokenCookies(c *gin.Context) {
	sameSite := http.SameSiteLaxMode
	secure := false
	if os.Getenv("GIN_MODE") == "release" {
		sameSite = http.SameSiteNoneMode
		secure = true
	}

	c.SetSameSite(sameSite)
	c.SetCookie("access_token", "", -1, "/", "", secure, true)
	c.SetCookie("refresh_token", "", -1, "/", "", secure, true)
}

// extractToken reads the JWT from the access_token cookie, falling back to the
// Authorization header.
func extractToken(c *gin.Context) (string, bool) {
	tokenString, cookieErr := c.Cookie("access_token")
	if cookieErr == nil && tokenString != "" {
		return tokenString, true
	}

	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return "", false
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return "", false
	}
	return parts[1], true
}

// parseClaims validates the JWT signature and returns its claims.
func parseClaims(tokenString string) (jwt.MapClaims, bool) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return GetJWTSecret(), nil
	})
	if err != nil || !token.Valid {
		return nil, false
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	return claims, ok
}

// RequireAuth validates the JWT and stores the caller's user id in the context.
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, ok := extractToken(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, response.Error(http.StatusUnauthorized, "Authorization is missing or malformed"))
			return
		}

		claims, ok := parseClaims(tokenString)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, response.Error(http.StatusUnauthorized, "Invalid token"))
			return
		}

		sub, ok := claims["sub"].(string)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, response.Error(http.StatusUnauthorized, "Invalid token claims"))
			return
		}

		c.Set("userID", sub)
		c.Next()
	}
}

// --- Admin gate ---

// roleCacheEntry caches the admin-gate verdict for a user with TTL
type roleCacheEntry struct {
	isAdmin   bool
	expiresAt time.Time
}

var (
	roleCache    sync.Map // userID -> roleCacheEntry
	roleCacheTTL = 5 * time.Minute
)

// gateRoles is the role-table lookup backing the admin gate, set via InitAdminGate
var gateRoles repository.RoleRepository

var errNotInitialized = errors.New("admin gate not initialized")

// InitAdminGate sets the role repository consulted by RequireAdmin
func InitAdminGate(roles repository.RoleRepository) {
	gateRoles = roles
}

// RequireAdmin validates the JWT and checks the user_roles table for the admin
// role. The verdict is cached briefly so every admin request does not hit the
// database.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, ok := extractToken(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, response.Error(http.StatusUnauthorized, "Authorization is missing or malformed"))
			return
		}

		claims, ok := parseClaims(tokenString)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, response.Error(http.StatusUnauthorized, "Invalid token"))
			return
		}

		sub, ok := claims["sub"].(string)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, response.Error(http.StatusUnauthorized, "Invalid token claims"))
			return
		}

		isAdmin, err := IsAdmin(c.Request.Context(), sub)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, response.Error(http.StatusInternalServerError, "Failed to verify permissions"))
			return
		}
		if !isAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, response.Error(http.StatusForbidden, "Access denied: admin role required"))
			return
		}

		c.Set("userID", sub)
		c.Next()
	}
}

// IsAdmin returns the cached or freshly-fetched admin verdict for a user.
// Exported so non-HTTP entry points (the websocket upgrade) share the same
// role-table gate as RequireAdmin.
func IsAdmin(ctx context.Context, userID string) (bool, error) {
	if entry, ok := roleCache.Load(userID); ok {
		cached := entry.(roleCacheEntry)
		if time.Now().Before(cached.expiresAt) {
			return cached.isAdmin, nil
		}
	}

	if gateRoles == nil {
		return false, errNotInitialized
	}

	uid, err := uuid.Parse(userID)
	if err != nil {
		return false, err
	}

	isAdmin, err := gateRoles.HasRole(ctx, uid, model.RoleAdmin)
	if err != nil {
		return false, err
	}

	roleCache.Store(userID, roleCacheEntry{
		isAdmin:   isAdmin,
		expiresAt: time.Now().Add(roleCacheTTL),
	})

	return isAdmin, nil
}

// ClearRoleCache removes the cached verdict for a user (or all users if empty).
// Called after a role grant/revoke so the change takes effect immediately.
func ClearRoleCache(userID string) {
	if userID == "" {
		roleCache.Range(func(key, _ interface{}) bool {
			roleCache.Delete(key)
			return true
		})
	} else {
		roleCache.Delete(userID)
	}
}
