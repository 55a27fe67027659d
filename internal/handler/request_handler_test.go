package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"schoolsite/internal/database"
	"schoolsite/internal/identity"
	"schoolsite/internal/middleware"
	"schoolsite/internal/model"
	"schoolsite/internal/repository"
	"schoolsite/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("Failed to connect to database: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		t.Fatalf("Failed to migrate database: %v", err)
	}

	userRepo := repository.NewUserRepository(db)
	roleRepo := repository.NewRoleRepository(db)
	requestService := service.NewAdminRequestService(
		repository.NewAdminRequestRepository(db),
		repository.NewAuditRepository(db),
		repository.NewTransactionManager(db),
		identity.NewLocalProvider(userRepo),
		nil,
		nil,
	)

	middleware.InitAdminGate(roleRepo)

	router := gin.New()
	NewRequestHandler(requestService).RegisterRoutes(router.Group(""))
	return router, db
}

// createAdmin inserts an admin account and returns a bearer token for it.
func createAdmin(t *testing.T, db *gorm.DB) string {
	t.Helper()

	admin := &model.User{Email: "admin@school.edu", Name: "Admin", Password: "x"}
	require.NoError(t, db.Create(admin).Error)
	require.NoError(t, repository.NewRoleRepository(db).Grant(context.Background(), admin.ID, model.RoleAdmin))
	middleware.ClearRoleCache(admin.ID.String())

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": admin.ID.String(),
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString(middleware.GetJWTSecret())
	require.NoError(t, err)
	return signed
}

func submitBody(name, email string) *bytes.Buffer {
	body, _ := json.Marshal(map[string]string{"name": name, "email": email, "reason": "testing"})
	return bytes.NewBuffer(body)
}

func TestSubmitEndpoint(t *testing.T) {
	router, _ := setupRouter(t)

	t.Run("valid submission returns 201", func(t *testing.T) {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodPost, "/api/access-requests", submitBody("Jamie", "jamie@school.edu"))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("duplicate pending email returns 409", func(t *testing.T) {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodPost, "/api/access-requests", submitBody("Jamie", "jamie@school.edu"))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("missing name returns 400", func(t *testing.T) {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodPost, "/api/access-requests", submitBody("", "new@school.edu"))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestAdminEndpointsRequireAuth(t *testing.T) {
	router, _ := setupRouter(t)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/api/admin/access-requests", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestReviewEndpoints(t *testing.T) {
	router, db := setupRouter(t)
	token := createAdmin(t, db)

	submit := func(t *testing.T, email string) string {
		t.Helper()
		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodPost, "/api/access-requests", submitBody("Someone", email))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)
		require.Equal(t, http.StatusCreated, w.Code)

		var envelope struct {
			Data struct {
				ID string `json:"id"`
			} `json:"data"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
		return envelope.Data.ID
	}

	authed := func(method, path string) *httptest.ResponseRecorder {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest(method, path, nil)
		req.Header.Set("Authorization", "Bearer "+token)
		router.ServeHTTP(w, req)
		return w
	}

	t.Run("approve then re-approve", func(t *testing.T) {
		id := submit(t, "first@school.edu")

		w := authed(http.MethodPut, "/api/admin/access-requests/"+id+"/approve")
		assert.Equal(t, http.StatusOK, w.Code)

		w = authed(http.MethodPut, "/api/admin/access-requests/"+id+"/approve")
		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("reject", func(t *testing.T) {
		id := submit(t, "second@school.edu")

		w := authed(http.MethodPut, "/api/admin/access-requests/"+id+"/reject")
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("list", func(t *testing.T) {
		w := authed(http.MethodGet, "/api/admin/access-requests?status=approved")
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("delete unknown id returns 404", func(t *testing.T) {
		w := authed(http.MethodDelete, "/api/admin/access-requests/6d2c1f39-9f54-4f6a-8f39-2d01d0a2b111")
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
