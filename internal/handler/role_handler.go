package handler

import (
	"net/http"

	"schoolsite/internal/middleware"
	"schoolsite/internal/service"
	"schoolsite/pkg/response"

	"github.com/gin-gonic/gin"
)

type RoleHandler struct {
	roleService service.RoleService
}

func NewRoleHandler(roleService service.RoleService) *RoleHandler {
	return &RoleHandler{roleService: roleService}
}

func (h *RoleHandler) RegisterRoutes(router *gin.RouterGroup) {
	roles := router.Group("/api/admin/roles")
	roles.Use(middleware.RequireAuth(), middleware.RequireAdmin())
	{
		roles.GET("/admins", h.ListAdmins)
		roles.POST("/grant", h.GrantRole)
		roles.POST("/revoke", h.RevokeRole)
	}

	// First-run setup; refused once the server runs in release mode
	router.POST("/api/setup/bootstrap-admin", h.BootstrapAdmin)
}

// ListAdmins godoc
// @Summary List accounts holding the admin role
// @Tags roles
// @Produce json
// @Success 200 {object} response.Response
// @Security BearerAuth
// @Router /api/admin/roles/admins [get]
func (h *RoleHandler) ListAdmins(c *gin.Context) {
	admins, err := h.roleService.ListAdmins(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.Error(http.StatusInternalServerError, err.Error()))
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, admins))
}

// GrantRole godoc
// @Summary Grant a role to an existing account
// @Tags roles
// @Accept json
// @Produce json
// @Param request body service.GrantRoleRequest true "Email and role"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Security BearerAuth
// @Router /api/admin/roles/grant [post]
func (h *RoleHandler) GrantRole(c *gin.Context) {
	var req service.GrantRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, err.Error()))
		return
	}

	result, err := h.roleService.Grant(c.Request.Context(), currentUserID(c), req)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, err.Error()))
		return
	}

	middleware.ClearRoleCache(result.UserID)
	c.JSON(http.StatusOK, response.Success(http.StatusOK, result))
}

// RevokeRole godoc
// @Summary Revoke a role from an account
// @Description An admin cannot revoke their own admin role.
// @Tags roles
// @Accept json
// @Produce json
// @Param request body service.GrantRoleRequest true "Email and role"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Security BearerAuth
// @Router /api/admin/roles/revoke [post]
func (h *RoleHandler) RevokeRole(c *gin.Context) {
	var req service.GrantRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, err.Error()))
		return
	}

	if err := h.roleService.Revoke(c.Request.Context(), currentUserID(c), req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, err.Error()))
		return
	}

	// Drop any cached gate decision for the affected user
	middleware.ClearRoleCache("")
	c.JSON(http.StatusOK, response.Success(http.StatusOK, gin.H{"message": "Role revoked"}))
}

// BootstrapAdmin godoc
// @Summary Create the first admin account
// @Description Dev/setup only. Disabled when the server runs in release mode.
// @Tags roles
// @Accept json
// @Produce json
// @Param request body service.BootstrapAdminRequest true "Admin account details"
// @Success 201 {object} response.Response
// @Failure 403 {object} response.Response
// @Router /api/setup/bootstrap-admin [post]
func (h *RoleHandler) BootstrapAdmin(c *gin.Context) {
	if gin.Mode() == gin.ReleaseMode {
		c.JSON(http.StatusForbidden, response.Error(http.StatusForbidden, "bootstrap is disabled"))
		return
	}

	var req service.BootstrapAdminRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, err.Error()))
		return
	}

	result, err := h.roleService.BootstrapAdmin(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, err.Error()))
		return
	}

	c.JSON(http.StatusCreated, response.Success(http.StatusCreated, result))
}
