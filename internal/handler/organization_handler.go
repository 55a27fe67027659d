package handler

import (
	"net/http"

	"schoolsite/internal/middleware"
	"schoolsite/internal/service"
	"schoolsite/pkg/response"

	"github.com/gin-gonic/gin"
)

type OrganizationHandler struct {
	organizationService service.OrganizationService
}

func NewOrganizationHandler(organizationService service.OrganizationService) *OrganizationHandler {
	return &OrganizationHandler{organizationService: organizationService}
}

func (h *OrganizationHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/api/organizations", h.ListPublic)
	router.GET("/api/organizations/:id", h.GetDetail)

	admin := router.Group("/api/admin/organizations")
	admin.Use(middleware.RequireAuth(), middleware.RequireAdmin())
	{
		admin.GET("", h.ListAll)
		admin.POST("", h.Create)
		admin.PUT("/:id", h.Update)
		admin.DELETE("/:id", h.Delete)

		admin.POST("/:id/members", h.AddMember)
		admin.PUT("/members/:memberId", h.UpdateMember)
		admin.DELETE("/members/:memberId", h.RemoveMember)

		admin.POST("/:id/photos", h.AddPhoto)
		admin.DELETE("/photos/:photoId", h.RemovePhoto)
	}
}

// ListPublic godoc
// @Summary List active organizations
// @Tags organizations
// @Produce json
// @Param type query string false "student, faculty or alumni"
// @Success 200 {object} response.Response
// @Router /api/organizations [get]
func (h *OrganizationHandler) ListPublic(c *gin.Context) {
	items, err := h.organizationService.ListPublic(c.Request.Context(), c.Query("type"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.Error(http.StatusInternalServerError, err.Error()))
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, items))
}

// GetDetail godoc
// @Summary Get one organization with roster and gallery
// @Tags organizations
// @Produce json
// @Param id path string true "Organization ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /api/organizations/{id} [get]
func (h *OrganizationHandler) GetDetail(c *gin.Context) {
	org, err := h.organizationService.GetDetail(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeContentError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, org))
}

// ListAll godoc
// @Summary List all organizations including inactive
// @Tags organizations
// @Produce json
// @Param type query string false "Filter by type"
// @Success 200 {object} response.Response
// @Security BearerAuth
// @Router /api/admin/organizations [get]
func (h *OrganizationHandler) ListAll(c *gin.Context) {
	items, err := h.organizationService.ListAll(c.Request.Context(), c.Query("type"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.Error(http.StatusInternalServerError, err.Error()))
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, items))
}

// Create godoc
// @Summary Create an organization
// @Tags organizations
// @Accept json
// @Produce json
// @Param request body service.OrganizationInput true "Organization details"
// @Success 201 {object} response.Response
// @Security BearerAuth
// @Router /api/admin/organizations [post]
func (h *OrganizationHandler) Create(c *gin.Context) {
	var req service.OrganizationInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, err.Error()))
		return
	}

	org, err := h.organizationService.Create(c.Request.Context(), currentUserID(c), req)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, err.Error()))
		return
	}

	c.JSON(http.StatusCreated, response.Success(http.StatusCreated, org))
}

// Update godoc
// @Summary Update an organization
// @Tags organizations
// @Accept json
// @Produce json
// @Param id path string true "Organization ID"
// @Param request body service.OrganizationInput true "Organization details"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Security BearerAuth
// @Router /api/admin/organizations/{id} [put]
func (h *OrganizationHandler) Update(c *gin.Context) {
	var req service.OrganizationInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, err.Error()))
		return
	}

	org, err := h.organizationService.Update(c.Request.Context(), currentUserID(c), c.Param("id"), req)
	if err != nil {
		writeContentError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, org))
}

// Delete godoc
// @Summary Delete an organization and its roster and gallery
// @Tags organizations
// @Produce json
// @Param id path string true "Organization ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Security BearerAuth
// @Router /api/admin/organizations/{id} [delete]
func (h *OrganizationHandler) Delete(c *gin.Context) {
	if err := h.organizationService.Delete(c.Request.Context(), currentUserID(c), c.Param("id")); err != nil {
		writeContentError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, gin.H{"message": "Organization deleted"}))
}

// AddMember godoc
// @Summary Add a roster entry to an organization
// @Tags organizations
// @Accept json
// @Produce json
// @Param id path string true "Organization ID"
// @Param request body service.OrganizationMemberInput true "Member details"
// @Success 201 {object} response.Response
// @Failure 404 {object} response.Response
// @Security BearerAuth
// @Router /api/admin/organizations/{id}/members [post]
func (h *OrganizationHandler) AddMember(c *gin.Context) {
	var req service.OrganizationMemberInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, err.Error()))
		return
	}

	member, err := h.organizationService.AddMember(c.Request.Context(), currentUserID(c), c.Param("id"), req)
	if err != nil {
		writeContentError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response.Success(http.StatusCreated, member))
}

// UpdateMember godoc
// @Summary Update a roster entry
// @Tags organizations
// @Accept json
// @Produce json
// @Param memberId path string true "Member ID"
// @Param request body service.OrganizationMemberInput true "Member details"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Security BearerAuth
// @Router /api/admin/organizations/members/{memberId} [put]
func (h *OrganizationHandler) UpdateMember(c *gin.Context) {
	var req service.OrganizationMemberInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, err.Error()))
		return
	}

	member, err := h.organizationService.UpdateMember(c.Request.Context(), currentUserID(c), c.Param("memberId"), req)
	if err != nil {
		writeContentError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, member))
}

// RemoveMember godoc
// @Summary Remove a roster entry
// @Tags organizations
// @Produce json
// @Param memberId path string true "Member ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Security BearerAuth
// @Router /api/admin/organizations/members/{memberId} [delete]
func (h *OrganizationHandler) RemoveMember(c *gin.Context) {
	if err := h.organizationService.RemoveMember(c.Request.Context(), currentUserID(c), c.Param("memberId")); err != nil {
		writeContentError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, gin.H{"message": "Member removed"}))
}

// AddPhoto godoc
// @Summary Add a gallery photo to an organization
// @Tags organizations
// @Accept json
// @Produce json
// @Param id path string true "Organization ID"
// @Param request body service.OrganizationPhotoInput true "Photo details"
// @Success 201 {object} response.Response
// @Failure 404 {object} response.Response
// @Security BearerAuth
// @Router /api/admin/organizations/{id}/photos [post]
func (h *OrganizationHandler) AddPhoto(c *gin.Context) {
	var req service.OrganizationPhotoInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, err.Error()))
		return
	}

	photo, err := h.organizationService.AddPhoto(c.Request.Context(), currentUserID(c), c.Param("id"), req)
	if err != nil {
		writeContentError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response.Success(http.StatusCreated, photo))
}

// RemovePhoto godoc
// @Summary Remove a gallery photo
// @Tags organizations
// @Produce json
// @Param photoId path string true "Photo ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Security BearerAuth
// @Router /api/admin/organizations/photos/{photoId} [delete]
func (h *OrganizationHandler) RemovePhoto(c *gin.Context) {
	if err := h.organizationService.RemovePhoto(c.Request.Context(), currentUserID(c), c.Param("photoId")); err != nil {
		writeContentError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, gin.H{"message": "Photo removed"}))
}
