package handler

import (
	"net/http"

	"schoolsite/internal/middleware"
	"schoolsite/internal/service"
	"schoolsite/pkg/response"

	"github.com/gin-gonic/gin"
)

type ScholarshipHandler struct {
	scholarshipService service.ScholarshipService
}

func NewScholarshipHandler(scholarshipService service.ScholarshipService) *ScholarshipHandler {
	return &ScholarshipHandler{scholarshipService: scholarshipService}
}

func (h *ScholarshipHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/api/scholarships", h.ListPublic)
	router.GET("/api/scholarships/application-info", h.GetApplicationInfo)

	admin := router.Group("/api/admin/scholarships")
	admin.Use(middleware.RequireAuth(), middleware.RequireAdmin())
	{
		admin.GET("", h.ListAll)
		admin.POST("", h.Create)
		admin.PUT("/application-info", h.SaveApplicationInfo)
		admin.PUT("/:id", h.Update)
		admin.DELETE("/:id", h.Delete)
	}
}

// ListPublic godoc
// @Summary List active scholarships
// @Tags scholarships
// @Produce json
// @Param type query string false "academic, athletic or financial"
// @Success 200 {object} response.Response
// @Router /api/scholarships [get]
func (h *ScholarshipHandler) ListPublic(c *gin.Context) {
	items, err := h.scholarshipService.ListPublic(c.Request.Context(), c.Query("type"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.Error(http.StatusInternalServerError, err.Error()))
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, items))
}

// GetApplicationInfo godoc
// @Summary Get the scholarship application info block
// @Tags scholarships
// @Produce json
// @Success 200 {object} response.Response
// @Router /api/scholarships/application-info [get]
func (h *ScholarshipHandler) GetApplicationInfo(c *gin.Context) {
	info, err := h.scholarshipService.GetApplicationInfo(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.Error(http.StatusInternalServerError, err.Error()))
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, info))
}

// ListAll godoc
// @Summary List all scholarships including inactive
// @Tags scholarships
// @Produce json
// @Param type query string false "Filter by type"
// @Success 200 {object} response.Response
// @Security BearerAuth
// @Router /api/admin/scholarships [get]
func (h *ScholarshipHandler) ListAll(c *gin.Context) {
	items, err := h.scholarshipService.ListAll(c.Request.Context(), c.Query("type"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.Error(http.StatusInternalServerError, err.Error()))
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, items))
}

// Create godoc
// @Summary Create a scholarship
// @Tags scholarships
// @Accept json
// @Produce json
// @Param request body service.ScholarshipInput true "Scholarship details"
// @Success 201 {object} response.Response
// @Security BearerAuth
// @Router /api/admin/scholarships [post]
func (h *ScholarshipHandler) Create(c *gin.Context) {
	var req service.ScholarshipInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, err.Error()))
		return
	}

	item, err := h.scholarshipService.Create(c.Request.Context(), currentUserID(c), req)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, err.Error()))
		return
	}

	c.JSON(http.StatusCreated, response.Success(http.StatusCreated, item))
}

// Update godoc
// @Summary Update a scholarship
// @Tags scholarships
// @Accept json
// @Produce json
// @Param id path string true "Scholarship ID"
// @Param request body service.ScholarshipInput true "Scholarship details"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Security BearerAuth
// @Router /api/admin/scholarships/{id} [put]
func (h *ScholarshipHandler) Update(c *gin.Context) {
	var req service.ScholarshipInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, err.Error()))
		return
	}

	item, err := h.scholarshipService.Update(c.Request.Context(), currentUserID(c), c.Param("id"), req)
	if err != nil {
		writeContentError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, item))
}

// Delete godoc
// @Summary Delete a scholarship
// @Tags scholarships
// @Produce json
// @Param id path string true "Scholarship ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Security BearerAuth
// @Router /api/admin/scholarships/{id} [delete]
func (h *ScholarshipHandler) Delete(c *gin.Context) {
	if err := h.scholarshipService.Delete(c.Request.Context(), currentUserID(c), c.Param("id")); err != nil {
		writeContentError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, gin.H{"message": "Scholarship deleted"}))
}

// SaveApplicationInfo godoc
// @Summary Update the scholarship application info block
// @Tags scholarships
// @Accept json
// @Produce json
// @Param request body service.ApplicationInfoInput true "Application info"
// @Success 200 {object} response.Response
// @Security BearerAuth
// @Router /api/admin/scholarships/application-info [put]
func (h *ScholarshipHandler) SaveApplicationInfo(c *gin.Context) {
	var req service.ApplicationInfoInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, err.Error()))
		return
	}

	info, err := h.scholarshipService.SaveApplicationInfo(c.Request.Context(), currentUserID(c), req)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, err.Error()))
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, info))
}
