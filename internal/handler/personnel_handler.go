package handler

import (
	"net/http"

	"schoolsite/internal/middleware"
	"schoolsite/internal/service"
	"schoolsite/pkg/response"

	"github.com/gin-gonic/gin"
)

type PersonnelHandler struct {
	personnelService service.PersonnelService
}

func NewPersonnelHandler(personnelService service.PersonnelService) *PersonnelHandler {
	return &PersonnelHandler{personnelService: personnelService}
}

func (h *PersonnelHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/api/personnel", h.ListPublic)
	router.GET("/api/historical-personnel", h.ListHistoricalPublic)

	admin := router.Group("/api/admin/personnel")
	admin.Use(middleware.RequireAuth(), middleware.RequireAdmin())
	{
		admin.GET("", h.ListAll)
		admin.POST("", h.Create)
		admin.PUT("/:id", h.Update)
		admin.DELETE("/:id", h.Delete)
	}

	historical := router.Group("/api/admin/historical-personnel")
	historical.Use(middleware.RequireAuth(), middleware.RequireAdmin())
	{
		historical.GET("", h.ListHistoricalAll)
		historical.POST("", h.CreateHistorical)
		historical.PUT("/:id", h.UpdateHistorical)
		historical.DELETE("/:id", h.DeleteHistorical)
	}
}

// ListPublic godoc
// @Summary List active personnel grouped by department order
// @Tags personnel
// @Produce json
// @Success 200 {object} response.Response
// @Router /api/personnel [get]
func (h *PersonnelHandler) ListPublic(c *gin.Context) {
	items, err := h.personnelService.ListPublic(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.Error(http.StatusInternalServerError, err.Error()))
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, items))
}

// ListAll godoc
// @Summary List all personnel including inactive
// @Tags personnel
// @Produce json
// @Param department query string false "Filter by department"
// @Success 200 {object} response.Response
// @Security BearerAuth
// @Router /api/admin/personnel [get]
func (h *PersonnelHandler) ListAll(c *gin.Context) {
	items, err := h.personnelService.ListAll(c.Request.Context(), c.Query("department"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.Error(http.StatusInternalServerError, err.Error()))
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, items))
}

// Create godoc
// @Summary Create a personnel entry
// @Tags personnel
// @Accept json
// @Produce json
// @Param request body service.PersonnelInput true "Personnel details"
// @Success 201 {object} response.Response
// @Security BearerAuth
// @Router /api/admin/personnel [post]
func (h *PersonnelHandler) Create(c *gin.Context) {
	var req service.PersonnelInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, err.Error()))
		return
	}

	item, err := h.personnelService.Create(c.Request.Context(), currentUserID(c), req)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, err.Error()))
		return
	}

	c.JSON(http.StatusCreated, response.Success(http.StatusCreated, item))
}

// Update godoc
// @Summary Update a personnel entry
// @Tags personnel
// @Accept json
// @Produce json
// @Param id path string true "Personnel ID"
// @Param request body service.PersonnelInput true "Personnel details"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Security BearerAuth
// @Router /api/admin/personnel/{id} [put]
func (h *PersonnelHandler) Update(c *gin.Context) {
	var req service.PersonnelInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, err.Error()))
		return
	}

	item, err := h.personnelService.Update(c.Request.Context(), currentUserID(c), c.Param("id"), req)
	if err != nil {
		writeContentError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, item))
}

// Delete godoc
// @Summary Delete a personnel entry
// @Tags personnel
// @Produce json
// @Param id path string true "Personnel ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Security BearerAuth
// @Router /api/admin/personnel/{id} [delete]
func (h *PersonnelHandler) Delete(c *gin.Context) {
	if err := h.personnelService.Delete(c.Request.Context(), currentUserID(c), c.Param("id")); err != nil {
		writeContentError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, gin.H{"message": "Personnel deleted"}))
}

// ListHistoricalPublic godoc
// @Summary List active historical personnel
// @Tags personnel
// @Produce json
// @Param category query string false "Filter by category"
// @Success 200 {object} response.Response
// @Router /api/historical-personnel [get]
func (h *PersonnelHandler) ListHistoricalPublic(c *gin.Context) {
	items, err := h.personnelService.ListHistoricalPublic(c.Request.Context(), c.Query("category"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.Error(http.StatusInternalServerError, err.Error()))
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, items))
}

// ListHistoricalAll godoc
// @Summary List all historical personnel including inactive
// @Tags personnel
// @Produce json
// @Param category query string false "Filter by category"
// @Success 200 {object} response.Response
// @Security BearerAuth
// @Router /api/admin/historical-personnel [get]
func (h *PersonnelHandler) ListHistoricalAll(c *gin.Context) {
	items, err := h.personnelService.ListHistoricalAll(c.Request.Context(), c.Query("category"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.Error(http.StatusInternalServerError, err.Error()))
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, items))
}

// CreateHistorical godoc
// @Summary Create a historical personnel entry
// @Tags personnel
// @Accept json
// @Produce json
// @Param request body service.HistoricalPersonnelInput true "Entry details"
// @Success 201 {object} response.Response
// @Security BearerAuth
// @Router /api/admin/historical-personnel [post]
func (h *PersonnelHandler) CreateHistorical(c *gin.Context) {
	var req service.HistoricalPersonnelInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, err.Error()))
		return
	}

	item, err := h.personnelService.CreateHistorical(c.Request.Context(), currentUserID(c), req)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, err.Error()))
		return
	}

	c.JSON(http.StatusCreated, response.Success(http.StatusCreated, item))
}

// UpdateHistorical godoc
// @Summary Update a historical personnel entry
// @Tags personnel
// @Accept json
// @Produce json
// @Param id path string true "Entry ID"
// @Param request body service.HistoricalPersonnelInput true "Entry details"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Security BearerAuth
// @Router /api/admin/historical-personnel/{id} [put]
func (h *PersonnelHandler) UpdateHistorical(c *gin.Context) {
	var req service.HistoricalPersonnelInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, err.Error()))
		return
	}

	item, err := h.personnelService.UpdateHistorical(c.Request.Context(), currentUserID(c), c.Param("id"), req)
	if err != nil {
		writeContentError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, item))
}

// DeleteHistorical godoc
// @Summary Delete a historical personnel entry
// @Tags personnel
// @Produce json
// @Param id path string true "Entry ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Security BearerAuth
// @Router /api/admin/historical-personnel/{id} [delete]
func (h *PersonnelHandler) DeleteHistorical(c *gin.Context) {
	if err := h.personnelService.DeleteHistorical(c.Request.Context(), currentUserID(c), c.Param("id")); err != nil {
		writeContentError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, gin.H{"message": "Historical personnel deleted"}))
}
