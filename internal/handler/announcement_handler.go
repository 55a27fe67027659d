package handler

import (
	"errors"
	"net/http"

	"schoolsite/internal/middleware"
	"schoolsite/internal/service"
	"schoolsite/pkg/pagination"
	"schoolsite/pkg/response"

	"github.com/gin-gonic/gin"
)

type AnnouncementHandler struct {
	announcementService service.AnnouncementService
}

func NewAnnouncementHandler(announcementService service.AnnouncementService) *AnnouncementHandler {
	return &AnnouncementHandler{announcementService: announcementService}
}

func (h *AnnouncementHandler) RegisterRoutes(router *gin.RouterGroup) {
	// Public: active announcements only
	router.GET("/api/announcements", h.ListPublic)
	router.GET("/api/announcements/:id", h.Get)

	admin := router.Group("/api/admin/announcements")
	admin.Use(middleware.RequireAuth(), middleware.RequireAdmin())
	{
		admin.GET("", h.ListAll)
		admin.POST("", h.Create)
		admin.PUT("/:id", h.Update)
		admin.DELETE("/:id", h.Delete)
	}
}

// ListPublic godoc
// @Summary List active announcements
// @Tags announcements
// @Produce json
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Success 200 {object} response.Response
// @Router /api/announcements [get]
func (h *AnnouncementHandler) ListPublic(c *gin.Context) {
	params := pagination.Parse(c)

	items, total, err := h.announcementService.ListPublic(c.Request.Context(), params.Page, params.Limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.Error(http.StatusInternalServerError, err.Error()))
		return
	}

	c.JSON(http.StatusOK, response.Paginated(http.StatusOK, items, total, params.Page, params.Limit))
}

// Get godoc
// @Summary Get one announcement
// @Tags announcements
// @Produce json
// @Param id path string true "Announcement ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /api/announcements/{id} [get]
func (h *AnnouncementHandler) Get(c *gin.Context) {
	item, err := h.announcementService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeContentError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, item))
}

// ListAll godoc
// @Summary List all announcements including inactive
// @Tags announcements
// @Produce json
// @Param type query string false "Filter by type"
// @Success 200 {object} response.Response
// @Security BearerAuth
// @Router /api/admin/announcements [get]
func (h *AnnouncementHandler) ListAll(c *gin.Context) {
	params := pagination.Parse(c)

	items, total, err := h.announcementService.ListAll(c.Request.Context(), c.Query("type"), params.Page, params.Limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.Error(http.StatusInternalServerError, err.Error()))
		return
	}

	c.JSON(http.StatusOK, response.Paginated(http.StatusOK, items, total, params.Page, params.Limit))
}

// Create godoc
// @Summary Create an announcement
// @Tags announcements
// @Accept json
// @Produce json
// @Param request body service.CreateAnnouncementRequest true "Announcement"
// @Success 201 {object} response.Response
// @Security BearerAuth
// @Router /api/admin/announcements [post]
func (h *AnnouncementHandler) Create(c *gin.Context) {
	var req service.CreateAnnouncementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, err.Error()))
		return
	}

	item, err := h.announcementService.Create(c.Request.Context(), currentUserID(c), req)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, err.Error()))
		return
	}

	c.JSON(http.StatusCreated, response.Success(http.StatusCreated, item))
}

// Update godoc
// @Summary Update an announcement
// @Tags announcements
// @Accept json
// @Produce json
// @Param id path string true "Announcement ID"
// @Param request body service.UpdateAnnouncementRequest true "Fields to update"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Security BearerAuth
// @Router /api/admin/announcements/{id} [put]
func (h *AnnouncementHandler) Update(c *gin.Context) {
	var req service.UpdateAnnouncementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, err.Error()))
		return
	}

	item, err := h.announcementService.Update(c.Request.Context(), currentUserID(c), c.Param("id"), req)
	if err != nil {
		writeContentError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, item))
}

// Delete godoc
// @Summary Delete an announcement
// @Tags announcements
// @Produce json
// @Param id path string true "Announcement ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Security BearerAuth
// @Router /api/admin/announcements/{id} [delete]
func (h *AnnouncementHandler) Delete(c *gin.Context) {
	if err := h.announcementService.Delete(c.Request.Context(), currentUserID(c), c.Param("id")); err != nil {
		writeContentError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, gin.H{"message": "Announcement deleted"}))
}

// writeContentError maps the shared content-service errors onto HTTP statuses.
func writeContentError(c *gin.Context, err error) {
	if errors.Is(err, service.ErrContentNotFound) {
		c.JSON(http.StatusNotFound, response.Error(http.StatusNotFound, err.Error()))
		return
	}
	c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, err.Error()))
}
