package handler

import (
	"net/http"
	"strconv"

	"schoolsite/internal/middleware"
	"schoolsite/internal/service"
	"schoolsite/pkg/response"

	"github.com/gin-gonic/gin"
)

type SiteContentHandler struct {
	siteContentService service.SiteContentService
}

func NewSiteContentHandler(siteContentService service.SiteContentService) *SiteContentHandler {
	return &SiteContentHandler{siteContentService: siteContentService}
}

func (h *SiteContentHandler) RegisterRoutes(router *gin.RouterGroup) {
	// Public page content
	router.GET("/api/content/about", h.GetAbout)
	router.GET("/api/content/home", h.GetHome)
	router.GET("/api/content/contact", h.GetContact)
	router.GET("/api/content/enrollment", h.GetEnrollment)
	router.GET("/api/content/important-dates", h.ListImportantDates)

	admin := router.Group("/api/admin/content")
	admin.Use(middleware.RequireAuth(), middleware.RequireAdmin())
	{
		admin.PUT("/about", h.SaveAbout)
		admin.PUT("/home", h.SaveHome)
		admin.PUT("/contact", h.SaveContact)
		admin.PUT("/enrollment", h.SaveEnrollment)

		admin.POST("/important-dates", h.CreateImportantDate)
		admin.PUT("/important-dates/:id", h.UpdateImportantDate)
		admin.DELETE("/important-dates/:id", h.DeleteImportantDate)
	}
}

// GetAbout godoc
// @Summary Get the About page content
// @Tags content
// @Produce json
// @Success 200 {object} response.Response
// @Router /api/content/about [get]
func (h *SiteContentHandler) GetAbout(c *gin.Context) {
	content, err := h.siteContentService.GetAbout(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.Error(http.StatusInternalServerError, err.Error()))
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, content))
}

// SaveAbout godoc
// @Summary Update the About page content
// @Tags content
// @Accept json
// @Produce json
// @Param request body service.AboutContentInput true "About content"
// @Success 200 {object} response.Response
// @Security BearerAuth
// @Router /api/admin/content/about [put]
func (h *SiteContentHandler) SaveAbout(c *gin.Context) {
	var req service.AboutContentInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, err.Error()))
		return
	}

	content, err := h.siteContentService.SaveAbout(c.Request.Context(), currentUserID(c), req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.Error(http.StatusInternalServerError, err.Error()))
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, content))
}

// GetHome godoc
// @Summary Get the landing page content
// @Tags content
// @Produce json
// @Success 200 {object} response.Response
// @Router /api/content/home [get]
func (h *SiteContentHandler) GetHome(c *gin.Context) {
	content, err := h.siteContentService.GetHome(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.Error(http.StatusInternalServerError, err.Error()))
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, content))
}

// SaveHome godoc
// @Summary Update the landing page content
// @Tags content
// @Accept json
// @Produce json
// @Param request body service.HomeContentInput true "Home content"
// @Success 200 {object} response.Response
// @Security BearerAuth
// @Router /api/admin/content/home [put]
func (h *SiteContentHandler) SaveHome(c *gin.Context) {
	var req service.HomeContentInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, err.Error()))
		return
	}

	content, err := h.siteContentService.SaveHome(c.Request.Context(), currentUserID(c), req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.Error(http.StatusInternalServerError, err.Error()))
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, content))
}

// GetContact godoc
// @Summary Get the Contact page content
// @Tags content
// @Produce json
// @Success 200 {object} response.Response
// @Router /api/content/contact [get]
func (h *SiteContentHandler) GetContact(c *gin.Context) {
	content, err := h.siteContentService.GetContact(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.Error(http.StatusInternalServerError, err.Error()))
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, content))
}

// SaveContact godoc
// @Summary Update the Contact page content
// @Tags content
// @Accept json
// @Produce json
// @Param request body service.ContactInfoInput true "Contact content"
// @Success 200 {object} response.Response
// @Security BearerAuth
// @Router /api/admin/content/contact [put]
func (h *SiteContentHandler) SaveContact(c *gin.Context) {
	var req service.ContactInfoInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, err.Error()))
		return
	}

	content, err := h.siteContentService.SaveContact(c.Request.Context(), currentUserID(c), req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.Error(http.StatusInternalServerError, err.Error()))
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, content))
}

// GetEnrollment godoc
// @Summary Get the Enrollment page content
// @Tags content
// @Produce json
// @Success 200 {object} response.Response
// @Router /api/content/enrollment [get]
func (h *SiteContentHandler) GetEnrollment(c *gin.Context) {
	content, err := h.siteContentService.GetEnrollment(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.Error(http.StatusInternalServerError, err.Error()))
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, content))
}

// SaveEnrollment godoc
// @Summary Update the Enrollment page content
// @Tags content
// @Accept json
// @Produce json
// @Param request body service.EnrollmentContentInput true "Enrollment content"
// @Success 200 {object} response.Response
// @Security BearerAuth
// @Router /api/admin/content/enrollment [put]
func (h *SiteContentHandler) SaveEnrollment(c *gin.Context) {
	var req service.EnrollmentContentInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, err.Error()))
		return
	}

	content, err := h.siteContentService.SaveEnrollment(c.Request.Context(), currentUserID(c), req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.Error(http.StatusInternalServerError, err.Error()))
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, content))
}

// ListImportantDates godoc
// @Summary List important dates
// @Tags content
// @Produce json
// @Param include_inactive query bool false "Include inactive entries"
// @Success 200 {object} response.Response
// @Router /api/content/important-dates [get]
func (h *SiteContentHandler) ListImportantDates(c *gin.Context) {
	includeInactive, _ := strconv.ParseBool(c.DefaultQuery("include_inactive", "false"))

	dates, err := h.siteContentService.ListImportantDates(c.Request.Context(), includeInactive)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.Error(http.StatusInternalServerError, err.Error()))
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, dates))
}

// CreateImportantDate godoc
// @Summary Create an important date entry
// @Tags content
// @Accept json
// @Produce json
// @Param request body service.ImportantDateInput true "Entry details"
// @Success 201 {object} response.Response
// @Security BearerAuth
// @Router /api/admin/content/important-dates [post]
func (h *SiteContentHandler) CreateImportantDate(c *gin.Context) {
	var req service.ImportantDateInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, err.Error()))
		return
	}

	date, err := h.siteContentService.CreateImportantDate(c.Request.Context(), currentUserID(c), req)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, err.Error()))
		return
	}

	c.JSON(http.StatusCreated, response.Success(http.StatusCreated, date))
}

// UpdateImportantDate godoc
// @Summary Update an important date entry
// @Tags content
// @Accept json
// @Produce json
// @Param id path string true "Entry ID"
// @Param request body service.ImportantDateInput true "Entry details"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Security BearerAuth
// @Router /api/admin/content/important-dates/{id} [put]
func (h *SiteContentHandler) UpdateImportantDate(c *gin.Context) {
	var req service.ImportantDateInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, err.Error()))
		return
	}

	date, err := h.siteContentService.UpdateImportantDate(c.Request.Context(), currentUserID(c), c.Param("id"), req)
	if err != nil {
		writeContentError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, date))
}

// DeleteImportantDate godoc
// @Summary Delete an important date entry
// @Tags content
// @Produce json
// @Param id path string true "Entry ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Security BearerAuth
// @Router /api/admin/content/important-dates/{id} [delete]
func (h *SiteContentHandler) DeleteImportantDate(c *gin.Context) {
	if err := h.siteContentService.DeleteImportantDate(c.Request.Context(), currentUserID(c), c.Param("id")); err != nil {
		writeContentError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, gin.H{"message": "Important date deleted"}))
}
