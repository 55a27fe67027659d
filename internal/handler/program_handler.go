package handler

import (
	"net/http"

	"schoolsite/internal/middleware"
	"schoolsite/internal/service"
	"schoolsite/pkg/response"

	"github.com/gin-gonic/gin"
)

type ProgramHandler struct {
	programService service.ProgramService
}

func NewProgramHandler(programService service.ProgramService) *ProgramHandler {
	return &ProgramHandler{programService: programService}
}

func (h *ProgramHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/api/programs", h.ListPublic)
	router.GET("/api/programs/:id", h.Get)

	admin := router.Group("/api/admin/programs")
	admin.Use(middleware.RequireAuth(), middleware.RequireAdmin())
	{
		admin.GET("", h.ListAll)
		admin.POST("", h.Create)
		admin.PUT("/:id", h.Update)
		admin.DELETE("/:id", h.Delete)
	}
}

// ListPublic godoc
// @Summary List active academic programs
// @Tags programs
// @Produce json
// @Success 200 {object} response.Response
// @Router /api/programs [get]
func (h *ProgramHandler) ListPublic(c *gin.Context) {
	items, err := h.programService.ListPublic(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.Error(http.StatusInternalServerError, err.Error()))
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, items))
}

// Get godoc
// @Summary Get one program
// @Tags programs
// @Produce json
// @Param id path string true "Program ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /api/programs/{id} [get]
func (h *ProgramHandler) Get(c *gin.Context) {
	item, err := h.programService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeContentError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, item))
}

// ListAll godoc
// @Summary List all programs including inactive
// @Tags programs
// @Produce json
// @Success 200 {object} response.Response
// @Security BearerAuth
// @Router /api/admin/programs [get]
func (h *ProgramHandler) ListAll(c *gin.Context) {
	items, err := h.programService.ListAll(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.Error(http.StatusInternalServerError, err.Error()))
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, items))
}

// Create godoc
// @Summary Create a program
// @Tags programs
// @Accept json
// @Produce json
// @Param request body service.ProgramInput true "Program details"
// @Success 201 {object} response.Response
// @Security BearerAuth
// @Router /api/admin/programs [post]
func (h *ProgramHandler) Create(c *gin.Context) {
	var req service.ProgramInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, err.Error()))
		return
	}

	item, err := h.programService.Create(c.Request.Context(), currentUserID(c), req)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, err.Error()))
		return
	}

	c.JSON(http.StatusCreated, response.Success(http.StatusCreated, item))
}

// Update godoc
// @Summary Update a program
// @Tags programs
// @Accept json
// @Produce json
// @Param id path string true "Program ID"
// @Param request body service.ProgramInput true "Program details"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Security BearerAuth
// @Router /api/admin/programs/{id} [put]
func (h *ProgramHandler) Update(c *gin.Context) {
	var req service.ProgramInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, err.Error()))
		return
	}

	item, err := h.programService.Update(c.Request.Context(), currentUserID(c), c.Param("id"), req)
	if err != nil {
		writeContentError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, item))
}

// Delete godoc
// @Summary Delete a program
// @Tags programs
// @Produce json
// @Param id path string true "Program ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Security BearerAuth
// @Router /api/admin/programs/{id} [delete]
func (h *ProgramHandler) Delete(c *gin.Context) {
	if err := h.programService.Delete(c.Request.Context(), currentUserID(c), c.Param("id")); err != nil {
		writeContentError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, gin.H{"message": "Program deleted"}))
}
