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

type RequestHandler struct {
	requestService service.AdminRequestService
}

func NewRequestHandler(requestService service.AdminRequestService) *RequestHandler {
	return &RequestHandler{requestService: requestService}
}

func (h *RequestHandler) RegisterRoutes(router *gin.RouterGroup) {
	// Public intake
	router.POST("/api/access-requests", h.SubmitRequest)

	admin := router.Group("/api/admin/access-requests")
	admin.Use(middleware.RequireAuth(), middleware.RequireAdmin())
	{
		admin.GET("", h.ListRequests)
		admin.PUT("/:id/approve", h.ApproveRequest)
		admin.PUT("/:id/reject", h.RejectRequest)
		admin.DELETE("/:id", h.DeleteRequest)
	}
}

// SubmitRequest godoc
// @Summary Submit an admin access request
// @Description Public endpoint. Creates a pending request for admin panel access.
// @Tags access-requests
// @Accept json
// @Produce json
// @Param request body service.SubmitRequestDTO true "Request details"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /api/access-requests [post]
func (h *RequestHandler) SubmitRequest(c *gin.Context) {
	var req service.SubmitRequestDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, err.Error()))
		return
	}

	result, err := h.requestService.Submit(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, service.ErrDuplicatePendingRequest) {
			c.JSON(http.StatusConflict, response.Error(http.StatusConflict, err.Error()))
			return
		}
		c.JSON(http.StatusInternalServerError, response.Error(http.StatusInternalServerError, err.Error()))
		return
	}

	c.JSON(http.StatusCreated, response.Success(http.StatusCreated, result))
}

// ListRequests godoc
// @Summary List admin access requests
// @Description Returns requests newest first, optionally filtered by status.
// @Tags access-requests
// @Produce json
// @Param status query string false "pending, approved or rejected"
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Success 200 {object} response.Response
// @Security BearerAuth
// @Router /api/admin/access-requests [get]
func (h *RequestHandler) ListRequests(c *gin.Context) {
	params := pagination.Parse(c)

	filter := service.RequestFilter{
		Status: c.Query("status"),
		Page:   params.Page,
		Limit:  params.Limit,
	}

	requests, total, err := h.requestService.List(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.Error(http.StatusInternalServerError, err.Error()))
		return
	}

	c.JSON(http.StatusOK, response.Paginated(http.StatusOK, requests, total, params.Page, params.Limit))
}

// ApproveRequest godoc
// @Summary Approve a pending access request
// @Description Provisions an account with the identity provider and marks the request approved.
// @Tags access-requests
// @Produce json
// @Param id path string true "Request ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Failure 409 {object} response.Response
// @Security BearerAuth
// @Router /api/admin/access-requests/{id}/approve [put]
func (h *RequestHandler) ApproveRequest(c *gin.Context) {
	result, err := h.requestService.Approve(c.Request.Context(), c.Param("id"), currentUserID(c))
	if err != nil {
		h.writeDecisionError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, result))
}

// RejectRequest godoc
// @Summary Reject a pending access request
// @Tags access-requests
// @Produce json
// @Param id path string true "Request ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Failure 409 {object} response.Response
// @Security BearerAuth
// @Router /api/admin/access-requests/{id}/reject [put]
func (h *RequestHandler) RejectRequest(c *gin.Context) {
	result, err := h.requestService.Reject(c.Request.Context(), c.Param("id"), currentUserID(c))
	if err != nil {
		h.writeDecisionError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, result))
}

// DeleteRequest godoc
// @Summary Delete an access request
// @Description Hard-deletes the request record. Any provisioned account is untouched.
// @Tags access-requests
// @Produce json
// @Param id path string true "Request ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Security BearerAuth
// @Router /api/admin/access-requests/{id} [delete]
func (h *RequestHandler) DeleteRequest(c *gin.Context) {
	if err := h.requestService.Delete(c.Request.Context(), c.Param("id"), currentUserID(c)); err != nil {
		h.writeDecisionError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, gin.H{"message": "Access request deleted"}))
}

func (h *RequestHandler) writeDecisionError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrRequestNotFound):
		c.JSON(http.StatusNotFound, response.Error(http.StatusNotFound, err.Error()))
	case errors.Is(err, service.ErrRequestAlreadyReviewed):
		c.JSON(http.StatusConflict, response.Error(http.StatusConflict, err.Error()))
	default:
		c.JSON(http.StatusInternalServerError, response.Error(http.StatusInternalServerError, err.Error()))
	}
}

// currentUserID reads the authenticated user id set by RequireAuth.
func currentUserID(c *gin.Context) string {
	userID, _ := c.Get("userID")
	id, _ := userID.(string)
	return id
}
