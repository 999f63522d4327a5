package http

import (
	"net/http"
	"time"

	"github.com/campusbook/reservation-backend/internal/auth"
	"github.com/campusbook/reservation-backend/internal/pkg/request"
	"github.com/campusbook/reservation-backend/internal/pkg/response"
	"github.com/campusbook/reservation-backend/internal/reservation"
	"github.com/campusbook/reservation-backend/internal/user"
	"github.com/gin-gonic/gin"
)

type Handler struct {
	service     reservation.Service
	userService user.Service
}

func NewHandler(service reservation.Service, userService user.Service) *Handler {
	return &Handler{service: service, userService: userService}
}

// isAdmin resolves the caller's role from the directory, not the token.
func (h *Handler) isAdmin(c *gin.Context) bool {
	u, err := h.userService.GetByID(c.Request.Context(), auth.GetUserID(c))
	if err != nil {
		return false
	}
	return u.Role == user.RoleAdmin
}

func (h *Handler) Create(c *gin.Context) {
	var body CreateBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	date, err := time.Parse("2006-01-02", body.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date"})
		return
	}

	rv, err := h.service.Create(c.Request.Context(), reservation.CreateRequest{
		UserID:       auth.GetUserID(c),
		SpaceID:      body.SpaceID,
		Date:         date,
		StartTime:    body.StartTime,
		EndTime:      body.EndTime,
		Reason:       body.Reason,
		Observations: body.Observations,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, NewResponse(rv))
}

func (h *Handler) Get(c *gin.Context) {
	var req request.ByIDRequest
	if err := c.ShouldBindUri(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	rv, err := h.service.GetByID(c.Request.Context(), req.ID, auth.GetUserID(c), h.isAdmin(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewResponse(rv))
}

// ListMy returns the caller's own reservations. Without pagination
// parameters the full history comes back.
func (h *Handler) ListMy(c *gin.Context) {
	var req ListMyReservationsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query parameters", "details": err.Error()})
		return
	}

	items, total, err := h.service.List(c.Request.Context(), reservation.Filter{
		UserID:   auth.GetUserID(c),
		Page:     req.Page,
		PageSize: req.PageSize,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	page, pageSize := normalizePage(req.Page, req.PageSize, total)
	c.JSON(http.StatusOK, response.NewPageResponse(toResponses(items), page, pageSize, total))
}

func (h *Handler) List(c *gin.Context) {
	var req ListReservationsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query parameters", "details": err.Error()})
		return
	}

	filter := reservation.Filter{
		UserID:   req.UserID,
		SpaceID:  req.SpaceID,
		Status:   req.Status,
		Page:     req.Page,
		PageSize: req.PageSize,
	}
	if req.DateFrom != "" {
		t, _ := time.Parse("2006-01-02", req.DateFrom)
		filter.DateFrom = &t
	}
	if req.DateTo != "" {
		t, _ := time.Parse("2006-01-02", req.DateTo)
		filter.DateTo = &t
	}

	items, total, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		response.Error(c, err)
		return
	}

	page, pageSize := normalizePage(filter.Page, filter.PageSize, total)
	c.JSON(http.StatusOK, response.NewPageResponse(toResponses(items), page, pageSize, total))
}

// normalizePage reports the effective page values for an unpaged request.
func normalizePage(page, pageSize, total int) (int, int) {
	if pageSize < 1 {
		return 1, total
	}
	if page < 1 {
		page = 1
	}
	return page, pageSize
}

func (h *Handler) Cancel(c *gin.Context) {
	var req request.ByIDRequest
	if err := c.ShouldBindUri(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	rv, err := h.service.Cancel(c.Request.Context(), req.ID, auth.GetUserID(c), h.isAdmin(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewResponse(rv))
}

func (h *Handler) UpdateStatus(c *gin.Context) {
	var req request.ByIDRequest
	if err := c.ShouldBindUri(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	var body UpdateStatusBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	rv, err := h.service.SetStatus(c.Request.Context(), req.ID, body.Status)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewResponse(rv))
}

func (h *Handler) Delete(c *gin.Context) {
	var req request.ByIDRequest
	if err := c.ShouldBindUri(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	if err := h.service.Delete(c.Request.Context(), req.ID, auth.GetUserID(c), h.isAdmin(c)); err != nil {
		response.Error(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func toResponses(items []*reservation.Reservation) []ReservationResponse {
	out := make([]ReservationResponse, len(items))
	for i, rv := range items {
		out[i] = NewResponse(rv)
	}
	return out
}
