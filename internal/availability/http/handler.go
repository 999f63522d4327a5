package http

import (
	"net/http"
	"sort"

	"github.com/campusbook/reservation-backend/internal/availability"
	"github.com/campusbook/reservation-backend/internal/pkg/request"
	"github.com/campusbook/reservation-backend/internal/pkg/response"
	"github.com/gin-gonic/gin"
)

type Handler struct {
	service availability.Service
}

func NewHandler(service availability.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) List(c *gin.Context) {
	var req ListWindowsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query parameters", "details": err.Error()})
		return
	}

	windows, err := h.service.ListForSpace(c.Request.Context(), req.SpaceID)
	if err != nil {
		response.Error(c, err)
		return
	}

	// Storage order is unspecified; present the week in order.
	sort.Slice(windows, func(i, j int) bool {
		if windows[i].Weekday != windows[j].Weekday {
			return windows[i].Weekday < windows[j].Weekday
		}
		return windows[i].StartTime < windows[j].StartTime
	})

	items := make([]WindowResponse, len(windows))
	for i, w := range windows {
		items[i] = NewResponse(w)
	}

	c.JSON(http.StatusOK, items)
}

func (h *Handler) Check(c *gin.Context) {
	var req CheckRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query parameters", "details": err.Error()})
		return
	}

	windows, err := h.service.FindCovering(c.Request.Context(), req.SpaceID, *req.Weekday, req.StartTime, req.EndTime)
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]WindowResponse, len(windows))
	for i, w := range windows {
		items[i] = NewResponse(w)
	}

	c.JSON(http.StatusOK, CheckResponse{
		Available: len(items) > 0,
		Windows:   items,
	})
}

func (h *Handler) Create(c *gin.Context) {
	var body CreateBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	w, err := h.service.Create(c.Request.Context(), availability.CreateRequest{
		SpaceID:   body.SpaceID,
		Weekday:   *body.Weekday,
		StartTime: body.StartTime,
		EndTime:   body.EndTime,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, NewResponse(w))
}

func (h *Handler) Delete(c *gin.Context) {
	var req request.ByIDRequest
	if err := c.ShouldBindUri(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	if err := h.service.Delete(c.Request.Context(), req.ID); err != nil {
		response.Error(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
