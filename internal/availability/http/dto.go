package http

import (
	"github.com/campusbook/reservation-backend/internal/availability"
)

type WindowResponse struct {
	ID        string `json:"id"`
	SpaceID   string `json:"space_id"`
	Weekday   int    `json:"weekday"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	IsActive  bool   `json:"is_active"`
}

func NewResponse(w *availability.Window) WindowResponse {
	return WindowResponse{
		ID:        w.ID,
		SpaceID:   w.SpaceID,
		Weekday:   w.Weekday,
		StartTime: w.StartTime,
		EndTime:   w.EndTime,
		IsActive:  w.IsActive,
	}
}

// ListWindowsRequest lists windows of one space.
type ListWindowsRequest struct {
	SpaceID string `form:"space_id" binding:"required,uuid"`
}

// CheckRequest asks whether a space is open for the full requested range.
type CheckRequest struct {
	SpaceID   string `form:"space_id" binding:"required,uuid"`
	Weekday   *int   `form:"weekday" binding:"required,min=0,max=6"`
	StartTime string `form:"start_time" binding:"required"`
	EndTime   string `form:"end_time" binding:"required"`
}

type CheckResponse struct {
	Available bool             `json:"available"`
	Windows   []WindowResponse `json:"windows"`
}

type CreateBody struct {
	SpaceID   string `json:"space_id" binding:"required,uuid"`
	Weekday   *int   `json:"weekday" binding:"required,min=0,max=6"`
	StartTime string `json:"start_time" binding:"required"`
	EndTime   string `json:"end_time" binding:"required"`
}
