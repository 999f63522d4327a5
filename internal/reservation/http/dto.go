package http

import (
	"github.com/campusbook/reservation-backend/internal/pkg/request"
	"github.com/campusbook/reservation-backend/internal/reservation"
)

// CreateBody is the payload for booking a space. Status and price are
// never client-supplied.
type CreateBody struct {
	SpaceID      string `json:"space_id" binding:"required,uuid"`
	Date         string `json:"date" binding:"required,datetime=2006-01-02"`
	StartTime    string `json:"start_time" binding:"required"`
	EndTime      string `json:"end_time" binding:"required"`
	Reason       string `json:"reason" binding:"required"`
	Observations string `json:"observations"`
}

type UpdateStatusBody struct {
	Status string `json:"status" binding:"required"`
}

// ListMyReservationsRequest pages through the caller's own reservations.
// Without parameters the whole history comes back.
type ListMyReservationsRequest struct {
	request.ListParams
}

// ListReservationsRequest carries the admin listing filters.
type ListReservationsRequest struct {
	request.ListParams
	UserID   string `form:"user_id" binding:"omitempty,uuid"`
	SpaceID  string `form:"space_id" binding:"omitempty,uuid"`
	Status   string `form:"status"`
	DateFrom string `form:"date_from" binding:"omitempty,datetime=2006-01-02"`
	DateTo   string `form:"date_to" binding:"omitempty,datetime=2006-01-02"`
}

type ReservationResponse struct {
	ID           string  `json:"id"`
	UserID       string  `json:"user_id"`
	UserName     string  `json:"user_name"`
	SpaceID      string  `json:"space_id"`
	SpaceName    string  `json:"space_name"`
	Date         string  `json:"date"`
	StartTime    string  `json:"start_time"`
	EndTime      string  `json:"end_time"`
	Reason       string  `json:"reason"`
	Status       string  `json:"status"`
	TotalPrice   float64 `json:"total_price"`
	Observations string  `json:"observations,omitempty"`
	CreatedAt    string  `json:"created_at"`
	UpdatedAt    string  `json:"updated_at"`
}

func NewResponse(rv *reservation.Reservation) ReservationResponse {
	return ReservationResponse{
		ID:           rv.ID,
		UserID:       rv.UserID,
		UserName:     rv.UserName,
		SpaceID:      rv.SpaceID,
		SpaceName:    rv.SpaceName,
		Date:         rv.Date.Format("2006-01-02"),
		StartTime:    rv.StartTime,
		EndTime:      rv.EndTime,
		Reason:       rv.Reason,
		Status:       string(rv.Status),
		TotalPrice:   rv.TotalPrice,
		Observations: rv.Observations,
		CreatedAt:    rv.CreatedAt.UTC().Format("2006-01-02T15:04:05Z07:00"),
		UpdatedAt:    rv.UpdatedAt.UTC().Format("2006-01-02T15:04:05Z07:00"),
	}
}
