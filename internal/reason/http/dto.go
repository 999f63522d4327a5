package http

import (
	"time"

	"github.com/campusbook/reservation-backend/internal/reason"
)

type ReasonResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
}

func NewResponse(rs *reason.Reason) ReasonResponse {
	return ReasonResponse{
		ID:          rs.ID,
		Name:        rs.Name,
		Description: rs.Description,
		IsActive:    rs.IsActive,
		CreatedAt:   rs.CreatedAt,
	}
}

type CreateBody struct {
	Name        string `json:"name" binding:"required,min=1,max=100"`
	Description string `json:"description"`
}

type UpdateBody struct {
	Name        *string `json:"name" binding:"omitempty,min=1,max=100"`
	Description *string `json:"description"`
	IsActive    *bool   `json:"is_active"`
}
