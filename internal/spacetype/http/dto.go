package http

import (
	"time"

	"github.com/campusbook/reservation-backend/internal/spacetype"
)

type SpaceTypeResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Icon        string    `json:"icon"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
}

func NewResponse(st *spacetype.SpaceType) SpaceTypeResponse {
	return SpaceTypeResponse{
		ID:          st.ID,
		Name:        st.Name,
		Description: st.Description,
		Icon:        st.Icon,
		IsActive:    st.IsActive,
		CreatedAt:   st.CreatedAt,
	}
}

type CreateBody struct {
	Name        string `json:"name" binding:"required,min=1,max=100"`
	Description string `json:"description"`
	Icon        string `json:"icon" binding:"max=50"`
}

type UpdateBody struct {
	Name        *string `json:"name" binding:"omitempty,min=1,max=100"`
	Description *string `json:"description"`
	Icon        *string `json:"icon" binding:"omitempty,max=50"`
	IsActive    *bool   `json:"is_active"`
}
