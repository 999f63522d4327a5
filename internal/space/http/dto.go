package http

import (
	"time"

	"github.com/campusbook/reservation-backend/internal/pkg/request"
	"github.com/campusbook/reservation-backend/internal/space"
)

// ListSpacesRequest defines query parameters for listing spaces.
type ListSpacesRequest struct {
	request.ListParams
	SpaceTypeID     string `form:"space_type_id" binding:"omitempty,uuid"`
	IncludeInactive bool   `form:"include_inactive"`
}

// Validate performs custom validation for ListSpacesRequest.
func (r *ListSpacesRequest) Validate() error {
	return nil
}

type SpaceResponse struct {
	ID            string    `json:"id"`
	SpaceTypeID   string    `json:"space_type_id"`
	SpaceTypeName string    `json:"space_type_name"`
	Name          string    `json:"name"`
	Description   string    `json:"description"`
	Location      string    `json:"location"`
	Capacity      int       `json:"capacity"`
	PricePerHour  float64   `json:"price_per_hour"`
	Equipment     string    `json:"equipment"`
	ImageURL      *string   `json:"image_url"`
	IsActive      bool      `json:"is_active"`
	CreatedAt     time.Time `json:"created_at"`
}

func NewResponse(sp *space.Space) SpaceResponse {
	return SpaceResponse{
		ID:            sp.ID,
		SpaceTypeID:   sp.SpaceTypeID,
		SpaceTypeName: sp.SpaceTypeName,
		Name:          sp.Name,
		Description:   sp.Description,
		Location:      sp.Location,
		Capacity:      sp.Capacity,
		PricePerHour:  sp.PricePerHour,
		Equipment:     sp.Equipment,
		ImageURL:      sp.ImageURL,
		IsActive:      sp.IsActive,
		CreatedAt:     sp.CreatedAt,
	}
}

type CreateBody struct {
	SpaceTypeID  string  `json:"space_type_id" binding:"required,uuid"`
	Name         string  `json:"name" binding:"required,min=1,max=150"`
	Description  string  `json:"description"`
	Location     string  `json:"location" binding:"required,max=200"`
	Capacity     int     `json:"capacity" binding:"required,gt=0"`
	PricePerHour float64 `json:"price_per_hour" binding:"gte=0"`
	Equipment    string  `json:"equipment"`
}

type UpdateBody struct {
	SpaceTypeID  string  `json:"space_type_id" binding:"required,uuid"`
	Name         string  `json:"name" binding:"required,min=1,max=150"`
	Description  string  `json:"description"`
	Location     string  `json:"location" binding:"required,max=200"`
	Capacity     int     `json:"capacity" binding:"required,gt=0"`
	PricePerHour float64 `json:"price_per_hour" binding:"gte=0"`
	Equipment    string  `json:"equipment"`
	IsActive     bool    `json:"is_active"`
	ImageURL     *string `json:"image_url" binding:"omitempty,max=500"`
}
