package space

import (
	"net/http"
	"time"

	"github.com/campusbook/reservation-backend/internal/pkg/apperror"
)

var (
	ErrNotFound         = apperror.New(http.StatusNotFound, "space not found")
	ErrNameRequired     = apperror.New(http.StatusBadRequest, "name cannot be empty")
	ErrInvalidCapacity  = apperror.New(http.StatusBadRequest, "capacity must be greater than zero")
	ErrInvalidPrice     = apperror.New(http.StatusBadRequest, "hourly price cannot be negative")
	ErrInvalidSpaceType = apperror.New(http.StatusBadRequest, "invalid space_type_id")
)

// Space represents a bookable campus facility (e.g., Computer Lab A, Court 1).
type Space struct {
	ID            string
	SpaceTypeID   string
	SpaceTypeName string
	Name          string
	Description   string
	Location      string
	Capacity      int
	PricePerHour  float64
	Equipment     string
	ImageURL      *string
	IsActive      bool
	CreatedAt     time.Time
}

// Filter defines parameters for listing spaces.
type Filter struct {
	SpaceTypeID     string
	IncludeInactive bool
	Page            int
	PageSize        int
}
