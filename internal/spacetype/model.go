package spacetype

import (
	"net/http"
	"time"

	"github.com/campusbook/reservation-backend/internal/pkg/apperror"
)

var (
	ErrNotFound     = apperror.New(http.StatusNotFound, "space type not found")
	ErrNameRequired = apperror.New(http.StatusBadRequest, "name cannot be empty")
)

// SpaceType is a category of bookable spaces (e.g., Laboratory, Sports Court).
type SpaceType struct {
	ID          string
	Name        string
	Description string
	Icon        string
	IsActive    bool
	CreatedAt   time.Time
}
