package reason

import (
	"net/http"
	"time"

	"github.com/campusbook/reservation-backend/internal/pkg/apperror"
)

var (
	ErrNotFound     = apperror.New(http.StatusNotFound, "reservation reason not found")
	ErrNameRequired = apperror.New(http.StatusBadRequest, "name cannot be empty")
)

// Reason is a predefined purpose a reservation can be made for
// (e.g., Group Study, Research Project). Reservations store the chosen
// reason as free text, not as a foreign key.
type Reason struct {
	ID          string
	Name        string
	Description string
	IsActive    bool
	CreatedAt   time.Time
}
