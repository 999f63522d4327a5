package reservation

import (
	"net/http"
	"strings"
	"time"

	"github.com/campusbook/reservation-backend/internal/pkg/apperror"
)

var (
	ErrNotFound         = apperror.New(http.StatusNotFound, "reservation not found")
	ErrUserNotFound     = apperror.New(http.StatusNotFound, "user not found")
	ErrSpaceNotFound    = apperror.New(http.StatusNotFound, "space not found")
	ErrInvalidTimeRange = apperror.New(http.StatusBadRequest, "start time must be before end time")
	ErrStartTimePast    = apperror.New(http.StatusBadRequest, "cannot create reservation in the past")
	ErrInvalidStatus    = apperror.New(http.StatusBadRequest, "invalid reservation status")
	ErrTimeConflict     = apperror.New(http.StatusConflict, "time slot already reserved")
	ErrOutsideSchedule  = apperror.New(http.StatusConflict, "requested time is outside the space's availability")
	ErrPermissionDenied = apperror.New(http.StatusForbidden, "permission denied")
)

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
	StatusCompleted Status = "completed"
)

// ParseStatus parses a status token case-insensitively against the known
// states. An unknown token is an invalid-input error, never a not-found.
func ParseStatus(token string) (Status, error) {
	switch Status(strings.ToLower(strings.TrimSpace(token))) {
	case StatusPending:
		return StatusPending, nil
	case StatusConfirmed:
		return StatusConfirmed, nil
	case StatusCancelled:
		return StatusCancelled, nil
	case StatusCompleted:
		return StatusCompleted, nil
	default:
		return "", ErrInvalidStatus
	}
}

// Reservation records one user's booking of a space for a date and time
// range. Times are wall-clock HH:MM:SS strings on the reservation date.
type Reservation struct {
	ID           string
	UserID       string
	UserName     string
	SpaceID      string
	SpaceName    string
	Date         time.Time
	StartTime    string
	EndTime      string
	Reason       string
	Status       Status
	TotalPrice   float64
	Observations string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Filter defines parameters for listing reservations.
type Filter struct {
	UserID   string
	SpaceID  string
	Status   string
	DateFrom *time.Time
	DateTo   *time.Time
	Page     int
	PageSize int
}
