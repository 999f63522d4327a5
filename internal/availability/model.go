package availability

import (
	"net/http"
	"time"

	"github.com/campusbook/reservation-backend/internal/pkg/apperror"
)

var (
	ErrNotFound         = apperror.New(http.StatusNotFound, "availability window not found")
	ErrInvalidWeekday   = apperror.New(http.StatusBadRequest, "weekday must be between 0 (Sunday) and 6 (Saturday)")
	ErrInvalidClock     = apperror.New(http.StatusBadRequest, "time must be in HH:MM or HH:MM:SS format")
	ErrInvalidTimeRange = apperror.New(http.StatusBadRequest, "start time must be before end time")
	ErrInvalidSpace     = apperror.New(http.StatusBadRequest, "invalid space_id")
)

// Window is one recurring weekly opening of a space. Windows describe a
// static schedule; they are never consumed by reservations.
type Window struct {
	ID        string
	SpaceID   string
	Weekday   int // 0=Sunday .. 6=Saturday
	StartTime string
	EndTime   string
	IsActive  bool
}

// ParseClock normalizes a wall-clock string to HH:MM:SS.
// It accepts HH:MM and HH:MM:SS.
func ParseClock(s string) (string, error) {
	for _, layout := range []string{"15:04:05", "15:04"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format("15:04:05"), nil
		}
	}
	return "", ErrInvalidClock
}

// Zero-padded HH:MM:SS strings order correctly as plain strings, so the
// normalized form is comparable without re-parsing.
func clockBefore(a, b string) bool {
	return a < b
}
