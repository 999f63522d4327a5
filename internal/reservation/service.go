package reservation

import (
	"context"
	"math"
	"time"

	"github.com/campusbook/reservation-backend/internal/availability"
	"github.com/campusbook/reservation-backend/internal/space"
	"github.com/campusbook/reservation-backend/internal/user"
)

type CreateRequest struct {
	UserID       string
	SpaceID      string
	Date         time.Time
	StartTime    string
	EndTime      string
	Reason       string
	Observations string
}

type Service interface {
	// Create books a space for the user. Status is always pending on
	// creation; callers cannot choose it. The total price is computed
	// from the space's hourly price.
	Create(ctx context.Context, req CreateRequest) (*Reservation, error)
	GetByID(ctx context.Context, id string, actorID string, isAdmin bool) (*Reservation, error)
	List(ctx context.Context, filter Filter) ([]*Reservation, int, error)
	// Cancel sets the status to cancelled. Cancelling an already
	// cancelled reservation is a no-op success.
	Cancel(ctx context.Context, id string, actorID string, isAdmin bool) (*Reservation, error)
	// SetStatus overwrites the status from a token. There is no
	// transition graph: an admin may re-open a cancelled reservation.
	SetStatus(ctx context.Context, id string, token string) (*Reservation, error)
	Delete(ctx context.Context, id string, actorID string, isAdmin bool) error
}

type service struct {
	repo         Repository
	spaceService space.Service
	availService availability.Service
	userService  user.Service
}

func NewService(repo Repository, spaceService space.Service, availService availability.Service, userService user.Service) Service {
	return &service{
		repo:         repo,
		spaceService: spaceService,
		availService: availService,
		userService:  userService,
	}
}

// canModify is the single ownership predicate applied to every mutating
// operation on a reservation, including hard delete.
func canModify(actorID string, isAdmin bool, rv *Reservation) bool {
	return isAdmin || rv.UserID == actorID
}

func (s *service) Create(ctx context.Context, req CreateRequest) (*Reservation, error) {
	start, err := availability.ParseClock(req.StartTime)
	if err != nil {
		return nil, ErrInvalidTimeRange
	}
	end, err := availability.ParseClock(req.EndTime)
	if err != nil {
		return nil, ErrInvalidTimeRange
	}
	if start >= end {
		return nil, ErrInvalidTimeRange
	}

	startAt, err := combine(req.Date, start)
	if err != nil {
		return nil, ErrInvalidTimeRange
	}
	if startAt.Before(time.Now().UTC()) {
		return nil, ErrStartTimePast
	}

	if _, err := s.userService.GetByID(ctx, req.UserID); err != nil {
		return nil, ErrUserNotFound
	}

	sp, err := s.spaceService.GetByID(ctx, req.SpaceID)
	if err != nil || !sp.IsActive {
		return nil, ErrSpaceNotFound
	}

	// The requested range must sit inside a single recurring window.
	weekday := int(req.Date.Weekday())
	covered, err := s.availService.Covers(ctx, req.SpaceID, weekday, start, end)
	if err != nil {
		return nil, err
	}
	if !covered {
		return nil, ErrOutsideSchedule
	}

	// Reject double bookings outright rather than letting two of them race
	// into the ledger.
	hasOverlap, err := s.repo.HasOverlap(ctx, req.SpaceID, req.Date, start, end, "")
	if err != nil {
		return nil, err
	}
	if hasOverlap {
		return nil, ErrTimeConflict
	}

	rv := &Reservation{
		UserID:       req.UserID,
		SpaceID:      req.SpaceID,
		Date:         req.Date,
		StartTime:    start,
		EndTime:      end,
		Reason:       req.Reason,
		Observations: req.Observations,
		Status:       StatusPending,
		TotalPrice:   totalPrice(start, end, sp.PricePerHour),
	}

	if err := s.repo.Create(ctx, rv); err != nil {
		return nil, err
	}

	return s.repo.GetByID(ctx, rv.ID)
}

func (s *service) GetByID(ctx context.Context, id string, actorID string, isAdmin bool) (*Reservation, error) {
	rv, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !canModify(actorID, isAdmin, rv) {
		return nil, ErrPermissionDenied
	}
	return rv, nil
}

func (s *service) List(ctx context.Context, filter Filter) ([]*Reservation, int, error) {
	return s.repo.List(ctx, filter)
}

func (s *service) Cancel(ctx context.Context, id string, actorID string, isAdmin bool) (*Reservation, error) {
	rv, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !canModify(actorID, isAdmin, rv) {
		return nil, ErrPermissionDenied
	}

	if rv.Status == StatusCancelled {
		return rv, nil
	}

	if err := s.repo.UpdateStatus(ctx, id, StatusCancelled); err != nil {
		return nil, err
	}
	rv.Status = StatusCancelled
	return rv, nil
}

func (s *service) SetStatus(ctx context.Context, id string, token string) (*Reservation, error) {
	rv, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	status, err := ParseStatus(token)
	if err != nil {
		return nil, err
	}

	if err := s.repo.UpdateStatus(ctx, id, status); err != nil {
		return nil, err
	}
	rv.Status = status
	return rv, nil
}

func (s *service) Delete(ctx context.Context, id string, actorID string, isAdmin bool) error {
	rv, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if !canModify(actorID, isAdmin, rv) {
		return ErrPermissionDenied
	}
	return s.repo.Delete(ctx, id)
}

// combine builds the UTC instant for a date plus a HH:MM:SS clock.
func combine(date time.Time, clock string) (time.Time, error) {
	t, err := time.Parse("15:04:05", clock)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(date.Year(), date.Month(), date.Day(),
		t.Hour(), t.Minute(), t.Second(), 0, time.UTC), nil
}

// totalPrice charges the duration at the space's hourly price, rounded
// to cents.
func totalPrice(start, end string, pricePerHour float64) float64 {
	st, _ := time.Parse("15:04:05", start)
	et, _ := time.Parse("15:04:05", end)
	hours := et.Sub(st).Hours()
	return math.Round(hours*pricePerHour*100) / 100
}
