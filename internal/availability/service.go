package availability

import (
	"context"

	"github.com/campusbook/reservation-backend/internal/space"
)

type CreateRequest struct {
	SpaceID   string
	Weekday   int
	StartTime string
	EndTime   string
}

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*Window, error)
	ListForSpace(ctx context.Context, spaceID string) ([]*Window, error)
	FindCovering(ctx context.Context, spaceID string, weekday int, start, end string) ([]*Window, error)
	// Covers reports whether any single active window fully contains the
	// requested range on the given weekday.
	Covers(ctx context.Context, spaceID string, weekday int, start, end string) (bool, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	repo         Repository
	spaceService space.Service
}

func NewService(repo Repository, spaceService space.Service) Service {
	return &service{
		repo:         repo,
		spaceService: spaceService,
	}
}

func (s *service) Create(ctx context.Context, req CreateRequest) (*Window, error) {
	if req.Weekday < 0 || req.Weekday > 6 {
		return nil, ErrInvalidWeekday
	}

	start, err := ParseClock(req.StartTime)
	if err != nil {
		return nil, err
	}
	end, err := ParseClock(req.EndTime)
	if err != nil {
		return nil, err
	}
	if !clockBefore(start, end) {
		return nil, ErrInvalidTimeRange
	}

	if req.SpaceID == "" {
		return nil, ErrInvalidSpace
	}
	if _, err := s.spaceService.GetByID(ctx, req.SpaceID); err != nil {
		return nil, ErrInvalidSpace
	}

	w := &Window{
		SpaceID:   req.SpaceID,
		Weekday:   req.Weekday,
		StartTime: start,
		EndTime:   end,
		IsActive:  true,
	}

	if err := s.repo.Create(ctx, w); err != nil {
		return nil, err
	}
	return w, nil
}

func (s *service) ListForSpace(ctx context.Context, spaceID string) ([]*Window, error) {
	return s.repo.ListForSpace(ctx, spaceID)
}

func (s *service) FindCovering(ctx context.Context, spaceID string, weekday int, start, end string) ([]*Window, error) {
	if weekday < 0 || weekday > 6 {
		return nil, ErrInvalidWeekday
	}

	normStart, err := ParseClock(start)
	if err != nil {
		return nil, err
	}
	normEnd, err := ParseClock(end)
	if err != nil {
		return nil, err
	}
	if !clockBefore(normStart, normEnd) {
		return nil, ErrInvalidTimeRange
	}

	return s.repo.FindCovering(ctx, spaceID, weekday, normStart, normEnd)
}

func (s *service) Covers(ctx context.Context, spaceID string, weekday int, start, end string) (bool, error) {
	windows, err := s.FindCovering(ctx, spaceID, weekday, start, end)
	if err != nil {
		return false, err
	}
	return len(windows) > 0, nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.repo.SoftDelete(ctx, id)
}
