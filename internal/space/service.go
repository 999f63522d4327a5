package space

import (
	"context"
	"strings"

	"github.com/campusbook/reservation-backend/internal/spacetype"
)

type CreateRequest struct {
	SpaceTypeID  string
	Name         string
	Description  string
	Location     string
	Capacity     int
	PricePerHour float64
	Equipment    string
}

// UpdateRequest overwrites the editable fields of a space. An admin can
// also flip the active flag back on through this path.
type UpdateRequest struct {
	SpaceTypeID  string
	Name         string
	Description  string
	Location     string
	Capacity     int
	PricePerHour float64
	Equipment    string
	IsActive     bool
	ImageURL     *string
}

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*Space, error)
	GetByID(ctx context.Context, id string) (*Space, error)
	List(ctx context.Context, filter Filter) ([]*Space, int, error)
	Update(ctx context.Context, id string, req UpdateRequest) (*Space, error)
	Delete(ctx context.Context, id string) error
	SetImage(ctx context.Context, id, url string) (*Space, error)
}

type service struct {
	repo      Repository
	stService spacetype.Service
}

func NewService(repo Repository, stService spacetype.Service) Service {
	return &service{
		repo:      repo,
		stService: stService,
	}
}

func (s *service) validate(ctx context.Context, spaceTypeID, name string, capacity int, price float64) error {
	if strings.TrimSpace(name) == "" {
		return ErrNameRequired
	}
	if capacity <= 0 {
		return ErrInvalidCapacity
	}
	if price < 0 {
		return ErrInvalidPrice
	}
	if spaceTypeID == "" {
		return ErrInvalidSpaceType
	}
	if _, err := s.stService.GetByID(ctx, spaceTypeID); err != nil {
		return ErrInvalidSpaceType
	}
	return nil
}

func (s *service) Create(ctx context.Context, req CreateRequest) (*Space, error) {
	if err := s.validate(ctx, req.SpaceTypeID, req.Name, req.Capacity, req.PricePerHour); err != nil {
		return nil, err
	}

	sp := &Space{
		SpaceTypeID:  req.SpaceTypeID,
		Name:         req.Name,
		Description:  req.Description,
		Location:     req.Location,
		Capacity:     req.Capacity,
		PricePerHour: req.PricePerHour,
		Equipment:    req.Equipment,
		// New spaces always start active; any caller-supplied flag is ignored.
		IsActive: true,
	}

	if err := s.repo.Create(ctx, sp); err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, sp.ID)
}

func (s *service) GetByID(ctx context.Context, id string) (*Space, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) List(ctx context.Context, filter Filter) ([]*Space, int, error) {
	return s.repo.List(ctx, filter)
}

func (s *service) Update(ctx context.Context, id string, req UpdateRequest) (*Space, error) {
	sp, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.validate(ctx, req.SpaceTypeID, req.Name, req.Capacity, req.PricePerHour); err != nil {
		return nil, err
	}

	sp.SpaceTypeID = req.SpaceTypeID
	sp.Name = req.Name
	sp.Description = req.Description
	sp.Location = req.Location
	sp.Capacity = req.Capacity
	sp.PricePerHour = req.PricePerHour
	sp.Equipment = req.Equipment
	sp.IsActive = req.IsActive
	sp.ImageURL = req.ImageURL

	if err := s.repo.Update(ctx, sp); err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, id)
}

// Delete flips the active flag. The row and its reservations stay in
// place; it only disappears from active listings.
func (s *service) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.repo.SoftDelete(ctx, id)
}

func (s *service) SetImage(ctx context.Context, id, url string) (*Space, error) {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return nil, err
	}
	if err := s.repo.SetImageURL(ctx, id, url); err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, id)
}
