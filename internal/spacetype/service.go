package spacetype

import (
	"context"
	"strings"
)

type CreateRequest struct {
	Name        string
	Description string
	Icon        string
}

type UpdateRequest struct {
	Name        *string
	Description *string
	Icon        *string
	IsActive    *bool
}

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*SpaceType, error)
	GetByID(ctx context.Context, id string) (*SpaceType, error)
	ListActive(ctx context.Context) ([]*SpaceType, error)
	Update(ctx context.Context, id string, req UpdateRequest) (*SpaceType, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Create(ctx context.Context, req CreateRequest) (*SpaceType, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, ErrNameRequired
	}

	st := &SpaceType{
		Name:        req.Name,
		Description: req.Description,
		Icon:        req.Icon,
		IsActive:    true,
	}

	if err := s.repo.Create(ctx, st); err != nil {
		return nil, err
	}
	return st, nil
}

func (s *service) GetByID(ctx context.Context, id string) (*SpaceType, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) ListActive(ctx context.Context) ([]*SpaceType, error) {
	return s.repo.ListActive(ctx)
}

func (s *service) Update(ctx context.Context, id string, req UpdateRequest) (*SpaceType, error) {
	st, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		if strings.TrimSpace(*req.Name) == "" {
			return nil, ErrNameRequired
		}
		st.Name = *req.Name
	}
	if req.Description != nil {
		st.Description = *req.Description
	}
	if req.Icon != nil {
		st.Icon = *req.Icon
	}
	if req.IsActive != nil {
		st.IsActive = *req.IsActive
	}

	if err := s.repo.Update(ctx, st); err != nil {
		return nil, err
	}
	return st, nil
}

// Delete flips the active flag. Rows are never removed so that spaces
// referencing the type keep resolving.
func (s *service) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.repo.SoftDelete(ctx, id)
}
