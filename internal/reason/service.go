package reason

import (
	"context"
	"strings"
)

type CreateRequest struct {
	Name        string
	Description string
}

type UpdateRequest struct {
	Name        *string
	Description *string
	IsActive    *bool
}

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*Reason, error)
	GetByID(ctx context.Context, id string) (*Reason, error)
	ListActive(ctx context.Context) ([]*Reason, error)
	Update(ctx context.Context, id string, req UpdateRequest) (*Reason, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Create(ctx context.Context, req CreateRequest) (*Reason, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, ErrNameRequired
	}

	rs := &Reason{
		Name:        req.Name,
		Description: req.Description,
		IsActive:    true,
	}

	if err := s.repo.Create(ctx, rs); err != nil {
		return nil, err
	}
	return rs, nil
}

func (s *service) GetByID(ctx context.Context, id string) (*Reason, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) ListActive(ctx context.Context) ([]*Reason, error) {
	return s.repo.ListActive(ctx)
}

func (s *service) Update(ctx context.Context, id string, req UpdateRequest) (*Reason, error) {
	rs, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		if strings.TrimSpace(*req.Name) == "" {
			return nil, ErrNameRequired
		}
		rs.Name = *req.Name
	}
	if req.Description != nil {
		rs.Description = *req.Description
	}
	if req.IsActive != nil {
		rs.IsActive = *req.IsActive
	}

	if err := s.repo.Update(ctx, rs); err != nil {
		return nil, err
	}
	return rs, nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.repo.SoftDelete(ctx, id)
}
