package user

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// GoogleIdentity holds the identity fields received from a Google sign-in.
type GoogleIdentity struct {
	GoogleID  string
	Email     string
	FirstName string
	LastName  string
}

// UpdateProfileRequest overwrites the editable profile fields of a user.
type UpdateProfileRequest struct {
	FirstName string
	LastName  string
	Phone     string
	IsActive  bool
	Role      Role
}

// Service defines business logic related to users.
type Service interface {
	// EnsureGoogleUser returns the account matching the identity's email,
	// creating it on first sign-in. Existing accounts only get their
	// external identity backfilled; role and profile are never touched.
	EnsureGoogleUser(ctx context.Context, identity GoogleIdentity) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	GetByID(ctx context.Context, id string) (*User, error)
	List(ctx context.Context, filter Filter) ([]*User, int, error)
	UpdateProfile(ctx context.Context, id string, req UpdateProfileRequest) (*User, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	repo Repository
}

// NewService creates a new user Service.
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) EnsureGoogleUser(ctx context.Context, identity GoogleIdentity) (*User, error) {
	cleanEmail := normalizeEmail(identity.Email)
	if cleanEmail == "" {
		return nil, ErrEmailRequired
	}

	u, err := s.repo.GetByEmail(ctx, cleanEmail)
	if err == nil {
		// Known account. Backfill the external identity once; everything
		// else (including role) stays as the directory has it.
		if u.GoogleID == nil && identity.GoogleID != "" {
			if err := s.repo.SetGoogleID(ctx, u.ID, identity.GoogleID); err != nil {
				return nil, err
			}
			gid := identity.GoogleID
			u.GoogleID = &gid
		}
		return u, nil
	}
	if !errors.Is(err, ErrNotFound) {
		return nil, fmt.Errorf("failed to look up user by email: %w", err)
	}

	newUser := &User{
		Email:     cleanEmail,
		FirstName: identity.FirstName,
		LastName:  identity.LastName,
		Role:      RoleUser,
		IsActive:  true,
	}
	if identity.GoogleID != "" {
		gid := identity.GoogleID
		newUser.GoogleID = &gid
	}

	if err := s.repo.Create(ctx, newUser); err != nil {
		return nil, err
	}

	return newUser, nil
}

func (s *service) GetByEmail(ctx context.Context, email string) (*User, error) {
	return s.repo.GetByEmail(ctx, normalizeEmail(email))
}

func (s *service) GetByID(ctx context.Context, id string) (*User, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) List(ctx context.Context, filter Filter) ([]*User, int, error) {
	return s.repo.List(ctx, filter)
}

func (s *service) UpdateProfile(ctx context.Context, id string, req UpdateProfileRequest) (*User, error) {
	u, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Role != RoleAdmin && req.Role != RoleUser {
		return nil, ErrInvalidRole
	}

	u.FirstName = req.FirstName
	u.LastName = req.LastName
	u.Phone = req.Phone
	u.IsActive = req.IsActive
	u.Role = req.Role

	if err := s.repo.Update(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

// normalizeEmail trims spaces and lowercases the email.
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
