package user

import (
	"net/http"
	"strings"
	"time"

	"github.com/campusbook/reservation-backend/internal/pkg/apperror"
)

var (
	ErrNotFound         = apperror.New(http.StatusNotFound, "user not found")
	ErrEmailAlreadyUsed = apperror.New(http.StatusConflict, "email already used")
	ErrEmailRequired    = apperror.New(http.StatusBadRequest, "email is required")
	ErrInvalidRole      = apperror.New(http.StatusBadRequest, "invalid role")
)

type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
)

// ParseRole parses a role token case-insensitively against the known roles.
func ParseRole(s string) (Role, error) {
	switch Role(strings.ToLower(strings.TrimSpace(s))) {
	case RoleAdmin:
		return RoleAdmin, nil
	case RoleUser:
		return RoleUser, nil
	default:
		return "", ErrInvalidRole
	}
}

// User represents an account in the institutional directory.
type User struct {
	ID        string // UUID
	Email     string
	FirstName string
	LastName  string
	Phone     string
	Role      Role
	IsActive  bool
	GoogleID  *string // External identity; nil until the user signs in with Google
	CreatedAt time.Time
}

// Filter defines filter options for listing users.
type Filter struct {
	Email    string
	Role     string
	IsActive *bool // Use pointer to distinguish between false and nil (not set)

	Page     int
	PageSize int
}
