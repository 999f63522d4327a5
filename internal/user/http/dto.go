package http

import (
	"time"

	"github.com/campusbook/reservation-backend/internal/pkg/request"
	"github.com/campusbook/reservation-backend/internal/user"
)

// ListUsersRequest defines query parameters for listing users.
type ListUsersRequest struct {
	request.ListParams
	Email    string `form:"email"`
	Role     string `form:"role" binding:"omitempty,oneof=admin user"`
	IsActive *bool  `form:"is_active"`
}

// Validate performs custom validation for ListUsersRequest.
func (r *ListUsersRequest) Validate() error {
	return nil
}

// GetUserByEmailRequest looks up a single account by exact email address.
type GetUserByEmailRequest struct {
	Email string `form:"email" binding:"required,email"`
}

// UserResponse is the shape of user data returned in API responses.
type UserResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Phone     string    `json:"phone"`
	Role      string    `json:"role"`
	IsActive  bool      `json:"is_active"`
	GoogleID  *string   `json:"google_id,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// NewUserResponse converts domain user.User to UserResponse used by the API.
func NewUserResponse(u *user.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Phone:     u.Phone,
		Role:      string(u.Role),
		IsActive:  u.IsActive,
		GoogleID:  u.GoogleID,
		CreatedAt: u.CreatedAt,
	}
}

// UpdateUserBody overwrites the editable profile fields.
type UpdateUserBody struct {
	FirstName string `json:"first_name" binding:"required,max=100"`
	LastName  string `json:"last_name" binding:"required,max=100"`
	Phone     string `json:"phone" binding:"max=30"`
	IsActive  bool   `json:"is_active"`
	Role      string `json:"role" binding:"required,oneof=admin user"`
}

// Validate performs custom validation for UpdateUserBody.
func (r *UpdateUserBody) Validate() error {
	return nil
}
