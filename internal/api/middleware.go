package api

import (
	"net/http"

	"github.com/campusbook/reservation-backend/internal/auth"
	"github.com/campusbook/reservation-backend/internal/user"
	"github.com/gin-gonic/gin"
)

// RequireAdmin ensures the authenticated user holds the admin role.
// The role is read from the directory on every request so a revoked
// admin loses access immediately, regardless of token lifetime.
// It MUST be used after auth.AuthRequired.
func RequireAdmin(userService user.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := auth.GetUserID(c)
		if userID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		u, err := userService.GetByID(c.Request.Context(), userID)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "user not found"})
			return
		}

		if u.Role != user.RoleAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "forbidden: admin access required"})
			return
		}

		c.Next()
	}
}
