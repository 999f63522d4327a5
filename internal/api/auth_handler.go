package api

import (
	"net/http"
	"strings"

	"github.com/campusbook/reservation-backend/internal/auth"
	"github.com/campusbook/reservation-backend/internal/user"
	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	userService user.Service
	jwtManager  *auth.JWTManager
	// allowedDomain restricts sign-in to one institutional email domain,
	// stored without the leading "@".
	allowedDomain string
}

func NewAuthHandler(
	userService user.Service,
	jwtManager *auth.JWTManager,
	allowedDomain string,
) *AuthHandler {
	return &AuthHandler{
		userService:   userService,
		jwtManager:    jwtManager,
		allowedDomain: allowedDomain,
	}
}

//
// POST /v1/auth/google
//

func (h *AuthHandler) GoogleLogin(c *gin.Context) {
	var req GoogleLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	if !strings.HasSuffix(email, "@"+h.allowedDomain) {
		c.JSON(http.StatusForbidden, gin.H{
			"error": "only @" + h.allowedDomain + " accounts may sign in",
		})
		return
	}

	ctx := c.Request.Context()

	u, err := h.userService.EnsureGoogleUser(ctx, user.GoogleIdentity{
		GoogleID:  req.GoogleID,
		Email:     email,
		FirstName: req.FirstName,
		LastName:  req.LastName,
	})
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if !u.IsActive {
		c.JSON(http.StatusForbidden, gin.H{"error": "account is disabled"})
		return
	}

	token, err := h.jwtManager.GenerateAccessToken(u.ID, u.Email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to generate token"})
		return
	}

	c.JSON(http.StatusOK, LoginResponse{
		AccessToken: token,
		User:        NewUserResponse(u),
	})
}

//
// GET /v1/auth/me
//

func (h *AuthHandler) Me(c *gin.Context) {
	userID := auth.GetUserID(c)
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	u, err := h.userService.GetByID(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not found"})
		return
	}

	c.JSON(http.StatusOK, MeResponse{User: NewUserResponse(u)})
}
