package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campusbook/reservation-backend/internal/user"
)

type fakeService struct {
	users map[string]*user.User // keyed by email
}

func (s *fakeService) EnsureGoogleUser(context.Context, user.GoogleIdentity) (*user.User, error) {
	panic("not used")
}

func (s *fakeService) GetByEmail(_ context.Context, email string) (*user.User, error) {
	if u, ok := s.users[email]; ok {
		return u, nil
	}
	return nil, user.ErrNotFound
}

func (s *fakeService) GetByID(context.Context, string) (*user.User, error) {
	panic("not used")
}

func (s *fakeService) List(context.Context, user.Filter) ([]*user.User, int, error) {
	return nil, 0, nil
}

func (s *fakeService) UpdateProfile(context.Context, string, user.UpdateProfileRequest) (*user.User, error) {
	panic("not used")
}

func (s *fakeService) Delete(context.Context, string) error { panic("not used") }

func setupRouter(svc user.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	noop := func(c *gin.Context) { c.Next() }
	RegisterRoutes(r.Group("/v1"), NewHandler(svc), noop, noop)
	return r
}

func TestGetUserByEmail(t *testing.T) {
	svc := &fakeService{users: map[string]*user.User{
		"ana.quispe@tecsup.edu.pe": {
			ID:        "11111111-1111-1111-1111-111111111111",
			Email:     "ana.quispe@tecsup.edu.pe",
			FirstName: "Ana",
			LastName:  "Quispe",
			Role:      user.RoleUser,
			IsActive:  true,
		},
	}}
	r := setupRouter(svc)

	t.Run("existing user", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet,
			"/v1/users/by-email?email=ana.quispe@tecsup.edu.pe", nil))
		require.Equal(t, http.StatusOK, w.Code)

		var got UserResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
		assert.Equal(t, "11111111-1111-1111-1111-111111111111", got.ID)
		assert.Equal(t, "ana.quispe@tecsup.edu.pe", got.Email)
	})

	t.Run("unknown email is a 404, not an empty page", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet,
			"/v1/users/by-email?email=nobody@tecsup.edu.pe", nil))
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("missing parameter", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/users/by-email", nil))
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
