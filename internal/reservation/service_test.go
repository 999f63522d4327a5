package reservation

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campusbook/reservation-backend/internal/availability"
	"github.com/campusbook/reservation-backend/internal/space"
	"github.com/campusbook/reservation-backend/internal/user"
)

//
// In-memory fakes
//

type fakeRepo struct {
	nextID int
	items  map[string]*Reservation
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{items: map[string]*Reservation{}}
}

func (r *fakeRepo) Create(_ context.Context, rv *Reservation) error {
	r.nextID++
	rv.ID = fmt.Sprintf("rv-%d", r.nextID)
	rv.CreatedAt = time.Now()
	rv.UpdatedAt = rv.CreatedAt
	cp := *rv
	r.items[rv.ID] = &cp
	return nil
}

func (r *fakeRepo) GetByID(_ context.Context, id string) (*Reservation, error) {
	rv, ok := r.items[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *rv
	return &cp, nil
}

func (r *fakeRepo) List(_ context.Context, filter Filter) ([]*Reservation, int, error) {
	var out []*Reservation
	for _, rv := range r.items {
		if filter.UserID != "" && rv.UserID != filter.UserID {
			continue
		}
		cp := *rv
		out = append(out, &cp)
	}
	return out, len(out), nil
}

func (r *fakeRepo) UpdateStatus(_ context.Context, id string, status Status) error {
	rv, ok := r.items[id]
	if !ok {
		return ErrNotFound
	}
	rv.Status = status
	rv.UpdatedAt = time.Now()
	return nil
}

func (r *fakeRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.items[id]; !ok {
		return ErrNotFound
	}
	delete(r.items, id)
	return nil
}

func (r *fakeRepo) HasOverlap(_ context.Context, spaceID string, date time.Time, start, end string, excludeID string) (bool, error) {
	for _, rv := range r.items {
		if rv.ID == excludeID || rv.SpaceID != spaceID || rv.Status == StatusCancelled {
			continue
		}
		if !rv.Date.Equal(date) {
			continue
		}
		if rv.StartTime < end && rv.EndTime > start {
			return true, nil
		}
	}
	return false, nil
}

type fakeSpaceService struct {
	spaces map[string]*space.Space
}

func (s *fakeSpaceService) Create(context.Context, space.CreateRequest) (*space.Space, error) {
	panic("not used")
}

func (s *fakeSpaceService) GetByID(_ context.Context, id string) (*space.Space, error) {
	sp, ok := s.spaces[id]
	if !ok {
		return nil, space.ErrNotFound
	}
	return sp, nil
}

func (s *fakeSpaceService) List(context.Context, space.Filter) ([]*space.Space, int, error) {
	panic("not used")
}

func (s *fakeSpaceService) Update(context.Context, string, space.UpdateRequest) (*space.Space, error) {
	panic("not used")
}

func (s *fakeSpaceService) Delete(context.Context, string) error { panic("not used") }

func (s *fakeSpaceService) SetImage(context.Context, string, string) (*space.Space, error) {
	panic("not used")
}

type fakeAvailService struct {
	windows []*availability.Window
}

func (s *fakeAvailService) Create(context.Context, availability.CreateRequest) (*availability.Window, error) {
	panic("not used")
}

func (s *fakeAvailService) ListForSpace(context.Context, string) ([]*availability.Window, error) {
	panic("not used")
}

func (s *fakeAvailService) FindCovering(_ context.Context, spaceID string, weekday int, start, end string) ([]*availability.Window, error) {
	var out []*availability.Window
	for _, w := range s.windows {
		if w.SpaceID == spaceID && w.Weekday == weekday && w.StartTime <= start && w.EndTime >= end {
			out = append(out, w)
		}
	}
	return out, nil
}

func (s *fakeAvailService) Covers(ctx context.Context, spaceID string, weekday int, start, end string) (bool, error) {
	windows, err := s.FindCovering(ctx, spaceID, weekday, start, end)
	if err != nil {
		return false, err
	}
	return len(windows) > 0, nil
}

func (s *fakeAvailService) Delete(context.Context, string) error { panic("not used") }

type fakeUserService struct {
	users map[string]*user.User
}

func (s *fakeUserService) EnsureGoogleUser(context.Context, user.GoogleIdentity) (*user.User, error) {
	panic("not used")
}

func (s *fakeUserService) GetByEmail(context.Context, string) (*user.User, error) {
	panic("not used")
}

func (s *fakeUserService) GetByID(_ context.Context, id string) (*user.User, error) {
	u, ok := s.users[id]
	if !ok {
		return nil, user.ErrNotFound
	}
	return u, nil
}

func (s *fakeUserService) List(context.Context, user.Filter) ([]*user.User, int, error) {
	panic("not used")
}

func (s *fakeUserService) UpdateProfile(context.Context, string, user.UpdateProfileRequest) (*user.User, error) {
	panic("not used")
}

func (s *fakeUserService) Delete(context.Context, string) error { panic("not used") }

//
// Fixture
//

func newTestService(t *testing.T) (Service, *fakeRepo) {
	t.Helper()

	repo := newFakeRepo()
	spaces := &fakeSpaceService{spaces: map[string]*space.Space{
		"space-1": {ID: "space-1", Name: "Lab A", PricePerHour: 25, IsActive: true},
		"space-2": {ID: "space-2", Name: "Closed Room", PricePerHour: 10, IsActive: false},
	}}
	// space-1 opens every day from 08:00 to 22:00.
	var windows []*availability.Window
	for day := 0; day <= 6; day++ {
		windows = append(windows, &availability.Window{
			SpaceID: "space-1", Weekday: day,
			StartTime: "08:00:00", EndTime: "22:00:00", IsActive: true,
		})
	}
	avail := &fakeAvailService{windows: windows}
	users := &fakeUserService{users: map[string]*user.User{
		"user-1": {ID: "user-1", Email: "maria.perez@tecsup.edu.pe", Role: user.RoleUser},
		"user-2": {ID: "user-2", Email: "jose.quispe@tecsup.edu.pe", Role: user.RoleUser},
	}}

	return NewService(repo, spaces, avail, users), repo
}

func tomorrow() time.Time {
	d := time.Now().UTC().AddDate(0, 0, 1)
	return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC)
}

func validRequest() CreateRequest {
	return CreateRequest{
		UserID:    "user-1",
		SpaceID:   "space-1",
		Date:      tomorrow(),
		StartTime: "10:00",
		EndTime:   "12:00",
		Reason:    "Proyecto",
	}
}

//
// Tests
//

func TestCreateReservation(t *testing.T) {
	ctx := context.Background()

	t.Run("succeeds with pending status and computed price", func(t *testing.T) {
		svc, _ := newTestService(t)

		rv, err := svc.Create(ctx, validRequest())
		require.NoError(t, err)

		assert.Equal(t, StatusPending, rv.Status, "new reservations must start pending")
		assert.Equal(t, 50.0, rv.TotalPrice, "2 hours at 25/hour")
		assert.Equal(t, "10:00:00", rv.StartTime)
		assert.Equal(t, "12:00:00", rv.EndTime)
	})

	t.Run("fractional hours are charged proportionally", func(t *testing.T) {
		svc, _ := newTestService(t)

		req := validRequest()
		req.StartTime = "10:00"
		req.EndTime = "11:30"

		rv, err := svc.Create(ctx, req)
		require.NoError(t, err)
		assert.Equal(t, 37.5, rv.TotalPrice)
	})

	t.Run("rejects inverted or equal time range", func(t *testing.T) {
		svc, _ := newTestService(t)

		req := validRequest()
		req.StartTime = "12:00"
		req.EndTime = "10:00"
		_, err := svc.Create(ctx, req)
		assert.ErrorIs(t, err, ErrInvalidTimeRange)

		req.EndTime = "12:00"
		_, err = svc.Create(ctx, req)
		assert.ErrorIs(t, err, ErrInvalidTimeRange)
	})

	t.Run("rejects past start time", func(t *testing.T) {
		svc, _ := newTestService(t)

		req := validRequest()
		req.Date = time.Now().UTC().AddDate(0, 0, -1)
		_, err := svc.Create(ctx, req)
		assert.ErrorIs(t, err, ErrStartTimePast)
	})

	t.Run("rejects unknown user", func(t *testing.T) {
		svc, _ := newTestService(t)

		req := validRequest()
		req.UserID = "ghost"
		_, err := svc.Create(ctx, req)
		assert.ErrorIs(t, err, ErrUserNotFound)
	})

	t.Run("rejects inactive space", func(t *testing.T) {
		svc, _ := newTestService(t)

		req := validRequest()
		req.SpaceID = "space-2"
		_, err := svc.Create(ctx, req)
		assert.ErrorIs(t, err, ErrSpaceNotFound)
	})

	t.Run("rejects range outside the weekly schedule", func(t *testing.T) {
		svc, _ := newTestService(t)

		req := validRequest()
		req.StartTime = "07:00"
		req.EndTime = "09:00"
		_, err := svc.Create(ctx, req)
		assert.ErrorIs(t, err, ErrOutsideSchedule, "range cut by the window start must be rejected whole")

		req.StartTime = "21:00"
		req.EndTime = "23:00"
		_, err = svc.Create(ctx, req)
		assert.ErrorIs(t, err, ErrOutsideSchedule)
	})

	t.Run("rejects overlapping reservation", func(t *testing.T) {
		svc, _ := newTestService(t)

		_, err := svc.Create(ctx, validRequest())
		require.NoError(t, err)

		// Same slot, different user.
		req := validRequest()
		req.UserID = "user-2"
		_, err = svc.Create(ctx, req)
		assert.ErrorIs(t, err, ErrTimeConflict)

		// Partial overlap counts too.
		req.StartTime = "11:00"
		req.EndTime = "13:00"
		_, err = svc.Create(ctx, req)
		assert.ErrorIs(t, err, ErrTimeConflict)
	})

	t.Run("back-to-back reservations do not conflict", func(t *testing.T) {
		svc, _ := newTestService(t)

		_, err := svc.Create(ctx, validRequest())
		require.NoError(t, err)

		req := validRequest()
		req.UserID = "user-2"
		req.StartTime = "12:00"
		req.EndTime = "14:00"
		_, err = svc.Create(ctx, req)
		assert.NoError(t, err, "a slot starting exactly when another ends is free")
	})

	t.Run("cancelled reservation frees the slot", func(t *testing.T) {
		svc, _ := newTestService(t)

		rv, err := svc.Create(ctx, validRequest())
		require.NoError(t, err)

		_, err = svc.Cancel(ctx, rv.ID, "user-1", false)
		require.NoError(t, err)

		req := validRequest()
		req.UserID = "user-2"
		_, err = svc.Create(ctx, req)
		assert.NoError(t, err)
	})
}

func TestCancelReservation(t *testing.T) {
	ctx := context.Background()

	t.Run("owner can cancel", func(t *testing.T) {
		svc, _ := newTestService(t)

		rv, err := svc.Create(ctx, validRequest())
		require.NoError(t, err)

		cancelled, err := svc.Cancel(ctx, rv.ID, "user-1", false)
		require.NoError(t, err)
		assert.Equal(t, StatusCancelled, cancelled.Status)
	})

	t.Run("another user cannot cancel", func(t *testing.T) {
		svc, repo := newTestService(t)

		rv, err := svc.Create(ctx, validRequest())
		require.NoError(t, err)

		_, err = svc.Cancel(ctx, rv.ID, "user-2", false)
		assert.ErrorIs(t, err, ErrPermissionDenied)

		stored, err := repo.GetByID(ctx, rv.ID)
		require.NoError(t, err)
		assert.Equal(t, StatusPending, stored.Status, "status must not change on a denied cancel")
	})

	t.Run("admin can cancel someone else's reservation", func(t *testing.T) {
		svc, _ := newTestService(t)

		rv, err := svc.Create(ctx, validRequest())
		require.NoError(t, err)

		cancelled, err := svc.Cancel(ctx, rv.ID, "admin-1", true)
		require.NoError(t, err)
		assert.Equal(t, StatusCancelled, cancelled.Status)
	})

	t.Run("cancelling twice is a no-op", func(t *testing.T) {
		svc, _ := newTestService(t)

		rv, err := svc.Create(ctx, validRequest())
		require.NoError(t, err)

		_, err = svc.Cancel(ctx, rv.ID, "user-1", false)
		require.NoError(t, err)

		again, err := svc.Cancel(ctx, rv.ID, "user-1", false)
		require.NoError(t, err)
		assert.Equal(t, StatusCancelled, again.Status)
	})

	t.Run("unknown reservation", func(t *testing.T) {
		svc, _ := newTestService(t)

		_, err := svc.Cancel(ctx, "missing", "user-1", false)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestSetStatus(t *testing.T) {
	ctx := context.Background()

	t.Run("valid transition", func(t *testing.T) {
		svc, _ := newTestService(t)

		rv, err := svc.Create(ctx, validRequest())
		require.NoError(t, err)

		updated, err := svc.SetStatus(ctx, rv.ID, "CONFIRMED")
		require.NoError(t, err, "status tokens are case-insensitive")
		assert.Equal(t, StatusConfirmed, updated.Status)
	})

	t.Run("bogus status leaves the stored value untouched", func(t *testing.T) {
		svc, repo := newTestService(t)

		rv, err := svc.Create(ctx, validRequest())
		require.NoError(t, err)

		_, err = svc.SetStatus(ctx, rv.ID, "approved")
		assert.ErrorIs(t, err, ErrInvalidStatus)

		stored, err := repo.GetByID(ctx, rv.ID)
		require.NoError(t, err)
		assert.Equal(t, StatusPending, stored.Status)
	})

	t.Run("unknown id beats bad status", func(t *testing.T) {
		svc, _ := newTestService(t)

		_, err := svc.SetStatus(ctx, "missing", "confirmed")
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestDeleteReservation(t *testing.T) {
	ctx := context.Background()

	t.Run("owner can delete", func(t *testing.T) {
		svc, repo := newTestService(t)

		rv, err := svc.Create(ctx, validRequest())
		require.NoError(t, err)

		require.NoError(t, svc.Delete(ctx, rv.ID, "user-1", false))

		_, err = repo.GetByID(ctx, rv.ID)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("another user cannot delete", func(t *testing.T) {
		svc, repo := newTestService(t)

		rv, err := svc.Create(ctx, validRequest())
		require.NoError(t, err)

		err = svc.Delete(ctx, rv.ID, "user-2", false)
		assert.ErrorIs(t, err, ErrPermissionDenied)

		_, err = repo.GetByID(ctx, rv.ID)
		assert.NoError(t, err, "reservation must survive a denied delete")
	})

	t.Run("admin can delete", func(t *testing.T) {
		svc, _ := newTestService(t)

		rv, err := svc.Create(ctx, validRequest())
		require.NoError(t, err)

		assert.NoError(t, svc.Delete(ctx, rv.ID, "admin-1", true))
	})
}

func TestGetByIDOwnership(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	rv, err := svc.Create(ctx, validRequest())
	require.NoError(t, err)

	_, err = svc.GetByID(ctx, rv.ID, "user-1", false)
	assert.NoError(t, err)

	_, err = svc.GetByID(ctx, rv.ID, "user-2", false)
	assert.ErrorIs(t, err, ErrPermissionDenied)

	_, err = svc.GetByID(ctx, rv.ID, "someone", true)
	assert.NoError(t, err)
}
