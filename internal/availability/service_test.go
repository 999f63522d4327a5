package availability

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campusbook/reservation-backend/internal/space"
)

type fakeRepo struct {
	nextID  int
	windows map[string]*Window
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{windows: map[string]*Window{}}
}

func (r *fakeRepo) Create(_ context.Context, w *Window) error {
	r.nextID++
	w.ID = fmt.Sprintf("win-%d", r.nextID)
	cp := *w
	r.windows[w.ID] = &cp
	return nil
}

func (r *fakeRepo) GetByID(_ context.Context, id string) (*Window, error) {
	w, ok := r.windows[id]
	if !ok || !w.IsActive {
		return nil, ErrNotFound
	}
	cp := *w
	return &cp, nil
}

func (r *fakeRepo) ListForSpace(_ context.Context, spaceID string) ([]*Window, error) {
	var out []*Window
	for _, w := range r.windows {
		if w.SpaceID == spaceID && w.IsActive {
			cp := *w
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeRepo) FindCovering(_ context.Context, spaceID string, weekday int, start, end string) ([]*Window, error) {
	var out []*Window
	for _, w := range r.windows {
		if w.SpaceID == spaceID && w.Weekday == weekday && w.IsActive &&
			w.StartTime <= start && w.EndTime >= end {
			cp := *w
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeRepo) SoftDelete(_ context.Context, id string) error {
	w, ok := r.windows[id]
	if !ok {
		return ErrNotFound
	}
	w.IsActive = false
	return nil
}

type fakeSpaceService struct {
	known map[string]bool
}

func (s *fakeSpaceService) Create(context.Context, space.CreateRequest) (*space.Space, error) {
	panic("not used")
}

func (s *fakeSpaceService) GetByID(_ context.Context, id string) (*space.Space, error) {
	if !s.known[id] {
		return nil, space.ErrNotFound
	}
	return &space.Space{ID: id, IsActive: true}, nil
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

func newTestService(t *testing.T) (Service, *fakeRepo) {
	t.Helper()
	repo := newFakeRepo()
	spaces := &fakeSpaceService{known: map[string]bool{"space-1": true}}
	return NewService(repo, spaces), repo
}

func TestCreateWindow(t *testing.T) {
	ctx := context.Background()

	t.Run("normalizes clocks and starts active", func(t *testing.T) {
		svc, _ := newTestService(t)

		w, err := svc.Create(ctx, CreateRequest{
			SpaceID: "space-1", Weekday: 1, StartTime: "8:00", EndTime: "22:00",
		})
		require.NoError(t, err)
		assert.Equal(t, "08:00:00", w.StartTime)
		assert.Equal(t, "22:00:00", w.EndTime)
		assert.True(t, w.IsActive)
	})

	t.Run("validation", func(t *testing.T) {
		svc, _ := newTestService(t)

		_, err := svc.Create(ctx, CreateRequest{SpaceID: "space-1", Weekday: 7, StartTime: "08:00", EndTime: "10:00"})
		assert.ErrorIs(t, err, ErrInvalidWeekday)

		_, err = svc.Create(ctx, CreateRequest{SpaceID: "space-1", Weekday: 1, StartTime: "late", EndTime: "10:00"})
		assert.ErrorIs(t, err, ErrInvalidClock)

		_, err = svc.Create(ctx, CreateRequest{SpaceID: "space-1", Weekday: 1, StartTime: "10:00", EndTime: "10:00"})
		assert.ErrorIs(t, err, ErrInvalidTimeRange)

		_, err = svc.Create(ctx, CreateRequest{SpaceID: "space-9", Weekday: 1, StartTime: "08:00", EndTime: "10:00"})
		assert.ErrorIs(t, err, ErrInvalidSpace)
	})
}

func TestCovers(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	_, err := svc.Create(ctx, CreateRequest{
		SpaceID: "space-1", Weekday: 1, StartTime: "08:00", EndTime: "12:00",
	})
	require.NoError(t, err)

	t.Run("fully inside the window", func(t *testing.T) {
		ok, err := svc.Covers(ctx, "space-1", 1, "09:00", "11:00")
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("exact window bounds", func(t *testing.T) {
		ok, err := svc.Covers(ctx, "space-1", 1, "08:00", "12:00")
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("partial overlap does not cover", func(t *testing.T) {
		ok, err := svc.Covers(ctx, "space-1", 1, "07:00", "09:00")
		require.NoError(t, err)
		assert.False(t, ok, "a window must contain the whole range, overlap is not enough")
	})

	t.Run("different weekday", func(t *testing.T) {
		ok, err := svc.Covers(ctx, "space-1", 2, "09:00", "11:00")
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("deleted window no longer covers", func(t *testing.T) {
		svc2, _ := newTestService(t)

		w, err := svc2.Create(ctx, CreateRequest{
			SpaceID: "space-1", Weekday: 3, StartTime: "08:00", EndTime: "12:00",
		})
		require.NoError(t, err)

		require.NoError(t, svc2.Delete(ctx, w.ID))

		ok, err := svc2.Covers(ctx, "space-1", 3, "09:00", "10:00")
		require.NoError(t, err)
		assert.False(t, ok)
	})
}
