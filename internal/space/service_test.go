package space

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campusbook/reservation-backend/internal/spacetype"
)

type fakeRepo struct {
	nextID int
	spaces map[string]*Space
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{spaces: map[string]*Space{}}
}

func (r *fakeRepo) Create(_ context.Context, sp *Space) error {
	r.nextID++
	sp.ID = fmt.Sprintf("space-%d", r.nextID)
	cp := *sp
	r.spaces[sp.ID] = &cp
	return nil
}

func (r *fakeRepo) GetByID(_ context.Context, id string) (*Space, error) {
	sp, ok := r.spaces[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *sp
	return &cp, nil
}

func (r *fakeRepo) List(_ context.Context, filter Filter) ([]*Space, int, error) {
	var out []*Space
	for _, sp := range r.spaces {
		if !filter.IncludeInactive && !sp.IsActive {
			continue
		}
		if filter.SpaceTypeID != "" && sp.SpaceTypeID != filter.SpaceTypeID {
			continue
		}
		cp := *sp
		out = append(out, &cp)
	}
	return out, len(out), nil
}

func (r *fakeRepo) Update(_ context.Context, sp *Space) error {
	if _, ok := r.spaces[sp.ID]; !ok {
		return ErrNotFound
	}
	cp := *sp
	r.spaces[sp.ID] = &cp
	return nil
}

func (r *fakeRepo) SoftDelete(_ context.Context, id string) error {
	sp, ok := r.spaces[id]
	if !ok {
		return ErrNotFound
	}
	sp.IsActive = false
	return nil
}

func (r *fakeRepo) SetImageURL(_ context.Context, id, url string) error {
	sp, ok := r.spaces[id]
	if !ok {
		return ErrNotFound
	}
	sp.ImageURL = &url
	return nil
}

type fakeTypeService struct {
	known map[string]bool
}

func (s *fakeTypeService) Create(context.Context, spacetype.CreateRequest) (*spacetype.SpaceType, error) {
	panic("not used")
}

func (s *fakeTypeService) GetByID(_ context.Context, id string) (*spacetype.SpaceType, error) {
	if !s.known[id] {
		return nil, spacetype.ErrNotFound
	}
	return &spacetype.SpaceType{ID: id, Name: "Laboratorio", IsActive: true}, nil
}

func (s *fakeTypeService) ListActive(context.Context) ([]*spacetype.SpaceType, error) {
	panic("not used")
}

func (s *fakeTypeService) Update(context.Context, string, spacetype.UpdateRequest) (*spacetype.SpaceType, error) {
	panic("not used")
}

func (s *fakeTypeService) Delete(context.Context, string) error { panic("not used") }

func newTestService(t *testing.T) (Service, *fakeRepo) {
	t.Helper()
	repo := newFakeRepo()
	types := &fakeTypeService{known: map[string]bool{"type-1": true}}
	return NewService(repo, types), repo
}

func validCreate() CreateRequest {
	return CreateRequest{
		SpaceTypeID:  "type-1",
		Name:         "Laboratorio de Computo A",
		Location:     "Pabellon B",
		Capacity:     30,
		PricePerHour: 25,
	}
}

func TestCreateSpace(t *testing.T) {
	ctx := context.Background()

	t.Run("starts active", func(t *testing.T) {
		svc, _ := newTestService(t)

		sp, err := svc.Create(ctx, validCreate())
		require.NoError(t, err)
		assert.True(t, sp.IsActive)
		assert.NotEmpty(t, sp.ID)
	})

	t.Run("validation", func(t *testing.T) {
		svc, _ := newTestService(t)

		req := validCreate()
		req.Name = "   "
		_, err := svc.Create(ctx, req)
		assert.ErrorIs(t, err, ErrNameRequired)

		req = validCreate()
		req.Capacity = 0
		_, err = svc.Create(ctx, req)
		assert.ErrorIs(t, err, ErrInvalidCapacity)

		req = validCreate()
		req.PricePerHour = -1
		_, err = svc.Create(ctx, req)
		assert.ErrorIs(t, err, ErrInvalidPrice)

		req = validCreate()
		req.SpaceTypeID = "type-9"
		_, err = svc.Create(ctx, req)
		assert.ErrorIs(t, err, ErrInvalidSpaceType)
	})

	t.Run("free spaces are allowed", func(t *testing.T) {
		svc, _ := newTestService(t)

		req := validCreate()
		req.PricePerHour = 0
		_, err := svc.Create(ctx, req)
		assert.NoError(t, err)
	})
}

func TestDeleteSpace(t *testing.T) {
	ctx := context.Background()
	svc, repo := newTestService(t)

	sp, err := svc.Create(ctx, validCreate())
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, sp.ID))

	// The row survives for existing reservations to reference.
	stored, err := repo.GetByID(ctx, sp.ID)
	require.NoError(t, err)
	assert.False(t, stored.IsActive)

	// But it disappears from active listings.
	items, total, err := svc.List(ctx, Filter{})
	require.NoError(t, err)
	assert.Empty(t, items)
	assert.Zero(t, total)

	items, _, err = svc.List(ctx, Filter{IncludeInactive: true})
	require.NoError(t, err)
	assert.Len(t, items, 1)
}

func TestUpdateSpace(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	sp, err := svc.Create(ctx, validCreate())
	require.NoError(t, err)

	updated, err := svc.Update(ctx, sp.ID, UpdateRequest{
		SpaceTypeID:  "type-1",
		Name:         "Laboratorio Renovado",
		Capacity:     40,
		PricePerHour: 30,
		IsActive:     true,
	})
	require.NoError(t, err)
	assert.Equal(t, "Laboratorio Renovado", updated.Name)
	assert.Equal(t, 40, updated.Capacity)

	_, err = svc.Update(ctx, "missing", UpdateRequest{SpaceTypeID: "type-1", Name: "x", Capacity: 1})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSetImage(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	sp, err := svc.Create(ctx, validCreate())
	require.NoError(t, err)

	updated, err := svc.SetImage(ctx, sp.ID, "/v1/files/abc")
	require.NoError(t, err)
	require.NotNil(t, updated.ImageURL)
	assert.Equal(t, "/v1/files/abc", *updated.ImageURL)
}
