package spacetype

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository interface {
	Create(ctx context.Context, st *SpaceType) error
	GetByID(ctx context.Context, id string) (*SpaceType, error)
	// ListActive returns active entries only; soft-deleted rows stay
	// reachable through GetByID.
	ListActive(ctx context.Context) ([]*SpaceType, error)
	Update(ctx context.Context, st *SpaceType) error
	SoftDelete(ctx context.Context, id string) error
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

func (r *pgxRepository) Create(ctx context.Context, st *SpaceType) error {
	const query = `
		INSERT INTO public.space_types (name, description, icon, is_active)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`
	err := r.pool.QueryRow(ctx, query, st.Name, st.Description, st.Icon, st.IsActive).
		Scan(&st.ID, &st.CreatedAt)
	if err != nil {
		return fmt.Errorf("create space type failed: %w", err)
	}
	return nil
}

func (r *pgxRepository) GetByID(ctx context.Context, id string) (*SpaceType, error) {
	const query = `
		SELECT id, name, description, icon, is_active, created_at
		FROM public.space_types
		WHERE id = $1
	`
	row := r.pool.QueryRow(ctx, query, id)

	var st SpaceType
	if err := row.Scan(&st.ID, &st.Name, &st.Description, &st.Icon, &st.IsActive, &st.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get space type failed: %w", err)
	}
	return &st, nil
}

func (r *pgxRepository) ListActive(ctx context.Context) ([]*SpaceType, error) {
	const query = `
		SELECT id, name, description, icon, is_active, created_at
		FROM public.space_types
		WHERE is_active = true
		ORDER BY name
	`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list space types failed: %w", err)
	}
	defer rows.Close()

	var result []*SpaceType
	for rows.Next() {
		var st SpaceType
		if err := rows.Scan(&st.ID, &st.Name, &st.Description, &st.Icon, &st.IsActive, &st.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan space type failed: %w", err)
		}
		result = append(result, &st)
	}

	return result, nil
}

func (r *pgxRepository) Update(ctx context.Context, st *SpaceType) error {
	const query = `
		UPDATE public.space_types
		SET name = $1, description = $2, icon = $3, is_active = $4
		WHERE id = $5
	`
	ct, err := r.pool.Exec(ctx, query, st.Name, st.Description, st.Icon, st.IsActive, st.ID)
	if err != nil {
		return fmt.Errorf("update space type failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *pgxRepository) SoftDelete(ctx context.Context, id string) error {
	const query = `UPDATE public.space_types SET is_active = false WHERE id = $1`
	ct, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("soft delete space type failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
