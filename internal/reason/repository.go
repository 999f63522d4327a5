package reason

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository interface {
	Create(ctx context.Context, rs *Reason) error
	GetByID(ctx context.Context, id string) (*Reason, error)
	ListActive(ctx context.Context) ([]*Reason, error)
	Update(ctx context.Context, rs *Reason) error
	SoftDelete(ctx context.Context, id string) error
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

func (r *pgxRepository) Create(ctx context.Context, rs *Reason) error {
	const query = `
		INSERT INTO public.reservation_reasons (name, description, is_active)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`
	err := r.pool.QueryRow(ctx, query, rs.Name, rs.Description, rs.IsActive).
		Scan(&rs.ID, &rs.CreatedAt)
	if err != nil {
		return fmt.Errorf("create reason failed: %w", err)
	}
	return nil
}

func (r *pgxRepository) GetByID(ctx context.Context, id string) (*Reason, error) {
	const query = `
		SELECT id, name, description, is_active, created_at
		FROM public.reservation_reasons
		WHERE id = $1
	`
	row := r.pool.QueryRow(ctx, query, id)

	var rs Reason
	if err := row.Scan(&rs.ID, &rs.Name, &rs.Description, &rs.IsActive, &rs.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get reason failed: %w", err)
	}
	return &rs, nil
}

func (r *pgxRepository) ListActive(ctx context.Context) ([]*Reason, error) {
	const query = `
		SELECT id, name, description, is_active, created_at
		FROM public.reservation_reasons
		WHERE is_active = true
		ORDER BY name
	`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list reasons failed: %w", err)
	}
	defer rows.Close()

	var result []*Reason
	for rows.Next() {
		var rs Reason
		if err := rows.Scan(&rs.ID, &rs.Name, &rs.Description, &rs.IsActive, &rs.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan reason failed: %w", err)
		}
		result = append(result, &rs)
	}

	return result, nil
}

func (r *pgxRepository) Update(ctx context.Context, rs *Reason) error {
	const query = `
		UPDATE public.reservation_reasons
		SET name = $1, description = $2, is_active = $3
		WHERE id = $4
	`
	ct, err := r.pool.Exec(ctx, query, rs.Name, rs.Description, rs.IsActive, rs.ID)
	if err != nil {
		return fmt.Errorf("update reason failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *pgxRepository) SoftDelete(ctx context.Context, id string) error {
	const query = `UPDATE public.reservation_reasons SET is_active = false WHERE id = $1`
	ct, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("soft delete reason failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
