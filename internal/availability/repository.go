package availability

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository interface {
	Create(ctx context.Context, w *Window) error
	GetByID(ctx context.Context, id string) (*Window, error)
	// ListForSpace returns all active windows of a space in no guaranteed
	// order; callers sort by weekday when they need to.
	ListForSpace(ctx context.Context, spaceID string) ([]*Window, error)
	// FindCovering returns the active windows that fully contain the
	// requested range on the given weekday:
	// window.start <= start AND window.end >= end.
	FindCovering(ctx context.Context, spaceID string, weekday int, start, end string) ([]*Window, error)
	SoftDelete(ctx context.Context, id string) error
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

func (r *pgxRepository) Create(ctx context.Context, w *Window) error {
	const query = `
		INSERT INTO public.availability_windows (space_id, weekday, start_time, end_time, is_active)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`
	err := r.pool.QueryRow(ctx, query, w.SpaceID, w.Weekday, w.StartTime, w.EndTime, w.IsActive).
		Scan(&w.ID)
	if err != nil {
		return fmt.Errorf("create availability window failed: %w", err)
	}
	return nil
}

func (r *pgxRepository) GetByID(ctx context.Context, id string) (*Window, error) {
	const query = `
		SELECT id, space_id, weekday, to_char(start_time, 'HH24:MI:SS'), to_char(end_time, 'HH24:MI:SS'), is_active
		FROM public.availability_windows
		WHERE id = $1
	`
	row := r.pool.QueryRow(ctx, query, id)

	var w Window
	if err := row.Scan(&w.ID, &w.SpaceID, &w.Weekday, &w.StartTime, &w.EndTime, &w.IsActive); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get availability window failed: %w", err)
	}
	return &w, nil
}

func (r *pgxRepository) ListForSpace(ctx context.Context, spaceID string) ([]*Window, error) {
	const query = `
		SELECT id, space_id, weekday, to_char(start_time, 'HH24:MI:SS'), to_char(end_time, 'HH24:MI:SS'), is_active
		FROM public.availability_windows
		WHERE space_id = $1 AND is_active = true
	`
	rows, err := r.pool.Query(ctx, query, spaceID)
	if err != nil {
		return nil, fmt.Errorf("list availability windows failed: %w", err)
	}
	defer rows.Close()

	return scanWindows(rows)
}

func (r *pgxRepository) FindCovering(ctx context.Context, spaceID string, weekday int, start, end string) ([]*Window, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	sql, args, err := psql.Select(
		"id", "space_id", "weekday",
		"to_char(start_time, 'HH24:MI:SS')", "to_char(end_time, 'HH24:MI:SS')", "is_active",
	).
		From("public.availability_windows").
		Where(squirrel.Eq{"space_id": spaceID}).
		Where(squirrel.Eq{"weekday": weekday}).
		Where(squirrel.Eq{"is_active": true}).
		Where(squirrel.LtOrEq{"start_time": start}).
		Where(squirrel.GtOrEq{"end_time": end}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build find covering query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("find covering windows failed: %w", err)
	}
	defer rows.Close()

	return scanWindows(rows)
}

func (r *pgxRepository) SoftDelete(ctx context.Context, id string) error {
	const query = `UPDATE public.availability_windows SET is_active = false WHERE id = $1`
	ct, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("soft delete availability window failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func scanWindows(rows pgx.Rows) ([]*Window, error) {
	var result []*Window
	for rows.Next() {
		var w Window
		if err := rows.Scan(&w.ID, &w.SpaceID, &w.Weekday, &w.StartTime, &w.EndTime, &w.IsActive); err != nil {
			return nil, fmt.Errorf("scan availability window failed: %w", err)
		}
		result = append(result, &w)
	}
	return result, nil
}
