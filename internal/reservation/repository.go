package reservation

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository interface {
	Create(ctx context.Context, rv *Reservation) error
	GetByID(ctx context.Context, id string) (*Reservation, error)
	List(ctx context.Context, filter Filter) ([]*Reservation, int, error)
	UpdateStatus(ctx context.Context, id string, status Status) error
	Delete(ctx context.Context, id string) error

	// HasOverlap checks if a non-cancelled reservation for the space on
	// the same date intersects the given time range. excludeID ignores a
	// reservation itself during updates.
	HasOverlap(ctx context.Context, spaceID string, date time.Time, start, end string, excludeID string) (bool, error)
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

var reservationColumns = []string{
	"r.id", "r.user_id", "u.first_name || ' ' || u.last_name", "r.space_id", "s.name",
	"r.date", "to_char(r.start_time, 'HH24:MI:SS')", "to_char(r.end_time, 'HH24:MI:SS')",
	"r.reason", "r.status", "r.total_price", "r.observations", "r.created_at", "r.updated_at",
}

func (r *pgxRepository) Create(ctx context.Context, rv *Reservation) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Insert("public.reservations").
		Columns("user_id", "space_id", "date", "start_time", "end_time", "reason", "status", "total_price", "observations").
		Values(rv.UserID, rv.SpaceID, rv.Date, rv.StartTime, rv.EndTime, rv.Reason, rv.Status, rv.TotalPrice, rv.Observations).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build create reservation query failed: %w", err)
	}

	return r.pool.QueryRow(ctx, query, args...).
		Scan(&rv.ID, &rv.CreatedAt, &rv.UpdatedAt)
}

func (r *pgxRepository) GetByID(ctx context.Context, id string) (*Reservation, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Select(reservationColumns...).
		From("public.reservations r").
		Join("public.users u ON r.user_id = u.id").
		Join("public.spaces s ON r.space_id = s.id").
		Where(squirrel.Eq{"r.id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get reservation query failed: %w", err)
	}

	row := r.pool.QueryRow(ctx, query, args...)

	var rv Reservation
	if err := row.Scan(
		&rv.ID, &rv.UserID, &rv.UserName, &rv.SpaceID, &rv.SpaceName,
		&rv.Date, &rv.StartTime, &rv.EndTime, &rv.Reason, &rv.Status,
		&rv.TotalPrice, &rv.Observations, &rv.CreatedAt, &rv.UpdatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get reservation failed: %w", err)
	}
	return &rv, nil
}

func (r *pgxRepository) List(ctx context.Context, filter Filter) ([]*Reservation, int, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query := psql.Select(append(reservationColumns, "count(*) OVER() as total_count")...).
		From("public.reservations r").
		Join("public.users u ON r.user_id = u.id").
		Join("public.spaces s ON r.space_id = s.id")

	if filter.UserID != "" {
		query = query.Where(squirrel.Eq{"r.user_id": filter.UserID})
	}
	if filter.SpaceID != "" {
		query = query.Where(squirrel.Eq{"r.space_id": filter.SpaceID})
	}
	if filter.Status != "" {
		query = query.Where(squirrel.Eq{"r.status": filter.Status})
	}
	if filter.DateFrom != nil {
		query = query.Where(squirrel.GtOrEq{"r.date": filter.DateFrom})
	}
	if filter.DateTo != nil {
		query = query.Where(squirrel.LtOrEq{"r.date": filter.DateTo})
	}

	query = query.OrderBy("r.date DESC", "r.start_time DESC")

	// Paginate only when the caller asked for a page size; otherwise the
	// full result set comes back.
	if filter.PageSize > 0 {
		page := filter.Page
		if page < 1 {
			page = 1
		}
		query = query.Limit(uint64(filter.PageSize)).Offset(uint64((page - 1) * filter.PageSize))
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build list reservations query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list reservations failed: %w", err)
	}
	defer rows.Close()

	var reservations []*Reservation
	var total int

	for rows.Next() {
		var rv Reservation
		if err := rows.Scan(
			&rv.ID, &rv.UserID, &rv.UserName, &rv.SpaceID, &rv.SpaceName,
			&rv.Date, &rv.StartTime, &rv.EndTime, &rv.Reason, &rv.Status,
			&rv.TotalPrice, &rv.Observations, &rv.CreatedAt, &rv.UpdatedAt, &total,
		); err != nil {
			return nil, 0, fmt.Errorf("scan reservation failed: %w", err)
		}
		reservations = append(reservations, &rv)
	}

	return reservations, total, nil
}

func (r *pgxRepository) UpdateStatus(ctx context.Context, id string, status Status) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Update("public.reservations").
		Set("status", status).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update reservation status query failed: %w", err)
	}

	ct, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update reservation status failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *pgxRepository) Delete(ctx context.Context, id string) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Delete("public.reservations").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete reservation query failed: %w", err)
	}

	ct, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("delete reservation failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *pgxRepository) HasOverlap(ctx context.Context, spaceID string, date time.Time, start, end string, excludeID string) (bool, error) {
	// Overlap predicate: same space, same date, status not cancelled,
	// newStart < existingEnd AND newEnd > existingStart.
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	subQuery := psql.Select("1").
		From("public.reservations").
		Where(squirrel.Eq{"space_id": spaceID}).
		Where(squirrel.Eq{"date": date}).
		Where(squirrel.NotEq{"status": StatusCancelled}).
		Where(squirrel.Gt{"end_time": start}).
		Where(squirrel.Lt{"start_time": end})

	if excludeID != "" {
		subQuery = subQuery.Where(squirrel.NotEq{"id": excludeID})
	}

	sql, args, err := subQuery.ToSql()
	if err != nil {
		return false, fmt.Errorf("build check overlap query failed: %w", err)
	}

	query := "SELECT EXISTS (" + sql + ")"

	var exists bool
	if err := r.pool.QueryRow(ctx, query, args...).Scan(&exists); err != nil {
		return false, fmt.Errorf("check overlap failed: %w", err)
	}
	return exists, nil
}
