package space

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository interface {
	Create(ctx context.Context, sp *Space) error
	GetByID(ctx context.Context, id string) (*Space, error)
	List(ctx context.Context, filter Filter) ([]*Space, int, error)
	Update(ctx context.Context, sp *Space) error
	SoftDelete(ctx context.Context, id string) error
	SetImageURL(ctx context.Context, id, url string) error
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

func (r *pgxRepository) Create(ctx context.Context, sp *Space) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Insert("public.spaces").
		Columns("space_type_id", "name", "description", "location", "capacity", "price_per_hour", "equipment", "image_url", "is_active").
		Values(sp.SpaceTypeID, sp.Name, sp.Description, sp.Location, sp.Capacity, sp.PricePerHour, sp.Equipment, sp.ImageURL, sp.IsActive).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build create space query failed: %w", err)
	}

	return r.pool.QueryRow(ctx, query, args...).Scan(&sp.ID, &sp.CreatedAt)
}

func (r *pgxRepository) GetByID(ctx context.Context, id string) (*Space, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Select(
		"s.id", "s.space_type_id", "t.name", "s.name", "s.description", "s.location",
		"s.capacity", "s.price_per_hour", "s.equipment", "s.image_url", "s.is_active", "s.created_at",
	).
		From("public.spaces s").
		Join("public.space_types t ON s.space_type_id = t.id").
		Where(squirrel.Eq{"s.id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get space query failed: %w", err)
	}

	row := r.pool.QueryRow(ctx, query, args...)

	var sp Space
	if err := row.Scan(
		&sp.ID, &sp.SpaceTypeID, &sp.SpaceTypeName, &sp.Name, &sp.Description, &sp.Location,
		&sp.Capacity, &sp.PricePerHour, &sp.Equipment, &sp.ImageURL, &sp.IsActive, &sp.CreatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get space failed: %w", err)
	}
	return &sp, nil
}

func (r *pgxRepository) List(ctx context.Context, filter Filter) ([]*Space, int, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query := psql.Select(
		"s.id", "s.space_type_id", "t.name", "s.name", "s.description", "s.location",
		"s.capacity", "s.price_per_hour", "s.equipment", "s.image_url", "s.is_active", "s.created_at",
		"count(*) OVER() as total_count",
	).
		From("public.spaces s").
		Join("public.space_types t ON s.space_type_id = t.id")

	if !filter.IncludeInactive {
		query = query.Where(squirrel.Eq{"s.is_active": true})
	}
	if filter.SpaceTypeID != "" {
		query = query.Where(squirrel.Eq{"s.space_type_id": filter.SpaceTypeID})
	}

	query = query.OrderBy("s.name ASC")

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
		return nil, 0, fmt.Errorf("build list spaces query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list spaces failed: %w", err)
	}
	defer rows.Close()

	var spaces []*Space
	var total int

	for rows.Next() {
		var sp Space
		if err := rows.Scan(
			&sp.ID, &sp.SpaceTypeID, &sp.SpaceTypeName, &sp.Name, &sp.Description, &sp.Location,
			&sp.Capacity, &sp.PricePerHour, &sp.Equipment, &sp.ImageURL, &sp.IsActive, &sp.CreatedAt, &total,
		); err != nil {
			return nil, 0, fmt.Errorf("scan space failed: %w", err)
		}
		spaces = append(spaces, &sp)
	}

	return spaces, total, nil
}

func (r *pgxRepository) Update(ctx context.Context, sp *Space) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Update("public.spaces").
		Set("space_type_id", sp.SpaceTypeID).
		Set("name", sp.Name).
		Set("description", sp.Description).
		Set("location", sp.Location).
		Set("capacity", sp.Capacity).
		Set("price_per_hour", sp.PricePerHour).
		Set("equipment", sp.Equipment).
		Set("image_url", sp.ImageURL).
		Set("is_active", sp.IsActive).
		Where(squirrel.Eq{"id": sp.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update space query failed: %w", err)
	}

	ct, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update space failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *pgxRepository) SoftDelete(ctx context.Context, id string) error {
	const query = `UPDATE public.spaces SET is_active = false WHERE id = $1`
	ct, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("soft delete space failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *pgxRepository) SetImageURL(ctx context.Context, id, url string) error {
	const query = `UPDATE public.spaces SET image_url = $1 WHERE id = $2`
	ct, err := r.pool.Exec(ctx, query, url, id)
	if err != nil {
		return fmt.Errorf("set space image failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
