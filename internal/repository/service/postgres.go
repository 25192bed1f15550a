package service

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"woodcraft-market/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type postgresRepo struct {
	pool *pgxpool.Pool
}

func NewPostgres(pool *pgxpool.Pool) Repository {
	return &postgresRepo{pool: pool}
}

const serviceColumns = `s.id::text, s.worker_id::text, s.category_id::text, s.name, COALESCE(s.description, ''), s.min_price_cents, s.max_price_cents, s.duration_days, s.is_available, s.created_at`

func (r *postgresRepo) List(ctx context.Context, filter ListFilter) ([]domain.Service, error) {
	var sb strings.Builder
	sb.WriteString(`
SELECT ` + serviceColumns + `,
       w.id::text, w.name, w.specialty,
       c.id::text, c.name, c.slug
FROM services s
LEFT JOIN workers w ON w.id = s.worker_id
LEFT JOIN categories c ON c.id = s.category_id`)

	var conds []string
	var args []interface{}
	if filter.AvailableOnly {
		conds = append(conds, "s.is_available")
	}
	if filter.CategoryID != "" {
		args = append(args, filter.CategoryID)
		conds = append(conds, "s.category_id = $"+strconv.Itoa(len(args)))
	}
	if filter.Search != "" {
		args = append(args, "%"+filter.Search+"%")
		conds = append(conds, "s.name ILIKE $"+strconv.Itoa(len(args)))
	}
	if len(conds) > 0 {
		sb.WriteString(" WHERE " + strings.Join(conds, " AND "))
	}
	sb.WriteString(" ORDER BY s.created_at DESC")

	rows, err := r.pool.Query(ctx, sb.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Service
	for rows.Next() {
		var s domain.Service
		var workerID, categoryID *string
		var wID, wName, wSpecialty *string
		var cID, cName, cSlug *string
		if err := rows.Scan(
			&s.ID, &workerID, &categoryID, &s.Name, &s.Description,
			&s.MinPriceCents, &s.MaxPriceCents, &s.DurationDays, &s.IsAvailable, &s.CreatedAt,
			&wID, &wName, &wSpecialty,
			&cID, &cName, &cSlug,
		); err != nil {
			return nil, err
		}
		s.WorkerID = workerID
		s.CategoryID = categoryID
		if wID != nil {
			s.Worker = &domain.Worker{ID: *wID, Name: deref(wName), Specialty: deref(wSpecialty)}
		}
		if cID != nil {
			s.Category = &domain.Category{ID: *cID, Name: deref(cName), Slug: deref(cSlug)}
		}
		result = append(result, s)
	}
	return result, rows.Err()
}

func (r *postgresRepo) GetByID(ctx context.Context, id string) (*domain.Service, error) {
	const q = `
SELECT id::text, worker_id::text, category_id::text, name, COALESCE(description, ''), min_price_cents, max_price_cents, duration_days, is_available, created_at
FROM services
WHERE id = $1
`
	s, err := scanService(r.pool.QueryRow(ctx, q, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return s, nil
}

func (r *postgresRepo) Create(ctx context.Context, service domain.Service) (*domain.Service, error) {
	const q = `
INSERT INTO services (worker_id, category_id, name, description, min_price_cents, max_price_cents, duration_days, is_available)
VALUES ($1, $2, $3, NULLIF($4, ''), $5, $6, $7, $8)
RETURNING id::text, worker_id::text, category_id::text, name, COALESCE(description, ''), min_price_cents, max_price_cents, duration_days, is_available, created_at
`
	created, err := scanService(r.pool.QueryRow(ctx, q,
		service.WorkerID,
		service.CategoryID,
		service.Name,
		service.Description,
		service.MinPriceCents,
		service.MaxPriceCents,
		service.DurationDays,
		service.IsAvailable,
	))
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return nil, domain.ErrInvalidReference
		}
		return nil, err
	}
	return created, nil
}

func (r *postgresRepo) Update(ctx context.Context, service domain.Service) (*domain.Service, error) {
	const q = `
UPDATE services
SET worker_id = $2,
    category_id = $3,
    name = $4,
    description = NULLIF($5, ''),
    min_price_cents = $6,
    max_price_cents = $7,
    duration_days = $8,
    is_available = $9
WHERE id = $1
RETURNING id::text, worker_id::text, category_id::text, name, COALESCE(description, ''), min_price_cents, max_price_cents, duration_days, is_available, created_at
`
	updated, err := scanService(r.pool.QueryRow(ctx, q,
		service.ID,
		service.WorkerID,
		service.CategoryID,
		service.Name,
		service.Description,
		service.MinPriceCents,
		service.MaxPriceCents,
		service.DurationDays,
		service.IsAvailable,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return updated, nil
}

func (r *postgresRepo) Delete(ctx context.Context, id string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM services WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func scanService(row pgx.Row) (*domain.Service, error) {
	var s domain.Service
	var workerID, categoryID *string
	if err := row.Scan(
		&s.ID, &workerID, &categoryID, &s.Name, &s.Description,
		&s.MinPriceCents, &s.MaxPriceCents, &s.DurationDays, &s.IsAvailable, &s.CreatedAt,
	); err != nil {
		return nil, err
	}
	s.WorkerID = workerID
	s.CategoryID = categoryID
	return &s, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
