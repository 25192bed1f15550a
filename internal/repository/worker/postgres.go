package worker

import (
	"context"
	"errors"
	"io"
	"log"

	"woodcraft-market/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type postgresRepo struct {
	pool   *pgxpool.Pool
	logger *log.Logger
}

func NewPostgres(pool *pgxpool.Pool, logger *log.Logger) Repository {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &postgresRepo{pool: pool, logger: logger}
}

const workerColumns = `id::text, name, specialty, COALESCE(bio, ''), COALESCE(avatar_url, ''), COALESCE(phone, ''), COALESCE(email, ''), experience_years, hourly_rate_cents, is_available, rating, total_reviews, portfolio_images, created_at, updated_at`

func (r *postgresRepo) List(ctx context.Context) ([]domain.Worker, error) {
	// Highest rated first, matching the storefront directory ordering.
	rows, err := r.pool.Query(ctx, `SELECT `+workerColumns+` FROM workers ORDER BY rating DESC, created_at ASC`)
	if err != nil {
		r.logger.Printf("worker repo: list error=%v", err)
		return nil, err
	}
	defer rows.Close()

	var result []domain.Worker
	for rows.Next() {
		w, err := scanWorker(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *w)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	r.logger.Printf("worker repo: list count=%d", len(result))
	return result, nil
}

func (r *postgresRepo) GetByID(ctx context.Context, id string) (*domain.Worker, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+workerColumns+` FROM workers WHERE id = $1`, id)
	w, err := scanWorker(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		r.logger.Printf("worker repo: get id=%s error=%v", id, err)
		return nil, err
	}
	return w, nil
}

func (r *postgresRepo) Create(ctx context.Context, worker domain.Worker) (*domain.Worker, error) {
	const q = `
INSERT INTO workers (name, specialty, bio, avatar_url, phone, email, experience_years, hourly_rate_cents, is_available, portfolio_images)
VALUES ($1, $2, NULLIF($3, ''), NULLIF($4, ''), NULLIF($5, ''), NULLIF($6, ''), $7, $8, $9, $10)
RETURNING ` + workerColumns + `
`
	row := r.pool.QueryRow(ctx, q,
		worker.Name,
		worker.Specialty,
		worker.Bio,
		worker.AvatarURL,
		worker.Phone,
		worker.Email,
		worker.ExperienceYears,
		worker.HourlyRateCents,
		worker.IsAvailable,
		imagesOrEmpty(worker.PortfolioImages),
	)
	created, err := scanWorker(row)
	if err != nil {
		r.logger.Printf("worker repo: create name=%s error=%v", worker.Name, err)
		return nil, err
	}
	r.logger.Printf("worker repo: created id=%s name=%s", created.ID, created.Name)
	return created, nil
}

func (r *postgresRepo) Update(ctx context.Context, worker domain.Worker) (*domain.Worker, error) {
	const q = `
UPDATE workers
SET name = $2,
    specialty = $3,
    bio = NULLIF($4, ''),
    avatar_url = NULLIF($5, ''),
    phone = NULLIF($6, ''),
    email = NULLIF($7, ''),
    experience_years = $8,
    hourly_rate_cents = $9,
    is_available = $10,
    portfolio_images = $11,
    updated_at = now()
WHERE id = $1
RETURNING ` + workerColumns + `
`
	row := r.pool.QueryRow(ctx, q,
		worker.ID,
		worker.Name,
		worker.Specialty,
		worker.Bio,
		worker.AvatarURL,
		worker.Phone,
		worker.Email,
		worker.ExperienceYears,
		worker.HourlyRateCents,
		worker.IsAvailable,
		imagesOrEmpty(worker.PortfolioImages),
	)
	updated, err := scanWorker(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		r.logger.Printf("worker repo: update id=%s error=%v", worker.ID, err)
		return nil, err
	}
	return updated, nil
}

func (r *postgresRepo) Delete(ctx context.Context, id string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM workers WHERE id = $1`, id)
	if err != nil {
		r.logger.Printf("worker repo: delete id=%s error=%v", id, err)
		return err
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *postgresRepo) RefreshRating(ctx context.Context, id string) error {
	const q = `
UPDATE workers
SET rating = COALESCE((SELECT ROUND(AVG(rating)::numeric, 2) FROM reviews WHERE worker_id = $1), 0),
    total_reviews = (SELECT COUNT(*) FROM reviews WHERE worker_id = $1),
    updated_at = now()
WHERE id = $1
`
	cmd, err := r.pool.Exec(ctx, q, id)
	if err != nil {
		r.logger.Printf("worker repo: refresh rating id=%s error=%v", id, err)
		return err
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func scanWorker(row pgx.Row) (*domain.Worker, error) {
	var w domain.Worker
	if err := row.Scan(
		&w.ID, &w.Name, &w.Specialty, &w.Bio, &w.AvatarURL, &w.Phone, &w.Email,
		&w.ExperienceYears, &w.HourlyRateCents, &w.IsAvailable, &w.Rating, &w.TotalReviews,
		&w.PortfolioImages, &w.CreatedAt, &w.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &w, nil
}

func imagesOrEmpty(images []string) []string {
	if images == nil {
		return []string{}
	}
	return images
}
