package review

import (
	"context"
	"errors"

	"woodcraft-market/internal/domain"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type postgresRepo struct {
	pool *pgxpool.Pool
}

func NewPostgres(pool *pgxpool.Pool) Repository {
	return &postgresRepo{pool: pool}
}

func (r *postgresRepo) ListByWorker(ctx context.Context, workerID string) ([]domain.Review, error) {
	const q = `
SELECT id::text, worker_id::text, user_id::text, user_name, rating, COALESCE(comment, ''), created_at
FROM reviews
WHERE worker_id = $1
ORDER BY created_at DESC
`
	rows, err := r.pool.Query(ctx, q, workerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Review
	for rows.Next() {
		var rev domain.Review
		var userID *string
		if err := rows.Scan(&rev.ID, &rev.WorkerID, &userID, &rev.UserName, &rev.Rating, &rev.Comment, &rev.CreatedAt); err != nil {
			return nil, err
		}
		rev.UserID = userID
		result = append(result, rev)
	}
	return result, rows.Err()
}

func (r *postgresRepo) Create(ctx context.Context, in CreateReviewInput) (*domain.Review, error) {
	const q = `
INSERT INTO reviews (worker_id, user_id, user_name, rating, comment)
VALUES ($1, $2, $3, $4, NULLIF($5, ''))
RETURNING id::text, worker_id::text, user_id::text, user_name, rating, COALESCE(comment, ''), created_at
`
	var rev domain.Review
	var userID *string
	err := r.pool.QueryRow(ctx, q, in.WorkerID, in.UserID, in.UserName, in.Rating, in.Comment).
		Scan(&rev.ID, &rev.WorkerID, &userID, &rev.UserName, &rev.Rating, &rev.Comment, &rev.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return nil, domain.ErrInvalidReference
		}
		return nil, err
	}
	rev.UserID = userID
	return &rev, nil
}
