package workrequest

import (
	"context"
	"errors"

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

const requestColumns = `id::text, worker_id::text, user_id::text, name, email, COALESCE(phone, ''), project_type, description, COALESCE(budget_range, ''), COALESCE(timeline, ''), status, created_at`

func (r *postgresRepo) List(ctx context.Context) ([]domain.WorkRequest, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+requestColumns+` FROM work_requests ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.WorkRequest
	for rows.Next() {
		req, err := scanRequest(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *req)
	}
	return result, rows.Err()
}

func (r *postgresRepo) GetByID(ctx context.Context, id string) (*domain.WorkRequest, error) {
	req, err := scanRequest(r.pool.QueryRow(ctx, `SELECT `+requestColumns+` FROM work_requests WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return req, nil
}

func (r *postgresRepo) Create(ctx context.Context, in CreateRequestInput) (*domain.WorkRequest, error) {
	const q = `
INSERT INTO work_requests (worker_id, user_id, name, email, phone, project_type, description, budget_range, timeline, status)
VALUES ($1, $2, $3, $4, NULLIF($5, ''), $6, $7, NULLIF($8, ''), NULLIF($9, ''), 'pending')
RETURNING ` + requestColumns + `
`
	req, err := scanRequest(r.pool.QueryRow(ctx, q,
		in.WorkerID,
		in.UserID,
		in.Name,
		in.Email,
		in.Phone,
		in.ProjectType,
		in.Description,
		in.BudgetRange,
		in.Timeline,
	))
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return nil, domain.ErrInvalidReference
		}
		return nil, err
	}
	return req, nil
}

func (r *postgresRepo) UpdateStatus(ctx context.Context, id string, status domain.RequestStatus) (*domain.WorkRequest, error) {
	const q = `
UPDATE work_requests
SET status = $1
WHERE id = $2
RETURNING ` + requestColumns + `
`
	req, err := scanRequest(r.pool.QueryRow(ctx, q, status, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return req, nil
}

func scanRequest(row pgx.Row) (*domain.WorkRequest, error) {
	var req domain.WorkRequest
	var userID *string
	if err := row.Scan(
		&req.ID, &req.WorkerID, &userID, &req.Name, &req.Email, &req.Phone,
		&req.ProjectType, &req.Description, &req.BudgetRange, &req.Timeline,
		&req.Status, &req.CreatedAt,
	); err != nil {
		return nil, err
	}
	req.UserID = userID
	return &req, nil
}
