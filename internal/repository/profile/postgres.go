package profile

import (
	"context"
	"errors"
	"io"
	"log"
	"strings"

	"woodcraft-market/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type postgresRepo struct {
	pool   *pgxpool.Pool
	logger *log.Logger
}

// NewPostgres returns a Repository backed by Postgres.
func NewPostgres(pool *pgxpool.Pool, logger *log.Logger) Repository {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &postgresRepo{pool: pool, logger: logger}
}

const profileColumns = `id::text, email, password_hash, COALESCE(full_name, ''), COALESCE(phone, ''), created_at, updated_at`

func (r *postgresRepo) Create(ctx context.Context, p domain.Profile) (*domain.Profile, error) {
	const q = `
INSERT INTO profiles (email, password_hash, full_name, phone)
VALUES ($1, $2, NULLIF($3, ''), NULLIF($4, ''))
RETURNING ` + profileColumns + `
`
	created, err := scanProfile(r.pool.QueryRow(ctx, q,
		strings.ToLower(p.Email),
		p.PasswordHash,
		p.FullName,
		p.Phone,
	))
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, domain.ErrAlreadyExists
		}
		r.logger.Printf("profile repo: create email=%s error=%v", p.Email, err)
		return nil, err
	}
	r.logger.Printf("profile repo: created id=%s", created.ID)
	return created, nil
}

func (r *postgresRepo) GetByEmail(ctx context.Context, email string) (*domain.Profile, error) {
	const q = `
SELECT ` + profileColumns + `
FROM profiles
WHERE lower(email) = lower($1)
LIMIT 1
`
	p, err := scanProfile(r.pool.QueryRow(ctx, q, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return p, nil
}

func (r *postgresRepo) GetByID(ctx context.Context, id string) (*domain.Profile, error) {
	const q = `
SELECT ` + profileColumns + `
FROM profiles
WHERE id = $1
LIMIT 1
`
	p, err := scanProfile(r.pool.QueryRow(ctx, q, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return p, nil
}

func scanProfile(row pgx.Row) (*domain.Profile, error) {
	var p domain.Profile
	if err := row.Scan(&p.ID, &p.Email, &p.PasswordHash, &p.FullName, &p.Phone, &p.CreatedAt, &p.UpdatedAt); err != nil {
		return nil, err
	}
	return &p, nil
}
