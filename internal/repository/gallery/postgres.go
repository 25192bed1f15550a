package gallery

import (
	"context"
	"errors"
	"strconv"
	"strings"

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

func (r *postgresRepo) List(ctx context.Context, filter ListFilter) ([]domain.GalleryItem, error) {
	var sb strings.Builder
	sb.WriteString(`
SELECT g.id::text, g.worker_id::text, g.category_id::text, g.title, COALESCE(g.description, ''), g.image_url, g.is_featured, g.created_at,
       c.id::text, c.name, c.slug
FROM gallery g
LEFT JOIN categories c ON c.id = g.category_id`)

	var conds []string
	var args []interface{}
	if filter.CategoryID != "" {
		args = append(args, filter.CategoryID)
		conds = append(conds, "g.category_id = $"+strconv.Itoa(len(args)))
	}
	if filter.FeaturedOnly {
		conds = append(conds, "g.is_featured")
	}
	if len(conds) > 0 {
		sb.WriteString(" WHERE " + strings.Join(conds, " AND "))
	}
	sb.WriteString(" ORDER BY g.created_at DESC")

	rows, err := r.pool.Query(ctx, sb.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.GalleryItem
	for rows.Next() {
		var item domain.GalleryItem
		var workerID, categoryID *string
		var cID, cName, cSlug *string
		if err := rows.Scan(
			&item.ID, &workerID, &categoryID, &item.Title, &item.Description,
			&item.ImageURL, &item.IsFeatured, &item.CreatedAt,
			&cID, &cName, &cSlug,
		); err != nil {
			return nil, err
		}
		item.WorkerID = workerID
		item.CategoryID = categoryID
		if cID != nil {
			item.Category = &domain.Category{ID: *cID, Name: derefStr(cName), Slug: derefStr(cSlug)}
		}
		result = append(result, item)
	}
	return result, rows.Err()
}

func (r *postgresRepo) Create(ctx context.Context, item domain.GalleryItem) (*domain.GalleryItem, error) {
	const q = `
INSERT INTO gallery (worker_id, category_id, title, description, image_url, is_featured)
VALUES ($1, $2, $3, NULLIF($4, ''), $5, $6)
RETURNING id::text, worker_id::text, category_id::text, title, COALESCE(description, ''), image_url, is_featured, created_at
`
	var created domain.GalleryItem
	var workerID, categoryID *string
	err := r.pool.QueryRow(ctx, q,
		item.WorkerID,
		item.CategoryID,
		item.Title,
		item.Description,
		item.ImageURL,
		item.IsFeatured,
	).Scan(
		&created.ID, &workerID, &categoryID, &created.Title, &created.Description,
		&created.ImageURL, &created.IsFeatured, &created.CreatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return nil, domain.ErrInvalidReference
		}
		return nil, err
	}
	created.WorkerID = workerID
	created.CategoryID = categoryID
	return &created, nil
}

func (r *postgresRepo) Delete(ctx context.Context, id string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM gallery WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func derefStr(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
