package product

import (
	"context"
	"errors"
	"io"
	"log"
	"strconv"
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

func NewPostgres(pool *pgxpool.Pool, logger *log.Logger) Repository {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &postgresRepo{pool: pool, logger: logger}
}

const productColumns = `id::text, worker_id::text, category_id::text, name, COALESCE(description, ''), price_cents, sale_price_cents, images, in_stock, stock_quantity, COALESCE(dimensions, ''), COALESCE(material, ''), is_featured, created_at, updated_at`

func (r *postgresRepo) List(ctx context.Context, filter ListFilter) ([]domain.Product, error) {
	var sb strings.Builder
	sb.WriteString(`SELECT ` + productColumns + ` FROM products`)

	var conds []string
	var args []interface{}
	if filter.CategoryID != "" {
		args = append(args, filter.CategoryID)
		conds = append(conds, "category_id = $"+strconv.Itoa(len(args)))
	}
	if filter.Search != "" {
		args = append(args, "%"+filter.Search+"%")
		conds = append(conds, "name ILIKE $"+strconv.Itoa(len(args)))
	}
	if filter.FeaturedOnly {
		conds = append(conds, "is_featured")
	}
	if filter.InStockOnly {
		conds = append(conds, "in_stock")
	}
	if len(conds) > 0 {
		sb.WriteString(" WHERE " + strings.Join(conds, " AND "))
	}
	sb.WriteString(" ORDER BY created_at DESC")

	rows, err := r.pool.Query(ctx, sb.String(), args...)
	if err != nil {
		r.logger.Printf("product repo: list error=%v", err)
		return nil, err
	}
	defer rows.Close()

	var result []domain.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	r.logger.Printf("product repo: list count=%d", len(result))
	return result, nil
}

func (r *postgresRepo) GetByID(ctx context.Context, id string) (*domain.Product, error) {
	const q = `
SELECT p.id::text, p.worker_id::text, p.category_id::text, p.name, COALESCE(p.description, ''), p.price_cents, p.sale_price_cents, p.images, p.in_stock, p.stock_quantity, COALESCE(p.dimensions, ''), COALESCE(p.material, ''), p.is_featured, p.created_at, p.updated_at,
       w.id::text, w.name, w.specialty,
       c.id::text, c.name, c.slug
FROM products p
LEFT JOIN workers w ON w.id = p.worker_id
LEFT JOIN categories c ON c.id = p.category_id
WHERE p.id = $1
`
	var p domain.Product
	var workerID, categoryID *string
	var wID, wName, wSpecialty *string
	var cID, cName, cSlug *string
	err := r.pool.QueryRow(ctx, q, id).Scan(
		&p.ID, &workerID, &categoryID, &p.Name, &p.Description, &p.PriceCents, &p.SalePriceCents,
		&p.Images, &p.InStock, &p.StockQuantity, &p.Dimensions, &p.Material, &p.IsFeatured,
		&p.CreatedAt, &p.UpdatedAt,
		&wID, &wName, &wSpecialty,
		&cID, &cName, &cSlug,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		r.logger.Printf("product repo: get id=%s error=%v", id, err)
		return nil, err
	}
	p.WorkerID = workerID
	p.CategoryID = categoryID
	if wID != nil {
		p.Worker = &domain.Worker{ID: *wID, Name: deref(wName), Specialty: deref(wSpecialty)}
	}
	if cID != nil {
		p.Category = &domain.Category{ID: *cID, Name: deref(cName), Slug: deref(cSlug)}
	}
	return &p, nil
}

func (r *postgresRepo) Create(ctx context.Context, product domain.Product) (*domain.Product, error) {
	const q = `
INSERT INTO products (worker_id, category_id, name, description, price_cents, sale_price_cents, images, in_stock, stock_quantity, dimensions, material, is_featured)
VALUES ($1, $2, $3, NULLIF($4, ''), $5, $6, $7, $8, $9, NULLIF($10, ''), NULLIF($11, ''), $12)
RETURNING ` + productColumns + `
`
	row := r.pool.QueryRow(ctx, q,
		product.WorkerID,
		product.CategoryID,
		product.Name,
		product.Description,
		product.PriceCents,
		product.SalePriceCents,
		imagesOrEmpty(product.Images),
		product.InStock,
		product.StockQuantity,
		product.Dimensions,
		product.Material,
		product.IsFeatured,
	)
	created, err := scanProduct(row)
	if err != nil {
		if refErr := asReferenceError(err); refErr != nil {
			return nil, refErr
		}
		r.logger.Printf("product repo: create name=%s error=%v", product.Name, err)
		return nil, err
	}
	r.logger.Printf("product repo: created id=%s name=%s", created.ID, created.Name)
	return created, nil
}

func (r *postgresRepo) Update(ctx context.Context, product domain.Product) (*domain.Product, error) {
	const q = `
UPDATE products
SET worker_id = $2,
    category_id = $3,
    name = $4,
    description = NULLIF($5, ''),
    price_cents = $6,
    sale_price_cents = $7,
    images = $8,
    in_stock = $9,
    stock_quantity = $10,
    dimensions = NULLIF($11, ''),
    material = NULLIF($12, ''),
    is_featured = $13,
    updated_at = now()
WHERE id = $1
RETURNING ` + productColumns + `
`
	row := r.pool.QueryRow(ctx, q,
		product.ID,
		product.WorkerID,
		product.CategoryID,
		product.Name,
		product.Description,
		product.PriceCents,
		product.SalePriceCents,
		imagesOrEmpty(product.Images),
		product.InStock,
		product.StockQuantity,
		product.Dimensions,
		product.Material,
		product.IsFeatured,
	)
	updated, err := scanProduct(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		if refErr := asReferenceError(err); refErr != nil {
			return nil, refErr
		}
		r.logger.Printf("product repo: update id=%s error=%v", product.ID, err)
		return nil, err
	}
	return updated, nil
}

func (r *postgresRepo) Delete(ctx context.Context, id string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		r.logger.Printf("product repo: delete id=%s error=%v", id, err)
		return err
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// UpsertByName inserts or refreshes a product keyed by its unique name. Used
// by the CSV importer and the seeder.
func (r *postgresRepo) UpsertByName(ctx context.Context, product domain.Product) (*domain.Product, error) {
	const q = `
INSERT INTO products (worker_id, category_id, name, description, price_cents, sale_price_cents, images, in_stock, stock_quantity, dimensions, material, is_featured)
VALUES ($1, $2, $3, NULLIF($4, ''), $5, $6, $7, $8, $9, NULLIF($10, ''), NULLIF($11, ''), $12)
ON CONFLICT (name) DO UPDATE SET
    worker_id = EXCLUDED.worker_id,
    category_id = EXCLUDED.category_id,
    description = EXCLUDED.description,
    price_cents = EXCLUDED.price_cents,
    sale_price_cents = EXCLUDED.sale_price_cents,
    images = EXCLUDED.images,
    in_stock = EXCLUDED.in_stock,
    stock_quantity = EXCLUDED.stock_quantity,
    dimensions = EXCLUDED.dimensions,
    material = EXCLUDED.material,
    is_featured = EXCLUDED.is_featured,
    updated_at = now()
RETURNING ` + productColumns + `
`
	row := r.pool.QueryRow(ctx, q,
		product.WorkerID,
		product.CategoryID,
		product.Name,
		product.Description,
		product.PriceCents,
		product.SalePriceCents,
		imagesOrEmpty(product.Images),
		product.InStock,
		product.StockQuantity,
		product.Dimensions,
		product.Material,
		product.IsFeatured,
	)
	upserted, err := scanProduct(row)
	if err != nil {
		r.logger.Printf("product repo: upsert name=%s error=%v", product.Name, err)
		return nil, err
	}
	r.logger.Printf("product repo: upserted id=%s name=%s", upserted.ID, upserted.Name)
	return upserted, nil
}

func scanProduct(row pgx.Row) (*domain.Product, error) {
	var p domain.Product
	var workerID, categoryID *string
	if err := row.Scan(
		&p.ID, &workerID, &categoryID, &p.Name, &p.Description, &p.PriceCents, &p.SalePriceCents,
		&p.Images, &p.InStock, &p.StockQuantity, &p.Dimensions, &p.Material, &p.IsFeatured,
		&p.CreatedAt, &p.UpdatedAt,
	); err != nil {
		return nil, err
	}
	p.WorkerID = workerID
	p.CategoryID = categoryID
	return &p, nil
}

func imagesOrEmpty(images []string) []string {
	if images == nil {
		return []string{}
	}
	return images
}

func asReferenceError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23503" {
		return domain.ErrInvalidReference
	}
	return nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
