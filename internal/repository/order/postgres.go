package order

import (
	"context"
	"errors"
	"fmt"
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

func NewPostgres(pool *pgxpool.Pool, logger *log.Logger) Repository {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &postgresRepo{pool: pool, logger: logger}
}

func (r *postgresRepo) Create(ctx context.Context, in CreateOrderInput) (*domain.Order, error) {
	const q = `
INSERT INTO orders (user_id, customer_name, customer_email, customer_phone, shipping_address, total_cents, status)
VALUES ($1, $2, $3, NULLIF($4, ''), NULLIF($5, ''), $6, 'pending')
RETURNING id::text, user_id::text, customer_name, customer_email, COALESCE(customer_phone, ''), COALESCE(shipping_address, ''), total_cents, status, created_at, updated_at
`
	var order domain.Order
	var userID *string
	if err := r.pool.QueryRow(ctx, q,
		in.UserID,
		in.CustomerName,
		in.CustomerEmail,
		in.CustomerPhone,
		in.ShippingAddress,
		in.TotalCents,
	).Scan(
		&order.ID,
		&userID,
		&order.CustomerName,
		&order.CustomerEmail,
		&order.CustomerPhone,
		&order.ShippingAddress,
		&order.TotalCents,
		&order.Status,
		&order.CreatedAt,
		&order.UpdatedAt,
	); err != nil {
		r.logger.Printf("order repo: create email=%s error=%v", in.CustomerEmail, err)
		return nil, err
	}
	order.UserID = userID
	r.logger.Printf("order repo: created id=%s total_cents=%d", order.ID, order.TotalCents)
	return &order, nil
}

// InsertItems writes all line items in one multi-row INSERT so the items side
// of an order is never partially written.
func (r *postgresRepo) InsertItems(ctx context.Context, orderID string, items []ItemInput) error {
	if len(items) == 0 {
		return nil
	}

	var sb strings.Builder
	sb.WriteString(`INSERT INTO order_items (order_id, product_id, product_name, quantity, unit_price_cents) VALUES `)
	args := make([]interface{}, 0, 1+4*len(items))
	args = append(args, orderID)
	for i, item := range items {
		if i > 0 {
			sb.WriteString(", ")
		}
		base := len(args)
		fmt.Fprintf(&sb, "($1, $%d, $%d, $%d, $%d)", base+1, base+2, base+3, base+4)
		args = append(args, item.ProductID, item.ProductName, item.Quantity, item.UnitPriceCents)
	}

	if _, err := r.pool.Exec(ctx, sb.String(), args...); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			r.logger.Printf("order repo: insert items order_id=%s invalid reference", orderID)
			return domain.ErrInvalidReference
		}
		r.logger.Printf("order repo: insert items order_id=%s count=%d error=%v", orderID, len(items), err)
		return err
	}
	r.logger.Printf("order repo: inserted items order_id=%s count=%d", orderID, len(items))
	return nil
}

func (r *postgresRepo) Delete(ctx context.Context, id string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM orders WHERE id = $1`, id)
	if err != nil {
		r.logger.Printf("order repo: delete id=%s error=%v", id, err)
		return err
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	r.logger.Printf("order repo: deleted id=%s", id)
	return nil
}

func (r *postgresRepo) List(ctx context.Context) ([]domain.Order, error) {
	const q = `
SELECT id::text, user_id::text, customer_name, customer_email, COALESCE(customer_phone, ''), COALESCE(shipping_address, ''), total_cents, status, created_at, updated_at
FROM orders
ORDER BY created_at DESC
`
	rows, err := r.pool.Query(ctx, q)
	if err != nil {
		r.logger.Printf("order repo: list error=%v", err)
		return nil, err
	}
	defer rows.Close()

	var result []domain.Order
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *order)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range result {
		items, err := r.fetchItems(ctx, result[i].ID)
		if err != nil {
			return nil, err
		}
		result[i].Items = items
	}
	r.logger.Printf("order repo: list count=%d", len(result))
	return result, nil
}

func (r *postgresRepo) GetByID(ctx context.Context, id string) (*domain.Order, error) {
	const q = `
SELECT id::text, user_id::text, customer_name, customer_email, COALESCE(customer_phone, ''), COALESCE(shipping_address, ''), total_cents, status, created_at, updated_at
FROM orders
WHERE id = $1
`
	row := r.pool.QueryRow(ctx, q, id)
	order, err := scanOrder(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		r.logger.Printf("order repo: get id=%s error=%v", id, err)
		return nil, err
	}

	items, err := r.fetchItems(ctx, order.ID)
	if err != nil {
		return nil, err
	}
	order.Items = items
	return order, nil
}

func (r *postgresRepo) UpdateStatus(ctx context.Context, id string, status domain.OrderStatus) (*domain.Order, error) {
	const q = `
UPDATE orders
SET status = $1, updated_at = now()
WHERE id = $2
RETURNING id::text, user_id::text, customer_name, customer_email, COALESCE(customer_phone, ''), COALESCE(shipping_address, ''), total_cents, status, created_at, updated_at
`
	row := r.pool.QueryRow(ctx, q, status, id)
	order, err := scanOrder(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		r.logger.Printf("order repo: update status id=%s error=%v", id, err)
		return nil, err
	}
	r.logger.Printf("order repo: updated status id=%s status=%s", id, status)
	return order, nil
}

func (r *postgresRepo) fetchItems(ctx context.Context, orderID string) ([]domain.OrderItem, error) {
	const q = `
SELECT id::text, order_id::text, product_id::text, product_name, quantity, unit_price_cents, created_at
FROM order_items
WHERE order_id = $1
ORDER BY created_at ASC, id ASC
`
	rows, err := r.pool.Query(ctx, q, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []domain.OrderItem
	for rows.Next() {
		var item domain.OrderItem
		var productID *string
		if err := rows.Scan(
			&item.ID,
			&item.OrderID,
			&productID,
			&item.ProductName,
			&item.Quantity,
			&item.UnitPriceCents,
			&item.CreatedAt,
		); err != nil {
			return nil, err
		}
		item.ProductID = productID
		items = append(items, item)
	}
	return items, rows.Err()
}

func scanOrder(row pgx.Row) (*domain.Order, error) {
	var order domain.Order
	var userID *string
	if err := row.Scan(
		&order.ID,
		&userID,
		&order.CustomerName,
		&order.CustomerEmail,
		&order.CustomerPhone,
		&order.ShippingAddress,
		&order.TotalCents,
		&order.Status,
		&order.CreatedAt,
		&order.UpdatedAt,
	); err != nil {
		return nil, err
	}
	order.UserID = userID
	return &order, nil
}
