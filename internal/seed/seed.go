package seed

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

type categorySeed struct {
	Name        string
	Slug        string
	Description string
}

type workerSeed struct {
	Name            string
	Specialty       string
	Bio             string
	ExperienceYears int
	HourlyRateCents int64
}

type productSeed struct {
	Name           string
	Description    string
	CategorySlug   string
	WorkerName     string
	PriceCents     int64
	SalePriceCents int64
	StockQuantity  int
	Material       string
	Dimensions     string
	Featured       bool
}

type serviceSeed struct {
	Name          string
	Description   string
	CategorySlug  string
	WorkerName    string
	MinPriceCents int64
	MaxPriceCents int64
	DurationDays  int
}

type gallerySeed struct {
	Title        string
	CategorySlug string
	WorkerName   string
	ImageURL     string
	Featured     bool
}

// Apply inserts demo data for manual testing. It is idempotent: categories
// and products upsert on their natural keys, everything else inserts only
// when absent.
func Apply(ctx context.Context, pool *pgxpool.Pool) error {
	categories := []categorySeed{
		{Name: "Tables", Slug: "tables", Description: "Dining, coffee and side tables"},
		{Name: "Chairs", Slug: "chairs", Description: "Seating for every room"},
		{Name: "Decor", Slug: "decor", Description: "Bowls, frames and small pieces"},
	}
	categoryIDs := make(map[string]string, len(categories))
	for _, c := range categories {
		id, err := upsertCategory(ctx, pool, c)
		if err != nil {
			return fmt.Errorf("upsert category %s: %w", c.Slug, err)
		}
		categoryIDs[c.Slug] = id
	}

	workers := []workerSeed{
		{Name: "Ilmar Tamm", Specialty: "Fine furniture", Bio: "Third-generation cabinetmaker.", ExperienceYears: 22, HourlyRateCents: 8500},
		{Name: "Greta Saar", Specialty: "Wood turning", Bio: "Turns bowls and vessels from local hardwoods.", ExperienceYears: 9, HourlyRateCents: 6000},
	}
	workerIDs := make(map[string]string, len(workers))
	for _, w := range workers {
		id, err := ensureWorker(ctx, pool, w)
		if err != nil {
			return fmt.Errorf("ensure worker %s: %w", w.Name, err)
		}
		workerIDs[w.Name] = id
	}

	products := []productSeed{
		{
			Name:          "Oak Dining Table",
			Description:   "Six-seat solid oak table with breadboard ends",
			CategorySlug:  "tables",
			WorkerName:    "Ilmar Tamm",
			PriceCents:    145000,
			StockQuantity: 2,
			Material:      "oak",
			Dimensions:    "180x90x75 cm",
			Featured:      true,
		},
		{
			Name:           "Walnut Coffee Table",
			Description:    "Low table with a live edge top",
			CategorySlug:   "tables",
			WorkerName:     "Ilmar Tamm",
			PriceCents:     68000,
			SalePriceCents: 59500,
			StockQuantity:  1,
			Material:       "walnut",
			Dimensions:     "110x60x45 cm",
		},
		{
			Name:          "Windsor Chair",
			Description:   "Steam-bent ash chair, hand shaped seat",
			CategorySlug:  "chairs",
			WorkerName:    "Ilmar Tamm",
			PriceCents:    32000,
			StockQuantity: 6,
			Material:      "ash",
		},
		{
			Name:           "Birch Salad Bowl",
			Description:    "Turned from a single birch blank, food-safe finish",
			CategorySlug:   "decor",
			WorkerName:     "Greta Saar",
			PriceCents:     4500,
			SalePriceCents: 3900,
			StockQuantity:  12,
			Material:       "birch",
			Featured:       true,
		},
	}
	for _, p := range products {
		if err := upsertProduct(ctx, pool, categoryIDs, workerIDs, p); err != nil {
			return fmt.Errorf("upsert product %s: %w", p.Name, err)
		}
	}

	services := []serviceSeed{
		{
			Name:          "Furniture restoration",
			Description:   "Repair and refinish antique furniture",
			CategorySlug:  "tables",
			WorkerName:    "Ilmar Tamm",
			MinPriceCents: 15000,
			MaxPriceCents: 120000,
			DurationDays:  21,
		},
		{
			Name:          "Custom turning",
			Description:   "Bowls, platters and spindles to order",
			CategorySlug:  "decor",
			WorkerName:    "Greta Saar",
			MinPriceCents: 5000,
			MaxPriceCents: 30000,
			DurationDays:  10,
		},
	}
	for _, s := range services {
		if err := ensureService(ctx, pool, categoryIDs, workerIDs, s); err != nil {
			return fmt.Errorf("ensure service %s: %w", s.Name, err)
		}
	}

	gallery := []gallerySeed{
		{Title: "Oak table in customer home", CategorySlug: "tables", WorkerName: "Ilmar Tamm", ImageURL: "https://example.com/gallery/oak-table.jpg", Featured: true},
		{Title: "Birch bowl set", CategorySlug: "decor", WorkerName: "Greta Saar", ImageURL: "https://example.com/gallery/birch-bowls.jpg"},
	}
	for _, g := range gallery {
		if err := ensureGalleryItem(ctx, pool, categoryIDs, workerIDs, g); err != nil {
			return fmt.Errorf("ensure gallery item %s: %w", g.Title, err)
		}
	}

	return nil
}

func upsertCategory(ctx context.Context, pool *pgxpool.Pool, c categorySeed) (string, error) {
	const q = `
INSERT INTO categories (name, slug, description)
VALUES ($1, $2, $3)
ON CONFLICT (slug) DO UPDATE SET
    name = EXCLUDED.name,
    description = EXCLUDED.description
RETURNING id::text
`
	var id string
	if err := pool.QueryRow(ctx, q, c.Name, c.Slug, c.Description).Scan(&id); err != nil {
		return "", err
	}
	return id, nil
}

func ensureWorker(ctx context.Context, pool *pgxpool.Pool, w workerSeed) (string, error) {
	var id string
	err := pool.QueryRow(ctx, `SELECT id::text FROM workers WHERE name = $1`, w.Name).Scan(&id)
	if err == nil {
		return id, nil
	}

	const q = `
INSERT INTO workers (name, specialty, bio, experience_years, hourly_rate_cents)
VALUES ($1, $2, $3, $4, $5)
RETURNING id::text
`
	if err := pool.QueryRow(ctx, q, w.Name, w.Specialty, w.Bio, w.ExperienceYears, w.HourlyRateCents).Scan(&id); err != nil {
		return "", err
	}
	return id, nil
}

func upsertProduct(ctx context.Context, pool *pgxpool.Pool, categories, workers map[string]string, p productSeed) error {
	const q = `
INSERT INTO products (worker_id, category_id, name, description, price_cents, sale_price_cents,
                      stock_quantity, in_stock, material, dimensions, is_featured)
VALUES ($1, $2, $3, $4, $5, NULLIF($6, 0), $7, $7 > 0, NULLIF($8, ''), NULLIF($9, ''), $10)
ON CONFLICT (name) DO UPDATE SET
    description = EXCLUDED.description,
    price_cents = EXCLUDED.price_cents,
    sale_price_cents = EXCLUDED.sale_price_cents,
    stock_quantity = EXCLUDED.stock_quantity,
    in_stock = EXCLUDED.in_stock,
    material = EXCLUDED.material,
    dimensions = EXCLUDED.dimensions,
    is_featured = EXCLUDED.is_featured,
    updated_at = now()
`
	_, err := pool.Exec(ctx, q,
		workers[p.WorkerName], categories[p.CategorySlug], p.Name, p.Description,
		p.PriceCents, p.SalePriceCents, p.StockQuantity, p.Material, p.Dimensions, p.Featured)
	return err
}

func ensureService(ctx context.Context, pool *pgxpool.Pool, categories, workers map[string]string, s serviceSeed) error {
	var exists bool
	if err := pool.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM services WHERE name = $1)`, s.Name).Scan(&exists); err != nil {
		return err
	}
	if exists {
		return nil
	}

	const q = `
INSERT INTO services (worker_id, category_id, name, description, min_price_cents, max_price_cents, duration_days)
VALUES ($1, $2, $3, $4, $5, $6, $7)
`
	_, err := pool.Exec(ctx, q,
		workers[s.WorkerName], categories[s.CategorySlug], s.Name, s.Description,
		s.MinPriceCents, s.MaxPriceCents, s.DurationDays)
	return err
}

func ensureGalleryItem(ctx context.Context, pool *pgxpool.Pool, categories, workers map[string]string, g gallerySeed) error {
	var exists bool
	if err := pool.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM gallery WHERE title = $1)`, g.Title).Scan(&exists); err != nil {
		return err
	}
	if exists {
		return nil
	}

	const q = `
INSERT INTO gallery (worker_id, category_id, title, image_url, is_featured)
VALUES ($1, $2, $3, $4, $5)
`
	_, err := pool.Exec(ctx, q, workers[g.WorkerName], categories[g.CategorySlug], g.Title, g.ImageURL, g.Featured)
	return err
}
