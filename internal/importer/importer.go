package importer

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"woodcraft-market/internal/domain"
)

type ProductWriter interface {
	UpsertByName(ctx context.Context, product domain.Product) (*domain.Product, error)
}

type CategoryWriter interface {
	UpsertBySlug(ctx context.Context, category domain.Category) (*domain.Category, error)
}

// CSVImporter reads catalog CSV exports and inserts/updates products. Rows
// name a category by slug; categories are upserted on first sight so imports
// work against an empty database.
type CSVImporter struct {
	reader     *csv.Reader
	products   ProductWriter
	categories CategoryWriter

	categoryIDs map[string]string
}

func NewCSVImporter(r io.Reader, products ProductWriter, categories CategoryWriter) *CSVImporter {
	csvr := csv.NewReader(r)
	csvr.FieldsPerRecord = -1 // rows may have trailing commas
	return &CSVImporter{
		reader:      csvr,
		products:    products,
		categories:  categories,
		categoryIDs: make(map[string]string),
	}
}

type csvRow struct {
	Name           string
	Description    string
	CategorySlug   string
	PriceCents     int64
	SalePriceCents int64
	StockQuantity  int
	Material       string
	Dimensions     string
	Featured       bool
	ImageURLs      []string
}

// Run parses CSV rows and upserts products keyed by name. A row without a
// name but with an image url is a continuation of the previous product.
func (i *CSVImporter) Run(ctx context.Context) (int, error) {
	headers, err := i.reader.Read()
	if err != nil {
		return 0, fmt.Errorf("read headers: %w", err)
	}
	index := headerIndex(headers)

	var (
		current  *csvRow
		imported int
	)

	for {
		record, err := i.reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return imported, fmt.Errorf("read row: %w", err)
		}

		row := parseRow(record, index)
		if row == nil {
			continue
		}

		if row.Name != "" {
			if current != nil {
				if err := i.save(ctx, current); err != nil {
					return imported, err
				}
				imported++
			}
			current = row
			continue
		}

		// Continuation rows carry extra images for the current product.
		if current != nil && len(row.ImageURLs) > 0 {
			current.ImageURLs = append(current.ImageURLs, row.ImageURLs...)
		}
	}

	if current != nil {
		if err := i.save(ctx, current); err != nil {
			return imported, err
		}
		imported++
	}

	return imported, nil
}

func (i *CSVImporter) save(ctx context.Context, row *csvRow) error {
	if row.PriceCents <= 0 {
		return fmt.Errorf("invalid price for product %q", row.Name)
	}

	p := domain.Product{
		Name:          row.Name,
		Description:   row.Description,
		PriceCents:    row.PriceCents,
		Images:        row.ImageURLs,
		InStock:       row.StockQuantity > 0,
		StockQuantity: row.StockQuantity,
		Material:      row.Material,
		Dimensions:    row.Dimensions,
		IsFeatured:    row.Featured,
	}
	if row.SalePriceCents > 0 {
		sale := row.SalePriceCents
		p.SalePriceCents = &sale
	}

	if row.CategorySlug != "" {
		id, err := i.categoryID(ctx, row.CategorySlug)
		if err != nil {
			return fmt.Errorf("upsert category %q: %w", row.CategorySlug, err)
		}
		p.CategoryID = &id
	}

	if _, err := i.products.UpsertByName(ctx, p); err != nil {
		return fmt.Errorf("upsert product %q: %w", row.Name, err)
	}
	return nil
}

func (i *CSVImporter) categoryID(ctx context.Context, slug string) (string, error) {
	if id, ok := i.categoryIDs[slug]; ok {
		return id, nil
	}
	created, err := i.categories.UpsertBySlug(ctx, domain.Category{
		Name: titleFromSlug(slug),
		Slug: slug,
	})
	if err != nil {
		return "", err
	}
	i.categoryIDs[slug] = created.ID
	return created.ID, nil
}

func titleFromSlug(slug string) string {
	words := strings.Split(slug, "-")
	for n, w := range words {
		if w == "" {
			continue
		}
		words[n] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

func headerIndex(headers []string) map[string]int {
	idx := make(map[string]int, len(headers))
	for i, h := range headers {
		idx[strings.TrimSpace(h)] = i
	}
	return idx
}

func parseRow(record []string, index map[string]int) *csvRow {
	name := pick(record, index, "name")
	imageURL := pick(record, index, "image_url")
	if name == "" && imageURL == "" {
		return nil
	}

	row := &csvRow{
		Name:           name,
		Description:    pick(record, index, "description"),
		CategorySlug:   pick(record, index, "category"),
		PriceCents:     pickInt64(record, index, "price_cents"),
		SalePriceCents: pickInt64(record, index, "sale_price_cents"),
		StockQuantity:  int(pickInt64(record, index, "stock_quantity")),
		Material:       pick(record, index, "material"),
		Dimensions:     pick(record, index, "dimensions"),
		Featured:       pick(record, index, "featured") == "true",
	}
	if imageURL != "" {
		row.ImageURLs = []string{imageURL}
	}
	return row
}

func pick(record []string, index map[string]int, key string) string {
	pos, ok := index[key]
	if !ok || pos >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[pos])
}

func pickInt64(record []string, index map[string]int, key string) int64 {
	v := pick(record, index, key)
	if v == "" {
		return 0
	}
	n, _ := strconv.ParseInt(v, 10, 64)
	return n
}
