package importer

import (
	"context"
	"strings"
	"testing"

	"woodcraft-market/internal/domain"
)

type stubProductWriter struct {
	items []domain.Product
}

func (s *stubProductWriter) UpsertByName(_ context.Context, p domain.Product) (*domain.Product, error) {
	s.items = append(s.items, p)
	return &p, nil
}

type stubCategoryWriter struct {
	items []domain.Category
}

func (s *stubCategoryWriter) UpsertBySlug(_ context.Context, c domain.Category) (*domain.Category, error) {
	c.ID = "cat-" + c.Slug
	s.items = append(s.items, c)
	return &c, nil
}

func TestCSVImporter_Run(t *testing.T) {
	csvData := `name,description,category,price_cents,sale_price_cents,stock_quantity,material,dimensions,featured,image_url
Oak Dining Table,Six-seat solid oak table,tables,145000,,2,oak,180x90x75 cm,true,https://example.com/oak-1.jpg
,,,,,,,,,https://example.com/oak-2.jpg
Birch Salad Bowl,Turned birch bowl,kitchen-decor,4500,3900,12,birch,,false,`

	products := &stubProductWriter{}
	categories := &stubCategoryWriter{}
	imp := NewCSVImporter(strings.NewReader(csvData), products, categories)

	count, err := imp.Run(context.Background())
	if err != nil {
		t.Fatalf("import run: %v", err)
	}
	if count != 2 {
		t.Fatalf("expected 2 products imported, got %d", count)
	}

	table := products.items[0]
	if table.Name != "Oak Dining Table" || table.PriceCents != 145000 || !table.IsFeatured {
		t.Fatalf("unexpected product data: %+v", table)
	}
	if len(table.Images) != 2 {
		t.Fatalf("expected continuation row image to be merged, got %v", table.Images)
	}
	if table.CategoryID == nil || *table.CategoryID != "cat-tables" {
		t.Fatalf("expected category id to be wired, got %v", table.CategoryID)
	}
	if table.SalePriceCents != nil {
		t.Fatalf("expected no sale price, got %v", *table.SalePriceCents)
	}

	bowl := products.items[1]
	if bowl.SalePriceCents == nil || *bowl.SalePriceCents != 3900 {
		t.Fatalf("expected sale price 3900, got %+v", bowl.SalePriceCents)
	}
	if !bowl.InStock || bowl.StockQuantity != 12 {
		t.Fatalf("expected bowl in stock with quantity 12, got %+v", bowl)
	}

	if len(categories.items) != 2 {
		t.Fatalf("expected 2 category upserts, got %d", len(categories.items))
	}
	if categories.items[1].Name != "Kitchen Decor" {
		t.Fatalf("expected slug-derived name, got %q", categories.items[1].Name)
	}
}

func TestCSVImporter_RejectsZeroPrice(t *testing.T) {
	csvData := `name,category,price_cents
Broken Row,tables,0`

	imp := NewCSVImporter(strings.NewReader(csvData), &stubProductWriter{}, &stubCategoryWriter{})
	if _, err := imp.Run(context.Background()); err == nil {
		t.Fatal("expected error for zero price")
	}
}
