package cart

import (
	"testing"

	"woodcraft-market/internal/domain"
)

func product(id string, priceCents int64) domain.Product {
	return domain.Product{ID: id, Name: "Product " + id, PriceCents: priceCents}
}

func saleProduct(id string, priceCents, saleCents int64) domain.Product {
	p := product(id, priceCents)
	p.SalePriceCents = &saleCents
	return p
}

func TestStore_AddMergesSameProduct(t *testing.T) {
	s := NewStore()
	s.Add(product("a", 5000), 1)
	s.Add(product("a", 5000), 2)

	snap := s.Snapshot()
	if len(snap.Lines) != 1 {
		t.Fatalf("expected 1 line, got %d", len(snap.Lines))
	}
	if snap.Lines[0].Quantity != 3 {
		t.Fatalf("expected quantity 3, got %d", snap.Lines[0].Quantity)
	}
	if snap.TotalCents != 15000 {
		t.Fatalf("expected total 15000, got %d", snap.TotalCents)
	}
}

func TestStore_AddIgnoresInvalidInput(t *testing.T) {
	s := NewStore()
	s.Add(product("a", 1000), 0)
	s.Add(product("b", 1000), -2)
	s.Add(product("c", 0), 1)
	s.Add(product("d", -500), 1)

	if snap := s.Snapshot(); !snap.Empty() {
		t.Fatalf("expected empty cart, got %+v", snap)
	}
}

func TestStore_SalePriceRule(t *testing.T) {
	s := NewStore()
	// Sale price below list wins.
	s.Add(saleProduct("a", 2500, 2000), 1)
	// Sale price above list is ignored.
	s.Add(saleProduct("b", 1000, 1200), 1)

	snap := s.Snapshot()
	if snap.Lines[0].UnitPriceCents != 2000 {
		t.Fatalf("expected sale price 2000, got %d", snap.Lines[0].UnitPriceCents)
	}
	if snap.Lines[1].UnitPriceCents != 1000 {
		t.Fatalf("expected list price 1000, got %d", snap.Lines[1].UnitPriceCents)
	}
	if snap.TotalCents != 3000 {
		t.Fatalf("expected total 3000, got %d", snap.TotalCents)
	}
}

func TestStore_SnapshotTotals(t *testing.T) {
	s := NewStore()
	s.Add(product("p1", 1000), 2)
	s.Add(saleProduct("p2", 2500, 2000), 1)

	snap := s.Snapshot()
	if snap.TotalItems != 3 {
		t.Fatalf("expected 3 items, got %d", snap.TotalItems)
	}
	if snap.TotalCents != 4000 {
		t.Fatalf("expected total 4000 (2*1000 + 1*2000), got %d", snap.TotalCents)
	}
}

func TestStore_UpdateQuantityZeroRemoves(t *testing.T) {
	s := NewStore()
	s.Add(product("a", 1000), 2)
	s.Add(product("b", 2000), 1)

	s.UpdateQuantity("a", 0)

	snap := s.Snapshot()
	if len(snap.Lines) != 1 || snap.Lines[0].ProductID != "b" {
		t.Fatalf("expected only product b, got %+v", snap.Lines)
	}
}

func TestStore_UpdateQuantityReplaces(t *testing.T) {
	s := NewStore()
	s.Add(product("a", 1000), 2)

	s.UpdateQuantity("a", 5)

	snap := s.Snapshot()
	if snap.Lines[0].Quantity != 5 {
		t.Fatalf("expected quantity 5, got %d", snap.Lines[0].Quantity)
	}
	if snap.TotalCents != 5000 {
		t.Fatalf("expected total 5000, got %d", snap.TotalCents)
	}
}

func TestStore_AbsentProductIsNoop(t *testing.T) {
	s := NewStore()
	s.Add(product("a", 1000), 1)
	before := s.Snapshot()

	s.UpdateQuantity("missing", 4)
	s.Remove("missing")

	after := s.Snapshot()
	if len(after.Lines) != len(before.Lines) || after.TotalCents != before.TotalCents {
		t.Fatalf("cart changed: before=%+v after=%+v", before, after)
	}
}

func TestStore_RemoveKeepsOrder(t *testing.T) {
	s := NewStore()
	s.Add(product("a", 100), 1)
	s.Add(product("b", 200), 1)
	s.Add(product("c", 300), 1)

	s.Remove("b")

	snap := s.Snapshot()
	if len(snap.Lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(snap.Lines))
	}
	if snap.Lines[0].ProductID != "a" || snap.Lines[1].ProductID != "c" {
		t.Fatalf("unexpected order %+v", snap.Lines)
	}
}

func TestStore_Clear(t *testing.T) {
	s := NewStore()
	s.Add(product("a", 1000), 2)

	s.Clear()

	snap := s.Snapshot()
	if !snap.Empty() || snap.TotalItems != 0 || snap.TotalCents != 0 {
		t.Fatalf("expected empty snapshot, got %+v", snap)
	}
}

func TestStore_SnapshotIsCopy(t *testing.T) {
	s := NewStore()
	s.Add(product("a", 1000), 1)

	snap := s.Snapshot()
	snap.Lines[0].Quantity = 99

	if s.Snapshot().Lines[0].Quantity != 1 {
		t.Fatalf("mutating a snapshot leaked into the store")
	}
}
