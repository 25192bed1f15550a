package domain

import "testing"

func TestCanTransition(t *testing.T) {
	allowed := []struct{ from, to OrderStatus }{
		{OrderPending, OrderProcessing},
		{OrderPending, OrderCancelled},
		{OrderProcessing, OrderShipped},
		{OrderProcessing, OrderCancelled},
		{OrderShipped, OrderDelivered},
	}
	for _, tc := range allowed {
		if !CanTransition(tc.from, tc.to) {
			t.Errorf("expected %s -> %s to be allowed", tc.from, tc.to)
		}
	}

	forbidden := []struct{ from, to OrderStatus }{
		{OrderPending, OrderShipped},
		{OrderPending, OrderDelivered},
		{OrderShipped, OrderCancelled},
		{OrderDelivered, OrderPending},
		{OrderDelivered, OrderCancelled},
		{OrderCancelled, OrderPending},
		{OrderCancelled, OrderProcessing},
		{OrderPending, OrderPending},
	}
	for _, tc := range forbidden {
		if CanTransition(tc.from, tc.to) {
			t.Errorf("expected %s -> %s to be rejected", tc.from, tc.to)
		}
	}
}

func TestEffectivePriceCents(t *testing.T) {
	sale := int64(2000)
	higher := int64(3000)

	p := Product{PriceCents: 2500}
	if got := p.EffectivePriceCents(); got != 2500 {
		t.Fatalf("no sale: expected 2500, got %d", got)
	}

	p.SalePriceCents = &sale
	if got := p.EffectivePriceCents(); got != 2000 {
		t.Fatalf("sale below list: expected 2000, got %d", got)
	}

	p.SalePriceCents = &higher
	if got := p.EffectivePriceCents(); got != 2500 {
		t.Fatalf("sale above list: expected list 2500, got %d", got)
	}
}
