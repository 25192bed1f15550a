package domain

import "time"

type Product struct {
	ID             string    `json:"id"`
	WorkerID       *string   `json:"workerId,omitempty"`
	CategoryID     *string   `json:"categoryId,omitempty"`
	Name           string    `json:"name"`
	Description    string    `json:"description,omitempty"`
	PriceCents     int64     `json:"priceCents"`
	SalePriceCents *int64    `json:"salePriceCents,omitempty"`
	Images         []string  `json:"images,omitempty"`
	InStock        bool      `json:"inStock"`
	StockQuantity  int       `json:"stockQuantity"`
	Dimensions     string    `json:"dimensions,omitempty"`
	Material       string    `json:"material,omitempty"`
	IsFeatured     bool      `json:"isFeatured"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
	Worker         *Worker   `json:"worker,omitempty"`
	Category       *Category `json:"category,omitempty"`
}

// EffectivePriceCents is the price a buyer actually pays: the sale price
// when one is set and strictly lower than the list price, else the list price.
func (p Product) EffectivePriceCents() int64 {
	if p.SalePriceCents != nil && *p.SalePriceCents < p.PriceCents {
		return *p.SalePriceCents
	}
	return p.PriceCents
}
