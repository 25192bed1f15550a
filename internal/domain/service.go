package domain

import "time"

// Service is a custom-work offering (e.g. furniture restoration) with a price
// range rather than a fixed price.
type Service struct {
	ID            string    `json:"id"`
	WorkerID      *string   `json:"workerId,omitempty"`
	CategoryID    *string   `json:"categoryId,omitempty"`
	Name          string    `json:"name"`
	Description   string    `json:"description,omitempty"`
	MinPriceCents int64     `json:"minPriceCents"`
	MaxPriceCents *int64    `json:"maxPriceCents,omitempty"`
	DurationDays  *int      `json:"durationDays,omitempty"`
	IsAvailable   bool      `json:"isAvailable"`
	CreatedAt     time.Time `json:"createdAt"`
	Worker        *Worker   `json:"worker,omitempty"`
	Category      *Category `json:"category,omitempty"`
}
