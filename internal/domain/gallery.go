package domain

import "time"

// GalleryItem is a showcase photo of finished work.
type GalleryItem struct {
	ID          string    `json:"id"`
	WorkerID    *string   `json:"workerId,omitempty"`
	CategoryID  *string   `json:"categoryId,omitempty"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	ImageURL    string    `json:"imageUrl"`
	IsFeatured  bool      `json:"isFeatured"`
	CreatedAt   time.Time `json:"createdAt"`
	Category    *Category `json:"category,omitempty"`
}
