package domain

import "time"

// Worker is a craftsman listed in the directory. Rating and TotalReviews are
// denormalized from the reviews table and recomputed when a review is created.
type Worker struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	Specialty       string    `json:"specialty"`
	Bio             string    `json:"bio,omitempty"`
	AvatarURL       string    `json:"avatarUrl,omitempty"`
	Phone           string    `json:"phone,omitempty"`
	Email           string    `json:"email,omitempty"`
	ExperienceYears int       `json:"experienceYears"`
	HourlyRateCents *int64    `json:"hourlyRateCents,omitempty"`
	IsAvailable     bool      `json:"isAvailable"`
	Rating          float64   `json:"rating"`
	TotalReviews    int       `json:"totalReviews"`
	PortfolioImages []string  `json:"portfolioImages,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}
