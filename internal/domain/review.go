package domain

import "time"

type Review struct {
	ID        string    `json:"id"`
	WorkerID  string    `json:"workerId"`
	UserID    *string   `json:"userId,omitempty"`
	UserName  string    `json:"userName"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}
