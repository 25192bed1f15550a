package domain

import "time"

type RequestStatus string

const (
	RequestPending   RequestStatus = "pending"
	RequestAccepted  RequestStatus = "accepted"
	RequestRejected  RequestStatus = "rejected"
	RequestCompleted RequestStatus = "completed"
)

// ValidRequestStatus reports whether s is one of the known work-request states.
func ValidRequestStatus(s RequestStatus) bool {
	switch s {
	case RequestPending, RequestAccepted, RequestRejected, RequestCompleted:
		return true
	}
	return false
}

// WorkRequest is a customer's ask for custom work from a specific craftsman.
type WorkRequest struct {
	ID          string        `json:"id"`
	WorkerID    string        `json:"workerId"`
	UserID      *string       `json:"userId,omitempty"`
	Name        string        `json:"name"`
	Email       string        `json:"email"`
	Phone       string        `json:"phone,omitempty"`
	ProjectType string        `json:"projectType"`
	Description string        `json:"description"`
	BudgetRange string        `json:"budgetRange,omitempty"`
	Timeline    string        `json:"timeline,omitempty"`
	Status      RequestStatus `json:"status"`
	CreatedAt   time.Time     `json:"createdAt"`
}
