package review

import (
	"context"
	"fmt"
	"io"
	"log"
	"strings"

	"woodcraft-market/internal/domain"
	reviewrepo "woodcraft-market/internal/repository/review"
)

var ErrInvalidRating = fmt.Errorf("%w: rating must be between 1 and 5", domain.ErrValidation)

type Service struct {
	repo    reviewrepo.Repository
	workers workerRatings
	logger  *log.Logger
}

type workerRatings interface {
	RefreshRating(ctx context.Context, id string) error
}

func New(repo reviewrepo.Repository, workers workerRatings, logger *log.Logger) *Service {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Service{repo: repo, workers: workers, logger: logger}
}

func (s *Service) ListByWorker(ctx context.Context, workerID string) ([]domain.Review, error) {
	return s.repo.ListByWorker(ctx, workerID)
}

type CreateInput struct {
	WorkerID string
	UserID   *string
	UserName string
	Rating   int
	Comment  string
}

// Create stores the review and refreshes the worker's denormalized rating.
// A failed refresh does not fail the request; the next review fixes it up.
func (s *Service) Create(ctx context.Context, in CreateInput) (*domain.Review, error) {
	if in.Rating < 1 || in.Rating > 5 {
		return nil, ErrInvalidRating
	}
	if strings.TrimSpace(in.UserName) == "" {
		return nil, fmt.Errorf("%w: user name required", domain.ErrValidation)
	}

	created, err := s.repo.Create(ctx, reviewrepo.CreateReviewInput{
		WorkerID: in.WorkerID,
		UserID:   in.UserID,
		UserName: strings.TrimSpace(in.UserName),
		Rating:   in.Rating,
		Comment:  strings.TrimSpace(in.Comment),
	})
	if err != nil {
		return nil, err
	}

	if err := s.workers.RefreshRating(ctx, created.WorkerID); err != nil {
		s.logger.Printf("review service: refresh rating worker_id=%s error=%v", created.WorkerID, err)
	}
	return created, nil
}
