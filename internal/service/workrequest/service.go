package workrequest

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"woodcraft-market/internal/domain"
	requestrepo "woodcraft-market/internal/repository/workrequest"
)

// ErrInvalidStatus rejects a work-request status change outside the allowed
// flow: pending -> accepted|rejected, accepted -> completed.
var ErrInvalidStatus = errors.New("invalid request status transition")

var requestTransitions = map[domain.RequestStatus][]domain.RequestStatus{
	domain.RequestPending:  {domain.RequestAccepted, domain.RequestRejected},
	domain.RequestAccepted: {domain.RequestCompleted},
}

type Service struct {
	repo requestrepo.Repository
}

func New(repo requestrepo.Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context) ([]domain.WorkRequest, error) {
	return s.repo.List(ctx)
}

type CreateInput struct {
	WorkerID    string
	UserID      *string
	Name        string
	Email       string
	Phone       string
	ProjectType string
	Description string
	BudgetRange string
	Timeline    string
}

func (s *Service) Create(ctx context.Context, in CreateInput) (*domain.WorkRequest, error) {
	if strings.TrimSpace(in.Name) == "" || strings.TrimSpace(in.Email) == "" {
		return nil, fmt.Errorf("%w: name and email required", domain.ErrValidation)
	}
	if strings.TrimSpace(in.ProjectType) == "" {
		return nil, fmt.Errorf("%w: project type required", domain.ErrValidation)
	}
	if strings.TrimSpace(in.Description) == "" {
		return nil, fmt.Errorf("%w: description required", domain.ErrValidation)
	}
	return s.repo.Create(ctx, requestrepo.CreateRequestInput{
		WorkerID:    in.WorkerID,
		UserID:      in.UserID,
		Name:        strings.TrimSpace(in.Name),
		Email:       strings.TrimSpace(in.Email),
		Phone:       strings.TrimSpace(in.Phone),
		ProjectType: strings.TrimSpace(in.ProjectType),
		Description: strings.TrimSpace(in.Description),
		BudgetRange: strings.TrimSpace(in.BudgetRange),
		Timeline:    strings.TrimSpace(in.Timeline),
	})
}

func (s *Service) UpdateStatus(ctx context.Context, id string, status domain.RequestStatus) (*domain.WorkRequest, error) {
	if !domain.ValidRequestStatus(status) {
		return nil, fmt.Errorf("%w: unknown status %q", ErrInvalidStatus, status)
	}
	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	allowed := false
	for _, next := range requestTransitions[current.Status] {
		if next == status {
			allowed = true
			break
		}
	}
	if !allowed {
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidStatus, current.Status, status)
	}
	return s.repo.UpdateStatus(ctx, id, status)
}
