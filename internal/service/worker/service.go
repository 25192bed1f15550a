package worker

import (
	"context"
	"fmt"
	"strings"

	"woodcraft-market/internal/domain"
	workerrepo "woodcraft-market/internal/repository/worker"
)

type Service struct {
	repo workerrepo.Repository
}

func New(repo workerrepo.Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context) ([]domain.Worker, error) {
	return s.repo.List(ctx)
}

func (s *Service) Get(ctx context.Context, id string) (*domain.Worker, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) Create(ctx context.Context, w domain.Worker) (*domain.Worker, error) {
	if err := validate(w); err != nil {
		return nil, err
	}
	return s.repo.Create(ctx, w)
}

func (s *Service) Update(ctx context.Context, w domain.Worker) (*domain.Worker, error) {
	if strings.TrimSpace(w.ID) == "" {
		return nil, fmt.Errorf("%w: id required", domain.ErrValidation)
	}
	if err := validate(w); err != nil {
		return nil, err
	}
	return s.repo.Update(ctx, w)
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

func validate(w domain.Worker) error {
	if strings.TrimSpace(w.Name) == "" {
		return fmt.Errorf("%w: name required", domain.ErrValidation)
	}
	if strings.TrimSpace(w.Specialty) == "" {
		return fmt.Errorf("%w: specialty required", domain.ErrValidation)
	}
	if w.ExperienceYears < 0 {
		return fmt.Errorf("%w: experience years must not be negative", domain.ErrValidation)
	}
	return nil
}
