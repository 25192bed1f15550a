package profile

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"woodcraft-market/internal/domain"
	profilerepo "woodcraft-market/internal/repository/profile"
	tokenrepo "woodcraft-market/internal/repository/token"

	"golang.org/x/crypto/bcrypt"
)

var (
	// ErrInvalidCredentials is returned when email/password do not match.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrInvalidToken indicates the provided token could not be validated.
	ErrInvalidToken = errors.New("invalid token")
)

// Service handles signup/login and bearer-token lookup.
type Service struct {
	repo        profilerepo.Repository
	tokens      *tokenManager
	tokenTTL    time.Duration
	passwordMin int
}

// New creates a Service with sane defaults.
func New(repo profilerepo.Repository, tokens tokenrepo.Repository) *Service {
	return &Service{
		repo:        repo,
		tokens:      newTokenManager(tokens),
		tokenTTL:    48 * time.Hour,
		passwordMin: 8,
	}
}

// SignupInput captures fields expected by the signup endpoint.
type SignupInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	FullName string `json:"fullName"`
	Phone    string `json:"phone"`
}

// Signup registers a new profile and returns it with a fresh token.
func (s *Service) Signup(ctx context.Context, in SignupInput) (*domain.Profile, string, error) {
	email := strings.TrimSpace(strings.ToLower(in.Email))
	if email == "" {
		return nil, "", fmt.Errorf("%w: email required", domain.ErrValidation)
	}
	password := strings.TrimSpace(in.Password)
	if len(password) < s.passwordMin {
		return nil, "", fmt.Errorf("%w: password must be at least %d characters", domain.ErrValidation, s.passwordMin)
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", err
	}

	created, err := s.repo.Create(ctx, domain.Profile{
		Email:        email,
		PasswordHash: string(hashed),
		FullName:     strings.TrimSpace(in.FullName),
		Phone:        strings.TrimSpace(in.Phone),
	})
	if err != nil {
		return nil, "", err
	}

	token, err := s.tokens.Issue(ctx, created.ID, s.tokenTTL)
	if err != nil {
		return nil, "", err
	}
	return created, token, nil
}

// Login validates credentials and returns the profile plus an issued token.
func (s *Service) Login(ctx context.Context, email, password string) (*domain.Profile, string, error) {
	p, err := s.repo.GetByEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(p.PasswordHash), []byte(strings.TrimSpace(password))); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(ctx, p.ID, s.tokenTTL)
	if err != nil {
		return nil, "", err
	}
	return p, token, nil
}

// LookupByToken returns the profile bound to a valid token.
func (s *Service) LookupByToken(ctx context.Context, token string) (*domain.Profile, error) {
	meta, ok := s.tokens.Validate(ctx, token)
	if !ok {
		return nil, ErrInvalidToken
	}
	p, err := s.repo.GetByID(ctx, meta.ProfileID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, ErrInvalidToken
		}
		return nil, err
	}
	return p, nil
}

// Logout revokes the token; unknown tokens are treated as already revoked.
func (s *Service) Logout(ctx context.Context, token string) error {
	if err := s.tokens.Revoke(ctx, token); err != nil && !errors.Is(err, domain.ErrNotFound) {
		return err
	}
	return nil
}
