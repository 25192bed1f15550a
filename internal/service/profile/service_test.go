package profile

import (
	"context"
	"errors"
	"strconv"
	"testing"
	"time"

	"woodcraft-market/internal/domain"
	tokenrepo "woodcraft-market/internal/repository/token"
)

type stubProfileRepo struct {
	byEmail map[string]*domain.Profile
	byID    map[string]*domain.Profile
	nextID  int
}

func newStubProfileRepo() *stubProfileRepo {
	return &stubProfileRepo{
		byEmail: make(map[string]*domain.Profile),
		byID:    make(map[string]*domain.Profile),
	}
}

func (s *stubProfileRepo) Create(_ context.Context, p domain.Profile) (*domain.Profile, error) {
	if _, ok := s.byEmail[p.Email]; ok {
		return nil, domain.ErrAlreadyExists
	}
	s.nextID++
	p.ID = "profile-" + strconv.Itoa(s.nextID)
	s.byEmail[p.Email] = &p
	s.byID[p.ID] = &p
	return &p, nil
}

func (s *stubProfileRepo) GetByEmail(_ context.Context, email string) (*domain.Profile, error) {
	p, ok := s.byEmail[email]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return p, nil
}

func (s *stubProfileRepo) GetByID(_ context.Context, id string) (*domain.Profile, error) {
	p, ok := s.byID[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return p, nil
}

type stubTokenRepo struct {
	tokens map[string]tokenrepo.Token
}

func newStubTokenRepo() *stubTokenRepo {
	return &stubTokenRepo{tokens: make(map[string]tokenrepo.Token)}
}

func (s *stubTokenRepo) Create(_ context.Context, t tokenrepo.Token) error {
	if _, ok := s.tokens[t.Token]; ok {
		return domain.ErrAlreadyExists
	}
	s.tokens[t.Token] = t
	return nil
}

func (s *stubTokenRepo) Get(_ context.Context, token string) (*tokenrepo.Token, error) {
	t, ok := s.tokens[token]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &t, nil
}

func (s *stubTokenRepo) Delete(_ context.Context, token string) error {
	if _, ok := s.tokens[token]; !ok {
		return domain.ErrNotFound
	}
	delete(s.tokens, token)
	return nil
}

func newTestService() (*Service, *stubProfileRepo, *stubTokenRepo) {
	profiles := newStubProfileRepo()
	tokens := newStubTokenRepo()
	return New(profiles, tokens), profiles, tokens
}

func TestSignupAndLogin(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	p, token, err := svc.Signup(ctx, SignupInput{
		Email:    "Jo@Example.com",
		Password: "hunter2hunter2",
		FullName: "Jo Carver",
	})
	if err != nil {
		t.Fatalf("signup: %v", err)
	}
	if p.Email != "jo@example.com" {
		t.Errorf("email not lowercased: %q", p.Email)
	}
	if token == "" {
		t.Fatal("signup returned empty token")
	}

	got, err := svc.LookupByToken(ctx, token)
	if err != nil {
		t.Fatalf("lookup by token: %v", err)
	}
	if got.ID != p.ID {
		t.Errorf("lookup returned %s, want %s", got.ID, p.ID)
	}

	if _, _, err := svc.Login(ctx, "jo@example.com", "hunter2hunter2"); err != nil {
		t.Fatalf("login: %v", err)
	}
	if _, _, err := svc.Login(ctx, "jo@example.com", "wrong-password"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("wrong password: err = %v, want ErrInvalidCredentials", err)
	}
	if _, _, err := svc.Login(ctx, "nobody@example.com", "hunter2hunter2"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("unknown email: err = %v, want ErrInvalidCredentials", err)
	}
}

func TestSignupValidation(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	if _, _, err := svc.Signup(ctx, SignupInput{Password: "hunter2hunter2"}); !errors.Is(err, domain.ErrValidation) {
		t.Errorf("missing email: err = %v, want ErrValidation", err)
	}
	if _, _, err := svc.Signup(ctx, SignupInput{Email: "jo@example.com", Password: "short"}); !errors.Is(err, domain.ErrValidation) {
		t.Errorf("short password: err = %v, want ErrValidation", err)
	}
}

func TestLogoutRevokesToken(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	_, token, err := svc.Signup(ctx, SignupInput{Email: "jo@example.com", Password: "hunter2hunter2"})
	if err != nil {
		t.Fatalf("signup: %v", err)
	}

	if err := svc.Logout(ctx, token); err != nil {
		t.Fatalf("logout: %v", err)
	}
	if _, err := svc.LookupByToken(ctx, token); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("after logout: err = %v, want ErrInvalidToken", err)
	}
	// Logging out twice is not an error.
	if err := svc.Logout(ctx, token); err != nil {
		t.Errorf("second logout: %v", err)
	}
}

func TestExpiredTokenRejected(t *testing.T) {
	svc, _, tokens := newTestService()
	ctx := context.Background()

	_, token, err := svc.Signup(ctx, SignupInput{Email: "jo@example.com", Password: "hunter2hunter2"})
	if err != nil {
		t.Fatalf("signup: %v", err)
	}

	stored := tokens.tokens[token]
	stored.ExpiresAt = time.Now().Add(-time.Minute)
	tokens.tokens[token] = stored

	if _, err := svc.LookupByToken(ctx, token); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("expired token: err = %v, want ErrInvalidToken", err)
	}
	if _, ok := tokens.tokens[token]; ok {
		t.Error("expired token was not deleted")
	}
}
