package service

import (
	"context"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/fintechpulse/pulse-cms/internal/core/domain"
	"github.com/fintechpulse/pulse-cms/internal/pkg/token"
)

type stubUserRepo struct {
	users map[string]*domain.User // keyed by email
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*domain.User)}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

func (r *stubUserRepo) addUser(t *testing.T, id, email, password, role string) {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	r.users[email] = &domain.User{ID: id, Email: email, PasswordHash: string(hash), Role: role}
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	if u, ok := r.users[email]; ok {
		return cloneUser(u), nil
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) List(_ context.Context) ([]domain.User, error) {
	out := make([]domain.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, *u)
	}
	return out, nil
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	if _, exists := r.users[user.Email]; exists {
		return nil, domain.ErrUserExists
	}
	copy := cloneUser(user)
	if copy.ID == "" {
		copy.ID = user.Email
	}
	r.users[copy.Email] = cloneUser(copy)
	return copy, nil
}

func (r *stubUserRepo) Delete(_ context.Context, id string) error {
	for email, u := range r.users {
		if u.ID == id {
			delete(r.users, email)
			return nil
		}
	}
	return domain.ErrUserNotFound
}

type stubThrottle struct {
	allow bool
	err   error
	calls int
	keys  []string
}

func (t *stubThrottle) Allow(_ context.Context, key string) (bool, error) {
	t.calls++
	t.keys = append(t.keys, key)
	return t.allow, t.err
}

// countingThrottle enforces a real per-key budget, like the Redis limiter.
type countingThrottle struct {
	limit  int
	counts map[string]int
}

func (t *countingThrottle) Allow(_ context.Context, key string) (bool, error) {
	if t.counts == nil {
		t.counts = make(map[string]int)
	}
	t.counts[key]++
	return t.counts[key] <= t.limit, nil
}

func TestAuthService_Login_Success(t *testing.T) {
	repo := newStubUserRepo()
	repo.addUser(t, "u1", "carol@example.com", "s3cret", domain.RoleAdmin)
	svc := NewAuthService(repo, nil, "secret", 0)

	before := time.Now()
	signed, user, err := svc.Login(context.Background(), "carol@example.com", "s3cret", "198.51.100.7")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if signed == "" {
		t.Fatalf("expected token, got empty")
	}
	if user == nil || user.ID != "u1" {
		t.Fatalf("unexpected user: %+v", user)
	}

	claims, err := token.Parse("secret", signed)
	if err != nil {
		t.Fatalf("token invalid: %v", err)
	}
	if claims.Role != domain.RoleAdmin {
		t.Fatalf("expected role %s, got %s", domain.RoleAdmin, claims.Role)
	}
	if claims.UserID != "u1" {
		t.Fatalf("expected userId u1, got %s", claims.UserID)
	}

	exp := claims.ExpiresAt.Time
	if exp.Before(before.Add(token.DefaultTTL-time.Minute)) || exp.After(time.Now().Add(token.DefaultTTL+time.Minute)) {
		t.Fatalf("expiry %v not 24h from issuance", exp)
	}
}

func TestAuthService_Login_UnregisteredEmail(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewAuthService(repo, nil, "secret", time.Hour)

	if _, _, err := svc.Login(context.Background(), "ghost@example.com", "pass", "198.51.100.7"); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials for unknown email, got %v", err)
	}
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	repo := newStubUserRepo()
	repo.addUser(t, "u1", "dave@example.com", "goodpass", domain.RoleEditor)
	svc := NewAuthService(repo, nil, "secret", time.Hour)

	_, _, err := svc.Login(context.Background(), "dave@example.com", "badpass", "198.51.100.7")
	if err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	// Same error as the unknown-email case: responses must not reveal
	// whether the email exists.
	if _, _, err2 := svc.Login(context.Background(), "ghost@example.com", "badpass", "198.51.100.7"); err2 != err {
		t.Fatalf("error mismatch between unknown email (%v) and wrong password (%v)", err2, err)
	}
}

func TestAuthService_Login_MissingFields(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewAuthService(repo, nil, "secret", time.Hour)

	if _, _, err := svc.Login(context.Background(), "", "pass", "198.51.100.7"); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if _, _, err := svc.Login(context.Background(), "a@example.com", "", "198.51.100.7"); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Login_Throttled(t *testing.T) {
	repo := newStubUserRepo()
	repo.addUser(t, "u1", "eve@example.com", "pass", domain.RoleAuthor)
	throttle := &stubThrottle{allow: false}
	svc := NewAuthService(repo, throttle, "secret", time.Hour)

	if _, _, err := svc.Login(context.Background(), "eve@example.com", "pass", "198.51.100.7"); err != domain.ErrTooManyAttempts {
		t.Fatalf("expected ErrTooManyAttempts, got %v", err)
	}
	if throttle.calls != 1 {
		t.Fatalf("expected 1 throttle call, got %d", throttle.calls)
	}
	if len(throttle.keys) != 1 || throttle.keys[0] != "eve@example.com|198.51.100.7" {
		t.Fatalf("throttle key = %v, want [eve@example.com|198.51.100.7]", throttle.keys)
	}
}

func TestAuthService_Login_ThrottleBudgetIsPerEmailAndIP(t *testing.T) {
	repo := newStubUserRepo()
	repo.addUser(t, "u1", "victim@example.com", "rightpass", domain.RoleEditor)
	throttle := &countingThrottle{limit: 1}
	svc := NewAuthService(repo, throttle, "secret", time.Hour)

	// An attacker exhausts their own budget against the victim's email.
	attackerIP := "203.0.113.9"
	if _, _, err := svc.Login(context.Background(), "victim@example.com", "wrong", attackerIP); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if _, _, err := svc.Login(context.Background(), "victim@example.com", "wrong", attackerIP); err != domain.ErrTooManyAttempts {
		t.Fatalf("expected attacker to be throttled, got %v", err)
	}

	// The account owner, on a different address, still gets in.
	if _, _, err := svc.Login(context.Background(), "victim@example.com", "rightpass", "198.51.100.7"); err != nil {
		t.Fatalf("owner locked out from a fresh address: %v", err)
	}
}

func TestAuthService_Login_ThrottleErrorIsNonFatal(t *testing.T) {
	repo := newStubUserRepo()
	repo.addUser(t, "u1", "eve@example.com", "pass", domain.RoleAuthor)
	throttle := &stubThrottle{allow: false, err: context.DeadlineExceeded}
	svc := NewAuthService(repo, throttle, "secret", time.Hour)

	if _, _, err := svc.Login(context.Background(), "eve@example.com", "pass", "198.51.100.7"); err != nil {
		t.Fatalf("expected login to succeed when throttle errors, got %v", err)
	}
}
