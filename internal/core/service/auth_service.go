package service

import (
	"context"
	"errors"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/fintechpulse/pulse-cms/internal/core/domain"
	"github.com/fintechpulse/pulse-cms/internal/core/ports"
	"github.com/fintechpulse/pulse-cms/internal/pkg/token"
)

// LoginThrottle abstracts the brute-force limiter (Redis). Allow counts the
// attempt and reports whether it is within the window budget.
type LoginThrottle interface {
	Allow(ctx context.Context, key string) (bool, error)
}

// AuthService implements credential verification and token issuance.
type AuthService struct {
	repo      ports.UserRepository
	throttle  LoginThrottle
	jwtSecret string
	tokenTTL  time.Duration
}

// NewAuthService builds an AuthService. throttle may be nil to disable the
// attempt limiter; the bcrypt compare is slow enough to act as a baseline
// brute-force throttle on its own.
func NewAuthService(repo ports.UserRepository, throttle LoginThrottle, jwtSecret string, tokenTTL time.Duration) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = token.DefaultTTL
	}
	return &AuthService{repo: repo, throttle: throttle, jwtSecret: jwtSecret, tokenTTL: tokenTTL}
}

func (s *AuthService) Login(ctx context.Context, email, password, ip string) (string, *domain.User, error) {
	if email == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	if s.throttle != nil {
		ok, err := s.throttle.Allow(ctx, throttleKey(email, ip))
		if err == nil && !ok {
			return "", nil, domain.ErrTooManyAttempts
		}
		// A broken limiter never locks users out; the slow hash still throttles.
	}

	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			// Report lookup misses as bad credentials so the response does
			// not reveal which emails are registered.
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return "", nil, domain.ErrInvalidCredentials
	}

	signed, err := token.Issue(s.jwtSecret, user.ID, user.Role, s.tokenTTL)
	if err != nil {
		return "", nil, err
	}

	return signed, user, nil
}

// throttleKey scopes the attempt counter to the email+IP pair, so a remote
// attacker burning attempts against an email cannot lock its owner out.
func throttleKey(email, ip string) string {
	if ip == "" {
		return email
	}
	return email + "|" + ip
}
