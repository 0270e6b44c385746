package ports

import (
	"context"

	"github.com/fintechpulse/pulse-cms/internal/core/domain"
)

// AuthService authenticates credentials and mints session tokens.
type AuthService interface {
	// Login verifies the email/password pair and returns a signed bearer
	// token plus the matching user. Unknown email and wrong password both
	// yield domain.ErrInvalidCredentials so callers cannot probe which
	// emails are registered. ip identifies the caller for attempt
	// throttling; one address hammering an email must not consume the
	// account owner's budget.
	Login(ctx context.Context, email, password, ip string) (string, *domain.User, error)
}
