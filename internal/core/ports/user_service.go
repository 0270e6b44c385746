package ports

import (
	"context"

	"github.com/fintechpulse/pulse-cms/internal/core/domain"
)

// CreateUserInput carries the fields needed to provision an account.
type CreateUserInput struct {
	Name     string
	Email    string
	Password string
	Role     string
}

// UserService implements admin-side account management.
type UserService interface {
	List(ctx context.Context) ([]domain.User, error)
	Create(ctx context.Context, in CreateUserInput) (*domain.User, error)
	Delete(ctx context.Context, id string) error
}
