package ports

import (
	"context"

	"github.com/fintechpulse/pulse-cms/internal/core/domain"
)

type CreateCategoryInput struct {
	ID          string
	Name        string
	DisplayName string
	Description string
}

// UpdateCategoryInput carries partial updates: nil fields are left untouched.
type UpdateCategoryInput struct {
	Name        *string
	DisplayName *string
	Description *string
}

// CategoryService implements category management.
type CategoryService interface {
	List(ctx context.Context) ([]domain.Category, error)
	Create(ctx context.Context, in CreateCategoryInput) (*domain.Category, error)
	Update(ctx context.Context, id string, in UpdateCategoryInput) (*domain.Category, error)
	Delete(ctx context.Context, id string) error
}
