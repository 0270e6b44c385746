package service

import (
	"context"
	"time"

	"github.com/fintechpulse/pulse-cms/internal/core/domain"
	"github.com/fintechpulse/pulse-cms/internal/core/ports"
)

// CategoryService implements category management.
type CategoryService struct {
	repo ports.CategoryRepository
}

func NewCategoryService(repo ports.CategoryRepository) *CategoryService {
	return &CategoryService{repo: repo}
}

func (s *CategoryService) List(ctx context.Context) ([]domain.Category, error) {
	return s.repo.List(ctx)
}

func (s *CategoryService) Create(ctx context.Context, in ports.CreateCategoryInput) (*domain.Category, error) {
	now := time.Now().UTC()
	category := &domain.Category{
		ID:          in.ID,
		Name:        in.Name,
		DisplayName: in.DisplayName,
		Description: in.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	return s.repo.Create(ctx, category)
}

// Update applies the non-nil fields of in to the stored category.
func (s *CategoryService) Update(ctx context.Context, id string, in ports.UpdateCategoryInput) (*domain.Category, error) {
	category, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.Name != nil {
		category.Name = *in.Name
	}
	if in.DisplayName != nil {
		category.DisplayName = *in.DisplayName
	}
	if in.Description != nil {
		category.Description = *in.Description
	}
	category.UpdatedAt = time.Now().UTC()

	return s.repo.Update(ctx, category)
}

func (s *CategoryService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
