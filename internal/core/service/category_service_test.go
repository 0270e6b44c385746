package service

import (
	"context"
	"testing"

	"github.com/fintechpulse/pulse-cms/internal/core/domain"
	"github.com/fintechpulse/pulse-cms/internal/core/ports"
)

type stubCategoryRepo struct {
	byID map[string]*domain.Category
}

func newStubCategoryRepo() *stubCategoryRepo {
	return &stubCategoryRepo{byID: make(map[string]*domain.Category)}
}

func (r *stubCategoryRepo) List(_ context.Context) ([]domain.Category, error) {
	out := make([]domain.Category, 0, len(r.byID))
	for _, c := range r.byID {
		out = append(out, *c)
	}
	return out, nil
}

func (r *stubCategoryRepo) FindByID(_ context.Context, id string) (*domain.Category, error) {
	if c, ok := r.byID[id]; ok {
		clone := *c
		return &clone, nil
	}
	return nil, domain.ErrCategoryNotFound
}

func (r *stubCategoryRepo) Create(_ context.Context, category *domain.Category) (*domain.Category, error) {
	if _, exists := r.byID[category.ID]; exists {
		return nil, domain.ErrCategoryExists
	}
	clone := *category
	r.byID[clone.ID] = &clone
	out := clone
	return &out, nil
}

func (r *stubCategoryRepo) Update(_ context.Context, category *domain.Category) (*domain.Category, error) {
	if _, exists := r.byID[category.ID]; !exists {
		return nil, domain.ErrCategoryNotFound
	}
	clone := *category
	r.byID[clone.ID] = &clone
	out := clone
	return &out, nil
}

func (r *stubCategoryRepo) Delete(_ context.Context, id string) error {
	if _, exists := r.byID[id]; !exists {
		return domain.ErrCategoryNotFound
	}
	delete(r.byID, id)
	return nil
}

func TestCategoryService_Update_Partial(t *testing.T) {
	repo := newStubCategoryRepo()
	svc := NewCategoryService(repo)

	if _, err := svc.Create(context.Background(), ports.CreateCategoryInput{
		ID: "markets", Name: "markets", DisplayName: "Markets", Description: "Market news",
	}); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	display := "Global Markets"
	updated, err := svc.Update(context.Background(), "markets", ports.UpdateCategoryInput{DisplayName: &display})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.DisplayName != "Global Markets" {
		t.Fatalf("display name not updated: %q", updated.DisplayName)
	}
	if updated.Name != "markets" || updated.Description != "Market news" {
		t.Fatalf("untouched fields changed: %+v", updated)
	}
}

func TestCategoryService_Update_NotFound(t *testing.T) {
	repo := newStubCategoryRepo()
	svc := NewCategoryService(repo)

	name := "x"
	if _, err := svc.Update(context.Background(), "missing", ports.UpdateCategoryInput{Name: &name}); err != domain.ErrCategoryNotFound {
		t.Fatalf("expected ErrCategoryNotFound, got %v", err)
	}
}

func TestCategoryService_Delete_NotFound(t *testing.T) {
	repo := newStubCategoryRepo()
	svc := NewCategoryService(repo)

	if err := svc.Delete(context.Background(), "missing"); err != domain.ErrCategoryNotFound {
		t.Fatalf("expected ErrCategoryNotFound, got %v", err)
	}
}
