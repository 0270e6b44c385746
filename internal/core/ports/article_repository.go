package ports

import (
	"context"

	"github.com/fintechpulse/pulse-cms/internal/core/domain"
)

// ArticleRepository defines the persistence interface for articles.
type ArticleRepository interface {
	Create(ctx context.Context, article *domain.Article) (*domain.Article, error)
	FindByID(ctx context.Context, id string) (*domain.Article, error)
	FindBySlug(ctx context.Context, slug string) (*domain.Article, error)
	// List returns a page of articles, newest first, with the total count.
	List(ctx context.Context, page, limit int, category string) ([]domain.Article, int64, error)
	Update(ctx context.Context, article *domain.Article) (*domain.Article, error)
	Delete(ctx context.Context, id string) error
	IncrementViews(ctx context.Context, slug string) error
}
