package ports

import (
	"context"

	"github.com/fintechpulse/pulse-cms/internal/core/domain"
)

type CreateArticleInput struct {
	Title     string
	Summary   string
	Content   string
	Category  string
	AuthorID  string
	Published bool
}

// UpdateArticleInput carries partial updates: nil fields are left untouched.
type UpdateArticleInput struct {
	Title     *string
	Summary   *string
	Content   *string
	Category  *string
	Published *bool
}

type ListArticlesInput struct {
	Page     int
	Limit    int
	Category string
}

type ListArticlesResult struct {
	Articles   []domain.Article
	Total      int64
	Page       int
	Limit      int
	TotalPages int
}

// ArticleService implements editorial content management.
type ArticleService interface {
	Create(ctx context.Context, in CreateArticleInput) (*domain.Article, error)
	GetBySlug(ctx context.Context, slug string) (*domain.Article, error)
	List(ctx context.Context, in ListArticlesInput) (*ListArticlesResult, error)
	Update(ctx context.Context, id string, in UpdateArticleInput) (*domain.Article, error)
	Delete(ctx context.Context, id string) error
}
