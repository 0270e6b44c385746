package service

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/fintechpulse/pulse-cms/internal/core/domain"
	"github.com/fintechpulse/pulse-cms/internal/core/ports"
)

const (
	defaultPageLimit = 20
	maxPageLimit     = 100
)

// ArticleService implements editorial content management.
type ArticleService struct {
	repo   ports.ArticleRepository
	logger zerolog.Logger
}

func NewArticleService(repo ports.ArticleRepository, logger zerolog.Logger) *ArticleService {
	return &ArticleService{repo: repo, logger: logger}
}

func (s *ArticleService) Create(ctx context.Context, in ports.CreateArticleInput) (*domain.Article, error) {
	now := time.Now().UTC()
	article := &domain.Article{
		Slug:      slugify(in.Title),
		Title:     in.Title,
		Summary:   in.Summary,
		Content:   in.Content,
		Category:  in.Category,
		AuthorID:  in.AuthorID,
		Published: in.Published,
		CreatedAt: now,
		UpdatedAt: now,
	}

	created, err := s.repo.Create(ctx, article)
	if errors.Is(err, domain.ErrDuplicateSlug) {
		// Slug collision on same-title articles: retry once with a random suffix.
		article.Slug = article.Slug + "-" + randomSuffix()
		created, err = s.repo.Create(ctx, article)
	}
	if err != nil {
		s.logger.Error().Err(err).Str("slug", article.Slug).Msg("failed to create article")
		return nil, err
	}

	s.logger.Info().Str("slug", created.Slug).Str("author_id", created.AuthorID).Msg("article created")
	return created, nil
}

func (s *ArticleService) GetBySlug(ctx context.Context, slug string) (*domain.Article, error) {
	return s.repo.FindBySlug(ctx, slug)
}

func (s *ArticleService) List(ctx context.Context, in ports.ListArticlesInput) (*ports.ListArticlesResult, error) {
	page := in.Page
	if page < 1 {
		page = 1
	}
	limit := in.Limit
	if limit < 1 {
		limit = defaultPageLimit
	}
	if limit > maxPageLimit {
		limit = maxPageLimit
	}

	articles, total, err := s.repo.List(ctx, page, limit, in.Category)
	if err != nil {
		return nil, err
	}

	totalPages := int((total + int64(limit) - 1) / int64(limit))
	return &ports.ListArticlesResult{
		Articles:   articles,
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: totalPages,
	}, nil
}

// Update applies the non-nil fields of in to the stored article. The slug is
// never regenerated: published URLs stay stable across title edits.
func (s *ArticleService) Update(ctx context.Context, id string, in ports.UpdateArticleInput) (*domain.Article, error) {
	article, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.Title != nil {
		article.Title = *in.Title
	}
	if in.Summary != nil {
		article.Summary = *in.Summary
	}
	if in.Content != nil {
		article.Content = *in.Content
	}
	if in.Category != nil {
		article.Category = *in.Category
	}
	if in.Published != nil {
		article.Published = *in.Published
	}
	article.UpdatedAt = time.Now().UTC()

	return s.repo.Update(ctx, article)
}

func (s *ArticleService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

// slugify lowercases the title and collapses runs of non-alphanumerics into
// single hyphens.
func slugify(title string) string {
	var b strings.Builder
	lastHyphen := true
	for _, r := range strings.ToLower(title) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastHyphen = false
		default:
			if !lastHyphen {
				b.WriteByte('-')
				lastHyphen = true
			}
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}

func randomSuffix() string {
	b := make([]byte, 4)
	if _, err := rand.Read(b); err != nil {
		return fmt.Sprintf("%08x", time.Now().UnixNano()&0xFFFFFFFF)
	}
	return fmt.Sprintf("%08x", b)
}
