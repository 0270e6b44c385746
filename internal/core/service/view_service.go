package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/fintechpulse/pulse-cms/internal/core/domain"
	"github.com/fintechpulse/pulse-cms/internal/core/ports"
)

// ViewDedup abstracts the short-lived visitor dedup store (Redis).
type ViewDedup interface {
	IsDuplicate(ctx context.Context, slug, visitorID string) (bool, error)
	Mark(ctx context.Context, slug, visitorID string) error
}

type viewService struct {
	articleRepo ports.ArticleRepository
	dedup       ViewDedup
	log         zerolog.Logger
}

// NewViewService returns a ViewService implementation.
func NewViewService(articleRepo ports.ArticleRepository, dedup ViewDedup, log zerolog.Logger) ports.ViewService {
	return &viewService{articleRepo: articleRepo, dedup: dedup, log: log}
}

// Process deduplicates and counts a single article view.
func (s *viewService) Process(ctx context.Context, event domain.ViewEvent) error {
	isDup, err := s.dedup.IsDuplicate(ctx, event.Slug, event.VisitorID)
	if err != nil {
		s.log.Warn().Err(err).Str("slug", event.Slug).Msg("view dedup check failed, counting anyway")
	} else if isDup {
		s.log.Debug().Str("slug", event.Slug).Msg("duplicate view skipped")
		return nil
	}

	if markErr := s.dedup.Mark(ctx, event.Slug, event.VisitorID); markErr != nil {
		s.log.Warn().Err(markErr).Str("slug", event.Slug).Msg("failed to set view dedup key")
	}

	if err := s.articleRepo.IncrementViews(ctx, event.Slug); err != nil {
		return fmt.Errorf("process view: %w", err)
	}
	return nil
}
