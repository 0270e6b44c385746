package ports

import (
	"context"

	"github.com/fintechpulse/pulse-cms/internal/core/domain"
)

// ViewService processes article view events off the request path.
type ViewService interface {
	Process(ctx context.Context, event domain.ViewEvent) error
}
