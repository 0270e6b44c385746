package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const dedupTTL = time.Hour

// ViewDedup provides per-visitor view deduplication backed by Redis.
// Key format: view:<slug>:<visitor_id>
type ViewDedup struct {
	client *redis.Client
}

// NewViewDedup creates a ViewDedup wrapping the given Redis client.
func NewViewDedup(client *redis.Client) *ViewDedup {
	return &ViewDedup{client: client}
}

// IsDuplicate reports whether this visitor already viewed the article within
// the dedup window.
func (d *ViewDedup) IsDuplicate(ctx context.Context, slug, visitorID string) (bool, error) {
	n, err := d.client.Exists(ctx, d.key(slug, visitorID)).Result()
	if err != nil {
		return false, fmt.Errorf("view dedup check: %w", err)
	}
	return n > 0, nil
}

// Mark records the view (expires after dedupTTL).
func (d *ViewDedup) Mark(ctx context.Context, slug, visitorID string) error {
	return d.client.Set(ctx, d.key(slug, visitorID), "1", dedupTTL).Err()
}

func (d *ViewDedup) key(slug, visitorID string) string {
	return fmt.Sprintf("view:%s:%s", slug, visitorID)
}
