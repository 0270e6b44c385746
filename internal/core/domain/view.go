package domain

import "time"

// ViewEvent records a single read of an article by a visitor. VisitorID is
// an opaque fingerprint (client IP is good enough here); it is only used for
// short-lived deduplication and is never persisted.
type ViewEvent struct {
	Slug      string
	VisitorID string
	Timestamp time.Time
}
