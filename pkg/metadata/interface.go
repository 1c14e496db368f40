// Package metadata resolves human-readable page metadata (title and
// description) for a URL. Resolution is best effort: it performs a single
// bounded GET, parses whatever HTML comes back and degrades to domain-only
// data on any failure. It never reports an error to the caller.
package metadata

import (
	"context"
	"favsetter/pkg/domain"
)

// Resolver derives URLMetadata for a URL.
//
//go:generate mockgen -package mockmetadata -source=interface.go -destination=mock/mockmetadata.go *
type Resolver interface {
	// Resolve returns the best available metadata for rawURL. Domain is always
	// populated ("unknown" when rawURL has no host); Title and Description are
	// nil when nothing usable was found or the fetch failed.
	Resolve(ctx context.Context, rawURL string) domain.URLMetadata
}
