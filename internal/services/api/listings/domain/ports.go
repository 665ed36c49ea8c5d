package domain

import (
	"context"

	"luach/internal/filters"
)

// SearchPort executes a reconciled filter set against the directory
type SearchPort interface {
	Search(ctx context.Context, f filters.Filter) (SearchResult, error)
}
