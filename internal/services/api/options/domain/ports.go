package domain

import "context"

// OptionsPort serves the current filter option values
type OptionsPort interface {
	Options(ctx context.Context) (FilterOptions, error)
}
