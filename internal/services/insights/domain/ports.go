package domain

import "context"

// RecorderPort records search events
type RecorderPort interface {
	Record(ctx context.Context, ev SearchEvent) error
	WriteBatch(ctx context.Context, evs []SearchEvent) error
}
