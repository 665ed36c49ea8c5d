// Package repo provides clickhouse access for insights
package repo

import (
	"context"

	"luach/internal/platform/store"
	dom "luach/internal/services/insights/domain"
)

// searchEventColumns is the column order WriteBatch appends in
var searchEventColumns = []string{
	"id",
	"at",
	"category",
	"query",
	"dietary",
	"distance_mi",
	"open_now",
	"active_filters",
	"result_total",
	"source",
}

// CH writes search events to clickhouse
type CH struct {
	db store.Clickhouse
}

// NewCH constructs a clickhouse insights repo
func NewCH(db store.Clickhouse) *CH { return &CH{db: db} }

// WriteBatch appends events to the search_events table in one batch
func (r *CH) WriteBatch(ctx context.Context, evs []dom.SearchEvent) error {
	if len(evs) == 0 {
		return nil
	}
	rows := make([][]any, 0, len(evs))
	for _, ev := range evs {
		var dist float64
		if ev.DistanceMi != nil {
			dist = *ev.DistanceMi
		}
		rows = append(rows, []any{
			ev.ID,
			ev.At,
			ev.Category,
			ev.Query,
			ev.Dietary,
			dist,
			ev.OpenNow,
			int32(ev.ActiveFilters),
			int64(ev.ResultTotal),
			ev.Source,
		})
	}
	return r.db.Insert(ctx, "search_events", searchEventColumns, rows)
}
