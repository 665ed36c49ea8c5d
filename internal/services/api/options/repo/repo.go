// Package repo provides postgres access for filter options
package repo

import (
	"context"

	"luach/internal/modkit/repokit"
	perr "luach/internal/platform/errors"
	"luach/internal/platform/store"

	dom "luach/internal/services/api/options/domain"
)

// Repo defines the repository contract for filter options
type Repo interface {
	Options(ctx context.Context) (dom.FilterOptions, error)
}

type (
	// PG implements the Repo interface using Postgres
	PG struct{}

	// queries holds the database query methods
	queries struct{ q repokit.Queryer }
)

// NewPG creates a new Postgres repository binder
func NewPG() repokit.Binder[Repo] { return PG{} }

// Bind binds a Postgres queryer to the Repo implementation
func (PG) Bind(q repokit.Queryer) Repo { return &queries{q: q} }

// optionsSQL collects every distinct facet in one statement. Scalar facets
// are aggregated as sorted arrays; amenities is an array column so it is
// unnested first.
const optionsSQL = `
select
  (select coalesce(array_agg(distinct category order by category), '{}')
     from listings where category <> '')               as categories,
  (select coalesce(array_agg(distinct agency order by agency), '{}')
     from listings where agency <> '')                 as agencies,
  (select coalesce(array_agg(distinct dietary order by dietary), '{}')
     from listings where dietary <> '')                as dietary,
  (select coalesce(array_agg(distinct a order by a), '{}')
     from listings, unnest(amenities) as a)            as amenities,
  (select coalesce(min(price_tier), 0) from listings)  as price_min,
  (select coalesce(max(price_tier), 0) from listings)  as price_max
`

func (r *queries) Options(ctx context.Context) (dom.FilterOptions, error) {
	out, err := store.One(ctx, r.q, func(row store.Row) (dom.FilterOptions, error) {
		var o dom.FilterOptions
		err := row.Scan(
			&o.Categories,
			&o.Agencies,
			&o.Dietary,
			&o.Amenities,
			&o.Price.Min,
			&o.Price.Max,
		)
		return o, err
	}, optionsSQL)
	if err != nil {
		return dom.FilterOptions{}, perr.FromPostgres(err, "filter options")
	}
	return out, nil
}
