// Package repo provides postgres access for listings
package repo

import (
	"context"

	"luach/internal/modkit/repokit"
	perr "luach/internal/platform/errors"

	"luach/internal/filters"
	dom "luach/internal/services/api/listings/domain"
)

// Repo defines the repository contract for listings
type Repo interface {
	Search(ctx context.Context, f filters.Filter, folded string, limit, offset int) ([]dom.Listing, int, error)
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

// searchSQL filters listings with sentinel-guarded predicates so one
// statement serves every filter combination. Distance is haversine in miles;
// the alias lives in a subquery so the outer query can bound and sort on it.
const searchSQL = `
select * from (
  select l.id::text, l.name, l.category, l.agency, l.dietary, l.price_tier,
         l.rating, l.open_now, l.accessible, l.lat, l.lng, l.address, l.phone,
         l.amenities,
         case when $8::float8 is not null and $9::float8 is not null then
           3958.8 * 2 * asin(sqrt(
             power(sin(radians((l.lat - $8) / 2)), 2) +
             cos(radians($8)) * cos(radians(l.lat)) *
             power(sin(radians((l.lng - $9) / 2)), 2)
           ))
         end as distance_mi,
         count(*) over () as total
  from listings l
  where ($1 = '' or l.category = $1)
    and ($2 = '' or l.agency = $2)
    and ($3 = '' or l.dietary = $3)
    and ($4::float8 is null or l.rating >= $4)
    and ($5::int is null or l.price_tier >= $5)
    and ($6::int is null or l.price_tier <= $6)
    and ($7 = '' or l.search_text like '%' || $7 || '%')
    and (not $10::bool or l.open_now)
    and (not $11::bool or l.accessible)
    and (cardinality($12::text[]) = 0 or l.amenities @> $12)
) x
where ($13::float8 is null or x.distance_mi <= $13)
order by x.distance_mi asc nulls last, x.rating desc, x.name asc
limit $14 offset $15
`

func (r *queries) Search(
	ctx context.Context,
	f filters.Filter,
	folded string,
	limit, offset int,
) ([]dom.Listing, int, error) {
	var (
		priceMin, priceMax *int
		openNow            = f.OpenNow != nil && *f.OpenNow
		accessible         = f.Accessible != nil && *f.Accessible
	)
	if f.PriceRange != nil {
		priceMin, priceMax = &f.PriceRange.Min, &f.PriceRange.Max
	}
	amenities := f.Amenities
	if amenities == nil {
		amenities = []string{}
	}

	rows, err := r.q.Query(ctx, searchSQL,
		f.Category,
		f.Agency,
		f.Dietary,
		f.Rating,
		priceMin,
		priceMax,
		folded,
		f.Lat,
		f.Lng,
		openNow,
		accessible,
		amenities,
		f.DistanceMi,
		limit,
		offset,
	)
	if err != nil {
		return nil, 0, perr.FromPostgres(err, "listings search")
	}
	defer rows.Close()

	var (
		out   []dom.Listing
		total int
	)
	for rows.Next() {
		var l dom.Listing
		if err := rows.Scan(
			&l.ID,
			&l.Name,
			&l.Category,
			&l.Agency,
			&l.Dietary,
			&l.PriceTier,
			&l.Rating,
			&l.OpenNow,
			&l.Accessible,
			&l.Lat,
			&l.Lng,
			&l.Address,
			&l.Phone,
			&l.Amenities,
			&l.DistanceMi,
			&total,
		); err != nil {
			return nil, 0, perr.FromPostgres(err, "listings scan")
		}
		out = append(out, l)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, perr.FromPostgres(err, "listings rows")
	}
	return out, total, nil
}
