package filters

import (
	"strings"

	"luach/internal/platform/logger"
)

// ConflictError reports that more than one of the four distance keys is set.
// Fields holds the offending wire keys in precedence order.
type ConflictError struct {
	Fields []string
}

func (e *ConflictError) Error() string {
	return "conflicting distance filters: " + strings.Join(e.Fields, ", ")
}

// ValidateDistance scans the four legacy distance keys and returns a
// *ConflictError iff strictly more than one is set. It never picks a winner;
// that is Normalize's job. Zero or exactly one set key is valid.
func ValidateDistance(r Raw) error {
	var set []string
	for _, key := range distanceKeys {
		if v, _ := r.distanceField(key); v != nil {
			set = append(set, key)
		}
	}
	if len(set) > 1 {
		return &ConflictError{Fields: set}
	}
	return nil
}

// CanonicalDistance returns the highest-precedence set distance value in
// miles, converting meters-denominated fields. Nil when no distance key is
// set; never zero or a default.
func CanonicalDistance(r Raw) *float64 {
	for _, key := range distanceKeys {
		v, meters := r.distanceField(key)
		if v == nil {
			continue
		}
		mi := *v
		if meters {
			mi = *v / MetersPerMile
		}
		return &mi
	}
	return nil
}

// Normalize returns a copy of r with all four distance keys cleared and the
// canonical miles field populated via CanonicalDistance. Idempotent.
func Normalize(r Raw) Raw {
	out := r
	out.DistanceMi = CanonicalDistance(r)
	out.Radius = nil
	out.MaxDistance = nil
	out.DistanceMeters = nil
	return out
}

// SafeAssemble is the production entry point from Raw to Filter. It never
// fails: a distance conflict is logged and resolved by precedence instead of
// being surfaced. Use ValidateDistance separately for strict diagnostics.
func SafeAssemble(r Raw) Filter {
	if err := ValidateDistance(r); err != nil {
		logger.Named("filters").Warn().
			Err(err).
			Msg("distance conflict resolved by precedence")
	}
	return assemble(Normalize(r))
}

// assemble maps a normalized Raw onto the canonical Filter. Unknown keys are
// dropped here; the legacy distance fields must already be cleared.
func assemble(r Raw) Filter {
	return Filter{
		Query:      r.Query,
		Category:   r.Category,
		Agency:     r.Agency,
		Rating:     r.Rating,
		Dietary:    r.Dietary,
		PriceRange: r.PriceRange,
		OpenNow:    r.OpenNow,
		NearMe:     r.NearMe,
		Accessible: r.Accessible,
		Lat:        r.Lat,
		Lng:        r.Lng,
		DistanceMi: r.DistanceMi,
		Amenities:  r.Amenities,
		Page:       r.Page,
		PageSize:   r.PageSize,
	}
}
