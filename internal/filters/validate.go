package filters

import (
	"net/url"
	"strings"

	"luach/internal/platform/logger"
	"luach/internal/platform/net/http/bind"

	"github.com/go-playground/validator/v10"
)

// FieldError records a single dropped field. The parse itself stays lenient:
// a corrupted shared link degrades to "filter ignored", not "page broken".
type FieldError struct {
	Key     string `json:"key"`
	Message string `json:"message"`
}

func (e FieldError) Error() string { return e.Key + ": " + e.Message }

// Parse is the full validator pipeline: decode the query string, drop
// out-of-bounds fields one by one, then reconcile distance and assemble the
// canonical Filter. The returned FieldErrors describe what was dropped.
func Parse(q url.Values) (Filter, []FieldError) {
	raw, errs := Sanitize(Decode(q))
	return SafeAssemble(raw), errs
}

// sanitizeClear maps a Raw struct field to its wire key and the action that
// drops it. Keyed by the top-level struct field name reported by the
// validator.
var sanitizeClear = map[string]struct {
	key   string
	clear func(*Raw)
}{
	"Rating":     {KeyRating, func(r *Raw) { r.Rating = nil }},
	"PriceRange": {KeyPrice, func(r *Raw) { r.PriceRange = nil }},
	"Lat":        {KeyLat, func(r *Raw) { r.Lat = nil }},
	"Lng":        {KeyLng, func(r *Raw) { r.Lng = nil }},
	"DistanceMi": {KeyDistanceMi, func(r *Raw) { r.DistanceMi = nil }},
	"Radius":     {KeyRadius, func(r *Raw) { r.Radius = nil }},
	"Page":       {KeyPage, func(r *Raw) { r.Page = 0 }},
	"PageSize":   {KeyPageSize, func(r *Raw) { r.PageSize = 0 }},
}

// Sanitize bounds-checks a decoded Raw and drops offending fields in place
// of failing the whole parse. A tuple with any invalid member is dropped
// whole, never partially applied.
func Sanitize(r Raw) (Raw, []FieldError) {
	var errs []FieldError

	if err := bind.Get().Validator.Struct(r); err != nil {
		verrs, ok := err.(validator.ValidationErrors)
		if !ok {
			// invalid use of the validator is a programming error
			logger.Named("filters").Error().Err(err).Msg("validator internal error")
			return r, errs
		}
		seen := map[string]bool{}
		for _, fe := range verrs {
			name := topLevelField(fe.StructNamespace())
			entry, known := sanitizeClear[name]
			if !known || seen[entry.key] {
				continue
			}
			seen[entry.key] = true
			entry.clear(&r)
			errs = append(errs, FieldError{
				Key:     entry.key,
				Message: fe.Translate(bind.Get().Translator),
			})
		}
	}

	// Meters-denominated distance fields carry their wire unit, so their
	// bounds are checked after conversion rather than via struct tags.
	if r.MaxDistance != nil && !milesInBounds(*r.MaxDistance / MetersPerMile) {
		r.MaxDistance = nil
		errs = append(errs, FieldError{Key: KeyMaxDistance, Message: "distance out of range"})
	}
	if r.DistanceMeters != nil && !milesInBounds(*r.DistanceMeters / MetersPerMile) {
		r.DistanceMeters = nil
		errs = append(errs, FieldError{Key: KeyDistanceMeters, Message: "distance out of range"})
	}

	return r, errs
}

func milesInBounds(mi float64) bool {
	return mi >= DistanceMinMi && mi <= DistanceMaxMi
}

// topLevelField extracts the first field segment from a validator struct
// namespace like "Raw.PriceRange.Min".
func topLevelField(ns string) string {
	if i := strings.IndexByte(ns, '.'); i >= 0 {
		ns = ns[i+1:]
	}
	if i := strings.IndexByte(ns, '.'); i >= 0 {
		ns = ns[:i]
	}
	return ns
}
