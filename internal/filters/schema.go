// Package filters owns the canonical search filter grammar: the schema and
// validator, the distance reconciler, and the URL codec. Every operation is a
// pure function of its input; nothing here holds shared mutable state.
package filters

import "net/url"

// Wire keys recognized by the schema. Anything else is an unknown key:
// retained by the codec, dropped by the validator.
const (
	KeyQuery    = "q"
	KeyCategory = "category"
	KeyAgency   = "agency"
	KeyRating   = "rating"
	KeyDietary  = "dietary"
	KeyPrice    = "priceRange"
	KeyOpenNow  = "openNow"
	KeyNearMe   = "nearMe"
	KeyAccess   = "accessible"
	KeyLat      = "lat"
	KeyLng      = "lng"
	KeyAmenity  = "amenities"
	KeyPage     = "page"
	KeyPageSize = "pageSize"

	// Distance keys. KeyDistanceMi is canonical; the other three are legacy
	// names still emitted by old clients and shared links.
	KeyDistanceMi     = "distanceMi"     // miles, canonical
	KeyRadius         = "radius"         // miles, deprecated
	KeyMaxDistance    = "maxDistance"    // meters, deprecated
	KeyDistanceMeters = "distanceMeters" // meters, deprecated
)

// MetersPerMile is the fixed conversion factor for the meters-denominated
// legacy distance fields.
const MetersPerMile = 1609.34

// Bounds enforced by the validator.
const (
	RatingMin = 1
	RatingMax = 5

	PriceTierMin = 1
	PriceTierMax = 4

	PageSizeMax = 100

	LatMin, LatMax = -90.0, 90.0
	LngMin, LngMax = -180.0, 180.0

	// DistanceMin/Max bound the canonical miles value; meters-denominated
	// inputs are converted before the check.
	DistanceMinMi = 1.0
	DistanceMaxMi = 50.0
)

// PriceRange is the ordered [min, max] price tier tuple.
type PriceRange struct {
	Min int `json:"min" validate:"gte=1,lte=4,ltefield=Max"`
	Max int `json:"max" validate:"gte=1,lte=4"`
}

// Filter is the validated, reconciled filter object. Pointer fields
// distinguish "not set" from a legitimate zero (rating 0 is invalid anyway,
// but openNow=false and lat=0 are not).
type Filter struct {
	Query    string `json:"q,omitempty"`
	Category string `json:"category,omitempty"`
	Agency   string `json:"agency,omitempty"`

	Rating  *float64 `json:"rating,omitempty"`
	Dietary string   `json:"dietary,omitempty"`

	PriceRange *PriceRange `json:"priceRange,omitempty"`

	OpenNow    *bool `json:"openNow,omitempty"`
	NearMe     *bool `json:"nearMe,omitempty"`
	Accessible *bool `json:"accessible,omitempty"`

	Lat *float64 `json:"lat,omitempty"`
	Lng *float64 `json:"lng,omitempty"`

	// DistanceMi is the single canonical distance field. Legacy names never
	// appear here; SafeAssemble folds them in.
	DistanceMi *float64 `json:"distanceMi,omitempty"`

	Amenities []string `json:"amenities,omitempty"`

	Page     int `json:"page,omitempty"`
	PageSize int `json:"pageSize,omitempty"`
}

// Raw is the decoded, un-reconciled shape straight off the wire. It still
// carries all four distance keys and any unrecognized query parameters.
// Validation tags drive the per-field bounds in Sanitize; tag names follow
// the json names so field errors name wire keys.
type Raw struct {
	Query    string `json:"q"`
	Category string `json:"category"`
	Agency   string `json:"agency"`

	Rating  *float64 `json:"rating" validate:"omitempty,gte=1,lte=5"`
	Dietary string   `json:"dietary"`

	PriceRange *PriceRange `json:"priceRange"`

	OpenNow    *bool `json:"openNow"`
	NearMe     *bool `json:"nearMe"`
	Accessible *bool `json:"accessible"`

	Lat *float64 `json:"lat" validate:"omitempty,gte=-90,lte=90"`
	Lng *float64 `json:"lng" validate:"omitempty,gte=-180,lte=180"`

	DistanceMi     *float64 `json:"distanceMi" validate:"omitempty,gte=1,lte=50"`
	Radius         *float64 `json:"radius" validate:"omitempty,gte=1,lte=50"`
	MaxDistance    *float64 `json:"maxDistance"`    // meters, bounds checked after conversion
	DistanceMeters *float64 `json:"distanceMeters"` // meters, bounds checked after conversion

	Amenities []string `json:"amenities"`

	Page     int `json:"page" validate:"omitempty,gte=1"`
	PageSize int `json:"pageSize" validate:"omitempty,gte=1,lte=100"`

	// Unknown holds unrecognized query parameters. The codec retains them so
	// callers can inspect or forward; the validator drops them.
	Unknown url.Values `json:"-"`
}

// distanceKeys lists the four legacy keys in precedence order,
// highest first. Order is the whole contract; do not reorder.
var distanceKeys = [4]string{KeyDistanceMi, KeyRadius, KeyMaxDistance, KeyDistanceMeters}

// distanceField returns the value and unit of one of the four distance
// fields by wire key.
func (r *Raw) distanceField(key string) (v *float64, meters bool) {
	switch key {
	case KeyDistanceMi:
		return r.DistanceMi, false
	case KeyRadius:
		return r.Radius, false
	case KeyMaxDistance:
		return r.MaxDistance, true
	case KeyDistanceMeters:
		return r.DistanceMeters, true
	}
	return nil, false
}
