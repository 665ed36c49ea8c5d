package filters

import (
	"net/url"
	"strconv"
)

// TransportValues renders a Filter for the upstream directory REST API,
// which still expects the meters-denominated maxDistance field. This is a
// deliberate, narrow adapter for that one collaborator, not a general rename
// facility; everything else serializes exactly as Encode does.
func TransportValues(f Filter) url.Values {
	q := Encode(f)
	if f.DistanceMi != nil {
		q.Del(KeyDistanceMi)
		meters := *f.DistanceMi * MetersPerMile
		q.Set(KeyMaxDistance, strconv.FormatFloat(meters, 'f', 0, 64))
	}
	return q
}
