package filters

import (
	"encoding/json"
	"net/url"
	"strconv"
	"strings"
)

// Decode recovers a Raw filter shape from parsed query values. It performs
// type recovery only; bounds live in Sanitize. Malformed values are dropped
// whole, never partially applied. Unrecognized keys are retained on
// Raw.Unknown for downstream layers to drop or forward.
func Decode(q url.Values) Raw {
	var r Raw

	for key, vals := range q {
		if len(vals) == 0 {
			continue
		}
		first := vals[0]
		switch key {
		case KeyQuery:
			r.Query = first
		case KeyCategory:
			r.Category = first
		case KeyAgency:
			r.Agency = first
		case KeyRating:
			r.Rating = parseFloat(first)
		case KeyDietary:
			r.Dietary = collapseDietary(vals)
		case KeyPrice:
			r.PriceRange = parsePriceRange(first)
		case KeyOpenNow:
			r.OpenNow = parseBool(first)
		case KeyNearMe:
			r.NearMe = parseBool(first)
		case KeyAccess:
			r.Accessible = parseBool(first)
		case KeyLat:
			r.Lat = parseFloat(first)
		case KeyLng:
			r.Lng = parseFloat(first)
		case KeyDistanceMi:
			r.DistanceMi = parseFloat(first)
		case KeyRadius:
			r.Radius = parseFloat(first)
		case KeyMaxDistance:
			r.MaxDistance = parseFloat(first)
		case KeyDistanceMeters:
			r.DistanceMeters = parseFloat(first)
		case KeyAmenity:
			// repeated keys accumulate in encounter order
			for _, v := range vals {
				if v != "" {
					r.Amenities = append(r.Amenities, v)
				}
			}
		case KeyPage:
			r.Page = parseInt(first)
		case KeyPageSize:
			r.PageSize = parseInt(first)
		default:
			if r.Unknown == nil {
				r.Unknown = url.Values{}
			}
			r.Unknown[key] = append([]string(nil), vals...)
		}
	}

	return r
}

// Encode serializes a validated Filter to query values. Unset and empty
// values are omitted; the absence of a key is the canonical "not set"
// representation. Percent-encoding is owned entirely by url.Values.Encode.
func Encode(f Filter) url.Values {
	q := url.Values{}

	setStr(q, KeyQuery, f.Query)
	setStr(q, KeyCategory, f.Category)
	setStr(q, KeyAgency, f.Agency)
	setStr(q, KeyDietary, f.Dietary)

	if f.Rating != nil {
		q.Set(KeyRating, formatFloat(*f.Rating))
	}
	if f.PriceRange != nil {
		q.Set(KeyPrice, strconv.Itoa(f.PriceRange.Min)+","+strconv.Itoa(f.PriceRange.Max))
	}

	setBool(q, KeyOpenNow, f.OpenNow)
	setBool(q, KeyNearMe, f.NearMe)
	setBool(q, KeyAccess, f.Accessible)

	if f.Lat != nil {
		q.Set(KeyLat, formatFloat(*f.Lat))
	}
	if f.Lng != nil {
		q.Set(KeyLng, formatFloat(*f.Lng))
	}
	if f.DistanceMi != nil {
		q.Set(KeyDistanceMi, formatFloat(*f.DistanceMi))
	}

	for _, a := range f.Amenities {
		if a != "" {
			q.Add(KeyAmenity, a)
		}
	}

	if f.Page > 0 {
		q.Set(KeyPage, strconv.Itoa(f.Page))
	}
	if f.PageSize > 0 {
		q.Set(KeyPageSize, strconv.Itoa(f.PageSize))
	}

	return q
}

// EncodeQuery is Encode rendered as a query string, suitable for the address
// bar or a shareable link.
func EncodeQuery(f Filter) string {
	return Encode(f).Encode()
}

// collapseDietary implements the take-first collapse policy for the dietary
// key across its three wire representations: repeated parameters, a comma
// separated list, and a JSON array string. The validator relies on this
// having already happened, so both layers agree by construction.
func collapseDietary(vals []string) string {
	if len(vals) == 0 {
		return ""
	}
	s := strings.TrimSpace(vals[0])
	if s == "" {
		return ""
	}
	if strings.HasPrefix(s, "[") {
		var arr []string
		if err := json.Unmarshal([]byte(s), &arr); err == nil {
			if len(arr) == 0 {
				return ""
			}
			return strings.TrimSpace(arr[0])
		}
		// not a valid JSON array, fall through and treat as a plain value
	}
	if i := strings.IndexByte(s, ','); i >= 0 {
		s = s[:i]
	}
	return strings.TrimSpace(s)
}

// parsePriceRange splits "min,max" into a tuple. Anything that does not
// split into exactly two integers drops the field rather than partially
// populating it.
func parsePriceRange(s string) *PriceRange {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return nil
	}
	lo, err1 := strconv.Atoi(strings.TrimSpace(parts[0]))
	hi, err2 := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err1 != nil || err2 != nil {
		return nil
	}
	return &PriceRange{Min: lo, Max: hi}
}

// parseBool maps "1"/"0" first, then the usual spellings via ParseBool, and
// finally falls back to generic truthiness: any other non-empty value is
// true. Empty drops the field.
func parseBool(s string) *bool {
	switch s {
	case "":
		return nil
	case "1":
		return ptr(true)
	case "0":
		return ptr(false)
	}
	if b, err := strconv.ParseBool(s); err == nil {
		return ptr(b)
	}
	return ptr(true)
}

func parseFloat(s string) *float64 {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return nil
	}
	return &f
}

func parseInt(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0
	}
	return n
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func setStr(q url.Values, key, v string) {
	if v != "" {
		q.Set(key, v)
	}
}

func setBool(q url.Values, key string, v *bool) {
	if v == nil {
		return
	}
	if *v {
		q.Set(key, "1")
	} else {
		q.Set(key, "0")
	}
}

func ptr[T any](v T) *T { return &v }
