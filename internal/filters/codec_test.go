package filters

import (
	"net/url"
	"reflect"
	"strings"
	"testing"
)

func TestDecodeScalarsAndBooleans(t *testing.T) {
	q := url.Values{
		"q":        {"kosher pizza"},
		"category": {"eateries"},
		"rating":   {"4.5"},
		"openNow":  {"1"},
		"nearMe":   {"0"},
		"page":     {"2"},
		"pageSize": {"25"},
	}
	r := Decode(q)

	if r.Query != "kosher pizza" || r.Category != "eateries" {
		t.Fatalf("scalars: %+v", r)
	}
	if r.Rating == nil || *r.Rating != 4.5 {
		t.Fatalf("rating: %v", r.Rating)
	}
	if r.OpenNow == nil || !*r.OpenNow {
		t.Fatalf("openNow: %v", r.OpenNow)
	}
	if r.NearMe == nil || *r.NearMe {
		t.Fatalf("nearMe: %v", r.NearMe)
	}
	if r.Page != 2 || r.PageSize != 25 {
		t.Fatalf("pagination: %+v", r)
	}
}

func TestDecodeBoolTruthyFallback(t *testing.T) {
	cases := []struct {
		in   string
		want *bool
	}{
		{"1", ptr(true)},
		{"0", ptr(false)},
		{"true", ptr(true)},
		{"false", ptr(false)},
		{"yes", ptr(true)}, // generic truthy fallback
		{"", nil},
	}
	for _, tc := range cases {
		got := Decode(url.Values{"openNow": {tc.in}}).OpenNow
		switch {
		case tc.want == nil && got != nil:
			t.Errorf("openNow=%q: got %v, want unset", tc.in, *got)
		case tc.want != nil && (got == nil || *got != *tc.want):
			t.Errorf("openNow=%q: got %v, want %v", tc.in, got, *tc.want)
		}
	}
}

func TestDecodePriceRangeTuple(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want *PriceRange
	}{
		{"valid", "1,3", &PriceRange{Min: 1, Max: 3}},
		{"spaces", " 2 , 4 ", &PriceRange{Min: 2, Max: 4}},
		{"single segment", "2", nil},
		{"three segments", "1,2,3", nil},
		{"non numeric", "1,cheap", nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Decode(url.Values{"priceRange": {tc.in}}).PriceRange
			if !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("got %+v, want %+v", got, tc.want)
			}
		})
	}
}

func TestDecodeDietaryCollapse(t *testing.T) {
	// all three wire representations collapse to the first value
	cases := []struct {
		name string
		vals []string
	}{
		{"repeated params", []string{"meat", "dairy"}},
		{"comma list", []string{"meat,dairy"}},
		{"json array string", []string{`["meat","dairy"]`}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := Decode(url.Values{"dietary": tc.vals})
			if r.Dietary != "meat" {
				t.Fatalf("dietary = %q, want %q", r.Dietary, "meat")
			}
		})
	}
}

func TestDecodeAmenitiesAccumulate(t *testing.T) {
	r := Decode(url.Values{"amenities": {"parking", "wifi", "minyan"}})
	want := []string{"parking", "wifi", "minyan"}
	if !reflect.DeepEqual(r.Amenities, want) {
		t.Fatalf("amenities = %v", r.Amenities)
	}
}

func TestDecodeRetainsUnknownKeys(t *testing.T) {
	r := Decode(url.Values{"utm_source": {"share"}, "q": {"bagels"}})
	if got := r.Unknown.Get("utm_source"); got != "share" {
		t.Fatalf("unknown = %v", r.Unknown)
	}
	if r.Query != "bagels" {
		t.Fatalf("query = %q", r.Query)
	}
}

func TestEncodeOmitsEmptyValues(t *testing.T) {
	f := Filter{Query: "bagels", Amenities: []string{}}
	s := EncodeQuery(f)
	if strings.Contains(s, "rating") || strings.Contains(s, "amenities") {
		t.Fatalf("unexpected keys in %q", s)
	}
	if s != "q=bagels" {
		t.Fatalf("query = %q", s)
	}
}

func TestEncodeBooleansAsBits(t *testing.T) {
	f := Filter{OpenNow: ptr(true), NearMe: ptr(false)}
	q := Encode(f)
	if q.Get("openNow") != "1" || q.Get("nearMe") != "0" {
		t.Fatalf("encoded = %v", q)
	}
}

func TestEncodePriceRangeAsTuple(t *testing.T) {
	f := Filter{PriceRange: &PriceRange{Min: 1, Max: 3}}
	if got := Encode(f).Get("priceRange"); got != "1,3" {
		t.Fatalf("priceRange = %q", got)
	}
}

func TestRoundTrip(t *testing.T) {
	cases := []struct {
		name string
		f    Filter
	}{
		{"empty", Filter{}},
		{"full", Filter{
			Query:      "kosher pizza & falafel",
			Category:   "eateries",
			Agency:     "ou",
			Rating:     ptr(4.5),
			Dietary:    "meat",
			PriceRange: &PriceRange{Min: 1, Max: 3},
			OpenNow:    ptr(true),
			NearMe:     ptr(false),
			Accessible: ptr(true),
			Lat:        ptr(40.7128),
			Lng:        ptr(-74.006),
			DistanceMi: ptr(10.0),
			Amenities:  []string{"parking", "wifi"},
			Page:       2,
			PageSize:   25,
		}},
		{"geo only", Filter{Lat: ptr(31.778), Lng: ptr(35.235), DistanceMi: ptr(5.0)}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			q, err := url.ParseQuery(EncodeQuery(tc.f))
			if err != nil {
				t.Fatalf("parse: %v", err)
			}
			got := SafeAssemble(Decode(q))
			if !reflect.DeepEqual(got, tc.f) {
				t.Fatalf("round trip mismatch:\n got %+v\nwant %+v", got, tc.f)
			}
		})
	}
}
