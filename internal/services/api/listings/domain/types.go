// Package domain defines the types and interfaces for the listings service
package domain

import "luach/internal/filters"

// Listing is one directory entry as served to clients
type Listing struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	Category   string   `json:"category"`
	Agency     string   `json:"agency,omitempty"`
	Dietary    string   `json:"dietary,omitempty"`
	PriceTier  int      `json:"price_tier,omitempty"`
	Rating     float64  `json:"rating,omitempty"`
	OpenNow    bool     `json:"open_now"`
	Accessible bool     `json:"accessible"`
	Lat        float64  `json:"lat,omitempty"`
	Lng        float64  `json:"lng,omitempty"`
	Address    string   `json:"address,omitempty"`
	Phone      string   `json:"phone,omitempty"`
	Amenities  []string `json:"amenities,omitempty"`

	// DistanceMi is populated only for geo searches
	DistanceMi *float64 `json:"distance_mi,omitempty"`
}

// SearchResult is the service-level search output. Page and PageSize are the
// effective values after defaulting and clamping.
type SearchResult struct {
	Items    []Listing
	Total    int
	Page     int
	PageSize int
}

// SearchResponse is the HTTP payload. CanonicalQuery echoes the reconciled
// filter set as a query string so clients can sync the address bar; Dropped
// names any fields the validator discarded.
type SearchResponse struct {
	Items          []Listing            `json:"items"`
	Page           PageInfo             `json:"page"`
	CanonicalQuery string               `json:"canonical_query"`
	Dropped        []filters.FieldError `json:"dropped,omitempty"`
}

// PageInfo mirrors the envelope page block inside the search payload
type PageInfo struct {
	Total    int `json:"total"`
	Page     int `json:"page"`
	PageSize int `json:"page_size"`
}
