// Package domain contains filter options domain types
package domain

// PriceBounds is the inclusive price tier range present in the directory
type PriceBounds struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// FilterOptions are the selectable values the search UI offers. Every slice
// holds distinct values currently present in the directory, sorted ascending.
type FilterOptions struct {
	Categories []string    `json:"categories"`
	Agencies   []string    `json:"agencies"`
	Dietary    []string    `json:"dietary"`
	Amenities  []string    `json:"amenities"`
	Price      PriceBounds `json:"price"`
}
