// Package domain defines the types and interfaces for the insights service
package domain

import "time"

// SearchEvent is one normalized filter search, recorded for product
// analytics. Query text is folded before it gets here.
type SearchEvent struct {
	ID            string
	At            time.Time
	Category      string
	Query         string
	Dietary       string
	DistanceMi    *float64
	OpenNow       bool
	ActiveFilters int
	ResultTotal   int
	Source        string // "api" or "legacy-proxy"
}
