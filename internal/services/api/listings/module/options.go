package module

import (
	"time"

	"luach/internal/platform/config"
)

// Options for the listings module, read from the LISTINGS_ env prefix
type Options struct {
	DefaultPageSize     int
	MaxPageSize         int
	StrictDistance      bool
	MarketplaceCategory string
	LegacyBaseURL       string
	LegacyTimeout       time.Duration
}

// FromConfig reads module options from config
func FromConfig(cfg config.Conf) Options {
	v := cfg.Prefix("LISTINGS_")
	return Options{
		DefaultPageSize:     v.MayInt("DEFAULT_PAGE_SIZE", 20),
		MaxPageSize:         v.MayInt("MAX_PAGE_SIZE", 100),
		StrictDistance:      v.MayBool("STRICT_DISTANCE", false),
		MarketplaceCategory: v.MayString("MARKETPLACE_CATEGORY", "marketplace"),
		LegacyBaseURL:       v.MayString("LEGACY_API_URL", ""),
		LegacyTimeout:       v.MayDuration("LEGACY_TIMEOUT", 10*time.Second),
	}
}
