package module

import (
	"time"

	"luach/internal/platform/config"
)

// Options for the options module, read from the OPTIONS_ env prefix
type Options struct {
	CacheTTL time.Duration
}

// FromConfig reads module options from config
func FromConfig(cfg config.Conf) Options {
	v := cfg.Prefix("OPTIONS_")
	return Options{
		CacheTTL: v.MayDuration("CACHE_TTL", 5*time.Minute),
	}
}
