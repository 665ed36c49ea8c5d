// Package legacy is the HTTP client for the upstream directory REST API.
// It is the only place the transport distance format leaves this process.
package legacy

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	perr "luach/internal/platform/errors"
	"luach/internal/platform/logger"

	"luach/internal/filters"
	"luach/internal/services/api/listings/domain"
)

// Config for the legacy client
type Config struct {
	BaseURL string
	Timeout time.Duration // default 10s
}

// Client talks to the legacy directory API
type Client struct {
	base string
	hc   *http.Client
	log  logger.Logger
}

// New constructs a legacy client. BaseURL must be non-empty.
func New(cfg Config) *Client {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}
	return &Client{
		base: cfg.BaseURL,
		hc:   &http.Client{Timeout: cfg.Timeout},
		log:  *logger.Named("legacy"),
	}
}

// searchWire is the legacy response body
type searchWire struct {
	Items []domain.Listing `json:"items"`
	Total int              `json:"total"`
}

// Search proxies a filter set upstream using the transport field naming
// (meters-denominated maxDistance, never the canonical distanceMi).
func (c *Client) Search(ctx context.Context, f filters.Filter) (domain.SearchResult, error) {
	var zero domain.SearchResult

	u := c.base + "/listings?" + filters.TransportValues(f).Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return zero, perr.Wrap(err, perr.ErrorCodeUpstream, "legacy request")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.hc.Do(req)
	if err != nil {
		return zero, perr.Wrap(err, perr.ErrorCodeUpstream, "legacy search")
	}
	defer func() {
		if cerr := resp.Body.Close(); cerr != nil {
			c.log.Warn().Err(cerr).Msg("close legacy response body")
		}
	}()

	if resp.StatusCode != http.StatusOK {
		// drain so the connection can be reused
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		return zero, perr.Upstreamf("legacy search returned %d", resp.StatusCode)
	}

	var wire searchWire
	if err := json.NewDecoder(resp.Body).Decode(&wire); err != nil {
		return zero, perr.Wrap(err, perr.ErrorCodeUpstream, "legacy response decode")
	}

	return domain.SearchResult{Items: wire.Items, Total: wire.Total}, nil
}
