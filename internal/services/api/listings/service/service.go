// Package service provides the listings search implementation
package service

import (
	"context"
	"time"

	"luach/internal/modkit/repokit"
	perr "luach/internal/platform/errors"
	"luach/internal/platform/logger"

	"luach/internal/core/textfold"
	"luach/internal/filters"
	dom "luach/internal/services/api/listings/domain"
	"luach/internal/services/api/listings/repo"
	insightsdom "luach/internal/services/insights/domain"
)

// Config for the listings service
type Config struct {
	DefaultPageSize int
	MaxPageSize     int

	// MarketplaceCategory routes to the legacy proxy when set and a legacy
	// searcher is configured
	MarketplaceCategory string
}

// Service implements domain.SearchPort over the pg repo, with an optional
// legacy proxy for the marketplace category and fire-and-forget analytics.
type Service struct {
	db       repokit.TxRunner
	binder   repokit.Binder[repo.Repo]
	folder   *textfold.Folder
	recorder insightsdom.RecorderPort
	legacy   dom.SearchPort
	cfg      Config
	log      logger.Logger
}

// New constructs a listings service. recorder and legacy may be nil.
func New(
	db repokit.TxRunner,
	binder repokit.Binder[repo.Repo],
	recorder insightsdom.RecorderPort,
	legacy dom.SearchPort,
	cfg Config,
) *Service {
	if cfg.DefaultPageSize <= 0 {
		cfg.DefaultPageSize = 20
	}
	if cfg.MaxPageSize <= 0 || cfg.MaxPageSize > filters.PageSizeMax {
		cfg.MaxPageSize = filters.PageSizeMax
	}
	if cfg.MarketplaceCategory == "" {
		cfg.MarketplaceCategory = "marketplace"
	}
	return &Service{
		db:       db,
		binder:   binder,
		folder:   textfold.New(),
		recorder: recorder,
		legacy:   legacy,
		cfg:      cfg,
		log:      *logger.Named("listings"),
	}
}

// Search implements domain.SearchPort
func (s *Service) Search(ctx context.Context, f filters.Filter) (dom.SearchResult, error) {
	if f.Page <= 0 {
		f.Page = 1
	}
	if f.PageSize <= 0 {
		f.PageSize = s.cfg.DefaultPageSize
	}
	if f.PageSize > s.cfg.MaxPageSize {
		f.PageSize = s.cfg.MaxPageSize
	}
	// distance needs an origin
	if f.DistanceMi != nil && (f.Lat == nil || f.Lng == nil) {
		return dom.SearchResult{}, perr.Validationf("distance filter requires lat and lng")
	}

	res, source, err := s.execute(ctx, f)
	if err != nil {
		return dom.SearchResult{}, err
	}
	res.Page = f.Page
	res.PageSize = f.PageSize

	s.record(ctx, f, res.Total, source)
	return res, nil
}

func (s *Service) execute(ctx context.Context, f filters.Filter) (dom.SearchResult, string, error) {
	if s.legacy != nil && f.Category == s.cfg.MarketplaceCategory {
		res, err := s.legacy.Search(ctx, f)
		return res, "legacy-proxy", err
	}

	folded := s.folder.Fold(f.Query)
	limit := f.PageSize
	offset := (f.Page - 1) * f.PageSize

	items, total, err := repokit.MustBind(s.binder, s.db).Search(ctx, f, folded, limit, offset)
	if err != nil {
		return dom.SearchResult{}, "", err
	}
	return dom.SearchResult{Items: items, Total: total}, "api", nil
}

// record ships the search to analytics without blocking or failing the
// request. The event context is detached from the request so a client
// disconnect does not cancel the write.
func (s *Service) record(ctx context.Context, f filters.Filter, total int, source string) {
	if s.recorder == nil {
		return
	}
	ev := insightsdom.SearchEvent{
		Category:      f.Category,
		Query:         s.folder.Fold(f.Query),
		Dietary:       f.Dietary,
		DistanceMi:    f.DistanceMi,
		OpenNow:       f.OpenNow != nil && *f.OpenNow,
		ActiveFilters: f.ActiveCount(),
		ResultTotal:   total,
		Source:        source,
	}
	go func() {
		wctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 5*time.Second)
		defer cancel()
		if err := s.recorder.Record(wctx, ev); err != nil {
			s.log.Warn().Err(err).Msg("search event write failed")
		}
	}()
}
