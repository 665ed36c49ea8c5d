// Package service provides the cached filter options implementation
package service

import (
	"context"
	"sync"
	"time"

	"luach/internal/modkit/repokit"
	"luach/internal/platform/logger"

	dom "luach/internal/services/api/options/domain"
	"luach/internal/services/api/options/repo"
)

// Clock returns the current time. Injectable for tests.
type Clock func() time.Time

// Config for the options service
type Config struct {
	// TTL bounds how long a cached snapshot is served before the next
	// request triggers a refresh
	TTL time.Duration

	Clock Clock
}

// Service implements domain.OptionsPort with a TTL cache in front of the
// repo. Refresh is single-flight: the mutex is held across the query, so
// concurrent callers of an expired cache wait for one refresh instead of
// stampeding the database.
type Service struct {
	db     repokit.TxRunner
	binder repokit.Binder[repo.Repo]
	ttl    time.Duration
	now    Clock
	log    logger.Logger

	mu      sync.Mutex
	cached  dom.FilterOptions
	expires time.Time
	primed  bool
}

// New constructs an options service
func New(db repokit.TxRunner, binder repokit.Binder[repo.Repo], cfg Config) *Service {
	if cfg.TTL <= 0 {
		cfg.TTL = 5 * time.Minute
	}
	if cfg.Clock == nil {
		cfg.Clock = time.Now
	}
	return &Service{
		db:     db,
		binder: binder,
		ttl:    cfg.TTL,
		now:    cfg.Clock,
		log:    *logger.Named("options"),
	}
}

// Options implements domain.OptionsPort
func (s *Service) Options(ctx context.Context) (dom.FilterOptions, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	if s.primed && now.Before(s.expires) {
		return s.cached, nil
	}

	fresh, err := repokit.MustBind(s.binder, s.db).Options(ctx)
	if err != nil {
		// serve a stale snapshot over a hard failure when we have one
		if s.primed {
			s.log.Warn().Err(err).Msg("options refresh failed, serving stale")
			return s.cached, nil
		}
		return dom.FilterOptions{}, err
	}

	s.cached = fresh
	s.expires = now.Add(s.ttl)
	s.primed = true
	return fresh, nil
}

// Invalidate drops the cached snapshot so the next call refreshes
func (s *Service) Invalidate() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.primed = false
}
