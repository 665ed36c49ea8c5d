// Package module implements the listings API module
package module

import (
	"net/http"

	modkit "luach/internal/modkit"
	"luach/internal/modkit/httpkit"
	str "luach/internal/platform/strings"

	"luach/internal/adapters/legacy"
	"luach/internal/services/api/listings/domain"
	listhttp "luach/internal/services/api/listings/http"
	"luach/internal/services/api/listings/repo"
	"luach/internal/services/api/listings/service"
	insightsdom "luach/internal/services/insights/domain"
)

// Ports exposed by the listings module
type Ports struct {
	Search domain.SearchPort
}

// Module implements the modkit.Module interface
type Module struct {
	deps   modkit.Deps
	name   string
	prefix string
	mws    []func(http.Handler) http.Handler
	ports  Ports

	subrouter func(httpkit.Router) httpkit.Router
	register  func(httpkit.Router)
}

// New constructs a listings module. Inject an insights Recorder via
// WithPorts to enable search analytics.
func New(deps modkit.Deps, opts ...modkit.Option) *Module {
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("listings"),
		modkit.WithPrefix("/listings"),
	}, opts...)...)

	o := FromConfig(deps.Cfg)

	var recorder insightsdom.RecorderPort
	if in, ok := b.Ports.(Injected); ok {
		recorder = in.Recorder
	}

	var legacySearch domain.SearchPort
	if o.LegacyBaseURL != "" {
		legacySearch = legacy.New(legacy.Config{BaseURL: o.LegacyBaseURL, Timeout: o.LegacyTimeout})
	}

	svc := service.New(deps.PG, repo.NewPG(), recorder, legacySearch, service.Config{
		DefaultPageSize:     o.DefaultPageSize,
		MaxPageSize:         o.MaxPageSize,
		MarketplaceCategory: o.MarketplaceCategory,
	})

	m := &Module{
		deps:      deps,
		name:      b.Name,
		prefix:    b.Prefix,
		mws:       b.Mw,
		subrouter: b.Subrouter,
		ports:     Ports{Search: svc},
	}

	external := b.Register
	m.register = func(r httpkit.Router) {
		listhttp.Register(r, listhttp.Deps{
			Search: svc,
			Strict: o.StrictDistance,
		})
		if external != nil {
			external(r)
		}
	}

	return m
}

// Injected is the port bundle callers may pass via modkit.WithPorts
type Injected struct {
	Recorder insightsdom.RecorderPort
}

// MountRoutes implements the modkit.Module interface
func (m *Module) MountRoutes(r httpkit.Router) {
	r.Route(m.prefix, func(rr httpkit.Router) {
		for _, mw := range m.mws {
			rr.Use(mw)
		}
		if m.subrouter != nil {
			rr = m.subrouter(rr)
		}
		if m.register != nil {
			m.register(rr)
		}
	})
}

// Name implements the modkit.Module interface
func (m *Module) Name() string { return str.MustString(m.name, "listings") }

// Ports implements the modkit.Module interface
func (m *Module) Ports() any { return m.ports }
