// Package module implements the filter options API module
package module

import (
	"net/http"

	modkit "luach/internal/modkit"
	"luach/internal/modkit/httpkit"
	str "luach/internal/platform/strings"

	"luach/internal/services/api/options/domain"
	optshttp "luach/internal/services/api/options/http"
	"luach/internal/services/api/options/repo"
	"luach/internal/services/api/options/service"
)

// Ports exposed by the options module
type Ports struct {
	Options domain.OptionsPort
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

// New constructs an options module
func New(deps modkit.Deps, opts ...modkit.Option) *Module {
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("options"),
		modkit.WithPrefix("/filters"),
	}, opts...)...)

	o := FromConfig(deps.Cfg)

	svc := service.New(deps.PG, repo.NewPG(), service.Config{TTL: o.CacheTTL})

	m := &Module{
		deps:      deps,
		name:      b.Name,
		prefix:    b.Prefix,
		mws:       b.Mw,
		subrouter: b.Subrouter,
		ports:     Ports{Options: svc},
	}

	external := b.Register
	m.register = func(r httpkit.Router) {
		optshttp.Register(r, optshttp.Deps{Options: svc})
		if external != nil {
			external(r)
		}
	}

	return m
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
func (m *Module) Name() string { return str.MustString(m.name, "options") }

// Ports implements the modkit.Module interface
func (m *Module) Ports() any { return m.ports }
