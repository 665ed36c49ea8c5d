// Package api provides the HTTP API for the application
package api

import (
	"luach/internal/platform/config"
	"luach/internal/platform/logger"
	phttp "luach/internal/platform/net/http"
	"luach/internal/platform/store"

	"luach/internal/modkit"
	"luach/internal/modkit/httpkit"
	"luach/internal/modkit/module"

	listingsmod "luach/internal/services/api/listings/module"
	metamod "luach/internal/services/api/meta/module"
	optionsmod "luach/internal/services/api/options/module"

	// Insights module owns the search event Recorder port
	insightsmod "luach/internal/services/insights/module"
)

// Options are the API options
type Options struct {
	Config         config.Conf
	Store          *store.Store
	Logger         *logger.Logger
	EnableSwagger  bool
	EnableProfiler bool
}

// Mount mounts the API service onto the given router
func Mount(r phttp.Router, opt Options) {
	// shared deps for modules
	deps := modkit.Deps{
		Cfg: opt.Config,
		PG:  opt.Store.PG,
		CH:  opt.Store.CH,
	}

	// Construct the insights module first and extract its Recorder port
	insights := insightsmod.New(deps)
	recorder := module.MustPortsOf[insightsmod.Ports](insights).Recorder

	// Inject the Recorder into the listings module
	listings := listingsmod.New(
		deps,
		modkit.WithPorts(listingsmod.Injected{
			Recorder: recorder,
		}),
	)

	mods := []module.Module{
		metamod.New(deps),
		optionsmod.New(deps),
		insights, // include insights so its ports are registered
		listings, // API module that depends on the insights Recorder
	}

	// versioned API with a common middleware stack
	httpkit.MountAPIV1(r, httpkit.CommonStack(), func(api httpkit.Router) {
		phttp.MountSwagger(r, opt.EnableSwagger)
		phttp.MountProfiler(r, "/debug", opt.EnableProfiler)

		for _, m := range mods {
			// register each module's ports under its own name (for cross-module lookups)
			module.Register(m.Name(), m.Ports())

			// mount module routes under its Prefix()
			m.MountRoutes(api)
		}
	})
}
