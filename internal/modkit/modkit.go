package modkit

import (
	phttp "luach/internal/platform/net/http"
)

// Module is the common surface for API modules that can mount routes and expose ports.
// Keep this tiny so modules stay decoupled.
type Module interface {
	// MountRoutes mounts HTTP routes under the provided router seam
	MountRoutes(r phttp.Router)
	// Ports returns a module specific port set interface for cross wiring
	Ports() any

	// Name returns the module name
	Name() string
}

// Builder constructs a Module from shared deps and options
type Builder func(Deps, ...Option) Module
