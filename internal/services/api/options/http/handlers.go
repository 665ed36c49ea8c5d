// Package http provides http transport for filter options
package http

import (
	stdhttp "net/http"

	"luach/internal/modkit/httpkit"

	"luach/internal/services/api/options/domain"
)

// Deps are the handler dependencies
type Deps struct {
	Options domain.OptionsPort
}

// Register mounts filter option endpoints on the given router
func Register(r httpkit.Router, d Deps) {
	h := &handlers{deps: d}
	r.Get("/options", httpkit.Handle(h.options))
}

type handlers struct{ deps Deps }

func (h *handlers) options(r *stdhttp.Request) httpkit.Response {
	opts, err := h.deps.Options.Options(r.Context())
	if err != nil {
		return httpkit.Error(err)
	}
	return httpkit.OK(opts)
}
