// Package http provides http transport for listings search
package http

import (
	stdhttp "net/http"

	"luach/internal/modkit/httpkit"
	perr "luach/internal/platform/errors"

	"luach/internal/filters"
	"luach/internal/services/api/listings/domain"
)

// Deps are the handler dependencies
type Deps struct {
	Search domain.SearchPort

	// Strict turns distance conflicts into request errors instead of
	// precedence resolution. Diagnostic use only.
	Strict bool
}

// Register mounts listings endpoints on the given router
func Register(r httpkit.Router, d Deps) {
	h := &handlers{deps: d}
	r.Get("/", httpkit.Handle(h.search))
}

type handlers struct{ deps Deps }

// search binds the raw query string through the filters pipeline, runs the
// search, and echoes the canonical query string so clients can sync the
// address bar.
func (h *handlers) search(r *stdhttp.Request) httpkit.Response {
	raw := filters.Decode(r.URL.Query())
	raw, dropped := filters.Sanitize(raw)

	// strict runs on the sanitized shape so a value that bounds checking
	// already dropped cannot count toward a conflict
	if h.deps.Strict {
		if err := filters.ValidateDistance(raw); err != nil {
			return httpkit.Error(perr.Wrap(err, perr.ErrorCodeFilterConflict, err.Error()))
		}
	}

	f := filters.SafeAssemble(raw)

	res, err := h.deps.Search.Search(r.Context(), f)
	if err != nil {
		return httpkit.Error(err)
	}

	items := res.Items
	if items == nil {
		items = []domain.Listing{}
	}

	return httpkit.OK(domain.SearchResponse{
		Items: items,
		Page: domain.PageInfo{
			Total:    res.Total,
			Page:     res.Page,
			PageSize: res.PageSize,
		},
		CanonicalQuery: filters.EncodeQuery(f),
		Dropped:        dropped,
	})
}
