package http

import (
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"
)

// skeleton spec served when no generated docs artifact is linked in
const docSkeleton = `{"openapi":"3.0.3","info":{"title":"luach API","version":"0.0.0"},"paths":{}}`

// MountSwagger mounts the swagger UI under /api/docs when enabled
func MountSwagger(r Router, enabled bool) {
	if !enabled {
		return
	}
	r.Get("/api/docs", func(w http.ResponseWriter, req *http.Request) {
		http.Redirect(w, req, "/api/docs/", http.StatusPermanentRedirect)
	})
	r.Get("/api/docs/doc.json", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.Header().Set("Cache-Control", "no-store")
		_, _ = w.Write([]byte(docSkeleton))
	})
	r.Handle("/api/docs/*", httpSwagger.Handler(
		httpSwagger.InstanceName("api"),
		httpSwagger.URL("/api/docs/doc.json"),
	))
}
