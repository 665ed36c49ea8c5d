package modkit

import (
	"net/http"
	"testing"

	"luach/internal/modkit/httpkit"
)

func TestBuildDefaults(t *testing.T) {
	b := Build()
	if b.Subrouter == nil || b.Register == nil {
		t.Fatal("expected non-nil hooks")
	}
	// defaults are pass-through and no-op
	var r httpkit.Router
	if got := b.Subrouter(r); got != r {
		t.Fatal("default subrouter should be identity")
	}
	b.Register(r)
}

func TestBuildAppliesOptions(t *testing.T) {
	mw := func(next http.Handler) http.Handler { return next }
	b := Build(
		WithName("listings"),
		WithPrefix("/listings"),
		WithMiddlewares(mw),
		WithPorts("ports"),
	)
	if b.Name != "listings" || b.Prefix != "/listings" {
		t.Fatalf("unexpected built: %+v", b)
	}
	if len(b.Mw) != 1 {
		t.Fatalf("mw len = %d", len(b.Mw))
	}
	if b.Ports != "ports" {
		t.Fatalf("ports = %v", b.Ports)
	}
}
