package module

import (
	"testing"

	phttp "luach/internal/platform/net/http"
	"luach/internal/platform/testkit"
)

type reader interface{ Read() string }

type readerImpl struct{}

func (readerImpl) Read() string { return "ok" }

type stubModule struct {
	name  string
	ports any
}

func (m stubModule) MountRoutes(phttp.Router) {}
func (m stubModule) Ports() any               { return m.ports }
func (m stubModule) Name() string             { return m.name }

func TestPortsOfDirect(t *testing.T) {
	m := stubModule{name: "options", ports: readerImpl{}}
	got, ok := PortsOf[reader](m)
	if !ok || got.Read() != "ok" {
		t.Fatalf("ok=%v got=%v", ok, got)
	}
}

func TestPortsOfStructField(t *testing.T) {
	type bundle struct {
		R reader
	}
	m := stubModule{name: "options", ports: bundle{R: readerImpl{}}}
	got, ok := PortsOf[reader](m)
	if !ok || got.Read() != "ok" {
		t.Fatalf("ok=%v got=%v", ok, got)
	}
}

func TestMustPortsOfPanicsOnMiss(t *testing.T) {
	m := stubModule{name: "options"}
	testkit.MustPanic(t, func() {
		MustPortsOf[reader](m)
	})
}
