// Package module implements the insights service module
package module

import (
	"luach/internal/modkit"
	"luach/internal/modkit/httpkit"
	"luach/internal/services/insights/domain"
	"luach/internal/services/insights/repo"
	"luach/internal/services/insights/service"
)

// Ports exposed by the insights module
type Ports struct {
	Recorder domain.RecorderPort
}

// Module implements the insights service module.
// It owns the Recorder port and mounts no routes of its own.
type Module struct {
	deps  modkit.Deps
	ports Ports
}

// New constructs a new insights module
func New(deps modkit.Deps) *Module {
	svc := service.New(repo.NewCH(deps.CH))

	m := &Module{deps: deps}
	m.ports = Ports{Recorder: svc}
	return m
}

// Name satisfies modkit.Module
func (m *Module) Name() string { return "insights" }

// Ports satisfies modkit.Module
func (m *Module) Ports() any { return m.ports }

// MountRoutes satisfies modkit.Module
func (m *Module) MountRoutes(r httpkit.Router) {}
