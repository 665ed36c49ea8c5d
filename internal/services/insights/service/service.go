// Package service provides the insights service implementation
package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	dom "luach/internal/services/insights/domain"
	"luach/internal/services/insights/repo"
)

// Service implements domain.RecorderPort against the CH repo
type Service struct {
	Storage *repo.CH
}

// New constructs a new insights service with a required CH repo
func New(storage *repo.CH) *Service {
	return &Service{Storage: storage}
}

// Record fills in event identity if missing and writes a single event
func (s *Service) Record(ctx context.Context, ev dom.SearchEvent) error {
	if ev.ID == "" {
		ev.ID = uuid.NewString()
	}
	if ev.At.IsZero() {
		ev.At = time.Now().UTC()
	}
	return s.Storage.WriteBatch(ctx, []dom.SearchEvent{ev})
}

// WriteBatch implements domain.RecorderPort
func (s *Service) WriteBatch(ctx context.Context, evs []dom.SearchEvent) error {
	for i := range evs {
		if evs[i].ID == "" {
			evs[i].ID = uuid.NewString()
		}
		if evs[i].At.IsZero() {
			evs[i].At = time.Now().UTC()
		}
	}
	return s.Storage.WriteBatch(ctx, evs)
}
