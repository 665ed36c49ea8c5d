package store

import (
	"context"
	"errors"
	"testing"
)

// pingableTx is a TxRunner that also reports readiness
type pingableTx struct {
	fakeQuerier
	pingErr error
}

func (p *pingableTx) Tx(_ context.Context, fn func(q RowQuerier) error) error {
	return fn(p)
}

func (p *pingableTx) Ping(context.Context) error { return p.pingErr }

func TestGuardNilStore(t *testing.T) {
	var s *Store
	if err := s.Guard(context.Background()); err == nil {
		t.Fatal("expected error for nil store")
	}
}

func TestGuardEmptyStoreIsHealthy(t *testing.T) {
	s := &Store{}
	if err := s.Guard(context.Background()); err != nil {
		t.Fatalf("guard: %v", err)
	}
}

func TestGuardReportsPGFailure(t *testing.T) {
	want := errors.New("connection refused")
	s := &Store{PG: &pingableTx{pingErr: want}}
	err := s.Guard(context.Background())
	if err == nil || !errors.Is(err, want) {
		t.Fatalf("guard err = %v", err)
	}
}

func TestGuardHealthyPG(t *testing.T) {
	s := &Store{PG: &pingableTx{}}
	if err := s.Guard(context.Background()); err != nil {
		t.Fatalf("guard: %v", err)
	}
}
