package service

import (
	"context"
	"testing"
	"time"

	"luach/internal/platform/store"
	dom "luach/internal/services/insights/domain"
	"luach/internal/services/insights/repo"
)

// fakeCH captures inserts through the store seam
type fakeCH struct {
	table   string
	columns []string
	rows    [][]any
}

func (f *fakeCH) Insert(_ context.Context, table string, columns []string, rows [][]any) error {
	f.table = table
	f.columns = columns
	f.rows = append(f.rows, rows...)
	return nil
}

func (f *fakeCH) Query(context.Context, string, ...any) (store.Rows, error) { return nil, nil }
func (f *fakeCH) Close() error                                             { return nil }

func TestRecordFillsIdentity(t *testing.T) {
	ch := &fakeCH{}
	svc := New(repo.NewCH(ch))

	err := svc.Record(context.Background(), dom.SearchEvent{
		Category: "eateries",
		Query:    "kosher pizza",
		Source:   "api",
	})
	if err != nil {
		t.Fatal(err)
	}

	if ch.table != "search_events" {
		t.Fatalf("table = %q", ch.table)
	}
	if len(ch.rows) != 1 {
		t.Fatalf("rows = %d", len(ch.rows))
	}
	row := ch.rows[0]
	if row[0].(string) == "" {
		t.Fatal("id not filled")
	}
	if row[1].(time.Time).IsZero() {
		t.Fatal("timestamp not filled")
	}
	if row[2].(string) != "eateries" || row[3].(string) != "kosher pizza" {
		t.Fatalf("row = %v", row)
	}
}

func TestWriteBatchPreservesSetIdentity(t *testing.T) {
	ch := &fakeCH{}
	svc := New(repo.NewCH(ch))

	at := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	err := svc.WriteBatch(context.Background(), []dom.SearchEvent{
		{ID: "fixed-id", At: at, Category: "shuls"},
	})
	if err != nil {
		t.Fatal(err)
	}
	row := ch.rows[0]
	if row[0].(string) != "fixed-id" {
		t.Fatalf("id = %v", row[0])
	}
	if !row[1].(time.Time).Equal(at) {
		t.Fatalf("at = %v", row[1])
	}
}

func TestWriteBatchEmptyIsNoop(t *testing.T) {
	ch := &fakeCH{}
	svc := New(repo.NewCH(ch))
	if err := svc.WriteBatch(context.Background(), nil); err != nil {
		t.Fatal(err)
	}
	if len(ch.rows) != 0 || ch.table != "" {
		t.Fatal("unexpected insert")
	}
}
