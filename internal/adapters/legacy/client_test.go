package legacy

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	perr "luach/internal/platform/errors"

	"luach/internal/filters"
)

func TestSearchUsesTransportFormat(t *testing.T) {
	var gotQuery map[string][]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"items":[{"id":"1","name":"Main Street Grill","category":"eateries"}],"total":1}`))
	}))
	defer srv.Close()

	c := New(Config{BaseURL: srv.URL})

	ten := 10.0
	res, err := c.Search(context.Background(), filters.Filter{
		Query:      "grill",
		Category:   "marketplace",
		DistanceMi: &ten,
	})
	if err != nil {
		t.Fatal(err)
	}
	if res.Total != 1 || len(res.Items) != 1 || res.Items[0].Name != "Main Street Grill" {
		t.Fatalf("result = %+v", res)
	}

	// legacy wire format: meters field present, canonical field absent
	if got := gotQuery["maxDistance"]; len(got) != 1 || got[0] != "16093" {
		t.Fatalf("maxDistance = %v", got)
	}
	if _, ok := gotQuery["distanceMi"]; ok {
		t.Fatal("canonical distance key leaked upstream")
	}
	if got := gotQuery["q"]; len(got) != 1 || got[0] != "grill" {
		t.Fatalf("q = %v", got)
	}
}

func TestSearchUpstreamFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "nope", http.StatusBadGateway)
	}))
	defer srv.Close()

	c := New(Config{BaseURL: srv.URL})
	_, err := c.Search(context.Background(), filters.Filter{Query: "grill"})
	if err == nil {
		t.Fatal("expected error")
	}
	if !perr.IsCode(err, perr.ErrorCodeUpstream) {
		t.Fatalf("code = %v", perr.CodeOf(err))
	}
}
