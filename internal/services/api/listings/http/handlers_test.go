package http

import (
	"context"
	"encoding/json"
	stdhttp "net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/go-chi/chi/v5"

	perr "luach/internal/platform/errors"
	phttp "luach/internal/platform/net/http"

	"luach/internal/filters"
	"luach/internal/services/api/listings/domain"
)

type stubSearch struct {
	got   filters.Filter
	res   domain.SearchResult
	err   error
	calls int
}

func (s *stubSearch) Search(_ context.Context, f filters.Filter) (domain.SearchResult, error) {
	s.got = f
	s.calls++
	return s.res, s.err
}

type searchWire struct {
	StatusCode int            `json:"status_code"`
	Code       perr.ErrorCode `json:"code"`
	Error      string         `json:"error"`
	Data       struct {
		Items []domain.Listing `json:"items"`
		Page  domain.PageInfo  `json:"page"`
		Canon string           `json:"canonical_query"`
		Drop  []struct {
			Key     string `json:"key"`
			Message string `json:"message"`
		} `json:"dropped"`
	} `json:"data"`
}

func serve(t *testing.T, d Deps, rawQuery string) (searchWire, int) {
	t.Helper()

	cr := chi.NewRouter()
	Register(phttp.AdaptChi(cr), d)

	req := httptest.NewRequest(stdhttp.MethodGet, "/?"+rawQuery, nil)
	rec := httptest.NewRecorder()
	cr.ServeHTTP(rec, req)

	var w searchWire
	if err := json.NewDecoder(rec.Body).Decode(&w); err != nil {
		t.Fatalf("decode: %v (body %s)", err, rec.Body.String())
	}
	return w, rec.Code
}

func TestSearchEchoesCanonicalQuery(t *testing.T) {
	stub := &stubSearch{res: domain.SearchResult{
		Items:    []domain.Listing{{ID: "l1", Name: "Glatt Grill"}},
		Total:    1,
		Page:     1,
		PageSize: 20,
	}}

	// radius is a legacy alias; the canonical echo must use distanceMi
	w, code := serve(t, Deps{Search: stub}, "q=grill&radius=5&openNow=1")
	if code != stdhttp.StatusOK {
		t.Fatalf("status %d", code)
	}

	canon, err := url.ParseQuery(w.Data.Canon)
	if err != nil {
		t.Fatal(err)
	}
	if canon.Get("distanceMi") != "5" || canon.Has("radius") {
		t.Fatalf("canonical = %q", w.Data.Canon)
	}
	if canon.Get("q") != "grill" || canon.Get("openNow") != "1" {
		t.Fatalf("canonical = %q", w.Data.Canon)
	}
	if stub.got.DistanceMi == nil || *stub.got.DistanceMi != 5 {
		t.Fatalf("filter = %+v", stub.got)
	}
	if w.Data.Page.Total != 1 || len(w.Data.Items) != 1 {
		t.Fatalf("data = %+v", w.Data)
	}
}

func TestSearchReportsDroppedFields(t *testing.T) {
	stub := &stubSearch{}

	w, code := serve(t, Deps{Search: stub}, "rating=9&q=pizza")
	if code != stdhttp.StatusOK {
		t.Fatalf("status %d", code)
	}
	if len(w.Data.Drop) != 1 || w.Data.Drop[0].Key != "rating" {
		t.Fatalf("dropped = %+v", w.Data.Drop)
	}
	if stub.got.Rating != nil {
		t.Fatal("rating should not reach the service")
	}
	if stub.got.Query != "pizza" {
		t.Fatalf("query = %q", stub.got.Query)
	}
}

func TestSearchLenientResolvesDistanceConflict(t *testing.T) {
	stub := &stubSearch{}

	_, code := serve(t, Deps{Search: stub}, "distanceMi=10&radius=25")
	if code != stdhttp.StatusOK {
		t.Fatalf("status %d", code)
	}
	if stub.got.DistanceMi == nil || *stub.got.DistanceMi != 10 {
		t.Fatalf("filter = %+v", stub.got)
	}
}

func TestSearchStrictRejectsDistanceConflict(t *testing.T) {
	stub := &stubSearch{}

	w, code := serve(t, Deps{Search: stub, Strict: true}, "distanceMi=10&radius=25")
	if code != stdhttp.StatusBadRequest {
		t.Fatalf("status %d", code)
	}
	if w.Code != perr.ErrorCodeFilterConflict {
		t.Fatalf("code = %d", w.Code)
	}
	if stub.calls != 0 {
		t.Fatal("search should not run on conflict")
	}
}

func TestSearchStrictIgnoresDroppedDistance(t *testing.T) {
	stub := &stubSearch{}

	// radius is out of bounds and dropped before the conflict check runs
	w, code := serve(t, Deps{Search: stub, Strict: true}, "distanceMi=10&radius=999")
	if code != stdhttp.StatusOK {
		t.Fatalf("status %d", code)
	}
	if len(w.Data.Drop) != 1 || w.Data.Drop[0].Key != "radius" {
		t.Fatalf("dropped = %+v", w.Data.Drop)
	}
	if stub.got.DistanceMi == nil || *stub.got.DistanceMi != 10 {
		t.Fatalf("filter = %+v", stub.got)
	}
}

func TestSearchReturnsEmptyItemsArray(t *testing.T) {
	stub := &stubSearch{res: domain.SearchResult{Page: 1, PageSize: 20}}

	w, code := serve(t, Deps{Search: stub}, "q=nothing")
	if code != stdhttp.StatusOK {
		t.Fatalf("status %d", code)
	}
	if w.Data.Items == nil {
		t.Fatal("items must be [] not null")
	}
}
