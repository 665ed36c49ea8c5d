package bind

import (
	"net/http/httptest"
	"strings"
	"testing"

	perr "luach/internal/platform/errors"
)

type payload struct {
	Name  string `json:"name" validate:"required,min=2"`
	Limit int    `json:"limit" validate:"omitempty,min=1,max=100"`
}

func TestParseJSONHappyPath(t *testing.T) {
	r := httptest.NewRequest("POST", "/x", strings.NewReader(`{"name":"golem","limit":10}`))
	got, err := ParseJSON[payload](r)
	if err != nil {
		t.Fatalf("ParseJSON: %v", err)
	}
	if got.Name != "golem" || got.Limit != 10 {
		t.Fatalf("ParseJSON = %+v", got)
	}
}

func TestParseJSONRejectsUnknownFields(t *testing.T) {
	r := httptest.NewRequest("POST", "/x", strings.NewReader(`{"name":"ok","bogus":1}`))
	if _, err := ParseJSON[payload](r); !perr.IsCode(err, perr.ErrorCodeJSON) {
		t.Fatalf("expected JSON error, got %v", err)
	}
}

func TestParseJSONValidationUsesJSONTagNames(t *testing.T) {
	r := httptest.NewRequest("POST", "/x", strings.NewReader(`{"name":"ok","limit":9000}`))
	_, err := ParseJSON[payload](r)
	if !perr.IsCode(err, perr.ErrorCodeValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if e, ok := perr.As(err); !ok || e.Field() != "limit" {
		t.Fatalf("expected field 'limit' on error, got %v", err)
	}
	if !strings.Contains(err.Error(), "limit") {
		t.Fatalf("message should name the json field: %q", err.Error())
	}
}

func TestParseJSONEmptyBody(t *testing.T) {
	r := httptest.NewRequest("POST", "/x", strings.NewReader(""))
	if _, err := ParseJSON[payload](r); !perr.IsCode(err, perr.ErrorCodeJSON) {
		t.Fatalf("POST with empty body should fail, got %v", err)
	}

	g := httptest.NewRequest("GET", "/x", strings.NewReader(""))
	if _, err := ParseJSON[payload](g); err != nil {
		t.Fatalf("GET with empty body should be tolerated, got %v", err)
	}
}

func TestParseJSONTrailingData(t *testing.T) {
	r := httptest.NewRequest("POST", "/x", strings.NewReader(`{"name":"ok"}{"name":"again"}`))
	if _, err := ParseJSON[payload](r); !perr.IsCode(err, perr.ErrorCodeJSON) {
		t.Fatalf("expected trailing-data JSON error, got %v", err)
	}
}
