package ch

import "testing"

func TestBuildClientInfoDefaultsApp(t *testing.T) {
	ci := BuildClientInfo("", "api")
	if len(ci.Products) == 0 {
		t.Fatal("expected products")
	}
	if ci.Products[0].Name != "luach" {
		t.Fatalf("app product = %q", ci.Products[0].Name)
	}
	foundRole := false
	for _, p := range ci.Products {
		if p.Name == "role" && p.Version == "api" {
			foundRole = true
		}
	}
	if !foundRole {
		t.Fatal("role product missing")
	}
}

func TestOpenRejectsEmptyDSN(t *testing.T) {
	if _, err := Open(t.Context(), Config{}); err == nil {
		t.Fatal("expected error for empty DSN")
	}
}
