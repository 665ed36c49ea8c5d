package textfold

import "testing"

func TestFold(t *testing.T) {
	f := New()

	cases := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"lowercases", "Kosher PIZZA", "kosher pizza"},
		{"collapses whitespace", "  kosher \t pizza \n bakery  ", "kosher pizza bakery"},
		{"strips accents precomposed", "café", "cafe"},
		{"strips accents decomposed", "café", "cafe"},
		{"strips tilde", "jalapeño grill", "jalapeno grill"},
		{"fullwidth to ascii", "ｋｏｓｈｅｒ", "kosher"},
		{"zero width removed", "piz​za", "pizza"},
		{"compat forms", "① bagel", "1 bagel"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := f.Fold(tc.in); got != tc.want {
				t.Fatalf("Fold(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestFoldIsIdempotent(t *testing.T) {
	f := New()
	in := "  Café  du   Parc "
	once := f.Fold(in)
	if twice := f.Fold(once); twice != once {
		t.Fatalf("not idempotent: %q vs %q", once, twice)
	}
}

func TestFoldConcurrent(t *testing.T) {
	f := New()
	done := make(chan struct{})
	for i := 0; i < 8; i++ {
		go func() {
			defer func() { done <- struct{}{} }()
			for j := 0; j < 100; j++ {
				if got := f.Fold("Kosher  Café"); got != "kosher cafe" {
					t.Errorf("Fold = %q", got)
					return
				}
			}
		}()
	}
	for i := 0; i < 8; i++ {
		<-done
	}
}
