package assessment

import "testing"

func TestResolveDetailedWinsOverLegacy(t *testing.T) {
	// Q1 "a" exists in both tables; the detailed rewrite must shadow the
	// legacy entry.
	in := NewResolver().Resolve(1, "a")
	if in == nil {
		t.Fatal("expected insight for Q1/a")
	}
	if in.Title != "Living On Purpose" {
		t.Fatalf("got title %q, want detailed-table entry", in.Title)
	}
	if in.RootCause == "" {
		t.Fatal("detailed entry should carry extended fields")
	}
}

func TestResolveLegacyFallback(t *testing.T) {
	in := NewResolver().Resolve(1, "f")
	if in == nil {
		t.Fatal("expected legacy insight for Q1/f")
	}
	if in.Title != "Purpose Fog" {
		t.Fatalf("got title %q, want legacy entry", in.Title)
	}
	// Legacy records never carry the extended narrative fields.
	if in.RootCause != "" || in.GrowthBlocker != "" || in.HiddenStrength != "" || in.HiddenDesire != "" {
		t.Fatal("legacy entry leaked extended fields")
	}
	if in.Recommendation == "" {
		t.Fatal("legacy entry missing recommendation")
	}
}

func TestResolveMissIsNil(t *testing.T) {
	r := NewResolver()
	if in := r.Resolve(1, "z"); in != nil {
		t.Fatalf("expected nil for unknown option, got %+v", in)
	}
	if in := r.Resolve(42, "a"); in != nil {
		t.Fatalf("expected nil for unknown question, got %+v", in)
	}
}

// Every scoreable (question, option) pair should resolve through one of the
// two tiers, so narrative coverage matches score coverage.
func TestResolveCoversAllScoredOptions(t *testing.T) {
	r := NewResolver()
	for _, q := range Questions() {
		for letter := range defaultScale {
			if r.Resolve(q.ID, letter) == nil {
				t.Errorf("no insight for question %d option %q", q.ID, letter)
			}
		}
	}
}

func TestResolverCustomSources(t *testing.T) {
	custom := tableSource{
		{QuestionID: 1, Option: "a"}: {Title: "override"},
	}
	r := NewResolver(custom)
	if in := r.Resolve(1, "a"); in == nil || in.Title != "override" {
		t.Fatalf("custom source not consulted: %+v", in)
	}
	// Built-in tables must not be reachable through a custom chain.
	if in := r.Resolve(1, "b"); in != nil {
		t.Fatalf("expected miss outside custom source, got %+v", in)
	}
}
