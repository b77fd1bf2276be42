package assessment

import "testing"

func TestRegistryOrderedAndUnique(t *testing.T) {
	qs := Questions()
	if len(qs) == 0 {
		t.Fatal("empty registry")
	}
	seen := map[int]bool{}
	for i, q := range qs {
		if q.ID != i+1 {
			t.Fatalf("question at index %d has ID %d, want %d", i, q.ID, i+1)
		}
		if seen[q.ID] {
			t.Fatalf("duplicate question ID %d", q.ID)
		}
		seen[q.ID] = true
		if q.Theme == "" || q.IndexName == "" || q.ScoreType == "" || q.Measure == "" {
			t.Fatalf("question %d has empty metadata", q.ID)
		}
	}
}

func TestLookupQuestion(t *testing.T) {
	q, ok := LookupQuestion(1)
	if !ok {
		t.Fatal("question 1 not found")
	}
	if q.ID != 1 {
		t.Fatalf("got ID %d, want 1", q.ID)
	}
	if _, ok := LookupQuestion(999); ok {
		t.Fatal("expected miss for unregistered ID")
	}
}

func TestQuestionsReturnsCopy(t *testing.T) {
	qs := Questions()
	qs[0].Theme = "mutated"
	if fresh := Questions(); fresh[0].Theme == "mutated" {
		t.Fatal("registry leaked through Questions()")
	}
}

// Every key in the insight tables must refer to a registered question.
func TestInsightKeysRegistered(t *testing.T) {
	for key := range detailedInsights {
		if _, ok := LookupQuestion(key.QuestionID); !ok {
			t.Errorf("detailed insight key %v has no registry entry", key)
		}
	}
	for key := range legacyInsights {
		if _, ok := LookupQuestion(key.QuestionID); !ok {
			t.Errorf("legacy insight key %v has no registry entry", key)
		}
	}
}
