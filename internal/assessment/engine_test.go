package assessment

import (
	"reflect"
	"testing"
	"time"
)

func fixedClock() time.Time {
	return time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
}

func testEngine() *Engine {
	return NewEngine(WithClock(fixedClock))
}

func TestAggregateCardinalityAlwaysFull(t *testing.T) {
	e := testEngine()
	tests := []struct {
		name    string
		answers map[int]string
	}{
		{"empty", map[int]string{}},
		{"nil", nil},
		{"partial", map[int]string{1: "a", 5: "c"}},
		{"full", map[int]string{1: "a", 2: "a", 3: "a", 4: "a", 5: "a", 6: "a", 7: "a", 8: "a", 9: "a", 10: "a"}},
		{"extraneous ids ignored", map[int]string{1: "a", 99: "b"}},
	}
	want := len(Questions())
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := e.Aggregate("as-1", Subject{UserID: "u1"}, tt.answers)
			if len(res.Scores) != want {
				t.Fatalf("got %d dimensions, want %d", len(res.Scores), want)
			}
			seen := map[int]bool{}
			for _, d := range res.Scores {
				if seen[d.QuestionID] {
					t.Fatalf("duplicate dimension for question %d", d.QuestionID)
				}
				seen[d.QuestionID] = true
			}
		})
	}
}

func TestAggregateMatchesDirectLookups(t *testing.T) {
	e := testEngine()
	res := e.Aggregate("as-1", Subject{}, map[int]string{3: "b", 7: "f"})
	for _, d := range res.Scores {
		switch d.QuestionID {
		case 3:
			if d.UserScore != Score(3, "b") {
				t.Errorf("Q3 score %d, want %d", d.UserScore, Score(3, "b"))
			}
			if in := NewResolver().Resolve(3, "b"); d.Title != in.Title || d.Archetype != in.Archetype {
				t.Errorf("Q3 narrative does not match resolver output")
			}
		case 7:
			if d.UserScore != Score(7, "f") {
				t.Errorf("Q7 score %d, want %d", d.UserScore, Score(7, "f"))
			}
		}
	}
}

func TestAggregateAverageOverAnsweredOnly(t *testing.T) {
	e := testEngine()
	// One answered question scoring 100 out of ten registered: the mean is
	// 100, not 10.
	res := e.Aggregate("as-1", Subject{}, map[int]string{1: "a"})
	if res.Summary.AverageScore != 100 {
		t.Fatalf("average %v, want 100", res.Summary.AverageScore)
	}
}

func TestAggregateTwoAnsweredExample(t *testing.T) {
	e := testEngine()
	res := e.Aggregate("as-1", Subject{}, map[int]string{1: "a", 2: "a"})

	var scored, placeholders int
	for _, d := range res.Scores {
		if d.Answered() {
			scored++
			if d.UserScore != 100 {
				t.Errorf("answered Q%d scored %d, want 100", d.QuestionID, d.UserScore)
			}
		} else {
			placeholders++
			if d.UserScore != 0 || d.Title != "Not Answered" {
				t.Errorf("bad placeholder for Q%d: %+v", d.QuestionID, d)
			}
		}
	}
	if scored != 2 || placeholders != 8 {
		t.Fatalf("got %d scored / %d placeholders, want 2/8", scored, placeholders)
	}
	if res.Summary.AverageScore != 100 {
		t.Fatalf("average %v, want 100", res.Summary.AverageScore)
	}
	if res.Summary.ReadinessLevel != "Highly Ready for Growth" {
		t.Fatalf("readiness %q", res.Summary.ReadinessLevel)
	}
}

func TestAggregateEmptySubmission(t *testing.T) {
	e := testEngine()
	res := e.Aggregate("as-1", Subject{}, nil)
	for _, d := range res.Scores {
		if d.Answered() {
			t.Fatalf("unexpected answered dimension %d", d.QuestionID)
		}
	}
	if res.Summary.AverageScore != 0 {
		t.Fatalf("average %v, want 0", res.Summary.AverageScore)
	}
	if res.Summary.ReadinessLevel != "Urgent Reset Needed" {
		t.Fatalf("readiness %q", res.Summary.ReadinessLevel)
	}
	// Degenerate min/max: both fall back to the first dimension.
	if res.Summary.LowestScore.QuestionID != 1 || res.Summary.HighestScore.QuestionID != 1 {
		t.Fatalf("degenerate lowest/highest not first entry: %d/%d",
			res.Summary.LowestScore.QuestionID, res.Summary.HighestScore.QuestionID)
	}
}

func TestClassifyThresholds(t *testing.T) {
	tests := []struct {
		avg  float64
		want string
	}{
		{100, "Highly Ready for Growth"},
		{80, "Highly Ready for Growth"},
		{79.9, "Moderately Ready with Emerging Clarity"},
		{60, "Moderately Ready with Emerging Clarity"},
		{59.9, "In Transition Mode"},
		{40, "In Transition Mode"},
		{39.9, "Urgent Reset Needed"},
		{0, "Urgent Reset Needed"},
	}
	for _, tt := range tests {
		if got := classify(tt.avg).Readiness; got != tt.want {
			t.Errorf("classify(%v) = %q, want %q", tt.avg, got, tt.want)
		}
	}
}

func TestAggregateLowestHighestTieBreak(t *testing.T) {
	e := testEngine()
	// Q2 and Q5 tie at the bottom, Q1 and Q3 tie at the top; first
	// occurrence in question order wins both.
	res := e.Aggregate("as-1", Subject{}, map[int]string{1: "a", 2: "j", 3: "a", 5: "j"})
	if res.Summary.LowestScore.QuestionID != 2 {
		t.Fatalf("lowest = Q%d, want Q2", res.Summary.LowestScore.QuestionID)
	}
	if res.Summary.HighestScore.QuestionID != 1 {
		t.Fatalf("highest = Q%d, want Q1", res.Summary.HighestScore.QuestionID)
	}
}

func TestActionPlanThreeLowestAscending(t *testing.T) {
	e := testEngine()
	full := map[int]string{1: "a", 2: "a", 3: "a", 4: "a", 5: "a", 6: "a", 7: "a", 8: "a", 9: "a", 10: "a"}
	full[4] = "j" // 10
	full[8] = "h" // 30
	full[6] = "f" // 50
	res := e.Aggregate("as-1", Subject{}, full)

	if len(res.ActionPlan.Immediate) != 3 || len(res.ActionPlan.ShortTerm) != 3 || len(res.ActionPlan.LongTerm) != 3 {
		t.Fatalf("action plan horizons not length 3: %+v", res.ActionPlan)
	}
	wantOrder := []OptionKey{{4, "j"}, {8, "h"}, {6, "f"}}
	r := NewResolver()
	for i, key := range wantOrder {
		in := r.Resolve(key.QuestionID, key.Option)
		if res.ActionPlan.Immediate[i] != in.MicroActions.Hours24 {
			t.Errorf("immediate[%d] = %q, want Q%d's 24h action", i, res.ActionPlan.Immediate[i], key.QuestionID)
		}
		if res.ActionPlan.ShortTerm[i] != in.MicroActions.Days7 {
			t.Errorf("short_term[%d] mismatch for Q%d", i, key.QuestionID)
		}
		if res.ActionPlan.LongTerm[i] != in.MicroActions.Days30 {
			t.Errorf("long_term[%d] mismatch for Q%d", i, key.QuestionID)
		}
	}
}

func TestActionPlanPlaceholdersRankFirst(t *testing.T) {
	e := testEngine()
	// Two placeholders score 0 and outrank every answered dimension; their
	// prompt-style actions lead the plan in question order.
	res := e.Aggregate("as-1", Subject{}, map[int]string{1: "a", 2: "a", 3: "a", 4: "a", 5: "a", 6: "a", 7: "a", 8: "a"})
	if got := res.ActionPlan.Immediate[0]; got == "" {
		t.Fatal("placeholder micro-action missing from plan")
	}
	q9, _ := LookupQuestion(9)
	if res.ActionPlan.Immediate[0] != placeholderDimension(q9).MicroActions.Hours24 {
		t.Fatalf("plan head %q, want Q9 placeholder prompt", res.ActionPlan.Immediate[0])
	}
}

func TestAggregateScoreWithoutNarrative(t *testing.T) {
	// An empty resolver chain simulates options whose narrative has not been
	// authored yet: the numeric score stands, the narrative stays empty.
	e := NewEngine(WithClock(fixedClock), WithResolver(NewResolver(tableSource{})))
	res := e.Aggregate("as-1", Subject{}, map[int]string{1: "a"})
	d := res.Scores[0]
	if d.UserScore != 100 {
		t.Fatalf("score %d, want 100", d.UserScore)
	}
	if d.Title != "" || d.MainInsight != "" || d.Archetype != "" {
		t.Fatalf("expected empty narrative, got %+v", d)
	}
	if !d.Answered() {
		t.Fatal("dimension should still count as answered")
	}
}

func TestAggregateNormalizesOptionCase(t *testing.T) {
	e := testEngine()
	res := e.Aggregate("as-1", Subject{}, map[int]string{1: " A "})
	if res.Scores[0].UserScore != 100 || res.Scores[0].SelectedOption != "a" {
		t.Fatalf("normalization failed: %+v", res.Scores[0])
	}
}

func TestAggregateIdempotent(t *testing.T) {
	e := testEngine()
	answers := map[int]string{1: "b", 4: "g", 9: "d"}
	sub := Subject{UserID: "u1", Name: "Sam", Email: "sam@example.com"}
	a := e.Aggregate("as-1", sub, answers)
	b := e.Aggregate("as-1", sub, answers)
	if !reflect.DeepEqual(a, b) {
		t.Fatal("identical inputs produced different results")
	}
}

func TestAggregatePercentageScore(t *testing.T) {
	e := testEngine()
	res := e.Aggregate("as-1", Subject{}, map[int]string{2: "d"})
	for _, d := range res.Scores {
		if d.QuestionID == 2 {
			if d.PercentageScore != 70 {
				t.Fatalf("percentage %v, want 70", d.PercentageScore)
			}
			if d.MaxScore != MaxScore {
				t.Fatalf("max score %d, want %d", d.MaxScore, MaxScore)
			}
		}
	}
}
