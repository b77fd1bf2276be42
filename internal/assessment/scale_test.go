package assessment

import "testing"

func TestScoreDefaultScale(t *testing.T) {
	tests := []struct {
		option string
		want   int
	}{
		{"a", 100},
		{"b", 90},
		{"e", 60},
		{"j", 10},
	}
	for _, tt := range tests {
		if got := Score(1, tt.option); got != tt.want {
			t.Errorf("Score(1, %q) = %d, want %d", tt.option, got, tt.want)
		}
	}
}

func TestScoreDescendsByFixedStep(t *testing.T) {
	letters := []string{"a", "b", "c", "d", "e", "f", "g", "h", "i", "j"}
	for i := 1; i < len(letters); i++ {
		prev := Score(1, letters[i-1])
		cur := Score(1, letters[i])
		if prev-cur != 10 {
			t.Fatalf("step from %q to %q is %d, want 10", letters[i-1], letters[i], prev-cur)
		}
	}
}

func TestScoreMissesReturnZero(t *testing.T) {
	tests := []struct {
		name       string
		questionID int
		option     string
	}{
		{"unknown letter", 1, "z"},
		{"empty option", 1, ""},
		{"unregistered question", 42, "a"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Score(tt.questionID, tt.option); got != 0 {
				t.Fatalf("Score(%d, %q) = %d, want 0", tt.questionID, tt.option, got)
			}
		})
	}
}

// Every registered question must score every letter of the default scale.
func TestScoreCoversRegistry(t *testing.T) {
	for _, q := range Questions() {
		for letter := range defaultScale {
			if Score(q.ID, letter) == 0 {
				t.Errorf("question %d option %q scores 0", q.ID, letter)
			}
		}
	}
}
