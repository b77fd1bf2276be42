package assessment

import "time"

// MaxScore is the ceiling of every option scale currently in use.
const MaxScore = 100

// Question is one registered dimension of the assessment.
type Question struct {
	ID        int    `json:"id"`
	Theme     string `json:"theme"`
	IndexName string `json:"index_name"`
	ScoreType string `json:"score_type"`
	Measure   string `json:"measure"`
}

// OptionKey identifies one selectable answer of one question. Both the score
// tables and the insight tables are keyed by it.
type OptionKey struct {
	QuestionID int
	Option     string
}

// MicroActions are the recommended next steps at three time horizons.
type MicroActions struct {
	Hours24 string `json:"hours_24"`
	Days7   string `json:"days_7"`
	Days30  string `json:"days_30"`
}

// Insight is the narrative payload attached to one answered option.
// Legacy-table entries populate only Title, MainInsight, Recommendation,
// Archetype and MicroActions; the remaining fields stay empty.
type Insight struct {
	Title              string       `json:"title"`
	MainInsight        string       `json:"main_insight"`
	Recommendation     string       `json:"recommendation"`
	RootCause          string       `json:"root_cause"`
	GrowthBlocker      string       `json:"growth_blocker"`
	HiddenStrength     string       `json:"hidden_strength"`
	HiddenDesire       string       `json:"hidden_desire"`
	Archetype          string       `json:"archetype"`
	DigitalTwinMessage string       `json:"digital_twin_message"`
	MicroActions       MicroActions `json:"micro_actions"`
}

// DimensionScore is the per-question slice of a scored submission.
// SelectedOption is empty for placeholder entries.
type DimensionScore struct {
	QuestionID         int          `json:"question_id"`
	Theme              string       `json:"theme"`
	IndexName          string       `json:"index_name"`
	ScoreType          string       `json:"score_type"`
	Measure            string       `json:"measure"`
	UserScore          int          `json:"user_score"`
	MaxScore           int          `json:"max_score"`
	PercentageScore    float64      `json:"percentage_score"`
	SelectedOption     string       `json:"selected_option"`
	Title              string       `json:"title"`
	MainInsight        string       `json:"main_insight"`
	Recommendation     string       `json:"recommendation"`
	RootCause          string       `json:"root_cause"`
	GrowthBlocker      string       `json:"growth_blocker"`
	HiddenStrength     string       `json:"hidden_strength"`
	HiddenDesire       string       `json:"hidden_desire"`
	Archetype          string       `json:"archetype"`
	DigitalTwinMessage string       `json:"digital_twin_message"`
	MicroActions       MicroActions `json:"micro_actions"`
}

// Answered reports whether this dimension came from a submitted option
// rather than the placeholder path.
func (d DimensionScore) Answered() bool { return d.SelectedOption != "" }

// Subject identifies who took the assessment.
type Subject struct {
	UserID string `json:"user_id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
}

// SummaryMetrics is the whole-submission rollup.
type SummaryMetrics struct {
	AverageScore     float64        `json:"average_score"`
	LowestScore      DimensionScore `json:"lowest_score"`
	HighestScore     DimensionScore `json:"highest_score"`
	ReadinessLevel   string         `json:"readiness_level"`
	PrimaryArchetype string         `json:"primary_archetype"`
	OverallInsight   string         `json:"overall_insight"`
}

// ActionPlan collects the micro-actions of the weakest dimensions,
// lowest score first.
type ActionPlan struct {
	Immediate []string `json:"immediate"`
	ShortTerm []string `json:"short_term"`
	LongTerm  []string `json:"long_term"`
}

// Result is the consolidated outcome of scoring one submission. It is built
// once per Aggregate call and never mutated afterwards.
type Result struct {
	AssessmentID string           `json:"assessment_id"`
	Subject      Subject          `json:"subject"`
	CompletedAt  time.Time        `json:"completed_at"`
	Scores       []DimensionScore `json:"scores"`
	Summary      SummaryMetrics   `json:"summary"`
	ActionPlan   ActionPlan       `json:"action_plan"`
}
