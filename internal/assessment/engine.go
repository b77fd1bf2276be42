package assessment

import (
	"sort"
	"strings"
	"time"
)

// actionPlanSize is how many of the weakest dimensions feed the action plan.
const actionPlanSize = 3

// Engine scores one submission against the registry and the lookup tables.
// It holds no mutable state and is safe for concurrent use; the only impurity
// is the completion timestamp, which comes from the injected clock.
type Engine struct {
	registry []Question
	resolver *Resolver
	now      func() time.Time
}

type Option func(*Engine)

// WithClock overrides the completion-timestamp source.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) { e.now = now }
}

// WithResolver overrides the default two-tier insight chain.
func WithResolver(r *Resolver) Option {
	return func(e *Engine) { e.resolver = r }
}

func NewEngine(opts ...Option) *Engine {
	e := &Engine{
		registry: Questions(),
		resolver: NewResolver(),
		now:      time.Now,
	}
	for _, o := range opts {
		o(e)
	}
	return e
}

// Aggregate scores a full submission. Every registered question yields
// exactly one DimensionScore whether or not it was answered; missing answers
// take the placeholder path and never abort the run.
func (e *Engine) Aggregate(assessmentID string, subject Subject, answers map[int]string) Result {
	scores := make([]DimensionScore, 0, len(e.registry))
	for _, q := range e.registry {
		opt, ok := answers[q.ID]
		opt = strings.ToLower(strings.TrimSpace(opt))
		if !ok || opt == "" {
			scores = append(scores, placeholderDimension(q))
			continue
		}
		scores = append(scores, e.scoreDimension(q, opt))
	}

	summary := summarize(scores)
	return Result{
		AssessmentID: assessmentID,
		Subject:      subject,
		CompletedAt:  e.now().UTC(),
		Scores:       scores,
		Summary:      summary,
		ActionPlan:   buildActionPlan(scores),
	}
}

// scoreDimension handles one answered question. A missing insight is not an
// error: the score stands and the narrative fields stay empty until content
// is authored for that option.
func (e *Engine) scoreDimension(q Question, opt string) DimensionScore {
	d := DimensionScore{
		QuestionID:     q.ID,
		Theme:          q.Theme,
		IndexName:      q.IndexName,
		ScoreType:      q.ScoreType,
		Measure:        q.Measure,
		UserScore:      Score(q.ID, opt),
		MaxScore:       MaxScore,
		SelectedOption: opt,
	}
	d.PercentageScore = float64(d.UserScore) / float64(MaxScore) * 100

	if in := e.resolver.Resolve(q.ID, opt); in != nil {
		d.Title = in.Title
		d.MainInsight = in.MainInsight
		d.Recommendation = in.Recommendation
		d.RootCause = in.RootCause
		d.GrowthBlocker = in.GrowthBlocker
		d.HiddenStrength = in.HiddenStrength
		d.HiddenDesire = in.HiddenDesire
		d.Archetype = in.Archetype
		d.DigitalTwinMessage = in.DigitalTwinMessage
		d.MicroActions = in.MicroActions
	}
	return d
}

// placeholderDimension stands in for an unanswered question so that output
// cardinality always equals the registry size. Its micro-actions are prompts
// to finish the assessment, which keeps the action plan meaningful even for
// partial submissions.
func placeholderDimension(q Question) DimensionScore {
	return DimensionScore{
		QuestionID:  q.ID,
		Theme:       q.Theme,
		IndexName:   q.IndexName,
		ScoreType:   q.ScoreType,
		Measure:     q.Measure,
		UserScore:   0,
		MaxScore:    MaxScore,
		Title:       "Not Answered",
		MainInsight: "You haven't answered this question yet. Complete it to unlock this dimension of your profile.",
		MicroActions: MicroActions{
			Hours24: "Return to the assessment and answer the " + q.Theme + " question.",
			Days7:   "Review your completed " + q.IndexName + " result once it is available.",
			Days30:  "Retake the full assessment to track how this dimension develops.",
		},
	}
}

// summarize computes the whole-submission rollup. The mean runs over answered
// dimensions only: placeholders carry no signal, and counting them would bias
// partial submissions toward zero. With nothing answered the average defaults
// to 0 and the min/max entries fall back to the first dimension.
func summarize(scores []DimensionScore) SummaryMetrics {
	var (
		sum      int
		answered int
		lowest   = -1
		highest  = -1
	)
	for i, d := range scores {
		if !d.Answered() {
			continue
		}
		sum += d.UserScore
		answered++
		if lowest == -1 || d.UserScore < scores[lowest].UserScore {
			lowest = i
		}
		if highest == -1 || d.UserScore > scores[highest].UserScore {
			highest = i
		}
	}

	avg := 0.0
	if answered > 0 {
		avg = float64(sum) / float64(answered)
	}
	if lowest == -1 {
		lowest, highest = 0, 0
	}

	b := classify(avg)
	return SummaryMetrics{
		AverageScore:     avg,
		LowestScore:      scores[lowest],
		HighestScore:     scores[highest],
		ReadinessLevel:   b.Readiness,
		PrimaryArchetype: b.Archetype,
		OverallInsight:   b.Overall,
	}
}

// buildActionPlan takes the weakest dimensions, placeholders included, and
// lays their micro-actions out across the three horizons, lowest score first.
// Ties keep question order.
func buildActionPlan(scores []DimensionScore) ActionPlan {
	ranked := make([]DimensionScore, len(scores))
	copy(ranked, scores)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].UserScore < ranked[j].UserScore
	})

	n := actionPlanSize
	if len(ranked) < n {
		n = len(ranked)
	}
	plan := ActionPlan{
		Immediate: make([]string, 0, n),
		ShortTerm: make([]string, 0, n),
		LongTerm:  make([]string, 0, n),
	}
	for _, d := range ranked[:n] {
		plan.Immediate = append(plan.Immediate, d.MicroActions.Hours24)
		plan.ShortTerm = append(plan.ShortTerm, d.MicroActions.Days7)
		plan.LongTerm = append(plan.LongTerm, d.MicroActions.Days30)
	}
	return plan
}
