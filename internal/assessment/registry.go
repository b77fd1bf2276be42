package assessment

// questions is the full registry, ordered by ID. Every key in the score and
// insight tables refers back to an entry here, and the aggregator emits one
// dimension per entry regardless of how complete a submission is.
var questions = []Question{
	{
		ID:        1,
		Theme:     "Identity & Purpose",
		IndexName: "Identity–Purpose Alignment",
		ScoreType: "Alignment",
		Measure:   "How closely your daily choices track the purpose you say you hold.",
	},
	{
		ID:        2,
		Theme:     "Energy & Vitality",
		IndexName: "Energy Consistency Index",
		ScoreType: "Consistency",
		Measure:   "How steadily you can access physical and mental energy across a normal week.",
	},
	{
		ID:        3,
		Theme:     "Focus & Attention",
		IndexName: "Deep Focus Capacity",
		ScoreType: "Capacity",
		Measure:   "How long you can hold undistracted attention on one meaningful task.",
	},
	{
		ID:        4,
		Theme:     "Confidence & Self-Trust",
		IndexName: "Self-Trust Quotient",
		ScoreType: "Trust",
		Measure:   "How much you rely on your own judgment when the stakes are high.",
	},
	{
		ID:        5,
		Theme:     "Habits & Discipline",
		IndexName: "Habit Integrity Index",
		ScoreType: "Integrity",
		Measure:   "How reliably your core routines survive low-motivation days.",
	},
	{
		ID:        6,
		Theme:     "Relationships & Support",
		IndexName: "Support Network Depth",
		ScoreType: "Depth",
		Measure:   "How much honest, growth-oriented support you can actually draw on.",
	},
	{
		ID:        7,
		Theme:     "Career & Contribution",
		IndexName: "Contribution Clarity",
		ScoreType: "Clarity",
		Measure:   "How clearly your work connects to the impact you want to make.",
	},
	{
		ID:        8,
		Theme:     "Money & Abundance",
		IndexName: "Money Mindset Openness",
		ScoreType: "Openness",
		Measure:   "How your beliefs about money expand or constrain your decisions.",
	},
	{
		ID:        9,
		Theme:     "Resilience & Recovery",
		IndexName: "Setback Recovery Rate",
		ScoreType: "Recovery",
		Measure:   "How quickly you return to baseline after a meaningful setback.",
	},
	{
		ID:        10,
		Theme:     "Vision & Future Self",
		IndexName: "Future-Self Vividness",
		ScoreType: "Vividness",
		Measure:   "How concretely you can picture, and plan for, the person you are becoming.",
	},
}

var questionsByID = func() map[int]Question {
	m := make(map[int]Question, len(questions))
	for _, q := range questions {
		m[q.ID] = q
	}
	return m
}()

// Questions returns the registry in question order. Callers get a copy; the
// registry itself is never mutated after init.
func Questions() []Question {
	out := make([]Question, len(questions))
	copy(out, questions)
	return out
}

// LookupQuestion fetches one registry entry by ID.
func LookupQuestion(id int) (Question, bool) {
	q, ok := questionsByID[id]
	return q, ok
}
