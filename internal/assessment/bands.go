package assessment

// band classifies an average score into a readiness level. The archetype and
// overall narrative are fixed per band, not derived per submission.
type band struct {
	Min       float64
	Readiness string
	Archetype string
	Overall   string
}

// readinessBands is ordered highest threshold first; classification walks the
// list and takes the first band whose minimum the average meets.
var readinessBands = []band{
	{
		Min:       80,
		Readiness: "Highly Ready for Growth",
		Archetype: "The Momentum Builder",
		Overall: "You are operating from a strong, self-aware foundation. Most of your " +
			"dimensions are already working for you, which means your next season is " +
			"about amplification rather than repair. Protect the systems that got you " +
			"here, pick one frontier that genuinely stretches you, and commit to it " +
			"publicly. Growth at your level comes from deliberate discomfort, not from " +
			"fixing weaknesses that no longer hold you back.",
	},
	{
		Min:       60,
		Readiness: "Moderately Ready with Emerging Clarity",
		Archetype: "The Emerging Navigator",
		Overall: "A clear direction is forming, and several of your dimensions are " +
			"genuinely strong, but the gap between your best and weakest areas is " +
			"still wide enough to leak momentum. Your work now is consolidation: take " +
			"the clarity you feel in your strongest dimension and use its habits and " +
			"language to shore up the two weakest ones. Small, repeated wins in those " +
			"areas will convert emerging clarity into durable confidence.",
	},
	{
		Min:       40,
		Readiness: "In Transition Mode",
		Archetype: "The Crossroads Seeker",
		Overall: "You are between identities: the old patterns no longer fit, and the " +
			"new ones are not yet load-bearing. That in-between feeling is not failure, " +
			"it is the raw material of a real transition. Resist the urge to overhaul " +
			"everything at once. Choose the single lowest-scoring dimension in this " +
			"report, run its micro-actions for thirty days, and let one stabilized area " +
			"become the anchor the rest of your change hangs from.",
	},
	{
		Min:       0,
		Readiness: "Urgent Reset Needed",
		Archetype: "The Phoenix in Waiting",
		Overall: "Most of your dimensions are running on empty, which usually means the " +
			"problem is not effort but depletion. Before any ambitious growth plan, you " +
			"need a reset: sleep, one honest conversation, and the smallest possible " +
			"daily win. Treat the next two weeks as recovery, not performance. The " +
			"micro-actions below are deliberately tiny; done daily, they rebuild the " +
			"base everything else will stand on.",
	},
}

// classify maps an average score to its readiness band. Averages below every
// threshold (only possible at exactly 0 with the current scales) land in the
// final band.
func classify(avg float64) band {
	for _, b := range readinessBands {
		if avg >= b.Min {
			return b
		}
	}
	return readinessBands[len(readinessBands)-1]
}
