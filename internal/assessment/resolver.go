package assessment

// Source is one place an insight may come from. Sources are consulted in
// order; the first hit wins.
type Source interface {
	Resolve(key OptionKey) (Insight, bool)
}

type tableSource map[OptionKey]Insight

func (t tableSource) Resolve(key OptionKey) (Insight, bool) {
	in, ok := t[key]
	return in, ok
}

// Resolver chains insight sources: the detailed narrative table first, the
// legacy simplified table second. Narrative content can lag behind newly
// added questions, so a miss across every source is a nil result, not an
// error; the aggregator substitutes a placeholder to keep output cardinality
// fixed.
type Resolver struct {
	sources []Source
}

// NewResolver builds the default two-tier chain. Pass explicit sources to
// override the built-in tables (used by tests).
func NewResolver(sources ...Source) *Resolver {
	if len(sources) == 0 {
		sources = []Source{
			tableSource(detailedInsights),
			tableSource(legacyInsights),
		}
	}
	return &Resolver{sources: sources}
}

// Resolve returns the insight for an answered option, or nil when no source
// has authored one yet.
func (r *Resolver) Resolve(questionID int, option string) *Insight {
	key := OptionKey{QuestionID: questionID, Option: option}
	for _, s := range r.sources {
		if in, ok := s.Resolve(key); ok {
			return &in
		}
	}
	return nil
}
