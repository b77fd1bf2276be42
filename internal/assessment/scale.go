package assessment

// defaultScale maps an option letter to its score: the first choice carries
// full credit and each later letter drops by a fixed step down to 10.
var defaultScale = map[string]int{
	"a": 100,
	"b": 90,
	"c": 80,
	"d": 70,
	"e": 60,
	"f": 50,
	"g": 40,
	"h": 30,
	"i": 20,
	"j": 10,
}

// questionScales holds per-question overrides of the default scale. Every
// live question currently uses the default, but keeping the override as data
// means a future per-question scale is a table edit, not a code change.
var questionScales = map[int]map[string]int{}

// Score returns the credit for an answered option. Unknown questions and
// unknown letters score 0 rather than failing, so malformed or legacy option
// values degrade to "no credit" instead of aborting a whole aggregation.
func Score(questionID int, option string) int {
	if scale, ok := questionScales[questionID]; ok {
		return scale[option]
	}
	if _, ok := questionsByID[questionID]; !ok {
		return 0
	}
	return defaultScale[option]
}
