package detect

// Signal names one extracted indicator. The names double as breakdown keys in
// classification results.
type Signal string

const (
	SignalRepetition         Signal = "repetition"
	SignalFormality          Signal = "formality"
	SignalPersonalTouch      Signal = "personal_touch"
	SignalGrammarPerfection  Signal = "grammar_perfection"
	SignalGenericPhrases     Signal = "generic_phrases"
	SignalSentenceVariation  Signal = "sentence_variation"
	SignalHumanMarkers       Signal = "human_markers"
	SignalConversationalFlow Signal = "conversational_flow"
)

// Rule adds Weight points to the AI-likelihood score when a signal crosses its
// threshold. Below inverts the comparison for signals where a low value is the
// machine tell (little personal voice, flat sentence rhythm).
type Rule struct {
	Signal    Signal
	Threshold float64
	Below     bool
	Weight    float64
}

// Policy is the versioned scoring table. Rules only ever add to the score;
// the two credits only ever subtract from it.
type Policy struct {
	Rules []Rule
	// HumanMarkerCredit is subtracted once per informal-speech marker.
	HumanMarkerCredit float64
	// ConversationalCredit is scaled by the conversational-flow ratio.
	ConversationalCredit float64
}

func DefaultPolicy() Policy {
	return Policy{
		Rules: []Rule{
			{Signal: SignalRepetition, Threshold: 3, Weight: 15},
			{Signal: SignalFormality, Threshold: 0.7, Weight: 20},
			{Signal: SignalPersonalTouch, Threshold: 2, Below: true, Weight: 25},
			{Signal: SignalGrammarPerfection, Threshold: 0.95, Weight: 15},
			{Signal: SignalGenericPhrases, Threshold: 5, Weight: 15},
			{Signal: SignalSentenceVariation, Threshold: 0.3, Below: true, Weight: 10},
		},
		HumanMarkerCredit:    5,
		ConversationalCredit: 10,
	}
}

// Tripped reports whether the rule fires for the given signal value.
func (r Rule) Tripped(value float64) bool {
	if r.Below {
		return value < r.Threshold
	}
	return value > r.Threshold
}
