package detect

import "math"

// Indicator is one breakdown entry: the raw signal value plus a human-readable
// reading of it.
type Indicator struct {
	Score       float64 `json:"score"`
	Description string  `json:"description"`
}

// Result is the classification verdict for one text.
type Result struct {
	AIProbability    int                  `json:"ai_probability"`
	HumanProbability int                  `json:"human_probability"`
	Verdict          string               `json:"verdict"`
	Confidence       string               `json:"confidence"`
	Signals          Signals              `json:"signals"`
	Breakdown        map[Signal]Indicator `json:"breakdown"`
	Recommendations  []string             `json:"recommendations"`
}

const (
	ConfidenceLow    = "Low"
	ConfidenceMedium = "Medium"
	ConfidenceHigh   = "High"
)

// Detector classifies raw text as likely AI-generated or human-written. It is
// a total function over any non-empty text; minimum-length enforcement belongs
// to the caller.
type Detector struct {
	extractor *Extractor
	policy    Policy
}

func New(tables Tables, policy Policy) (*Detector, error) {
	extractor, err := NewExtractor(tables)
	if err != nil {
		return nil, err
	}
	return &Detector{extractor: extractor, policy: policy}, nil
}

// NewDefault builds a detector from the default tables and policy. It panics
// only if the built-in tables are malformed.
func NewDefault() *Detector {
	d, err := New(DefaultTables(), DefaultPolicy())
	if err != nil {
		panic(err)
	}
	return d
}

// Classify runs the full signal pipeline and maps the weighted score to a
// verdict, confidence band, breakdown and recommendations.
func (d *Detector) Classify(text string) Result {
	signals := d.extractor.Extract(text)

	score := 0.0
	tripped := map[Signal]bool{}
	for _, rule := range d.policy.Rules {
		if rule.Tripped(signals.Value(rule.Signal)) {
			score += rule.Weight
			tripped[rule.Signal] = true
		}
	}
	score -= d.policy.HumanMarkerCredit * float64(signals.HumanMarkerCount)
	score -= d.policy.ConversationalCredit * signals.ConversationalFlow

	probability := clampProbability(int(math.Round(score)))

	return Result{
		AIProbability:    probability,
		HumanProbability: 100 - probability,
		Verdict:          VerdictFor(probability),
		Confidence:       ConfidenceFor(probability),
		Signals:          signals,
		Breakdown:        breakdown(signals, tripped),
		Recommendations:  recommendations(probability, tripped),
	}
}

// VerdictFor maps an AI probability to its verdict band.
func VerdictFor(probability int) string {
	switch {
	case probability >= 80:
		return "Very likely AI-generated"
	case probability >= 60:
		return "Possibly AI-generated"
	case probability >= 40:
		return "Mixed signals — uncertain"
	case probability >= 20:
		return "Likely human-written"
	default:
		return "Very likely human-written"
	}
}

// ConfidenceFor maps an AI probability to a confidence band. Scores in the
// 41..59 range are Low; the bands are not symmetric with the verdict bands.
func ConfidenceFor(probability int) string {
	switch {
	case probability >= 80 || probability <= 20:
		return ConfidenceHigh
	case probability >= 60 || probability <= 40:
		return ConfidenceMedium
	default:
		return ConfidenceLow
	}
}

func clampProbability(p int) int {
	if p < 0 {
		return 0
	}
	if p > 100 {
		return 100
	}
	return p
}

func breakdown(s Signals, tripped map[Signal]bool) map[Signal]Indicator {
	pick := func(sig Signal, bad, good string) Indicator {
		desc := good
		if tripped[sig] {
			desc = bad
		}
		return Indicator{Score: s.Value(sig), Description: desc}
	}

	out := map[Signal]Indicator{
		SignalRepetition: pick(SignalRepetition,
			"Sentence openings repeat more often than typical human writing",
			"Sentence openings vary normally"),
		SignalFormality: pick(SignalFormality,
			"Heavy use of formal transition words",
			"Transition word usage looks natural"),
		SignalPersonalTouch: pick(SignalPersonalTouch,
			"Little to no first-person or anecdotal voice",
			"Personal voice is present"),
		SignalGrammarPerfection: pick(SignalGrammarPerfection,
			"Mechanically flawless text; human writing usually has small slips",
			"Natural level of grammatical imperfection"),
		SignalGenericPhrases: pick(SignalGenericPhrases,
			"Frequent stock phrases and clichés",
			"Few stock phrases detected"),
		SignalSentenceVariation: pick(SignalSentenceVariation,
			"Sentence lengths are unusually uniform",
			"Healthy variety in sentence length"),
	}

	humanDesc := "No informal-speech markers found"
	if s.HumanMarkerCount > 0 {
		humanDesc = "Informal-speech markers point to a human author"
	}
	out[SignalHumanMarkers] = Indicator{
		Score:       float64(s.HumanMarkerCount),
		Description: humanDesc,
	}

	flowDesc := "Little direct-address or conversational rhythm"
	if s.ConversationalFlow > 0 {
		flowDesc = "Conversational rhythm and direct address detected"
	}
	out[SignalConversationalFlow] = Indicator{
		Score:       s.ConversationalFlow,
		Description: flowDesc,
	}

	return out
}

var genericRecommendations = []string{
	"Add personal anecdotes and first-person perspective",
	"Vary sentence structure and length",
	"Use contractions and informal expressions where appropriate",
	"Reduce reliance on formal transition words",
	"Break up repetitive sentence patterns",
}

var signalRecommendations = map[Signal]string{
	SignalRepetition:        "Rewrite sentences that open the same way",
	SignalFormality:         "Swap some formal transitions for plain connectors",
	SignalPersonalTouch:     "Share a concrete personal experience or opinion",
	SignalGrammarPerfection: "Let the prose breathe; perfectly clean mechanics read as generated",
	SignalGenericPhrases:    "Replace stock phrases with specific, concrete claims",
	SignalSentenceVariation: "Mix short punchy sentences with longer ones",
}

var positiveRecommendations = []string{
	"Text shows natural human writing patterns",
	"Good sentence variety and personal voice",
	"Keep the conversational tone",
}

func recommendations(probability int, tripped map[Signal]bool) []string {
	if probability <= 30 {
		out := make([]string, len(positiveRecommendations))
		copy(out, positiveRecommendations)
		return out
	}

	var out []string
	if probability > 60 {
		out = append(out, genericRecommendations...)
	}
	// Keep per-signal advice in a stable order.
	for _, sig := range []Signal{
		SignalRepetition, SignalFormality, SignalPersonalTouch,
		SignalGrammarPerfection, SignalGenericPhrases, SignalSentenceVariation,
	} {
		if tripped[sig] {
			out = append(out, signalRecommendations[sig])
		}
	}
	if out == nil {
		out = []string{}
	}
	return out
}
