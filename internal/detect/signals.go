package detect

import (
	"regexp"
	"strings"

	"github.com/kamrah334/FreeSEOToolkit/internal/match"
	"github.com/kamrah334/FreeSEOToolkit/internal/textkit"
)

// Signals is the fixed-shape indicator set computed once per classification.
type Signals struct {
	RepetitionCount         int     `json:"repetition_count"`
	FormalityRatio          float64 `json:"formality_ratio"`
	PersonalTouchCount      int     `json:"personal_touch_count"`
	GrammarPerfection       float64 `json:"grammar_perfection"`
	GenericPhraseCount      int     `json:"generic_phrase_count"`
	SentenceLengthVariation float64 `json:"sentence_length_variation"`
	HumanMarkerCount        int     `json:"human_marker_count"`
	ConversationalFlow      float64 `json:"conversational_flow"`
}

// Value exposes a signal by name so policy rules can address indicators
// uniformly.
func (s Signals) Value(sig Signal) float64 {
	switch sig {
	case SignalRepetition:
		return float64(s.RepetitionCount)
	case SignalFormality:
		return s.FormalityRatio
	case SignalPersonalTouch:
		return float64(s.PersonalTouchCount)
	case SignalGrammarPerfection:
		return s.GrammarPerfection
	case SignalGenericPhrases:
		return float64(s.GenericPhraseCount)
	case SignalSentenceVariation:
		return s.SentenceLengthVariation
	case SignalHumanMarkers:
		return float64(s.HumanMarkerCount)
	case SignalConversationalFlow:
		return s.ConversationalFlow
	default:
		return 0
	}
}

var asidePattern = regexp.MustCompile(`\([^)\n]+\)`)
var noSpaceAfterStop = regexp.MustCompile(`[a-zA-Z][.?!][a-zA-Z]`)
var doubleSpace = regexp.MustCompile(` {2,}`)

// Extractor scans raw, non-normalized text: case and punctuation carry signal.
// Phrase lists are compiled once into Aho-Corasick automata.
type Extractor struct {
	transitions map[string]struct{}
	personal    *match.PhraseMatcher
	generic     *match.PhraseMatcher
	human       *match.PhraseMatcher
	connectors  *match.PhraseMatcher
}

func NewExtractor(tables Tables) (*Extractor, error) {
	personal, err := match.NewPhraseMatcher(tables.PersonalPhrases)
	if err != nil {
		return nil, err
	}
	generic, err := match.NewPhraseMatcher(tables.GenericPhrases)
	if err != nil {
		return nil, err
	}
	human, err := match.NewPhraseMatcher(tables.HumanMarkers)
	if err != nil {
		return nil, err
	}
	connectors, err := match.NewPhraseMatcher(tables.ConnectorWords)
	if err != nil {
		return nil, err
	}

	transitions := make(map[string]struct{}, len(tables.TransitionWords))
	for _, w := range tables.TransitionWords {
		transitions[strings.ToLower(strings.TrimSpace(w))] = struct{}{}
	}

	return &Extractor{
		transitions: transitions,
		personal:    personal,
		generic:     generic,
		human:       human,
		connectors:  connectors,
	}, nil
}

// Extract computes the full signal set for one text.
func (e *Extractor) Extract(text string) Signals {
	return Signals{
		RepetitionCount:         e.repetitionCount(text),
		FormalityRatio:          e.formalityRatio(text),
		PersonalTouchCount:      e.personal.Count(text),
		GrammarPerfection:       e.grammarPerfection(text),
		GenericPhraseCount:      e.generic.Count(text),
		SentenceLengthVariation: e.sentenceVariation(text),
		HumanMarkerCount:        e.humanMarkerCount(text),
		ConversationalFlow:      e.conversationalFlow(text),
	}
}

// repetitionCount fingerprints each sentence by its first three words and
// counts how many distinct fingerprints recur.
func (e *Extractor) repetitionCount(text string) int {
	seen := map[string]int{}
	for _, sentence := range textkit.Sentences(text) {
		words := strings.Fields(strings.ToLower(sentence))
		if len(words) == 0 {
			continue
		}
		if len(words) > 3 {
			words = words[:3]
		}
		seen[strings.Join(words, " ")]++
	}
	repeated := 0
	for _, n := range seen {
		if n > 1 {
			repeated++
		}
	}
	return repeated
}

// formalityRatio is the fraction of tokens that exactly match the transition
// word list after trimming surrounding punctuation.
func (e *Extractor) formalityRatio(text string) float64 {
	fields := strings.Fields(text)
	if len(fields) == 0 {
		return 0
	}
	matches := 0
	for _, f := range fields {
		word := strings.ToLower(strings.Trim(f, ".,;:!?\"'()"))
		if _, ok := e.transitions[word]; ok {
			matches++
		}
	}
	return float64(matches) / float64(len(fields))
}

// grammarPerfection is (sentences - imperfections) / sentences. A value near
// 1.0 means mechanically flawless text, which counts against a human author.
func (e *Extractor) grammarPerfection(text string) float64 {
	sentences := len(textkit.Sentences(text))
	if sentences == 0 {
		return 0
	}
	imperfections := doubledWords(text) +
		len(noSpaceAfterStop.FindAllString(text, -1)) +
		strings.Count(text, " ,") +
		len(doubleSpace.FindAllString(text, -1))
	return textkit.Clamp01(float64(sentences-imperfections) / float64(sentences))
}

// doubledWords counts adjacent identical words ("the the"). RE2 has no
// backreferences, so this walks the token stream instead.
func doubledWords(text string) int {
	fields := strings.Fields(strings.ToLower(text))
	count := 0
	prev := ""
	for _, f := range fields {
		word := strings.Trim(f, ".,;:!?\"'()")
		if word != "" && word == prev {
			count++
		}
		prev = word
	}
	return count
}

// sentenceVariation is min(1, stddev/mean) over per-sentence word counts.
// Fewer than two sentences yields 0 to avoid degenerate distributions.
func (e *Extractor) sentenceVariation(text string) float64 {
	sentences := textkit.Sentences(text)
	if len(sentences) < 2 {
		return 0
	}
	lengths := make([]float64, 0, len(sentences))
	for _, s := range sentences {
		lengths = append(lengths, float64(len(strings.Fields(s))))
	}
	mean, sd := textkit.MeanStd(lengths)
	if mean == 0 {
		return 0
	}
	ratio := sd / mean
	if ratio > 1 {
		return 1
	}
	return ratio
}

func (e *Extractor) humanMarkerCount(text string) int {
	return e.human.Count(text) + len(asidePattern.FindAllString(text, -1))
}

// conversationalFlow is min(1, connectors / (wordCount * 0.1)) where connector
// hits include question and exclamation marks.
func (e *Extractor) conversationalFlow(text string) float64 {
	wordCount := len(strings.Fields(text))
	if wordCount == 0 {
		return 0
	}
	connectors := e.connectors.Count(text) +
		strings.Count(text, "?") +
		strings.Count(text, "!")
	flow := float64(connectors) / (float64(wordCount) * 0.1)
	if flow > 1 {
		return 1
	}
	return flow
}
