package density

import (
	"sort"

	"github.com/kamrah334/FreeSEOToolkit/internal/textkit"
)

// Tier classifies how saturated a keyword is relative to the whole text.
type Tier string

const (
	TierLow     Tier = "low"
	TierGood    Tier = "good"
	TierOptimal Tier = "optimal"
	TierHigh    Tier = "high"
)

// Keyword is one ranked entry of a density report. Density is a percentage of
// the total token count; Tier is derived from the unrounded density.
type Keyword struct {
	Word      string  `json:"word"`
	Frequency int     `json:"frequency"`
	Density   float64 `json:"density"`
	Tier      Tier    `json:"tier"`
}

// Report is the full density analysis for one text.
type Report struct {
	TotalWords     int       `json:"total_words"`
	UniqueKeywords int       `json:"unique_keywords"`
	TopKeywords    []Keyword `json:"top_keywords"`
	AverageDensity float64   `json:"average_density"`
	TopDensity     float64   `json:"top_density"`
}

// Config holds the fixed analysis constants. The tier boundaries are inclusive
// on the lower bound of the next tier: exactly 1.00% is already "good".
type Config struct {
	MinTokenLength   int
	TopN             int
	GoodThreshold    float64
	OptimalThreshold float64
	HighThreshold    float64
}

func DefaultConfig() Config {
	return Config{
		MinTokenLength:   3,
		TopN:             20,
		GoodThreshold:    1.0,
		OptimalThreshold: 2.0,
		HighThreshold:    4.0,
	}
}

// Engine computes keyword density reports. It holds no state between calls.
type Engine struct {
	cfg Config
}

func NewEngine(cfg Config) Engine {
	if cfg.TopN <= 0 {
		cfg.TopN = 20
	}
	return Engine{cfg: cfg}
}

// Analyze tokenizes the raw text and ranks its keywords.
func (e Engine) Analyze(text string) Report {
	return e.AnalyzeTokens(textkit.Tokenize(text, e.cfg.MinTokenLength))
}

// AnalyzeTokens ranks an already-normalized token stream. A zero-token stream
// yields an all-zero report rather than NaN fields.
func (e Engine) AnalyzeTokens(tokens []string) Report {
	total := len(tokens)
	if total == 0 {
		return Report{TopKeywords: []Keyword{}}
	}

	counts := map[string]int{}
	order := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		if _, seen := counts[tok]; !seen {
			order = append(order, tok)
		}
		counts[tok]++
	}

	// Stable sort on frequency keeps first-seen order for ties.
	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})

	limit := e.cfg.TopN
	if limit > len(order) {
		limit = len(order)
	}

	top := make([]Keyword, 0, limit)
	densitySum := 0.0
	for _, word := range order[:limit] {
		freq := counts[word]
		d := 100 * float64(freq) / float64(total)
		densitySum += d
		top = append(top, Keyword{
			Word:      word,
			Frequency: freq,
			Density:   textkit.Round2(d),
			Tier:      e.classify(d),
		})
	}

	report := Report{
		TotalWords:     total,
		UniqueKeywords: len(order),
		TopKeywords:    top,
		AverageDensity: textkit.Round2(densitySum / float64(limit)),
	}
	if len(top) > 0 {
		report.TopDensity = top[0].Density
	}
	return report
}

func (e Engine) classify(d float64) Tier {
	switch {
	case d >= e.cfg.HighThreshold:
		return TierHigh
	case d >= e.cfg.OptimalThreshold:
		return TierOptimal
	case d >= e.cfg.GoodThreshold:
		return TierGood
	default:
		return TierLow
	}
}
