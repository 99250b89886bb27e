package textkit

import (
	"math"
	"regexp"
	"strings"
)

var punctStripper = regexp.MustCompile(`[^a-z0-9\s]+`)
var multiSpace = regexp.MustCompile(`\s+`)
var sentenceSplit = regexp.MustCompile(`[.!?]+`)

// Tokenize lowercases the text, replaces punctuation with whitespace, splits on
// whitespace and keeps tokens of at least minRunes characters. An empty result
// is valid and must be tolerated by callers.
func Tokenize(text string, minRunes int) []string {
	normalized := Normalize(text)
	if normalized == "" {
		return nil
	}
	fields := strings.Fields(normalized)
	out := make([]string, 0, len(fields))
	for _, f := range fields {
		if len([]rune(f)) >= minRunes {
			out = append(out, f)
		}
	}
	return out
}

// Normalize lowercases text and collapses everything that is not a letter,
// digit or whitespace into single spaces.
func Normalize(text string) string {
	text = strings.ToLower(text)
	text = punctStripper.ReplaceAllString(text, " ")
	return strings.TrimSpace(multiSpace.ReplaceAllString(text, " "))
}

// Sentences splits raw text on sentence terminators and drops empty fragments.
// Case and punctuation inside each sentence are preserved.
func Sentences(text string) []string {
	parts := sentenceSplit.Split(text, -1)
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

// MeanStd returns the mean and population standard deviation of values.
func MeanStd(values []float64) (mean, sd float64) {
	if len(values) == 0 {
		return 0, 0
	}
	for _, v := range values {
		mean += v
	}
	mean /= float64(len(values))
	if len(values) == 1 {
		return mean, 0
	}
	variance := 0.0
	for _, v := range values {
		d := v - mean
		variance += d * d
	}
	variance /= float64(len(values))
	return mean, math.Sqrt(variance)
}

// Round2 rounds to two decimal places for report presentation.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// Clamp01 bounds v to the unit interval.
func Clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
