package match

import (
	"fmt"
	"sort"
	"strings"
	"unicode"

	goahocorasick "github.com/anknown/ahocorasick"
)

// PhraseMatcher counts case-insensitive occurrences of a closed list of literal
// phrases inside raw text. Matches are only counted on word boundaries, so a
// phrase like "um" does not fire inside "number".
type PhraseMatcher struct {
	machine *goahocorasick.Machine
	empty   bool
}

// NewPhraseMatcher builds an Aho-Corasick automaton over the lowercased phrases.
func NewPhraseMatcher(phrases []string) (*PhraseMatcher, error) {
	cleaned := make([][]rune, 0, len(phrases))
	for _, p := range phrases {
		p = strings.ToLower(strings.TrimSpace(p))
		if p == "" {
			continue
		}
		cleaned = append(cleaned, []rune(p))
	}
	if len(cleaned) == 0 {
		return &PhraseMatcher{empty: true}, nil
	}
	// The underlying double-array trie expects its keyword set sorted.
	sort.Slice(cleaned, func(i, j int) bool {
		return string(cleaned[i]) < string(cleaned[j])
	})

	m := new(goahocorasick.Machine)
	if err := m.Build(cleaned); err != nil {
		return nil, fmt.Errorf("build phrase automaton: %w", err)
	}
	return &PhraseMatcher{machine: m}, nil
}

// Count returns the number of boundary-respecting phrase occurrences in text.
func (pm *PhraseMatcher) Count(text string) int {
	return len(pm.Find(text))
}

// Find returns every matched phrase, lowercased, in match order.
func (pm *PhraseMatcher) Find(text string) []string {
	if pm.empty || text == "" {
		return nil
	}
	runes := []rune(strings.ToLower(text))
	terms := pm.machine.MultiPatternSearch(runes, false)

	var out []string
	for _, term := range terms {
		start := term.Pos
		end := start + len(term.Word)
		if start > 0 && isWordRune(runes[start-1]) {
			continue
		}
		if end < len(runes) && isWordRune(runes[end]) {
			continue
		}
		out = append(out, string(term.Word))
	}
	return out
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}
