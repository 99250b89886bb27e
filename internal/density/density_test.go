package density

import (
	"fmt"
	"reflect"
	"testing"
)

func TestAnalyzeDenseRepeatedKeywords(t *testing.T) {
	engine := NewEngine(DefaultConfig())
	report := engine.Analyze("seo seo seo tools tools content content content content analysis")

	if report.TotalWords != 10 {
		t.Fatalf("expected 10 total words, got %d", report.TotalWords)
	}
	if report.UniqueKeywords != 4 {
		t.Fatalf("expected 4 unique keywords, got %d", report.UniqueKeywords)
	}

	byWord := map[string]Keyword{}
	for _, k := range report.TopKeywords {
		byWord[k.Word] = k
	}

	seo := byWord["seo"]
	if seo.Frequency != 3 || seo.Density != 30.0 || seo.Tier != TierHigh {
		t.Fatalf("unexpected seo record: %+v", seo)
	}
	content := byWord["content"]
	if content.Frequency != 4 || content.Density != 40.0 || content.Tier != TierHigh {
		t.Fatalf("unexpected content record: %+v", content)
	}

	if report.TopKeywords[0].Word != "content" {
		t.Fatalf("expected content ranked first, got %s", report.TopKeywords[0].Word)
	}
	if report.TopDensity != 40.0 {
		t.Fatalf("expected top density 40.0, got %f", report.TopDensity)
	}
	// (40 + 30 + 20 + 10) / 4
	if report.AverageDensity != 25.0 {
		t.Fatalf("expected average density 25.0, got %f", report.AverageDensity)
	}
}

func TestAnalyzeDegenerateInput(t *testing.T) {
	engine := NewEngine(DefaultConfig())
	for _, input := range []string{"", "a b c", "?!... --- !!!"} {
		report := engine.Analyze(input)
		if report.TotalWords != 0 || report.UniqueKeywords != 0 ||
			len(report.TopKeywords) != 0 || report.AverageDensity != 0 || report.TopDensity != 0 {
			t.Fatalf("expected all-zero report for %q, got %+v", input, report)
		}
	}
}

func TestTierBoundariesInclusiveOnLowerBound(t *testing.T) {
	engine := NewEngine(DefaultConfig())

	cases := []struct {
		frequency int
		total     int
		want      Tier
	}{
		{1, 200, TierLow},      // 0.5%
		{1, 100, TierGood},     // exactly 1.00%
		{2, 100, TierOptimal},  // exactly 2.00%
		{3, 100, TierOptimal},  // 3.00%
		{4, 100, TierHigh},     // exactly 4.00%
		{10, 100, TierHigh},    // 10.00%
	}

	for _, tc := range cases {
		tokens := make([]string, 0, tc.total)
		for i := 0; i < tc.frequency; i++ {
			tokens = append(tokens, "target")
		}
		for i := len(tokens); i < tc.total; i++ {
			tokens = append(tokens, fmt.Sprintf("filler%04d", i))
		}

		report := engine.AnalyzeTokens(tokens)
		if report.TopKeywords[0].Word != "target" {
			t.Fatalf("expected target ranked first for freq=%d", tc.frequency)
		}
		if got := report.TopKeywords[0].Tier; got != tc.want {
			t.Fatalf("freq=%d total=%d: expected tier %s, got %s", tc.frequency, tc.total, tc.want, got)
		}
	}
}

func TestFrequenciesSumToTotalWords(t *testing.T) {
	engine := NewEngine(DefaultConfig())
	report := engine.Analyze("alpha beta alpha gamma beta alpha delta epsilon gamma zeta")

	sum := 0
	for _, k := range report.TopKeywords {
		sum += k.Frequency
	}
	if sum != report.TotalWords {
		t.Fatalf("frequencies sum to %d, want %d", sum, report.TotalWords)
	}
}

func TestTopKeywordsBoundedAndSorted(t *testing.T) {
	engine := NewEngine(DefaultConfig())

	tokens := make([]string, 0, 120)
	for i := 0; i < 30; i++ {
		// Descending frequencies so the ranking is unambiguous.
		word := fmt.Sprintf("word%02d", i)
		for j := 0; j < 30-i; j++ {
			tokens = append(tokens, word)
		}
	}

	report := engine.AnalyzeTokens(tokens)
	if len(report.TopKeywords) != 20 {
		t.Fatalf("expected 20 keywords, got %d", len(report.TopKeywords))
	}
	for i := 1; i < len(report.TopKeywords); i++ {
		if report.TopKeywords[i].Frequency > report.TopKeywords[i-1].Frequency {
			t.Fatalf("frequencies not non-increasing at rank %d", i)
		}
	}
	if report.UniqueKeywords != 30 {
		t.Fatalf("expected 30 unique keywords, got %d", report.UniqueKeywords)
	}
}

func TestTieBreakPreservesFirstSeenOrder(t *testing.T) {
	engine := NewEngine(DefaultConfig())
	report := engine.AnalyzeTokens([]string{"zebra", "apple", "zebra", "apple", "mango"})

	words := []string{report.TopKeywords[0].Word, report.TopKeywords[1].Word, report.TopKeywords[2].Word}
	if !reflect.DeepEqual(words, []string{"zebra", "apple", "mango"}) {
		t.Fatalf("unexpected tie-break order: %v", words)
	}
}

func TestAnalyzeIdempotent(t *testing.T) {
	engine := NewEngine(DefaultConfig())
	text := "content marketing depends on consistent keyword usage across content sections"
	first := engine.Analyze(text)
	second := engine.Analyze(text)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("expected identical reports, got %+v vs %+v", first, second)
	}
}
