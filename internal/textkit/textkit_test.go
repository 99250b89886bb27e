package textkit

import (
	"math"
	"reflect"
	"testing"
)

func TestTokenizeStripsPunctuationAndShortTokens(t *testing.T) {
	got := Tokenize("SEO, tools! It's great -- really great.", 3)
	want := []string{"seo", "tools", "great", "really", "great"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("unexpected tokens: %v", got)
	}
}

func TestTokenizeEmptyAfterFiltering(t *testing.T) {
	if got := Tokenize("a b c!!! ?? --", 3); len(got) != 0 {
		t.Fatalf("expected no tokens, got %v", got)
	}
	if got := Tokenize("", 3); len(got) != 0 {
		t.Fatalf("expected no tokens for empty input, got %v", got)
	}
}

func TestSentencesDropsEmptyFragments(t *testing.T) {
	got := Sentences("First one. Second one!   Third?? ")
	want := []string{"First one", "Second one", "Third"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("unexpected sentences: %v", got)
	}
	if got := Sentences("...!!!"); len(got) != 0 {
		t.Fatalf("expected no sentences, got %v", got)
	}
}

func TestMeanStd(t *testing.T) {
	mean, sd := MeanStd([]float64{2, 4, 4, 4, 5, 5, 7, 9})
	if mean != 5 {
		t.Fatalf("expected mean 5, got %f", mean)
	}
	if math.Abs(sd-2) > 1e-9 {
		t.Fatalf("expected sd 2, got %f", sd)
	}

	mean, sd = MeanStd([]float64{3})
	if mean != 3 || sd != 0 {
		t.Fatalf("single value should have zero deviation, got mean=%f sd=%f", mean, sd)
	}

	mean, sd = MeanStd(nil)
	if mean != 0 || sd != 0 {
		t.Fatalf("empty input should yield zeros, got mean=%f sd=%f", mean, sd)
	}
}

func TestRound2(t *testing.T) {
	if got := Round2(33.333333); got != 33.33 {
		t.Fatalf("expected 33.33, got %f", got)
	}
	if got := Round2(0.125); got != 0.13 {
		t.Fatalf("expected 0.13, got %f", got)
	}
}
