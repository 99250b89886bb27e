package pipeline

import (
	"errors"
	"strings"
	"sync"
	"testing"
)

func TestAnalyzeFilesProcessesEveryPath(t *testing.T) {
	paths := []string{"a.txt", "b.txt", "c.txt", "d.txt"}

	var mu sync.Mutex
	seen := map[string]bool{}
	errs := AnalyzeFiles(paths, 2, func(path string) error {
		mu.Lock()
		defer mu.Unlock()
		seen[path] = true
		return nil
	})

	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	if len(seen) != len(paths) {
		t.Fatalf("expected %d paths processed, got %d", len(paths), len(seen))
	}
}

func TestAnalyzeFilesCollectsErrors(t *testing.T) {
	errs := AnalyzeFiles([]string{"ok.txt", "bad.txt", "worse.txt"}, 3, func(path string) error {
		if strings.HasPrefix(path, "ok") {
			return nil
		}
		return errors.New(path)
	})

	if len(errs) != 2 {
		t.Fatalf("expected 2 errors, got %d: %v", len(errs), errs)
	}
}

func TestAnalyzeFilesEmptyInput(t *testing.T) {
	if errs := AnalyzeFiles(nil, 4, func(string) error { return nil }); errs != nil {
		t.Fatalf("expected nil for empty input, got %v", errs)
	}
	if errs := AnalyzeFiles([]string{"x"}, 4, nil); errs != nil {
		t.Fatalf("expected nil for nil analyzer, got %v", errs)
	}
}

func TestAnalyzeFilesDefaultsWorkerCount(t *testing.T) {
	errs := AnalyzeFiles([]string{"one.txt", "two.txt"}, 0, func(string) error { return nil })
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
}
