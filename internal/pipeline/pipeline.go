package pipeline

import (
	"runtime"
	"sync"
)

// Analyzer processes one input file path.
type Analyzer func(path string) error

// AnalyzeFiles fans the given paths out over a bounded worker pool and
// collects every error. Each analysis is independent, so order of completion
// is unspecified.
func AnalyzeFiles(paths []string, workers int, fn Analyzer) []error {
	if len(paths) == 0 || fn == nil {
		return nil
	}
	if workers <= 0 {
		workers = runtime.NumCPU()
		if workers < 1 {
			workers = 1
		}
	}

	jobs := make(chan string)
	errs := make(chan error, len(paths))
	var wg sync.WaitGroup

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for path := range jobs {
				if err := fn(path); err != nil {
					errs <- err
				}
			}
		}()
	}

	for _, path := range paths {
		jobs <- path
	}
	close(jobs)
	wg.Wait()
	close(errs)

	out := make([]error, 0, len(errs))
	for err := range errs {
		out = append(out, err)
	}
	return out
}
