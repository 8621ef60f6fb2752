// Package parallel partitions row ranges across goroutines for
// data-parallel pixel work.
//
// Comparison work is bounded and per-invocation: there is no long-lived
// work source, so the package fans out one goroutine per span and waits,
// rather than maintaining a persistent pool.
package parallel

import (
	"runtime"
	"sync"
)

// Span is a half-open row range [Start, End).
type Span struct {
	Start int
	End   int
}

// Len returns the number of rows in the span.
func (s Span) Len() int {
	return s.End - s.Start
}

// Spans partitions n rows into at most workers contiguous spans of
// near-equal size. If workers is 0 or negative, GOMAXPROCS is used.
// Returns nil when n <= 0. Span sizes differ by at most one row, so no
// worker is starved or overloaded on uniform per-row cost.
func Spans(n, workers int) []Span {
	if n <= 0 {
		return nil
	}
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers > n {
		workers = n
	}

	spans := make([]Span, 0, workers)
	size := n / workers
	rem := n % workers
	start := 0
	for i := 0; i < workers; i++ {
		end := start + size
		if i < rem {
			end++
		}
		spans = append(spans, Span{Start: start, End: end})
		start = end
	}
	return spans
}

// Run invokes fn(i) for every i in [0, n) and waits for all invocations to
// finish. A single unit of work runs on the calling goroutine; otherwise
// each index gets its own goroutine. fn must be safe to call concurrently
// for distinct indices.
func Run(n int, fn func(i int)) {
	if n <= 0 {
		return
	}
	if n == 1 {
		fn(0)
		return
	}

	var wg sync.WaitGroup
	wg.Add(n)
	for i := 0; i < n; i++ {
		i := i
		go func() {
			defer wg.Done()
			fn(i)
		}()
	}
	wg.Wait()
}
