// Package solver finds the arithmetic expression over a multiset of numbers
// that lands closest to a target, in the style of the Countdown numbers game.
//
// The search partitions the numbers every possible way, recursively collects
// every value each part can reach, combines the parts with + - * / and caches
// the reachable values per sorted multiset. A Solver is safe for concurrent
// use: each Solve call builds its own cache.
package solver

import (
	"fmt"
	"log/slog"
	"math/bits"
	"time"

	"github.com/YashubuStudio/countdown-solver-go/internal/expr"
)

// AdvisoryLimit is the largest input number the classic game deals. Larger
// numbers are accepted but reported in Result.Advisories.
const AdvisoryLimit = 100

// maxNumbers bounds the input size so partition masks fit in a uint64.
const maxNumbers = 63

// Stats describes how much work one Solve call did.
type Stats struct {
	CacheEntries int
	CacheHits    int
	Combinations int
}

// Result is the best expression found by Solve.
type Result struct {
	Value      int
	Expression string
	Distance   int
	Elapsed    time.Duration
	Exact      bool

	Advisories []string
	Stats      Stats
}

// ElapsedMilliseconds returns Elapsed in whole milliseconds.
func (r Result) ElapsedMilliseconds() int64 { return r.Elapsed.Milliseconds() }

// Solver solves Countdown numbers puzzles.
type Solver struct {
	logger    *slog.Logger
	earlyExit EarlyExit
	subsets   bool
}

// New returns a Solver configured by opts.
func New(opts ...Option) *Solver {
	s := &Solver{logger: discardLogger()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Solve searches for the expression over numbers closest to target. An exact
// match ends the search immediately; otherwise the first candidate with the
// smallest distance wins, so the order of numbers can change which of several
// equally close expressions is returned.
func (s *Solver) Solve(target int, numbers []int) (*Result, error) {
	if err := validate(target, numbers); err != nil {
		return nil, err
	}
	advisories := advise(numbers)
	for _, a := range advisories {
		s.logger.Warn(a)
	}

	start := time.Now()
	g := newGenerator(target, len(numbers), s.earlyExit)
	p := picker{target: target, bestDistance: -1}

	if s.subsets {
		full := uint64(1)<<len(numbers) - 1
		for mask := uint64(1); mask <= full && !p.exact(); mask++ {
			p.consider(g.generate(subset(numbers, mask)))
		}
	} else {
		p.consider(g.generate(numbers))
	}
	elapsed := time.Since(start)

	if p.bestDistance < 0 {
		return nil, newError(KindInternalInvariant, "no candidates generated for %v", numbers)
	}

	res := &Result{
		Value:      p.best.Val,
		Expression: p.best.Repr,
		Distance:   p.bestDistance,
		Elapsed:    elapsed,
		Exact:      p.bestDistance == 0,
		Advisories: advisories,
		Stats:      g.stats,
	}
	s.logger.Debug("Search finished.",
		"target", target,
		"numbers", numbers,
		"value", res.Value,
		"distance", res.Distance,
		"cache_entries", res.Stats.CacheEntries,
		"cache_hits", res.Stats.CacheHits,
		"combinations", res.Stats.Combinations,
		"elapsed", elapsed,
	)
	return res, nil
}

// picker keeps the closest candidate seen so far.
type picker struct {
	target       int
	best         expr.Expr
	bestDistance int // -1 until a candidate is seen
}

func (p *picker) exact() bool { return p.bestDistance == 0 }

func (p *picker) consider(cands []expr.Expr) {
	for _, c := range cands {
		d := abs(p.target - c.Val)
		if p.bestDistance < 0 || d < p.bestDistance {
			p.best, p.bestDistance = c, d
		}
		if d == 0 {
			return
		}
	}
}

func validate(target int, numbers []int) error {
	if target <= 0 {
		return newError(KindInvalidTarget, "target must be a positive integer, got %d", target)
	}
	if len(numbers) == 0 {
		return newError(KindInvalidNumbers, "at least one number is required")
	}
	if len(numbers) > maxNumbers {
		return newError(KindInvalidNumbers, "at most %d numbers are supported, got %d", maxNumbers, len(numbers))
	}
	for i, n := range numbers {
		if n <= 0 {
			return newError(KindInvalidNumbers, "number %d must be positive, got %d", i+1, n)
		}
		if n > expr.MaxValue {
			return newError(KindInvalidNumbers, "number %d exceeds %d, got %d", i+1, expr.MaxValue, n)
		}
	}
	return nil
}

func advise(numbers []int) []string {
	var out []string
	for _, n := range numbers {
		if n > AdvisoryLimit {
			out = append(out, fmt.Sprintf("number %d is larger than %d; the classic game never deals it", n, AdvisoryLimit))
		}
	}
	return out
}

func subset(nums []int, mask uint64) []int {
	out := make([]int, 0, bits.OnesCount64(mask))
	for i, v := range nums {
		if mask&(1<<i) != 0 {
			out = append(out, v)
		}
	}
	return out
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
