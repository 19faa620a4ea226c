package solver

import (
	"github.com/YashubuStudio/countdown-solver-go/internal/expr"
)

// generator enumerates reachable values for sub-multisets of one puzzle.
// It is owned by a single Solve call and dropped when that call returns.
type generator struct {
	target    int
	earlyExit EarlyExit
	size      int // size of the full input

	cache map[string][]expr.Expr
	stats Stats
}

func newGenerator(target, size int, earlyExit EarlyExit) *generator {
	return &generator{
		target:    target,
		earlyExit: earlyExit,
		size:      size,
		cache:     make(map[string][]expr.Expr),
	}
}

// generate returns the distinct-by-value expressions that use every number in
// nums exactly once. The first expression found for a value wins.
func (g *generator) generate(nums []int) []expr.Expr {
	if len(nums) == 1 {
		return []expr.Expr{expr.Leaf(nums[0])}
	}

	key := cacheKey(nums)
	if cached, ok := g.cache[key]; ok {
		g.stats.CacheHits++
		return cached
	}

	stopOnTarget := g.earlyExit == EarlyExitSubsets || len(nums) == g.size
	seen := make(map[int]struct{})
	var out []expr.Expr

	for left, right := range partitions(nums) {
		ls := g.generate(left)
		rs := g.generate(right)
		for _, L := range ls {
			for _, R := range rs {
				for _, e := range expr.Combine(L, R) {
					g.stats.Combinations++
					if _, exists := seen[e.Val]; exists {
						continue
					}
					seen[e.Val] = struct{}{}
					out = append(out, e)
					if stopOnTarget && e.Val == g.target {
						g.store(key, out)
						return out
					}
				}
			}
		}
	}
	g.store(key, out)
	return out
}

func (g *generator) store(key string, es []expr.Expr) {
	g.cache[key] = es
	g.stats.CacheEntries = len(g.cache)
}
