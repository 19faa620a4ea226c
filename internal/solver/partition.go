package solver

import (
	"iter"
	"math/bits"
)

// partitions yields every split of nums into two non-empty halves. Bit i of
// the mask puts nums[i] on the left. Masks whose left side is larger than the
// right are skipped since their mirror is visited too; equal-sized splits still
// come up twice, which value dedup absorbs.
func partitions(nums []int) iter.Seq2[[]int, []int] {
	return func(yield func(left, right []int) bool) {
		n := len(nums)
		if n < 2 {
			return
		}
		full := uint64(1)<<n - 1
		for mask := uint64(1); mask < full; mask++ {
			lc := bits.OnesCount64(mask)
			if lc > n-lc {
				continue
			}
			left := make([]int, 0, lc)
			right := make([]int, 0, n-lc)
			for i, v := range nums {
				if mask&(1<<i) != 0 {
					left = append(left, v)
				} else {
					right = append(right, v)
				}
			}
			if !yield(left, right) {
				return
			}
		}
	}
}
