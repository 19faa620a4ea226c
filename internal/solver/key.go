package solver

import (
	"slices"
	"strconv"
	"strings"
)

// cacheKey encodes the sorted values of nums, comma separated, so that
// permutations of the same multiset share one entry and "1,23" never collides
// with "12,3".
func cacheKey(nums []int) string {
	sorted := slices.Clone(nums)
	slices.Sort(sorted)
	var sb strings.Builder
	for i, v := range sorted {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(strconv.Itoa(v))
	}
	return sb.String()
}
