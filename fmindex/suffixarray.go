package fmindex

import "sort"

// buildSuffixArray computes the suffix array of encoded·$ where $ is a
// virtual sentinel smaller than every symbol in encoded (represented here
// as -1). The result has length len(encoded)+1 and is a permutation of
// [0, len(encoded)+1) sorting every suffix of encoded·$ lexicographically.
//
// Suffix array construction is treated as an externally supplied capability
// throughout this package (the rest of the index only ever consumes an
// already-built SA); this prefix-doubling builder exists only so the module
// is runnable end to end without a borrowed SA-IS/DC3 library, and is not
// tuned for large inputs.
func buildSuffixArray(encoded []int) []int {
	n := len(encoded) + 1
	text := make([]int, n)
	copy(text, encoded)
	text[n-1] = -1 // sentinel, smaller than every real symbol

	sa := make([]int, n)
	rank := make([]int, n)
	for i := 0; i < n; i++ {
		sa[i] = i
		rank[i] = text[i]
	}

	tmp := make([]int, n)
	for k := 1; ; k *= 2 {
		keyOf := func(i int) (int, int) {
			second := -2 // smaller than any real rank or the sentinel's -1
			if i+k < n {
				second = rank[i+k]
			}
			return rank[i], second
		}

		sort.Slice(sa, func(a, b int) bool {
			r1a, r2a := keyOf(sa[a])
			r1b, r2b := keyOf(sa[b])
			if r1a != r1b {
				return r1a < r1b
			}
			return r2a < r2b
		})

		tmp[sa[0]] = 0
		distinct := 1
		for i := 1; i < n; i++ {
			prevR1, prevR2 := keyOf(sa[i-1])
			curR1, curR2 := keyOf(sa[i])
			if curR1 != prevR1 || curR2 != prevR2 {
				distinct++
			}
			tmp[sa[i]] = distinct - 1
		}
		copy(rank, tmp)

		if distinct == n || k >= n {
			break
		}
	}

	return sa
}
