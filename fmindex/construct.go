package fmindex

// sentinelSymbol marks the BWT slot at the sentinel row. It is never
// compared against a real alphabet index; callers must check the row
// against the stored sentinel position before reading this value.
const sentinelSymbol = -1

// buildBWT derives the Burrows-Wheeler transform of text from its suffix
// array. text holds already alphabet-encoded symbols (no sentinel); sa has
// length len(text)+1 and is a permutation of [0, len(text)+1).
func buildBWT(text []int, sa []int) (bwt []int, sentinelPos int) {
	bwt = make([]int, len(sa))
	for i, pos := range sa {
		if pos == 0 {
			bwt[i] = sentinelSymbol
			sentinelPos = i
			continue
		}
		bwt[i] = text[pos-1]
	}
	return bwt, sentinelPos
}

// buildCTable computes the cumulative symbol counts table, reserving row 0
// of the sorted-rotations matrix for the sentinel (C[0] = 1).
func buildCTable(bwt []int, sentinelPos, sigma int) []int {
	freq := make([]int, sigma)
	for i, symbol := range bwt {
		if i == sentinelPos {
			continue
		}
		freq[symbol]++
	}

	c := make([]int, sigma)
	c[0] = 1
	for i := 1; i < sigma; i++ {
		c[i] = c[i-1] + freq[i-1]
	}
	return c
}
