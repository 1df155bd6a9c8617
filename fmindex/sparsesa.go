package fmindex

import "github.com/bebop/fmindex/bitvector"

// SparseSuffixArray retains only the suffix array entries whose text
// position is divisible by a sparsity factor f; the rest are recovered by
// LF-stepping during locate.
type SparseSuffixArray struct {
	present *bitvector.Bitvector
	stored  []int
	factor  int
}

// buildSparseSuffixArray walks sa and keeps every entry divisible by factor.
func buildSparseSuffixArray(sa []int, factor int) (*SparseSuffixArray, error) {
	if factor < 1 {
		return nil, ErrInvalidSparsityFactor
	}

	present := bitvector.New(len(sa))
	stored := make([]int, 0, len(sa)/factor+1)
	for i, pos := range sa {
		if pos%factor == 0 {
			present.Set(i, true)
			stored = append(stored, pos)
		}
	}
	present.CalculateCounts()

	return &SparseSuffixArray{present: present, stored: stored, factor: factor}, nil
}

// contains reports whether SA[i] was retained.
func (s *SparseSuffixArray) contains(i int) bool {
	return s.present.Get(i)
}

// lookup returns SA[i]. Only valid when contains(i) is true.
func (s *SparseSuffixArray) lookup(i int) int {
	return s.stored[s.present.Rank(i)]
}
