package fmindex

import "github.com/bebop/fmindex/bitvector"

// OccurrenceTable answers, for every alphabet symbol c, how many times c has
// occurred in a prefix of a BWT. It is the "wavelet-substitute": instead of
// a single wavelet tree it keeps one cumulative bitvector V_c per symbol,
// where V_c[i] = 1 iff B[i] is not the sentinel and has index <= c. occ and
// cumulative_occ then reduce to one or two rank calls.
type OccurrenceTable struct {
	v           []*bitvector.Bitvector // V_c for c in [0, sigma)
	sentinelPos int
}

// buildOccurrenceTable builds an OccurrenceTable from a BWT (as alphabet
// indices) and the row at which the sentinel sits.
func buildOccurrenceTable(bwt []int, sentinelPos, sigma int) *OccurrenceTable {
	n1 := len(bwt)
	ot := &OccurrenceTable{
		v:           make([]*bitvector.Bitvector, sigma),
		sentinelPos: sentinelPos,
	}

	for c := 0; c < sigma; c++ {
		bv := bitvector.New(n1)
		for i, symbol := range bwt {
			if i != sentinelPos && symbol <= c {
				bv.Set(i, true)
			}
		}
		bv.CalculateCounts()
		ot.v[c] = bv
	}

	return ot
}

// occ returns the number of occurrences of symbol c in B[0:i), excluding
// the sentinel.
func (ot *OccurrenceTable) occ(c, i int) int {
	rankC := ot.v[c].Rank(i)
	if c == 0 {
		return rankC
	}
	return rankC - ot.v[c-1].Rank(i)
}

// cumulativeOcc returns the number of BWT positions < i whose symbol index
// is strictly less than c, including the sentinel if it falls before i.
func (ot *OccurrenceTable) cumulativeOcc(c, i int) int {
	var rank int
	if c > 0 {
		rank = ot.v[c-1].Rank(i)
	}
	if ot.sentinelPos < i {
		rank++
	}
	return rank
}
