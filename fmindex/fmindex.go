/*
Package fmindex implements an uncompressed FM-index: exact and approximate
substring search over a fixed alphabet in time proportional to the pattern
length, independent of text length.
*/
package fmindex

import (
	"fmt"

	"github.com/bebop/fmindex/alphabet"
)

// Range is a half-open BWT row range [Start, End) representing every row
// whose corresponding suffix begins with some fixed string.
type Range struct {
	Start, End int
}

// Width returns the number of rows in the range, i.e. the number of
// occurrences of the string the range represents.
func (r Range) Width() int {
	return r.End - r.Start
}

// FMIndex is an uncompressed BWT-based full-text index: the LF-mapping,
// backward search, and sparse-suffix-array-based position recovery.
type FMIndex struct {
	alphabet    *alphabet.Alphabet
	n           int // len(text), not counting the sentinel
	bwt         []int
	c           []int
	occ         *OccurrenceTable
	sa          *SparseSuffixArray
	sentinelPos int

	// debug gates verbose LF-step tracing, off by default. There is no
	// logging dependency here; this mirrors the teacher's boolean-gated
	// fmt.Println tracing rather than a structured logger.
	debug bool
}

// New builds an FMIndex over text using alpha, sampling every f-th suffix
// array entry. Suffix array construction is treated as a borrowed
// capability (see suffixarray.go); everything downstream of it follows
// spec.md §4.4's build steps directly.
func New(text []byte, alpha *alphabet.Alphabet, sparsityFactor int) (*FMIndex, error) {
	if len(text) == 0 {
		return nil, ErrEmptyText
	}
	if sparsityFactor < 1 {
		return nil, ErrInvalidSparsityFactor
	}

	encoded, err := alpha.EncodeAll(text)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedAlphabet, err)
	}

	sa := buildSuffixArray(encoded)
	bwt, sentinelPos := buildBWT(encoded, sa)
	c := buildCTable(bwt, sentinelPos, alpha.Len())
	occ := buildOccurrenceTable(bwt, sentinelPos, alpha.Len())

	sparse, err := buildSparseSuffixArray(sa, sparsityFactor)
	if err != nil {
		return nil, err
	}

	return &FMIndex{
		alphabet:    alpha,
		n:           len(encoded),
		bwt:         bwt,
		c:           c,
		occ:         occ,
		sa:          sparse,
		sentinelPos: sentinelPos,
	}, nil
}

// Len returns the number of symbols in the original text (excluding the
// virtual sentinel).
func (f *FMIndex) Len() int {
	return f.n
}

// Alphabet returns the alphabet this index was built with.
func (f *FMIndex) Alphabet() *alphabet.Alphabet {
	return f.alphabet
}

// SetDebug toggles verbose LF-step tracing to stdout.
func (f *FMIndex) SetDebug(debug bool) {
	f.debug = debug
}

func (f *FMIndex) printLFDebug(k, next int) {
	if !f.debug {
		return
	}
	fmt.Printf("fmindex: LF(%d) = %d\n", k, next)
}

// LF returns the row-to-row function in the sorted-rotations matrix: from
// row k, the row whose first symbol equals BWT[k].
func (f *FMIndex) LF(k int) int {
	if k == f.sentinelPos {
		f.printLFDebug(k, 0)
		return 0
	}
	symbol := f.bwt[k]
	next := f.c[symbol] + f.occ.occ(symbol, k)
	f.printLFDebug(k, next)
	return next
}

// locate recovers the original text position of BWT row k by LF-stepping
// until a sampled suffix-array entry is reached.
func (f *FMIndex) locate(k int) int {
	i, j := k, 0
	for !f.sa.contains(i) {
		i = f.LF(i)
		j++
	}
	return f.sa.lookup(i) + j
}

// Locate recovers the original text position of BWT row k. It recovers
// from any internal precondition panic (e.g. an out-of-range row) and
// surfaces it as an error rather than crashing the caller.
func (f *FMIndex) Locate(k int) (pos int, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("fmindex: locate(%d): %v", k, r)
		}
	}()
	return f.locate(k), nil
}

// addCharLeft computes the BWT range for c·w given the range for w.
func (f *FMIndex) addCharLeft(c int, in Range) (Range, bool) {
	out := Range{
		Start: f.c[c] + f.occ.occ(c, in.Start),
		End:   f.c[c] + f.occ.occ(c, in.End),
	}
	return out, out.Width() > 0
}

// fullRange returns the BWT range spanning every row, [0, n+1).
func (f *FMIndex) fullRange() Range {
	return Range{Start: 0, End: f.n + 1}
}

// ExactMatch returns every text position at which pattern occurs, in
// unspecified order. An empty (non-nil-distinct) result means no match.
func (f *FMIndex) ExactMatch(pattern *Pattern) []int {
	r := f.fullRange()
	for i := 0; i < pattern.Len(); i++ {
		next, ok := f.addCharLeft(pattern.At(i), r)
		if !ok {
			return nil
		}
		r = next
	}

	positions := make([]int, 0, r.Width())
	for i := r.Start; i < r.End; i++ {
		positions = append(positions, f.locate(i))
	}
	return positions
}
