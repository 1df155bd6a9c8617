package fmindex

import "github.com/bebop/fmindex/alphabet"

// RangePair couples a BWT range over T with the range over reverse(T) that
// corresponds to the reverse of the same substring. Both ranges always have
// equal width: the number of occurrences of the current string.
type RangePair struct {
	Fwd, Rev Range
}

// Width returns the shared width of the pair.
func (rp RangePair) Width() int {
	return rp.Fwd.Width()
}

// BidirectionalFMIndex extends FMIndex with a second occurrence table built
// over the reversed text, allowing a matched range to be extended from
// either end without restarting the search.
type BidirectionalFMIndex struct {
	fwd    *FMIndex
	occRev *OccurrenceTable

	debug bool
}

// NewBidirectional builds a BidirectionalFMIndex over text using alpha. The
// C table is shared between the forward and reverse orientations since it
// depends only on the multiset of symbols, identical for T and reverse(T).
func NewBidirectional(text []byte, alpha *alphabet.Alphabet, sparsityFactor int) (*BidirectionalFMIndex, error) {
	fwd, err := New(text, alpha, sparsityFactor)
	if err != nil {
		return nil, err
	}

	reversed := make([]byte, len(text))
	for i, c := range text {
		reversed[len(text)-1-i] = c
	}

	encodedRev, err := alpha.EncodeAll(reversed)
	if err != nil {
		return nil, err
	}

	saRev := buildSuffixArray(encodedRev)
	bwtRev, sentinelPosRev := buildBWT(encodedRev, saRev)
	occRev := buildOccurrenceTable(bwtRev, sentinelPosRev, alpha.Len())

	return &BidirectionalFMIndex{fwd: fwd, occRev: occRev}, nil
}

// SetDebug toggles verbose LF-step tracing to stdout.
func (b *BidirectionalFMIndex) SetDebug(debug bool) {
	b.debug = debug
	b.fwd.SetDebug(debug)
}

// Len returns the number of symbols in the original text.
func (b *BidirectionalFMIndex) Len() int {
	return b.fwd.n
}

// Forward exposes the underlying unidirectional FMIndex, e.g. to locate
// hits recorded by a search that only needs forward positions.
func (b *BidirectionalFMIndex) Forward() *FMIndex {
	return b.fwd
}

func (b *BidirectionalFMIndex) fullRangePair() RangePair {
	r := b.fwd.fullRange()
	return RangePair{Fwd: r, Rev: r}
}

// addCharLeft extends in by prepending symbol c, updating the forward range
// directly and deriving the reverse range via a cumulative-occurrence
// offset so the pair stays synchronized.
func (b *BidirectionalFMIndex) addCharLeft(c int, in RangePair) (RangePair, bool) {
	q := Range{
		Start: b.fwd.c[c] + b.fwd.occ.occ(c, in.Fwd.Start),
		End:   b.fwd.c[c] + b.fwd.occ.occ(c, in.Fwd.End),
	}

	x := b.fwd.occ.cumulativeOcc(c, in.Fwd.End) - b.fwd.occ.cumulativeOcc(c, in.Fwd.Start)
	y := q.Width()

	qRev := Range{
		Start: in.Rev.Start + x,
		End:   in.Rev.Start + x + y,
	}

	out := RangePair{Fwd: q, Rev: qRev}
	return out, out.Fwd.Width() > 0
}

// addCharRight extends in by appending symbol c, the mirror image of
// addCharLeft: it updates the reverse range directly (via the reversed
// text's occurrence table) and derives the forward range from it.
func (b *BidirectionalFMIndex) addCharRight(c int, in RangePair) (RangePair, bool) {
	qRev := Range{
		Start: b.fwd.c[c] + b.occRev.occ(c, in.Rev.Start),
		End:   b.fwd.c[c] + b.occRev.occ(c, in.Rev.End),
	}

	x := b.occRev.cumulativeOcc(c, in.Rev.End) - b.occRev.cumulativeOcc(c, in.Rev.Start)
	y := qRev.Width()

	q := Range{
		Start: in.Fwd.Start + x,
		End:   in.Fwd.Start + x + y,
	}

	out := RangePair{Fwd: q, Rev: qRev}
	return out, out.Rev.Width() > 0
}

// ExactMatch searches for pattern, extending from either end according to
// its direction. It returns the canonical empty pair and false on failure.
func (b *BidirectionalFMIndex) ExactMatch(pattern *Pattern) (RangePair, bool) {
	r := b.fullRangePair()

	for i := 0; i < pattern.Len(); i++ {
		c := pattern.At(i)

		var next RangePair
		var ok bool
		if pattern.Direction() == Forward {
			next, ok = b.addCharRight(c, r)
		} else {
			next, ok = b.addCharLeft(c, r)
		}
		if !ok {
			return RangePair{}, false
		}
		r = next
	}

	return r, true
}
