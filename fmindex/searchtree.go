package fmindex

import "fmt"

// frontierEntry is a (range, depth, incoming symbol) triple: "after
// descending depth symbols of the implicit suffix trie, we stand at BWT
// range range having just consumed symbol incoming."
type frontierEntry struct {
	r        Range
	depth    int
	incoming int
}

// Occurrence records a BWT range accepted by an approximate match, along
// with the depth and last symbol consumed to reach it.
type Occurrence struct {
	Range Range
	Depth int
	Last  int
}

// SearchTree is a DFS traversal of the suffix-trie (implicit in an
// FMIndex), paired with a BandedMatrix to bound edit distance. It holds a
// read-only, non-owning reference to its FMIndex; the FMIndex is never
// aware of the tree.
type SearchTree struct {
	index *FMIndex
	sigma int
	debug bool
}

// NewSearchTree builds a SearchTree over index.
func NewSearchTree(index *FMIndex) *SearchTree {
	return &SearchTree{index: index, sigma: index.Alphabet().Len()}
}

// SetDebug toggles verbose frontier tracing to stdout.
func (t *SearchTree) SetDebug(debug bool) {
	t.debug = debug
}

func (t *SearchTree) extendSearchSpace(frontier []frontierEntry, r Range, depth int) []frontierEntry {
	for c := 0; c < t.sigma; c++ {
		newRange, ok := t.index.addCharLeft(c, r)
		if !ok {
			continue
		}
		frontier = append(frontier, frontierEntry{r: newRange, depth: depth + 1, incoming: c})
	}
	return frontier
}

// approximateMatch runs the DFS described in spec.md §4.7: p holds the
// pattern in physical (left-to-right) order. Since the DFS extends to the
// left, the BandedMatrix is fed p reversed, so depth 1 meets p's last symbol.
// The threshold rule is the one spec.md §9 commits to: keep descending
// while row_min <= k (and the matrix has a next row), accept when
// final_column(d) <= k.
func (t *SearchTree) approximateMatch(p []int, k int) []Occurrence {
	rev := make([]int, len(p))
	for i, s := range p {
		rev[len(p)-1-i] = s
	}
	p = rev

	matrix := NewBandedMatrix(len(p), k)

	var frontier []frontierEntry
	frontier = t.extendSearchSpace(frontier, t.index.fullRange(), 0)

	var hits []Occurrence
	for len(frontier) > 0 {
		last := len(frontier) - 1
		entry := frontier[last]
		frontier = frontier[:last]

		rowMin := matrix.UpdateRow(p, entry.depth, entry.incoming)
		if t.debug {
			fmt.Printf("searchtree: depth=%d incoming=%d row_min=%d\n", entry.depth, entry.incoming, rowMin)
		}

		if rowMin <= k && entry.depth+1 < matrix.n {
			frontier = t.extendSearchSpace(frontier, entry.r, entry.depth)
		}

		if matrix.InFinalColumn(entry.depth) && matrix.FinalColumn(entry.depth) <= k {
			hits = append(hits, Occurrence{Range: entry.r, Depth: entry.depth, Last: entry.incoming})
		}
	}

	return hits
}

// ApproximateMatch finds every BWT range reachable from the root within
// edit distance k of p, recovering from any internal precondition panic
// and surfacing it as an error.
func (t *SearchTree) ApproximateMatch(p []int, k int) (hits []Occurrence, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("fmindex: approximate match: %v", r)
		}
	}()
	return t.approximateMatch(p, k), nil
}

// Locate expands an Occurrence to every text position in its range.
func (t *SearchTree) Locate(occ Occurrence) []int {
	positions := make([]int, 0, occ.Range.Width())
	for i := occ.Range.Start; i < occ.Range.End; i++ {
		positions = append(positions, t.index.locate(i))
	}
	return positions
}
