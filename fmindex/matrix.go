package fmindex

// BandedMatrix is an edit-distance dynamic-programming matrix confined to
// the diagonal band |i-j| <= k, used by SearchTree to bound approximate
// matches. Only the band itself is stored, packed row-major into a flat
// slice; two sentinel columns flanking the band on each row hold the
// saturation value k+1 so relaxations never propagate outside it.
type BandedMatrix struct {
	data      []int
	k         int
	bandWidth int // 2k+3 cells per row
	n         int // total rows, valid indices [0, n)
	m         int // total columns, valid indices [0, m)
}

// NewBandedMatrix allocates a band for a pattern of length patternLen and
// edit-distance budget k.
func NewBandedMatrix(patternLen, k int) *BandedMatrix {
	n := patternLen + k + 1
	m := patternLen + 1
	bm := &BandedMatrix{
		k:         k,
		bandWidth: 2*k + 3,
		n:         n,
		m:         m,
		data:      make([]int, (patternLen+k+1)*(2*k+3)),
	}
	bm.initialize()
	return bm
}

// offset maps [i][j] to its position in the packed band. j must satisfy
// |j-i| <= k+1 (the band plus its one-cell sentinel margin on each side).
func (bm *BandedMatrix) offset(i, j int) int {
	d := j - i + bm.k + 1
	if d < 0 || d > 2*bm.k+2 {
		panic("bandedmatrix: column out of band")
	}
	return i*bm.bandWidth + d
}

func (bm *BandedMatrix) get(i, j int) int {
	return bm.data[bm.offset(i, j)]
}

func (bm *BandedMatrix) set(i, j, v int) {
	bm.data[bm.offset(i, j)] = v
}

func (bm *BandedMatrix) initialize() {
	k, n, m := bm.k, bm.n, bm.m

	for j := 0; j <= k && j < m; j++ {
		bm.set(0, j, j)
	}
	for i := 0; i <= k && i < n; i++ {
		bm.set(i, 0, i)
	}

	for i := 0; i <= k && i < n; i++ {
		bm.set(i, i+k+1, k+1)
	}

	for i := k + 1; i < m-k-1 && i < n; i++ {
		bm.set(i, i+k+1, k+1)
		bm.set(i, i-k-1, k+1)
	}

	lo := m - k - 1
	if k+1 > lo {
		lo = k + 1
	}
	for i := lo; i < n; i++ {
		bm.set(i, i-k-1, k+1)
	}
}

// firstCol and lastCol bound the real (non-sentinel) band cells of row i.
func (bm *BandedMatrix) firstCol(i int) int {
	if c := i - bm.k; c > 1 {
		return c
	}
	return 1
}

func (bm *BandedMatrix) lastCol(i int) int {
	if c := i + bm.k; c < bm.m-1 {
		return c
	}
	return bm.m - 1
}

// UpdateRow relaxes row i of the matrix against pattern P given the next
// consumed symbol c, and returns the minimum cell value in the row's band
// (row_min), used by SearchTree to decide whether to keep descending.
func (bm *BandedMatrix) UpdateRow(p []int, i, c int) int {
	first, last := bm.firstCol(i), bm.lastCol(i)

	rowMin := bm.k + 1
	for j := first; j <= last; j++ {
		mismatch := 0
		if p[j-1] != c {
			mismatch = 1
		}
		sub := bm.get(i-1, j-1) + mismatch
		ins := bm.get(i, j-1) + 1
		del := bm.get(i-1, j) + 1

		v := sub
		if ins < v {
			v = ins
		}
		if del < v {
			v = del
		}
		bm.set(i, j, v)

		if v < rowMin {
			rowMin = v
		}
	}
	return rowMin
}

// At returns M[i][j]. j must fall within row i's band (including its one
// cell of sentinel margin on either side).
func (bm *BandedMatrix) At(i, j int) int {
	return bm.get(i, j)
}

// InFinalColumn reports whether row i's band reaches the last real column.
func (bm *BandedMatrix) InFinalColumn(i int) bool {
	return bm.lastCol(i) == bm.m-1
}

// FinalColumn returns M[i][m-1], the edit distance of a full-pattern
// alignment ending at text depth i. Only meaningful when InFinalColumn(i).
func (bm *BandedMatrix) FinalColumn(i int) int {
	return bm.get(i, bm.m-1)
}
