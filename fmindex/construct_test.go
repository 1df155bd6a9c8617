package fmindex

import "testing"

func TestBuildBWTAndCTableMatchReference(t *testing.T) {
	encoded := []int{0, 0, 1, 3, 0, 2, 2, 2, 1, 0, 0, 3, 2, 3, 3, 1, 0, 0, 1, 2} // AACTAGGGCAATGTTCAACG

	sa := buildSuffixArray(encoded)
	bwt, sentinelPos := buildBWT(encoded, sa)

	if sentinelPos != testSentinelPos {
		t.Fatalf("sentinelPos = %d, want %d", sentinelPos, testSentinelPos)
	}
	for i := range bwt {
		if i == sentinelPos {
			continue
		}
		if bwt[i] != testBWT[i] {
			t.Errorf("bwt[%d] = %d, want %d", i, bwt[i], testBWT[i])
		}
	}

	c := buildCTable(bwt, sentinelPos, 4)
	want := []int{1, 8, 12, 17}
	for i, w := range want {
		if c[i] != w {
			t.Errorf("C[%d] = %d, want %d", i, c[i], w)
		}
	}
}
