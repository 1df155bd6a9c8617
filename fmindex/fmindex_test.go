package fmindex_test

import (
	"sort"
	"testing"

	"github.com/bebop/fmindex/alphabet"
	"github.com/bebop/fmindex/fmindex"
)

const worked = "AACTAGGGCAATGTTCAACG"

func buildWorked(t *testing.T, sparsity int) *fmindex.FMIndex {
	t.Helper()
	idx, err := fmindex.New([]byte(worked), alphabet.DNA, sparsity)
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	return idx
}

func backwardPattern(t *testing.T, p string) *fmindex.Pattern {
	t.Helper()
	encoded, err := alphabet.DNA.EncodeAll([]byte(p))
	if err != nil {
		t.Fatalf("EncodeAll(%q) error: %v", p, err)
	}
	return fmindex.NewPattern(encoded, fmindex.Backward)
}

func TestEmptyTextRejected(t *testing.T) {
	if _, err := fmindex.New(nil, alphabet.DNA, 1); err != fmindex.ErrEmptyText {
		t.Errorf("New(nil, ...) error = %v, want ErrEmptyText", err)
	}
}

func TestInvalidSparsityFactorRejected(t *testing.T) {
	if _, err := fmindex.New([]byte(worked), alphabet.DNA, 0); err != fmindex.ErrInvalidSparsityFactor {
		t.Errorf("New(..., 0) error = %v, want ErrInvalidSparsityFactor", err)
	}
}

func TestMalformedAlphabetRejected(t *testing.T) {
	if _, err := fmindex.New([]byte("AACTN"), alphabet.DNA, 1); err == nil {
		t.Error("expected error building over text with a symbol outside the alphabet")
	}
}

func TestLFTable(t *testing.T) {
	idx := buildWorked(t, 1)

	want := []int{12, 8, 0, 9, 1, 2, 17, 3, 18, 13, 4, 5, 10, 14, 15, 6, 19, 11, 20, 7, 16}
	for i, w := range want {
		if got := idx.LF(i); got != w {
			t.Errorf("LF(%d) = %d, want %d", i, got, w)
		}
	}
}

func TestLocateSparsity3(t *testing.T) {
	idx := buildWorked(t, 3)

	want := []int{20, 16, 0, 9, 17, 1, 4, 10, 15, 8, 18, 2, 19, 7, 6, 5, 12, 3, 14, 11, 13}
	for i, w := range want {
		got, err := idx.Locate(i)
		if err != nil {
			t.Fatalf("Locate(%d) error: %v", i, err)
		}
		if got != w {
			t.Errorf("Locate(%d) = %d, want %d", i, got, w)
		}
	}
}

func TestExactMatchSingleSymbol(t *testing.T) {
	idx := buildWorked(t, 3)

	cases := []struct {
		symbol string
		want   []int
	}{
		{"A", []int{0, 1, 4, 9, 10, 16, 17}},
		{"C", []int{2, 8, 15, 18}},
		{"G", []int{5, 6, 7, 12, 19}},
		{"T", []int{3, 11, 13, 14}},
	}

	for _, tc := range cases {
		got := idx.ExactMatch(backwardPattern(t, tc.symbol))
		sort.Ints(got)
		if !equalInts(got, tc.want) {
			t.Errorf("ExactMatch(%q) = %v, want %v", tc.symbol, got, tc.want)
		}
	}
}

func TestExactMatchTwoSymbols(t *testing.T) {
	idx := buildWorked(t, 3)

	cases := []struct {
		pattern string
		want    []int
	}{
		{"AA", []int{0, 9, 16}},
		{"AC", []int{1, 17}},
		{"AG", []int{4}},
		{"AT", []int{10}},
	}

	for _, tc := range cases {
		got := idx.ExactMatch(backwardPattern(t, tc.pattern))
		sort.Ints(got)
		if !equalInts(got, tc.want) {
			t.Errorf("ExactMatch(%q) = %v, want %v", tc.pattern, got, tc.want)
		}
	}
}

func TestExactMatchLongerPatterns(t *testing.T) {
	idx := buildWorked(t, 3)

	cases := []struct {
		pattern string
		want    []int
	}{
		{"AACT", []int{0}},
		{"AACG", []int{16}},
		{"CCC", nil},
	}

	for _, tc := range cases {
		got := idx.ExactMatch(backwardPattern(t, tc.pattern))
		sort.Ints(got)
		if !equalInts(got, tc.want) {
			t.Errorf("ExactMatch(%q) = %v, want %v", tc.pattern, got, tc.want)
		}
	}
}

func TestLocateIndependentOfSparsity(t *testing.T) {
	dense := buildWorked(t, 1)
	sparse := buildWorked(t, 4)

	for i := 0; i < len(worked)+1; i++ {
		want, err := dense.Locate(i)
		if err != nil {
			t.Fatalf("dense Locate(%d) error: %v", i, err)
		}
		got, err := sparse.Locate(i)
		if err != nil {
			t.Fatalf("sparse Locate(%d) error: %v", i, err)
		}
		if got != want {
			t.Errorf("Locate(%d): sparsity changed result, got %d want %d", i, got, want)
		}
	}
}

func TestSerializeRoundTrip(t *testing.T) {
	idx := buildWorked(t, 3)

	data, err := fmindex.Serialize(idx)
	if err != nil {
		t.Fatalf("Serialize() error: %v", err)
	}

	restored, err := fmindex.Deserialize(data, alphabet.DNA)
	if err != nil {
		t.Fatalf("Deserialize() error: %v", err)
	}

	for i := 0; i < len(worked)+1; i++ {
		want, err := idx.Locate(i)
		if err != nil {
			t.Fatalf("Locate(%d) error: %v", i, err)
		}
		got, err := restored.Locate(i)
		if err != nil {
			t.Fatalf("restored Locate(%d) error: %v", i, err)
		}
		if got != want {
			t.Errorf("restored Locate(%d) = %d, want %d", i, got, want)
		}
	}
}

func TestDeserializeDetectsCorruption(t *testing.T) {
	idx := buildWorked(t, 3)
	data, err := fmindex.Serialize(idx)
	if err != nil {
		t.Fatalf("Serialize() error: %v", err)
	}

	corrupted := append([]byte(nil), data...)
	corrupted[40] ^= 0xff

	if _, err := fmindex.Deserialize(corrupted, alphabet.DNA); err != fmindex.ErrDeserializationMismatch {
		t.Errorf("Deserialize(corrupted) error = %v, want ErrDeserializationMismatch", err)
	}
}

func equalInts(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
