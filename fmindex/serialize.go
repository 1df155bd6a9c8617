package fmindex

import (
	"bytes"
	"encoding/gob"
	"fmt"

	"github.com/bebop/fmindex/alphabet"
	"github.com/bebop/fmindex/bitvector"
	"lukechampine.com/blake3"
)

// No on-disk format is mandated by spec.md §6; this picks encoding/gob for
// the field layout (see DESIGN.md for why no third-party pack library
// covers this) and stamps a BLAKE3 checksum ahead of the payload so
// Deserialize can detect truncation or corruption before trusting any
// decoded field sizes.

const checksumSize = 32

type serializedIndex struct {
	AlphabetSymbols []byte
	N               int
	BWT             []int
	SentinelPos     int
	C               []int
	OccWords        [][]uint64
	SparsityFactor  int
	PresentN        int
	PresentWords    []uint64
	Stored          []int
}

// Serialize encodes idx to a length-stable byte stream preserving every
// field needed to reconstruct it: the BWT, C table, sparse SA with its
// presence bitvector, and the occurrence table's bitvectors.
func Serialize(idx *FMIndex) ([]byte, error) {
	s := serializedIndex{
		AlphabetSymbols: idx.alphabet.Symbols(),
		N:               idx.n,
		BWT:             idx.bwt,
		SentinelPos:     idx.sentinelPos,
		C:               idx.c,
		SparsityFactor:  idx.sa.factor,
		PresentN:        idx.sa.present.Len(),
		PresentWords:    idx.sa.present.Words(),
		Stored:          idx.sa.stored,
	}

	s.OccWords = make([][]uint64, len(idx.occ.v))
	for i, bv := range idx.occ.v {
		s.OccWords[i] = bv.Words()
	}

	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(&s); err != nil {
		return nil, fmt.Errorf("fmindex: serialize: %w", err)
	}

	payload := buf.Bytes()
	sum := blake3.Sum256(payload)

	out := make([]byte, 0, checksumSize+len(payload))
	out = append(out, sum[:]...)
	out = append(out, payload...)
	return out, nil
}

// Deserialize decodes a byte stream produced by Serialize back into an
// FMIndex over alpha. It returns ErrDeserializationMismatch if the checksum
// fails or the decoded alphabet/field sizes disagree with alpha.
func Deserialize(data []byte, alpha *alphabet.Alphabet) (*FMIndex, error) {
	if len(data) < checksumSize {
		return nil, ErrDeserializationMismatch
	}

	wantSum := data[:checksumSize]
	payload := data[checksumSize:]
	gotSum := blake3.Sum256(payload)
	if !bytes.Equal(wantSum, gotSum[:]) {
		return nil, ErrDeserializationMismatch
	}

	var s serializedIndex
	if err := gob.NewDecoder(bytes.NewReader(payload)).Decode(&s); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDeserializationMismatch, err)
	}

	if !bytes.Equal(s.AlphabetSymbols, alpha.Symbols()) {
		return nil, ErrDeserializationMismatch
	}
	if len(s.C) != alpha.Len() || len(s.OccWords) != alpha.Len() {
		return nil, ErrDeserializationMismatch
	}

	occ := &OccurrenceTable{
		v:           make([]*bitvector.Bitvector, len(s.OccWords)),
		sentinelPos: s.SentinelPos,
	}
	for i, words := range s.OccWords {
		occ.v[i] = bitvector.FromWords(len(s.BWT), words)
	}

	sparse := &SparseSuffixArray{
		present: bitvector.FromWords(s.PresentN, s.PresentWords),
		stored:  s.Stored,
		factor:  s.SparsityFactor,
	}

	return &FMIndex{
		alphabet:    alpha,
		n:           s.N,
		bwt:         s.BWT,
		c:           s.C,
		occ:         occ,
		sa:          sparse,
		sentinelPos: s.SentinelPos,
	}, nil
}
