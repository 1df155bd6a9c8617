/*
Package random generates random symbol sequences over a fixed alphabet, for
use as test and fuzz fixtures.
*/
package random

import (
	"math/rand"

	"github.com/bebop/fmindex/alphabet"
)

// Sequence returns a random byte sequence of the given length drawn
// uniformly from alpha's symbols, seeded deterministically by seed.
func Sequence(alpha *alphabet.Alphabet, length int, seed int64) []byte {
	symbols := alpha.Symbols()
	rng := rand.New(rand.NewSource(seed))

	seq := make([]byte, length)
	for i := range seq {
		seq[i] = symbols[rng.Intn(len(symbols))]
	}
	return seq
}

// Pattern returns a random contiguous substring of text of the given
// length, so callers can build fixtures guaranteed to occur at least once.
func Pattern(text []byte, length int, seed int64) []byte {
	if length > len(text) {
		length = len(text)
	}
	rng := rand.New(rand.NewSource(seed))
	start := rng.Intn(len(text) - length + 1)
	return append([]byte(nil), text[start:start+length]...)
}
