/*
Package alphabet provides a fixed, dense mapping between byte-like symbols
and the small index space an FM-index is built over.
*/
package alphabet

import (
	"fmt"
	"math/bits"
)

// notInAlphabet marks a byte value that has no index in a given Alphabet.
const notInAlphabet = -1

// Alphabet is a bijective mapping between an ordered set of byte symbols and
// the dense index range [0, Len()). It never assigns an index to the
// sentinel used by a BWT/FM-index: Len() counts only real symbols, and
// callers that need a sentinel track its BWT row separately (see package
// fmindex). Index and Symbol are total inverses of one another for every
// index or symbol a given Alphabet was built with.
type Alphabet struct {
	symbols []byte
	lookup  [256]int16
}

// Error reports that a symbol or index falls outside an Alphabet.
type Error struct {
	message string
}

func (e *Error) Error() string {
	return e.message
}

// New builds an Alphabet from an ordered, duplicate-free list of symbols.
// The order given determines each symbol's index, and therefore its rank
// in every downstream BWT/C-table computation.
func New(symbols []byte) (*Alphabet, error) {
	if len(symbols) == 0 {
		return nil, &Error{"alphabet must contain at least one symbol"}
	}
	if len(symbols) > 1<<15 {
		return nil, &Error{fmt.Sprintf("alphabet size %d exceeds the maximum supported size %d", len(symbols), 1<<15)}
	}

	a := &Alphabet{symbols: append([]byte(nil), symbols...)}
	for i := range a.lookup {
		a.lookup[i] = notInAlphabet
	}

	for i, s := range symbols {
		if a.lookup[s] != notInAlphabet {
			return nil, &Error{fmt.Sprintf("duplicate symbol %q in alphabet", s)}
		}
		a.lookup[s] = int16(i)
	}

	return a, nil
}

// Index returns the dense index of a symbol. It returns a MalformedAlphabet
// style error when c is not part of the alphabet.
func (a *Alphabet) Index(c byte) (int, error) {
	idx := a.lookup[c]
	if idx == notInAlphabet {
		return 0, &Error{fmt.Sprintf("symbol %q not in alphabet", c)}
	}
	return int(idx), nil
}

// Symbol returns the byte symbol at a given dense index.
func (a *Alphabet) Symbol(i int) (byte, error) {
	if i < 0 || i >= len(a.symbols) {
		return 0, &Error{fmt.Sprintf("index %d not in alphabet", i)}
	}
	return a.symbols[i], nil
}

// EncodeAll maps every byte of seq to its dense index. It fails on the
// first symbol not present in the alphabet.
func (a *Alphabet) EncodeAll(seq []byte) ([]int, error) {
	encoded := make([]int, len(seq))
	for i, c := range seq {
		idx, err := a.Index(c)
		if err != nil {
			return nil, fmt.Errorf("symbol %q at position %d not in alphabet", c, i)
		}
		encoded[i] = idx
	}
	return encoded, nil
}

// Len returns Sigma, the number of real symbols in the alphabet.
func (a *Alphabet) Len() int {
	return len(a.symbols)
}

// Bits returns ceil(log2(Sigma)), the number of bits needed to represent any
// index in this alphabet.
func (a *Alphabet) Bits() int {
	if len(a.symbols) <= 1 {
		return 0
	}
	return bits.Len(uint(len(a.symbols) - 1))
}

// Symbols returns the ordered list of symbols backing this alphabet.
func (a *Alphabet) Symbols() []byte {
	return append([]byte(nil), a.symbols...)
}

// DNA, RNA, and Protein are the conventional small alphabets used by the
// construction glue's test fixtures and by callers without a custom
// alphabet of their own.
var (
	DNA, _     = New([]byte{'A', 'C', 'G', 'T'})
	RNA, _     = New([]byte{'A', 'C', 'G', 'U'})
	Protein, _ = New([]byte("ACDEFGHIKLMNPQRSTVWY"))
)
