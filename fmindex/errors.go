package fmindex

import "errors"

// Sentinel errors returned by the fallible build- and deserialization-time
// operations. Every other exported operation is total on a well-formed
// index: out-of-range positions or mismatched alphabets are programming
// errors and panic instead (see the recover in (*FMIndex).Locate).
var (
	// ErrMalformedAlphabet is returned when a text symbol has no index in
	// the alphabet the index was built with.
	ErrMalformedAlphabet = errors.New("fmindex: symbol not in alphabet")

	// ErrEmptyText is returned when constructing an index over zero symbols.
	ErrEmptyText = errors.New("fmindex: text must contain at least one symbol")

	// ErrInvalidSparsityFactor is returned when the sparsity factor is zero.
	ErrInvalidSparsityFactor = errors.New("fmindex: sparsity factor must be >= 1")

	// ErrDeserializationMismatch is returned when a persisted stream's
	// checksum, field sizes, or alphabet disagree with what was decoded.
	ErrDeserializationMismatch = errors.New("fmindex: deserialized data does not match expected layout")
)
