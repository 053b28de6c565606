// Package amplify implements the privacy-amplification step of the BB84
// pipeline: compressing a raw shared key to reduce an eavesdropper's
// information, while staying invertible given a single out-of-band seed bit.
//
// Two mutually incompatible strategies are provided behind one interface.
// ThreeBitDualXOR discards entropy by design; AdjacentXOR is lossless. They
// are selected at construction and never mixed: a key compressed by one
// cannot be recovered by the other.
//
// Neither scheme is cryptographically strong universal hashing; both are
// pedagogical linear XOR compressions.
package amplify

import (
	"github.com/sara-star-quant/qkd-go/pkg/bits"
)

// Status reports what Compress did with its input.
type Status int

const (
	// StatusApplied means the scheme compressed the input.
	StatusApplied Status = iota

	// StatusPassthrough means the input was shorter than the scheme's
	// minimum and was returned unchanged. A diagnostic, not a failure.
	StatusPassthrough
)

// String returns the status name.
func (s Status) String() string {
	switch s {
	case StatusApplied:
		return "applied"
	case StatusPassthrough:
		return "passthrough"
	default:
		return "unknown"
	}
}

// Scheme is a privacy-amplification strategy.
//
// Compress never fails: input below MinInput passes through unchanged with
// StatusPassthrough. Recover inverts Compress given the scheme's seed bit;
// what "inverts" means is scheme-specific and documented per strategy.
type Scheme interface {
	// Name returns the strategy name.
	Name() string

	// MinInput returns the minimum input length Compress operates on.
	MinInput() int

	// CompressedLen returns the output length for an input of inputLen
	// bits, assuming inputLen >= MinInput.
	CompressedLen(inputLen int) int

	// Compress derives the shortened key.
	Compress(key bits.Bits) (bits.Bits, Status)

	// Recover re-derives key material from a compressed key and the
	// out-of-band seed bit.
	Recover(compressed bits.Bits, seed uint8) bits.Bits
}
