// source.go implements a deterministic bit source backed by SHAKE-128.
//
// Simulations and tests need reproducible basis choices and channel noise;
// expanding a seed through an extendable-output function gives an unbounded,
// deterministic bit stream without hand-rolled PRNG state.
package bits

import (
	"github.com/cloudflare/circl/xof"
)

// Source produces a deterministic bit stream from a seed.
// It is not safe for concurrent use; clone per goroutine instead.
type Source struct {
	x xof.XOF

	// One byte of XOF output yields eight bits.
	buf  byte
	left int
}

// NewSource creates a deterministic bit source seeded with the given bytes.
// Equal seeds yield equal streams.
func NewSource(seed []byte) *Source {
	x := xof.SHAKE128.New()
	_, _ = x.Write(seed) // SHAKE write never fails
	return &Source{x: x}
}

// Bit returns the next bit of the stream.
func (s *Source) Bit() uint8 {
	if s.left == 0 {
		var b [1]byte
		_, _ = s.x.Read(b[:]) // SHAKE read never fails
		s.buf = b[0]
		s.left = 8
	}
	bit := s.buf & 1
	s.buf >>= 1
	s.left--
	return bit
}

// Bits returns the next n bits of the stream.
func (s *Source) Bits(n int) Bits {
	out := make(Bits, n)
	for i := range out {
		out[i] = s.Bit()
	}
	return out
}

// Float returns the next value in [0, 1) with 16 bits of precision.
// Used for Bernoulli draws when simulating channel noise.
func (s *Source) Float() float64 {
	var v uint32
	for i := 0; i < 16; i++ {
		v = v<<1 | uint32(s.Bit())
	}
	return float64(v) / (1 << 16)
}

// Clone returns an independent source that continues from the same state.
func (s *Source) Clone() *Source {
	return &Source{x: s.x.Clone(), buf: s.buf, left: s.left}
}
