// Package bits provides the bit-sequence type shared by all reconciliation
// stages, together with random and deterministic bit generation.
//
// A Bits value stores one bit per byte (0 or 1). The codes in this library
// are seven bits wide, so a packed representation would save nothing and cost
// an index translation on every matrix operation.
package bits

import (
	"crypto/rand"
	"io"
	"strings"

	qerrors "github.com/sara-star-quant/qkd-go/internal/errors"
)

// Bits is an ordered bit sequence, one bit per element, values 0 or 1.
type Bits []uint8

// New returns an all-zero bit sequence of length n.
func New(n int) Bits {
	return make(Bits, n)
}

// Clone returns an independent copy of b.
func (b Bits) Clone() Bits {
	c := make(Bits, len(b))
	copy(c, b)
	return c
}

// Equal reports whether b and o have identical length and content.
func (b Bits) Equal(o Bits) bool {
	if len(b) != len(o) {
		return false
	}
	for i := range b {
		if b[i] != o[i] {
			return false
		}
	}
	return true
}

// XOR returns the element-wise XOR of b and o.
// Returns ErrLengthMismatch if the lengths differ.
func (b Bits) XOR(o Bits) (Bits, error) {
	if len(b) != len(o) {
		return nil, qerrors.ErrLengthMismatch
	}
	out := make(Bits, len(b))
	for i := range b {
		out[i] = b[i] ^ o[i]
	}
	return out, nil
}

// Weight returns the number of set bits in b.
func (b Bits) Weight() int {
	w := 0
	for _, bit := range b {
		if bit != 0 {
			w++
		}
	}
	return w
}

// IsZero reports whether every bit of b is zero.
func (b Bits) IsZero() bool {
	for _, bit := range b {
		if bit != 0 {
			return false
		}
	}
	return true
}

// Ones returns the ascending positions of set bits in b.
func (b Bits) Ones() []int {
	pos := make([]int, 0, 4)
	for i, bit := range b {
		if bit != 0 {
			pos = append(pos, i)
		}
	}
	return pos
}

// Pad returns b extended with trailing zero bits to the next multiple of
// blockSize. If b is already aligned, b is returned unchanged.
func (b Bits) Pad(blockSize int) Bits {
	rem := len(b) % blockSize
	if rem == 0 {
		return b
	}
	out := make(Bits, len(b)+blockSize-rem)
	copy(out, b)
	return out
}

// String renders b as a compact "0101…" string.
func (b Bits) String() string {
	var sb strings.Builder
	sb.Grow(len(b))
	for _, bit := range b {
		if bit != 0 {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	return sb.String()
}

// Parse converts a "0101…" string into a bit sequence.
// Returns ErrInvalidBit on any character other than '0' or '1'.
func Parse(s string) (Bits, error) {
	out := make(Bits, len(s))
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '0':
			out[i] = 0
		case '1':
			out[i] = 1
		default:
			return nil, qerrors.NewCodeError("bits.Parse", qerrors.ErrInvalidBit)
		}
	}
	return out, nil
}

// Validate checks that every element of b is 0 or 1.
func (b Bits) Validate() error {
	for _, bit := range b {
		if bit > 1 {
			return qerrors.ErrInvalidBit
		}
	}
	return nil
}

// Random returns n cryptographically secure random bits.
// It sources entropy from the operating system's CSPRNG; an error indicates
// a critical system failure.
func Random(n int) (Bits, error) {
	raw := make([]byte, (n+7)/8)
	if _, err := io.ReadFull(rand.Reader, raw); err != nil {
		return nil, qerrors.NewCodeError("bits.Random", err)
	}
	out := make(Bits, n)
	for i := 0; i < n; i++ {
		out[i] = (raw[i/8] >> (i % 8)) & 1
	}
	return out, nil
}

// MustRandom returns n cryptographically secure random bits.
// It panics if the system's CSPRNG fails.
func MustRandom(n int) Bits {
	b, err := Random(n)
	if err != nil {
		panic("bits: failed to read from CSPRNG: " + err.Error())
	}
	return b
}
