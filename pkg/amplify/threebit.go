// threebit.go implements the three-bit dual-XOR compression scheme.
package amplify

import (
	"github.com/sara-star-quant/qkd-go/internal/constants"
	"github.com/sara-star-quant/qkd-go/pkg/bits"
)

// ThreeBitDualXOR compresses each non-overlapping window (x, y, z) of three
// input bits into the pair (x⊕y, y⊕z). Trailing bits that do not fill a
// window are dropped, so the output length is 2·⌊len/3⌋.
//
// The scheme is lossy by design: x is never recoverable, which is exactly
// the discarded entropy. Recover rebuilds an alternating y-then-z sequence
// by the recurrence y = prev ⊕ (x⊕y), z = y ⊕ (y⊕z), starting from the seed
// bit. Adjacent XORs of the recovered sequence therefore reproduce the
// stored pair stream for any seed, and a seed equal to the first window's x
// reproduces the first (y, z) pair exactly.
type ThreeBitDualXOR struct{}

// Name returns the strategy name.
func (ThreeBitDualXOR) Name() string { return "three-bit-dual-xor" }

// MinInput returns the window size; shorter input passes through.
func (ThreeBitDualXOR) MinInput() int { return constants.ThreeBitWindow }

// CompressedLen returns 2·⌊inputLen/3⌋.
func (ThreeBitDualXOR) CompressedLen(inputLen int) int {
	return constants.ThreeBitOutputPerWindow * (inputLen / constants.ThreeBitWindow)
}

// Compress emits (x⊕y, y⊕z) per full three-bit window.
func (s ThreeBitDualXOR) Compress(key bits.Bits) (bits.Bits, Status) {
	if len(key) < s.MinInput() {
		return key, StatusPassthrough
	}

	windows := len(key) / constants.ThreeBitWindow
	out := make(bits.Bits, 0, s.CompressedLen(len(key)))
	for w := 0; w < windows; w++ {
		x := key[w*constants.ThreeBitWindow]
		y := key[w*constants.ThreeBitWindow+1]
		z := key[w*constants.ThreeBitWindow+2]
		out = append(out, x^y, y^z)
	}
	return out, StatusApplied
}

// Recover rebuilds the alternating y/z sequence from the stored pairs.
// The result starts with the seed bit and has 1+2·⌊len/2⌋ bits; an empty
// compressed key recovers to an empty sequence.
func (ThreeBitDualXOR) Recover(compressed bits.Bits, seed uint8) bits.Bits {
	if len(compressed) == 0 {
		return bits.Bits{}
	}

	pairs := len(compressed) / 2
	out := make(bits.Bits, 0, 1+2*pairs)
	out = append(out, seed&1)
	for p := 0; p < pairs; p++ {
		y := out[len(out)-1] ^ compressed[2*p]
		z := y ^ compressed[2*p+1]
		out = append(out, y, z)
	}
	return out
}
