// adjacent.go implements the adjacent-XOR (prefix parity) compression scheme.
package amplify

import (
	"github.com/sara-star-quant/qkd-go/internal/constants"
	"github.com/sara-star-quant/qkd-go/pkg/bits"
)

// AdjacentXOR compresses a key of length L into the L−1 XORs of adjacent
// bits: out[i] = in[i] ⊕ in[i+1].
//
// The scheme is fully invertible given the first input bit as seed:
// recovered[0] = seed, recovered[i+1] = recovered[i] ⊕ out[i]. Lossless.
type AdjacentXOR struct{}

// Name returns the strategy name.
func (AdjacentXOR) Name() string { return "adjacent-xor" }

// MinInput returns 2; a single bit has no adjacent pair.
func (AdjacentXOR) MinInput() int { return constants.AdjacentMinInput }

// CompressedLen returns inputLen−1.
func (AdjacentXOR) CompressedLen(inputLen int) int {
	return inputLen - 1
}

// Compress emits the adjacent-bit XOR chain.
func (s AdjacentXOR) Compress(key bits.Bits) (bits.Bits, Status) {
	if len(key) < s.MinInput() {
		return key, StatusPassthrough
	}

	out := make(bits.Bits, len(key)-1)
	for i := range out {
		out[i] = key[i] ^ key[i+1]
	}
	return out, StatusApplied
}

// Recover rebuilds the full input by prefix XOR from the seed bit.
func (AdjacentXOR) Recover(compressed bits.Bits, seed uint8) bits.Bits {
	out := make(bits.Bits, len(compressed)+1)
	out[0] = seed & 1
	for i, b := range compressed {
		out[i+1] = out[i] ^ b
	}
	return out
}
