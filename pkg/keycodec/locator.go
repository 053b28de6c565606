// locator.go implements global bit-error location across a segmented key.
package keycodec

import (
	"github.com/sara-star-quant/qkd-go/pkg/bits"
	"github.com/sara-star-quant/qkd-go/pkg/linearcode"
)

// Locate inspects each block's syndrome and reports the global positions of
// the bit errors the code would correct. A zero syndrome contributes
// nothing; a nonzero syndrome is resolved exactly as DecodeKey resolves it
// (table, then bounded search), and each set bit of the pattern is reported
// at blockIndex·n + position.
//
// When originalLen > 0, positions at or beyond originalLen are clipped:
// they fall inside padding the caller never transmitted. The result is
// ascending and duplicate-free, since each position belongs to exactly one
// block.
func (c *Codec) Locate(received bits.Bits, originalLen int) []int {
	n := c.code.N()
	padded := received.Pad(n)

	positions := make([]int, 0, 8)
	for b := 0; b*n < len(padded); b++ {
		block := padded[b*n : (b+1)*n]
		syndrome, _ := c.code.Syndrome(block) // length n by construction
		if syndrome.IsZero() {
			continue
		}

		pattern, res := c.code.Resolve(syndrome)
		if res == linearcode.ResolutionNone {
			continue
		}
		for _, p := range pattern.Ones() {
			global := b*n + p
			if originalLen > 0 && global >= originalLen {
				continue
			}
			positions = append(positions, global)
		}
	}

	if c.collector != nil {
		c.collector.ErrorsLocated(len(positions))
	}
	return positions
}
