// syndrome.go implements syndrome-table construction and the bounded
// minimum-weight fallback search.
//
// Table construction is a pure build step: weight-1 patterns claim their
// syndromes first, then weight-2 patterns claim whatever is left. Ascending
// weight with first-writer-wins is the explicit tie-break; an entry is never
// overwritten, so ambiguous two-bit errors mis-correct deterministically.
package linearcode

import (
	"github.com/sara-star-quant/qkd-go/internal/constants"
	"github.com/sara-star-quant/qkd-go/pkg/bits"
)

// synKey canonicalizes a syndrome into an integer table key, MSB first:
// syndrome (1,0,1) becomes 0b101.
func synKey(s bits.Bits) uint32 {
	var key uint32
	for _, bit := range s {
		key = key<<1 | uint32(bit)
	}
	return key
}

// buildSyndromeTable builds the syndrome → error-pattern table for parity
// check h, storing patterns up to maxWeight (1 or 2).
//
// The all-zero syndrome always maps to the all-zero pattern. The weight-2
// pass is skipped when the weight-1 pass already claims every syndrome;
// a full table cannot benefit from wider patterns.
func buildSyndromeTable(h Matrix, maxWeight int) map[uint32]bits.Bits {
	n := h.Cols()
	table := make(map[uint32]bits.Bits)
	table[0] = bits.New(n)

	for i := 0; i < n; i++ {
		e := bits.New(n)
		e[i] = 1
		key := synKey(h.MulVec(e))
		if _, claimed := table[key]; !claimed {
			table[key] = e
		}
	}

	if maxWeight < 2 || len(table) == 1<<h.Rows() {
		return table
	}

	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			e := bits.New(n)
			e[i] = 1
			e[j] = 1
			key := synKey(h.MulVec(e))
			if _, claimed := table[key]; !claimed {
				table[key] = e
			}
		}
	}
	return table
}

// searchPattern performs the exhaustive bounded search for an error pattern
// matching syndrome: every weight-1 pattern in O(n), then every weight-2
// pattern in O(n²). Returns nil when no pattern of weight ≤ MaxSearchWeight
// produces the syndrome.
func searchPattern(h Matrix, syndrome bits.Bits) bits.Bits {
	n := h.Cols()
	target := synKey(syndrome)

	for i := 0; i < n; i++ {
		e := bits.New(n)
		e[i] = 1
		if synKey(h.MulVec(e)) == target {
			return e
		}
	}

	if constants.MaxSearchWeight < 2 {
		return nil
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			e := bits.New(n)
			e[i] = 1
			e[j] = 1
			if synKey(h.MulVec(e)) == target {
				return e
			}
		}
	}
	return nil
}
