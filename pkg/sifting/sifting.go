// Package sifting implements basis reconciliation: discarding the bit
// positions where sender and receiver measured in different bases.
package sifting

import (
	"github.com/sara-star-quant/qkd-go/pkg/bits"

	qerrors "github.com/sara-star-quant/qkd-go/internal/errors"
)

// Filter keeps measured[i] wherever basisA[i] == basisB[i].
//
// All three sequences must have equal length; the result preserves input
// order. Pure function, no side effects.
func Filter(basisA, basisB, measured bits.Bits) (bits.Bits, error) {
	if len(basisA) != len(basisB) || len(basisA) != len(measured) {
		return nil, qerrors.NewCodeError("sifting.Filter", qerrors.ErrBasisLengthMismatch)
	}

	kept := make(bits.Bits, 0, len(measured))
	for i := range basisA {
		if basisA[i] == basisB[i] {
			kept = append(kept, measured[i])
		}
	}
	return kept, nil
}

// MatchingPositions returns the ascending positions where the two basis
// sequences agree. Both sides sift with the same positions, so exposing
// them lets a caller align any per-position bookkeeping with the sifted key.
func MatchingPositions(basisA, basisB bits.Bits) ([]int, error) {
	if len(basisA) != len(basisB) {
		return nil, qerrors.NewCodeError("sifting.MatchingPositions", qerrors.ErrBasisLengthMismatch)
	}

	pos := make([]int, 0, len(basisA))
	for i := range basisA {
		if basisA[i] == basisB[i] {
			pos = append(pos, i)
		}
	}
	return pos, nil
}
