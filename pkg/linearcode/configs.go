// configs.go provides the named code configurations used by the BB84
// reconciliation pipeline.
package linearcode

import (
	"sync"

	"github.com/sara-star-quant/qkd-go/internal/constants"
)

var (
	hammingOnce sync.Once
	hammingCode *Code

	steaneOnce sync.Once
	steaneCode *Code
)

// Hamming74 returns the systematic Hamming [7,4,3] code.
//
// Its three-bit syndrome space is fully claimed by single-bit patterns, so
// the table holds exactly the seven weight-1 entries plus the all-zero entry
// and the weight-2 extension contributes nothing. Every single-bit error is
// corrected; every two-bit error mis-corrects onto a nearby codeword.
func Hamming74() *Code {
	hammingOnce.Do(func() {
		g, err := NewMatrix(constants.HammingGenerator)
		if err != nil {
			panic("linearcode: bad Hamming generator: " + err.Error())
		}
		h, err := NewMatrix(constants.HammingParityCheck)
		if err != nil {
			panic("linearcode: bad Hamming parity check: " + err.Error())
		}
		hammingCode, err = New("hamming-7-4", g, h)
		if err != nil {
			panic("linearcode: bad Hamming configuration: " + err.Error())
		}
	})
	return hammingCode
}

// Steane returns the classical [7,2] code exercised by the Steane [[7,1,3]]
// construction.
//
// The generator is not systematic; message-extraction positions are derived
// at construction. The parity check is the null-space basis of the
// generator, giving a five-bit syndrome space wide enough for the weight-2
// table extension to claim additional patterns.
func Steane() *Code {
	steaneOnce.Do(func() {
		g, err := NewMatrix(constants.SteaneGenerator)
		if err != nil {
			panic("linearcode: bad Steane generator: " + err.Error())
		}
		steaneCode, err = New("steane-7-2", g, NullSpace(g))
		if err != nil {
			panic("linearcode: bad Steane configuration: " + err.Error())
		}
	})
	return steaneCode
}
