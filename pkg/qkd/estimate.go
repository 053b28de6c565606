// estimate.go implements QBER estimation: sacrificing a public sample of
// the sifted keys to measure the channel's error rate.
package qkd

import (
	"encoding/binary"
	"sort"

	"golang.org/x/crypto/sha3"

	"github.com/sara-star-quant/qkd-go/internal/constants"
	qerrors "github.com/sara-star-quant/qkd-go/internal/errors"
	"github.com/sara-star-quant/qkd-go/pkg/bits"
)

// QBEREstimate is the outcome of one error-rate estimation pass.
type QBEREstimate struct {
	// SampleSize is the number of positions revealed and compared.
	SampleSize int

	// Mismatches is the number of revealed positions where the keys
	// disagreed.
	Mismatches int

	// Rate is Mismatches / SampleSize.
	Rate float64

	// Compromised is true when Rate exceeds EavesdropQBERThreshold.
	Compromised bool

	// Positions are the revealed positions, ascending. They are public
	// once compared and must not contribute to the final key.
	Positions []int

	// RemainderA and RemainderB are the two keys with the revealed
	// positions removed, order preserved.
	RemainderA bits.Bits
	RemainderB bits.Bits
}

// EstimateQBER reveals a deterministic pseudorandom sample of the two keys,
// compares the revealed bits and returns the observed error rate along with
// both keys stripped of the revealed positions.
//
// The sample positions derive from the public seed via SHAKE-256, so two
// ends holding the same seed reveal the same positions without further
// coordination. fraction is clamped to at least one bit; a sample that
// would consume the entire key returns ErrSampleTooLarge.
func EstimateQBER(keyA, keyB bits.Bits, fraction float64, seed []byte) (QBEREstimate, error) {
	if len(keyA) != len(keyB) {
		return QBEREstimate{}, qerrors.NewCodeError("qkd.EstimateQBER", qerrors.ErrKeyLengthMismatch)
	}
	if len(keyA) == 0 {
		return QBEREstimate{}, qerrors.NewCodeError("qkd.EstimateQBER", qerrors.ErrEmptyKey)
	}

	n := len(keyA)
	sampleSize := int(fraction * float64(n))
	if sampleSize < 1 {
		sampleSize = 1
	}
	if sampleSize >= n {
		return QBEREstimate{}, qerrors.NewCodeError("qkd.EstimateQBER", qerrors.ErrSampleTooLarge)
	}

	positions := samplePositions(n, sampleSize, seed)

	sampled := make([]bool, n)
	mismatches := 0
	for _, p := range positions {
		sampled[p] = true
		if keyA[p] != keyB[p] {
			mismatches++
		}
	}

	remainderA := make(bits.Bits, 0, n-sampleSize)
	remainderB := make(bits.Bits, 0, n-sampleSize)
	for i := 0; i < n; i++ {
		if sampled[i] {
			continue
		}
		remainderA = append(remainderA, keyA[i])
		remainderB = append(remainderB, keyB[i])
	}

	rate := float64(mismatches) / float64(sampleSize)
	return QBEREstimate{
		SampleSize:  sampleSize,
		Mismatches:  mismatches,
		Rate:        rate,
		Compromised: rate > constants.EavesdropQBERThreshold,
		Positions:   positions,
		RemainderA:  remainderA,
		RemainderB:  remainderB,
	}, nil
}

// samplePositions picks k distinct positions out of n with a partial
// Fisher-Yates shuffle driven by a domain-separated SHAKE-256 stream over
// the seed. The result is ascending.
func samplePositions(n, k int, seed []byte) []int {
	h := sha3.NewShake256()
	lenBuf := make([]byte, 4)

	domain := []byte(constants.DomainSeparatorSample)
	binary.BigEndian.PutUint32(lenBuf, uint32(len(domain)))
	h.Write(lenBuf)
	h.Write(domain)

	binary.BigEndian.PutUint32(lenBuf, uint32(len(seed)))
	h.Write(lenBuf)
	h.Write(seed)

	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}

	buf := make([]byte, 4)
	for i := 0; i < k; i++ {
		_, _ = h.Read(buf) // SHAKE-256 Read never fails
		j := i + int(binary.BigEndian.Uint32(buf)%uint32(n-i))
		idx[i], idx[j] = idx[j], idx[i]
	}

	positions := make([]int, k)
	copy(positions, idx[:k])
	sort.Ints(positions)
	return positions
}
