// verify.go implements key confirmation: both ends exchange a short
// fingerprint instead of the key itself.
package qkd

import (
	"crypto/subtle"
	"encoding/binary"

	"golang.org/x/crypto/sha3"

	"github.com/sara-star-quant/qkd-go/internal/constants"
	"github.com/sara-star-quant/qkd-go/pkg/bits"
)

// Fingerprint derives a FingerprintSize-byte SHAKE-256 digest of a key with
// domain separation.
//
// The construction is
//
//	SHAKE-256(len(domain) || domain || len(key) || key, FingerprintSize)
//
// with 4-byte big-endian length prefixes, so no two (domain, key) pairs
// absorb the same byte stream.
func Fingerprint(key bits.Bits) []byte {
	h := sha3.NewShake256()
	lenBuf := make([]byte, 4)

	domain := []byte(constants.DomainSeparatorConfirm)
	binary.BigEndian.PutUint32(lenBuf, uint32(len(domain)))
	h.Write(lenBuf)
	h.Write(domain)

	binary.BigEndian.PutUint32(lenBuf, uint32(len(key)))
	h.Write(lenBuf)
	h.Write(key)

	out := make([]byte, constants.FingerprintSize)
	_, _ = h.Read(out) // SHAKE-256 Read never fails

	return out
}

// Verify reports whether the key's fingerprint matches the given one.
// The comparison is constant-time.
func Verify(key bits.Bits, fingerprint []byte) bool {
	if len(fingerprint) != constants.FingerprintSize {
		return false
	}
	return subtle.ConstantTimeCompare(Fingerprint(key), fingerprint) == 1
}
