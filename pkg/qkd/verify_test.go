package qkd_test

import (
	"bytes"
	"testing"

	"github.com/sara-star-quant/qkd-go/internal/constants"
	"github.com/sara-star-quant/qkd-go/pkg/bits"
	"github.com/sara-star-quant/qkd-go/pkg/qkd"
)

func TestFingerprintDeterministic(t *testing.T) {
	key := bits.NewSource([]byte("fingerprint")).Bits(64)

	a := qkd.Fingerprint(key)
	b := qkd.Fingerprint(key.Clone())

	if len(a) != constants.FingerprintSize {
		t.Fatalf("fingerprint length = %d, want %d", len(a), constants.FingerprintSize)
	}
	if !bytes.Equal(a, b) {
		t.Error("expected identical fingerprints for identical keys")
	}
}

func TestFingerprintSensitivity(t *testing.T) {
	key := bits.NewSource([]byte("sensitivity")).Bits(64)

	flipped := key.Clone()
	flipped[17] ^= 1
	if bytes.Equal(qkd.Fingerprint(key), qkd.Fingerprint(flipped)) {
		t.Error("expected one-bit flip to change the fingerprint")
	}

	// Equal bit content but different length must not collide either.
	if bytes.Equal(qkd.Fingerprint(key), qkd.Fingerprint(key[:63])) {
		t.Error("expected truncated key to change the fingerprint")
	}
}

func TestFingerprintEmptyKey(t *testing.T) {
	fp := qkd.Fingerprint(nil)
	if len(fp) != constants.FingerprintSize {
		t.Errorf("fingerprint length = %d, want %d", len(fp), constants.FingerprintSize)
	}
}

func TestVerify(t *testing.T) {
	key := bits.NewSource([]byte("verify")).Bits(32)
	fp := qkd.Fingerprint(key)

	if !qkd.Verify(key, fp) {
		t.Error("expected matching fingerprint to verify")
	}

	bad := append([]byte(nil), fp...)
	bad[0] ^= 0xff
	if qkd.Verify(key, bad) {
		t.Error("expected corrupted fingerprint to fail")
	}

	if qkd.Verify(key, fp[:16]) {
		t.Error("expected wrong-length fingerprint to fail")
	}
}
