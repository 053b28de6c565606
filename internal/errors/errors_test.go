package errors

import (
	"errors"
	"strings"
	"testing"
)

// TestCodeError tests CodeError type.
func TestCodeError(t *testing.T) {
	baseErr := errors.New("base error")
	cerr := NewCodeError("encode-block", baseErr)

	// Test Error() method
	errStr := cerr.Error()
	if !strings.Contains(errStr, "encode-block") {
		t.Errorf("Error string should contain operation: %q", errStr)
	}
	if !strings.Contains(errStr, "base error") {
		t.Errorf("Error string should contain base error: %q", errStr)
	}

	// Test Unwrap() method
	if cerr.Unwrap() != baseErr {
		t.Errorf("Unwrap() returned %v, want %v", cerr.Unwrap(), baseErr)
	}

	// Test fields
	if cerr.Op != "encode-block" {
		t.Errorf("Op = %q, want %q", cerr.Op, "encode-block")
	}
	if cerr.Err != baseErr {
		t.Errorf("Err = %v, want %v", cerr.Err, baseErr)
	}
}

// TestBlockError tests BlockError type.
func TestBlockError(t *testing.T) {
	berr := NewBlockError(3, ErrUncorrectableSyndrome)

	errStr := berr.Error()
	if !strings.Contains(errStr, "block 3") {
		t.Errorf("Error string should contain block index: %q", errStr)
	}
	if !strings.Contains(errStr, "uncorrectable") {
		t.Errorf("Error string should contain base error: %q", errStr)
	}

	if !errors.Is(berr, ErrUncorrectableSyndrome) {
		t.Error("BlockError should unwrap to ErrUncorrectableSyndrome")
	}
}

// TestErrorChaining tests that wrapped errors match sentinels via Is.
func TestErrorChaining(t *testing.T) {
	wrapped := NewCodeError("decode-block", ErrInvalidBlockLength)

	if !Is(wrapped, ErrInvalidBlockLength) {
		t.Error("Is() should match the wrapped sentinel")
	}
	if Is(wrapped, ErrInvalidMessageLength) {
		t.Error("Is() should not match an unrelated sentinel")
	}

	var cerr *CodeError
	if !As(wrapped, &cerr) {
		t.Fatal("As() should extract *CodeError")
	}
	if cerr.Op != "decode-block" {
		t.Errorf("extracted Op = %q, want %q", cerr.Op, "decode-block")
	}
}

// TestSentinelMessages verifies package prefixes in sentinel messages.
func TestSentinelMessages(t *testing.T) {
	tests := []struct {
		err    error
		prefix string
	}{
		{ErrInvalidMessageLength, "linearcode:"},
		{ErrInvalidBlockLength, "linearcode:"},
		{ErrNotOrthogonal, "linearcode:"},
		{ErrUncorrectableSyndrome, "linearcode:"},
		{ErrBasisLengthMismatch, "sifting:"},
		{ErrInvalidBit, "bits:"},
		{ErrKeyLengthMismatch, "qkd:"},
		{ErrSampleTooLarge, "qkd:"},
	}

	for _, tt := range tests {
		if !strings.HasPrefix(tt.err.Error(), tt.prefix) {
			t.Errorf("%v should have prefix %q", tt.err, tt.prefix)
		}
	}
}
