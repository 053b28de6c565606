// Package errors defines custom error types for the QKD-Go key-reconciliation
// library. These errors provide detailed information for debugging while
// keeping key material out of error messages.
package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for linear block code operations
var (
	// ErrInvalidMessageLength indicates a message block whose length does
	// not match the code's message length k
	ErrInvalidMessageLength = errors.New("linearcode: invalid message length")

	// ErrInvalidBlockLength indicates a received block whose length does
	// not match the code's block length n
	ErrInvalidBlockLength = errors.New("linearcode: invalid block length")

	// ErrMatrixShape indicates a malformed or empty GF(2) matrix
	ErrMatrixShape = errors.New("linearcode: malformed matrix")

	// ErrNotOrthogonal indicates a parity-check matrix that does not
	// annihilate the generator (H·Gᵀ ≠ 0 mod 2)
	ErrNotOrthogonal = errors.New("linearcode: parity check does not annihilate generator")

	// ErrNoMessagePositions indicates a generator whose basis-vector images
	// admit no per-message extraction position
	ErrNoMessagePositions = errors.New("linearcode: cannot derive message positions")

	// ErrSyndromeTooWide indicates a parity check with more rows than fit
	// an integer syndrome key
	ErrSyndromeTooWide = errors.New("linearcode: syndrome exceeds key width")

	// ErrUncorrectableSyndrome indicates a syndrome with no table entry and
	// no bounded-search match; decoding applied a no-op correction
	ErrUncorrectableSyndrome = errors.New("linearcode: uncorrectable syndrome")
)

// Sentinel errors for sifting operations
var (
	// ErrBasisLengthMismatch indicates basis or bit sequences of unequal length
	ErrBasisLengthMismatch = errors.New("sifting: sequence length mismatch")
)

// Sentinel errors for bit-sequence operations
var (
	// ErrInvalidBit indicates a bit value outside {0, 1}
	ErrInvalidBit = errors.New("bits: bit value out of range")

	// ErrLengthMismatch indicates two bit sequences of unequal length
	ErrLengthMismatch = errors.New("bits: sequence length mismatch")
)

// Sentinel errors for session operations
var (
	// ErrEmptyKey indicates an empty key where at least one bit is required
	ErrEmptyKey = errors.New("qkd: empty key")

	// ErrKeyLengthMismatch indicates two keys of unequal length where equal
	// lengths are required
	ErrKeyLengthMismatch = errors.New("qkd: key length mismatch")

	// ErrSampleTooLarge indicates a QBER sample that would consume the
	// entire key
	ErrSampleTooLarge = errors.New("qkd: sample exceeds key length")

	// ErrNoCode indicates a session configured without a block code
	ErrNoCode = errors.New("qkd: no block code configured")

	// ErrNoScheme indicates a session configured without an amplification
	// scheme
	ErrNoScheme = errors.New("qkd: no amplification scheme configured")
)

// CodeError wraps a coding error with the operation that produced it
type CodeError struct {
	Op  string // Operation that failed
	Err error  // Underlying error
}

func (e *CodeError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *CodeError) Unwrap() error {
	return e.Err
}

// NewCodeError creates a new CodeError
func NewCodeError(op string, err error) *CodeError {
	return &CodeError{Op: op, Err: err}
}

// BlockError wraps a per-block decoding error with the block index,
// so a caller can tell which block of a segmented key failed
type BlockError struct {
	Block int   // Zero-based block index within the key
	Err   error // Underlying error
}

func (e *BlockError) Error() string {
	return fmt.Sprintf("block %d: %v", e.Block, e.Err)
}

func (e *BlockError) Unwrap() error {
	return e.Err
}

// NewBlockError creates a new BlockError
func NewBlockError(block int, err error) *BlockError {
	return &BlockError{Block: block, Err: err}
}

// Is reports whether any error in err's chain matches target.
// This is a convenience wrapper around errors.Is.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
// This is a convenience wrapper around errors.As.
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}
