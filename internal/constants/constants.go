// Package constants defines code parameters and protocol constants for the
// QKD-Go key-reconciliation library.
//
// The two linear block codes shipped here are the classical workhorses of the
// BB84 post-processing stage: a systematic Hamming [7,4,3] code and the
// classical component of the Steane [[7,1,3]] CSS construction, reduced to the
// [7,2] code actually exercised by the encoder.
package constants

// Library identification
const (
	// LibraryName is used for logger naming and span prefixes.
	LibraryName = "qkd-go"

	// ProtocolName is used for domain separation in key confirmation.
	ProtocolName = "QKD-RECON-v1"
)

// Hamming [7,4,3] code parameters.
//
// G is in standard form [I₄ | P]; H is the matching [Pᵀ | I₃], so message
// bits appear verbatim as the codeword prefix.
const (
	// HammingCodewordLength is the block length n of the Hamming code.
	HammingCodewordLength = 7

	// HammingMessageLength is the message length k of the Hamming code.
	HammingMessageLength = 4
)

// HammingGenerator is the 4×7 systematic generator matrix of the [7,4,3] code.
var HammingGenerator = [][]uint8{
	{1, 0, 0, 0, 1, 1, 0},
	{0, 1, 0, 0, 1, 0, 1},
	{0, 0, 1, 0, 0, 1, 1},
	{0, 0, 0, 1, 1, 1, 1},
}

// HammingParityCheck is the 3×7 parity-check matrix of the [7,4,3] code.
// Its seven nonzero columns are pairwise distinct, so every single-bit error
// has a unique syndrome.
var HammingParityCheck = [][]uint8{
	{1, 1, 0, 1, 1, 0, 0},
	{1, 0, 1, 1, 0, 1, 0},
	{0, 1, 1, 1, 0, 0, 1},
}

// Steane-style [7,2] code parameters.
//
// The Steane [[7,1,3]] encoder zero-pads its logical word, so only two rows
// of the classical generator ever contribute to a codeword. Those two rows
// form the effective generator below; the parity check is derived from its
// null space at construction time.
const (
	// SteaneCodewordLength is the block length n of the Steane-style code.
	SteaneCodewordLength = 7

	// SteaneMessageLength is the effective message length k of the
	// Steane-style code.
	SteaneMessageLength = 2
)

// SteaneGenerator is the 2×7 effective generator of the Steane-style code.
// The matrix is not systematic: there is no identity prefix, and
// message-extraction positions are derived from the basis-vector images.
var SteaneGenerator = [][]uint8{
	{0, 1, 0, 1, 0, 0, 1},
	{0, 0, 1, 0, 1, 1, 1},
}

// Syndrome-table construction parameters.
const (
	// MaxTableWeight is the default maximum error-pattern weight stored in
	// a syndrome table. Weight-1 entries are always present; weight-2
	// entries fill syndromes not already claimed.
	MaxTableWeight = 2

	// MaxSearchWeight bounds the exhaustive fallback search performed when
	// a syndrome is absent from the table.
	MaxSearchWeight = 2

	// MaxSyndromeBits caps n−k so syndromes fit an integer table key.
	MaxSyndromeBits = 32
)

// Privacy-amplification parameters.
const (
	// ThreeBitWindow is the input window size of the dual-XOR scheme.
	ThreeBitWindow = 3

	// ThreeBitOutputPerWindow is the number of bits emitted per window.
	ThreeBitOutputPerWindow = 2

	// AdjacentMinInput is the minimum input length of the adjacent-XOR
	// scheme; shorter input passes through unchanged.
	AdjacentMinInput = 2
)

// Key-confirmation parameters (SHAKE-256).
const (
	// FingerprintSize is the size of a key fingerprint in bytes.
	FingerprintSize = 32

	// DomainSeparatorConfirm is the domain separator for key-confirmation
	// fingerprints.
	DomainSeparatorConfirm = "QKD-RECON-v1-KeyConfirm"

	// DomainSeparatorSample is the domain separator for QBER sample
	// position derivation.
	DomainSeparatorSample = "QKD-RECON-v1-SamplePositions"
)

// Session parameters.
const (
	// SessionIDSize is the size of a random session identifier in bytes.
	SessionIDSize = 8
)

// QBER estimation parameters.
const (
	// DefaultSampleFraction is the fraction of sifted bits revealed for
	// error-rate estimation.
	DefaultSampleFraction = 0.25

	// EavesdropQBERThreshold is the error rate above which a channel is
	// flagged as compromised. An intercept-resend attacker induces ~25%
	// errors in the sifted key; 11% is the usual abort threshold for BB84.
	EavesdropQBERThreshold = 0.11
)

// Basis conventions of the external quantum channel
// (basis 0 = computational/Z, basis 1 = conjugate/X).
const (
	BasisComputational uint8 = 0
	BasisConjugate     uint8 = 1
)
