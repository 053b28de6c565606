// Package qkdgo provides classical post-processing for BB84 quantum key
// distribution: forward error correction, key reconciliation, basis sifting,
// privacy amplification and key confirmation.
//
// The quantum channel itself is out of scope. The library consumes and
// produces classical bit sequences; a collaborator transmits the encoded
// stream and returns the (possibly corrupted) measurement.
//
// # Quick Start
//
// For a complete reconciliation exchange:
//
//	import (
//		"github.com/sara-star-quant/qkd-go/pkg/amplify"
//		"github.com/sara-star-quant/qkd-go/pkg/linearcode"
//		"github.com/sara-star-quant/qkd-go/pkg/qkd"
//	)
//
//	session, _ := qkd.NewSession(linearcode.Hamming74(), amplify.AdjacentXOR{})
//
//	// Sending side
//	payload, _ := session.Prepare(ctx, rawKey)
//
//	// [quantum channel carries payload.Encoded]
//
//	// Receiving side
//	result, _ := session.Receive(ctx, received, payload.CompressedLen)
//	recovered := session.Recover(ctx, result.Key, payload.Seed)
//
// For low-level block coding:
//
//	import "github.com/sara-star-quant/qkd-go/pkg/linearcode"
//
//	code := linearcode.Hamming74()
//	codeword, _ := code.EncodeBlock(message)
//	decoded, result, _ := code.DecodeBlock(received)
//
// # Package Structure
//
//   - pkg/linearcode: GF(2) linear block codes with syndrome decoding
//   - pkg/keycodec: arbitrary-length key segmentation, decoding and error location
//   - pkg/amplify: privacy-amplification schemes (dual-XOR, adjacent-XOR)
//   - pkg/sifting: basis reconciliation
//   - pkg/qkd: session orchestration, QBER estimation, key confirmation
//   - pkg/bits: bit-sequence type and deterministic bit source
//   - pkg/metrics: structured logging, collectors, Prometheus export, tracing
//   - internal/constants: code matrices and protocol parameters
//   - internal/errors: sentinel errors and wrappers
//
// # Error Correction Properties
//
// The shipped codes have minimum distance 3 and correct any single-bit
// error per 7-bit block. Two-bit errors are resolved best-effort through a
// weight-2 syndrome table extension and a bounded fallback search; syndromes
// outside that radius are reported, never silently mended.
//
// # Testing
//
//	go test ./...                                # All tests
//	go test -fuzz=FuzzDecodeKey ./test/fuzz      # Fuzz tests
//	go test -bench=. ./test/benchmark            # Benchmarks
//
// # References
//
//   - Bennett, Brassard: Quantum cryptography: Public key distribution and coin tossing (BB84)
//   - Steane: Error correcting codes in quantum theory
//   - NIST FIPS 202: SHA-3 Standard (SHAKE-128, SHAKE-256)
package qkdgo
