// Package qkd ties the reconciliation pipeline together: a Session
// configured with a block code and an amplification scheme carries a raw
// key through compress→encode on the sending side and decode→locate→
// recover on the receiving side, with QBER estimation and SHAKE-256
// key confirmation as the session-level checks.
//
// The quantum channel itself is out of scope. The session produces and
// consumes classical bit sequences; whatever carries them between the two
// ends is the caller's concern.
package qkd

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"

	"github.com/sara-star-quant/qkd-go/internal/constants"
	qerrors "github.com/sara-star-quant/qkd-go/internal/errors"
	"github.com/sara-star-quant/qkd-go/pkg/amplify"
	"github.com/sara-star-quant/qkd-go/pkg/bits"
	"github.com/sara-star-quant/qkd-go/pkg/keycodec"
	"github.com/sara-star-quant/qkd-go/pkg/linearcode"
	"github.com/sara-star-quant/qkd-go/pkg/metrics"
	"github.com/sara-star-quant/qkd-go/pkg/sifting"
)

// Session orchestrates one key-reconciliation exchange. Both ends construct
// a Session with the same code and scheme; the structs hold no shared state
// beyond that configuration.
type Session struct {
	id        string
	scheme    amplify.Scheme
	codec     *keycodec.Codec
	collector *metrics.Collector
	logger    *metrics.Logger
}

// Option configures a Session.
type Option func(*Session)

// WithCollector wires a metrics collector into the session and its codec.
func WithCollector(c *metrics.Collector) Option {
	return func(s *Session) {
		s.collector = c
	}
}

// WithLogger sets the session logger.
func WithLogger(l *metrics.Logger) Option {
	return func(s *Session) {
		s.logger = l
	}
}

// NewSession creates a session for the given code and amplification scheme.
// Both are required; there is no sensible default the two ends could agree
// on implicitly.
func NewSession(code *linearcode.Code, scheme amplify.Scheme, opts ...Option) (*Session, error) {
	if code == nil {
		return nil, qerrors.NewCodeError("qkd.NewSession", qerrors.ErrNoCode)
	}
	if scheme == nil {
		return nil, qerrors.NewCodeError("qkd.NewSession", qerrors.ErrNoScheme)
	}

	idBytes := make([]byte, constants.SessionIDSize)
	if _, err := rand.Read(idBytes); err != nil {
		return nil, fmt.Errorf("qkd: session id: %w", err)
	}

	s := &Session{
		id:     hex.EncodeToString(idBytes),
		scheme: scheme,
		logger: metrics.NullLogger(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.logger = s.logger.Named("session").With(metrics.Fields{"id": s.id})

	codecOpts := []keycodec.Option{keycodec.WithLogger(s.logger)}
	if s.collector != nil {
		codecOpts = append(codecOpts, keycodec.WithCollector(s.collector))
		s.collector.SessionStarted()
	}
	s.codec = keycodec.New(code, codecOpts...)

	return s, nil
}

// ID returns the session identifier.
func (s *Session) ID() string { return s.id }

// Scheme returns the configured amplification scheme.
func (s *Session) Scheme() amplify.Scheme { return s.scheme }

// Codec returns the session's key codec.
func (s *Session) Codec() *keycodec.Codec { return s.codec }

// Payload is everything the sending side must convey for the receiving side
// to reconstruct the raw key: the encoded bit stream over the quantum
// channel, and the seed bit plus lengths over the classical channel.
type Payload struct {
	// Encoded is the codeword stream for the quantum channel.
	Encoded bits.Bits

	// Seed is the out-of-band seed bit for Recover: the first bit of the
	// raw key.
	Seed uint8

	// CompressedLen is the compressed key length before block padding.
	// Receive needs it to trim the decoded key exactly.
	CompressedLen int

	// RawLen is the raw key length before compression.
	RawLen int

	// Status reports whether the scheme compressed the key or passed it
	// through under-length.
	Status amplify.Status
}

// Prepare compresses the raw key and encodes it for transmission.
func (s *Session) Prepare(ctx context.Context, raw bits.Bits) (Payload, error) {
	_, end := metrics.StartSpan(ctx, metrics.SpanPrepare, metrics.WithAttributes(
		metrics.SpanAttributes{
			SessionID: s.id,
			Code:      s.codec.Code().Name(),
			Scheme:    s.scheme.Name(),
		}.ToMap()))

	if len(raw) == 0 {
		err := qerrors.NewCodeError("qkd.Prepare", qerrors.ErrEmptyKey)
		end(err)
		return Payload{}, err
	}

	compressed, status := s.scheme.Compress(raw)
	encoded := s.codec.EncodeKey(compressed)

	s.logger.Debug("payload prepared", metrics.Fields{
		"raw_len":        len(raw),
		"compressed_len": len(compressed),
		"encoded_len":    len(encoded),
		"status":         status.String(),
	})

	end(nil)
	return Payload{
		Encoded:       encoded,
		Seed:          raw[0] & 1,
		CompressedLen: len(compressed),
		RawLen:        len(raw),
		Status:        status,
	}, nil
}

// ReceiveResult is the outcome of decoding a received codeword stream.
type ReceiveResult struct {
	// Key is the corrected compressed key, trimmed to the sender's
	// compressed length.
	Key bits.Bits

	// Report aggregates the per-block decode outcomes.
	Report keycodec.Report

	// ErrorPositions are the global bit positions the code corrected,
	// as reported by Locate on the received stream.
	ErrorPositions []int
}

// Receive decodes the received codeword stream against the sender's
// payload metadata. Decoding always completes; the returned error is
// non-nil only when one or more blocks passed through uncorrected, and the
// result is valid either way.
func (s *Session) Receive(ctx context.Context, received bits.Bits, compressedLen int) (ReceiveResult, error) {
	_, end := metrics.StartSpan(ctx, metrics.SpanReceive, metrics.WithAttributes(
		metrics.SpanAttributes{
			SessionID: s.id,
			Code:      s.codec.Code().Name(),
		}.ToMap()))

	positions := s.codec.Locate(received, len(received))
	key, report := s.codec.DecodeKey(received, compressedLen)

	err := report.Err()
	if err != nil {
		if s.collector != nil {
			s.collector.SessionFailed()
		}
		s.logger.Error("received key has residual errors", metrics.Fields{
			"uncorrectable_blocks": len(report.UncorrectableBlocks),
		})
	}

	end(err)
	return ReceiveResult{
		Key:            key,
		Report:         report,
		ErrorPositions: positions,
	}, err
}

// Sift discards the measured bits whose bases disagree and records the
// kept/discarded split.
func (s *Session) Sift(ctx context.Context, basisA, basisB, measured bits.Bits) (bits.Bits, error) {
	_, end := metrics.StartSpan(ctx, metrics.SpanSift)

	kept, err := sifting.Filter(basisA, basisB, measured)
	if err != nil {
		end(err)
		return nil, err
	}

	if s.collector != nil {
		s.collector.Sifted(len(kept), len(measured)-len(kept))
	}
	s.logger.Debug("bases sifted", metrics.Fields{
		"kept":      len(kept),
		"discarded": len(measured) - len(kept),
	})

	end(nil)
	return kept, nil
}

// Recover re-derives key material from a corrected compressed key and the
// sender's seed bit.
func (s *Session) Recover(ctx context.Context, compressed bits.Bits, seed uint8) bits.Bits {
	_, end := metrics.StartSpan(ctx, metrics.SpanRecover, metrics.WithAttributes(
		metrics.SpanAttributes{
			SessionID: s.id,
			Scheme:    s.scheme.Name(),
		}.ToMap()))

	recovered := s.scheme.Recover(compressed, seed&1)

	end(nil)
	return recovered
}

// EstimateQBER reveals a deterministic sample of the two sifted keys and
// returns the observed error rate, with the revealed positions removed from
// both keys. The sample fraction is DefaultSampleFraction; both ends must
// pass the same public seed to reveal the same positions.
func (s *Session) EstimateQBER(ctx context.Context, keyA, keyB bits.Bits, seed []byte) (QBEREstimate, error) {
	_, end := metrics.StartSpan(ctx, metrics.SpanEstimateQBER, metrics.WithAttributes(
		metrics.SpanAttributes{SessionID: s.id}.ToMap()))

	est, err := EstimateQBER(keyA, keyB, constants.DefaultSampleFraction, seed)
	if err != nil {
		end(err)
		return est, err
	}

	if est.Compromised {
		if s.collector != nil {
			s.collector.SessionFailed()
		}
		s.logger.Warn("error rate above eavesdropping threshold", metrics.Fields{
			"rate":      est.Rate,
			"threshold": constants.EavesdropQBERThreshold,
		})
	} else {
		s.logger.Debug("error rate estimated", metrics.Fields{
			"rate":   est.Rate,
			"sample": est.SampleSize,
		})
	}

	end(nil)
	return est, nil
}

// Verify compares a key against a fingerprint received from the other end
// and records the outcome.
func (s *Session) Verify(ctx context.Context, key bits.Bits, fingerprint []byte) bool {
	_, end := metrics.StartSpan(ctx, metrics.SpanVerify, metrics.WithAttributes(
		metrics.SpanAttributes{SessionID: s.id}.ToMap()))

	ok := Verify(key, fingerprint)
	if s.collector != nil {
		s.collector.VerifyResult(ok)
	}
	if !ok {
		s.logger.Warn("key confirmation failed")
	}

	end(nil)
	return ok
}
