// Package keycodec segments arbitrary-length keys into code blocks and back:
// zero-padding on encode, per-block syndrome decoding with auto-padding on
// decode, and explicit trim bookkeeping.
//
// The codec is stateless and does not retain pad counts; exact trimming to
// the pre-encoding length requires the caller to supply that length, since
// trailing zero padding is indistinguishable from trailing zero key bits.
package keycodec

import (
	"time"

	"github.com/sara-star-quant/qkd-go/pkg/bits"
	"github.com/sara-star-quant/qkd-go/pkg/linearcode"
	"github.com/sara-star-quant/qkd-go/pkg/metrics"

	qerrors "github.com/sara-star-quant/qkd-go/internal/errors"
)

// Codec encodes and decodes keys block-by-block with a fixed code.
type Codec struct {
	code      *linearcode.Code
	collector *metrics.Collector
	logger    *metrics.Logger
}

// Option configures a Codec.
type Option func(*Codec)

// WithCollector wires a metrics collector into the codec.
func WithCollector(c *metrics.Collector) Option {
	return func(cd *Codec) {
		cd.collector = c
	}
}

// WithLogger sets the codec logger.
func WithLogger(l *metrics.Logger) Option {
	return func(cd *Codec) {
		cd.logger = l
	}
}

// New creates a codec for the given code.
func New(code *linearcode.Code, opts ...Option) *Codec {
	c := &Codec{
		code:   code,
		logger: metrics.NullLogger(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Code returns the underlying block code.
func (c *Codec) Code() *linearcode.Code { return c.code }

// EncodeKey pads key with trailing zero bits to a multiple of the message
// length k, encodes each k-block independently and concatenates the
// codewords in order. There is no cross-block dependency.
func (c *Codec) EncodeKey(key bits.Bits) bits.Bits {
	start := time.Now()

	k := c.code.K()
	padded := key.Pad(k)
	out := make(bits.Bits, 0, len(padded)/k*c.code.N())
	for i := 0; i < len(padded); i += k {
		cw, _ := c.code.EncodeBlock(padded[i : i+k]) // length k by construction
		out = append(out, cw...)
	}

	if c.collector != nil {
		c.collector.KeyEncoded(len(padded)/k, time.Since(start))
	}
	return out
}

// Report aggregates per-block decode results for one key.
type Report struct {
	// Blocks is the number of codeword blocks decoded.
	Blocks int

	// PadBits is the number of zero bits appended to reach a block
	// multiple before decoding.
	PadBits int

	// CorrectedBits is the total number of bit flips applied across all
	// blocks.
	CorrectedBits int

	// SearchBlocks counts blocks whose syndrome missed the table and took
	// the bounded-search path.
	SearchBlocks int

	// UncorrectableBlocks lists the indices of blocks whose syndrome
	// resolved to no bounded-weight pattern; those blocks passed through
	// uncorrected.
	UncorrectableBlocks []int
}

// Err returns nil when every block resolved, or an error wrapping
// ErrUncorrectableSyndrome naming the first failed block. Decoding always
// completes regardless; this is a convenience for callers that treat
// residual errors as fatal.
func (r Report) Err() error {
	if len(r.UncorrectableBlocks) == 0 {
		return nil
	}
	return qerrors.NewBlockError(r.UncorrectableBlocks[0], qerrors.ErrUncorrectableSyndrome)
}

// DecodeKey pads received with trailing zero bits to a multiple of the block
// length n, decodes each n-block independently and concatenates the
// messages. A block that fails to resolve never aborts decoding of the
// blocks after it.
//
// When originalLen > 0 the result is truncated to originalLen; otherwise
// the full padded-length message is returned. The codec cannot infer the
// original length from the padding.
func (c *Codec) DecodeKey(received bits.Bits, originalLen int) (bits.Bits, Report) {
	start := time.Now()

	n := c.code.N()
	padded := received.Pad(n)
	report := Report{
		Blocks:  len(padded) / n,
		PadBits: len(padded) - len(received),
	}

	out := make(bits.Bits, 0, report.Blocks*c.code.K())
	for b := 0; b < report.Blocks; b++ {
		message, res, _ := c.code.DecodeBlock(padded[b*n : (b+1)*n]) // length n by construction
		out = append(out, message...)

		report.CorrectedBits += len(res.CorrectedPositions)
		if res.UsedSearch {
			report.SearchBlocks++
		}
		if res.Uncorrectable {
			report.UncorrectableBlocks = append(report.UncorrectableBlocks, b)
		}
	}

	if originalLen > 0 && originalLen < len(out) {
		out = out[:originalLen]
	}

	if c.collector != nil {
		c.collector.KeyDecoded(report.Blocks, report.CorrectedBits,
			report.SearchBlocks, len(report.UncorrectableBlocks), time.Since(start))
	}
	if len(report.UncorrectableBlocks) > 0 {
		c.logger.Warn("blocks passed through uncorrected", metrics.Fields{
			"code":   c.code.Name(),
			"blocks": report.UncorrectableBlocks,
		})
	}
	return out, report
}
