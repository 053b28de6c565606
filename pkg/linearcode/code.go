// Package linearcode implements binary linear block codes over GF(2) with
// syndrome-table decoding and a bounded minimum-weight fallback search.
//
// A Code is an immutable value: generator, parity check, message-extraction
// positions and syndrome table are all fixed at construction and never
// mutated, so a single Code may be shared across concurrent callers without
// synchronization.
package linearcode

import (
	"github.com/sara-star-quant/qkd-go/internal/constants"
	"github.com/sara-star-quant/qkd-go/pkg/bits"

	qerrors "github.com/sara-star-quant/qkd-go/internal/errors"
)

// Code is a binary [n,k] linear block code with a precomputed syndrome table.
type Code struct {
	name string
	n    int // codeword length
	k    int // message length

	g Matrix // k×n generator
	h Matrix // (n−k)×n parity check, h·gᵀ = 0

	// msgPos maps message index i to the codeword position that carries
	// message bit i verbatim. For a systematic generator this is 0..k−1;
	// for non-systematic generators it is derived from the basis-vector
	// images at construction.
	msgPos []int

	table map[uint32]bits.Bits
}

// Resolution identifies how an error pattern was resolved for a syndrome.
type Resolution int

const (
	// ResolutionTable means the syndrome was found in the precomputed table.
	ResolutionTable Resolution = iota

	// ResolutionSearch means the bounded minimum-weight search found a match.
	ResolutionSearch

	// ResolutionNone means no pattern of bounded weight matches; the
	// all-zero pattern was applied as a best-effort no-op.
	ResolutionNone
)

// BlockResult reports what DecodeBlock did to a single block.
type BlockResult struct {
	// CorrectedPositions lists the in-block positions whose bits were
	// flipped by the applied error pattern, ascending.
	CorrectedPositions []int

	// UsedSearch is true when the syndrome was absent from the table and
	// the bounded search resolved (or failed to resolve) the pattern.
	UsedSearch bool

	// Uncorrectable is true when neither the table nor the bounded search
	// matched the syndrome. The block was passed through uncorrected;
	// this is a recoverable condition, not an error.
	Uncorrectable bool
}

// Option configures code construction.
type Option func(*options)

type options struct {
	tableWeight int
}

// WithTableWeight caps the maximum error-pattern weight stored in the
// syndrome table. The default stores weight-2 patterns where the syndrome
// space allows; WithTableWeight(1) restricts the table to single-bit
// patterns so heavier syndromes take the fallback-search path.
func WithTableWeight(w int) Option {
	return func(o *options) {
		o.tableWeight = w
	}
}

// New constructs a code from a generator and parity check.
//
// Validation: matching column counts, h row count equal to n−k,
// h·gᵀ ≡ 0 (mod 2), and a derivable message-extraction position for every
// message bit. The syndrome table is built once here.
func New(name string, g, h Matrix, opts ...Option) (*Code, error) {
	o := options{tableWeight: constants.MaxTableWeight}
	for _, opt := range opts {
		opt(&o)
	}

	if g.Rows() == 0 || h.Rows() == 0 || g.Cols() != h.Cols() {
		return nil, qerrors.NewCodeError("linearcode.New", qerrors.ErrMatrixShape)
	}
	n, k := g.Cols(), g.Rows()
	if h.Rows() != n-k {
		return nil, qerrors.NewCodeError("linearcode.New", qerrors.ErrMatrixShape)
	}
	if n-k > constants.MaxSyndromeBits {
		return nil, qerrors.NewCodeError("linearcode.New", qerrors.ErrSyndromeTooWide)
	}
	if !orthogonal(h, g) {
		return nil, qerrors.NewCodeError("linearcode.New", qerrors.ErrNotOrthogonal)
	}

	msgPos, err := deriveMessagePositions(g)
	if err != nil {
		return nil, err
	}

	return &Code{
		name:   name,
		n:      n,
		k:      k,
		g:      g.Clone(),
		h:      h.Clone(),
		msgPos: msgPos,
		table:  buildSyndromeTable(h, o.tableWeight),
	}, nil
}

// deriveMessagePositions computes, for each message index i, the first
// codeword position carrying message bit i verbatim: a position j where the
// image of basis vector eᵢ is 1 and the image of every other basis vector is
// 0. By linearity such a position reproduces message bit i for every message.
func deriveMessagePositions(g Matrix) ([]int, error) {
	n, k := g.Cols(), g.Rows()
	pos := make([]int, k)
	for i := 0; i < k; i++ {
		pos[i] = -1
		for j := 0; j < n; j++ {
			if g[i][j] == 0 {
				continue
			}
			exclusive := true
			for m := 0; m < k; m++ {
				if m != i && g[m][j] != 0 {
					exclusive = false
					break
				}
			}
			if exclusive {
				pos[i] = j
				break
			}
		}
		if pos[i] < 0 {
			return nil, qerrors.NewCodeError("linearcode.New", qerrors.ErrNoMessagePositions)
		}
	}
	return pos, nil
}

// Name returns the configuration name of the code.
func (c *Code) Name() string { return c.name }

// N returns the codeword length.
func (c *Code) N() int { return c.n }

// K returns the message length.
func (c *Code) K() int { return c.k }

// MessagePositions returns a copy of the derived message-extraction
// positions.
func (c *Code) MessagePositions() []int {
	out := make([]int, len(c.msgPos))
	copy(out, c.msgPos)
	return out
}

// Systematic reports whether message bits appear verbatim as the codeword
// prefix.
func (c *Code) Systematic() bool {
	for i, p := range c.msgPos {
		if p != i {
			return false
		}
	}
	return true
}

// TableSize returns the number of syndrome-table entries, including the
// all-zero entry.
func (c *Code) TableSize() int { return len(c.table) }

// EncodeBlock computes message·G mod 2.
// Returns ErrInvalidMessageLength if the message length is not k.
func (c *Code) EncodeBlock(message bits.Bits) (bits.Bits, error) {
	if len(message) != c.k {
		return nil, qerrors.NewCodeError("linearcode.EncodeBlock", qerrors.ErrInvalidMessageLength)
	}
	return c.g.VecMul(message), nil
}

// Syndrome computes H·received mod 2.
// Returns ErrInvalidBlockLength if the received length is not n.
func (c *Code) Syndrome(received bits.Bits) (bits.Bits, error) {
	if len(received) != c.n {
		return nil, qerrors.NewCodeError("linearcode.Syndrome", qerrors.ErrInvalidBlockLength)
	}
	return c.h.MulVec(received), nil
}

// Resolve maps a syndrome to its correction pattern: table lookup first,
// then the bounded minimum-weight search. When neither matches, the all-zero
// pattern is returned with ResolutionNone.
func (c *Code) Resolve(syndrome bits.Bits) (bits.Bits, Resolution) {
	if pattern, ok := c.table[synKey(syndrome)]; ok {
		return pattern, ResolutionTable
	}
	if pattern := searchPattern(c.h, syndrome); pattern != nil {
		return pattern, ResolutionSearch
	}
	return bits.New(c.n), ResolutionNone
}

// DecodeBlock corrects a received block and extracts the message.
//
// The syndrome is computed, resolved to an error pattern, XORed into the
// received word, and the message bits are read from the derived extraction
// positions. An unresolvable syndrome passes the block through uncorrected
// and sets BlockResult.Uncorrectable; it never fails the call.
// Returns ErrInvalidBlockLength if the received length is not n.
func (c *Code) DecodeBlock(received bits.Bits) (bits.Bits, BlockResult, error) {
	syndrome, err := c.Syndrome(received)
	if err != nil {
		return nil, BlockResult{}, qerrors.NewCodeError("linearcode.DecodeBlock", qerrors.ErrInvalidBlockLength)
	}

	pattern, res := c.Resolve(syndrome)
	result := BlockResult{
		UsedSearch:    res != ResolutionTable,
		Uncorrectable: res == ResolutionNone,
	}

	corrected := received
	if !pattern.IsZero() {
		corrected, _ = received.XOR(pattern) // lengths match by construction
		result.CorrectedPositions = pattern.Ones()
	}

	message := make(bits.Bits, c.k)
	for i, p := range c.msgPos {
		message[i] = corrected[p]
	}
	return message, result, nil
}
