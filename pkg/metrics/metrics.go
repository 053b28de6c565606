package metrics

import (
	"sync"
	"sync/atomic"
	"time"
)

// Collector aggregates counters from reconciliation sessions and codecs.
type Collector struct {
	// Codec counters
	keysEncoded   atomic.Uint64
	keysDecoded   atomic.Uint64
	blocksEncoded atomic.Uint64
	blocksDecoded atomic.Uint64
	bitsCorrected atomic.Uint64
	searchBlocks  atomic.Uint64
	uncorrectable atomic.Uint64
	errorsLocated atomic.Uint64

	// Sifting counters
	bitsSifted    atomic.Uint64
	bitsDiscarded atomic.Uint64

	// Session counters
	sessionsStarted atomic.Uint64
	sessionsFailed  atomic.Uint64
	verifyPassed    atomic.Uint64
	verifyFailed    atomic.Uint64

	// Latency histograms
	encodeLatency *Histogram
	decodeLatency *Histogram

	createdAt time.Time
	labels    Labels
}

// Labels represents key-value pairs for metric labeling.
type Labels map[string]string

// LatencyBuckets are the default bucket bounds for encode/decode
// durations, in microseconds.
var LatencyBuckets = []float64{1, 5, 10, 25, 50, 100, 250, 500, 1000}

// NewCollector creates a new metrics collector.
func NewCollector(labels Labels) *Collector {
	if labels == nil {
		labels = make(Labels)
	}

	return &Collector{
		encodeLatency: NewHistogram(LatencyBuckets),
		decodeLatency: NewHistogram(LatencyBuckets),
		createdAt:     time.Now(),
		labels:        labels,
	}
}

// --- Codec Metrics ---

// KeyEncoded records one key encoding that produced the given number of
// codeword blocks.
func (c *Collector) KeyEncoded(blocks int, d time.Duration) {
	c.keysEncoded.Add(1)
	c.blocksEncoded.Add(uint64(blocks))
	c.encodeLatency.Observe(float64(d.Microseconds()))
}

// KeyDecoded records one key decoding with its per-block outcome totals.
func (c *Collector) KeyDecoded(blocks, correctedBits, searchBlocks, uncorrectable int, d time.Duration) {
	c.keysDecoded.Add(1)
	c.blocksDecoded.Add(uint64(blocks))
	c.bitsCorrected.Add(uint64(correctedBits))
	c.searchBlocks.Add(uint64(searchBlocks))
	c.uncorrectable.Add(uint64(uncorrectable))
	c.decodeLatency.Observe(float64(d.Microseconds()))
}

// ErrorsLocated records the number of flipped positions reported by one
// locate pass.
func (c *Collector) ErrorsLocated(n int) {
	c.errorsLocated.Add(uint64(n))
}

// --- Sifting Metrics ---

// Sifted records the outcome of one basis reconciliation pass.
func (c *Collector) Sifted(kept, discarded int) {
	c.bitsSifted.Add(uint64(kept))
	c.bitsDiscarded.Add(uint64(discarded))
}

// --- Session Metrics ---

// SessionStarted increments the session counter.
func (c *Collector) SessionStarted() {
	c.sessionsStarted.Add(1)
}

// SessionFailed records a session that ended in error.
func (c *Collector) SessionFailed() {
	c.sessionsFailed.Add(1)
}

// VerifyResult records the outcome of a key confirmation check.
func (c *Collector) VerifyResult(ok bool) {
	if ok {
		c.verifyPassed.Add(1)
	} else {
		c.verifyFailed.Add(1)
	}
}

// --- Snapshot ---

// Snapshot is a point-in-time copy of all collector state.
type Snapshot struct {
	Timestamp time.Time
	Uptime    time.Duration

	KeysEncoded         uint64
	KeysDecoded         uint64
	BlocksEncoded       uint64
	BlocksDecoded       uint64
	BitsCorrected       uint64
	SearchBlocks        uint64
	UncorrectableBlocks uint64
	ErrorsLocated       uint64

	BitsSifted    uint64
	BitsDiscarded uint64

	SessionsStarted uint64
	SessionsFailed  uint64
	VerifyPassed    uint64
	VerifyFailed    uint64

	EncodeLatency HistogramSummary
	DecodeLatency HistogramSummary

	Labels Labels
}

// Snapshot returns a point-in-time snapshot of all metrics.
func (c *Collector) Snapshot() Snapshot {
	return Snapshot{
		Timestamp:           time.Now(),
		Uptime:              time.Since(c.createdAt),
		KeysEncoded:         c.keysEncoded.Load(),
		KeysDecoded:         c.keysDecoded.Load(),
		BlocksEncoded:       c.blocksEncoded.Load(),
		BlocksDecoded:       c.blocksDecoded.Load(),
		BitsCorrected:       c.bitsCorrected.Load(),
		SearchBlocks:        c.searchBlocks.Load(),
		UncorrectableBlocks: c.uncorrectable.Load(),
		ErrorsLocated:       c.errorsLocated.Load(),
		BitsSifted:          c.bitsSifted.Load(),
		BitsDiscarded:       c.bitsDiscarded.Load(),
		SessionsStarted:     c.sessionsStarted.Load(),
		SessionsFailed:      c.sessionsFailed.Load(),
		VerifyPassed:        c.verifyPassed.Load(),
		VerifyFailed:        c.verifyFailed.Load(),
		EncodeLatency:       c.encodeLatency.Summary(),
		DecodeLatency:       c.decodeLatency.Summary(),
		Labels:              c.labels,
	}
}

// Reset clears all metrics (useful for testing).
func (c *Collector) Reset() {
	c.keysEncoded.Store(0)
	c.keysDecoded.Store(0)
	c.blocksEncoded.Store(0)
	c.blocksDecoded.Store(0)
	c.bitsCorrected.Store(0)
	c.searchBlocks.Store(0)
	c.uncorrectable.Store(0)
	c.errorsLocated.Store(0)
	c.bitsSifted.Store(0)
	c.bitsDiscarded.Store(0)
	c.sessionsStarted.Store(0)
	c.sessionsFailed.Store(0)
	c.verifyPassed.Store(0)
	c.verifyFailed.Store(0)
	c.encodeLatency.Reset()
	c.decodeLatency.Reset()
	c.createdAt = time.Now()
}

// --- Global Collector ---

var (
	globalCollector     *Collector
	globalCollectorOnce sync.Once
)

// Global returns the global metrics collector, creating one with default
// settings on first use.
func Global() *Collector {
	globalCollectorOnce.Do(func() {
		globalCollector = NewCollector(Labels{"instance": "default"})
	})
	return globalCollector
}

// SetGlobal sets the global metrics collector. Call during initialization
// before any metrics are recorded.
func SetGlobal(c *Collector) {
	globalCollector = c
}
