package metrics

import (
	"sync/atomic"
	"time"
)

// MetricID identifies a single counter or histogram in the metrics table.
type MetricID uint16

const (
	MetricRequestSent MetricID = iota
	MetricCSRFCookieHit
	MetricCSRFFetched
	MetricCSRFFetchFailed
	MetricAuthRetry
	MetricRefreshSuccess
	MetricRefreshFailure
	MetricRefreshShared
	MetricProactiveRefresh
	MetricForcedLogout
	MetricUnreachable
	MetricBreakerOpen
	MetricBootstrapAuthenticated
	MetricBootstrapAnonymous
	MetricBootstrapSkipped
	MetricBootstrapBlocked
	MetricLoginSuccess
	MetricLoginFailure
	MetricLoginBlocked
	MetricRegisterSuccess
	MetricRegisterFailure
	MetricLogout
	MetricProfileUpdateSuccess
	MetricProfileUpdateFailure
	MetricPasswordResetRequest
	MetricPasswordResetConfirm
	MetricPasswordSetup
	MetricRequestLatency

	// MetricIDCount is the number of defined metric IDs. New IDs must be
	// appended before it.
	MetricIDCount
)

// HistogramBuckets is the number of fixed latency buckets per histogram.
const HistogramBuckets = 8

// Bucket upper bounds in milliseconds. The last bucket is +Inf.
var bucketBoundsMS = [HistogramBuckets - 1]int64{5, 10, 25, 50, 100, 250, 1000}

// BucketBoundsMS returns the upper bounds of the finite latency buckets,
// in milliseconds.
func BucketBoundsMS() []int64 {
	out := make([]int64, len(bucketBoundsMS))
	copy(out, bucketBoundsMS[:])
	return out
}

// Config controls metric collection. When Enabled is false every operation
// is a no-op.
type Config struct {
	Enabled       bool
	EnableLatency bool
}

// slot is a cache-line-padded counter. Padding keeps concurrent increments
// of adjacent IDs off the same cache line.
type slot struct {
	value uint64
	_     [7]uint64
}

// Metrics holds lock-free counters and optional latency histograms.
// The write path does not allocate.
type Metrics struct {
	enabled bool
	latency bool

	counters   [MetricIDCount]slot
	histograms [MetricIDCount][HistogramBuckets]slot
}

// New creates a Metrics instance configured by cfg.
func New(cfg Config) *Metrics {
	return &Metrics{
		enabled: cfg.Enabled,
		latency: cfg.Enabled && cfg.EnableLatency,
	}
}

// Inc increments the counter for id by one.
func (m *Metrics) Inc(id MetricID) {
	if m == nil || !m.enabled || id >= MetricIDCount {
		return
	}
	atomic.AddUint64(&m.counters[id].value, 1)
}

// Observe records a latency sample for id into the fixed bucket layout.
func (m *Metrics) Observe(id MetricID, d time.Duration) {
	if m == nil || !m.latency || id >= MetricIDCount {
		return
	}
	ms := d.Milliseconds()
	bucket := HistogramBuckets - 1
	for i, bound := range bucketBoundsMS {
		if ms <= bound {
			bucket = i
			break
		}
	}
	atomic.AddUint64(&m.histograms[id][bucket].value, 1)
}

// Snapshot is a point-in-time deep copy of all non-zero metrics.
type Snapshot struct {
	Counters   map[MetricID]uint64
	Histograms map[MetricID][]uint64
}

// Snapshot copies every non-zero counter and histogram. It is safe to call
// concurrently with writers; individual reads are atomic, the snapshot as a
// whole is not.
func (m *Metrics) Snapshot() Snapshot {
	snap := Snapshot{
		Counters:   map[MetricID]uint64{},
		Histograms: map[MetricID][]uint64{},
	}
	if m == nil || !m.enabled {
		return snap
	}
	for id := MetricID(0); id < MetricIDCount; id++ {
		if v := atomic.LoadUint64(&m.counters[id].value); v != 0 {
			snap.Counters[id] = v
		}
	}
	if !m.latency {
		return snap
	}
	for id := MetricID(0); id < MetricIDCount; id++ {
		var buckets []uint64
		for b := 0; b < HistogramBuckets; b++ {
			v := atomic.LoadUint64(&m.histograms[id][b].value)
			if buckets == nil && v == 0 {
				continue
			}
			if buckets == nil {
				buckets = make([]uint64, HistogramBuckets)
			}
			buckets[b] = v
		}
		if buckets != nil {
			snap.Histograms[id] = buckets
		}
	}
	return snap
}
