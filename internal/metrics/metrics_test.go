package metrics

import (
	"sync"
	"testing"
	"time"
)

func TestIncAndSnapshot(t *testing.T) {
	m := New(Config{Enabled: true})

	m.Inc(MetricRequestSent)
	m.Inc(MetricRequestSent)
	m.Inc(MetricLoginSuccess)

	snap := m.Snapshot()
	if got := snap.Counters[MetricRequestSent]; got != 2 {
		t.Fatalf("MetricRequestSent = %d, want 2", got)
	}
	if got := snap.Counters[MetricLoginSuccess]; got != 1 {
		t.Fatalf("MetricLoginSuccess = %d, want 1", got)
	}
	if _, ok := snap.Counters[MetricLoginFailure]; ok {
		t.Fatal("zero counter must not appear in snapshot")
	}
}

func TestDisabledMetricsAreNoOps(t *testing.T) {
	m := New(Config{Enabled: false})

	m.Inc(MetricRequestSent)
	m.Observe(MetricRequestLatency, 10*time.Millisecond)

	snap := m.Snapshot()
	if len(snap.Counters) != 0 || len(snap.Histograms) != 0 {
		t.Fatalf("disabled metrics produced data: %+v", snap)
	}
}

func TestNilReceiverIsSafe(t *testing.T) {
	var m *Metrics
	m.Inc(MetricRequestSent)
	m.Observe(MetricRequestLatency, time.Millisecond)

	snap := m.Snapshot()
	if snap.Counters == nil || snap.Histograms == nil {
		t.Fatal("nil receiver snapshot must return initialized maps")
	}
}

func TestObserveBucketsByBound(t *testing.T) {
	m := New(Config{Enabled: true, EnableLatency: true})

	cases := []struct {
		d      time.Duration
		bucket int
	}{
		{3 * time.Millisecond, 0},
		{5 * time.Millisecond, 0},
		{6 * time.Millisecond, 1},
		{25 * time.Millisecond, 2},
		{80 * time.Millisecond, 4},
		{999 * time.Millisecond, 6},
		{5 * time.Second, 7},
	}
	for _, tc := range cases {
		m.Observe(MetricRequestLatency, tc.d)
	}

	snap := m.Snapshot()
	buckets := snap.Histograms[MetricRequestLatency]
	if len(buckets) != HistogramBuckets {
		t.Fatalf("expected %d buckets, got %d", HistogramBuckets, len(buckets))
	}
	want := make([]uint64, HistogramBuckets)
	for _, tc := range cases {
		want[tc.bucket]++
	}
	for i := range want {
		if buckets[i] != want[i] {
			t.Fatalf("bucket %d = %d, want %d (all: %v)", i, buckets[i], want[i], buckets)
		}
	}
}

func TestLatencyDisabledKeepsCounters(t *testing.T) {
	m := New(Config{Enabled: true, EnableLatency: false})

	m.Inc(MetricRequestSent)
	m.Observe(MetricRequestLatency, time.Millisecond)

	snap := m.Snapshot()
	if snap.Counters[MetricRequestSent] != 1 {
		t.Fatal("counter lost when latency disabled")
	}
	if len(snap.Histograms) != 0 {
		t.Fatalf("unexpected histogram data: %+v", snap.Histograms)
	}
}

func TestOutOfRangeIDIgnored(t *testing.T) {
	m := New(Config{Enabled: true, EnableLatency: true})
	m.Inc(MetricIDCount)
	m.Inc(MetricID(1000))
	m.Observe(MetricID(1000), time.Millisecond)

	snap := m.Snapshot()
	if len(snap.Counters) != 0 {
		t.Fatalf("out-of-range IDs recorded: %+v", snap.Counters)
	}
}

func TestConcurrentIncrements(t *testing.T) {
	m := New(Config{Enabled: true})

	const workers = 8
	const perWorker = 10000

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < perWorker; i++ {
				m.Inc(MetricRequestSent)
			}
		}()
	}
	wg.Wait()

	if got := m.Snapshot().Counters[MetricRequestSent]; got != workers*perWorker {
		t.Fatalf("lost increments: got %d, want %d", got, workers*perWorker)
	}
}

func TestBucketBoundsMSReturnsCopy(t *testing.T) {
	bounds := BucketBoundsMS()
	if len(bounds) != HistogramBuckets-1 {
		t.Fatalf("expected %d finite bounds, got %d", HistogramBuckets-1, len(bounds))
	}
	bounds[0] = -1
	if BucketBoundsMS()[0] == -1 {
		t.Fatal("BucketBoundsMS leaked internal slice")
	}
}
