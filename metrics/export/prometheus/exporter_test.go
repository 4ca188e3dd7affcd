package prometheus

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	striveclient "github.com/strivelabs/striveclient"
)

type fakeSource struct {
	snapshot striveclient.MetricsSnapshot
}

func (f fakeSource) MetricsSnapshot() striveclient.MetricsSnapshot { return f.snapshot }

func TestRenderEmptyWhenMetricsDisabled(t *testing.T) {
	exp := NewPrometheusExporterFromSource(fakeSource{
		snapshot: striveclient.MetricsSnapshot{
			Counters:   map[striveclient.MetricID]uint64{},
			Histograms: map[striveclient.MetricID][]uint64{},
		},
	})

	if got := exp.Render(); got != "" {
		t.Fatalf("expected empty output for disabled metrics, got:\n%s", got)
	}
}

func TestRenderIncludesCounterAndHistogram(t *testing.T) {
	exp := NewPrometheusExporterFromSource(fakeSource{
		snapshot: striveclient.MetricsSnapshot{
			Counters: map[striveclient.MetricID]uint64{
				striveclient.MetricLoginSuccess: 7,
			},
			Histograms: map[striveclient.MetricID][]uint64{
				striveclient.MetricRequestLatency: {1, 2, 3, 4, 5, 6, 7, 8},
			},
		},
	})

	out := exp.Render()
	if !strings.Contains(out, "striveclient_login_success_total 7") {
		t.Fatalf("expected login_success counter in output, got:\n%s", out)
	}
	if !strings.Contains(out, "striveclient_request_latency_seconds_bucket{le=\"0.005\"} 1") {
		t.Fatalf("expected first histogram bucket in output, got:\n%s", out)
	}
	if !strings.Contains(out, "striveclient_request_latency_seconds_bucket{le=\"+Inf\"} 36") {
		t.Fatalf("expected +Inf cumulative bucket in output, got:\n%s", out)
	}
	if !strings.Contains(out, "striveclient_request_latency_seconds_count 36") {
		t.Fatalf("expected histogram count in output, got:\n%s", out)
	}
}

func TestRenderPadsShortBucketSlices(t *testing.T) {
	exp := NewPrometheusExporterFromSource(fakeSource{
		snapshot: striveclient.MetricsSnapshot{
			Counters: map[striveclient.MetricID]uint64{},
			Histograms: map[striveclient.MetricID][]uint64{
				striveclient.MetricRequestLatency: {2},
			},
		},
	})

	out := exp.Render()
	if !strings.Contains(out, "striveclient_request_latency_seconds_bucket{le=\"+Inf\"} 2") {
		t.Fatalf("expected padded cumulative bucket, got:\n%s", out)
	}
}

func TestHandlerWritesPrometheusContentType(t *testing.T) {
	exp := NewPrometheusExporterFromSource(fakeSource{
		snapshot: striveclient.MetricsSnapshot{
			Counters:   map[striveclient.MetricID]uint64{striveclient.MetricLoginSuccess: 1},
			Histograms: map[striveclient.MetricID][]uint64{},
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rec := httptest.NewRecorder()
	exp.Handler().ServeHTTP(rec, req)

	if got := rec.Header().Get("Content-Type"); !strings.Contains(got, "text/plain") {
		t.Fatalf("expected prometheus content type, got %q", got)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestRenderNilExporterIsEmpty(t *testing.T) {
	var exp *PrometheusExporter
	if got := exp.Render(); got != "" {
		t.Fatalf("nil exporter rendered %q", got)
	}
}

func BenchmarkRender(b *testing.B) {
	exp := NewPrometheusExporterFromSource(fakeSource{
		snapshot: striveclient.MetricsSnapshot{
			Counters: map[striveclient.MetricID]uint64{
				striveclient.MetricRequestSent:    1000,
				striveclient.MetricLoginSuccess:   40,
				striveclient.MetricRefreshSuccess: 800,
				striveclient.MetricRefreshFailure: 10,
			},
			Histograms: map[striveclient.MetricID][]uint64{
				striveclient.MetricRequestLatency: {10, 20, 30, 40, 50, 60, 70, 80},
			},
		},
	})

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = exp.Render()
	}
}
