package striveclient

import (
	internalmetrics "github.com/strivelabs/striveclient/internal/metrics"
)

// MetricID identifies a specific counter or histogram bucket in the
// in-process metrics system.
type MetricID = internalmetrics.MetricID

const (
	MetricRequestSent            = internalmetrics.MetricRequestSent
	MetricCSRFCookieHit          = internalmetrics.MetricCSRFCookieHit
	MetricCSRFFetched            = internalmetrics.MetricCSRFFetched
	MetricCSRFFetchFailed        = internalmetrics.MetricCSRFFetchFailed
	MetricAuthRetry              = internalmetrics.MetricAuthRetry
	MetricRefreshSuccess         = internalmetrics.MetricRefreshSuccess
	MetricRefreshFailure         = internalmetrics.MetricRefreshFailure
	MetricRefreshShared          = internalmetrics.MetricRefreshShared
	MetricProactiveRefresh       = internalmetrics.MetricProactiveRefresh
	MetricForcedLogout           = internalmetrics.MetricForcedLogout
	MetricUnreachable            = internalmetrics.MetricUnreachable
	MetricBreakerOpen            = internalmetrics.MetricBreakerOpen
	MetricBootstrapAuthenticated = internalmetrics.MetricBootstrapAuthenticated
	MetricBootstrapAnonymous     = internalmetrics.MetricBootstrapAnonymous
	MetricBootstrapSkipped       = internalmetrics.MetricBootstrapSkipped
	MetricBootstrapBlocked       = internalmetrics.MetricBootstrapBlocked
	MetricLoginSuccess           = internalmetrics.MetricLoginSuccess
	MetricLoginFailure           = internalmetrics.MetricLoginFailure
	MetricLoginBlocked           = internalmetrics.MetricLoginBlocked
	MetricRegisterSuccess        = internalmetrics.MetricRegisterSuccess
	MetricRegisterFailure        = internalmetrics.MetricRegisterFailure
	MetricLogout                 = internalmetrics.MetricLogout
	MetricProfileUpdateSuccess   = internalmetrics.MetricProfileUpdateSuccess
	MetricProfileUpdateFailure   = internalmetrics.MetricProfileUpdateFailure
	MetricPasswordResetRequest   = internalmetrics.MetricPasswordResetRequest
	MetricPasswordResetConfirm   = internalmetrics.MetricPasswordResetConfirm
	MetricPasswordSetup          = internalmetrics.MetricPasswordSetup
	MetricRequestLatency         = internalmetrics.MetricRequestLatency

	metricIDCount = internalmetrics.MetricIDCount
)

// Metrics holds atomic counters and optional latency histograms.
type Metrics = internalmetrics.Metrics

// MetricsSnapshot is a point-in-time deep copy of all metrics.
type MetricsSnapshot = internalmetrics.Snapshot

// LatencyBucketBoundsMS returns the finite histogram bucket bounds in
// milliseconds; the final bucket is unbounded.
func LatencyBucketBoundsMS() []int64 {
	return internalmetrics.BucketBoundsMS()
}

// NewMetrics creates a [Metrics] instance configured by the given
// [MetricsConfig]. When Enabled is false, all operations are no-ops.
func NewMetrics(cfg MetricsConfig) *Metrics {
	return internalmetrics.New(internalmetrics.Config{
		Enabled:       cfg.Enabled,
		EnableLatency: cfg.EnableLatencyHistograms,
	})
}
