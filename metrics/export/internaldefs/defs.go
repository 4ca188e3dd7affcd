package internaldefs

import (
	striveclient "github.com/strivelabs/striveclient"
)

// CounterDef names one exported counter.
type CounterDef struct {
	ID   striveclient.MetricID
	Name string
	Help string
}

// HistogramDef names one exported histogram.
type HistogramDef struct {
	ID   striveclient.MetricID
	Name string
	Help string
}

// CounterDefs is the stable counter table shared by every exporter.
var CounterDefs = []CounterDef{
	{ID: striveclient.MetricRequestSent, Name: "striveclient_request_sent_total", Help: "Requests entering the wrapper."},
	{ID: striveclient.MetricCSRFCookieHit, Name: "striveclient_csrf_cookie_hit_total", Help: "State-changing requests decorated from the csrf cookie."},
	{ID: striveclient.MetricCSRFFetched, Name: "striveclient_csrf_fetched_total", Help: "Anti-forgery tokens fetched from the token endpoint."},
	{ID: striveclient.MetricCSRFFetchFailed, Name: "striveclient_csrf_fetch_failed_total", Help: "Failed anti-forgery token fetches."},
	{ID: striveclient.MetricAuthRetry, Name: "striveclient_auth_retry_total", Help: "Requests entering the refresh-and-retry path after a 401."},
	{ID: striveclient.MetricRefreshSuccess, Name: "striveclient_refresh_success_total", Help: "Successful silent refresh calls."},
	{ID: striveclient.MetricRefreshFailure, Name: "striveclient_refresh_failure_total", Help: "Failed silent refresh calls."},
	{ID: striveclient.MetricRefreshShared, Name: "striveclient_refresh_shared_total", Help: "Refresh waiters that shared another caller's in-flight refresh."},
	{ID: striveclient.MetricProactiveRefresh, Name: "striveclient_proactive_refresh_total", Help: "Refreshes run ahead of an expired access token."},
	{ID: striveclient.MetricForcedLogout, Name: "striveclient_forced_logout_total", Help: "Refresh failures that cleared the session and forced login."},
	{ID: striveclient.MetricUnreachable, Name: "striveclient_unreachable_total", Help: "Requests that produced no response."},
	{ID: striveclient.MetricBreakerOpen, Name: "striveclient_breaker_open_total", Help: "Circuit breaker transitions to open."},
	{ID: striveclient.MetricBootstrapAuthenticated, Name: "striveclient_bootstrap_authenticated_total", Help: "Bootstrap checks resolving to an authenticated session."},
	{ID: striveclient.MetricBootstrapAnonymous, Name: "striveclient_bootstrap_anonymous_total", Help: "Bootstrap checks resolving anonymous."},
	{ID: striveclient.MetricBootstrapSkipped, Name: "striveclient_bootstrap_skipped_total", Help: "Bootstrap checks skipped on public token routes."},
	{ID: striveclient.MetricBootstrapBlocked, Name: "striveclient_bootstrap_blocked_total", Help: "Bootstrap checks that found a blocked account."},
	{ID: striveclient.MetricLoginSuccess, Name: "striveclient_login_success_total", Help: "Successful logins."},
	{ID: striveclient.MetricLoginFailure, Name: "striveclient_login_failure_total", Help: "Failed logins."},
	{ID: striveclient.MetricLoginBlocked, Name: "striveclient_login_blocked_total", Help: "Logins rejected for blocked accounts."},
	{ID: striveclient.MetricRegisterSuccess, Name: "striveclient_register_success_total", Help: "Successful registrations."},
	{ID: striveclient.MetricRegisterFailure, Name: "striveclient_register_failure_total", Help: "Failed registrations."},
	{ID: striveclient.MetricLogout, Name: "striveclient_logout_total", Help: "Logout operations."},
	{ID: striveclient.MetricProfileUpdateSuccess, Name: "striveclient_profile_update_success_total", Help: "Successful profile patches."},
	{ID: striveclient.MetricProfileUpdateFailure, Name: "striveclient_profile_update_failure_total", Help: "Failed profile patches."},
	{ID: striveclient.MetricPasswordResetRequest, Name: "striveclient_password_reset_request_total", Help: "Password reset requests."},
	{ID: striveclient.MetricPasswordResetConfirm, Name: "striveclient_password_reset_confirm_total", Help: "Redeemed password reset tokens."},
	{ID: striveclient.MetricPasswordSetup, Name: "striveclient_password_setup_total", Help: "Completed invite password setups."},
}

// HistogramDefs is the stable histogram table shared by every exporter.
var HistogramDefs = []HistogramDef{
	{ID: striveclient.MetricRequestLatency, Name: "striveclient_request_latency_seconds", Help: "Round-trip latency histogram."},
}

// HistogramBounds are the bucket upper bounds in seconds, as rendered in
// Prometheus le labels.
var HistogramBounds = []string{
	"0.005",
	"0.01",
	"0.025",
	"0.05",
	"0.1",
	"0.25",
	"1",
	"+Inf",
}

// HistogramBoundSuffix mirrors HistogramBounds with characters legal in
// OTel instrument names.
var HistogramBoundSuffix = []string{
	"0_005",
	"0_01",
	"0_025",
	"0_05",
	"0_1",
	"0_25",
	"1",
	"inf",
}

// NormalizeBuckets pads a snapshot bucket slice (which may be nil) to the
// fixed bucket count.
func NormalizeBuckets(raw []uint64) [8]uint64 {
	var out [8]uint64
	for i := 0; i < len(out) && i < len(raw); i++ {
		out[i] = raw[i]
	}
	return out
}

// CumulativeBuckets converts per-bucket counts into the cumulative form
// both exporters publish.
func CumulativeBuckets(raw [8]uint64) [8]uint64 {
	var out [8]uint64
	var running uint64
	for i := 0; i < len(raw); i++ {
		running += raw[i]
		out[i] = running
	}
	return out
}
