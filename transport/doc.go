// Package transport centralizes outbound request decoration and the single
// failure-recovery path of the storefront API client.
//
// # Request lifecycle
//
// Every request gets a correlation id and, when its method is
// state-changing, a fresh anti-forgery header read from the cookie jar
// (with a one-shot token fetch as fallback). A 401 on a non-excluded
// endpoint triggers at most one silent refresh followed by one re-send of
// the original request; concurrent 401s share a single refresh through a
// singleflight group. When the refresh itself fails, the registered session
// sink is cleared and a hard redirect to the login route is issued — the
// only forced full navigation in the system.
//
// # Architecture boundaries
//
// This package owns HTTP mechanics, the error taxonomy, and the circuit
// breaker. It reaches session state only through the narrow [SessionSink]
// registered by the store, never through package-level state.
//
// # What this package must NOT do
//
//   - Retry anything more than once.
//   - Interpret profile payloads or make login/role decisions.
//   - Validate server-issued tokens. The expiry peek parses without
//     signature verification; the server remains the authority.
package transport
