// Package striveclient is the session and request-guard core of the Strive
// storefront client: an HTTP wrapper with anti-forgery decoration and
// refresh-on-401, a process-wide session store with a three-state
// lifecycle, and a route guard that gates navigation on resolved session
// state.
//
// The package is designed for concurrent callers: Client methods are safe
// from multiple goroutines after initialization through [Builder.Build].
//
// # Architecture boundaries
//
// striveclient is the public surface. It exposes [Client], [Builder],
// [Config], and value types (UserSummary, MetricsSnapshot, Request). Flow
// orchestration lives here; HTTP mechanics live in transport, the state
// machine in session, navigation decisions in guard, and metric storage
// under internal/.
//
// # What this package must NOT do
//
//   - Expose the transport's internals, cookie handling, or retry
//     bookkeeping in its public API.
//   - Mutate session state anywhere except the auth flows on [Client]
//     (the transport's refresh-failure path goes through the registered
//     sink, never directly).
//   - Retry any request more than once.
package striveclient
