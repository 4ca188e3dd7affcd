// Package guard decides, per navigation, whether a protected view may
// render given current session state.
//
// # Guards
//
//   - [Guard.Evaluate] — immediate decision; DecisionPending while the
//     session is unresolved.
//   - [Guard.Resolve] — waits for bootstrap to finish, then decides.
//
// # Architecture boundaries
//
// This package translates session state into navigation outcomes. It does
// NOT perform authentication, issue requests, or force hard navigations —
// only in-app routing through the injected [Navigator].
//
// # What this package must NOT do
//
//   - Mutate session state.
//   - Throw: a guard redirects or withholds rendering, never errors.
//   - Prompt more than once per instance.
package guard
