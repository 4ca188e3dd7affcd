// Package cookies reads authentication cookies out of an http.CookieJar.
//
// # Architecture boundaries
//
// This package is a read-only view over the jar. Cookie writes happen only
// through Set-Cookie handling in net/http; nothing here mutates the jar.
//
// # What this package must NOT do
//
//   - Store or cache cookie values between calls.
//   - Read the refresh credential's value (presence checks only).
package cookies
