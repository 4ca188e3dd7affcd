// Package prometheus renders client metric snapshots in Prometheus text
// exposition format.
//
// The exporter is pull-based: each Render or scrape takes a fresh snapshot
// from the client, so no background goroutine exists and there is nothing
// to close.
//
// # What this package must NOT do
//
//   - Mutate metric state.
//   - Import any other exporter package.
package prometheus
