package striveclient

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/strivelabs/striveclient/session"
	"github.com/strivelabs/striveclient/transport"
)

// Client is the public surface of the session and request-guard core. It
// owns the transport wrapper and the session store; every feature area of
// the application (products, cart, orders) goes through its request
// helpers, and the auth flows below are the only writers of session state.
//
// Client methods are safe to call from multiple goroutines after
// [Builder.Build].
type Client struct {
	config    Config
	transport *transport.Client
	store     *session.Store
	metrics   *Metrics
	logger    *slog.Logger
}

// Close deregisters the session sink and drops watchers. The Client must
// not be used afterwards.
func (c *Client) Close() {
	if c == nil {
		return
	}
	c.transport.DeregisterSessionSink()
	c.store.Close()
}

// Snapshot returns the session state and a copy of the current user (nil
// when anonymous or unresolved).
func (c *Client) Snapshot() (State, *UserSummary) {
	return c.store.Snapshot()
}

// CurrentUser returns a copy of the logged-in user, or nil.
func (c *Client) CurrentUser() *UserSummary {
	_, u := c.store.Snapshot()
	return u
}

// Resolved reports whether bootstrap has completed. Guards must not decide
// before it is true.
func (c *Client) Resolved() bool {
	return c.store.Resolved()
}

// Watch registers a channel signalled on every session transition. Pair
// with [Client.Unwatch].
func (c *Client) Watch() chan struct{} {
	return c.store.Watch()
}

// Unwatch removes a watch channel.
func (c *Client) Unwatch(ch chan struct{}) {
	c.store.Unwatch(ch)
}

// MetricsSnapshot returns a deep copy of all metrics.
func (c *Client) MetricsSnapshot() MetricsSnapshot {
	if c == nil || c.metrics == nil {
		return MetricsSnapshot{
			Counters:   map[MetricID]uint64{},
			Histograms: map[MetricID][]uint64{},
		}
	}
	return c.metrics.Snapshot()
}

func (c *Client) metricInc(id MetricID) {
	if c == nil || c.metrics == nil {
		return
	}
	c.metrics.Inc(id)
}

// Do sends a raw request through the wrapper: CSRF decoration, correlation
// id, and the refresh-and-retry path all apply. Feature areas outside the
// core use this (or the JSON helpers) for every API call.
func (c *Client) Do(ctx context.Context, req *Request) (*transport.Response, error) {
	return c.transport.Do(ctx, req)
}

// GetJSON fetches path and decodes the response into out.
func (c *Client) GetJSON(ctx context.Context, path string, out any) error {
	return c.transport.DoJSON(ctx, http.MethodGet, path, nil, out)
}

// PostJSON posts in to path and decodes the response into out (either may
// be nil).
func (c *Client) PostJSON(ctx context.Context, path string, in, out any) error {
	return c.transport.DoJSON(ctx, http.MethodPost, path, in, out)
}

// PatchJSON patches path with in and decodes the response into out.
func (c *Client) PatchJSON(ctx context.Context, path string, in, out any) error {
	return c.transport.DoJSON(ctx, http.MethodPatch, path, in, out)
}

// DeleteJSON deletes path.
func (c *Client) DeleteJSON(ctx context.Context, path string) error {
	return c.transport.DoJSON(ctx, http.MethodDelete, path, nil, nil)
}

func (c *Client) userPath(id string) string {
	return c.config.Endpoints.Users + id + "/"
}
