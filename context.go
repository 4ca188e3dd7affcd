package striveclient

import (
	"context"

	"github.com/strivelabs/striveclient/transport"
)

// WithRoute attaches the in-app route driving a call to ctx. The bootstrap
// flow uses it to skip the profile check on public token-bearing routes,
// and the transport includes it in log records.
func WithRoute(ctx context.Context, route string) context.Context {
	return transport.WithRoute(ctx, route)
}

// RouteFromContext returns the route attached with [WithRoute], or "".
func RouteFromContext(ctx context.Context) string {
	return transport.RouteFromContext(ctx)
}
