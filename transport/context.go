package transport

import "context"

type routeContextKey struct{}

// WithRoute attaches the in-app route that originated a request to ctx. The
// transport adds it to log records, and the bootstrap flow uses it to skip
// the profile check on public token-bearing routes.
func WithRoute(ctx context.Context, route string) context.Context {
	return context.WithValue(ctx, routeContextKey{}, route)
}

// RouteFromContext returns the route attached by [WithRoute], or "".
func RouteFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	route, _ := ctx.Value(routeContextKey{}).(string)
	return route
}
