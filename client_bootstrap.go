package striveclient

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
)

// Bootstrap runs the one-time startup check that establishes initial
// session state. On public token-bearing routes (attach the current route
// with [WithRoute]) the profile check is skipped entirely — an
// authentication probe there would be premature. Everywhere else the
// profile endpoint decides: a blocked user and every failure, 401 included,
// resolve to anonymous without surfacing an error, because the absence of a
// session is an expected state.
//
// The loading flag is cleared exactly once, whichever path runs; calling
// Bootstrap on an already-resolved store is a no-op.
func (c *Client) Bootstrap(ctx context.Context) {
	if c.store.Resolved() {
		return
	}

	route := RouteFromContext(ctx)
	if c.isPublicTokenRoute(route) {
		c.metricInc(MetricBootstrapSkipped)
		c.logger.Debug("bootstrap skipped on public token route",
			slog.String("route", route),
		)
		c.store.Clear()
		return
	}

	var u UserSummary
	err := c.transport.DoJSON(ctx, http.MethodGet, c.config.Endpoints.Profile, nil, &u)
	switch {
	case err != nil:
		c.metricInc(MetricBootstrapAnonymous)
		c.logger.Debug("bootstrap resolved anonymous", slog.Any("cause", err))
		c.store.Clear()
	case u.Blocked:
		// Do not surface the raw profile of a disabled account.
		c.metricInc(MetricBootstrapBlocked)
		c.store.Clear()
	default:
		c.metricInc(MetricBootstrapAuthenticated)
		c.store.SetUser(u)
	}
}

func (c *Client) isPublicTokenRoute(route string) bool {
	if route == "" {
		return false
	}
	for _, public := range c.config.Routes.PublicTokenRoutes {
		if public != "" && strings.HasPrefix(route, public) {
			return true
		}
	}
	return false
}
