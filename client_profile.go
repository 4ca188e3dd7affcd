package striveclient

import (
	"context"
	"net/http"
)

// UpdateProfile patches the current user's server record and, on success,
// replaces the stored session user. Failures propagate to the caller for
// inline display; session state is left untouched.
func (c *Client) UpdateProfile(ctx context.Context, patch ProfilePatch) (*UserSummary, error) {
	_, cur := c.store.Snapshot()
	if cur == nil {
		return nil, ErrNotAuthenticated
	}

	var u UserSummary
	err := c.transport.DoJSON(ctx, http.MethodPatch, c.userPath(cur.ID), patch, &u)
	if err != nil {
		c.metricInc(MetricProfileUpdateFailure)
		return nil, err
	}

	c.store.SetUser(u)
	c.metricInc(MetricProfileUpdateSuccess)
	return &u, nil
}

// UpdateLocal replaces the stored user without a network call, for flows
// (checkout) that already hold the authoritative updated record.
func (c *Client) UpdateLocal(u UserSummary) {
	c.store.SetUser(u)
}
