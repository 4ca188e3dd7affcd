package striveclient

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
)

type loginPayload struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login authenticates against the login endpoint and stores the returned
// user as session state. Credentials are never persisted client-side; the
// server issues the durable cookie.
//
// Failures map to user-facing categories: [ErrUserNotFound],
// [ErrInvalidCredentials], [ErrAccountBlocked], [ErrUnreachable], and
// [ErrLoginFailed] for everything else.
func (c *Client) Login(ctx context.Context, email, password string) (*UserSummary, error) {
	var u UserSummary
	err := c.transport.DoJSON(ctx, http.MethodPost, c.config.Endpoints.Login, loginPayload{
		Email:    email,
		Password: password,
	}, &u)
	if err != nil {
		mapped := mapLoginError(err)
		if errors.Is(mapped, ErrAccountBlocked) {
			c.metricInc(MetricLoginBlocked)
		} else {
			c.metricInc(MetricLoginFailure)
		}
		return nil, mapped
	}
	if u.Blocked {
		// Valid credentials on a disabled account: the session stays
		// anonymous and no profile is stored.
		c.metricInc(MetricLoginBlocked)
		return nil, ErrAccountBlocked
	}

	c.store.SetUser(u)
	c.metricInc(MetricLoginSuccess)
	return &u, nil
}

func mapLoginError(err error) error {
	switch {
	case errors.Is(err, ErrNotFound):
		return ErrUserNotFound
	case errors.Is(err, ErrUnauthenticated):
		return ErrInvalidCredentials
	case errors.Is(err, ErrAccountBlocked):
		return ErrAccountBlocked
	case errors.Is(err, ErrUnreachable):
		return err
	default:
		return errors.Join(ErrLoginFailed, err)
	}
}

// Logout clears session state immediately and unconditionally, then
// notifies the server best-effort. A failed notification is swallowed: the
// client-side effect already happened, and callers must tolerate in-flight
// requests settling after the local clear.
func (c *Client) Logout(ctx context.Context) {
	c.store.Clear()
	c.metricInc(MetricLogout)

	if err := c.transport.DoJSON(ctx, http.MethodPost, c.config.Endpoints.Logout, nil, nil); err != nil {
		c.logger.Debug("logout notification failed", slog.Any("cause", err))
	}
}
