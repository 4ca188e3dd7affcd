package striveclient

import (
	"context"
	"net/http"
)

// Register creates an account in one step and, like login, stores the
// returned user as session state. Error bodies pass through unmapped so
// registration UIs can show field-level messages; unwrap with errors.As
// into [*APIError].
func (c *Client) Register(ctx context.Context, input RegisterInput) (*UserSummary, error) {
	var u UserSummary
	err := c.transport.DoJSON(ctx, http.MethodPost, c.config.Endpoints.Register, input, &u)
	if err != nil {
		c.metricInc(MetricRegisterFailure)
		return nil, err
	}
	if u.Blocked {
		c.metricInc(MetricRegisterFailure)
		return nil, ErrAccountBlocked
	}

	c.store.SetUser(u)
	c.metricInc(MetricRegisterSuccess)
	return &u, nil
}

// RequestRegistration starts the two-step OTP registration: the server
// mails a one-time code to the address. Session state is untouched until
// [Client.VerifyRegistration] succeeds.
func (c *Client) RequestRegistration(ctx context.Context, input RegisterInput) error {
	err := c.transport.DoJSON(ctx, http.MethodPost, c.config.Endpoints.RegisterRequest, input, nil)
	if err != nil {
		c.metricInc(MetricRegisterFailure)
		return err
	}
	return nil
}

type registerVerifyPayload struct {
	Email string `json:"email"`
	OTP   string `json:"otp"`
}

// VerifyRegistration completes OTP registration. Success is
// login-equivalent: the returned user becomes the session.
func (c *Client) VerifyRegistration(ctx context.Context, email, otp string) (*UserSummary, error) {
	var u UserSummary
	err := c.transport.DoJSON(ctx, http.MethodPost, c.config.Endpoints.RegisterVerify, registerVerifyPayload{
		Email: email,
		OTP:   otp,
	}, &u)
	if err != nil {
		c.metricInc(MetricRegisterFailure)
		return nil, err
	}

	c.store.SetUser(u)
	c.metricInc(MetricRegisterSuccess)
	return &u, nil
}
