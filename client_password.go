package striveclient

import (
	"context"
	"net/http"
)

type emailPayload struct {
	Email string `json:"email"`
}

type tokenPasswordPayload struct {
	Token    string `json:"token"`
	Password string `json:"password,omitempty"`
}

// ForgotPassword asks the server to mail a reset link. The response is
// intentionally indistinguishable for known and unknown addresses; only
// transport-level failures surface.
func (c *Client) ForgotPassword(ctx context.Context, email string) error {
	err := c.transport.DoJSON(ctx, http.MethodPost, c.config.Endpoints.ForgotPassword, emailPayload{Email: email}, nil)
	if err != nil {
		return err
	}
	c.metricInc(MetricPasswordResetRequest)
	return nil
}

// ResetPassword redeems a mailed reset token. It does not log the user in;
// the reset page sends them to login afterwards.
func (c *Client) ResetPassword(ctx context.Context, token, newPassword string) error {
	err := c.transport.DoJSON(ctx, http.MethodPost, c.config.Endpoints.ResetPassword, tokenPasswordPayload{
		Token:    token,
		Password: newPassword,
	}, nil)
	if err != nil {
		return err
	}
	c.metricInc(MetricPasswordResetConfirm)
	return nil
}

// ValidateSetupToken checks an invite token before showing the
// password-setup form. Lives on a public token-bearing route, so bootstrap
// never runs a profile check around it.
func (c *Client) ValidateSetupToken(ctx context.Context, token string) error {
	return c.transport.DoJSON(ctx, http.MethodPost, c.config.Endpoints.SetupValidate, tokenPasswordPayload{Token: token}, nil)
}

// SetupPassword sets the initial password for an invited account.
func (c *Client) SetupPassword(ctx context.Context, token, password string) error {
	err := c.transport.DoJSON(ctx, http.MethodPost, c.config.Endpoints.SetupPassword, tokenPasswordPayload{
		Token:    token,
		Password: password,
	}, nil)
	if err != nil {
		return err
	}
	c.metricInc(MetricPasswordSetup)
	return nil
}
