package backend

import "context"

// RequestPasswordReset asks the backend to email a reset code.
func (c *Client) RequestPasswordReset(ctx context.Context, email string) error {
	body := map[string]string{"email": email}
	return c.post(ctx, "/password-reset/request", body, nil)
}

// ConfirmPasswordReset exchanges the emailed code for a new password.
func (c *Client) ConfirmPasswordReset(ctx context.Context, email, code, newPassword string) error {
	body := map[string]string{
		"email":        email,
		"code":         code,
		"new_password": newPassword,
	}
	return c.post(ctx, "/password-reset/confirm", body, nil)
}
