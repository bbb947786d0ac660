package api

import "context"

// Credentials is the login request payload.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResponse is the login response payload. The token is opaque to
// the client.
type AuthResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// Login exchanges credentials for a bearer token.
func (c *Client) Login(ctx context.Context, creds Credentials) (*AuthResponse, error) {
	var resp AuthResponse
	if err := c.post(ctx, "/login", creds, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Logout invalidates the session server-side. The local token is
// cleared by the session manager regardless of the outcome here.
func (c *Client) Logout(ctx context.Context) error {
	return c.post(ctx, "/logout", nil, nil)
}
