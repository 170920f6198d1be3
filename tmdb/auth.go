package tmdb

import (
	"context"
	"fmt"
)

// AuthBaseURL is where users grant an application access to their account
const AuthBaseURL = "http://themoviedb.org/auth/"

// GetToken requests a fresh authentication token
func (c *Client) GetToken(ctx context.Context) (string, error) {
	result, err := c.get(ctx, "Auth.getToken", nil)
	if err != nil {
		return "", err
	}

	token, ok := result.Lookup("token")
	if !ok || token == "" {
		return "", ErrNoToken
	}
	return token, nil
}

// AuthURL returns the page a user must visit to approve token
func (c *Client) AuthURL(token string) string {
	return AuthURL(token)
}

// AuthURL returns the approval page for token. It needs no client or API key.
func AuthURL(token string) string {
	return fmt.Sprintf("%s%s", AuthBaseURL, token)
}

// GetSession exchanges an approved token for a session
func (c *Client) GetSession(ctx context.Context, token string) (Result, error) {
	return c.get(ctx, "Auth.getSession", Scalar(token))
}
