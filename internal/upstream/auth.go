package upstream

import (
	"context"
	"fmt"
	"net/http"

	"github.com/ticketlot/admin-gateway/internal/domain"
)

// Login exchanges credentials for a bearer token and the staff profile.
func (c *Client) Login(ctx context.Context, email, password string) (domain.AuthResult, error) {
	var result domain.AuthResult
	err := c.sendJSON(ctx, http.MethodPost, "/auth/login", domain.Credentials{Email: email, Password: password}, &result)
	if err != nil {
		return domain.AuthResult{}, fmt.Errorf("POST /auth/login -> %w", err)
	}

	return result, nil
}

// Profile fetches the account behind the current token, used to
// validate a persisted token on startup.
func (c *Client) Profile(ctx context.Context) (domain.User, error) {
	var user domain.User
	if _, err := c.getJSON(ctx, "/auth/profile", nil, &user); err != nil {
		return domain.User{}, fmt.Errorf("GET /auth/profile -> %w", err)
	}

	return user, nil
}
