package upstream

import (
	"context"
	"fmt"
	"net/http"

	"github.com/ticketlot/admin-gateway/internal/domain"
)

func (c *Client) ListUsers(ctx context.Context, page, limit int) ([]domain.User, *domain.Pagination, error) {
	var users []domain.User
	pagination, err := c.getJSON(ctx, "/users", listQuery(page, limit), &users)
	if err != nil {
		return nil, nil, fmt.Errorf("GET /users -> %w", err)
	}

	return users, pagination, nil
}

func (c *Client) GetUser(ctx context.Context, id string) (domain.User, error) {
	var user domain.User
	if _, err := c.getJSON(ctx, "/users/"+id, nil, &user); err != nil {
		return domain.User{}, fmt.Errorf("GET /users/%s -> %w", id, err)
	}

	return user, nil
}

func (c *Client) UpdateUser(ctx context.Context, id string, user domain.User) (domain.User, error) {
	var updated domain.User
	if err := c.sendJSON(ctx, http.MethodPut, "/users/"+id, user, &updated); err != nil {
		return domain.User{}, fmt.Errorf("PUT /users/%s -> %w", id, err)
	}

	return updated, nil
}

func (c *Client) DeleteUser(ctx context.Context, id string) error {
	if err := c.delete(ctx, "/users/"+id); err != nil {
		return fmt.Errorf("DELETE /users/%s -> %w", id, err)
	}

	return nil
}
