package upstream

import (
	"context"
	"fmt"
	"net/http"

	"github.com/ticketlot/admin-gateway/internal/domain"
)

func (c *Client) GetSettings(ctx context.Context) (domain.AppSettings, error) {
	var settings domain.AppSettings
	if _, err := c.getJSON(ctx, "/app-settings", nil, &settings); err != nil {
		return domain.AppSettings{}, fmt.Errorf("GET /app-settings -> %w", err)
	}

	return settings, nil
}

func (c *Client) UpdateSettings(ctx context.Context, settings domain.AppSettings) (domain.AppSettings, error) {
	var updated domain.AppSettings
	if err := c.sendJSON(ctx, http.MethodPut, "/app-settings", settings, &updated); err != nil {
		return domain.AppSettings{}, fmt.Errorf("PUT /app-settings -> %w", err)
	}

	return updated, nil
}
