package upstream

import (
	"context"
	"fmt"
	"net/http"

	"github.com/ticketlot/admin-gateway/internal/domain"
)

func (c *Client) ListWinners(ctx context.Context) ([]domain.Winner, error) {
	var winners []domain.Winner
	if _, err := c.getJSON(ctx, "/winners", nil, &winners); err != nil {
		return nil, fmt.Errorf("GET /winners -> %w", err)
	}

	return winners, nil
}

func (c *Client) CreateWinner(ctx context.Context, winner domain.NewWinner) (domain.Winner, error) {
	var created domain.Winner
	if err := c.sendJSON(ctx, http.MethodPost, "/winners", winner, &created); err != nil {
		return domain.Winner{}, fmt.Errorf("POST /winners -> %w", err)
	}

	return created, nil
}
