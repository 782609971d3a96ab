package upstream

import (
	"context"
	"fmt"
	"net/http"

	"github.com/ticketlot/admin-gateway/internal/domain"
)

func (c *Client) ListPurchases(ctx context.Context, status string, page, limit int) ([]domain.TicketPurchase, *domain.Pagination, error) {
	q := listQuery(page, limit)
	if status != "" {
		q.Set("status", status)
	}

	var purchases []domain.TicketPurchase
	pagination, err := c.getJSON(ctx, "/ticket-purchases", q, &purchases)
	if err != nil {
		return nil, nil, fmt.Errorf("GET /ticket-purchases -> %w", err)
	}

	return purchases, pagination, nil
}

func (c *Client) GetPurchase(ctx context.Context, id string) (domain.TicketPurchase, error) {
	var purchase domain.TicketPurchase
	if _, err := c.getJSON(ctx, "/ticket-purchases/"+id, nil, &purchase); err != nil {
		return domain.TicketPurchase{}, fmt.Errorf("GET /ticket-purchases/%s -> %w", id, err)
	}

	return purchase, nil
}

// UpdatePurchaseStatus requests a status transition. The transition
// itself happens server-side; retrying the same update is safe because
// the final stored status wins.
func (c *Client) UpdatePurchaseStatus(ctx context.Context, id string, update domain.StatusUpdate) (domain.TicketPurchase, error) {
	var purchase domain.TicketPurchase
	if err := c.sendJSON(ctx, http.MethodPut, "/ticket-purchases/"+id+"/status", update, &purchase); err != nil {
		return domain.TicketPurchase{}, fmt.Errorf("PUT /ticket-purchases/%s/status -> %w", id, err)
	}

	return purchase, nil
}
