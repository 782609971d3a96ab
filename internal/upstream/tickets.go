package upstream

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/ticketlot/admin-gateway/internal/domain"
)

func (c *Client) ListTickets(ctx context.Context, page, limit int) ([]domain.Ticket, *domain.Pagination, error) {
	var tickets []domain.Ticket
	pagination, err := c.getJSON(ctx, "/tickets", listQuery(page, limit), &tickets)
	if err != nil {
		return nil, nil, fmt.Errorf("GET /tickets -> %w", err)
	}

	return tickets, pagination, nil
}

func (c *Client) GetTicket(ctx context.Context, id string) (domain.Ticket, error) {
	var ticket domain.Ticket
	if _, err := c.getJSON(ctx, "/tickets/"+id, nil, &ticket); err != nil {
		return domain.Ticket{}, fmt.Errorf("GET /tickets/%s -> %w", id, err)
	}

	return ticket, nil
}

func (c *Client) CreateTicket(ctx context.Context, in domain.TicketInput, image *Upload) (domain.Ticket, error) {
	var ticket domain.Ticket
	if err := c.sendMultipart(ctx, http.MethodPost, "/tickets", ticketFields(in), "image", image, &ticket); err != nil {
		return domain.Ticket{}, fmt.Errorf("POST /tickets -> %w", err)
	}

	return ticket, nil
}

func (c *Client) UpdateTicket(ctx context.Context, id string, in domain.TicketInput, image *Upload) (domain.Ticket, error) {
	var ticket domain.Ticket
	if err := c.sendMultipart(ctx, http.MethodPut, "/tickets/"+id, ticketFields(in), "image", image, &ticket); err != nil {
		return domain.Ticket{}, fmt.Errorf("PUT /tickets/%s -> %w", id, err)
	}

	return ticket, nil
}

func (c *Client) DeleteTicket(ctx context.Context, id string) error {
	if err := c.delete(ctx, "/tickets/"+id); err != nil {
		return fmt.Errorf("DELETE /tickets/%s -> %w", id, err)
	}

	return nil
}

func ticketFields(in domain.TicketInput) map[string]string {
	return map[string]string{
		"name":        in.Name,
		"description": in.Description,
		"price":       strconv.FormatFloat(in.Price, 'f', -1, 64),
		"drawDate":    in.DrawDate.Format(time.RFC3339),
		"isActive":    strconv.FormatBool(in.IsActive),
		"sortOrder":   strconv.Itoa(in.SortOrder),
	}
}
