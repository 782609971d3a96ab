package service

import (
	"context"
	"fmt"

	"github.com/ticketlot/admin-gateway/internal/domain"
	"github.com/ticketlot/admin-gateway/internal/upstream"
)

// TicketCatalog is the slice of the upstream client the tickets page uses.
type TicketCatalog interface {
	ListTickets(ctx context.Context, page, limit int) ([]domain.Ticket, *domain.Pagination, error)
	GetTicket(ctx context.Context, id string) (domain.Ticket, error)
	CreateTicket(ctx context.Context, in domain.TicketInput, image *upstream.Upload) (domain.Ticket, error)
	UpdateTicket(ctx context.Context, id string, in domain.TicketInput, image *upstream.Upload) (domain.Ticket, error)
	DeleteTicket(ctx context.Context, id string) error
}

type TicketService struct {
	api TicketCatalog
}

func NewTicketService(api TicketCatalog) *TicketService {
	return &TicketService{api: api}
}

func (s *TicketService) List(ctx context.Context, query string, page, limit int) ([]domain.Ticket, domain.Pagination, error) {
	tickets, _, err := s.api.ListTickets(ctx, 1, fetchLimit)
	if err != nil {
		return nil, domain.Pagination{}, fmt.Errorf("s.api.ListTickets -> %w", err)
	}

	filtered := make([]domain.Ticket, 0, len(tickets))
	for _, t := range tickets {
		if matchesQuery(query, t.Name, t.Description) {
			filtered = append(filtered, t)
		}
	}

	pageItems, pagination := pageSlice(filtered, page, limit)

	return pageItems, pagination, nil
}

func (s *TicketService) Get(ctx context.Context, id string) (domain.Ticket, error) {
	ticket, err := s.api.GetTicket(ctx, id)
	if err != nil {
		return domain.Ticket{}, fmt.Errorf("s.api.GetTicket -> %w", err)
	}

	return ticket, nil
}

func (s *TicketService) Create(ctx context.Context, in domain.TicketInput, image *upstream.Upload) (domain.Ticket, error) {
	ticket, err := s.api.CreateTicket(ctx, in, image)
	if err != nil {
		return domain.Ticket{}, fmt.Errorf("s.api.CreateTicket -> %w", err)
	}

	return ticket, nil
}

func (s *TicketService) Update(ctx context.Context, id string, in domain.TicketInput, image *upstream.Upload) (domain.Ticket, error) {
	ticket, err := s.api.UpdateTicket(ctx, id, in, image)
	if err != nil {
		return domain.Ticket{}, fmt.Errorf("s.api.UpdateTicket -> %w", err)
	}

	return ticket, nil
}

func (s *TicketService) Delete(ctx context.Context, id string) error {
	if err := s.api.DeleteTicket(ctx, id); err != nil {
		return fmt.Errorf("s.api.DeleteTicket -> %w", err)
	}

	return nil
}
