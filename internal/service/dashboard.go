package service

import (
	"context"
	"fmt"

	"github.com/ticketlot/admin-gateway/internal/domain"
)

// Overview is the dashboard's summary panel: plain counts, no analytics.
type Overview struct {
	Users            int `json:"users"`
	Tickets          int `json:"tickets"`
	PendingPurchases int `json:"pendingPurchases"`
	Winners          int `json:"winners"`
}

// OverviewAPI is the slice of the upstream client the dashboard page uses.
type OverviewAPI interface {
	ListUsers(ctx context.Context, page, limit int) ([]domain.User, *domain.Pagination, error)
	ListTickets(ctx context.Context, page, limit int) ([]domain.Ticket, *domain.Pagination, error)
	ListPurchases(ctx context.Context, status string, page, limit int) ([]domain.TicketPurchase, *domain.Pagination, error)
	ListWinners(ctx context.Context) ([]domain.Winner, error)
}

type DashboardService struct {
	api OverviewAPI
}

func NewDashboardService(api OverviewAPI) *DashboardService {
	return &DashboardService{api: api}
}

// Overview assembles the counts from the platform's paging metadata,
// requesting one-item pages to keep the payloads small.
func (s *DashboardService) Overview(ctx context.Context) (Overview, error) {
	var overview Overview

	_, usersPage, err := s.api.ListUsers(ctx, 1, 1)
	if err != nil {
		return Overview{}, fmt.Errorf("s.api.ListUsers -> %w", err)
	}
	if usersPage != nil {
		overview.Users = usersPage.Total
	}

	_, ticketsPage, err := s.api.ListTickets(ctx, 1, 1)
	if err != nil {
		return Overview{}, fmt.Errorf("s.api.ListTickets -> %w", err)
	}
	if ticketsPage != nil {
		overview.Tickets = ticketsPage.Total
	}

	_, pendingPage, err := s.api.ListPurchases(ctx, domain.PurchaseStatusPending, 1, 1)
	if err != nil {
		return Overview{}, fmt.Errorf("s.api.ListPurchases -> %w", err)
	}
	if pendingPage != nil {
		overview.PendingPurchases = pendingPage.Total
	}

	winners, err := s.api.ListWinners(ctx)
	if err != nil {
		return Overview{}, fmt.Errorf("s.api.ListWinners -> %w", err)
	}
	overview.Winners = len(winners)

	return overview, nil
}
