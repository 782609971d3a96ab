package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/ticketlot/admin-gateway/internal/domain"
)

// PurchaseReviewer is the slice of the upstream client the
// ticket-purchases page uses.
type PurchaseReviewer interface {
	ListPurchases(ctx context.Context, status string, page, limit int) ([]domain.TicketPurchase, *domain.Pagination, error)
	GetPurchase(ctx context.Context, id string) (domain.TicketPurchase, error)
	UpdatePurchaseStatus(ctx context.Context, id string, update domain.StatusUpdate) (domain.TicketPurchase, error)
}

type PurchaseService struct {
	api PurchaseReviewer
}

func NewPurchaseService(api PurchaseReviewer) *PurchaseService {
	return &PurchaseService{api: api}
}

// List filters by status upstream and by substring locally, matching
// the buyer's name/email and the transaction id.
func (s *PurchaseService) List(ctx context.Context, status, query string, page, limit int) ([]domain.TicketPurchase, domain.Pagination, error) {
	purchases, _, err := s.api.ListPurchases(ctx, status, 1, fetchLimit)
	if err != nil {
		return nil, domain.Pagination{}, fmt.Errorf("s.api.ListPurchases -> %w", err)
	}

	filtered := make([]domain.TicketPurchase, 0, len(purchases))
	for _, p := range purchases {
		var name, email string
		if p.User != nil {
			name, email = p.User.Name, p.User.Email
		}
		if matchesQuery(query, name, email, p.TransactionID, p.PurchaseID) {
			filtered = append(filtered, p)
		}
	}

	pageItems, pagination := pageSlice(filtered, page, limit)

	return pageItems, pagination, nil
}

func (s *PurchaseService) Get(ctx context.Context, id string) (domain.TicketPurchase, error) {
	purchase, err := s.api.GetPurchase(ctx, id)
	if err != nil {
		return domain.TicketPurchase{}, fmt.Errorf("s.api.GetPurchase -> %w", err)
	}

	return purchase, nil
}

// Review requests an approve/reject transition. Rejection without
// review notes is refused here, before any request is issued.
func (s *PurchaseService) Review(ctx context.Context, id, status, notes string) (domain.TicketPurchase, error) {
	notes = strings.TrimSpace(notes)

	switch status {
	case domain.PurchaseStatusApproved:
	case domain.PurchaseStatusRejected:
		if notes == "" {
			return domain.TicketPurchase{}, ErrReviewNotesRequired
		}
	default:
		return domain.TicketPurchase{}, ErrInvalidReviewStatus
	}

	purchase, err := s.api.UpdatePurchaseStatus(ctx, id, domain.StatusUpdate{Status: status, ReviewNotes: notes})
	if err != nil {
		return domain.TicketPurchase{}, fmt.Errorf("s.api.UpdatePurchaseStatus -> %w", err)
	}

	return purchase, nil
}
