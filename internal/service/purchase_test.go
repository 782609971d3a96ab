package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ticketlot/admin-gateway/internal/domain"
)

type fakeReviewer struct {
	purchases []domain.TicketPurchase

	listStatus string
	updates    []domain.StatusUpdate
	updateErr  error
}

func (f *fakeReviewer) ListPurchases(_ context.Context, status string, _, _ int) ([]domain.TicketPurchase, *domain.Pagination, error) {
	f.listStatus = status

	return f.purchases, nil, nil
}

func (f *fakeReviewer) GetPurchase(_ context.Context, id string) (domain.TicketPurchase, error) {
	return domain.TicketPurchase{ID: id}, nil
}

func (f *fakeReviewer) UpdatePurchaseStatus(_ context.Context, id string, update domain.StatusUpdate) (domain.TicketPurchase, error) {
	if f.updateErr != nil {
		return domain.TicketPurchase{}, f.updateErr
	}
	f.updates = append(f.updates, update)

	return domain.TicketPurchase{ID: id, Status: update.Status, ReviewNotes: update.ReviewNotes}, nil
}

func TestPurchaseService_Review(t *testing.T) {
	t.Run("rejection without notes is refused locally", func(t *testing.T) {
		api := &fakeReviewer{}
		svc := NewPurchaseService(api)

		_, err := svc.Review(context.Background(), "p1", domain.PurchaseStatusRejected, "   ")
		require.ErrorIs(t, err, ErrReviewNotesRequired)

		assert.Empty(t, api.updates, "the refusal must happen before any platform request")
	})

	t.Run("unknown status is refused locally", func(t *testing.T) {
		api := &fakeReviewer{}
		svc := NewPurchaseService(api)

		_, err := svc.Review(context.Background(), "p1", "escalated", "")
		require.ErrorIs(t, err, ErrInvalidReviewStatus)

		assert.Empty(t, api.updates)
	})

	t.Run("rejection with notes goes through", func(t *testing.T) {
		api := &fakeReviewer{}
		svc := NewPurchaseService(api)

		purchase, err := svc.Review(context.Background(), "p1", domain.PurchaseStatusRejected, " receipt unreadable ")
		require.NoError(t, err)

		assert.Equal(t, domain.PurchaseStatusRejected, purchase.Status)
		require.Len(t, api.updates, 1)
		assert.Equal(t, "receipt unreadable", api.updates[0].ReviewNotes)
	})

	t.Run("approval needs no notes", func(t *testing.T) {
		api := &fakeReviewer{}
		svc := NewPurchaseService(api)

		purchase, err := svc.Review(context.Background(), "p1", domain.PurchaseStatusApproved, "")
		require.NoError(t, err)

		assert.Equal(t, domain.PurchaseStatusApproved, purchase.Status)
	})

	t.Run("retrying an approval is safe", func(t *testing.T) {
		api := &fakeReviewer{}
		svc := NewPurchaseService(api)

		first, err := svc.Review(context.Background(), "p1", domain.PurchaseStatusApproved, "")
		require.NoError(t, err)

		second, err := svc.Review(context.Background(), "p1", domain.PurchaseStatusApproved, "")
		require.NoError(t, err)

		// Two identical transition requests; the stored status is the
		// only side effect either way.
		require.Len(t, api.updates, 2)
		assert.Equal(t, api.updates[0], api.updates[1])
		assert.Equal(t, domain.StatusUpdate{Status: domain.PurchaseStatusApproved}, api.updates[0])
		assert.Equal(t, first.Status, second.Status)
	})
}

func TestPurchaseService_List(t *testing.T) {
	api := &fakeReviewer{
		purchases: []domain.TicketPurchase{
			{ID: "p1", TransactionID: "TRX-100", User: &domain.User{Name: "Ada", Email: "ada@example.com"}},
			{ID: "p2", TransactionID: "TRX-200", User: &domain.User{Name: "Bob", Email: "bob@example.com"}},
			{ID: "p3", TransactionID: "TRX-300"},
		},
	}
	svc := NewPurchaseService(api)

	t.Run("filters by buyer name", func(t *testing.T) {
		purchases, pagination, err := svc.List(context.Background(), "", "ada", 1, 20)
		require.NoError(t, err)

		require.Len(t, purchases, 1)
		assert.Equal(t, "p1", purchases[0].ID)
		assert.Equal(t, 1, pagination.Total)
	})

	t.Run("filters by transaction id", func(t *testing.T) {
		purchases, _, err := svc.List(context.Background(), "", "trx-300", 1, 20)
		require.NoError(t, err)

		require.Len(t, purchases, 1)
		assert.Equal(t, "p3", purchases[0].ID)
	})

	t.Run("empty query matches all", func(t *testing.T) {
		purchases, pagination, err := svc.List(context.Background(), "", "", 1, 20)
		require.NoError(t, err)

		assert.Len(t, purchases, 3)
		assert.Equal(t, 3, pagination.Total)
	})

	t.Run("status filter is forwarded upstream", func(t *testing.T) {
		_, _, err := svc.List(context.Background(), domain.PurchaseStatusPending, "", 1, 20)
		require.NoError(t, err)

		assert.Equal(t, domain.PurchaseStatusPending, api.listStatus)
	})
}
