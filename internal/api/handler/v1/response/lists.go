package response

import (
	"github.com/ticketlot/admin-gateway/internal/domain"
	"github.com/ticketlot/admin-gateway/internal/session"
)

type SessionResponse struct {
	Authenticated bool               `json:"authenticated"`
	User          *domain.User       `json:"user,omitempty"`
	Token         *session.TokenInfo `json:"token,omitempty"`
}

type UserList struct {
	Users      []domain.User     `json:"users"`
	Pagination domain.Pagination `json:"pagination"`
}

type TicketList struct {
	Tickets    []domain.Ticket   `json:"tickets"`
	Pagination domain.Pagination `json:"pagination"`
}

type PaymentMethodList struct {
	PaymentMethods []domain.PaymentMethod `json:"paymentMethods"`
	Pagination     domain.Pagination      `json:"pagination"`
}

type PurchaseList struct {
	Purchases  []domain.TicketPurchase `json:"purchases"`
	Pagination domain.Pagination       `json:"pagination"`
}

type WinnerList struct {
	Winners []domain.Winner `json:"winners"`
}
