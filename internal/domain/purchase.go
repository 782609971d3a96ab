package domain

import "time"

const (
	PurchaseStatusPending  = "pending"
	PurchaseStatusApproved = "approved"
	PurchaseStatusRejected = "rejected"
)

// TicketPurchase is a buyer's submission awaiting staff review.
// Status transitions happen server-side; the gateway only requests them.
type TicketPurchase struct {
	ID              string         `json:"id"`
	PurchaseID      string         `json:"purchaseId"`
	User            *User          `json:"user,omitempty"`
	Ticket          *Ticket        `json:"ticket,omitempty"`
	PaymentMethod   *PaymentMethod `json:"paymentMethod,omitempty"`
	TransactionID   string         `json:"transactionId"`
	Quantity        int            `json:"quantity"`
	AmountPaid      float64        `json:"amountPaid"`
	ReceiptImageURL string         `json:"receiptImageUrl"`
	Notes           string         `json:"notes,omitempty"`
	Status          string         `json:"status"`
	ReviewedBy      string         `json:"reviewedBy,omitempty"`
	ReviewedAt      *time.Time     `json:"reviewedAt,omitempty"`
	ReviewNotes     string         `json:"reviewNotes,omitempty"`
	CreatedAt       time.Time      `json:"createdAt"`
	UpdatedAt       time.Time      `json:"updatedAt"`
}

// StatusUpdate is the payload for PUT /ticket-purchases/:id/status.
type StatusUpdate struct {
	Status      string `json:"status"`
	ReviewNotes string `json:"reviewNotes,omitempty"`
}
