package domain

import "time"

// Winner is a draw result persisted by the gateway via POST /winners.
type Winner struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Prize      float64   `json:"prize"`
	DrawDate   time.Time `json:"drawDate"`
	TicketName string    `json:"ticketName"`
	TicketID   string    `json:"ticketId"`
	UserID     string    `json:"userId"`
}

// NewWinner is the creation payload for a winner record.
type NewWinner struct {
	Name       string    `json:"name"`
	Prize      float64   `json:"prize"`
	DrawDate   time.Time `json:"drawDate"`
	TicketName string    `json:"ticketName"`
	TicketID   string    `json:"ticketId"`
	UserID     string    `json:"userId"`
}
