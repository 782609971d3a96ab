package domain

import "time"

// Ticket is a lottery ticket product managed by staff.
type Ticket struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	ImageURL    string    `json:"imageUrl"`
	DrawDate    time.Time `json:"drawDate"`
	IsActive    bool      `json:"isActive"`
	SortOrder   int       `json:"sortOrder"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// TicketInput carries the writable ticket fields. The image travels
// separately as a multipart file part named "image".
type TicketInput struct {
	Name        string
	Description string
	Price       float64
	DrawDate    time.Time
	IsActive    bool
	SortOrder   int
}
