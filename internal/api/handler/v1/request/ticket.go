package request

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation"

	"github.com/ticketlot/admin-gateway/internal/domain"
)

// TicketForm is bound from the multipart body of ticket writes.
// The image file part travels alongside it under the name "image".
type TicketForm struct {
	Name        string    `form:"name"`
	Description string    `form:"description"`
	Price       float64   `form:"price"`
	DrawDate    time.Time `form:"drawDate" time_format:"2006-01-02T15:04:05Z07:00"`
	IsActive    bool      `form:"isActive"`
	SortOrder   int       `form:"sortOrder"`
}

func (req *TicketForm) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Name, validation.Required, validation.Length(2, 100)),
		validation.Field(&req.Description, validation.Length(0, 500)),
		validation.Field(&req.Price, validation.Required, validation.Min(0.0).Exclusive()),
		validation.Field(&req.DrawDate, validation.Required),
		validation.Field(&req.SortOrder, validation.Min(0)),
	)
}

func (req *TicketForm) ToInput() domain.TicketInput {
	return domain.TicketInput{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		DrawDate:    req.DrawDate,
		IsActive:    req.IsActive,
		SortOrder:   req.SortOrder,
	}
}
