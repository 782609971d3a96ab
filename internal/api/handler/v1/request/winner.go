package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
)

type SpinRequest struct {
	TicketID string  `json:"ticketId"`
	Prize    float64 `json:"prize"`
}

func (req *SpinRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.TicketID, validation.Required),
		validation.Field(&req.Prize, validation.Required, validation.Min(0.0).Exclusive()),
	)
}
