package request

import (
	"errors"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation"

	"github.com/ticketlot/admin-gateway/internal/domain"
)

var errNotesRequiredOnReject = errors.New("review notes are required when rejecting a purchase")

type ReviewRequest struct {
	Status      string `json:"status"`
	ReviewNotes string `json:"reviewNotes"`
}

func (req *ReviewRequest) Validate() error {
	err := validation.ValidateStruct(
		req,
		validation.Field(&req.Status, validation.Required,
			validation.In(domain.PurchaseStatusApproved, domain.PurchaseStatusRejected)),
	)
	if err != nil {
		return err
	}

	if req.Status == domain.PurchaseStatusRejected && strings.TrimSpace(req.ReviewNotes) == "" {
		return errNotesRequiredOnReject
	}

	return nil
}
