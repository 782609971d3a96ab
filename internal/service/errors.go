package service

import (
	"errors"

	"github.com/ticketlot/admin-gateway/internal/upstream"
)

var (
	// ErrUnauthorized mirrors the upstream sentinel so handlers only
	// depend on the service layer.
	ErrUnauthorized = upstream.ErrUnauthorized

	ErrReviewNotesRequired = errors.New("review notes are required when rejecting a purchase")
	ErrInvalidReviewStatus = errors.New("review status must be approved or rejected")

	ErrTicketRequired    = errors.New("a ticket must be selected before spinning")
	ErrPrizeNotPositive  = errors.New("prize amount must be greater than zero")
	ErrDrawInProgress    = errors.New("a draw is already running")
	ErrNoEligibleWinners = errors.New("no eligible winners in the fetched user list")
)
