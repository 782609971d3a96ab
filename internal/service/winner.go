package service

import (
	"context"
	"fmt"

	"github.com/ticketlot/admin-gateway/internal/domain"
)

// WinnerLog is the slice of the upstream client the winners page uses
// for its table; the draw engine owns winner creation.
type WinnerLog interface {
	ListWinners(ctx context.Context) ([]domain.Winner, error)
}

type WinnerService struct {
	api WinnerLog
}

func NewWinnerService(api WinnerLog) *WinnerService {
	return &WinnerService{api: api}
}

func (s *WinnerService) List(ctx context.Context) ([]domain.Winner, error) {
	winners, err := s.api.ListWinners(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.api.ListWinners -> %w", err)
	}

	return winners, nil
}
