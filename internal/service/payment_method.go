package service

import (
	"context"
	"fmt"

	"github.com/ticketlot/admin-gateway/internal/domain"
	"github.com/ticketlot/admin-gateway/internal/upstream"
)

// PaymentMethodCatalog is the slice of the upstream client the
// payment-methods page uses.
type PaymentMethodCatalog interface {
	ListPaymentMethods(ctx context.Context, page, limit int) ([]domain.PaymentMethod, *domain.Pagination, error)
	GetPaymentMethod(ctx context.Context, id string) (domain.PaymentMethod, error)
	CreatePaymentMethod(ctx context.Context, in domain.PaymentMethodInput, logo *upstream.Upload) (domain.PaymentMethod, error)
	UpdatePaymentMethod(ctx context.Context, id string, in domain.PaymentMethodInput, logo *upstream.Upload) (domain.PaymentMethod, error)
	DeletePaymentMethod(ctx context.Context, id string) error
}

type PaymentMethodService struct {
	api PaymentMethodCatalog
}

func NewPaymentMethodService(api PaymentMethodCatalog) *PaymentMethodService {
	return &PaymentMethodService{api: api}
}

func (s *PaymentMethodService) List(ctx context.Context, query string, page, limit int) ([]domain.PaymentMethod, domain.Pagination, error) {
	methods, _, err := s.api.ListPaymentMethods(ctx, 1, fetchLimit)
	if err != nil {
		return nil, domain.Pagination{}, fmt.Errorf("s.api.ListPaymentMethods -> %w", err)
	}

	filtered := make([]domain.PaymentMethod, 0, len(methods))
	for _, m := range methods {
		if matchesQuery(query, m.Name, m.AccountHolderName) {
			filtered = append(filtered, m)
		}
	}

	pageItems, pagination := pageSlice(filtered, page, limit)

	return pageItems, pagination, nil
}

func (s *PaymentMethodService) Get(ctx context.Context, id string) (domain.PaymentMethod, error) {
	method, err := s.api.GetPaymentMethod(ctx, id)
	if err != nil {
		return domain.PaymentMethod{}, fmt.Errorf("s.api.GetPaymentMethod -> %w", err)
	}

	return method, nil
}

func (s *PaymentMethodService) Create(ctx context.Context, in domain.PaymentMethodInput, logo *upstream.Upload) (domain.PaymentMethod, error) {
	method, err := s.api.CreatePaymentMethod(ctx, in, logo)
	if err != nil {
		return domain.PaymentMethod{}, fmt.Errorf("s.api.CreatePaymentMethod -> %w", err)
	}

	return method, nil
}

func (s *PaymentMethodService) Update(ctx context.Context, id string, in domain.PaymentMethodInput, logo *upstream.Upload) (domain.PaymentMethod, error) {
	method, err := s.api.UpdatePaymentMethod(ctx, id, in, logo)
	if err != nil {
		return domain.PaymentMethod{}, fmt.Errorf("s.api.UpdatePaymentMethod -> %w", err)
	}

	return method, nil
}

func (s *PaymentMethodService) Delete(ctx context.Context, id string) error {
	if err := s.api.DeletePaymentMethod(ctx, id); err != nil {
		return fmt.Errorf("s.api.DeletePaymentMethod -> %w", err)
	}

	return nil
}
