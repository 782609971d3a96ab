package upstream

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/ticketlot/admin-gateway/internal/domain"
)

func (c *Client) ListPaymentMethods(ctx context.Context, page, limit int) ([]domain.PaymentMethod, *domain.Pagination, error) {
	var methods []domain.PaymentMethod
	pagination, err := c.getJSON(ctx, "/payment-methods", listQuery(page, limit), &methods)
	if err != nil {
		return nil, nil, fmt.Errorf("GET /payment-methods -> %w", err)
	}

	return methods, pagination, nil
}

func (c *Client) GetPaymentMethod(ctx context.Context, id string) (domain.PaymentMethod, error) {
	var method domain.PaymentMethod
	if _, err := c.getJSON(ctx, "/payment-methods/"+id, nil, &method); err != nil {
		return domain.PaymentMethod{}, fmt.Errorf("GET /payment-methods/%s -> %w", id, err)
	}

	return method, nil
}

func (c *Client) CreatePaymentMethod(ctx context.Context, in domain.PaymentMethodInput, logo *Upload) (domain.PaymentMethod, error) {
	var method domain.PaymentMethod
	if err := c.sendMultipart(ctx, http.MethodPost, "/payment-methods", paymentMethodFields(in), "logo", logo, &method); err != nil {
		return domain.PaymentMethod{}, fmt.Errorf("POST /payment-methods -> %w", err)
	}

	return method, nil
}

func (c *Client) UpdatePaymentMethod(ctx context.Context, id string, in domain.PaymentMethodInput, logo *Upload) (domain.PaymentMethod, error) {
	var method domain.PaymentMethod
	if err := c.sendMultipart(ctx, http.MethodPut, "/payment-methods/"+id, paymentMethodFields(in), "logo", logo, &method); err != nil {
		return domain.PaymentMethod{}, fmt.Errorf("PUT /payment-methods/%s -> %w", id, err)
	}

	return method, nil
}

func (c *Client) DeletePaymentMethod(ctx context.Context, id string) error {
	if err := c.delete(ctx, "/payment-methods/"+id); err != nil {
		return fmt.Errorf("DELETE /payment-methods/%s -> %w", id, err)
	}

	return nil
}

func paymentMethodFields(in domain.PaymentMethodInput) map[string]string {
	return map[string]string{
		"name":              in.Name,
		"ibanOrAccount":     in.IbanOrAccount,
		"accountHolderName": in.AccountHolderName,
		"isActive":          strconv.FormatBool(in.IsActive),
	}
}
