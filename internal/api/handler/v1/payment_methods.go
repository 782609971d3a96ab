package v1

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ticketlot/admin-gateway/internal/api/handler/v1/request"
	"github.com/ticketlot/admin-gateway/internal/api/handler/v1/response"
	"github.com/ticketlot/admin-gateway/internal/domain"
	"github.com/ticketlot/admin-gateway/internal/upstream"
)

type PaymentMethodService interface {
	List(ctx context.Context, query string, page, limit int) ([]domain.PaymentMethod, domain.Pagination, error)
	Get(ctx context.Context, id string) (domain.PaymentMethod, error)
	Create(ctx context.Context, in domain.PaymentMethodInput, logo *upstream.Upload) (domain.PaymentMethod, error)
	Update(ctx context.Context, id string, in domain.PaymentMethodInput, logo *upstream.Upload) (domain.PaymentMethod, error)
	Delete(ctx context.Context, id string) error
}

type PaymentMethodHandler struct {
	svc PaymentMethodService
}

func NewPaymentMethodHandler(svc PaymentMethodService) *PaymentMethodHandler {
	return &PaymentMethodHandler{
		svc: svc,
	}
}

// HandleListPaymentMethods godoc
// @Summary      List payment methods with optional name filter
// @Tags         payment-methods
// @Produce      json
// @Param        q      query     string false "substring filter"
// @Param        page   query     int    false "page number"
// @Param        limit  query     int    false "page size"
// @Success      200    {object}  response.PaymentMethodList
// @Failure      401    {object}  response.Err
// @Failure      502    {object}  response.Err
// @Router       /payment-methods [get]
func (h *PaymentMethodHandler) HandleListPaymentMethods(ctx *gin.Context) {
	page, limit := pagingParams(ctx)

	methods, pagination, err := h.svc.List(ctx.Request.Context(), ctx.Query("q"), page, limit)
	if err != nil {
		renderUpstreamErr(ctx, fmt.Errorf("v1.HandleListPaymentMethods -> h.svc.List -> %w", err))

		return
	}

	ctx.JSON(http.StatusOK, response.PaymentMethodList{
		PaymentMethods: methods,
		Pagination:     pagination,
	})
}

// HandleGetPaymentMethod godoc
// @Summary      Get a payment method by ID
// @Tags         payment-methods
// @Produce      json
// @Param        methodID   path      string true "payment method ID"
// @Success      200        {object}  domain.PaymentMethod
// @Failure      401        {object}  response.Err
// @Failure      404        {object}  response.Err
// @Failure      502        {object}  response.Err
// @Router       /payment-methods/{methodID} [get]
func (h *PaymentMethodHandler) HandleGetPaymentMethod(ctx *gin.Context) {
	id := ctx.Param("methodID")

	method, err := h.svc.Get(ctx.Request.Context(), id)
	if err != nil {
		renderUpstreamErr(ctx, fmt.Errorf("v1.HandleGetPaymentMethod -> h.svc.Get -> %w", err))

		return
	}

	ctx.JSON(http.StatusOK, method)
}

// HandleCreatePaymentMethod godoc
// @Summary      Create a payment method
// @Tags         payment-methods
// @Accept       mpfd
// @Produce      json
// @Param        name            formData  string true  "display name"
// @Param        ibanOrAccount   formData  string true  "IBAN or account number"
// @Param        logo            formData  file   false "logo image"
// @Success      201             {object}  domain.PaymentMethod
// @Failure      400             {object}  response.Err
// @Failure      401             {object}  response.Err
// @Failure      502             {object}  response.Err
// @Router       /payment-methods [post]
func (h *PaymentMethodHandler) HandleCreatePaymentMethod(ctx *gin.Context) {
	form, logo, ok := bindPaymentMethodForm(ctx)
	if !ok {
		return
	}

	method, err := h.svc.Create(ctx.Request.Context(), form.ToInput(), logo)
	if err != nil {
		renderUpstreamErr(ctx, fmt.Errorf("v1.HandleCreatePaymentMethod -> h.svc.Create -> %w", err))

		return
	}

	ctx.JSON(http.StatusCreated, method)
}

// HandleUpdatePaymentMethod godoc
// @Summary      Update a payment method
// @Tags         payment-methods
// @Accept       mpfd
// @Produce      json
// @Param        methodID   path      string true "payment method ID"
// @Param        name       formData  string true "display name"
// @Param        logo       formData  file   false "logo image"
// @Success      200        {object}  domain.PaymentMethod
// @Failure      400        {object}  response.Err
// @Failure      401        {object}  response.Err
// @Failure      502        {object}  response.Err
// @Router       /payment-methods/{methodID} [put]
func (h *PaymentMethodHandler) HandleUpdatePaymentMethod(ctx *gin.Context) {
	id := ctx.Param("methodID")

	form, logo, ok := bindPaymentMethodForm(ctx)
	if !ok {
		return
	}

	method, err := h.svc.Update(ctx.Request.Context(), id, form.ToInput(), logo)
	if err != nil {
		renderUpstreamErr(ctx, fmt.Errorf("v1.HandleUpdatePaymentMethod -> h.svc.Update -> %w", err))

		return
	}

	ctx.JSON(http.StatusOK, method)
}

// HandleDeletePaymentMethod godoc
// @Summary      Delete a payment method
// @Tags         payment-methods
// @Produce      json
// @Param        methodID   path      string true "payment method ID"
// @Success      204
// @Failure      401        {object}  response.Err
// @Failure      502        {object}  response.Err
// @Router       /payment-methods/{methodID} [delete]
func (h *PaymentMethodHandler) HandleDeletePaymentMethod(ctx *gin.Context) {
	id := ctx.Param("methodID")

	if err := h.svc.Delete(ctx.Request.Context(), id); err != nil {
		renderUpstreamErr(ctx, fmt.Errorf("v1.HandleDeletePaymentMethod -> h.svc.Delete -> %w", err))

		return
	}

	ctx.Status(http.StatusNoContent)
}

func bindPaymentMethodForm(ctx *gin.Context) (request.PaymentMethodForm, *upstream.Upload, bool) {
	form := request.PaymentMethodForm{}
	if err := ctx.ShouldBind(&form); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return form, nil, false
	}

	if err := form.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return form, nil, false
	}

	logo, ok := formUpload(ctx, "logo")
	if !ok {
		return form, nil, false
	}

	return form, logo, true
}
