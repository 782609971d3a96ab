package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ticketlot/admin-gateway/internal/api/handler/v1/request"
	"github.com/ticketlot/admin-gateway/internal/api/handler/v1/response"
	"github.com/ticketlot/admin-gateway/internal/domain"
	"github.com/ticketlot/admin-gateway/internal/service"
)

type PurchaseService interface {
	List(ctx context.Context, status, query string, page, limit int) ([]domain.TicketPurchase, domain.Pagination, error)
	Get(ctx context.Context, id string) (domain.TicketPurchase, error)
	Review(ctx context.Context, id, status, notes string) (domain.TicketPurchase, error)
}

type PurchaseHandler struct {
	svc PurchaseService
}

func NewPurchaseHandler(svc PurchaseService) *PurchaseHandler {
	return &PurchaseHandler{
		svc: svc,
	}
}

// HandleListPurchases godoc
// @Summary      List ticket purchases, optionally filtered by status
// @Tags         purchases
// @Produce      json
// @Param        status  query     string false "pending, approved or rejected"
// @Param        q       query     string false "substring filter"
// @Param        page    query     int    false "page number"
// @Param        limit   query     int    false "page size"
// @Success      200     {object}  response.PurchaseList
// @Failure      401     {object}  response.Err
// @Failure      502     {object}  response.Err
// @Router       /ticket-purchases [get]
func (h *PurchaseHandler) HandleListPurchases(ctx *gin.Context) {
	page, limit := pagingParams(ctx)

	purchases, pagination, err := h.svc.List(ctx.Request.Context(), ctx.Query("status"), ctx.Query("q"), page, limit)
	if err != nil {
		renderUpstreamErr(ctx, fmt.Errorf("v1.HandleListPurchases -> h.svc.List -> %w", err))

		return
	}

	ctx.JSON(http.StatusOK, response.PurchaseList{
		Purchases:  purchases,
		Pagination: pagination,
	})
}

// HandleGetPurchase godoc
// @Summary      Get a ticket purchase by ID
// @Tags         purchases
// @Produce      json
// @Param        purchaseID   path      string true "purchase ID"
// @Success      200          {object}  domain.TicketPurchase
// @Failure      401          {object}  response.Err
// @Failure      404          {object}  response.Err
// @Failure      502          {object}  response.Err
// @Router       /ticket-purchases/{purchaseID} [get]
func (h *PurchaseHandler) HandleGetPurchase(ctx *gin.Context) {
	id := ctx.Param("purchaseID")

	purchase, err := h.svc.Get(ctx.Request.Context(), id)
	if err != nil {
		renderUpstreamErr(ctx, fmt.Errorf("v1.HandleGetPurchase -> h.svc.Get -> %w", err))

		return
	}

	ctx.JSON(http.StatusOK, purchase)
}

// HandleReviewPurchase godoc
// @Summary      Approve or reject a pending purchase
// @Tags         purchases
// @Produce      json
// @Param        purchaseID   path      string                true "purchase ID"
// @Param        request      body      request.ReviewRequest true "request body"
// @Success      200          {object}  domain.TicketPurchase
// @Failure      400          {object}  response.Err
// @Failure      401          {object}  response.Err
// @Failure      502          {object}  response.Err
// @Router       /ticket-purchases/{purchaseID}/status [put]
func (h *PurchaseHandler) HandleReviewPurchase(ctx *gin.Context) {
	id := ctx.Param("purchaseID")

	req := request.ReviewRequest{}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	purchase, err := h.svc.Review(ctx.Request.Context(), id, req.Status, req.ReviewNotes)
	if err != nil {
		if errors.Is(err, service.ErrReviewNotesRequired) || errors.Is(err, service.ErrInvalidReviewStatus) {
			response.RenderErr(ctx, response.ErrBadRequest(err))

			return
		}

		renderUpstreamErr(ctx, fmt.Errorf("v1.HandleReviewPurchase -> h.svc.Review -> %w", err))

		return
	}

	ctx.JSON(http.StatusOK, purchase)
}
