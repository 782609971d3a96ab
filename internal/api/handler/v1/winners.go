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

type WinnerService interface {
	List(ctx context.Context) ([]domain.Winner, error)
}

// TicketResolver fetches the ticket an operator selected for a draw.
type TicketResolver interface {
	Get(ctx context.Context, id string) (domain.Ticket, error)
}

// Draw is the engine surface the winners page drives.
type Draw interface {
	Spin(ticket domain.Ticket, prize float64) error
	Snapshot() service.DrawSnapshot
}

type WinnerHandler struct {
	svc     WinnerService
	tickets TicketResolver
	draw    Draw
}

func NewWinnerHandler(svc WinnerService, tickets TicketResolver, draw Draw) *WinnerHandler {
	return &WinnerHandler{
		svc:     svc,
		tickets: tickets,
		draw:    draw,
	}
}

// HandleListWinners godoc
// @Summary      List recorded winners
// @Tags         winners
// @Produce      json
// @Success      200 {object} response.WinnerList
// @Failure      401 {object} response.Err
// @Failure      502 {object} response.Err
// @Router       /winners [get]
func (h *WinnerHandler) HandleListWinners(ctx *gin.Context) {
	winners, err := h.svc.List(ctx.Request.Context())
	if err != nil {
		renderUpstreamErr(ctx, fmt.Errorf("v1.HandleListWinners -> h.svc.List -> %w", err))

		return
	}

	ctx.JSON(http.StatusOK, response.WinnerList{
		Winners: winners,
	})
}

// HandleStartDraw godoc
// @Summary      Start a winner draw for a ticket and prize amount
// @Tags         winners
// @Produce      json
// @Param        request   body      request.SpinRequest true "request body"
// @Success      202      {object}   service.DrawSnapshot
// @Failure      400      {object}   response.Err
// @Failure      401      {object}   response.Err
// @Failure      409      {object}   response.Err
// @Failure      502      {object}   response.Err
// @Router       /winners/draw [post]
func (h *WinnerHandler) HandleStartDraw(ctx *gin.Context) {
	req := request.SpinRequest{}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	// Validation runs before the ticket lookup so an invalid selection
	// costs no platform round trip.
	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	ticket, err := h.tickets.Get(ctx.Request.Context(), req.TicketID)
	if err != nil {
		renderUpstreamErr(ctx, fmt.Errorf("v1.HandleStartDraw -> h.tickets.Get -> %w", err))

		return
	}

	if err := h.draw.Spin(ticket, req.Prize); err != nil {
		switch {
		case errors.Is(err, service.ErrDrawInProgress):
			response.RenderErr(ctx, response.ErrConflict(err))
		case errors.Is(err, service.ErrTicketRequired), errors.Is(err, service.ErrPrizeNotPositive):
			response.RenderErr(ctx, response.ErrBadRequest(err))
		default:
			response.RenderErr(ctx, response.ErrInternalServerError(fmt.Errorf("v1.HandleStartDraw -> h.draw.Spin -> %w", err)))
		}

		return
	}

	ctx.JSON(http.StatusAccepted, h.draw.Snapshot())
}

// HandleDrawStatus godoc
// @Summary      Poll the state of the running draw
// @Tags         winners
// @Produce      json
// @Success      200 {object} service.DrawSnapshot
// @Failure      401 {object} response.Err
// @Router       /winners/draw [get]
func (h *WinnerHandler) HandleDrawStatus(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, h.draw.Snapshot())
}
