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

type TicketService interface {
	List(ctx context.Context, query string, page, limit int) ([]domain.Ticket, domain.Pagination, error)
	Get(ctx context.Context, id string) (domain.Ticket, error)
	Create(ctx context.Context, in domain.TicketInput, image *upstream.Upload) (domain.Ticket, error)
	Update(ctx context.Context, id string, in domain.TicketInput, image *upstream.Upload) (domain.Ticket, error)
	Delete(ctx context.Context, id string) error
}

type TicketHandler struct {
	svc TicketService
}

func NewTicketHandler(svc TicketService) *TicketHandler {
	return &TicketHandler{
		svc: svc,
	}
}

// HandleListTickets godoc
// @Summary      List tickets with optional name filter
// @Tags         tickets
// @Produce      json
// @Param        q      query     string false "substring filter"
// @Param        page   query     int    false "page number"
// @Param        limit  query     int    false "page size"
// @Success      200    {object}  response.TicketList
// @Failure      401    {object}  response.Err
// @Failure      502    {object}  response.Err
// @Router       /tickets [get]
func (h *TicketHandler) HandleListTickets(ctx *gin.Context) {
	page, limit := pagingParams(ctx)

	tickets, pagination, err := h.svc.List(ctx.Request.Context(), ctx.Query("q"), page, limit)
	if err != nil {
		renderUpstreamErr(ctx, fmt.Errorf("v1.HandleListTickets -> h.svc.List -> %w", err))

		return
	}

	ctx.JSON(http.StatusOK, response.TicketList{
		Tickets:    tickets,
		Pagination: pagination,
	})
}

// HandleGetTicket godoc
// @Summary      Get a ticket by ID
// @Tags         tickets
// @Produce      json
// @Param        ticketID   path      string true "ticket ID"
// @Success      200        {object}  domain.Ticket
// @Failure      401        {object}  response.Err
// @Failure      404        {object}  response.Err
// @Failure      502        {object}  response.Err
// @Router       /tickets/{ticketID} [get]
func (h *TicketHandler) HandleGetTicket(ctx *gin.Context) {
	id := ctx.Param("ticketID")

	ticket, err := h.svc.Get(ctx.Request.Context(), id)
	if err != nil {
		renderUpstreamErr(ctx, fmt.Errorf("v1.HandleGetTicket -> h.svc.Get -> %w", err))

		return
	}

	ctx.JSON(http.StatusOK, ticket)
}

// HandleCreateTicket godoc
// @Summary      Create a ticket
// @Tags         tickets
// @Accept       mpfd
// @Produce      json
// @Param        name    formData  string  true  "ticket name"
// @Param        price   formData  number  true  "ticket price"
// @Param        image   formData  file    false "ticket image"
// @Success      201     {object}  domain.Ticket
// @Failure      400     {object}  response.Err
// @Failure      401     {object}  response.Err
// @Failure      502     {object}  response.Err
// @Router       /tickets [post]
func (h *TicketHandler) HandleCreateTicket(ctx *gin.Context) {
	form, image, ok := bindTicketForm(ctx)
	if !ok {
		return
	}

	ticket, err := h.svc.Create(ctx.Request.Context(), form.ToInput(), image)
	if err != nil {
		renderUpstreamErr(ctx, fmt.Errorf("v1.HandleCreateTicket -> h.svc.Create -> %w", err))

		return
	}

	ctx.JSON(http.StatusCreated, ticket)
}

// HandleUpdateTicket godoc
// @Summary      Update a ticket
// @Tags         tickets
// @Accept       mpfd
// @Produce      json
// @Param        ticketID   path      string true "ticket ID"
// @Param        name       formData  string true "ticket name"
// @Param        image      formData  file   false "ticket image"
// @Success      200        {object}  domain.Ticket
// @Failure      400        {object}  response.Err
// @Failure      401        {object}  response.Err
// @Failure      502        {object}  response.Err
// @Router       /tickets/{ticketID} [put]
func (h *TicketHandler) HandleUpdateTicket(ctx *gin.Context) {
	id := ctx.Param("ticketID")

	form, image, ok := bindTicketForm(ctx)
	if !ok {
		return
	}

	ticket, err := h.svc.Update(ctx.Request.Context(), id, form.ToInput(), image)
	if err != nil {
		renderUpstreamErr(ctx, fmt.Errorf("v1.HandleUpdateTicket -> h.svc.Update -> %w", err))

		return
	}

	ctx.JSON(http.StatusOK, ticket)
}

// HandleDeleteTicket godoc
// @Summary      Delete a ticket
// @Tags         tickets
// @Produce      json
// @Param        ticketID   path      string true "ticket ID"
// @Success      204
// @Failure      401        {object}  response.Err
// @Failure      502        {object}  response.Err
// @Router       /tickets/{ticketID} [delete]
func (h *TicketHandler) HandleDeleteTicket(ctx *gin.Context) {
	id := ctx.Param("ticketID")

	if err := h.svc.Delete(ctx.Request.Context(), id); err != nil {
		renderUpstreamErr(ctx, fmt.Errorf("v1.HandleDeleteTicket -> h.svc.Delete -> %w", err))

		return
	}

	ctx.Status(http.StatusNoContent)
}

// bindTicketForm binds and validates the multipart ticket form plus its
// optional "image" file part. On failure the error is already rendered.
func bindTicketForm(ctx *gin.Context) (request.TicketForm, *upstream.Upload, bool) {
	form := request.TicketForm{}
	if err := ctx.ShouldBind(&form); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return form, nil, false
	}

	if err := form.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return form, nil, false
	}

	image, ok := formUpload(ctx, "image")
	if !ok {
		return form, nil, false
	}

	return form, image, true
}
