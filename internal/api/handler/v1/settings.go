package v1

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ticketlot/admin-gateway/internal/api/handler/v1/request"
	"github.com/ticketlot/admin-gateway/internal/api/handler/v1/response"
	"github.com/ticketlot/admin-gateway/internal/domain"
)

type SettingsService interface {
	Get(ctx context.Context) (domain.AppSettings, error)
	Update(ctx context.Context, settings domain.AppSettings) (domain.AppSettings, error)
}

type SettingsHandler struct {
	svc SettingsService
}

func NewSettingsHandler(svc SettingsService) *SettingsHandler {
	return &SettingsHandler{
		svc: svc,
	}
}

// HandleGetSettings godoc
// @Summary      Get the platform settings
// @Tags         settings
// @Produce      json
// @Success      200 {object} domain.AppSettings
// @Failure      401 {object} response.Err
// @Failure      502 {object} response.Err
// @Router       /settings [get]
func (h *SettingsHandler) HandleGetSettings(ctx *gin.Context) {
	settings, err := h.svc.Get(ctx.Request.Context())
	if err != nil {
		renderUpstreamErr(ctx, fmt.Errorf("v1.HandleGetSettings -> h.svc.Get -> %w", err))

		return
	}

	ctx.JSON(http.StatusOK, settings)
}

// HandleUpdateSettings godoc
// @Summary      Replace the platform settings
// @Tags         settings
// @Produce      json
// @Param        request   body      request.SettingsRequest true "request body"
// @Success      200      {object}   domain.AppSettings
// @Failure      400      {object}   response.Err
// @Failure      401      {object}   response.Err
// @Failure      502      {object}   response.Err
// @Router       /settings [put]
func (h *SettingsHandler) HandleUpdateSettings(ctx *gin.Context) {
	req := request.SettingsRequest{}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	settings, err := h.svc.Update(ctx.Request.Context(), req.ToSettings())
	if err != nil {
		renderUpstreamErr(ctx, fmt.Errorf("v1.HandleUpdateSettings -> h.svc.Update -> %w", err))

		return
	}

	ctx.JSON(http.StatusOK, settings)
}
