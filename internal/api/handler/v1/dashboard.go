package v1

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ticketlot/admin-gateway/internal/service"
)

type DashboardService interface {
	Overview(ctx context.Context) (service.Overview, error)
}

type DashboardHandler struct {
	svc DashboardService
}

func NewDashboardHandler(svc DashboardService) *DashboardHandler {
	return &DashboardHandler{
		svc: svc,
	}
}

// HandleOverview godoc
// @Summary      Summary counts for the dashboard landing page
// @Tags         dashboard
// @Produce      json
// @Success      200 {object} service.Overview
// @Failure      401 {object} response.Err
// @Failure      502 {object} response.Err
// @Router       /dashboard/overview [get]
func (h *DashboardHandler) HandleOverview(ctx *gin.Context) {
	overview, err := h.svc.Overview(ctx.Request.Context())
	if err != nil {
		renderUpstreamErr(ctx, fmt.Errorf("v1.HandleOverview -> h.svc.Overview -> %w", err))

		return
	}

	ctx.JSON(http.StatusOK, overview)
}
