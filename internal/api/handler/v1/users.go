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

type UserService interface {
	List(ctx context.Context, query string, page, limit int) ([]domain.User, domain.Pagination, error)
	Get(ctx context.Context, id string) (domain.User, error)
	Update(ctx context.Context, id string, user domain.User) (domain.User, error)
	Delete(ctx context.Context, id string) error
}

type UserHandler struct {
	svc UserService
}

func NewUserHandler(svc UserService) *UserHandler {
	return &UserHandler{
		svc: svc,
	}
}

// HandleListUsers godoc
// @Summary      List users with optional name/email filter
// @Tags         users
// @Produce      json
// @Param        q      query     string false "substring filter"
// @Param        page   query     int    false "page number"
// @Param        limit  query     int    false "page size"
// @Success      200    {object}  response.UserList
// @Failure      401    {object}  response.Err
// @Failure      502    {object}  response.Err
// @Router       /users [get]
func (h *UserHandler) HandleListUsers(ctx *gin.Context) {
	page, limit := pagingParams(ctx)

	users, pagination, err := h.svc.List(ctx.Request.Context(), ctx.Query("q"), page, limit)
	if err != nil {
		renderUpstreamErr(ctx, fmt.Errorf("v1.HandleListUsers -> h.svc.List -> %w", err))

		return
	}

	ctx.JSON(http.StatusOK, response.UserList{
		Users:      users,
		Pagination: pagination,
	})
}

// HandleGetUser godoc
// @Summary      Get a user by ID
// @Tags         users
// @Produce      json
// @Param        userID   path      string true "user ID"
// @Success      200      {object}  domain.User
// @Failure      401      {object}  response.Err
// @Failure      404      {object}  response.Err
// @Failure      502      {object}  response.Err
// @Router       /users/{userID} [get]
func (h *UserHandler) HandleGetUser(ctx *gin.Context) {
	id := ctx.Param("userID")

	user, err := h.svc.Get(ctx.Request.Context(), id)
	if err != nil {
		renderUpstreamErr(ctx, fmt.Errorf("v1.HandleGetUser -> h.svc.Get -> %w", err))

		return
	}

	ctx.JSON(http.StatusOK, user)
}

// HandleUpdateUser godoc
// @Summary      Update a user
// @Tags         users
// @Produce      json
// @Param        userID   path      string                    true "user ID"
// @Param        request  body      request.UpdateUserRequest true "request body"
// @Success      200      {object}  domain.User
// @Failure      400      {object}  response.Err
// @Failure      401      {object}  response.Err
// @Failure      502      {object}  response.Err
// @Router       /users/{userID} [put]
func (h *UserHandler) HandleUpdateUser(ctx *gin.Context) {
	id := ctx.Param("userID")

	req := request.UpdateUserRequest{}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	user, err := h.svc.Update(ctx.Request.Context(), id, req.ToUser())
	if err != nil {
		renderUpstreamErr(ctx, fmt.Errorf("v1.HandleUpdateUser -> h.svc.Update -> %w", err))

		return
	}

	ctx.JSON(http.StatusOK, user)
}

// HandleDeleteUser godoc
// @Summary      Delete a user
// @Tags         users
// @Produce      json
// @Param        userID   path      string true "user ID"
// @Success      204
// @Failure      401      {object}  response.Err
// @Failure      502      {object}  response.Err
// @Router       /users/{userID} [delete]
func (h *UserHandler) HandleDeleteUser(ctx *gin.Context) {
	id := ctx.Param("userID")

	if err := h.svc.Delete(ctx.Request.Context(), id); err != nil {
		renderUpstreamErr(ctx, fmt.Errorf("v1.HandleDeleteUser -> h.svc.Delete -> %w", err))

		return
	}

	ctx.Status(http.StatusNoContent)
}
