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
	"github.com/ticketlot/admin-gateway/internal/session"
	"github.com/ticketlot/admin-gateway/internal/upstream"
)

// OperatorSession is the slice of the session the auth handler uses.
type OperatorSession interface {
	Login(ctx context.Context, email, password string) (domain.User, error)
	Logout()
	Authenticated() bool
	CurrentUser() (domain.User, error)
	TokenClaims() (session.TokenInfo, error)
}

type AuthHandler struct {
	sess OperatorSession
}

func NewAuthHandler(sess OperatorSession) *AuthHandler {
	return &AuthHandler{
		sess: sess,
	}
}

// HandleLogin godoc
// @Summary      Sign the operator in
// @Tags         auth
// @Produce      json
// @Param        request   body      request.LoginRequest true "request body"
// @Success      200      {object}   response.SessionResponse
// @Failure      400      {object}   response.Err
// @Failure      401      {object}   response.Err
// @Failure      502      {object}   response.Err
// @Router       /auth/login [post]
func (h *AuthHandler) HandleLogin(ctx *gin.Context) {
	req := request.LoginRequest{}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	user, err := h.sess.Login(ctx.Request.Context(), req.Email, req.Password)
	if err != nil {
		var apiErr *upstream.APIError
		if errors.As(err, &apiErr) && apiErr.StatusCode < http.StatusInternalServerError {
			// Wrong credentials come back from the platform as a
			// rejected login, not as a session expiry.
			response.RenderErr(ctx, response.ErrUnauthorized(apiErr))

			return
		}

		err = fmt.Errorf("v1.HandleLogin -> h.sess.Login -> %w", err)
		renderUpstreamErr(ctx, err)

		return
	}

	ctx.JSON(http.StatusOK, h.sessionResponse(&user))
}

// HandleLogout godoc
// @Summary      Sign the operator out
// @Tags         auth
// @Produce      json
// @Success      200 {object} response.SessionResponse
// @Router       /auth/logout [post]
func (h *AuthHandler) HandleLogout(ctx *gin.Context) {
	h.sess.Logout()

	ctx.JSON(http.StatusOK, h.sessionResponse(nil))
}

// HandleSession godoc
// @Summary      Describe the current operator session
// @Tags         auth
// @Produce      json
// @Success      200 {object} response.SessionResponse
// @Router       /auth/session [get]
func (h *AuthHandler) HandleSession(ctx *gin.Context) {
	if !h.sess.Authenticated() {
		ctx.JSON(http.StatusOK, response.SessionResponse{Authenticated: false})

		return
	}

	user, err := h.sess.CurrentUser()
	if err != nil {
		ctx.JSON(http.StatusOK, response.SessionResponse{Authenticated: false})

		return
	}

	ctx.JSON(http.StatusOK, h.sessionResponse(&user))
}

func (h *AuthHandler) sessionResponse(user *domain.User) response.SessionResponse {
	resp := response.SessionResponse{
		Authenticated: user != nil,
		User:          user,
	}

	if user != nil {
		if claims, err := h.sess.TokenClaims(); err == nil {
			resp.Token = &claims
		}
	}

	return resp
}
