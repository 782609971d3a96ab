package middleware

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/ticketlot/admin-gateway/internal/api/handler/v1/response"
)

var errSessionRequired = errors.New("sign in to access this resource")

// Authenticator reports whether an operator session is active.
type Authenticator interface {
	Authenticated() bool
}

// RequireSession rejects requests with 401 until an operator has
// signed in. The login and healthcheck routes stay outside it.
func RequireSession(auth Authenticator) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		if !auth.Authenticated() {
			response.RenderErr(ctx, response.ErrUnauthorized(errSessionRequired))

			return
		}

		ctx.Next()
	}
}
