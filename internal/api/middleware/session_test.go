package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type staticAuth bool

func (a staticAuth) Authenticated() bool { return bool(a) }

func guardedRouter(auth Authenticator) *gin.Engine {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.GET("/guarded", RequireSession(auth), func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"ok": true})
	})

	return r
}

func TestRequireSession(t *testing.T) {
	t.Run("anonymous requests get 401", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/guarded", nil)
		guardedRouter(staticAuth(false)).ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.JSONEq(t, `{"error": "sign in to access this resource"}`, w.Body.String())
	})

	t.Run("signed-in requests pass through", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/guarded", nil)
		guardedRouter(staticAuth(true)).ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})
}
