package v1

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ticketlot/admin-gateway/internal/domain"
	"github.com/ticketlot/admin-gateway/internal/service"
)

type fakeWinnerService struct {
	winners []domain.Winner
	err     error
}

func (f *fakeWinnerService) List(_ context.Context) ([]domain.Winner, error) {
	return f.winners, f.err
}

type fakeTicketResolver struct {
	ticket domain.Ticket
	err    error
	calls  int
}

func (f *fakeTicketResolver) Get(_ context.Context, _ string) (domain.Ticket, error) {
	f.calls++

	return f.ticket, f.err
}

type fakeDraw struct {
	spinErr  error
	spins    int
	snapshot service.DrawSnapshot
}

func (f *fakeDraw) Spin(_ domain.Ticket, _ float64) error {
	f.spins++

	return f.spinErr
}

func (f *fakeDraw) Snapshot() service.DrawSnapshot {
	return f.snapshot
}

func winnersRouter(svc WinnerService, tickets TicketResolver, draw Draw) *gin.Engine {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	h := NewWinnerHandler(svc, tickets, draw)
	r.GET("/winners", h.HandleListWinners)
	r.POST("/winners/draw", h.HandleStartDraw)
	r.GET("/winners/draw", h.HandleDrawStatus)

	return r
}

func TestWinnerHandler_HandleStartDraw(t *testing.T) {
	t.Run("invalid prize is rejected before any lookup", func(t *testing.T) {
		resolver := &fakeTicketResolver{}
		draw := &fakeDraw{}
		r := winnersRouter(&fakeWinnerService{}, resolver, draw)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/winners/draw",
			strings.NewReader(`{"ticketId": "t1", "prize": 0}`))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, 0, resolver.calls, "validation failures must not reach the platform")
		assert.Equal(t, 0, draw.spins)
	})

	t.Run("missing ticket id is rejected", func(t *testing.T) {
		resolver := &fakeTicketResolver{}
		r := winnersRouter(&fakeWinnerService{}, resolver, &fakeDraw{})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/winners/draw",
			strings.NewReader(`{"prize": 50}`))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, 0, resolver.calls)
	})

	t.Run("valid request starts the draw", func(t *testing.T) {
		resolver := &fakeTicketResolver{ticket: domain.Ticket{ID: "t1", Name: "Grand"}}
		draw := &fakeDraw{snapshot: service.DrawSnapshot{State: service.DrawStateUsersLoading}}
		r := winnersRouter(&fakeWinnerService{}, resolver, draw)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/winners/draw",
			strings.NewReader(`{"ticketId": "t1", "prize": 50}`))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusAccepted, w.Code)
		assert.Equal(t, 1, draw.spins)
		assert.Contains(t, w.Body.String(), `"state":"users_loading"`)
	})

	t.Run("running draw answers 409", func(t *testing.T) {
		resolver := &fakeTicketResolver{ticket: domain.Ticket{ID: "t1", Name: "Grand"}}
		draw := &fakeDraw{spinErr: service.ErrDrawInProgress}
		r := winnersRouter(&fakeWinnerService{}, resolver, draw)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/winners/draw",
			strings.NewReader(`{"ticketId": "t1", "prize": 50}`))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusConflict, w.Code)
	})
}

func TestWinnerHandler_HandleListWinners(t *testing.T) {
	r := winnersRouter(&fakeWinnerService{
		winners: []domain.Winner{{ID: "w1", Name: "Ada", Prize: 100}},
	}, &fakeTicketResolver{}, &fakeDraw{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/winners", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"name":"Ada"`)
}

func TestWinnerHandler_HandleDrawStatus(t *testing.T) {
	draw := &fakeDraw{snapshot: service.DrawSnapshot{
		State:     service.DrawStateSpinning,
		Highlight: 7,
	}}
	r := winnersRouter(&fakeWinnerService{}, &fakeTicketResolver{}, draw)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/winners/draw", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"state":"spinning"`)
	assert.Contains(t, w.Body.String(), `"highlight":7`)
}
