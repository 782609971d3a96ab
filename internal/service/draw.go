package service

import (
	"context"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/ticketlot/admin-gateway/internal/domain"
)

// DrawState is one of the draw session's lifecycle states.
type DrawState string

const (
	DrawStateIdle         DrawState = "idle"
	DrawStateUsersLoading DrawState = "users_loading"
	DrawStateSpinning     DrawState = "spinning"
	DrawStateSettled      DrawState = "settled"
	DrawStateSaving       DrawState = "saving"
)

// drawRosterLimit bounds the user fetch that feeds the animation.
const drawRosterLimit = 1000

// DrawTimings controls the animation pacing. Production uses
// DefaultDrawTimings; tests inject much shorter values.
type DrawTimings struct {
	SpinDuration time.Duration
	TickInterval time.Duration
	SettlePause  time.Duration
}

func DefaultDrawTimings() DrawTimings {
	return DrawTimings{
		SpinDuration: 3 * time.Second,
		TickInterval: 50 * time.Millisecond,
		SettlePause:  500 * time.Millisecond,
	}
}

// DrawAPI is the slice of the upstream client the draw engine uses.
type DrawAPI interface {
	ListUsers(ctx context.Context, page, limit int) ([]domain.User, *domain.Pagination, error)
	CreateWinner(ctx context.Context, winner domain.NewWinner) (domain.Winner, error)
	ListWinners(ctx context.Context) ([]domain.Winner, error)
}

// DrawSnapshot is the state the winners page polls while a draw runs.
type DrawSnapshot struct {
	State      DrawState     `json:"state"`
	TicketID   string        `json:"ticketId,omitempty"`
	TicketName string        `json:"ticketName,omitempty"`
	Prize      float64       `json:"prize,omitempty"`
	Roster     []domain.User `json:"roster,omitempty"`
	Highlight  int           `json:"highlight"`
	LastWinner *domain.Winner `json:"lastWinner,omitempty"`
	LastError  string        `json:"lastError,omitempty"`
	Winners    []domain.Winner `json:"winners,omitempty"`
}

// DrawEngine runs the winner draw as a single cancellable task:
// idle -> users_loading -> spinning -> settled -> saving -> idle.
//
// The whole fetched roster is shown spinning, but the random pick is
// restricted to admin-role users. That asymmetry is the product rule:
// every account spins for suspense, only staff accounts can win.
type DrawEngine struct {
	api     DrawAPI
	timings DrawTimings
	rng     *rand.Rand

	mu         sync.Mutex
	state      DrawState
	ticket     domain.Ticket
	prize      float64
	roster     []domain.User
	highlight  int
	lastWinner *domain.Winner
	lastErr    string
	winners    []domain.Winner

	cancel context.CancelFunc
	done   chan struct{}
}

func NewDrawEngine(api DrawAPI, timings DrawTimings) *DrawEngine {
	return &DrawEngine{
		api:     api,
		timings: timings,
		rng:     rand.New(rand.NewSource(time.Now().UnixNano())),
		state:   DrawStateIdle,
	}
}

// Spin starts a draw for the selected ticket and prize amount. The
// guards run before any network request: an invalid selection leaves
// the session idle, and a second Spin is rejected while one is running.
func (e *DrawEngine) Spin(ticket domain.Ticket, prize float64) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.state != DrawStateIdle {
		return ErrDrawInProgress
	}
	if ticket.ID == "" {
		return ErrTicketRequired
	}
	if prize <= 0 {
		return ErrPrizeNotPositive
	}

	e.ticket = ticket
	e.prize = prize
	e.lastErr = ""
	e.lastWinner = nil
	e.state = DrawStateUsersLoading

	ctx, cancel := context.WithCancel(context.Background())
	e.cancel = cancel
	e.done = make(chan struct{})
	go e.run(ctx, e.done)

	return nil
}

// Snapshot returns a copy of the session state for polling.
func (e *DrawEngine) Snapshot() DrawSnapshot {
	e.mu.Lock()
	defer e.mu.Unlock()

	snap := DrawSnapshot{
		State:      e.state,
		TicketID:   e.ticket.ID,
		TicketName: e.ticket.Name,
		Prize:      e.prize,
		Roster:     append([]domain.User(nil), e.roster...),
		Highlight:  e.highlight,
		LastWinner: e.lastWinner,
		LastError:  e.lastErr,
		Winners:    append([]domain.Winner(nil), e.winners...),
	}

	return snap
}

// Close cancels a running draw and waits for its task to exit, so no
// ticker outlives the engine.
func (e *DrawEngine) Close() {
	e.mu.Lock()
	cancel := e.cancel
	done := e.done
	e.cancel = nil
	e.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	if done != nil {
		<-done
	}
}

func (e *DrawEngine) run(ctx context.Context, done chan struct{}) {
	defer close(done)

	users, _, err := e.api.ListUsers(ctx, 1, drawRosterLimit)
	if err != nil {
		e.fail(fmt.Errorf("e.api.ListUsers -> %w", err))
		return
	}

	var admins []domain.User
	for _, u := range users {
		if u.IsAdmin() {
			admins = append(admins, u)
		}
	}
	if len(users) == 0 || len(admins) == 0 {
		e.fail(ErrNoEligibleWinners)
		return
	}

	e.mu.Lock()
	e.roster = users
	e.highlight = 0
	e.state = DrawStateSpinning
	e.mu.Unlock()

	if !e.animate(ctx, len(users)) {
		e.cancelled()
		return
	}

	// The pick is uniform over admins only; the animation cycled over
	// the full roster.
	winner := admins[e.rng.Intn(len(admins))]

	settleIndex := indexOfUser(users, winner.ID)
	if settleIndex < 0 {
		zap.L().Warn("drawn winner not found in displayed roster, highlighting first entry",
			zap.String("userId", winner.ID))
		settleIndex = 0
	}

	e.mu.Lock()
	e.highlight = settleIndex
	e.state = DrawStateSettled
	prize := e.prize
	ticket := e.ticket
	e.mu.Unlock()

	if !sleepCtx(ctx, e.timings.SettlePause) {
		e.cancelled()
		return
	}

	e.mu.Lock()
	e.state = DrawStateSaving
	e.mu.Unlock()

	created, err := e.api.CreateWinner(ctx, domain.NewWinner{
		Name:       winner.Name,
		Prize:      prize,
		DrawDate:   time.Now().UTC(),
		TicketName: ticket.Name,
		TicketID:   ticket.ID,
		UserID:     winner.ID,
	})
	if err != nil {
		// Selections stay populated so the operator can retry.
		e.fail(fmt.Errorf("e.api.CreateWinner -> %w", err))
		return
	}

	winners, err := e.api.ListWinners(ctx)
	if err != nil {
		zap.L().Warn("failed to refresh winners after draw", zap.Error(err))
	}

	e.mu.Lock()
	e.lastWinner = &created
	if winners != nil {
		e.winners = winners
	}
	e.ticket = domain.Ticket{}
	e.prize = 0
	e.roster = nil
	e.highlight = 0
	e.state = DrawStateIdle
	e.mu.Unlock()

	zap.L().Info("draw completed",
		zap.String("winnerId", created.UserID),
		zap.String("ticket", created.TicketName),
		zap.Float64("prize", created.Prize))
}

// animate advances the highlight through the full roster until the
// spin duration elapses. Returns false if the context was cancelled.
func (e *DrawEngine) animate(ctx context.Context, rosterSize int) bool {
	ticker := time.NewTicker(e.timings.TickInterval)
	defer ticker.Stop()
	deadline := time.NewTimer(e.timings.SpinDuration)
	defer deadline.Stop()

	for {
		select {
		case <-ctx.Done():
			return false
		case <-ticker.C:
			e.mu.Lock()
			e.highlight = (e.highlight + 1) % rosterSize
			e.mu.Unlock()
		case <-deadline.C:
			return true
		}
	}
}

// fail reports a transient, retryable error and returns to idle
// without clearing the operator's selections.
func (e *DrawEngine) fail(err error) {
	zap.L().Warn("draw aborted", zap.Error(err))

	e.mu.Lock()
	e.lastErr = err.Error()
	e.state = DrawStateIdle
	e.mu.Unlock()
}

func (e *DrawEngine) cancelled() {
	e.mu.Lock()
	e.state = DrawStateIdle
	e.mu.Unlock()
}

func indexOfUser(users []domain.User, id string) int {
	for i, u := range users {
		if u.ID == id {
			return i
		}
	}

	return -1
}

func sleepCtx(ctx context.Context, d time.Duration) bool {
	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}
