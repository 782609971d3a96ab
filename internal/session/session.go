// Package session owns the single operator session: the persisted
// bearer token plus the signed-in staff profile. The session object is
// created by the application and injected into request handling.
package session

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"

	"github.com/ticketlot/admin-gateway/internal/domain"
	"github.com/ticketlot/admin-gateway/internal/upstream"
)

var ErrNotAuthenticated = errors.New("operator is not signed in")

// PlatformAuth is the slice of the upstream client the session needs.
type PlatformAuth interface {
	Login(ctx context.Context, email, password string) (domain.AuthResult, error)
	Profile(ctx context.Context) (domain.User, error)
}

// TokenInfo is display-only metadata read from the bearer token.
type TokenInfo struct {
	Subject   string    `json:"subject"`
	IssuedAt  time.Time `json:"issuedAt"`
	ExpiresAt time.Time `json:"expiresAt"`
}

type Session struct {
	mu    sync.RWMutex
	store *Store
	api   PlatformAuth
	user  domain.User
	known bool
}

func New(store *Store, api PlatformAuth) *Session {
	return &Session{store: store, api: api}
}

// Init validates a persisted token by fetching the profile. An invalid
// token is discarded and the operator stays anonymous; only transport
// failures are returned as errors.
func (s *Session) Init(ctx context.Context) error {
	if s.store.Token() == "" {
		return nil
	}

	user, err := s.api.Profile(ctx)
	if err != nil {
		if errors.Is(err, upstream.ErrUnauthorized) {
			zap.L().Info("persisted token was rejected, operator must sign in again")
			return nil
		}
		return fmt.Errorf("s.api.Profile -> %w", err)
	}

	s.mu.Lock()
	s.user = user
	s.known = true
	s.mu.Unlock()
	zap.L().Info("restored operator session", zap.String("email", user.Email))

	return nil
}

func (s *Session) Login(ctx context.Context, email, password string) (domain.User, error) {
	result, err := s.api.Login(ctx, email, password)
	if err != nil {
		return domain.User{}, fmt.Errorf("s.api.Login -> %w", err)
	}

	if err := s.store.Set(result.Token); err != nil {
		return domain.User{}, fmt.Errorf("s.store.Set -> %w", err)
	}

	s.mu.Lock()
	s.user = result.User
	s.known = true
	s.mu.Unlock()

	return result.User, nil
}

// Logout discards the token and the profile synchronously. No network
// confirmation is involved.
func (s *Session) Logout() {
	if err := s.store.Clear(); err != nil {
		zap.L().Warn("failed to remove persisted token", zap.Error(err))
	}

	s.mu.Lock()
	s.user = domain.User{}
	s.known = false
	s.mu.Unlock()
}

// Authenticated reports whether the operator is signed in. A token
// cleared by a platform 401 immediately flips this to false.
func (s *Session) Authenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.known && s.store.Token() != ""
}

func (s *Session) CurrentUser() (domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.known || s.store.Token() == "" {
		return domain.User{}, ErrNotAuthenticated
	}

	return s.user, nil
}

// TokenClaims reads subject and validity times out of the bearer token
// without verifying its signature. Display only, never an authorization
// decision; the platform is the sole authority on the token.
func (s *Session) TokenClaims() (TokenInfo, error) {
	token := s.store.Token()
	if token == "" {
		return TokenInfo{}, ErrNotAuthenticated
	}

	parsed, _, err := jwt.NewParser().ParseUnverified(token, jwt.MapClaims{})
	if err != nil {
		return TokenInfo{}, fmt.Errorf("jwt.ParseUnverified -> %w", err)
	}

	var info TokenInfo
	if sub, err := parsed.Claims.GetSubject(); err == nil {
		info.Subject = sub
	}
	if iat, err := parsed.Claims.GetIssuedAt(); err == nil && iat != nil {
		info.IssuedAt = iat.Time
	}
	if exp, err := parsed.Claims.GetExpirationTime(); err == nil && exp != nil {
		info.ExpiresAt = exp.Time
	}

	return info, nil
}
