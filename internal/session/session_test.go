package session

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ticketlot/admin-gateway/internal/domain"
	"github.com/ticketlot/admin-gateway/internal/upstream"
)

type fakeAuth struct {
	loginResult domain.AuthResult
	loginErr    error
	profile     domain.User
	profileErr  error
}

func (f *fakeAuth) Login(_ context.Context, _, _ string) (domain.AuthResult, error) {
	return f.loginResult, f.loginErr
}

func (f *fakeAuth) Profile(_ context.Context) (domain.User, error) {
	return f.profile, f.profileErr
}

func tokenPath(t *testing.T) string {
	t.Helper()

	return filepath.Join(t.TempDir(), ".admin_token")
}

func TestStore_RoundTrip(t *testing.T) {
	path := tokenPath(t)

	store, err := OpenStore(path)
	require.NoError(t, err)
	assert.Empty(t, store.Token())

	require.NoError(t, store.Set("tok-abc"))
	assert.Equal(t, "tok-abc", store.Token())

	// A fresh store reads the same token back from disk.
	reopened, err := OpenStore(path)
	require.NoError(t, err)
	assert.Equal(t, "tok-abc", reopened.Token())

	require.NoError(t, store.Clear())
	assert.Empty(t, store.Token())

	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err), "clearing must remove the token file")
}

func TestSession_LoginLogout(t *testing.T) {
	store, err := OpenStore(tokenPath(t))
	require.NoError(t, err)

	auth := &fakeAuth{
		loginResult: domain.AuthResult{
			Token: "tok-xyz",
			User:  domain.User{ID: "u1", Email: "staff@example.com", Role: domain.RoleAdmin},
		},
	}
	sess := New(store, auth)

	assert.False(t, sess.Authenticated())

	_, err = sess.CurrentUser()
	require.ErrorIs(t, err, ErrNotAuthenticated)

	user, err := sess.Login(context.Background(), "staff@example.com", "secret")
	require.NoError(t, err)
	assert.Equal(t, "u1", user.ID)
	assert.True(t, sess.Authenticated())
	assert.Equal(t, "tok-xyz", store.Token())

	current, err := sess.CurrentUser()
	require.NoError(t, err)
	assert.Equal(t, "staff@example.com", current.Email)

	sess.Logout()
	assert.False(t, sess.Authenticated())
	assert.Empty(t, store.Token())
}

func TestSession_InitRestoresPersistedToken(t *testing.T) {
	path := tokenPath(t)
	require.NoError(t, os.WriteFile(path, []byte("persisted"), 0o600))

	store, err := OpenStore(path)
	require.NoError(t, err)

	auth := &fakeAuth{profile: domain.User{ID: "u9", Email: "staff@example.com"}}
	sess := New(store, auth)

	require.NoError(t, sess.Init(context.Background()))
	assert.True(t, sess.Authenticated())

	user, err := sess.CurrentUser()
	require.NoError(t, err)
	assert.Equal(t, "u9", user.ID)
}

func TestSession_InitDiscardsRejectedToken(t *testing.T) {
	path := tokenPath(t)
	require.NoError(t, os.WriteFile(path, []byte("stale"), 0o600))

	store, err := OpenStore(path)
	require.NoError(t, err)

	// The client clears the store itself on a 401; mimic that before
	// surfacing the error, like the real collaboration does.
	auth := &fakeAuth{profileErr: upstream.ErrUnauthorized}
	sess := New(store, auth)

	require.NoError(t, sess.Init(context.Background()), "a rejected token is not a startup failure")
	assert.False(t, sess.Authenticated())
}

func TestSession_AuthenticatedFollowsStore(t *testing.T) {
	store, err := OpenStore(tokenPath(t))
	require.NoError(t, err)

	auth := &fakeAuth{
		loginResult: domain.AuthResult{Token: "tok", User: domain.User{ID: "u1"}},
	}
	sess := New(store, auth)

	_, err = sess.Login(context.Background(), "a@b.c", "pw")
	require.NoError(t, err)
	require.True(t, sess.Authenticated())

	// A platform 401 clears the store out from under the session.
	require.NoError(t, store.Clear())
	assert.False(t, sess.Authenticated())
}

func TestSession_TokenClaims(t *testing.T) {
	store, err := OpenStore(tokenPath(t))
	require.NoError(t, err)

	// HS256 token with sub=u1, iat=1700000000, exp=1700003600.
	// The signature is junk on purpose; claims are read unverified.
	const token = "eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9." +
		"eyJzdWIiOiJ1MSIsImlhdCI6MTcwMDAwMDAwMCwiZXhwIjoxNzAwMDAzNjAwfQ." +
		"bm90LXJlYWwtc2lnbmF0dXJl"
	require.NoError(t, store.Set(token))

	sess := New(store, &fakeAuth{})

	info, err := sess.TokenClaims()
	require.NoError(t, err)
	assert.Equal(t, "u1", info.Subject)
	assert.Equal(t, int64(1700000000), info.IssuedAt.Unix())
	assert.Equal(t, int64(1700003600), info.ExpiresAt.Unix())
}
