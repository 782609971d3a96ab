package upstream

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ticketlot/admin-gateway/internal/domain"
)

type fakeTokens struct {
	token   string
	cleared bool
}

func (f *fakeTokens) Token() string { return f.token }

func (f *fakeTokens) Clear() error {
	f.token = ""
	f.cleared = true

	return nil
}

func newTestClient(t *testing.T, tokens TokenSource, handler http.HandlerFunc) *Client {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return NewClient(srv.URL, tokens, 5*time.Second)
}

func TestClient_ListUsers(t *testing.T) {
	tokens := &fakeTokens{token: "tok-123"}

	client := newTestClient(t, tokens, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/users", r.URL.Path)
		assert.Equal(t, "Bearer tok-123", r.Header.Get("Authorization"))
		assert.Equal(t, "2", r.URL.Query().Get("page"))
		assert.Equal(t, "10", r.URL.Query().Get("limit"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"success": true,
			"data": [{"id": "u1", "name": "Ada", "email": "ada@example.com", "role": "admin"}],
			"pagination": {"page": 2, "limit": 10, "total": 21, "pages": 3}
		}`))
	})

	users, pagination, err := client.ListUsers(context.Background(), 2, 10)
	require.NoError(t, err)

	require.Len(t, users, 1)
	assert.Equal(t, "u1", users[0].ID)
	assert.Equal(t, "Ada", users[0].Name)
	assert.True(t, users[0].IsAdmin())

	require.NotNil(t, pagination)
	assert.Equal(t, 21, pagination.Total)
	assert.Equal(t, 3, pagination.Pages)
}

func TestClient_Unauthorized(t *testing.T) {
	tokens := &fakeTokens{token: "stale"}

	client := newTestClient(t, tokens, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})

	_, _, err := client.ListUsers(context.Background(), 1, 10)
	require.ErrorIs(t, err, ErrUnauthorized)

	assert.True(t, tokens.cleared, "a 401 must discard the stored token")
	assert.Empty(t, tokens.Token())
}

func TestClient_PlatformError(t *testing.T) {
	client := newTestClient(t, &fakeTokens{}, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"success": false, "error": "ticket not found"}`))
	})

	_, err := client.GetTicket(context.Background(), "missing")

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
	assert.Equal(t, "ticket not found", apiErr.Message)
}

func TestClient_CreateTicket(t *testing.T) {
	drawDate := time.Date(2026, 10, 1, 18, 0, 0, 0, time.UTC)

	client := newTestClient(t, &fakeTokens{token: "tok"}, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/tickets", r.URL.Path)

		require.NoError(t, r.ParseMultipartForm(1<<20))
		assert.Equal(t, "Grand Draw", r.FormValue("name"))
		assert.Equal(t, "25.5", r.FormValue("price"))
		assert.Equal(t, "true", r.FormValue("isActive"))
		assert.Equal(t, "2026-10-01T18:00:00Z", r.FormValue("drawDate"))

		file, header, err := r.FormFile("image")
		require.NoError(t, err)
		defer file.Close()
		assert.Equal(t, "poster.png", header.Filename)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success": true, "data": {"id": "t1", "name": "Grand Draw"}}`))
	})

	ticket, err := client.CreateTicket(context.Background(), domain.TicketInput{
		Name:     "Grand Draw",
		Price:    25.5,
		DrawDate: drawDate,
		IsActive: true,
	}, &Upload{FileName: "poster.png", Content: strings.NewReader("png-bytes")})
	require.NoError(t, err)

	assert.Equal(t, "t1", ticket.ID)
}

func TestClient_CreateTicketWithoutImage(t *testing.T) {
	client := newTestClient(t, &fakeTokens{token: "tok"}, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(1<<20))

		_, _, err := r.FormFile("image")
		assert.Error(t, err, "no image part should be sent when none was uploaded")

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success": true, "data": {"id": "t2"}}`))
	})

	ticket, err := client.CreateTicket(context.Background(), domain.TicketInput{Name: "No Image"}, nil)
	require.NoError(t, err)
	assert.Equal(t, "t2", ticket.ID)
}

func TestClient_UpdatePurchaseStatus(t *testing.T) {
	client := newTestClient(t, &fakeTokens{token: "tok"}, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/ticket-purchases/p1/status", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var payload map[string]string
		require.NoError(t, readJSON(r, &payload))
		assert.Equal(t, "rejected", payload["status"])
		assert.Equal(t, "receipt unreadable", payload["reviewNotes"])

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success": true, "data": {"id": "p1", "status": "rejected"}}`))
	})

	purchase, err := client.UpdatePurchaseStatus(context.Background(), "p1", domain.StatusUpdate{
		Status:      "rejected",
		ReviewNotes: "receipt unreadable",
	})
	require.NoError(t, err)
	assert.Equal(t, "rejected", purchase.Status)
}

func readJSON(r *http.Request, out any) error {
	defer r.Body.Close()

	return json.NewDecoder(r.Body).Decode(out)
}
