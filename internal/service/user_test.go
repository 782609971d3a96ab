package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ticketlot/admin-gateway/internal/domain"
)

type fakeDirectory struct {
	users []domain.User

	listPage  int
	listLimit int
}

func (f *fakeDirectory) ListUsers(_ context.Context, page, limit int) ([]domain.User, *domain.Pagination, error) {
	f.listPage = page
	f.listLimit = limit

	return f.users, nil, nil
}

func (f *fakeDirectory) GetUser(_ context.Context, id string) (domain.User, error) {
	return domain.User{ID: id}, nil
}

func (f *fakeDirectory) UpdateUser(_ context.Context, id string, user domain.User) (domain.User, error) {
	user.ID = id

	return user, nil
}

func (f *fakeDirectory) DeleteUser(_ context.Context, _ string) error {
	return nil
}

func TestUserService_List(t *testing.T) {
	var users []domain.User
	for i := 0; i < 45; i++ {
		users = append(users, domain.User{
			ID:    fmt.Sprintf("u%d", i),
			Name:  fmt.Sprintf("User %d", i),
			Email: fmt.Sprintf("user%d@example.com", i),
		})
	}
	users = append(users, domain.User{ID: "staff", Name: "Ada Lovelace", Email: "ada@example.com"})

	api := &fakeDirectory{users: users}
	svc := NewUserService(api)

	t.Run("fetches one large page and pages locally", func(t *testing.T) {
		page, pagination, err := svc.List(context.Background(), "", 2, 20)
		require.NoError(t, err)

		assert.Equal(t, 1, api.listPage)
		assert.Equal(t, fetchLimit, api.listLimit)

		assert.Len(t, page, 20)
		assert.Equal(t, "u20", page[0].ID)
		assert.Equal(t, 46, pagination.Total)
		assert.Equal(t, 3, pagination.Pages)
	})

	t.Run("substring filter is case-insensitive over name and email", func(t *testing.T) {
		page, pagination, err := svc.List(context.Background(), "LOVELACE", 1, 20)
		require.NoError(t, err)

		require.Len(t, page, 1)
		assert.Equal(t, "staff", page[0].ID)
		assert.Equal(t, 1, pagination.Total)
	})

	t.Run("page past the end is empty, not an error", func(t *testing.T) {
		page, pagination, err := svc.List(context.Background(), "", 99, 20)
		require.NoError(t, err)

		assert.Empty(t, page)
		assert.Equal(t, 46, pagination.Total)
	})

	t.Run("defaults apply to garbage paging values", func(t *testing.T) {
		page, pagination, err := svc.List(context.Background(), "", 0, -3)
		require.NoError(t, err)

		assert.Len(t, page, 20)
		assert.Equal(t, 1, pagination.Page)
		assert.Equal(t, 20, pagination.Limit)
	})
}
