package service

import (
	"context"
	"fmt"

	"github.com/ticketlot/admin-gateway/internal/domain"
)

// UserDirectory is the slice of the upstream client the users page uses.
type UserDirectory interface {
	ListUsers(ctx context.Context, page, limit int) ([]domain.User, *domain.Pagination, error)
	GetUser(ctx context.Context, id string) (domain.User, error)
	UpdateUser(ctx context.Context, id string, user domain.User) (domain.User, error)
	DeleteUser(ctx context.Context, id string) error
}

type UserService struct {
	api UserDirectory
}

func NewUserService(api UserDirectory) *UserService {
	return &UserService{api: api}
}

// List fetches the roster and applies the dashboard's substring filter
// over name and email before paging locally.
func (s *UserService) List(ctx context.Context, query string, page, limit int) ([]domain.User, domain.Pagination, error) {
	users, _, err := s.api.ListUsers(ctx, 1, fetchLimit)
	if err != nil {
		return nil, domain.Pagination{}, fmt.Errorf("s.api.ListUsers -> %w", err)
	}

	filtered := make([]domain.User, 0, len(users))
	for _, u := range users {
		if matchesQuery(query, u.Name, u.Email) {
			filtered = append(filtered, u)
		}
	}

	pageItems, pagination := pageSlice(filtered, page, limit)

	return pageItems, pagination, nil
}

func (s *UserService) Get(ctx context.Context, id string) (domain.User, error) {
	user, err := s.api.GetUser(ctx, id)
	if err != nil {
		return domain.User{}, fmt.Errorf("s.api.GetUser -> %w", err)
	}

	return user, nil
}

func (s *UserService) Update(ctx context.Context, id string, user domain.User) (domain.User, error) {
	updated, err := s.api.UpdateUser(ctx, id, user)
	if err != nil {
		return domain.User{}, fmt.Errorf("s.api.UpdateUser -> %w", err)
	}

	return updated, nil
}

func (s *UserService) Delete(ctx context.Context, id string) error {
	if err := s.api.DeleteUser(ctx, id); err != nil {
		return fmt.Errorf("s.api.DeleteUser -> %w", err)
	}

	return nil
}
