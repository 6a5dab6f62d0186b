package account

import (
	"context"

	"github.com/baechuer/account-service/internal/domain"
)

const (
	defaultPageLimit = 10
	maxPageLimit     = 100
)

// ListUsers returns one page of accounts. Pagination is offset-based with
// the source defaults: page 1, limit 10.
func (s *Service) ListUsers(ctx context.Context, page, limit int) ([]domain.User, error) {
	if page < 1 {
		page = 1
	}
	if limit <= 0 {
		limit = defaultPageLimit
	}
	if limit > maxPageLimit {
		limit = maxPageLimit
	}

	offset := (page - 1) * limit
	return s.users.List(ctx, offset, limit)
}

func (s *Service) ActivateUser(ctx context.Context, id int64) error {
	return s.users.SetActive(ctx, id, true)
}

func (s *Service) DeactivateUser(ctx context.Context, id int64) error {
	return s.users.SetActive(ctx, id, false)
}
