package account

import (
	"context"
	"strings"

	"github.com/baechuer/account-service/internal/domain"
)

func (s *Service) GetUserByID(ctx context.Context, id int64) (domain.User, error) {
	return s.users.GetByID(ctx, id)
}

// UpdateProfile applies a partial profile update. Empty fields keep their
// stored values; changing email to one already registered is a conflict.
func (s *Service) UpdateProfile(ctx context.Context, userID int64, fullName, email string) (domain.User, error) {
	fullName = strings.TrimSpace(fullName)
	email = strings.TrimSpace(email)

	if fullName == "" && email == "" {
		return s.users.GetByID(ctx, userID)
	}

	return s.users.UpdateProfile(ctx, userID, fullName, email)
}
