package account

import (
	"context"

	"github.com/baechuer/account-service/internal/domain"
)

// ChangePassword verifies the old password before storing a new hash.
// A wrong old password is reported as invalid_credentials, the same code a
// failed login produces.
func (s *Service) ChangePassword(ctx context.Context, userID int64, oldPassword, newPassword string) error {
	if oldPassword == "" {
		return domain.ErrMissingField("old_password")
	}
	if newPassword == "" {
		return domain.ErrMissingField("new_password")
	}

	u, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return err
	}

	if err := s.hasher.Compare(u.PasswordHash, oldPassword); err != nil {
		return domain.ErrInvalidCredentials()
	}

	hash, err := s.hasher.Hash(newPassword)
	if err != nil {
		return err
	}

	return s.users.UpdatePasswordHash(ctx, userID, hash)
}
