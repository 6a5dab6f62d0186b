package account

import (
	"context"
	"strings"

	"github.com/baechuer/account-service/internal/domain"
)

// Register creates a new account with the default role. The repository
// assigns the id and creation timestamp; a duplicate email surfaces as a
// conflict from the repo.
func (s *Service) Register(ctx context.Context, fullName, email, password string) (domain.User, error) {
	email = strings.TrimSpace(email)
	fullName = strings.TrimSpace(fullName)

	if email == "" {
		return domain.User{}, domain.ErrMissingField("email")
	}
	if password == "" {
		return domain.User{}, domain.ErrMissingField("password")
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return domain.User{}, err
	}

	u := domain.User{
		FullName:     fullName,
		Email:        email,
		PasswordHash: hash,
		Role:         string(domain.RoleUser),
		IsActive:     true,
	}

	return s.users.Create(ctx, u)
}
