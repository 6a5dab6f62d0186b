package postgres

import (
	"context"
	"log"

	"github.com/baechuer/account-service/internal/domain"
)

type SeederHasher interface {
	Hash(password string) (string, error)
}

type SeederRepo interface {
	Create(ctx context.Context, u domain.User) (domain.User, error)
}

// SeedUsers inserts dev accounts. Restart safe: duplicates are ignored.
func SeedUsers(ctx context.Context, repo SeederRepo, hasher SeederHasher) {
	type seedUser struct {
		Name  string
		Email string
		Role  string
		Pass  string
	}

	seeds := []seedUser{
		{Name: "Admin", Email: "admin@example.com", Role: "admin", Pass: "AdminPassword123!"},
		{Name: "Regular User", Email: "user@example.com", Role: "user", Pass: "UserPassword123!"},
	}

	for _, s := range seeds {
		hash, err := hasher.Hash(s.Pass)
		if err != nil {
			log.Printf("[seed] hash failed (%s): %v", s.Email, err)
			continue
		}

		u := domain.User{
			FullName:     s.Name,
			Email:        s.Email,
			PasswordHash: hash,
			Role:         s.Role,
			IsActive:     true,
		}

		if _, err := repo.Create(ctx, u); err != nil {
			continue
		}
	}

	log.Println("[seed] postgres users seeded")
}
