package account

import (
	"context"
	"time"

	"github.com/baechuer/account-service/internal/domain"
)

/*
UserRepo
--------
Persistence port for user accounts.
Only describes WHAT the account service needs, not HOW it's stored.
*/
type UserRepo interface {
	GetByEmail(ctx context.Context, email string) (domain.User, error)
	GetByID(ctx context.Context, id int64) (domain.User, error)
	Create(ctx context.Context, u domain.User) (domain.User, error)

	// Updates needed by business flows
	UpdateProfile(ctx context.Context, id int64, fullName, email string) (domain.User, error)
	UpdatePasswordHash(ctx context.Context, id int64, newHash string) error
	SetActive(ctx context.Context, id int64, active bool) error
	TouchLastLogin(ctx context.Context, id int64, at time.Time) error
	List(ctx context.Context, offset, limit int) ([]domain.User, error)
	Delete(ctx context.Context, id int64) error
}

/*
PasswordHasher
--------------
Abstracts bcrypt. Compare returns nil on match; any mismatch or malformed
stored hash is an error, never a panic.
*/
type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash string, password string) error
}

/*
TokenSigner
-----------
Issues and verifies access tokens (JWT).
Used by service + auth middleware.
*/
type TokenClaims struct {
	UserID int64
	Role   string
	Exp    time.Time
}

type TokenSigner interface {
	SignAccessToken(userID int64, role string, ttl time.Duration) (string, error)
	VerifyAccessToken(token string) (TokenClaims, error)
}
