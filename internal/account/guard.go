package account

import (
	"context"

	"github.com/baechuer/account-service/internal/domain"
)

// Authenticate resolves a bearer token into the live account it refers to.
// Token verification happens first; a valid token whose account has since
// been deleted fails with user_not_found. Deactivated accounts still
// authenticate for the token's remaining lifetime: tokens are stateless and
// there is no revocation list.
func (s *Service) Authenticate(ctx context.Context, rawToken string) (domain.User, error) {
	claims, err := s.signer.VerifyAccessToken(rawToken)
	if err != nil {
		return domain.User{}, err
	}

	return s.users.GetByID(ctx, claims.UserID)
}

// RequireRole passes u through unchanged when its role matches exactly.
// Any role other than the required one is non-privileged, including roles
// that should not exist in stored data.
func RequireRole(u domain.User, role domain.Role) error {
	if !domain.IsValidRole(string(role)) {
		return domain.ErrForbidden()
	}
	if u.Role != string(role) {
		return domain.ErrInsufficientRole(string(role))
	}
	return nil
}
