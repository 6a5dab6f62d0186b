package middleware

import (
	"net/http"

	"github.com/baechuer/account-service/internal/account"
	"github.com/baechuer/account-service/internal/domain"
)

// RequireRole gates a route on an exact role match.
// Assumes Auth() middleware has already injected the account into context.
func RequireRole(role domain.Role, writeErr WriteErrFunc) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			u, ok := UserFromContext(r.Context())
			if !ok {
				// Middleware ordering issue (Auth not applied) or context missing
				writeErr(w, r, domain.ErrTokenInvalid())
				return
			}

			if err := account.RequireRole(u, role); err != nil {
				writeErr(w, r, err)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
