package response

import (
	"net/http"

	appctx "github.com/baechuer/account-service/internal/pkg/context"
)

func RequestIDFromContext(r *http.Request) string {
	id, _ := appctx.RequestIDFromContext(r.Context())
	return id
}
