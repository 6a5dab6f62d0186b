package router

import (
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/baechuer/account-service/internal/domain"
	"github.com/baechuer/account-service/internal/transport/http/handlers"
	"github.com/baechuer/account-service/internal/transport/http/middleware"
	"github.com/baechuer/account-service/internal/transport/http/response"
)

// Deps carries everything the router mounts. All fields are required
// except Health, which defaults to a handler without a database ping.
type Deps struct {
	Account *handlers.AccountHandler
	Admin   *handlers.AdminHandler
	Health  *handlers.HealthHandler
	Authn   middleware.Authenticator
}

func New(deps Deps) (http.Handler, error) {
	if deps.Account == nil {
		return nil, fmt.Errorf("router: account handler is required")
	}
	if deps.Admin == nil {
		return nil, fmt.Errorf("router: admin handler is required")
	}
	if deps.Authn == nil {
		return nil, fmt.Errorf("router: authenticator is required")
	}
	if deps.Health == nil {
		deps.Health = handlers.NewHealthHandler(nil)
	}

	r := chi.NewRouter()

	r.Use(chimw.RealIP)
	r.Use(middleware.RequestID)
	r.Use(chimw.Recoverer)
	r.Use(chimw.Timeout(30 * time.Second))
	r.Use(middleware.Metrics())

	r.Get("/healthz", deps.Health.Healthz)
	r.Handle("/metrics", promhttp.Handler())

	authenticated := middleware.Auth(deps.Authn, response.WriteError)
	adminOnly := middleware.RequireRole(domain.RoleAdmin, response.WriteError)

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/registration", deps.Account.Register)
		r.Post("/login", deps.Account.Login)

		r.Group(func(r chi.Router) {
			r.Use(authenticated)

			r.Get("/me", deps.Account.Me)
			r.Put("/update", deps.Account.UpdateProfile)
			r.Put("/updatePass", deps.Account.ChangePassword)

			r.Route("/admin", func(r chi.Router) {
				r.Use(adminOnly)

				r.Get("/users", deps.Admin.ListUsers)
				r.Put("/users/{id}/activate", deps.Admin.Activate)
				r.Put("/users/{id}/deactivate", deps.Admin.Deactivate)
			})
		})
	})

	return r, nil
}
