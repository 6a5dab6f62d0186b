package bootstrap

import (
	"context"
	"database/sql"
	"errors"
	"net/http"

	"github.com/baechuer/account-service/internal/account"
	"github.com/baechuer/account-service/internal/config"
	"github.com/baechuer/account-service/internal/logger"
	"github.com/baechuer/account-service/internal/security"
	"github.com/baechuer/account-service/internal/store/migrations"
	"github.com/baechuer/account-service/internal/store/postgres"
	"github.com/baechuer/account-service/internal/transport/http/handlers"
	"github.com/baechuer/account-service/internal/transport/http/router"
)

/*
========================
 Public entry (prod)
========================
*/

func NewServer() (*http.Server, func(), error) {
	return newServer(defaultDeps())
}

// NewServerWithDeps allows injecting dependencies for testing
func NewServerWithDeps(deps Deps) (*http.Server, func(), error) {
	return newServer(deps)
}

/*
========================
 Dependency injection
========================
*/

type Deps struct {
	LoadConfig func() (*config.Config, error)

	NewDB func(addr string) (DBCloser, error)

	NewRouter func(router.Deps) (http.Handler, error)
}

type DBCloser interface {
	Close() error
}

func defaultDeps() Deps {
	return Deps{
		LoadConfig: config.Load,
		NewDB: func(addr string) (DBCloser, error) {
			return config.OpenDB(addr)
		},
		NewRouter: router.New,
	}
}

/*
========================
 Core bootstrap logic
========================
*/

func newServer(deps Deps) (*http.Server, func(), error) {
	// 0) config
	cfg, err := deps.LoadConfig()
	if err != nil {
		return nil, nil, err
	}

	// 1) db
	db, err := deps.NewDB(cfg.DBAddr)
	if err != nil {
		return nil, nil, err
	}

	cleanupFns := []func(){
		func() { _ = db.Close() },
	}

	sqlDB, ok := db.(*sql.DB)
	if !ok {
		runCleanup(cleanupFns)
		return nil, nil, errors.New("bootstrap: NewDB did not return *sql.DB")
	}

	// 2) migrations
	if err := migrations.Up(context.Background(), sqlDB); err != nil {
		runCleanup(cleanupFns)
		return nil, nil, err
	}

	// 3) repo + security
	userRepo := postgres.NewUserRepo(sqlDB)
	hasher := security.NewBcryptHasher(cfg.BcryptCost)

	logger.Logger.Info().Str("issuer", cfg.JWTIssuer).Msg("initializing jwt signer")
	signer := security.NewJWTSigner(cfg.JWTSecret, cfg.JWTIssuer)

	// seed (dev only)
	if cfg.Env == "dev" {
		postgres.SeedUsers(context.Background(), userRepo, hasher)
	}

	// 4) service
	svc := account.NewService(userRepo, hasher, signer, account.Config{
		AccessTTL: cfg.AccessTokenTTL,
	})

	// 5) transport
	h, err := deps.NewRouter(router.Deps{
		Account: handlers.NewAccountHandler(svc),
		Admin:   handlers.NewAdminHandler(svc),
		Health:  handlers.NewHealthHandler(sqlDB),
		Authn:   svc,
	})
	if err != nil {
		runCleanup(cleanupFns)
		return nil, nil, err
	}

	srv := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      h,
		ReadTimeout:  cfg.HTTPReadTimeout,
		WriteTimeout: cfg.HTTPWriteTimeout,
		IdleTimeout:  cfg.HTTPIdleTimeout,
	}

	cleanup := func() { runCleanup(cleanupFns) }
	return srv, cleanup, nil
}

// runCleanup runs cleanups in reverse order of registration.
func runCleanup(fns []func()) {
	for i := len(fns) - 1; i >= 0; i-- {
		fns[i]()
	}
}
