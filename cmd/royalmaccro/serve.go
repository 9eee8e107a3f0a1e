// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 ROYALMACCRO Contributors

package main

import (
	"context"
	"log/slog"
	"os/signal"
	"syscall"
	"time"

	"github.com/samber/oops"
	"github.com/spf13/cobra"

	"github.com/SonnyEclipsed/ROYALMACCRO/internal/api"
	"github.com/SonnyEclipsed/ROYALMACCRO/internal/auth"
	authpg "github.com/SonnyEclipsed/ROYALMACCRO/internal/auth/postgres"
	"github.com/SonnyEclipsed/ROYALMACCRO/internal/config"
	"github.com/SonnyEclipsed/ROYALMACCRO/internal/logging"
	"github.com/SonnyEclipsed/ROYALMACCRO/internal/observability"
	"github.com/SonnyEclipsed/ROYALMACCRO/internal/store"
)

const shutdownTimeout = 15 * time.Second

// NewServeCmd creates the serve subcommand.
func NewServeCmd() *cobra.Command {
	var autoMigrate bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the identity service",
		Long: `Start the identity service: the JSON/HTTP API, the in-memory session
manager, and the observability endpoints.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(configFile, cmd.Flags())
			if err != nil {
				return err
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			return runServe(cmd.Context(), cfg, autoMigrate)
		},
	}

	cmd.Flags().String("http.addr", config.DefaultHTTPAddr, "API listen address")
	cmd.Flags().String("metrics.addr", config.DefaultMetricsAddr, "metrics/health HTTP address (empty = disabled)")
	cmd.Flags().String("database.url", "", "PostgreSQL URL (default: DATABASE_URL env)")
	cmd.Flags().String("log.format", config.DefaultLogFormat, "log format (json or text)")
	cmd.Flags().BoolVar(&autoMigrate, "auto-migrate", false, "apply pending migrations on startup")

	return cmd
}

func runServe(ctx context.Context, cfg *config.Config, autoMigrate bool) error {
	logging.SetDefault("royalmaccro", version, cfg.Log.Format)
	logger := slog.Default()

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if autoMigrate {
		migrator, err := store.NewMigrator(cfg.Database.URL)
		if err != nil {
			return err
		}
		if err := migrator.Up(); err != nil {
			_ = migrator.Close() //nolint:errcheck // migration error takes precedence
			return err
		}
		if err := migrator.Close(); err != nil {
			return err
		}
		logger.Info("migrations applied")
	}

	pool, err := store.Connect(ctx, cfg.Database.URL)
	if err != nil {
		return err
	}
	defer pool.Close()
	logger.Info("connected to database")

	accounts := authpg.NewAccountRepository(pool)
	profiles := authpg.NewProfileRepository(pool)
	sessions := auth.NewSessionManager()
	hasher := auth.NewBcryptHasher()

	service, err := auth.NewServiceWithLogger(accounts, profiles, sessions, hasher, logger)
	if err != nil {
		return err
	}

	var metrics *observability.Metrics
	var obsErrCh <-chan error
	var obsServer *observability.Server
	if cfg.Metrics.Addr != "" {
		obsServer = observability.NewServer(cfg.Metrics.Addr,
			func() bool { return pool.Ping(ctx) == nil },
			sessions.Count,
		)
		obsErrCh, err = obsServer.Start()
		if err != nil {
			return err
		}
		metrics = obsServer.Metrics()
	}

	router := api.NewRouter(api.RouterConfig{
		Logger:      logger,
		AuthService: service,
		Sessions:    sessions,
		Metrics:     metrics,
	})
	apiServer := api.NewServer(cfg.HTTP.Addr, router, logger)

	apiErrCh := make(chan error, 1)
	go func() {
		apiErrCh <- apiServer.Start()
	}()

	var runErr error
	select {
	case <-ctx.Done():
		logger.Info("shutdown signal received")
	case err := <-apiErrCh:
		if err != nil {
			runErr = oops.With("component", "api").Wrap(err)
		}
	case err, ok := <-obsErrCh:
		if ok && err != nil {
			runErr = oops.With("component", "observability").Wrap(err)
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := apiServer.Stop(shutdownCtx); err != nil && runErr == nil {
		runErr = err
	}
	if obsServer != nil {
		if err := obsServer.Stop(shutdownCtx); err != nil && runErr == nil {
			runErr = err
		}
	}

	return runErr
}
