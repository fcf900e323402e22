// @title                       Medical Office API
// @version                     1.0
// @description                 Patients, appointments and medical records for a medical office.
// @BasePath                    /
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/medoffice/office-api/internal/api"
	"github.com/medoffice/office-api/internal/api/handler"
	"github.com/medoffice/office-api/internal/api/metrics"
	"github.com/medoffice/office-api/internal/core/domain"
	"github.com/medoffice/office-api/internal/core/ports"
	"github.com/medoffice/office-api/internal/core/service"
	mongodb "github.com/medoffice/office-api/internal/infrastructure/db/mongo"
	"github.com/medoffice/office-api/internal/infrastructure/db/postgres"
	redisdb "github.com/medoffice/office-api/internal/infrastructure/db/redis"
	"github.com/medoffice/office-api/internal/infrastructure/queue"
	"github.com/medoffice/office-api/internal/infrastructure/supabase"
	"github.com/medoffice/office-api/internal/pkg/config"
	"github.com/medoffice/office-api/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	rootCmd := &cobra.Command{
		Use:           "office-api",
		Short:         "Medical office API server",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(migrateCmd())

	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			cfg, log, err := bootstrap(ctx)
			if err != nil {
				return err
			}
			return runServer(ctx, cfg, log)
		},
	}
}

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending database migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cfg, log, err := bootstrap(ctx)
			if err != nil {
				return err
			}

			pool, err := connectPostgres(ctx, cfg)
			if err != nil {
				return err
			}
			defer pool.Close()

			n, err := postgres.Migrate(ctx, pool, log)
			if err != nil {
				return fmt.Errorf("migration failed: %w", err)
			}
			log.Info().Int("applied", n).Msg("migrations complete")
			return nil
		},
	}
}

func bootstrap(ctx context.Context) (*config.Config, zerolog.Logger, error) {
	cfg, err := config.Load(ctx)
	if err != nil {
		return nil, zerolog.Nop(), err
	}
	if err := cfg.Validate(); err != nil {
		return nil, zerolog.Nop(), err
	}

	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  cfg.IsDevelopment(),
		Service: "office-api",
		Env:     cfg.Env,
	})
	return cfg, log, nil
}

func connectPostgres(ctx context.Context, cfg *config.Config) (*pgxpool.Pool, error) {
	return postgres.Connect(ctx, postgres.Config{
		URL:      cfg.Postgres.URL,
		MaxConns: cfg.Postgres.MaxConns,
	})
}

func runServer(ctx context.Context, cfg *config.Config, log zerolog.Logger) error {
	// --- Postgres ---
	pool, err := connectPostgres(ctx, cfg)
	if err != nil {
		return err
	}
	defer pool.Close()
	log.Info().Msg("connected to postgres")

	health := handler.NewHealthHandler().AddCheck("postgres", pool.Ping)

	// --- Identity provider ---
	provider, err := supabase.New(supabase.Config{
		URL:            cfg.Supabase.URL,
		AnonKey:        cfg.Supabase.AnonKey,
		ServiceRoleKey: cfg.Supabase.ServiceRoleKey,
		JWTSecret:      cfg.Supabase.JWTSecret,
	})
	if err != nil {
		return err
	}
	if cfg.Supabase.JWTSecret == "" {
		log.Warn().Msg("SUPABASE_JWT_SECRET not set, tokens are verified against the auth API")
	}

	// --- Redis (optional) ---
	var revoked ports.RevocationStore
	if cfg.Redis.Addr != "" {
		store, err := redisdb.Open(ctx, redisdb.Config{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
			Secret:   revocationSecret(cfg),
		})
		if err != nil {
			return err
		}
		defer store.Close()
		revoked = store
		health.AddCheck("redis", store.Ping)
		log.Info().Str("addr", cfg.Redis.Addr).Msg("connected to redis, logout revocation enabled")
	}

	// --- MongoDB audit trail (optional) ---
	var (
		recorder ports.AuditRecorder
		auditLog ports.AuditService
	)
	if cfg.Mongo.URI != "" {
		client, db, err := mongodb.Connect(ctx, mongodb.Config{URI: cfg.Mongo.URI, Database: cfg.Mongo.Database})
		if err != nil {
			return err
		}
		defer func() {
			dctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			_ = client.Disconnect(dctx)
		}()
		if err := mongodb.EnsureIndexes(ctx, db); err != nil {
			return err
		}

		auditRepo := mongodb.NewAuditRepository(db)
		dispatcher := queue.NewDispatcher(cfg.Audit.Workers, auditRepo, logger.Component("audit"))
		dispatcher.OnQueued = func(domain.AuditEvent) { metrics.AuditEventsTotal.WithLabelValues("queued").Inc() }
		dispatcher.OnDrop = func(domain.AuditEvent) { metrics.AuditEventsTotal.WithLabelValues("dropped").Inc() }
		dispatcher.OnError = func(domain.AuditEvent, error) { metrics.AuditEventsTotal.WithLabelValues("failed").Inc() }
		// Workers outlive ctx so Close can drain the queue after shutdown.
		dispatcher.Start(context.Background())
		defer dispatcher.Close()

		recorder = dispatcher
		auditLog = service.NewAuditService(auditRepo)
		health.AddCheck("mongodb", func(ctx context.Context) error { return client.Ping(ctx, nil) })
		log.Info().Str("database", cfg.Mongo.Database).Msg("connected to mongodb, audit trail enabled")
	}

	// --- Services ---
	users := postgres.NewUserRepository(pool)
	svc := api.Services{
		Authenticator:  service.NewAuthenticator(provider, users, revoked, logger.Component("auth")),
		Auth:           service.NewAuthService(provider, users, revoked, logger.Component("auth")),
		Users:          service.NewUserService(users, provider, logger.Component("users")),
		Patients:       service.NewPatientService(postgres.NewPatientRepository(pool)),
		Appointments:   service.NewAppointmentService(postgres.NewAppointmentRepository(pool)),
		MedicalRecords: service.NewMedicalRecordService(postgres.NewMedicalRecordRepository(pool)),
		Audit:          recorder,
		AuditLog:       auditLog,
		Health:         health,
	}

	e := api.NewRouter(log, api.Options{
		Development:  cfg.IsDevelopment(),
		FrontendURL:  cfg.FrontendURL,
		SecureCookie: cfg.IsProduction(),
	}, svc)

	// --- HTTP server ---
	srv := &http.Server{
		Addr:              net.JoinHostPort("", cfg.Port),
		Handler:           e,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}
	log.Info().Msg("server stopped")
	return nil
}

// revocationSecret keys revocation digests. The JWT secret is preferred;
// the anon key is stable per project and serves when it is unset.
func revocationSecret(cfg *config.Config) []byte {
	if cfg.Supabase.JWTSecret != "" {
		return []byte(cfg.Supabase.JWTSecret)
	}
	return []byte(cfg.Supabase.AnonKey)
}
