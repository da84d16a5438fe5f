package main

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"stellar-cargo/internal/auth"
	"stellar-cargo/internal/config"
	"stellar-cargo/internal/database"
	"stellar-cargo/internal/export"
	"stellar-cargo/internal/fixtures"
	"stellar-cargo/internal/logging"
	"stellar-cargo/internal/metrics"
	"stellar-cargo/internal/models"
	"stellar-cargo/internal/server"
	"stellar-cargo/internal/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}
	logger, err := logging.New(cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	if err := run(cfg, logger); err != nil {
		logger.Fatal("server error", zap.Error(err))
	}
}

func run(cfg *config.Config, logger *zap.Logger) error {
	ctx := context.Background()
	m := metrics.New()

	policy, err := store.ParseReferencePolicy(cfg.ReferencePolicy)
	if err != nil {
		return err
	}
	st := store.New(fixtures.Seed(),
		store.WithReferencePolicy(policy),
		store.WithLogger(logger),
		store.WithObserver(func(entry models.ActivityLog) { m.ObserveMutation(entry.Action) }),
	)

	sessions, health, closeSessions, err := openSessions(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer closeSessions()

	secret, err := authSecret(cfg, logger)
	if err != nil {
		return err
	}
	authSvc, err := auth.NewService(auth.Config{
		Users:     fixtures.Users(),
		Password:  cfg.DemoPassword,
		Delay:     cfg.LoginDelay,
		Secret:    secret,
		TokenTTL:  cfg.AuthTokenTTL,
		Sessions:  sessions,
		Logger:    logger,
		OnAttempt: m.ObserveLogin,
	})
	if err != nil {
		return err
	}

	archive, err := openArchive(ctx, cfg)
	if err != nil {
		return err
	}

	srv := server.NewServer(cfg.Addr(), server.Config{
		Store:     st,
		Auth:      authSvc,
		Users:     fixtures.Users(),
		Health:    health,
		Archive:   archive,
		Metrics:   m,
		Logger:    logger,
		RateLimit: rate.Limit(cfg.RateLimitRPS),
		RateBurst: cfg.RateLimitBurst,
	})

	// Create a listener on the desired address
	listener, err := net.Listen("tcp", srv.Addr)
	if err != nil {
		return fmt.Errorf("create listener: %w", err)
	}

	errChan := make(chan error, 1)
	go func() {
		logger.Info("server started",
			zap.String("addr", srv.Addr),
			zap.String("sessions", string(cfg.SessionBackend)),
			zap.String("reference_policy", policy.String()))
		if err := srv.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- err
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errChan:
		return err
	case sig := <-stop:
		logger.Info("initiating graceful shutdown", zap.String("signal", sig.String()))

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := srv.Shutdown(ctx); err != nil {
			return fmt.Errorf("graceful shutdown: %w", err)
		}
		logger.Info("server gracefully stopped")
		return nil
	}
}

func openSessions(ctx context.Context, cfg *config.Config, logger *zap.Logger) (auth.SessionStore, server.HealthChecker, func(), error) {
	noop := func() {}
	switch cfg.SessionBackend {
	case config.SessionFile:
		return auth.FileSessionStore{Dir: cfg.SessionDir}, nil, noop, nil
	case config.SessionPostgres, config.SessionSQLite:
		db, err := database.New(ctx, cfg.Database(), logger)
		if err != nil {
			return nil, nil, noop, err
		}
		if cfg.MigrateOnStart {
			if err := database.Migrate(db, cfg.MigrationsPath, database.Up); err != nil {
				db.Close()
				return nil, nil, noop, err
			}
		}
		return db, db, func() { db.Close() }, nil
	default:
		return auth.NewMemorySessionStore(), nil, noop, nil
	}
}

func authSecret(cfg *config.Config, logger *zap.Logger) ([]byte, error) {
	if cfg.AuthSecret != "" {
		return []byte(cfg.AuthSecret), nil
	}
	secret := make([]byte, 32)
	if _, err := rand.Read(secret); err != nil {
		return nil, fmt.Errorf("generate auth secret: %w", err)
	}
	logger.Warn("AUTH_SECRET not set, using a random secret; sessions end with the process")
	return secret, nil
}

func openArchive(ctx context.Context, cfg *config.Config) (export.Archive, error) {
	switch {
	case cfg.ExportDir != "":
		return export.DirArchive{Root: cfg.ExportDir}, nil
	case cfg.ExportS3Bucket != "":
		archive, err := export.NewS3Archive(ctx, export.S3Config{
			Bucket:          cfg.ExportS3Bucket,
			Region:          cfg.ExportS3Region,
			Endpoint:        cfg.ExportS3Endpoint,
			PathStyle:       cfg.ExportS3PathStyle,
			AccessKeyID:     cfg.ExportS3AccessKey,
			SecretAccessKey: cfg.ExportS3SecretKey,
			Prefix:          cfg.ExportS3Prefix,
		})
		if err != nil {
			return nil, err
		}
		return archive, nil
	}
	return nil, nil
}
