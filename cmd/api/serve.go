package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"venture-hub/internal/adapters/auth/introspect"
	"venture-hub/internal/adapters/auth/jwtauth"
	"venture-hub/internal/adapters/messaging/rabbitmq"
	pg "venture-hub/internal/adapters/storage/postgres"
	"venture-hub/internal/config"
	"venture-hub/internal/middleware"
	"venture-hub/internal/platform/logger"
	"venture-hub/internal/router"

	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"
)

func newServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Levanta el servidor HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context())
		},
	}
}

func runServe(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	log := newLogger(cfg)

	opts := router.Options{
		Logger: log,
		RateLimit: middleware.RateLimitOptions{
			Requests: cfg.RateLimit.Requests,
			Window:   cfg.RateLimit.Window,
		},
	}

	if cfg.DBDSN != "" {
		db, err := pg.Open(cfg.DBDSN)
		if err != nil {
			return err
		}
		defer db.Close()
		opts.DB = db
		log.Info("storage: postgres", nil)
	} else {
		log.Warn("storage: in-memory (DB_DSN vacío)", nil)
	}

	switch cfg.AuthMode {
	case config.AuthModeJWT:
		var jwtOpts []jwtauth.Option
		if cfg.JWTIssuer != "" {
			jwtOpts = append(jwtOpts, jwtauth.WithIssuer(cfg.JWTIssuer))
		}
		v, err := jwtauth.NewVerifier(cfg.JWTSecret, jwtOpts...)
		if err != nil {
			return err
		}
		opts.AuthVerifier = v
	case config.AuthModeRemote:
		v, err := introspect.NewVerifier(introspect.Config{
			BaseURL: cfg.Remote.URL,
			APIKey:  cfg.Remote.APIKey,
			Timeout: cfg.Remote.Timeout,
		})
		if err != nil {
			return err
		}
		opts.AuthVerifier = v
		log.Info("auth: remote", map[string]any{"url": cfg.Remote.URL})
	default:
		log.Warn("auth: modo dev (X-Debug-User-ID)", nil)
	}

	if cfg.RateLimit.Enabled && cfg.Redis.Addr != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer rdb.Close()

		pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
		err := rdb.Ping(pingCtx).Err()
		cancel()
		if err != nil {
			// el límite queda activo y falla abierto hasta que redis responda
			log.Warn("redis ping failed", map[string]any{"addr": cfg.Redis.Addr, "error": err})
		}
		opts.RateLimiter = rdb
	}

	if cfg.RabbitMQURL != "" {
		pub, err := rabbitmq.NewPublisher(cfg.RabbitMQURL, cfg.NotifyQueue)
		if err != nil {
			return err
		}
		defer pub.Close()
		opts.Publisher = pub
	}

	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      router.NewRouter(opts),
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("starting server", map[string]any{"addr": srv.Addr})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down", nil)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func newLogger(cfg config.Config) logger.Logger {
	return logger.New(logger.Options{
		Level:  logger.ParseLevel(cfg.Log.Level),
		Format: logger.ParseFormat(cfg.Log.Format),
		App:    cfg.Log.App,
		Env:    cfg.Env,
	})
}
