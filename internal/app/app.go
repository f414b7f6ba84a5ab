package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/heartmarshall/wortschatz-backend/internal/adapter/postgres"
	redisadapter "github.com/heartmarshall/wortschatz-backend/internal/adapter/redis"
	"github.com/heartmarshall/wortschatz-backend/internal/auth"
	"github.com/heartmarshall/wortschatz-backend/internal/config"
	"github.com/heartmarshall/wortschatz-backend/internal/domain"
	"github.com/heartmarshall/wortschatz-backend/internal/transport/middleware"
	"github.com/heartmarshall/wortschatz-backend/internal/transport/rest"
)

// Run starts the HTTP API and blocks until ctx is cancelled, then shuts
// the server down gracefully.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if err := cfg.RequireDatabase(); err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
		slog.Bool("auth_enabled", cfg.Auth.Enabled),
		slog.Bool("redis_enabled", cfg.Redis.Enabled()),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return err
	}
	defer pool.Close()

	if cfg.Database.AutoMigrate {
		if err := postgres.Migrate(ctx, pool, logger); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}

	rdb, err := OpenRedis(ctx, cfg.Redis)
	if err != nil {
		return err
	}
	if rdb != nil {
		defer rdb.Close()
	}

	provider := NewWoerterProvider(cfg, rdb, logger)
	svc := NewWordEntryService(pool, provider, logger)

	var healthOpts []rest.HealthOption
	if rdb != nil {
		healthOpts = append(healthOpts, rest.WithCache(redisadapter.Pinger{Client: rdb}))
	}
	health := rest.NewHealthHandler(pool, BuildVersion(), healthOpts...)

	limiter := middleware.NewRateLimiter(time.Minute)
	defer limiter.Stop()

	routerCfg := rest.RouterConfig{
		Logger:          logger,
		CORS:            cfg.CORS,
		RateLimiter:     limiter,
		UploadPerMinute: cfg.Server.UploadPerMinute,
	}
	if cfg.Auth.Enabled {
		routerCfg.Tokens = auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.TokenTTL)
	}

	handler := rest.NewRouter(routerCfg,
		health,
		rest.NewWordEntryHandler(svc, domain.EntryListDraft, logger),
		rest.NewWordEntryHandler(svc, domain.EntryListApproved, logger),
	)

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down", slog.Duration("timeout", cfg.Server.ShutdownTimeout))

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http server shutdown: %w", err)
	}

	logger.Info("server stopped")
	return nil
}
