package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/vietanh2810/elections-api/internal/api"
	"github.com/vietanh2810/elections-api/internal/config"
	"github.com/vietanh2810/elections-api/internal/db"
	"github.com/vietanh2810/elections-api/internal/logger"
	"github.com/vietanh2810/elections-api/internal/repository/cache"
)

const (
	configPath      = "./cmd/app/config.yml"
	shutdownTimeout = 10 * time.Second
)

func Start() error {
	loader := config.NewLoader(configPath)
	conf, err := loader.Load()
	if err != nil {
		return fmt.Errorf("failed to initialize config -> %w", err)
	}

	if err = logger.Init(conf.API.Environment); err != nil {
		return fmt.Errorf("failed to initialize logger -> %w", err)
	}
	defer func() { _ = zap.L().Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	postgresDB, err := db.Open(conf.Postgres)
	if err != nil {
		return fmt.Errorf("failed to initialize database -> %w", err)
	}

	denylist, closeDenylist, err := newDenylist(ctx, conf.Redis)
	if err != nil {
		return fmt.Errorf("failed to initialize token denylist -> %w", err)
	}
	defer closeDenylist()

	s := api.NewServer(conf, postgresDB, denylist)

	loader.Watch(func(reloaded *config.AppConfig) {
		s.Results.SetIncludeZeroVotes(reloaded.Results.IncludeZeroVotes)
		zap.L().Info("config reloaded",
			zap.Bool("results.include_zero_votes", reloaded.Results.IncludeZeroVotes))
	}, func(err error) {
		zap.L().Warn("ignoring invalid config change", zap.Error(err))
	})

	srv := &http.Server{
		Addr:              ":" + s.Config.API.Port,
		Handler:           s.Router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		zap.L().Info(fmt.Sprintf("starting server at %v", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("srv.ListenAndServe -> %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gCtx.Done()
		zap.L().Info("shutting down server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("srv.Shutdown -> %w", err)
		}
		return nil
	})

	if err = g.Wait(); err != nil {
		return fmt.Errorf("failed to run the server -> %w", err)
	}

	return nil
}

func newDenylist(ctx context.Context, conf *config.RedisConfig) (api.TokenDenylist, func(), error) {
	if conf.Address == "" {
		zap.L().Warn("redis not configured, revoked tokens are kept in memory")
		denylist := cache.NewMemoryTokenDenylist()
		return denylist, denylist.Close, nil
	}

	client, err := db.OpenRedis(ctx, conf)
	if err != nil {
		return nil, nil, err
	}

	return cache.NewRedisTokenDenylist(client), func() { _ = client.Close() }, nil
}
