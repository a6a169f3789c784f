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

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/francislhj094/pocket-worlds/config"
	"github.com/francislhj094/pocket-worlds/internal/db"
	"github.com/francislhj094/pocket-worlds/internal/db/repositories/kv_entry"
	"github.com/francislhj094/pocket-worlds/internal/healthcheck"
	"github.com/francislhj094/pocket-worlds/internal/services/auth"
	"github.com/francislhj094/pocket-worlds/internal/services/leaderboard"
	"github.com/francislhj094/pocket-worlds/internal/services/progression"
	"github.com/francislhj094/pocket-worlds/internal/store"
	"github.com/francislhj094/pocket-worlds/internal/transport/httpapi"
)

func StartApp() error {
	cfg := config.LoadConfigOrPanic()

	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Info().
		Str("app", cfg.AppConfig.APPName).
		Str("version", cfg.AppConfig.Version).
		Msg("starting")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	s, err := buildStore(ctx, cfg)
	if err != nil {
		return err
	}

	game := progression.NewGame(s)
	game.Load(ctx)

	authService := auth.NewService(s)
	authService.Load(ctx)

	board := leaderboard.NewLeaderboard(game)

	// Background energy reconciliation tick.
	go game.Start(ctx)

	healthcheck.StartHealthcheck(ctx, cfg.AppConfig)

	router := httpapi.NewRouter(httpapi.NewHandler(game, authService, board))
	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.AppConfig.Port),
		Handler: router,
	}

	go func() {
		sigs := make(chan os.Signal, 1)
		signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
		sig := <-sigs
		log.Info().Str("signal", sig.String()).Msg("shutting down")
		cancel()

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("server shutdown error")
		}
	}()

	log.Info().Int("port", cfg.AppConfig.Port).Msg("listening")
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// buildStore picks the persistence backend from config. Postgres gets its
// migrations applied before the first read.
func buildStore(ctx context.Context, cfg config.Config) (store.Store, error) {
	switch cfg.StoreConfig.Backend {
	case "memory":
		log.Info().Msg("using in-memory store")
		return store.NewMemoryStore(), nil
	case "redis":
		log.Info().Str("addr", cfg.RedisConfig.Addr).Msg("using redis store")
		return store.NewRedisStore(cfg.RedisConfig), nil
	default:
		database, err := db.NewDB(cfg.DBConfig)
		if err != nil {
			return nil, err
		}
		if err := database.Migrate(ctx); err != nil {
			return nil, err
		}
		log.Info().Str("host", cfg.DBConfig.Host).Msg("using postgres store")
		return kv_entry.NewKVRepository(database), nil
	}
}
