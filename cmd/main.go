package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-redis/redis/v8"
	"github.com/rs/zerolog/log"

	"taskboard-service/internal/api"
	"taskboard-service/internal/auth"
	"taskboard-service/internal/cache"
	"taskboard-service/internal/config"
	"taskboard-service/internal/database"
	"taskboard-service/internal/repository"
	"taskboard-service/internal/service"
	"taskboard-service/migrations"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load config")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := database.Open(ctx, cfg.DBDriver, cfg.DSN(), cfg.DBConnectRetries)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to database")
	}
	defer db.Close()

	if err := migrations.AutoMigrate(cfg.DBConnectRetries, db); err != nil {
		log.Fatal().Err(err).Msg("Failed to migrate schema")
	}

	tokens, err := auth.NewTokenService(cfg.JWTSecret, cfg.JWTAlgorithm)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create token service")
	}

	userRepo := repository.NewUserRepository(db)
	boardRepo := repository.NewBoardRepository(db)
	todoRepo := repository.NewTodoRepository(db)

	var userCache auth.UserCache
	if cfg.RedisAddr != "" {
		rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		defer rdb.Close()
		if err := rdb.Ping(ctx).Err(); err != nil {
			log.Warn().Err(err).Str("addr", cfg.RedisAddr).Msg("Redis unreachable, user lookups will fall back to the database")
		}
		userCache = cache.NewUserCache(rdb, cfg.UserCacheTTL)
	}

	userService := service.NewUserService(userRepo, auth.NewCredentialStore(cfg.BcryptCost), tokens, cfg.AccessTokenTTL)
	boardService := service.NewBoardService(boardRepo, todoRepo)
	todoService := service.NewTodoService(todoRepo, boardService)

	e := api.NewServer(api.Handlers{
		Users:  api.NewUserHandler(userService),
		Boards: api.NewBoardHandler(boardService),
		Todos:  api.NewTodoHandler(todoService),
	}, auth.NewGuard(tokens, userRepo, userCache), cfg.AllowedOrigins)

	go func() {
		addr := net.JoinHostPort("", cfg.Port)
		log.Info().Str("addr", addr).Msg("Starting server")
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error().Err(err).Msg("Server stopped")
			stop()
		}
	}()

	<-ctx.Done()
	log.Info().Msg("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Error during server shutdown")
	}
}
