package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"starwars-api/internal/character"
	"starwars-api/internal/favorite"
	"starwars-api/internal/middleware"
	"starwars-api/internal/planet"
	"starwars-api/internal/server"
	"starwars-api/internal/shared/config"
	"starwars-api/internal/shared/database"
	"starwars-api/internal/shared/logger"
	"starwars-api/internal/shared/redis"
	"starwars-api/internal/user"
)

func main() {
	if err := config.Init(); err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}
	logger.Init()

	cfg := config.GlobalConfig
	log := slog.With("component", "main")

	db, err := database.Connect(cfg.Database)
	if err != nil {
		log.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}

	if err := db.RunMigrations(&user.User{}, &character.Character{}, &planet.Planet{}, &favorite.Favorite{}); err != nil {
		log.Error("Failed to run migrations", "error", err)
		os.Exit(1)
	}

	redisClient, err := redis.Connect(cfg.Redis)
	if err != nil {
		log.Error("Failed to connect to Redis", "error", err)
		os.Exit(1)
	}

	readCache := redisClient.Cache(slog.Default())

	userService := user.NewService(user.NewRepository(db, slog.Default()), cfg.Security.BcryptCost, slog.Default())
	characterService := character.NewService(character.NewRepository(db, slog.Default()), readCache, slog.Default())
	planetService := planet.NewService(planet.NewRepository(db, slog.Default()), readCache, slog.Default())
	favoriteService := favorite.NewService(
		db,
		favorite.NewRepository(db, slog.Default()),
		userService,
		characterService,
		planetService,
		slog.Default(),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	mux := server.NewRoutes(db, userService, characterService, planetService, favoriteService, readCache.Enabled()).Setup()
	handler := server.NewHandler(
		mux,
		middleware.NewCORS(cfg.Frontend),
		middleware.NewRateLimiter(ctx, cfg.RateLimit),
	)

	srv := server.New(cfg.Server, handler, db, redisClient)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	select {
	case err := <-errCh:
		if err != nil {
			log.Error("Server stopped unexpectedly", "error", err)
			os.Exit(1)
		}
	case <-ctx.Done():
		log.Info("Shutdown signal received")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Graceful shutdown failed", "error", err)
		os.Exit(1)
	}
}
