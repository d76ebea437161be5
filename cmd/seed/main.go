package main

import (
	"context"
	"flag"
	"log/slog"
	"os"

	"starwars-api/internal/character"
	"starwars-api/internal/favorite"
	"starwars-api/internal/planet"
	"starwars-api/internal/seed"
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
	path := flag.String("fixture", cfg.Seed.FixturePath, "path to the JSON seed fixture")
	flag.Parse()

	log := slog.With("component", "seed", "fixture", *path)

	if err := run(cfg, *path); err != nil {
		log.Error("Seeding failed", "error", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config, path string) error {
	db, err := database.Connect(cfg.Database)
	if err != nil {
		return err
	}
	defer db.Close()

	if err := db.RunMigrations(&user.User{}, &character.Character{}, &planet.Planet{}, &favorite.Favorite{}); err != nil {
		return err
	}

	redisClient, err := redis.Connect(cfg.Redis)
	if err != nil {
		return err
	}
	defer redisClient.Close()

	readCache := redisClient.Cache(slog.Default())

	loader := seed.NewLoader(
		db,
		user.NewService(user.NewRepository(db, slog.Default()), cfg.Security.BcryptCost, slog.Default()),
		character.NewService(character.NewRepository(db, slog.Default()), readCache, slog.Default()),
		planet.NewService(planet.NewRepository(db, slog.Default()), readCache, slog.Default()),
		slog.Default(),
	)

	result, err := loader.LoadFile(context.Background(), path)
	if err != nil {
		return err
	}

	slog.Info("Seed complete",
		"users", result.Users,
		"characters", result.Characters,
		"planets", result.Planets,
	)
	return nil
}
