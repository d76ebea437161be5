// Package seed loads the reference datasets and demo users from a JSON
// fixture.
package seed

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"starwars-api/internal/character"
	"starwars-api/internal/planet"
	"starwars-api/internal/shared/database"
	"starwars-api/internal/shared/errors"
	"starwars-api/internal/user"

	"github.com/go-playground/validator/v10"
)

type Result struct {
	Users      int64
	Characters int64
	Planets    int64
}

type Loader struct {
	db         *database.DB
	users      *user.Service
	characters *character.Service
	planets    *planet.Service
	validate   *validator.Validate
	logger     *slog.Logger
}

func NewLoader(db *database.DB, users *user.Service, characters *character.Service, planets *planet.Service, logger *slog.Logger) *Loader {
	return &Loader{
		db:         db,
		users:      users,
		characters: characters,
		planets:    planets,
		validate:   newValidator(),
		logger:     logger,
	}
}

func (l *Loader) LoadFile(ctx context.Context, path string) (*Result, error) {
	logger := l.logger.With("component", "seed_loader", "operation", "load_file", "path", path)
	logger.Info("Reading seed fixture")

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open seed fixture: %w", err)
	}
	defer file.Close()

	fixture, err := Parse(file)
	if err != nil {
		return nil, err
	}

	return l.Load(ctx, fixture)
}

// Load validates fixture and inserts it in one transaction. Records whose
// email or name already exists are skipped, so loading twice is a no-op.
func (l *Loader) Load(ctx context.Context, fixture *Fixture) (*Result, error) {
	logger := l.logger.With("component", "seed_loader", "operation", "load")

	if err := Validate(l.validate, fixture); err != nil {
		return nil, err
	}

	result := &Result{}
	err := l.db.WithTx(ctx, func(tx *database.Tx) error {
		for _, record := range fixture.Users {
			_, err := l.users.CreateUser(ctx, record.Email, record.Password, tx)
			if errors.IsConflict(err) {
				logger.Debug("User already present, skipping", "email", record.Email)
				continue
			}
			if err != nil {
				return err
			}
			result.Users++
		}

		characters := make([]character.Character, 0, len(fixture.Characters))
		for _, record := range fixture.Characters {
			characters = append(characters, record.model())
		}
		inserted, err := l.characters.CreateCharacters(ctx, characters, tx)
		if err != nil {
			return err
		}
		result.Characters = inserted

		planets := make([]planet.Planet, 0, len(fixture.Planets))
		for _, record := range fixture.Planets {
			planets = append(planets, record.model())
		}
		inserted, err = l.planets.CreatePlanets(ctx, planets, tx)
		if err != nil {
			return err
		}
		result.Planets = inserted

		return nil
	})
	if err != nil {
		logger.Error("Seed transaction rolled back", "error", err)
		return nil, err
	}

	if err := l.characters.InvalidateCache(ctx); err != nil {
		logger.Warn("Failed to invalidate character cache", "error", err)
	}
	if err := l.planets.InvalidateCache(ctx); err != nil {
		logger.Warn("Failed to invalidate planet cache", "error", err)
	}

	logger.Info("Seed fixture loaded",
		"users", result.Users,
		"characters", result.Characters,
		"planets", result.Planets,
	)
	return result, nil
}
