package favorite

import (
	"context"
	"log/slog"

	"starwars-api/internal/shared/database"
	"starwars-api/internal/shared/errors"
)

// ExistenceChecker is satisfied by the user, character and planet services.
type ExistenceChecker interface {
	Exists(ctx context.Context, id int, tx *database.Tx) (bool, error)
}

type Service struct {
	db      *database.DB
	repo    *Repository
	users   ExistenceChecker
	targets map[TargetKind]ExistenceChecker
	logger  *slog.Logger
}

func NewService(db *database.DB, repo *Repository, users, characters, planets ExistenceChecker, logger *slog.Logger) *Service {
	logger.Debug("Initializing favorite service")

	return &Service{
		db:    db,
		repo:  repo,
		users: users,
		targets: map[TargetKind]ExistenceChecker{
			TargetCharacter: characters,
			TargetPlanet:    planets,
		},
		logger: logger,
	}
}

func (s *Service) GetAllFavorites(ctx context.Context) ([]Favorite, error) {
	return s.repo.GetAllFavorites(ctx)
}

func (s *Service) GetFavoritesByUserID(ctx context.Context, userID int) ([]Favorite, error) {
	return s.repo.GetFavoritesByUserID(ctx, userID)
}

// Add marks itemID as a favorite of userID. The duplicate check runs first,
// then the item lookup, then the user lookup.
func (s *Service) Add(ctx context.Context, userID int, kind TargetKind, itemID int) error {
	column, ok := kind.column()
	if !ok {
		return errors.Validationf("unknown favorite kind %q", kind)
	}

	logger := s.logger.With(
		"component", "favorite_service",
		"operation", "add",
		"user_id", userID,
		"kind", kind,
		"item_id", itemID,
	)
	logger.Debug("Adding favorite")

	err := s.db.WithTx(ctx, func(tx *database.Tx) error {
		exists, err := s.repo.Exists(ctx, userID, column, itemID, tx)
		if err != nil {
			return err
		}
		if exists {
			return errors.Conflictf("%s already in favorites", kind)
		}

		found, err := s.targets[kind].Exists(ctx, itemID, tx)
		if err != nil {
			return err
		}
		if !found {
			return errors.NotFoundf("%s not found", kind)
		}

		found, err = s.users.Exists(ctx, userID, tx)
		if err != nil {
			return err
		}
		if !found {
			return errors.NotFound("user not found")
		}

		inserted, err := s.repo.Create(ctx, newFavorite(userID, kind, itemID), tx)
		if err != nil {
			return err
		}
		if !inserted {
			return errors.Conflictf("%s already in favorites", kind)
		}
		return nil
	})
	if err != nil {
		return err
	}

	logger.Info("Favorite added")
	return nil
}

func (s *Service) Remove(ctx context.Context, userID int, kind TargetKind, itemID int) error {
	column, ok := kind.column()
	if !ok {
		return errors.Validationf("unknown favorite kind %q", kind)
	}

	logger := s.logger.With(
		"component", "favorite_service",
		"operation", "remove",
		"user_id", userID,
		"kind", kind,
		"item_id", itemID,
	)

	deleted, err := s.repo.Delete(ctx, userID, column, itemID, nil)
	if err != nil {
		return err
	}
	if deleted == 0 {
		return errors.NotFoundf("%s not found in favorites", kind)
	}

	logger.Info("Favorite removed")
	return nil
}
