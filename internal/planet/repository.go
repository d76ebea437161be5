package planet

import (
	"context"
	stderrors "errors"
	"log/slog"

	"starwars-api/internal/shared/database"
	"starwars-api/internal/shared/errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Repository struct {
	db     *database.DB
	logger *slog.Logger
}

func NewRepository(db *database.DB, logger *slog.Logger) *Repository {
	logger.Debug("Initializing planet repository")

	return &Repository{
		db:     db,
		logger: logger,
	}
}

func (r *Repository) getExecutor(ctx context.Context, tx *database.Tx) *gorm.DB {
	if tx != nil {
		return tx.WithContext(ctx)
	}
	return r.db.WithContext(ctx)
}

func (r *Repository) GetAllPlanets(ctx context.Context) ([]Planet, error) {
	logger := r.logger.With("component", "planet_repository", "operation", "get_all")
	logger.Debug("Retrieving all planets")

	var planets []Planet
	if err := r.getExecutor(ctx, nil).Order("id").Find(&planets).Error; err != nil {
		logger.Error("Failed to query planets", "error", err)
		return nil, errors.WrapInternal("failed to query planets", err)
	}

	logger.Debug("Planets retrieved", "count", len(planets))
	return planets, nil
}

func (r *Repository) GetPlanetByID(ctx context.Context, id int) (*Planet, error) {
	logger := r.logger.With("component", "planet_repository", "operation", "get_by_id", "planet_id", id)
	logger.Debug("Getting planet by ID")

	var planet Planet
	err := r.getExecutor(ctx, nil).First(&planet, id).Error
	if stderrors.Is(err, gorm.ErrRecordNotFound) {
		logger.Debug("No planet found with ID")
		return nil, errors.NotFound("planet not found")
	}
	if err != nil {
		logger.Error("Database error getting planet by ID", "error", err)
		return nil, errors.WrapInternal("failed to get planet", err)
	}

	return &planet, nil
}

func (r *Repository) Exists(ctx context.Context, id int, tx *database.Tx) (bool, error) {
	var count int64
	if err := r.getExecutor(ctx, tx).Model(&Planet{}).Where("id = ?", id).Count(&count).Error; err != nil {
		r.logger.Error("Failed to check planet existence", "component", "planet_repository", "planet_id", id, "error", err)
		return false, errors.WrapInternal("failed to check planet", err)
	}
	return count > 0, nil
}

// CreatePlanets inserts planets in one statement, skipping names that already
// exist. It returns the number of rows inserted.
func (r *Repository) CreatePlanets(ctx context.Context, planets []Planet, tx *database.Tx) (int64, error) {
	if len(planets) == 0 {
		return 0, nil
	}

	logger := r.logger.With(
		"component", "planet_repository",
		"operation", "create_batch",
		"count", len(planets),
	)
	logger.Debug("Creating planets in batch")

	result := r.getExecutor(ctx, tx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "name"}}, DoNothing: true}).
		Create(&planets)
	if result.Error != nil {
		logger.Error("Failed to batch create planets", "error", result.Error)
		return 0, errors.WrapInternal("failed to create planets", result.Error)
	}

	logger.Info("Planets batch created", "inserted", result.RowsAffected)
	return result.RowsAffected, nil
}
