package character

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
	logger.Debug("Initializing character repository")

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

func (r *Repository) GetAllCharacters(ctx context.Context) ([]Character, error) {
	logger := r.logger.With("component", "character_repository", "operation", "get_all")
	logger.Debug("Retrieving all characters")

	var characters []Character
	if err := r.getExecutor(ctx, nil).Order("id").Find(&characters).Error; err != nil {
		logger.Error("Failed to query characters", "error", err)
		return nil, errors.WrapInternal("failed to query characters", err)
	}

	logger.Debug("Characters retrieved", "count", len(characters))
	return characters, nil
}

func (r *Repository) GetCharacterByID(ctx context.Context, id int) (*Character, error) {
	logger := r.logger.With("component", "character_repository", "operation", "get_by_id", "character_id", id)
	logger.Debug("Getting character by ID")

	var character Character
	err := r.getExecutor(ctx, nil).First(&character, id).Error
	if stderrors.Is(err, gorm.ErrRecordNotFound) {
		logger.Debug("No character found with ID")
		return nil, errors.NotFound("character not found")
	}
	if err != nil {
		logger.Error("Database error getting character by ID", "error", err)
		return nil, errors.WrapInternal("failed to get character", err)
	}

	return &character, nil
}

func (r *Repository) Exists(ctx context.Context, id int, tx *database.Tx) (bool, error) {
	var count int64
	if err := r.getExecutor(ctx, tx).Model(&Character{}).Where("id = ?", id).Count(&count).Error; err != nil {
		r.logger.Error("Failed to check character existence", "component", "character_repository", "character_id", id, "error", err)
		return false, errors.WrapInternal("failed to check character", err)
	}
	return count > 0, nil
}

// CreateCharacters inserts characters in one statement, skipping names that
// already exist. It returns the number of rows inserted.
func (r *Repository) CreateCharacters(ctx context.Context, characters []Character, tx *database.Tx) (int64, error) {
	if len(characters) == 0 {
		return 0, nil
	}

	logger := r.logger.With(
		"component", "character_repository",
		"operation", "create_batch",
		"count", len(characters),
	)
	logger.Debug("Creating characters in batch")

	result := r.getExecutor(ctx, tx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "name"}}, DoNothing: true}).
		Create(&characters)
	if result.Error != nil {
		logger.Error("Failed to batch create characters", "error", result.Error)
		return 0, errors.WrapInternal("failed to create characters", result.Error)
	}

	logger.Info("Characters batch created", "inserted", result.RowsAffected)
	return result.RowsAffected, nil
}
