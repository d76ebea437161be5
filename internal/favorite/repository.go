package favorite

import (
	"context"
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
	logger.Debug("Initializing favorite repository")

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

func (r *Repository) GetAllFavorites(ctx context.Context) ([]Favorite, error) {
	logger := r.logger.With("component", "favorite_repository", "operation", "get_all")
	logger.Debug("Retrieving all favorites")

	var favorites []Favorite
	if err := r.getExecutor(ctx, nil).Order("id").Find(&favorites).Error; err != nil {
		logger.Error("Failed to query favorites", "error", err)
		return nil, errors.WrapInternal("failed to query favorites", err)
	}

	return favorites, nil
}

func (r *Repository) GetFavoritesByUserID(ctx context.Context, userID int) ([]Favorite, error) {
	logger := r.logger.With("component", "favorite_repository", "operation", "get_by_user", "user_id", userID)
	logger.Debug("Retrieving favorites for user")

	var favorites []Favorite
	if err := r.getExecutor(ctx, nil).Where("user_id = ?", userID).Order("id").Find(&favorites).Error; err != nil {
		logger.Error("Failed to query user favorites", "error", err)
		return nil, errors.WrapInternal("failed to query favorites", err)
	}

	logger.Debug("User favorites retrieved", "count", len(favorites))
	return favorites, nil
}

// Exists reports whether userID already has itemID in column.
func (r *Repository) Exists(ctx context.Context, userID int, column string, itemID int, tx *database.Tx) (bool, error) {
	var count int64
	err := r.getExecutor(ctx, tx).Model(&Favorite{}).
		Where("user_id = ?", userID).
		Where(clause.Eq{Column: clause.Column{Name: column}, Value: itemID}).
		Count(&count).Error
	if err != nil {
		r.logger.Error("Failed to check favorite", "component", "favorite_repository", "user_id", userID, "column", column, "error", err)
		return false, errors.WrapInternal("failed to check favorite", err)
	}
	return count > 0, nil
}

// Create inserts fav unless a row for the same user and target exists. It
// reports whether a row was written.
func (r *Repository) Create(ctx context.Context, fav *Favorite, tx *database.Tx) (bool, error) {
	logger := r.logger.With("component", "favorite_repository", "operation", "create", "user_id", fav.UserID)

	result := r.getExecutor(ctx, tx).
		Omit(clause.Associations).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(fav)
	if result.Error != nil {
		logger.Error("Failed to create favorite", "error", result.Error)
		return false, errors.WrapInternal("failed to create favorite", result.Error)
	}

	if result.RowsAffected == 0 {
		logger.Debug("Favorite insert skipped by unique index")
		return false, nil
	}

	logger.Debug("Favorite created", "favorite_id", fav.ID)
	return true, nil
}

// Delete removes the favorite matching userID and itemID and returns the
// number of rows deleted.
func (r *Repository) Delete(ctx context.Context, userID int, column string, itemID int, tx *database.Tx) (int64, error) {
	logger := r.logger.With("component", "favorite_repository", "operation", "delete", "user_id", userID, "column", column)

	result := r.getExecutor(ctx, tx).
		Where("user_id = ?", userID).
		Where(clause.Eq{Column: clause.Column{Name: column}, Value: itemID}).
		Delete(&Favorite{})
	if result.Error != nil {
		logger.Error("Failed to delete favorite", "error", result.Error)
		return 0, errors.WrapInternal("failed to delete favorite", result.Error)
	}

	return result.RowsAffected, nil
}
