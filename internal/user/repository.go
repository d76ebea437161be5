package user

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
	logger.Debug("Initializing user repository")

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

func (r *Repository) GetAllUsers(ctx context.Context) ([]User, error) {
	logger := r.logger.With("component", "user_repository", "operation", "get_all")
	logger.Debug("Retrieving all users")

	var users []User
	if err := r.getExecutor(ctx, nil).Order("id").Find(&users).Error; err != nil {
		logger.Error("Failed to query users", "error", err)
		return nil, errors.WrapInternal("failed to query users", err)
	}

	logger.Debug("Users retrieved successfully", "count", len(users))
	return users, nil
}

func (r *Repository) GetUserByID(ctx context.Context, id int, tx *database.Tx) (*User, error) {
	logger := r.logger.With("component", "user_repository", "operation", "get_by_id", "user_id", id)
	logger.Debug("Getting user by ID")

	var user User
	err := r.getExecutor(ctx, tx).First(&user, id).Error
	if stderrors.Is(err, gorm.ErrRecordNotFound) {
		logger.Debug("No user found with ID")
		return nil, errors.NotFound("user not found")
	}
	if err != nil {
		logger.Error("Database error getting user by ID", "error", err)
		return nil, errors.WrapInternal("failed to get user", err)
	}

	return &user, nil
}

func (r *Repository) FindUserByEmail(ctx context.Context, email string) (*User, error) {
	logger := r.logger.With("component", "user_repository", "operation", "find_by_email")
	logger.Debug("Finding user by email")

	var user User
	err := r.getExecutor(ctx, nil).Where("email = ?", email).First(&user).Error
	if stderrors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errors.NotFound("user not found")
	}
	if err != nil {
		logger.Error("Database error finding user by email", "error", err)
		return nil, errors.WrapInternal("failed to find user", err)
	}

	return &user, nil
}

// Exists reports whether a user with id is present.
func (r *Repository) Exists(ctx context.Context, id int, tx *database.Tx) (bool, error) {
	var count int64
	if err := r.getExecutor(ctx, tx).Model(&User{}).Where("id = ?", id).Count(&count).Error; err != nil {
		r.logger.Error("Failed to check user existence", "component", "user_repository", "user_id", id, "error", err)
		return false, errors.WrapInternal("failed to check user", err)
	}
	return count > 0, nil
}

// CreateUser inserts user and fills its ID. A duplicate email is a conflict.
func (r *Repository) CreateUser(ctx context.Context, user *User, tx *database.Tx) error {
	logger := r.logger.With("component", "user_repository", "operation", "create")
	logger.Info("Creating new user")

	result := r.getExecutor(ctx, tx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "email"}}, DoNothing: true}).
		Create(user)
	if result.Error != nil {
		logger.Error("Failed to create user", "error", result.Error)
		return errors.WrapInternal("failed to create user", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.Conflict("user already exists")
	}

	logger.Info("User created successfully", "user_id", user.ID)
	return nil
}
