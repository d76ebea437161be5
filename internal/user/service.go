package user

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"starwars-api/internal/shared/database"
	"starwars-api/internal/shared/errors"

	"github.com/go-playground/validator/v10"
	"golang.org/x/crypto/bcrypt"
)

type Service struct {
	repo       *Repository
	bcryptCost int
	validate   *validator.Validate
	logger     *slog.Logger
}

func NewService(repo *Repository, bcryptCost int, logger *slog.Logger) *Service {
	logger.Debug("Initializing user service")

	return &Service{
		repo:       repo,
		bcryptCost: bcryptCost,
		validate:   validator.New(),
		logger:     logger,
	}
}

func (s *Service) GetAllUsers(ctx context.Context) ([]User, error) {
	return s.repo.GetAllUsers(ctx)
}

func (s *Service) GetUserByID(ctx context.Context, id int) (*User, error) {
	return s.repo.GetUserByID(ctx, id, nil)
}

func (s *Service) Exists(ctx context.Context, id int, tx *database.Tx) (bool, error) {
	return s.repo.Exists(ctx, id, tx)
}

// CreateUser hashes password with bcrypt and stores the user.
func (s *Service) CreateUser(ctx context.Context, email, password string, tx *database.Tx) (*User, error) {
	logger := s.logger.With("component", "user_service", "operation", "create_user")

	email = strings.TrimSpace(strings.ToLower(email))
	if err := s.validate.Var(email, "required,email,max=120"); err != nil {
		return nil, errors.WrapValidation("invalid email", err)
	}
	if password == "" {
		return nil, errors.Validation("password is required")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if err != nil {
		logger.Error("Failed to hash password", "error", err)
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &User{Email: email, PasswordHash: string(hash)}
	if err := s.repo.CreateUser(ctx, user, tx); err != nil {
		return nil, err
	}

	logger.Info("User created", "user_id", user.ID)
	return user, nil
}

// VerifyPassword reports whether password matches the stored hash.
func (s *Service) VerifyPassword(user *User, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) == nil
}
