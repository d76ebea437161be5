package character

import (
	"context"
	"log/slog"
	"strconv"

	"starwars-api/internal/shared/cache"
	"starwars-api/internal/shared/database"
)

const (
	cacheKeyAll    = "characters:all"
	cacheKeyPrefix = "characters:"
)

type Service struct {
	repo   *Repository
	cache  cache.Cache
	logger *slog.Logger
}

func NewService(repo *Repository, c cache.Cache, logger *slog.Logger) *Service {
	logger.Debug("Initializing character service", "cache_enabled", c.Enabled())

	return &Service{
		repo:   repo,
		cache:  c,
		logger: logger,
	}
}

func (s *Service) GetAllCharacters(ctx context.Context) ([]Character, error) {
	logger := s.logger.With("component", "character_service", "operation", "get_all")
	return cache.Fetch(ctx, s.cache, logger, cacheKeyAll, s.repo.GetAllCharacters)
}

func (s *Service) GetCharacterByID(ctx context.Context, id int) (*Character, error) {
	logger := s.logger.With("component", "character_service", "operation", "get_by_id", "character_id", id)
	return cache.Fetch(ctx, s.cache, logger, cacheKeyPrefix+strconv.Itoa(id), func(ctx context.Context) (*Character, error) {
		return s.repo.GetCharacterByID(ctx, id)
	})
}

func (s *Service) Exists(ctx context.Context, id int, tx *database.Tx) (bool, error) {
	return s.repo.Exists(ctx, id, tx)
}

func (s *Service) CreateCharacters(ctx context.Context, characters []Character, tx *database.Tx) (int64, error) {
	return s.repo.CreateCharacters(ctx, characters, tx)
}

// InvalidateCache drops the cached list after the dataset is reloaded.
func (s *Service) InvalidateCache(ctx context.Context) error {
	return s.cache.Delete(ctx, cacheKeyAll)
}
