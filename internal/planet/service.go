package planet

import (
	"context"
	"log/slog"
	"strconv"

	"starwars-api/internal/shared/cache"
	"starwars-api/internal/shared/database"
)

const (
	cacheKeyAll    = "planets:all"
	cacheKeyPrefix = "planets:"
)

type Service struct {
	repo   *Repository
	cache  cache.Cache
	logger *slog.Logger
}

func NewService(repo *Repository, c cache.Cache, logger *slog.Logger) *Service {
	logger.Debug("Initializing planet service", "cache_enabled", c.Enabled())

	return &Service{
		repo:   repo,
		cache:  c,
		logger: logger,
	}
}

func (s *Service) GetAllPlanets(ctx context.Context) ([]Planet, error) {
	logger := s.logger.With("component", "planet_service", "operation", "get_all")
	return cache.Fetch(ctx, s.cache, logger, cacheKeyAll, s.repo.GetAllPlanets)
}

func (s *Service) GetPlanetByID(ctx context.Context, id int) (*Planet, error) {
	logger := s.logger.With("component", "planet_service", "operation", "get_by_id", "planet_id", id)
	return cache.Fetch(ctx, s.cache, logger, cacheKeyPrefix+strconv.Itoa(id), func(ctx context.Context) (*Planet, error) {
		return s.repo.GetPlanetByID(ctx, id)
	})
}

func (s *Service) Exists(ctx context.Context, id int, tx *database.Tx) (bool, error) {
	return s.repo.Exists(ctx, id, tx)
}

func (s *Service) CreatePlanets(ctx context.Context, planets []Planet, tx *database.Tx) (int64, error) {
	return s.repo.CreatePlanets(ctx, planets, tx)
}

func (s *Service) InvalidateCache(ctx context.Context) error {
	return s.cache.Delete(ctx, cacheKeyAll)
}
