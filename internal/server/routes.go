package server

import (
	"log/slog"
	"net/http"

	"starwars-api/internal/character"
	characterHandlers "starwars-api/internal/character/handlers"
	"starwars-api/internal/favorite"
	favoriteHandlers "starwars-api/internal/favorite/handlers"
	"starwars-api/internal/planet"
	planetHandlers "starwars-api/internal/planet/handlers"
	serverHandlers "starwars-api/internal/server/handlers"
	"starwars-api/internal/shared/database"
	"starwars-api/internal/user"
	userHandlers "starwars-api/internal/user/handlers"
)

type Routes struct {
	db               *database.DB
	userService      *user.Service
	characterService *character.Service
	planetService    *planet.Service
	favoriteService  *favorite.Service
	cacheEnabled     bool
}

func NewRoutes(db *database.DB, userService *user.Service, characterService *character.Service, planetService *planet.Service, favoriteService *favorite.Service, cacheEnabled bool) *Routes {
	return &Routes{
		db:               db,
		userService:      userService,
		characterService: characterService,
		planetService:    planetService,
		favoriteService:  favoriteService,
		cacheEnabled:     cacheEnabled,
	}
}

func (r *Routes) Setup() *http.ServeMux {
	logger := slog.With("component", "routes", "operation", "setup")
	logger.Debug("Setting up application routes")

	mux := http.NewServeMux()

	healthHandler := serverHandlers.NewHealthHandler(r.db, r.cacheEnabled)
	usersHandler := userHandlers.NewUsersHandler(r.userService)
	characterHandler := characterHandlers.NewCharacterHandler(r.characterService)
	planetHandler := planetHandlers.NewPlanetHandler(r.planetService)
	favoriteHandler := favoriteHandlers.NewFavoriteHandler(r.favoriteService)

	mux.Handle("GET /health", healthHandler)

	mux.HandleFunc("GET /users", usersHandler.GetAll)
	mux.HandleFunc("GET /users/{id}", usersHandler.GetByID)

	mux.HandleFunc("GET /characters", characterHandler.GetAll)
	mux.HandleFunc("GET /characters/{id}", characterHandler.GetByID)

	mux.HandleFunc("GET /planets", planetHandler.GetAll)
	mux.HandleFunc("GET /planets/{id}", planetHandler.GetByID)

	mux.HandleFunc("GET /users/favorites", favoriteHandler.GetAll)
	mux.HandleFunc("GET /users/{id}/favorites", favoriteHandler.GetByUser)
	mux.HandleFunc("POST /users/{userID}/favorites/characters/{characterID}", favoriteHandler.AddCharacter)
	mux.HandleFunc("DELETE /users/{userID}/favorites/characters/{characterID}", favoriteHandler.RemoveCharacter)
	mux.HandleFunc("POST /users/{userID}/favorites/planets/{planetID}", favoriteHandler.AddPlanet)
	mux.HandleFunc("DELETE /users/{userID}/favorites/planets/{planetID}", favoriteHandler.RemovePlanet)

	logger.Info("Routes configured successfully",
		"read_endpoints", []string{"/health", "/users", "/users/{id}", "/characters", "/characters/{id}", "/planets", "/planets/{id}"},
		"favorite_endpoints", []string{"/users/favorites", "/users/{id}/favorites", "/users/{userID}/favorites/characters/{characterID}", "/users/{userID}/favorites/planets/{planetID}"},
	)

	return mux
}
