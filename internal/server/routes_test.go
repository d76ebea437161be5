package server

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"starwars-api/internal/character"
	"starwars-api/internal/favorite"
	"starwars-api/internal/middleware"
	"starwars-api/internal/planet"
	"starwars-api/internal/shared/cache"
	"starwars-api/internal/shared/config"
	"starwars-api/internal/shared/database/databasetest"
	"starwars-api/internal/user"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newTestHandler(t *testing.T) http.Handler {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	db := databasetest.New(t, &user.User{}, &character.Character{}, &planet.Planet{}, &favorite.Favorite{})
	ctx := context.Background()

	users := user.NewService(user.NewRepository(db, logger), bcrypt.MinCost, logger)
	characters := character.NewService(character.NewRepository(db, logger), cache.Noop{}, logger)
	planets := planet.NewService(planet.NewRepository(db, logger), cache.Noop{}, logger)
	favorites := favorite.NewService(db, favorite.NewRepository(db, logger), users, characters, planets, logger)

	_, err := users.CreateUser(ctx, "a@a.com", "secret", nil)
	require.NoError(t, err)
	_, err = characters.CreateCharacters(ctx, []character.Character{{
		Name: "Luke Skywalker", BirthYear: 19, Homeworld: "Tatooine", Gender: "male",
		Height: 172, Mass: 77, HairColor: "blond", SkinColor: "fair", EyeColor: "blue",
	}}, nil)
	require.NoError(t, err)
	_, err = planets.CreatePlanets(ctx, []planet.Planet{{
		Name: "Hoth", Climate: "frozen", Terrain: "tundra", Diameter: 7200,
		RotationPeriod: 23, OrbitalPeriod: 549, Gravity: "1.1 standard",
	}}, nil)
	require.NoError(t, err)

	mux := NewRoutes(db, users, characters, planets, favorites, false).Setup()
	limiter := middleware.NewRateLimiter(ctx, config.RateLimitConfig{Enabled: false})
	cors := middleware.NewCORS(config.FrontendConfig{AllowedOrigins: []string{"*"}})

	return NewHandler(mux, cors, limiter)
}

func do(t *testing.T, h http.Handler, method, path string) *httptest.ResponseRecorder {
	t.Helper()

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(method, path, nil))
	return rec
}

func TestFavoriteCharacterScenario(t *testing.T) {
	h := newTestHandler(t)

	rec := do(t, h, http.MethodPost, "/users/1/favorites/characters/1")
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t, `{"msg":"character added to favorites!"}`, rec.Body.String())

	rec = do(t, h, http.MethodGet, "/users/1/favorites")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, `[{"id":1,"user_id":1,"characters_id":1,"planets_id":null}]`, strings.TrimSpace(rec.Body.String()))

	rec = do(t, h, http.MethodPost, "/users/1/favorites/characters/1")
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.JSONEq(t, `{"error":"character already in favorites"}`, rec.Body.String())

	rec = do(t, h, http.MethodDelete, "/users/1/favorites/characters/1")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"msg":"character removed from favorites!"}`, rec.Body.String())

	rec = do(t, h, http.MethodDelete, "/users/1/favorites/characters/1")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"character not found in favorites"}`, rec.Body.String())

	rec = do(t, h, http.MethodGet, "/users/1/favorites")
	assert.Equal(t, "[]", strings.TrimSpace(rec.Body.String()))
}

func TestFavoritePlanetRoutes(t *testing.T) {
	h := newTestHandler(t)

	rec := do(t, h, http.MethodPost, "/users/1/favorites/planets/1")
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t, `{"msg":"planet added to favorites!"}`, rec.Body.String())

	rec = do(t, h, http.MethodGet, "/users/favorites")
	assert.JSONEq(t, `[{"id":1,"user_id":1,"characters_id":null,"planets_id":1}]`, rec.Body.String())

	rec = do(t, h, http.MethodPost, "/users/1/favorites/planets/7")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"planet not found"}`, rec.Body.String())

	rec = do(t, h, http.MethodPost, "/users/7/favorites/planets/1")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"user not found"}`, rec.Body.String())

	rec = do(t, h, http.MethodDelete, "/users/1/favorites/planets/1")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"msg":"planet removed from favorites!"}`, rec.Body.String())
}

func TestReadRoutes(t *testing.T) {
	h := newTestHandler(t)

	tests := []struct {
		name       string
		method     string
		path       string
		wantStatus int
		wantBody   string
	}{
		{"users list hides password", http.MethodGet, "/users", http.StatusOK, `[{"id":1,"email":"a@a.com"}]`},
		{"user by id", http.MethodGet, "/users/1", http.StatusOK, `{"id":1,"email":"a@a.com"}`},
		{"missing user", http.MethodGet, "/users/2", http.StatusNotFound, `{"error":"user not found"}`},
		{"bad user id", http.MethodGet, "/users/abc", http.StatusBadRequest, `{"error":"invalid user ID format"}`},
		{"character by id", http.MethodGet, "/characters/1", http.StatusOK,
			`{"id":1,"name":"Luke Skywalker","birth_year":19,"homeworld":"Tatooine","gender":"male","height":172,"mass":77,"hair_color":"blond","skin_color":"fair","eye_color":"blue"}`},
		{"missing character", http.MethodGet, "/characters/99", http.StatusNotFound, `{"error":"character not found"}`},
		{"bad character id", http.MethodGet, "/characters/x", http.StatusBadRequest, `{"error":"invalid character ID format"}`},
		{"planets list", http.MethodGet, "/planets", http.StatusOK,
			`[{"id":1,"name":"Hoth","population":null,"climate":"frozen","terrain":"tundra","diameter":7200,"rotation_period":23,"orbital_period":549,"gravity":"1.1 standard"}]`},
		{"missing planet", http.MethodGet, "/planets/2", http.StatusNotFound, `{"error":"planet not found"}`},
		{"empty favorites", http.MethodGet, "/users/favorites", http.StatusOK, `[]`},
		{"bad favorite user id", http.MethodGet, "/users/x/favorites", http.StatusBadRequest, `{"error":"invalid user ID format"}`},
		{"bad favorite item id", http.MethodPost, "/users/1/favorites/characters/x", http.StatusBadRequest, `{"error":"invalid character ID format"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, h, tt.method, tt.path)
			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
			assert.JSONEq(t, tt.wantBody, rec.Body.String())
		})
	}
}

func TestTrailingSlashResolves(t *testing.T) {
	h := newTestHandler(t)

	rec := do(t, h, http.MethodGet, "/users/")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[{"id":1,"email":"a@a.com"}]`, rec.Body.String())

	rec = do(t, h, http.MethodGet, "/characters/1/")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"name":"Luke Skywalker"`)

	rec = do(t, h, http.MethodPost, "/users/1/favorites/planets/1/")
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestMethodNotAllowed(t *testing.T) {
	h := newTestHandler(t)

	rec := do(t, h, http.MethodPut, "/characters/1")
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestHealth(t *testing.T) {
	h := newTestHandler(t)

	rec := do(t, h, http.MethodGet, "/health")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"healthy"`)
	assert.Contains(t, rec.Body.String(), `"database":"connected"`)
	assert.Contains(t, rec.Body.String(), `"cache":"disabled"`)
}
