package seed

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"starwars-api/internal/character"
	"starwars-api/internal/planet"
	"starwars-api/internal/shared/cache"
	"starwars-api/internal/shared/database"
	"starwars-api/internal/shared/database/databasetest"
	"starwars-api/internal/shared/errors"
	"starwars-api/internal/user"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type testEnv struct {
	db         *database.DB
	loader     *Loader
	users      *user.Service
	characters *character.Service
	planets    *planet.Service
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	db := databasetest.New(t, &user.User{}, &character.Character{}, &planet.Planet{})

	env := &testEnv{
		db:         db,
		users:      user.NewService(user.NewRepository(db, logger), bcrypt.MinCost, logger),
		characters: character.NewService(character.NewRepository(db, logger), cache.Noop{}, logger),
		planets:    planet.NewService(planet.NewRepository(db, logger), cache.Noop{}, logger),
	}
	env.loader = NewLoader(db, env.users, env.characters, env.planets, logger)
	return env
}

func fixturePath(t *testing.T) string {
	t.Helper()

	_, file, _, ok := runtime.Caller(0)
	require.True(t, ok)
	return filepath.Join(filepath.Dir(file), "..", "..", "fixtures", "seed.json")
}

func TestLoadFileIsIdempotent(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	first, err := env.loader.LoadFile(ctx, fixturePath(t))
	require.NoError(t, err)
	assert.Equal(t, int64(2), first.Users)
	assert.Equal(t, int64(8), first.Characters)
	assert.Equal(t, int64(7), first.Planets)

	second, err := env.loader.LoadFile(ctx, fixturePath(t))
	require.NoError(t, err)
	assert.Equal(t, &Result{}, second)

	characters, err := env.characters.GetAllCharacters(ctx)
	require.NoError(t, err)
	assert.Len(t, characters, 8)
	assert.Equal(t, "Luke Skywalker", characters[0].Name)

	planets, err := env.planets.GetAllPlanets(ctx)
	require.NoError(t, err)
	require.Len(t, planets, 7)
	assert.Nil(t, planets[3].Population)

	luke, err := env.users.GetUserByID(ctx, 1)
	require.NoError(t, err)
	assert.True(t, env.users.VerifyPassword(luke, "usetheforce"))
}

func TestLoadRejectsInvalidRecords(t *testing.T) {
	env := newTestEnv(t)

	fixture := &Fixture{
		Users: []UserRecord{{Email: "not-an-email", Password: "longenough"}},
		Characters: []CharacterRecord{{
			Name: "Yoda", BirthYear: 896, Homeworld: "unknown", Gender: "male",
			Height: -66, Mass: 17, HairColor: "white", SkinColor: "green",
		}},
	}

	_, err := env.loader.Load(context.Background(), fixture)
	require.Error(t, err)
	assert.Equal(t, errors.ErrorTypeValidation, errors.GetType(err))
	assert.Contains(t, err.Error(), "users[0].email must be a valid email address")
	assert.Contains(t, err.Error(), "characters[0].height must be at least 0")
	assert.Contains(t, err.Error(), "characters[0].eye_color is required")

	users, err := env.users.GetAllUsers(context.Background())
	require.NoError(t, err)
	assert.Empty(t, users)
}

func TestParseRejectsUnknownFields(t *testing.T) {
	_, err := Parse(strings.NewReader(`{"starships": []}`))
	require.Error(t, err)
	assert.Equal(t, errors.ErrorTypeValidation, errors.GetType(err))
}

func TestLoadRollsBackOnFailure(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	require.NoError(t, env.db.Migrator().DropTable(&planet.Planet{}))

	fixture := &Fixture{
		Users: []UserRecord{{Email: "yoda@dagobah.org", Password: "smallamiyes"}},
		Characters: []CharacterRecord{{
			Name: "Yoda", BirthYear: 896, Homeworld: "unknown", Gender: "male",
			Height: 66, Mass: 17, HairColor: "white", SkinColor: "green", EyeColor: "brown",
		}},
		Planets: []PlanetRecord{{
			Name: "Dagobah", Climate: "murky", Terrain: "swamp", Diameter: 8900,
			RotationPeriod: 23, OrbitalPeriod: 341, Gravity: "N/A",
		}},
	}

	_, err := env.loader.Load(ctx, fixture)
	require.Error(t, err)

	users, err := env.users.GetAllUsers(ctx)
	require.NoError(t, err)
	assert.Empty(t, users)

	characters, err := env.characters.GetAllCharacters(ctx)
	require.NoError(t, err)
	assert.Empty(t, characters)
}
