package character

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"starwars-api/internal/shared/cache"
	"starwars-api/internal/shared/database"
	"starwars-api/internal/shared/database/databasetest"
	"starwars-api/internal/shared/errors"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func luke() Character {
	return Character{
		Name:      "Luke Skywalker",
		BirthYear: 19,
		Homeworld: "Tatooine",
		Gender:    "male",
		Height:    172,
		Mass:      77,
		HairColor: "blond",
		SkinColor: "fair",
		EyeColor:  "blue",
	}
}

func leia() Character {
	c := luke()
	c.Name = "Leia Organa"
	c.Gender = "female"
	c.HairColor = "brown"
	c.EyeColor = "brown"
	c.Homeworld = "Alderaan"
	return c
}

func newTestService(t *testing.T, c cache.Cache) (*Service, *database.DB) {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	db := databasetest.New(t, &Character{})
	return NewService(NewRepository(db, logger), c, logger), db
}

func TestGetAllCharactersOrderedByID(t *testing.T) {
	svc, _ := newTestService(t, cache.Noop{})
	ctx := context.Background()

	empty, err := svc.GetAllCharacters(ctx)
	require.NoError(t, err)
	assert.Empty(t, empty)

	inserted, err := svc.CreateCharacters(ctx, []Character{luke(), leia()}, nil)
	require.NoError(t, err)
	assert.Equal(t, int64(2), inserted)

	all, err := svc.GetAllCharacters(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "Luke Skywalker", all[0].Name)
	assert.Equal(t, "Leia Organa", all[1].Name)
	assert.Less(t, all[0].ID, all[1].ID)
}

func TestCreateCharactersSkipsExistingNames(t *testing.T) {
	svc, _ := newTestService(t, cache.Noop{})
	ctx := context.Background()

	_, err := svc.CreateCharacters(ctx, []Character{luke()}, nil)
	require.NoError(t, err)

	inserted, err := svc.CreateCharacters(ctx, []Character{luke()}, nil)
	require.NoError(t, err)
	assert.Zero(t, inserted)

	all, err := svc.GetAllCharacters(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestGetCharacterByIDNotFound(t *testing.T) {
	svc, _ := newTestService(t, cache.Noop{})

	_, err := svc.GetCharacterByID(context.Background(), 42)
	require.Error(t, err)
	assert.True(t, errors.IsNotFound(err))
	assert.Equal(t, "character not found", errors.ClientMessage(err))
}

func TestExists(t *testing.T) {
	svc, db := newTestService(t, cache.Noop{})
	ctx := context.Background()

	_, err := svc.CreateCharacters(ctx, []Character{luke()}, nil)
	require.NoError(t, err)

	ok, err := svc.Exists(ctx, 1, nil)
	require.NoError(t, err)
	assert.True(t, ok)

	err = db.WithTx(ctx, func(tx *database.Tx) error {
		ok, err := svc.Exists(ctx, 2, tx)
		require.NoError(t, err)
		assert.False(t, ok)
		return nil
	})
	require.NoError(t, err)
}

func TestCharacterReadsAreCached(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc, db := newTestService(t, cache.NewRedisCache(client, time.Minute, "sw:", logger))
	ctx := context.Background()

	_, err := svc.CreateCharacters(ctx, []Character{luke()}, nil)
	require.NoError(t, err)

	first, err := svc.GetCharacterByID(ctx, 1)
	require.NoError(t, err)
	assert.True(t, mr.Exists("sw:characters:1"))

	all, err := svc.GetAllCharacters(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.True(t, mr.Exists("sw:characters:all"))

	// Served from cache even after the row changes underneath.
	require.NoError(t, db.Model(&Character{}).Where("id = ?", 1).Update("name", "Renamed").Error)

	cached, err := svc.GetCharacterByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, first, cached)

	require.NoError(t, svc.InvalidateCache(ctx))
	assert.False(t, mr.Exists("sw:characters:all"))

	_, err = svc.GetCharacterByID(ctx, 99)
	require.Error(t, err)
	assert.False(t, mr.Exists("sw:characters:99"))
}
