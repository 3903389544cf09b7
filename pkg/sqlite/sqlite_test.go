package sqlite_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/navdb/pkg/sqlite"
	"github.com/mesh-intelligence/navdb/pkg/types"
)

func TestOpenAndInitialize(t *testing.T) {
	ctx := context.Background()
	store, err := sqlite.Open(filepath.Join(t.TempDir(), "database", "nav.db"))
	require.NoError(t, err)
	defer store.Close()

	report := sqlite.Initialize(ctx, store, sqlite.Options{
		Admin:  sqlite.AdminOptions{Username: "admin", Password: "123456", Cost: 4},
		Logger: zerolog.Nop(),
	})
	require.NoError(t, report.Err())
	assert.Equal(t, 255, report.Inserted(types.CardsTable))

	n, err := store.Count(ctx, types.MenusTable)
	require.NoError(t, err)
	assert.Equal(t, int64(8), n)
}

func TestInitializeWithCustomSeed(t *testing.T) {
	ctx := context.Background()
	store, err := sqlite.Open(filepath.Join(t.TempDir(), "nav.db"))
	require.NoError(t, err)
	defer store.Close()

	seed := &sqlite.SeedSet{
		Menus:    []sqlite.SeedMenu{{Name: "Dev", Order: 1}},
		SubMenus: []sqlite.SeedSubMenu{{Menu: "Dev", Name: "Go", Order: 1}},
		Cards: []sqlite.SeedCard{
			{Menu: "Dev", Title: "GitHub", URL: "https://github.com"},
			{Menu: "Dev", SubMenu: "Go", Title: "pkg.go.dev", URL: "https://pkg.go.dev"},
		},
		Friends: []sqlite.SeedFriend{{Title: "Pal", URL: "https://pal.example"}},
	}
	require.NoError(t, seed.Validate())

	report := sqlite.Initialize(ctx, store, sqlite.Options{
		Admin:  sqlite.AdminOptions{Username: "admin", Password: "pw", Cost: 4},
		Data:   seed,
		Logger: zerolog.Nop(),
	})
	require.NoError(t, report.Err())

	exported, err := store.Export(ctx)
	require.NoError(t, err)
	assert.Equal(t, seed, exported)
}

func TestSeedHelpers(t *testing.T) {
	def, err := sqlite.DefaultSeed()
	require.NoError(t, err)
	assert.Len(t, def.Cards, 255)

	fromFile, err := sqlite.LoadSeedFile("")
	require.NoError(t, err)
	assert.Equal(t, def, fromFile)

	_, err = sqlite.ParseSeed([]byte("menus:\n  - order: 1\n"))
	assert.ErrorIs(t, err, types.ErrSeedEmptyName)
}
