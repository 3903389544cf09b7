package sqlite

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/navdb/pkg/types"
)

func TestOpenCreatesDataDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "a", "b")
	path := filepath.Join(dir, "nav.db")

	s := openStoreAt(t, path)
	assert.Equal(t, path, s.Path())

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
	_, err = os.Stat(path)
	assert.NoError(t, err, "database file should exist after Open")
}

func TestOpenEmptyPath(t *testing.T) {
	_, err := Open("")
	assert.Error(t, err)
}

func TestOpenPragmas(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	var fk int
	require.NoError(t, s.DB().QueryRowContext(ctx, "PRAGMA foreign_keys").Scan(&fk))
	assert.Equal(t, 1, fk, "foreign keys must be enforced for cascades")

	var mode string
	require.NoError(t, s.DB().QueryRowContext(ctx, "PRAGMA journal_mode").Scan(&mode))
	assert.Equal(t, "wal", mode)
}

func TestOpenMemory(t *testing.T) {
	s := openStoreAt(t, MemoryPath)
	assert.NoError(t, s.Ping(context.Background()))
}

func TestCloseIdempotent(t *testing.T) {
	s, err := Open(filepath.Join(t.TempDir(), "nav.db"))
	require.NoError(t, err)
	require.NoError(t, s.Close())
	assert.NoError(t, s.Close())
}

func TestClosedStoreReturnsErrStoreClosed(t *testing.T) {
	s := initTestStore(t)
	ctx := context.Background()
	require.NoError(t, s.Close())

	calls := map[string]func() error{
		"Ping":           func() error { return s.Ping(ctx) },
		"Count":          func() error { _, err := s.Count(ctx, types.MenusTable); return err },
		"Counts":         func() error { _, err := s.Counts(ctx); return err },
		"Menus":          func() error { _, err := s.Menus(ctx); return err },
		"MenuByName":     func() error { _, err := s.MenuByName(ctx, "Cloud"); return err },
		"SubMenus":       func() error { _, err := s.SubMenus(ctx, 1); return err },
		"Cards":          func() error { _, err := s.Cards(ctx); return err },
		"CardsByMenu":    func() error { _, err := s.CardsByMenu(ctx, 1); return err },
		"UserByUsername": func() error { _, err := s.UserByUsername(ctx, "admin"); return err },
		"Friends":        func() error { _, err := s.Friends(ctx); return err },
		"Ads":            func() error { _, err := s.Ads(ctx); return err },
		"DeleteMenu":     func() error { return s.DeleteMenu(ctx, 1) },
		"Export":         func() error { _, err := s.Export(ctx); return err },
	}
	for name, call := range calls {
		t.Run(name, func(t *testing.T) {
			var err error
			require.NotPanics(t, func() { err = call() })
			assert.ErrorIs(t, err, types.ErrStoreClosed)
		})
	}

	report := Initialize(ctx, s, testOptions())
	assert.ErrorIs(t, report.Err(), types.ErrStoreClosed)
}
