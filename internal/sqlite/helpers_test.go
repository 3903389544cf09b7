package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const (
	testAdminUser     = "admin"
	testAdminPassword = "123456"
)

// openTestStore opens a store in a fresh temp directory. The database lives
// one directory below the temp root so Open has to create it.
func openTestStore(t *testing.T) *Store {
	t.Helper()
	return openStoreAt(t, filepath.Join(t.TempDir(), "database", "nav.db"))
}

func openStoreAt(t *testing.T, path string) *Store {
	t.Helper()
	s, err := Open(path)
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

// testOptions uses the embedded defaults and the cheapest bcrypt cost.
func testOptions() Options {
	return Options{
		Admin: AdminOptions{
			Username: testAdminUser,
			Password: testAdminPassword,
			Cost:     bcrypt.MinCost,
		},
		Logger: zerolog.Nop(),
	}
}

// initTestStore opens a store and runs a clean Initialize against it.
func initTestStore(t *testing.T) *Store {
	t.Helper()
	s := openTestStore(t)
	report := Initialize(context.Background(), s, testOptions())
	require.NoError(t, report.Err())
	return s
}

func countRows(t *testing.T, s *Store, table string) int64 {
	t.Helper()
	n, err := s.Count(context.Background(), table)
	require.NoError(t, err)
	return n
}
