// Package sqlite exposes the navdb store to programs that embed it, such as
// the web service that serves the homepage. It re-exports the store and the
// startup sequence while keeping the implementation internal.
//
// Example:
//
//	store, err := sqlite.Open("database/nav.db")
//	if err != nil {
//	    return err
//	}
//	defer store.Close()
//	report := sqlite.Initialize(ctx, store, sqlite.Options{
//	    Admin:  sqlite.AdminOptions{Username: "admin", Password: pw},
//	    Logger: log,
//	})
//	if err := report.Err(); err != nil {
//	    log.Warn().Err(err).Msg("seeding incomplete")
//	}
package sqlite

import (
	"context"

	"github.com/mesh-intelligence/navdb/internal/seeddata"
	"github.com/mesh-intelligence/navdb/internal/sqlite"
)

type (
	// Store is an open navdb database.
	Store = sqlite.Store
	// Options configures Initialize.
	Options = sqlite.Options
	// AdminOptions configures the seeded administrator account.
	AdminOptions = sqlite.AdminOptions
	// Report summarizes an Initialize run.
	Report = sqlite.Report
	// TableResult is the seeding outcome for one table.
	TableResult = sqlite.TableResult
)

// Seed content, set through Options.Data and returned by Store.Export.
type (
	SeedSet     = seeddata.Set
	SeedMenu    = seeddata.Menu
	SeedSubMenu = seeddata.SubMenu
	SeedCard    = seeddata.Card
	SeedFriend  = seeddata.Friend
)

// DefaultSeed returns the built-in navigation content.
func DefaultSeed() (*SeedSet, error) {
	return seeddata.Defaults()
}

// LoadSeedFile reads a seed file. An empty path returns DefaultSeed.
func LoadSeedFile(path string) (*SeedSet, error) {
	return seeddata.LoadFile(path)
}

// ParseSeed decodes and validates seed YAML.
func ParseSeed(data []byte) (*SeedSet, error) {
	return seeddata.Parse(data)
}

// Open opens or creates the database file at path.
func Open(path string) (*Store, error) {
	return sqlite.Open(path)
}

// Initialize creates the schema, seeds empty tables and applies migrations.
// Item-level failures are reported through Report.Err.
func Initialize(ctx context.Context, store *Store, opts Options) *Report {
	return sqlite.Initialize(ctx, store, opts)
}
