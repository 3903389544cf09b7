package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
)

// userColumns are the login-tracking columns added to users after the
// initial schema. Both are nullable and never populated by the seeder.
var userColumns = []struct {
	name string
	ddl  string
}{
	{"last_login_time", `ALTER TABLE users ADD COLUMN last_login_time TEXT`},
	{"last_login_ip", `ALTER TABLE users ADD COLUMN last_login_ip TEXT`},
}

// migrateUsers adds the login-tracking columns to users. It runs on every
// start: a column that already exists makes SQLite fail the ALTER with
// "duplicate column name", which is expected and ignored.
func migrateUsers(ctx context.Context, db *sql.DB, log zerolog.Logger) (added int, errs []error) {
	for _, col := range userColumns {
		_, err := db.ExecContext(ctx, col.ddl)
		switch {
		case err == nil:
			added++
			log.Info().Str("column", col.name).Msg("added users column")
		case isDuplicateColumn(err):
			log.Debug().Str("column", col.name).Msg("users column already present")
		default:
			log.Error().Err(err).Str("column", col.name).Msg("add users column failed")
			errs = append(errs, fmt.Errorf("add users.%s: %w", col.name, err))
		}
	}
	return added, errs
}

func isDuplicateColumn(err error) bool {
	return strings.Contains(err.Error(), "duplicate column name")
}
