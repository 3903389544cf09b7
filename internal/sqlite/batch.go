package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
)

// batch issues one prepared INSERT for many rows. Each row is independent:
// a failed insert is logged and recorded, and the following rows still run.
// finalize returns only once every row issued through the batch has landed,
// so later phases can read back the assigned ids.
type batch struct {
	table    string
	stmt     *sql.Stmt
	log      zerolog.Logger
	inserted int
	errs     []error
}

func prepareBatch(ctx context.Context, db *sql.DB, log zerolog.Logger, table, query string) (*batch, error) {
	stmt, err := db.PrepareContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("prepare %s insert: %w", table, err)
	}
	return &batch{
		table: table,
		stmt:  stmt,
		log:   log.With().Str("table", table).Logger(),
	}, nil
}

// insert runs the statement with args. label identifies the row in logs and
// errors. It returns the new row id and whether the insert succeeded.
func (b *batch) insert(ctx context.Context, label string, args ...any) (int64, bool) {
	res, err := b.stmt.ExecContext(ctx, args...)
	if err != nil {
		b.fail(label, err)
		return 0, false
	}
	id, err := res.LastInsertId()
	if err != nil {
		b.fail(label, err)
		return 0, false
	}
	b.inserted++
	b.log.Debug().Str("row", label).Int64("id", id).Msg("inserted")
	return id, true
}

// skip records a row that was not issued because its parent did not resolve.
func (b *batch) skip(label string, err error) {
	b.log.Warn().Err(err).Str("row", label).Msg("skipped")
	b.errs = append(b.errs, fmt.Errorf("%s %s: %w", b.table, label, err))
}

func (b *batch) fail(label string, err error) {
	b.log.Error().Err(err).Str("row", label).Msg("insert failed")
	b.errs = append(b.errs, fmt.Errorf("insert %s %s: %w", b.table, label, err))
}

// finalize closes the statement and reports the batch outcome.
func (b *batch) finalize() TableResult {
	if err := b.stmt.Close(); err != nil {
		b.errs = append(b.errs, fmt.Errorf("close %s insert: %w", b.table, err))
	}
	b.log.Info().Int("inserted", b.inserted).Int("failed", len(b.errs)).Msg("batch complete")
	return TableResult{Table: b.table, Inserted: b.inserted, Err: errors.Join(b.errs...)}
}
