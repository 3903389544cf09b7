package sqlite

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/mesh-intelligence/navdb/internal/password"
	"github.com/mesh-intelligence/navdb/internal/seeddata"
	"github.com/mesh-intelligence/navdb/pkg/types"
)

// AdminOptions configures the administrator account seeded into an empty
// users table.
type AdminOptions struct {
	Username string
	Password string
	// Cost is the bcrypt work factor. Zero uses password.DefaultCost.
	Cost int
}

// Options configures Initialize.
type Options struct {
	Admin AdminOptions
	// Data is the content seeded into empty tables. Nil uses the embedded
	// defaults.
	Data   *seeddata.Set
	Logger zerolog.Logger
}

// TableResult is the seeding outcome for one table.
type TableResult struct {
	Table    string `json:"table"`
	Inserted int    `json:"inserted"`
	// Skipped is set when the table already held rows and was left alone.
	Skipped bool  `json:"skipped"`
	Err     error `json:"-"`
}

// Report summarizes one Initialize run. Item-level failures are collected
// here rather than returned to the caller.
type Report struct {
	RunID        string
	ColumnsAdded int

	mu     sync.Mutex
	tables map[string]TableResult
	errs   []error
}

func newReport(runID string) *Report {
	return &Report{RunID: runID, tables: make(map[string]TableResult)}
}

func (r *Report) record(res TableResult) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.tables[res.Table] = res
	if res.Err != nil {
		r.errs = append(r.errs, res.Err)
	}
}

func (r *Report) addErrors(errs ...error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.errs = append(r.errs, errs...)
}

// Table returns the result recorded for table. Tables the run never reached
// report zero inserted and not skipped.
func (r *Report) Table(table string) TableResult {
	r.mu.Lock()
	defer r.mu.Unlock()
	if res, ok := r.tables[table]; ok {
		return res
	}
	return TableResult{Table: table}
}

// Tables returns the per-table results in dependency order.
func (r *Report) Tables() []TableResult {
	out := make([]TableResult, 0, len(types.StandardTableNames))
	for _, name := range types.StandardTableNames {
		out = append(out, r.Table(name))
	}
	return out
}

// Inserted returns the number of rows the run inserted into table.
func (r *Report) Inserted(table string) int {
	return r.Table(table).Inserted
}

// Errors returns every non-fatal error the run collected, one entry per
// failed statement, table or migration.
func (r *Report) Errors() []error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return slices.Clone(r.errs)
}

// Err joins every non-fatal error the run collected. It is nil for a clean
// run.
func (r *Report) Err() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return errors.Join(r.errs...)
}

// Initialize runs the startup sequence against store: create the schema,
// seed empty tables, then add the users login columns. Menus, the
// administrator and friend links are seeded concurrently; their statements
// serialize on the store's single connection.
//
// Initialize does not fail for per-statement or per-item errors. They are
// logged and available through Report.Err.
func Initialize(ctx context.Context, store *Store, opts Options) *Report {
	runID := newRunID()
	log := opts.Logger.With().Str("run_id", runID).Logger()
	report := newReport(runID)

	data := opts.Data
	if data == nil {
		data = seeddata.MustDefaults()
	}
	admin := opts.Admin
	if admin.Cost == 0 {
		admin.Cost = password.DefaultCost
	}

	db, err := store.conn()
	if err != nil {
		log.Error().Err(err).Msg("initialize skipped")
		report.addErrors(err)
		return report
	}
	log.Info().Str("path", store.Path()).Msg("initializing database")

	report.addErrors(createSchema(ctx, db, log)...)

	s := &seeder{
		db:     db,
		log:    log,
		data:   data,
		admin:  admin,
		report: report,
	}
	var g errgroup.Group
	g.Go(func() error { s.seedHierarchy(ctx); return nil })
	g.Go(func() error { s.seedAdmin(ctx); return nil })
	g.Go(func() error { s.seedFriends(ctx); return nil })
	_ = g.Wait()

	added, errs := migrateUsers(ctx, db, log)
	report.ColumnsAdded = added
	report.addErrors(errs...)

	ev := log.Info()
	if err := report.Err(); err != nil {
		ev = log.Warn().AnErr("errors", err)
	}
	for _, res := range report.Tables() {
		ev = ev.Int(res.Table, res.Inserted)
	}
	ev.Msg("database initialized")
	return report
}

func newRunID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return fmt.Sprintf("run-%s", uuid.NewString())
	}
	return id.String()
}
