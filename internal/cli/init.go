package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/navdb/internal/seeddata"
	"github.com/mesh-intelligence/navdb/internal/sqlite"
)

func newInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Create and seed the database",
		Long: "Create the configuration and data directories, create the schema,\n" +
			"seed every empty table with default content and apply migrations.\n" +
			"Running init again leaves existing rows untouched.",
		Args: cobra.NoArgs,
		RunE: runInit,
	}
}

// initSummary is the init command output.
type initSummary struct {
	RunID        string               `json:"run_id"`
	Database     string               `json:"database"`
	Tables       []sqlite.TableResult `json:"tables"`
	ColumnsAdded int                  `json:"columns_added"`
	Errors       []string             `json:"errors,omitempty"`
}

func runInit(cmd *cobra.Command, args []string) error {
	env, err := resolveEnvironment(cmd)
	if err != nil {
		return err
	}

	data, err := seeddata.LoadFile(env.cfg.Seed.File)
	if err != nil {
		return userErr(fmt.Errorf("load seed data: %w", err))
	}

	store, err := sqlite.Open(env.dbPath)
	if err != nil {
		return sysErr(fmt.Errorf("open database: %w", err))
	}
	defer store.Close()

	report := sqlite.Initialize(cmd.Context(), store, sqlite.Options{
		Admin: sqlite.AdminOptions{
			Username: env.cfg.Admin.Username,
			Password: env.cfg.Admin.Password,
			Cost:     env.cfg.Admin.BcryptCost,
		},
		Data:   data,
		Logger: env.log,
	})

	summary := initSummary{
		RunID:        report.RunID,
		Database:     store.Path(),
		Tables:       report.Tables(),
		ColumnsAdded: report.ColumnsAdded,
	}
	for _, err := range report.Errors() {
		summary.Errors = append(summary.Errors, err.Error())
	}

	if flags.jsonMode {
		return writeJSON(cmd.OutOrStdout(), summary)
	}
	printInitSummary(cmd.OutOrStdout(), summary)
	return nil
}

func printInitSummary(w io.Writer, s initSummary) {
	fmt.Fprintf(w, "Database: %s\n", s.Database)
	for _, res := range s.Tables {
		switch {
		case res.Skipped:
			fmt.Fprintf(w, "  %-10s already populated\n", res.Table)
		case res.Err != nil:
			fmt.Fprintf(w, "  %-10s %d inserted, with errors\n", res.Table, res.Inserted)
		default:
			fmt.Fprintf(w, "  %-10s %d inserted\n", res.Table, res.Inserted)
		}
	}
	if s.ColumnsAdded > 0 {
		fmt.Fprintf(w, "Added %d users column(s)\n", s.ColumnsAdded)
	}
	if len(s.Errors) > 0 {
		fmt.Fprintf(w, "Initialized with %d error(s); see log for details\n", len(s.Errors))
		return
	}
	fmt.Fprintln(w, "Database initialized successfully")
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return sysErr(fmt.Errorf("encode output: %w", err))
	}
	return nil
}
