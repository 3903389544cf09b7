package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/navdb/internal/sqlite"
	"github.com/mesh-intelligence/navdb/pkg/types"
)

func newStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Print row counts per table",
		Args:  cobra.NoArgs,
		RunE:  runStats,
	}
}

func runStats(cmd *cobra.Command, args []string) error {
	env, err := resolveEnvironment(cmd)
	if err != nil {
		return err
	}
	store, err := openExisting(env.dbPath)
	if err != nil {
		return err
	}
	defer store.Close()

	counts, err := store.Counts(cmd.Context())
	if err != nil {
		return sysErr(err)
	}

	if flags.jsonMode {
		return writeJSON(cmd.OutOrStdout(), counts)
	}
	for _, table := range types.StandardTableNames {
		fmt.Fprintf(cmd.OutOrStdout(), "%-10s %d\n", table, counts[table])
	}
	return nil
}

// openExisting opens the database only if init has already created it.
func openExisting(path string) (*sqlite.Store, error) {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, userErr(fmt.Errorf("database %s does not exist; run navdb init", path))
		}
		return nil, sysErr(err)
	}
	store, err := sqlite.Open(path)
	if err != nil {
		return nil, sysErr(fmt.Errorf("open database: %w", err))
	}
	return store, nil
}
