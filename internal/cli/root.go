// Package cli implements the navdb command-line interface.
package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/navdb/internal/config"
	"github.com/mesh-intelligence/navdb/internal/logging"
	"github.com/mesh-intelligence/navdb/internal/paths"
)

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

// rootFlags holds global flag values accessible to all subcommands.
type rootFlags struct {
	configDir string
	dataDir   string
	jsonMode  bool
	envFile   string
}

var flags rootFlags

// NewRootCmd creates the top-level "navdb" command with global flags
// and all subcommands registered.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "navdb",
		Short: "Create and seed the navigation homepage database",
		Long: "navdb creates the SQLite database behind the navigation homepage,\n" +
			"seeds default menus, cards, friend links and the admin account,\n" +
			"and applies additive schema migrations.",
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: loadEnvFile,
	}

	root.PersistentFlags().StringVar(&flags.configDir, "config-dir", "", "configuration directory (default: platform config dir)")
	root.PersistentFlags().StringVar(&flags.dataDir, "data-dir", "", "data directory (default: .navdb-db)")
	root.PersistentFlags().BoolVar(&flags.jsonMode, "json", false, "output in JSON format")
	root.PersistentFlags().StringVar(&flags.envFile, "env-file", ".env", "dotenv file loaded before configuration")

	root.AddCommand(newVersionCmd())
	root.AddCommand(newInitCmd())
	root.AddCommand(newStatsCmd())
	root.AddCommand(newAdminCmd())
	root.AddCommand(newExportCmd())

	return root
}

// Execute runs the root command and exits with the appropriate code.
func Execute() {
	root := NewRootCmd()
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "navdb:", err)
		os.Exit(exitCode(err))
	}
}

// loadEnvFile applies the dotenv file so NAVDB_* settings can live beside
// the binary. A missing file is not an error.
func loadEnvFile(cmd *cobra.Command, args []string) error {
	if flags.envFile == "" {
		return nil
	}
	if err := godotenv.Load(flags.envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return userErr(fmt.Errorf("load %s: %w", flags.envFile, err))
	}
	return nil
}

// cliError carries the process exit code for a failed command.
type cliError struct {
	code int
	err  error
}

func (e *cliError) Error() string { return e.err.Error() }
func (e *cliError) Unwrap() error { return e.err }

func userErr(err error) error { return &cliError{code: exitUserError, err: err} }
func sysErr(err error) error  { return &cliError{code: exitSysError, err: err} }

func exitCode(err error) int {
	if err == nil {
		return exitSuccess
	}
	var ce *cliError
	if errors.As(err, &ce) {
		return ce.code
	}
	return exitUserError
}

// environment is the resolved configuration shared by the subcommands.
type environment struct {
	cfg       *config.Config
	configDir string
	dataDir   string
	dbPath    string
	log       zerolog.Logger
}

// resolveEnvironment resolves the directories, loads config.yaml and builds
// the logger. Logs go to the command's error stream.
func resolveEnvironment(cmd *cobra.Command) (*environment, error) {
	configDir, err := paths.ResolveConfigDir(flags.configDir)
	if err != nil {
		return nil, sysErr(fmt.Errorf("resolve config dir: %w", err))
	}
	cfg, err := config.Load(configDir)
	if err != nil {
		return nil, userErr(fmt.Errorf("load config: %w", err))
	}
	dataDir, err := paths.ResolveDataDir(flags.dataDir, cfg.DataDir)
	if err != nil {
		return nil, sysErr(fmt.Errorf("resolve data dir: %w", err))
	}
	log, err := logging.New(cmd.ErrOrStderr(), cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		return nil, userErr(err)
	}
	return &environment{
		cfg:       cfg,
		configDir: configDir,
		dataDir:   dataDir,
		dbPath:    paths.DatabasePath(dataDir, cfg.DBFile),
		log:       log,
	}, nil
}
