// Package config loads navdb configuration with Viper. Values come from the
// embedded defaults, then config.yaml in the config directory, then NAVDB_*
// environment variables (NAVDB_ADMIN_PASSWORD overrides admin.password).
// data_dir is the exception: NAVDB_DATA_DIR only applies when config.yaml
// leaves data_dir unset, and is resolved by the paths package.
package config

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/mesh-intelligence/navdb/internal/logging"
	"github.com/mesh-intelligence/navdb/internal/password"
)

const (
	configFileName = "config"
	configFileType = "yaml"
	configFileExt  = "config.yaml"

	envPrefix = "NAVDB"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// templateYAML is written to config.yaml on first run.
const templateYAML = `# navdb configuration
# Every key is optional; unset keys keep their built-in defaults.

# Data directory (overridable by --data-dir)
# data_dir:

# Database file inside the data directory
# db_file: nav.db

# Administrator account created on first run
# admin:
#   username: admin
#   password: "123456"
#   bcrypt_cost: 10

# Replacement for the built-in default content
# seed:
#   file: /path/to/seed.yaml

# log:
#   level: info
#   format: console
`

// Config holds all navdb settings.
type Config struct {
	DataDir string      `mapstructure:"data_dir"`
	DBFile  string      `mapstructure:"db_file"`
	Admin   AdminConfig `mapstructure:"admin"`
	Seed    SeedConfig  `mapstructure:"seed"`
	Log     LogConfig   `mapstructure:"log"`
}

// AdminConfig holds the credentials of the administrator seeded on first run.
type AdminConfig struct {
	Username   string `mapstructure:"username"`
	Password   string `mapstructure:"password"`
	BcryptCost int    `mapstructure:"bcrypt_cost"`
}

// SeedConfig selects the default content set.
type SeedConfig struct {
	File string `mapstructure:"file"`
}

// LogConfig controls logger output.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Validation errors.
var (
	ErrDBFileEmpty      = errors.New("db_file must not be empty")
	ErrBcryptCost       = errors.New("admin.bcrypt_cost out of range")
	ErrLogFormatUnknown = errors.New("unknown log format")
)

// Validate checks that the Config is well-formed.
func (c Config) Validate() error {
	if c.DBFile == "" {
		return ErrDBFileEmpty
	}
	if !password.ValidCost(c.Admin.BcryptCost) {
		return fmt.Errorf("%w: %d", ErrBcryptCost, c.Admin.BcryptCost)
	}
	if !logging.ValidFormat(c.Log.Format) {
		return fmt.Errorf("%w: %q", ErrLogFormatUnknown, c.Log.Format)
	}
	return nil
}

// Default returns the built-in configuration without reading any file or
// environment variable.
func Default() (*Config, error) {
	v, err := newViper()
	if err != nil {
		return nil, err
	}
	return decode(v)
}

// Load reads config.yaml from configDir on top of the built-in defaults and
// applies NAVDB_* environment overrides. It creates configDir and a
// commented config.yaml on first run. A missing config.yaml is not an error.
func Load(configDir string) (*Config, error) {
	if err := EnsureConfigDir(configDir); err != nil {
		return nil, fmt.Errorf("ensure config dir: %w", err)
	}
	if err := EnsureDefaultConfigFile(configDir); err != nil {
		return nil, fmt.Errorf("ensure default config: %w", err)
	}

	v, err := newViper()
	if err != nil {
		return nil, err
	}

	v.SetConfigName(configFileName)
	v.AddConfigPath(configDir)
	if err := v.MergeInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	if err := bindEnv(v); err != nil {
		return nil, err
	}

	return decode(v)
}

// envExcluded lists keys whose environment variable is read by another
// layer. NAVDB_DATA_DIR ranks below data_dir in config.yaml and is applied by
// paths.ResolveDataDir.
var envExcluded = map[string]bool{
	"data_dir": true,
}

// bindEnv binds NAVDB_<KEY> for every known key except envExcluded, with
// dots in nested keys replaced by underscores.
func bindEnv(v *viper.Viper) error {
	for _, key := range v.AllKeys() {
		if envExcluded[key] {
			continue
		}
		name := envPrefix + "_" + strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
		if err := v.BindEnv(key, name); err != nil {
			return fmt.Errorf("bind %s: %w", name, err)
		}
	}
	return nil
}

func newViper() (*viper.Viper, error) {
	v := viper.New()
	v.SetConfigType(configFileType)
	if err := v.ReadConfig(bytes.NewReader(defaultsYAML)); err != nil {
		return nil, fmt.Errorf("read built-in config: %w", err)
	}
	return v, nil
}

func decode(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// EnsureConfigDir creates the config directory if it does not exist.
func EnsureConfigDir(configDir string) error {
	return os.MkdirAll(configDir, 0o755)
}

// EnsureDefaultConfigFile writes the commented config.yaml template if the
// file does not exist in configDir.
func EnsureDefaultConfigFile(configDir string) error {
	path := filepath.Join(configDir, configFileExt)

	_, err := os.Stat(path)
	if err == nil {
		return nil
	}
	if !os.IsNotExist(err) {
		return fmt.Errorf("stat config file: %w", err)
	}

	return os.WriteFile(path, []byte(templateYAML), 0o644)
}
