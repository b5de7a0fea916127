package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/alexanderramin/clistudy/internal/datadir"
	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"
)

// Backend selects the session store implementation.
type Backend string

const (
	BackendJSON   Backend = "json"
	BackendSQLite Backend = "sqlite"
)

// ErrInvalidBackend is returned for an unknown backend name.
var ErrInvalidBackend = errors.New("invalid backend")

// Ext is the storage file extension used for the backend.
func (b Backend) Ext() string {
	if b == BackendSQLite {
		return "db"
	}
	return "json"
}

func (b Backend) Validate() error {
	switch b {
	case BackendJSON, BackendSQLite:
		return nil
	default:
		return fmt.Errorf("%w: %q (want %q or %q)", ErrInvalidBackend, string(b), BackendJSON, BackendSQLite)
	}
}

// Config holds all runtime settings.
type Config struct {
	// DataDir overrides the platform user data directory. Sessions live
	// under DataDir/clistudy either way.
	DataDir string  `yaml:"data_dir"`
	Backend Backend `yaml:"backend"`
	LogOps  bool    `yaml:"log_ops"`
}

// DefaultConfig returns the JSON backend under the platform data dir.
func DefaultConfig() Config {
	return Config{Backend: BackendJSON}
}

// DefaultPath is <user-config-dir>/clistudy/config.yaml.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, datadir.Namespace, "config.yaml")
}

// Load applies defaults, then the optional YAML file, then environment
// variables. A missing file is not an error; a malformed one is.
func Load() (Config, error) {
	cfg := DefaultConfig()

	path := os.Getenv("CLISTUDY_CONFIG")
	if path == "" {
		path = DefaultPath()
	}
	if path != "" {
		if err := applyFile(&cfg, path); err != nil {
			return Config{}, err
		}
	}

	if err := applyEnv(&cfg); err != nil {
		return Config{}, err
	}

	if err := cfg.Backend.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func applyFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("reading config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parsing config %s: %w", path, err)
	}
	if cfg.Backend == "" {
		cfg.Backend = BackendJSON
	}
	return nil
}

func applyEnv(cfg *Config) error {
	if v := os.Getenv("CLISTUDY_DATA_DIR"); v != "" {
		cfg.DataDir = v
	}
	if v := os.Getenv("CLISTUDY_BACKEND"); v != "" {
		cfg.Backend = Backend(v)
	}
	if v := os.Getenv("CLISTUDY_LOG_OPS"); v != "" {
		on, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("parsing CLISTUDY_LOG_OPS=%q: %w", v, err)
		}
		cfg.LogOps = on
	}
	return nil
}

// BindFlags registers persistent overrides on fs, seeded from cfg.
// Values are written back into cfg when the flags are parsed.
func BindFlags(fs *pflag.FlagSet, cfg *Config) {
	fs.StringVar(&cfg.DataDir, "data-dir", cfg.DataDir, "Override the user data directory")
	fs.StringVar((*string)(&cfg.Backend), "backend", string(cfg.Backend), "Session store backend (json|sqlite)")
	fs.BoolVar(&cfg.LogOps, "log-ops", cfg.LogOps, "Log store operations to stderr")
}
