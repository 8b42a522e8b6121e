package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

// ConfigPath returns the default configuration file path: ~/.crystaldolphin/config.json.
func ConfigPath() string {
	return filepath.Join(DataDir(), "config.json")
}

// DataDir returns the data directory: ~/.crystaldolphin.
func DataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".crystaldolphin"
	}
	return filepath.Join(home, ".crystaldolphin")
}

// ErrInvalidConfig is returned by LoadStrict when the config file exists but
// cannot be parsed.
var ErrInvalidConfig = errors.New("invalid config")

// Load reads and parses the config file at path.
// If path is empty, ConfigPath() is used. Keys missing from the file keep
// their defaults. On parse failure it logs a warning and returns DefaultConfig().
func Load(path string) (*Config, error) {
	cfg, err := LoadStrict(path)
	if errors.Is(err, ErrInvalidConfig) {
		slog.Warn("failed to parse config, using defaults", "err", err)
		def := DefaultConfig()
		return &def, nil
	}
	return cfg, err
}

// LoadStrict is Load without the fallback: a file that exists but does not
// parse yields an error wrapping ErrInvalidConfig.
func LoadStrict(path string) (*Config, error) {
	if path == "" {
		path = ConfigPath()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			cfg := DefaultConfig()
			return &cfg, nil
		}
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	cfg := DefaultConfig()
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w %s: %v", ErrInvalidConfig, path, err)
	}
	return &cfg, nil
}

// Save writes cfg to path as indented JSON.
// If path is empty, ConfigPath() is used.
func Save(cfg *Config, path string) error {
	if path == "" {
		path = ConfigPath()
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	data = append(data, '\n')

	// The file holds API keys.
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("write config %s: %w", path, err)
	}
	return nil
}

// LoadEnvFiles loads KEY=VALUE pairs from the given .env files into the
// process environment. Variables already set are left alone and missing
// files are skipped, so credentials exported in the shell always win.
func LoadEnvFiles(paths ...string) error {
	for _, p := range paths {
		if _, err := os.Stat(p); errors.Is(err, os.ErrNotExist) {
			continue
		}
		if err := godotenv.Load(p); err != nil {
			return fmt.Errorf("load env file %s: %w", p, err)
		}
	}
	return nil
}

// DefaultEnvFiles returns the .env files consulted by the CLI, in priority order.
func DefaultEnvFiles() []string {
	return []string{".env", filepath.Join(DataDir(), ".env")}
}
