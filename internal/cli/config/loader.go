package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/alt3/tokens-go/internal/infra/confloader"
)

// DefaultConfigPath returns the default CLI config file path.
func DefaultConfigPath() string {
	homeDir, _ := os.UserHomeDir()
	return filepath.Join(homeDir, ".tokens", "cli.yaml")
}

// Load loads CLI configuration from defaults, the YAML file at path,
// TOKENS_* environment variables and overrides, in increasing priority.
//
// An empty path selects DefaultConfigPath; a missing default file is not an
// error, a missing explicit file is. Unknown keys are rejected.
func Load(path string, overrides map[string]any) (*CLIConfig, error) {
	explicit := path != ""
	if !explicit {
		path = DefaultConfigPath()
	}

	if _, err := os.Stat(path); err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			path = ""
		} else {
			return nil, err
		}
	}

	l := confloader.NewLoader(
		confloader.WithConfigFile(path),
		confloader.WithDefaults(defaultMap()),
		confloader.WithOverrides(overrides),
		confloader.WithStrict(),
	)

	cfg := &CLIConfig{}
	if err := l.Load(cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
