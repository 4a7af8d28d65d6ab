// Package config loads the optional sd configuration file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/aretw0/sd/pkg/core"
)

// Config holds user preferences. Command-line flags take precedence.
type Config struct {
	// Directory is the working directory used when --directory is absent.
	Directory string `yaml:"directory"`
	// HistoryFile stores the line editor history. Empty disables history.
	HistoryFile string `yaml:"history_file"`
	// ArchiveDir is the archive directory name inside the working directory.
	ArchiveDir string `yaml:"archive_dir"`
	// Verbose enables debug logging.
	Verbose bool `yaml:"verbose"`
}

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		Directory:  ".",
		ArchiveDir: core.DefaultArchiveDir,
	}
}

// DefaultPath returns $XDG_CONFIG_HOME/sd/config.yaml (or the platform
// equivalent).
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to locate config dir: %w", err)
	}
	return filepath.Join(dir, "sd", "config.yaml"), nil
}

// Load reads the file at path over the defaults. A missing file is not an
// error. A leading ~ in path values is expanded to the home directory.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("invalid config %s: %w", path, err)
	}

	if cfg.Directory == "" {
		cfg.Directory = "."
	}
	if cfg.ArchiveDir == "" {
		cfg.ArchiveDir = core.DefaultArchiveDir
	}
	if cfg.Directory, err = expandHome(cfg.Directory); err != nil {
		return Default(), err
	}
	if cfg.HistoryFile, err = expandHome(cfg.HistoryFile); err != nil {
		return Default(), err
	}
	return cfg, nil
}

func expandHome(path string) (string, error) {
	if path != "~" && !hasHomePrefix(path) {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to expand %s: %w", path, err)
	}
	return filepath.Join(home, path[1:]), nil
}

func hasHomePrefix(path string) bool {
	return len(path) >= 2 && path[0] == '~' && (path[1] == '/' || path[1] == filepath.Separator)
}
