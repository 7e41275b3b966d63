// Package config reads and writes movefmt.toml, the configuration file the
// movefmt binary picks up from the formatted tree.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/movelang/mfmt/internal/debug"
)

// FileName is the configuration file movefmt searches for.
const FileName = "movefmt.toml"

// ErrNotFound indicates no movefmt.toml exists between the start directory
// and the filesystem root.
var ErrNotFound = errors.New("movefmt.toml not found")

// Settings mirrors the movefmt.toml options the front end cares about.
type Settings struct {
	// MaxWidth is the maximum line width movefmt formats to.
	MaxWidth int `toml:"max_width"`
	// IndentSize is the number of spaces per indentation level.
	IndentSize int `toml:"indent_size"`
}

// Default returns movefmt's own defaults.
func Default() Settings {
	return Settings{MaxWidth: 90, IndentSize: 4}
}

// Locate walks upward from startDir and returns the path of the nearest
// movefmt.toml, or ErrNotFound.
func Locate(startDir string) (string, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", fmt.Errorf("invalid start directory: %w", err)
	}

	for {
		candidate := filepath.Join(dir, FileName)
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			debug.Log("Found %s at %s", FileName, candidate)
			return candidate, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", ErrNotFound
		}
		dir = parent
	}
}

// Load decodes a movefmt.toml. Options absent from the file keep their
// movefmt defaults.
func Load(path string) (Settings, error) {
	settings := Default()
	if _, err := toml.DecodeFile(path, &settings); err != nil {
		return Settings{}, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return settings, nil
}

// Save writes settings as a movefmt.toml at path.
func Save(path string, settings Settings) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer f.Close()

	if err := toml.NewEncoder(f).Encode(settings); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
