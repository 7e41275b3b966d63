// Package resolver locates the movefmt executable.
package resolver

import (
	"fmt"
	"os"
	"os/exec"

	"github.com/movelang/mfmt/internal/debug"
	"github.com/movelang/mfmt/internal/invoker"
)

// EnvOverride names the environment variable that pins the movefmt binary to
// an explicit path, bypassing the PATH lookup.
const EnvOverride = "MOVEFMT_PATH"

const binaryName = "movefmt"

// Resolve returns the absolute path of the movefmt binary. It honors the
// MOVEFMT_PATH override first, then falls back to a PATH lookup. Failures
// wrap invoker.ErrToolNotFound.
func Resolve() (string, error) {
	if override := os.Getenv(EnvOverride); override != "" {
		info, err := os.Stat(override)
		if err != nil {
			return "", fmt.Errorf("%w: %s=%s: %v", invoker.ErrToolNotFound, EnvOverride, override, err)
		}
		if info.IsDir() {
			return "", fmt.Errorf("%w: %s=%s is a directory", invoker.ErrToolNotFound, EnvOverride, override)
		}
		debug.Log("Resolved movefmt from %s: %s", EnvOverride, override)
		return override, nil
	}

	path, err := exec.LookPath(binaryName)
	if err != nil {
		return "", fmt.Errorf("%w: %v (install movefmt or set %s)", invoker.ErrToolNotFound, err, EnvOverride)
	}
	debug.Log("Resolved movefmt from PATH: %s", path)
	return path, nil
}
