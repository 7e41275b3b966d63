// Package invoker translates a format request into a movefmt process
// invocation and classifies the process result.
package invoker

import (
	"fmt"
	"strings"
)

// EmitMode selects how movefmt reports or applies its result.
type EmitMode int

const (
	// EmitOverwrite rewrites the formatted files in place (the default).
	EmitOverwrite EmitMode = iota
	// EmitNewFile writes the formatted output next to the original.
	EmitNewFile
	// EmitStdOut prints the formatted output to standard output.
	EmitStdOut
	// EmitDiff prints a diff between the original and formatted output.
	EmitDiff
)

// String returns the wire encoding movefmt expects for --emit.
func (m EmitMode) String() string {
	switch m {
	case EmitNewFile:
		return "new_file"
	case EmitStdOut:
		return "stdout"
	case EmitDiff:
		return "diff"
	default:
		return "overwrite"
	}
}

// ParseEmitMode parses the --emit-mode flag value.
func ParseEmitMode(s string) (EmitMode, error) {
	switch s {
	case "overwrite":
		return EmitOverwrite, nil
	case "new_file":
		return EmitNewFile, nil
	case "stdout":
		return EmitStdOut, nil
	case "diff":
		return EmitDiff, nil
	default:
		return EmitOverwrite, fmt.Errorf("invalid emit mode %q (want overwrite, new_file, stdout or diff)", s)
	}
}

type targetKind int

const (
	targetDefault targetKind = iota
	targetFile
	targetDir
)

// Target identifies what movefmt should format: a single file, a directory,
// or the current directory when unspecified. The zero value is the
// current-directory default.
type Target struct {
	kind targetKind
	path string
}

// FileTarget targets a single file.
func FileTarget(path string) Target { return Target{kind: targetFile, path: path} }

// DirTarget targets a directory tree.
func DirTarget(path string) Target { return Target{kind: targetDir, path: path} }

// DefaultTarget targets the current directory.
func DefaultTarget() Target { return Target{} }

// NewTarget builds a Target from the two mutually exclusive CLI flags.
// Setting both is rejected here, before a request can be constructed.
func NewTarget(filePath, dirPath string) (Target, error) {
	switch {
	case filePath != "" && dirPath != "":
		return Target{}, fmt.Errorf("--file-path and --dir-path are mutually exclusive")
	case filePath != "":
		return FileTarget(filePath), nil
	case dirPath != "":
		return DirTarget(dirPath), nil
	default:
		return DefaultTarget(), nil
	}
}

// IsFile reports whether the target is a single file, along with its path.
func (t Target) IsFile() (string, bool) { return t.path, t.kind == targetFile }

// Dir returns the directory path to format, defaulting to "./" when the
// target was left unspecified.
func (t Target) Dir() string {
	if t.kind == targetDir {
		return t.path
	}
	return "./"
}

// FormatRequest describes one movefmt invocation. It is built once from the
// CLI flags and never mutated afterward.
type FormatRequest struct {
	// EmitMode selects how movefmt reports results.
	EmitMode EmitMode
	// Target is the file or directory to format.
	Target Target
	// ConfigPath optionally points at a movefmt.toml.
	ConfigPath string
	// Overrides are ad-hoc settings that take priority over movefmt.toml.
	// They are serialized key-sorted so invocations stay reproducible.
	Overrides map[string]string
	// Verbose asks movefmt for verbose output. Wins over Quiet when both
	// are set; see BuildArgs.
	Verbose bool
	// Quiet asks movefmt for less output.
	Quiet bool
}

// ParseOverrides parses repeated --config values of the form key=value.
// Each value may itself carry several comma-joined pairs. A later occurrence
// of a key overrides an earlier one.
func ParseOverrides(values []string) (map[string]string, error) {
	overrides := make(map[string]string)
	for _, value := range values {
		for _, pair := range strings.Split(value, ",") {
			pair = strings.TrimSpace(pair)
			if pair == "" {
				continue
			}
			key, val, ok := strings.Cut(pair, "=")
			if !ok || key == "" {
				return nil, fmt.Errorf("invalid config override %q (want key=value)", pair)
			}
			overrides[key] = val
		}
	}
	return overrides, nil
}
