package invoker

import (
	"fmt"
	"sort"
	"strings"
)

// BuildArgs produces the argument vector for one movefmt invocation. The
// order is fixed by movefmt's own parser and must not change:
//
//	--emit=<mode> [--config-path=<path>] [-v|-q] [--config=<k=v>,...]
//	(--file-path=<path> | --dir-path=<path>)
func BuildArgs(req FormatRequest) []string {
	args := []string{fmt.Sprintf("--emit=%s", req.EmitMode)}

	if req.ConfigPath != "" {
		args = append(args, fmt.Sprintf("--config-path=%s", req.ConfigPath))
	}

	// Verbose is checked first, so verbose wins over a simultaneous quiet.
	if req.Verbose {
		args = append(args, "-v")
	} else if req.Quiet {
		args = append(args, "-q")
	}

	if len(req.Overrides) > 0 {
		keys := make([]string, 0, len(req.Overrides))
		for key := range req.Overrides {
			keys = append(keys, key)
		}
		sort.Strings(keys)

		pairs := make([]string, 0, len(keys))
		for _, key := range keys {
			pairs = append(pairs, key+"="+req.Overrides[key])
		}
		args = append(args, fmt.Sprintf("--config=%s", strings.Join(pairs, ",")))
	}

	if path, ok := req.Target.IsFile(); ok {
		args = append(args, fmt.Sprintf("--file-path=%s", path))
	} else {
		args = append(args, fmt.Sprintf("--dir-path=%s", req.Target.Dir()))
	}

	return args
}
