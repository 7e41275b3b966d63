package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/movelang/mfmt/internal/invoker"
	"github.com/movelang/mfmt/internal/resolver"
)

// formatFlags holds the root command's formatting flags
var formatFlags struct {
	emitMode   string
	filePath   string
	dirPath    string
	configPath string
	overrides  []string
	verbose    bool
	quiet      bool
}

// registerFormatFlags declares the formatting flags on the root command
func registerFormatFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.StringVar(&formatFlags.emitMode, "emit-mode", "overwrite",
		"How to generate and show the result (overwrite, new_file, stdout, diff)")
	f.StringVar(&formatFlags.filePath, "file-path", "",
		"Path to the file to be formatted")
	f.StringVar(&formatFlags.dirPath, "dir-path", "",
		"Path to the directory to be formatted; without --file-path or --dir-path, all Move files in the current folder are formatted")
	f.StringVar(&formatFlags.configPath, "config-path", "",
		"Path for the movefmt.toml configuration file")
	f.StringArrayVar(&formatFlags.overrides, "config", nil,
		"Set options as key=value, taking priority over movefmt.toml (repeatable; the last occurrence of a key wins)")
	f.BoolVarP(&formatFlags.verbose, "verbose", "v", false, "Print verbose output")
	f.BoolVarP(&formatFlags.quiet, "quiet", "q", false, "Print less output")
}

func runFormatCommand(cmd *cobra.Command, _ []string) error {
	req, err := buildRequest()
	if err != nil {
		return err
	}

	inv := invoker.New(resolver.Resolve, cmd.ErrOrStderr())
	result, err := inv.Execute(req)
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), result)
	return nil
}

// buildRequest validates the flags and constructs the immutable request.
// Mutual exclusion of --file-path and --dir-path is rejected here, before
// any process is spawned.
func buildRequest() (invoker.FormatRequest, error) {
	mode, err := invoker.ParseEmitMode(formatFlags.emitMode)
	if err != nil {
		return invoker.FormatRequest{}, err
	}

	target, err := invoker.NewTarget(formatFlags.filePath, formatFlags.dirPath)
	if err != nil {
		return invoker.FormatRequest{}, err
	}

	overrides, err := invoker.ParseOverrides(formatFlags.overrides)
	if err != nil {
		return invoker.FormatRequest{}, err
	}

	return invoker.FormatRequest{
		EmitMode:   mode,
		Target:     target,
		ConfigPath: formatFlags.configPath,
		Overrides:  overrides,
		Verbose:    formatFlags.verbose,
		Quiet:      formatFlags.quiet,
	}, nil
}
