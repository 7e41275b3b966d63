// Package main is the entry point for the mfmt CLI tool.
package main

import (
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/movelang/mfmt/internal/debug"
)

// Version is set at build time via ldflags
var Version = "dev"

// Global flags
var debugFlag bool

// newRootCmd creates and returns the root command
func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mfmt",
		Short: "Format Move source code with movefmt",
		Long: `mfmt is a front end for the movefmt Move source formatter.

It builds the movefmt invocation from its flags, runs the binary and reports
the outcome. The formatter's own report is printed to standard error; mfmt
prints "ok" to standard output when formatting succeeded.

The movefmt binary is looked up on PATH, or pinned with the MOVEFMT_PATH
environment variable.`,
		Version: Version,
		Example: `  # Format every Move file under the current directory
  mfmt

  # Show a diff for a single file without touching it
  mfmt --emit-mode diff --file-path sources/coin.move

  # Override movefmt.toml settings for one run
  mfmt --config max_width=100 --config indent_size=2 --dir-path sources

  # Create a movefmt.toml interactively
  mfmt init

  # Check the movefmt environment
  mfmt doctor`,
		RunE:          runFormatCommand,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags
	cmd.PersistentFlags().BoolVar(&debugFlag, "debug", false, "Enable debug output")

	registerFormatFlags(cmd)

	// Disable the default completion command
	cmd.CompletionOptions.DisableDefaultCmd = true

	// Add subcommands
	cmd.AddCommand(newInitCmd())
	cmd.AddCommand(newDoctorCmd())

	return cmd
}

func main() {
	// Parse the debug flag early to enable debug logging
	for _, arg := range os.Args[1:] {
		if arg == "--debug" {
			debug.Enable()
			break
		}
	}

	if err := newRootCmd().Execute(); err != nil {
		color.New(color.FgRed).Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
