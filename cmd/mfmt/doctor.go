package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/movelang/mfmt/internal/config"
	"github.com/movelang/mfmt/internal/resolver"
)

var (
	okMark  = color.New(color.FgGreen).Sprint("✓")
	badMark = color.New(color.FgRed).Sprint("✗")
)

// newDoctorCmd creates the doctor subcommand
func newDoctorCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Check the movefmt environment",
		Long: `Check that the movefmt binary can be resolved, report the movefmt.toml
that would apply to the current directory, and count the Move source files
that would be formatted.`,
		Args: cobra.NoArgs,
		RunE: runDoctorCommand,
	}
}

func runDoctorCommand(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()
	healthy := true

	if path, err := resolver.Resolve(); err != nil {
		fmt.Fprintf(out, "%s movefmt binary: %v\n", badMark, err)
		healthy = false
	} else {
		fmt.Fprintf(out, "%s movefmt binary: %s\n", okMark, path)
	}

	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get working directory: %w", err)
	}

	switch path, err := config.Locate(cwd); {
	case err == nil:
		if settings, loadErr := config.Load(path); loadErr != nil {
			fmt.Fprintf(out, "%s %s: %v\n", badMark, config.FileName, loadErr)
			healthy = false
		} else {
			fmt.Fprintf(out, "%s %s: %s (max_width=%d, indent_size=%d)\n",
				okMark, config.FileName, path, settings.MaxWidth, settings.IndentSize)
		}
	case errors.Is(err, config.ErrNotFound):
		fmt.Fprintf(out, "%s %s: none found, movefmt defaults apply\n", okMark, config.FileName)
	default:
		return err
	}

	sources, err := doublestar.Glob(os.DirFS(cwd), "**/*.move")
	if err != nil {
		return fmt.Errorf("failed to scan for Move sources: %w", err)
	}
	fmt.Fprintf(out, "%s Move sources: %d file(s) under %s\n", okMark, len(sources), cwd)

	if !healthy {
		return fmt.Errorf("environment check failed")
	}
	return nil
}
