package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/movelang/mfmt/internal/wizard"
)

// newInitCmd creates the init subcommand
func newInitCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create a movefmt.toml interactively",
		Long: `Create a movefmt.toml in the current directory by answering a few
questions. Requires an interactive terminal.`,
		Args: cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			cwd, err := os.Getwd()
			if err != nil {
				return fmt.Errorf("failed to get working directory: %w", err)
			}

			w := &wizard.InitWizard{Dir: cwd, Force: force}
			return w.Run()
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite an existing movefmt.toml without asking")

	return cmd
}
