// Package wizard provides the interactive movefmt.toml setup for mfmt.
package wizard

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/AlecAivazis/survey/v2"
	"golang.org/x/term"

	"github.com/movelang/mfmt/internal/config"
	"github.com/movelang/mfmt/internal/debug"
)

// InitWizard walks the user through creating a movefmt.toml.
type InitWizard struct {
	// Dir is the directory the configuration is written to.
	Dir string
	// Force skips the overwrite confirmation.
	Force bool
}

// Run prompts for formatter settings and writes movefmt.toml. It refuses to
// run without an interactive terminal.
func (w *InitWizard) Run() error {
	debug.LogSection("Init Wizard")

	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return fmt.Errorf("init requires an interactive terminal; write %s by hand instead", config.FileName)
	}

	outputPath := filepath.Join(w.Dir, config.FileName)

	if !w.Force {
		if _, err := os.Stat(outputPath); err == nil {
			overwrite := false
			prompt := &survey.Confirm{
				Message: fmt.Sprintf("%s already exists. Overwrite?", outputPath),
				Default: false,
			}
			if err := survey.AskOne(prompt, &overwrite); err != nil {
				return err
			}
			if !overwrite {
				fmt.Println("Init canceled.")
				return nil
			}
		}
	}

	settings, err := w.askSettings()
	if err != nil {
		return err
	}

	if err := config.Save(outputPath, settings); err != nil {
		return err
	}

	fmt.Printf("Wrote %s\n", outputPath)
	return nil
}

// askSettings prompts for each movefmt option, starting from the defaults.
func (w *InitWizard) askSettings() (config.Settings, error) {
	settings := config.Default()

	maxWidth, err := askInt("Maximum line width:", settings.MaxWidth)
	if err != nil {
		return config.Settings{}, err
	}
	settings.MaxWidth = maxWidth

	indentSize, err := askInt("Indent size (spaces):", settings.IndentSize)
	if err != nil {
		return config.Settings{}, err
	}
	settings.IndentSize = indentSize

	return settings, nil
}

func askInt(message string, defaultValue int) (int, error) {
	answer := ""
	prompt := &survey.Input{
		Message: message,
		Default: strconv.Itoa(defaultValue),
	}
	validator := func(ans interface{}) error {
		s, _ := ans.(string)
		n, err := strconv.Atoi(s)
		if err != nil || n <= 0 {
			return fmt.Errorf("enter a positive number")
		}
		return nil
	}
	if err := survey.AskOne(prompt, &answer, survey.WithValidator(validator)); err != nil {
		return 0, err
	}
	return strconv.Atoi(answer)
}
