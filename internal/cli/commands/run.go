package commands

import (
	"github.com/spf13/cobra"

	"github.com/rexhoffman/trybuild/internal/config"
	"github.com/rexhoffman/trybuild/internal/domain"
	"github.com/rexhoffman/trybuild/internal/execution"
)

// RunCommand handles the run command.
type RunCommand struct {
	config *config.Config
}

// NewRunCommand creates a new RunCommand.
func NewRunCommand(cfg *config.Config) *RunCommand {
	return &RunCommand{config: cfg}
}

// declaredTests converts the pass/compile-fail flag patterns into the
// ordered declaration list, pass tests first.
func declaredTests(flags config.Flags) []domain.Test {
	var tests []domain.Test
	for _, path := range flags.Pass {
		tests = append(tests, domain.Test{Path: path, Expected: domain.ExpectPass})
	}
	for _, path := range flags.CompileFail {
		tests = append(tests, domain.Test{Path: path, Expected: domain.ExpectCompileFail})
	}
	return tests
}

// Execute runs the command.
func (rc *RunCommand) Execute(cmd *cobra.Command, args []string) error {
	harness := execution.NewHarness(rc.config)
	harness.ShowProgress(rc.config.Flags.Progress)

	_, err := harness.Run(cmd.Context(), declaredTests(rc.config.Flags), nil)
	return err
}
