package commands

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/rexhoffman/trybuild/internal/config"
	"github.com/rexhoffman/trybuild/internal/discovery"
)

// ListCommand handles the list command.
type ListCommand struct {
	config *config.Config
}

// NewListCommand creates a new ListCommand.
func NewListCommand(cfg *config.Config) *ListCommand {
	return &ListCommand{config: cfg}
}

// Execute runs the command.
func (lc *ListCommand) Execute(cmd *cobra.Command, args []string) error {
	expanded := discovery.ExpandGlobs(declaredTests(lc.config.Flags))

	if len(expanded) == 0 {
		color.Yellow("no tests enabled")
		return nil
	}

	for _, test := range expanded {
		if test.Err != nil {
			color.Red("%s [%s] (expansion failed: %v)", test.Test.Path, test.Test.Expected, test.Err)
			continue
		}
		color.White("%s [%s]", test.Test.Path, test.Test.Expected)
	}
	color.Cyan("\n%d test(s)", len(expanded))
	return nil
}
