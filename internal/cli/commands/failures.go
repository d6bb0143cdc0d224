package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rexhoffman/trybuild/internal/storage"
	"github.com/rexhoffman/trybuild/internal/ui"
)

// FailuresCommand handles the failures command.
type FailuresCommand struct {
	storage   storage.Storage
	formatter *ui.Formatter
}

// NewFailuresCommand creates a new FailuresCommand.
func NewFailuresCommand(st storage.Storage, formatter *ui.Formatter) *FailuresCommand {
	return &FailuresCommand{storage: st, formatter: formatter}
}

// Execute runs the command.
func (fc *FailuresCommand) Execute(cmd *cobra.Command, args []string) error {
	report, err := fc.storage.Load()
	if err != nil {
		return fmt.Errorf("no run report found, run 'trybuild run' first: %w", err)
	}
	fc.formatter.PrintReport(report)
	return nil
}
